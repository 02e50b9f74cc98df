package ddfmt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ddfmt/ddfmt-go/ddfield"
	"github.com/ddfmt/ddfmt-go/ddnum"
	"github.com/ddfmt/ddfmt-go/ddtrace"
	"github.com/ddfmt/ddfmt-go/ddutil"
)

// messageKey is the one reserved field key: it supplies the message and is
// never emitted under the "fields." namespace.
const messageKey = "message"

// logLine is everything needed to assemble one record.
type logLine struct {
	timestamp time.Time
	level     ddnum.Level
	message   string
	fields    []ddfield.Field // merged, ordered, unique keys
	target    string
	ids       *ddtrace.IDs // nil when no span context was active
}

// format serializes the record.  Top-level key order is fixed: timestamp,
// level, fields.*, message, target, then the two dd ids (omitted entirely
// when ids is nil).  Field keys keep their merged order.
func (line logLine) format(tf TimeFormatter) []byte {
	var b ddutil.JBuilder
	b.AppendByte('{')
	b.AddSafeKey("timestamp")
	b.B = tf(b.B, line.timestamp)
	b.AddSafeKey("level")
	b.AddSafeString(line.level.DatadogString())

	message := line.message
	for _, f := range line.fields {
		if f.Key == messageKey {
			if message == "" {
				message = f.Text()
			}
			continue
		}
		b.AddKey("fields." + f.Key)
		addFieldValue(&b, f)
	}

	b.AddSafeKey("message")
	b.AddString(message)
	b.AddSafeKey("target")
	b.AddString(line.target)

	if line.ids != nil {
		b.AddSafeKey("dd.trace_id")
		b.AddUint64(uint64(line.ids.TraceID))
		b.AddSafeKey("dd.span_id")
		b.AddUint64(uint64(line.ids.SpanID))
	}

	b.AppendBytes([]byte{'}', '\n'})
	return b.B
}

func addFieldValue(b *ddutil.JBuilder, f ddfield.Field) {
	switch f.Type {
	case ddfield.IntType:
		b.AddInt64(f.Int)
	case ddfield.UintType:
		b.AddUint64(f.Any.(uint64))
	case ddfield.Float64Type:
		b.AddFloat64(f.Float)
	case ddfield.BoolType:
		b.AddBool(f.Any.(bool))
	case ddfield.StringType:
		b.AddString(f.String)
	case ddfield.TimeType:
		b.AddTime(f.Any.(time.Time))
	case ddfield.ErrorType:
		if e, ok := f.Any.(error); ok && e != nil {
			b.AddString(e.Error())
		} else {
			b.AppendString("null")
		}
	case ddfield.AnyType:
		addAny(b, f.Any)
	case ddfield.UnsetType:
		fallthrough
	default:
		b.AppendString("null")
	}
}

// addAny serializes a structured value.  Anything the JSON encoder refuses
// is coerced to its "%+v" text instead; a field's shape never fails the
// record.
func addAny(b *ddutil.JBuilder, v interface{}) {
	enc, err := json.Marshal(v)
	if err != nil {
		b.AddString(fmt.Sprintf("%+v", v))
		return
	}
	b.AppendBytes(enc)
}
