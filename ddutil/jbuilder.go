package ddutil

import (
	"strconv"
	"time"
)

// TimestampLayout is RFC 3339 with a fixed nanosecond width and an explicit
// numeric UTC offset ("+00:00", never "Z"), which is the form Datadog's log
// intake documents.
const TimestampLayout = "2006-01-02T15:04:05.000000000-07:00"

// JBuilder accumulates a JSON document as append-only bytes so that key
// order in the output is exactly insertion order.
type JBuilder struct {
	B []byte
}

// Comma adds a comma if a comma is needed based
// on what's already in the JBuilder: if the previous
// character is '{', '[', or ':' then it does not add a
// comma.  Otherwise it does.
func (b *JBuilder) Comma() {
	if len(b.B) == 0 {
		return
	}
	switch b.B[len(b.B)-1] {
	case '[', '{', ':':
		return
	}
	b.B = append(b.B, ',')
}

func (b *JBuilder) AppendByte(v byte) {
	b.B = append(b.B, v)
}

// AppendBytes adds the bytes without wrapping or checking
func (b *JBuilder) AppendBytes(v []byte) {
	b.B = append(b.B, v...)
}

// AppendString adds the bytes without wrapping or checking
func (b *JBuilder) AppendString(v string) {
	b.B = append(b.B, v...)
}

func (b *JBuilder) Reset() {
	b.B = b.B[:0]
}

// AddSafeString adds a JSON-encoded string that is known to not need escaping
func (b *JBuilder) AddSafeString(v string) {
	b.B = append(b.B, '"')
	b.AppendString(v)
	b.B = append(b.B, '"')
}

// AddString adds a JSON-encoded string
func (b *JBuilder) AddString(v string) {
	b.B = append(b.B, '"')
	b.AddStringBody(v)
	b.B = append(b.B, '"')
}

// AddStringBody adds the escaped body of a JSON string, without the
// surrounding quotes.
func (b *JBuilder) AddStringBody(v string) {
	b.escape(v)
}

func (b *JBuilder) AddUint64(i uint64) {
	b.B = strconv.AppendUint(b.B, i, 10)
}

func (b *JBuilder) AddInt64(i int64) {
	b.B = strconv.AppendInt(b.B, i, 10)
}

func (b *JBuilder) AddFloat64(f float64) {
	b.B = strconv.AppendFloat(b.B, f, 'f', -1, 64)
}

func (b *JBuilder) AddBool(v bool) {
	b.B = strconv.AppendBool(b.B, v)
}

// AddKey calls Comma() and then adds the escaped key and ':'
func (b *JBuilder) AddKey(v string) {
	b.Comma()
	b.AddString(v)
	b.B = append(b.B, ':')
}

// AddSafeKey is AddKey for keys known to not need escaping
func (b *JBuilder) AddSafeKey(v string) {
	b.Comma()
	b.B = append(b.B, '"')
	b.B = append(b.B, v...)
	b.B = append(b.B, '"', ':')
}

// AddTime appends t as a quoted TimestampLayout string, always in UTC.
func (b *JBuilder) AddTime(t time.Time) {
	b.B = append(b.B, '"')
	b.B = t.UTC().AppendFormat(b.B, TimestampLayout)
	b.B = append(b.B, '"')
}

const hexDigits = "0123456789abcdef"

// escape writes s with the minimal JSON escape set: quote, backslash, and
// control characters.
func (b *JBuilder) escape(s string) {
	j := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		b.B = append(b.B, s[j:i]...)
		switch c {
		case '"':
			b.B = append(b.B, '\\', '"')
		case '\\':
			b.B = append(b.B, '\\', '\\')
		case '\n':
			b.B = append(b.B, '\\', 'n')
		case '\r':
			b.B = append(b.B, '\\', 'r')
		case '\t':
			b.B = append(b.B, '\\', 't')
		default:
			b.B = append(b.B, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
		j = i + 1
	}
	b.B = append(b.B, s[j:]...)
}
