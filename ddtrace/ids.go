// Package ddtrace provides the 64-bit correlation identifiers that Datadog
// uses to tie a log line back to a distributed trace.
package ddtrace

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"

	oteltrace "go.opentelemetry.io/otel/trace"
)

// TraceID is shared by every span descended from one root span.
type TraceID uint64

// SpanID is unique per span.
type SpanID uint64

// IDs is the pair attached to one emitted log line.
type IDs struct {
	TraceID TraceID
	SpanID  SpanID
}

func (t TraceID) IsZero() bool   { return t == 0 }
func (t TraceID) String() string { return strconv.FormatUint(uint64(t), 10) }
func (s SpanID) IsZero() bool    { return s == 0 }
func (s SpanID) String() string  { return strconv.FormatUint(uint64(s), 10) }

func NewTraceID() TraceID { return TraceID(random64()) }
func NewSpanID() SpanID   { return SpanID(random64()) }

// random64 never returns zero: zero means "unset" everywhere ids travel.
func random64() uint64 {
	var b [8]byte
	for {
		_, _ = rand.Read(b[:])
		if v := binary.BigEndian.Uint64(b[:]); v != 0 {
			return v
		}
	}
}

// TraceIDFromOTel keeps the low 8 bytes of the 128-bit OpenTelemetry trace
// id, big-endian.  This is the same truncation Datadog's own exporters
// apply, so logs formatted here line up with traces exported elsewhere in
// the process.
func TraceIDFromOTel(id oteltrace.TraceID) TraceID {
	return TraceID(binary.BigEndian.Uint64(id[8:16]))
}

func SpanIDFromOTel(id oteltrace.SpanID) SpanID {
	return SpanID(binary.BigEndian.Uint64(id[:]))
}
