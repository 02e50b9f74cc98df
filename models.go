package ddfmt

import (
	"time"

	"github.com/google/uuid"

	"github.com/ddfmt/ddfmt-go/ddbytes"
	"github.com/ddfmt/ddfmt-go/ddregistry"
	"github.com/ddfmt/ddfmt-go/ddutil"
)

type Option func(*Layer)

// TimeFormatter is the function signature for custom timestamp formatters
// if anything other than the default Datadog form is desired.  The value
// must be appended to the byte slice (which must be returned), including
// any quoting.
//
// For example:
//
//	func timeFormatter(b []byte, t time.Time) []byte {
//		b = append(b, '"')
//		b = append(b, []byte(t.Format(time.RFC3339))...)
//		b = append(b, '"')
//		return b
//	}
//
// The slice may not be safely accessed outside of the duration of the
// call.  The only acceptable operation on the slice is to append.
type TimeFormatter func(b []byte, t time.Time) []byte

// Layer is the formatting core.  One Layer owns one registry of open spans
// and one sink.  All methods are safe for concurrent use; the only
// blocking I/O is the sink write at the end of Event, which happens
// outside every lock, from copied data.
type Layer struct {
	writer        ddbytes.LineWriter
	registry      *ddregistry.Registry
	id            uuid.UUID
	timeFormatter TimeFormatter
}

// WithTimeFormatter overrides how the "timestamp" key is rendered.
func WithTimeFormatter(f TimeFormatter) Option {
	return func(layer *Layer) {
		layer.timeFormatter = f
	}
}

// WithRegistry shares a span registry between layers.  The default is a
// fresh registry per layer.
func WithRegistry(r *ddregistry.Registry) Option {
	return func(layer *Layer) {
		layer.registry = r
	}
}

func defaultTimeFormatter(b []byte, t time.Time) []byte {
	b = append(b, '"')
	b = t.UTC().AppendFormat(b, ddutil.TimestampLayout)
	b = append(b, '"')
	return b
}
