package ddfmt

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ddfmt/ddfmt-go/ddbytes"
	"github.com/ddfmt/ddfmt-go/ddfield"
	"github.com/ddfmt/ddfmt-go/ddnum"
	"github.com/ddfmt/ddfmt-go/ddregistry"
)

func New(w ddbytes.LineWriter, opts ...Option) *Layer {
	layer := &Layer{
		writer:        w,
		registry:      ddregistry.New(),
		id:            uuid.New(),
		timeFormatter: defaultTimeFormatter,
	}
	for _, f := range opts {
		f(layer)
	}
	return layer
}

// Default is the usual production setup: a fresh layer writing to stdout.
func Default() *Layer {
	return New(ddbytes.Stdout())
}

func (layer *Layer) ID() string { return "ddfmt-" + layer.id.String() }

// Registry exposes the layer's span registry so a host integration can
// drive it directly.
func (layer *Layer) Registry() *ddregistry.Registry { return layer.registry }

// SpanCreated is the host framework's span-creation callback.  parent is
// ddregistry.NoSpan for a root span; for root spans the ambient
// OpenTelemetry trace id, if ctx carries one, seeds the span's trace id.
// Fields recorded at creation time may be supplied.
func (layer *Layer) SpanCreated(ctx context.Context, key, parent ddregistry.SpanKey, fields ...ddfield.Field) {
	layer.registry.SpanCreated(ctx, key, parent, fields...)
}

// FieldsRecorded is the host framework's field-recording callback for an
// open span.
func (layer *Layer) FieldsRecorded(key ddregistry.SpanKey, fields ...ddfield.Field) {
	layer.registry.FieldsRecorded(key, fields...)
}

// SpanClosed is the host framework's span-close callback.
func (layer *Layer) SpanClosed(key ddregistry.SpanKey) {
	layer.registry.SpanClosed(key)
}

// Event formats and writes one record.  current is the innermost open span
// enclosing the event, or ddregistry.NoSpan for a bare event; the
// enclosing chain is walked from the registry.  The timestamp is captured
// here, at formatting time.  The only error Event can return is a failed
// sink write; the record is never partially written and never retried.
func (layer *Layer) Event(level ddnum.Level, message string, target string, current ddregistry.SpanKey, fields ...ddfield.Field) error {
	ts := time.Now()
	merged := ddfield.Merge(layer.registry.FieldChain(current), fields)

	line := logLine{
		timestamp: ts,
		level:     level,
		message:   message,
		fields:    merged,
		target:    target,
	}
	if current != ddregistry.NoSpan {
		if ids, ok := layer.registry.IdentifiersFor(current); ok {
			line.ids = &ids
		}
	}

	// everything below runs on copies; a slow sink cannot stall the
	// registry
	if err := layer.writer.WriteLine(line.format(layer.timeFormatter)); err != nil {
		return errors.Wrap(err, "write datadog log line")
	}
	return nil
}

// Close closes the sink.  The layer must not be used afterwards.
func (layer *Layer) Close() {
	layer.writer.Close()
}
