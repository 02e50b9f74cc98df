package ddtrace

import (
	"context"

	oteltrace "go.opentelemetry.io/otel/trace"
)

// FromContext reads the trace id of an ambient OpenTelemetry span context,
// if one is present.  The read is one-way: nothing is recorded back into
// the OpenTelemetry side.
func FromContext(ctx context.Context) (TraceID, bool) {
	sc := oteltrace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return 0, false
	}
	return TraceIDFromOTel(sc.TraceID()), true
}
