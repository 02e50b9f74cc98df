package ddtrace_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/ddfmt/ddfmt-go/ddtrace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Exercises FromContext against a real tracer provider rather than a
// hand-built SpanContext.
func TestFromContextWithRealProvider(t *testing.T) {
	var buffer bytes.Buffer
	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(&buffer),
	)
	require.NoError(t, err, "exporter")

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
	)
	ctx := context.Background()
	defer func() {
		assert.NoError(t, tracerProvider.Shutdown(ctx), "shutdown")
	}()

	tracer := tracerProvider.Tracer("")
	spanCtx, span := tracer.Start(ctx, "root",
		oteltrace.WithAttributes(attribute.String("component", "ddtrace-test")))
	defer span.End()

	got, ok := ddtrace.FromContext(spanCtx)
	require.True(t, ok, "ambient trace id present")
	assert.False(t, got.IsZero())

	otelID := span.SpanContext().TraceID()
	want := ddtrace.TraceID(binary.BigEndian.Uint64(otelID[8:16]))
	assert.Equal(t, want, got)
}

func TestFromContextWithoutSpan(t *testing.T) {
	_, ok := ddtrace.FromContext(context.Background())
	assert.False(t, ok)
}
