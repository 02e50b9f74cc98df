package ddtrace_test

import (
	"testing"

	"github.com/ddfmt/ddfmt-go/ddtrace"

	"github.com/stretchr/testify/assert"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestNewIDsAreNonZeroAndDistinct(t *testing.T) {
	a := ddtrace.NewSpanID()
	b := ddtrace.NewSpanID()
	assert.False(t, a.IsZero())
	assert.False(t, b.IsZero())
	assert.NotEqual(t, a, b)

	ta := ddtrace.NewTraceID()
	tb := ddtrace.NewTraceID()
	assert.False(t, ta.IsZero())
	assert.NotEqual(t, ta, tb)
}

func TestTraceIDFromOTelKeepsLowBytes(t *testing.T) {
	id := oteltrace.TraceID{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	}
	assert.Equal(t, ddtrace.TraceID(0x0102030405060708), ddtrace.TraceIDFromOTel(id))
}

func TestSpanIDFromOTel(t *testing.T) {
	id := oteltrace.SpanID{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00}
	assert.Equal(t, ddtrace.SpanID(0x100), ddtrace.SpanIDFromOTel(id))
}

func TestIDStringsAreUnsignedDecimal(t *testing.T) {
	assert.Equal(t, "18446744073709551615", ddtrace.TraceID(1<<64-1).String())
	assert.Equal(t, "256", ddtrace.SpanID(0x100).String())
}
