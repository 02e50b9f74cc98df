// Package ddnum provides constants shared across the ddfmt ecosystem.
package ddnum

import (
	"fmt"
	"strings"
)

type Level int32

const (
	// The numeric values follow OTEL's severity numbers so that levels
	// compare sensibly against other instrumentation in the process.
	// https://github.com/open-telemetry/opentelemetry-proto/blob/main/opentelemetry/proto/logs/v1/logs.proto
	TraceLevel Level = 2  // trace
	DebugLevel Level = 5  // debug
	InfoLevel  Level = 9  // info
	WarnLevel  Level = 13 // warn
	ErrorLevel Level = 17 // error
)

const MaxLevel = ErrorLevel

func (level Level) String() string {
	switch level {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return fmt.Sprintf("Level(%d)", int32(level))
	}
}

// DatadogString is the uppercase severity name that Datadog's log intake
// expects in the "level" key.
func (level Level) DatadogString() string {
	switch level {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return strings.ToUpper(level.String())
	}
}

// LevelString returns the level whose name matches s (any case).
func LevelString(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return 0, fmt.Errorf("%s does not belong to Level values", s)
	}
}
