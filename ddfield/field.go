// Package ddfield holds the key/value pairs that spans and events record.
// The value side is a closed tagged variant rather than an open interface so
// that formatting never needs dynamic dispatch: anything that does not fit
// one of the scalar kinds is carried as a pre-rendered structured value and
// falls back to its textual form when it cannot be serialized.
package ddfield

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mohae/deepcopy"
)

type Type int

const (
	UnsetType Type = iota
	IntType
	UintType
	Float64Type
	BoolType
	StringType
	TimeType
	ErrorType
	AnyType
)

// Field is heavily influenced by Uber's zapcore.Field
type Field struct {
	Key    string
	Type   Type
	Int    int64
	Float  float64
	String string
	Any    interface{}
}

func Int64(k string, v int64) Field   { return Field{Key: k, Type: IntType, Int: v} }
func Int32(k string, v int32) Field   { return Field{Key: k, Type: IntType, Int: int64(v)} }
func Int(k string, v int) Field       { return Field{Key: k, Type: IntType, Int: int64(v)} }
func Uint64(k string, v uint64) Field { return Field{Key: k, Type: UintType, Any: v} }
func Uint32(k string, v uint32) Field { return Field{Key: k, Type: UintType, Any: uint64(v)} }
func Uint(k string, v uint) Field     { return Field{Key: k, Type: UintType, Any: uint64(v)} }
func Float64(k string, v float64) Field {
	return Field{Key: k, Type: Float64Type, Float: v}
}
func Bool(k string, v bool) Field      { return Field{Key: k, Type: BoolType, Any: v} }
func String(k string, v string) Field  { return Field{Key: k, Type: StringType, String: v} }
func Time(k string, v time.Time) Field { return Field{Key: k, Type: TimeType, Any: v} }
func Error(k string, v error) Field    { return Field{Key: k, Type: ErrorType, Any: v} }

// AnyImmutable can be used for a value that is not going to be modified
// after this call.
func AnyImmutable(k string, v interface{}) Field { return Field{Key: k, Type: AnyType, Any: v} }

// Any can be used for a value that might be modified after this call.  The
// registry keeps field values past the recording call, so the value is
// copied using https://github.com/mohae/deepcopy 's Copy().
func Any(k string, v interface{}) Field {
	return Field{Key: k, Type: AnyType, Any: deepcopy.Copy(v)}
}

// Text renders the field's value as plain text.  It is the fallback used
// wherever a string is needed regardless of the field's shape.
func (f Field) Text() string {
	switch f.Type {
	case IntType:
		return strconv.FormatInt(f.Int, 10)
	case UintType:
		return strconv.FormatUint(f.Any.(uint64), 10)
	case Float64Type:
		return strconv.FormatFloat(f.Float, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(f.Any.(bool))
	case StringType:
		return f.String
	case TimeType:
		return f.Any.(time.Time).UTC().Format(time.RFC3339Nano)
	case ErrorType:
		if e, ok := f.Any.(error); ok && e != nil {
			return e.Error()
		}
		return "nil"
	case AnyType:
		return fmt.Sprintf("%+v", f.Any)
	case UnsetType:
		fallthrough
	default:
		return ""
	}
}
