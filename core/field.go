package core

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType discriminates the value stored in a Field
type FieldType uint8

const (
	StringType FieldType = iota
	IntType
	Int64Type
	Uint64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	AnyType
)

// Field is a key-value pair attached to a record by the caller.
// Values are encoded into the fixed-size numeric members wherever
// possible; Any is the fallback for arbitrary types.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Uint64  uint64
	Float64 float64
	Str     string
	Any     interface{}
}

// StringValue renders the field's value as a string, best effort.
// It never fails: unknown or non-serializable values fall through to
// fmt formatting.
func (f Field) StringValue() string {
	switch f.Type {
	case StringType:
		return f.Str
	case IntType, Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case Uint64Type:
		return strconv.FormatUint(f.Uint64, 10)
	case Float64Type:
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(f.Int64 == 1)
	case TimeType:
		return time.Unix(0, f.Int64).Format(time.RFC3339)
	case DurationType:
		return time.Duration(f.Int64).String()
	case ErrorType:
		return f.Str
	case AnyType:
		return fmt.Sprintf("%v", f.Any)
	default:
		return fmt.Sprintf("%v", f.Any)
	}
}
