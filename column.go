package coltable

import (
	"fmt"
	"time"

	"github.com/domonda/go-types/date"
)

// column is a named, typed sequence of cell values.
// A nil element marks a null value. Non-null elements are stored
// widened to the representation of the column's DataType:
// TypeInt as int64, TypeFloat and TypeDecimal as float64,
// TypeTimestamp as time.Time, TypeDate as date.Date,
// TypeTime as a clock string, TypeString as string.
//
// Column labels are not required to be unique across a table,
// columns are always addressed by position internally.
type column struct {
	label  string
	typ    DataType
	values []any
}

// rewiden converts all values of the column to the representation
// of the given data type and updates the column's type.
func (c *column) rewiden(to DataType) {
	if c.typ == to {
		return
	}
	for i, v := range c.values {
		c.values[i] = widen(v, to)
	}
	c.typ = to
}

// widen converts a value to the storage representation of the
// given data type. nil stays nil. Values that have no conversion
// rule for the target type fall back to their string representation
// when widening to TypeString and are kept as is otherwise.
func widen(v any, to DataType) any {
	if v == nil {
		return nil
	}
	switch to {
	case TypeInt:
		if i, ok := asInt64(v); ok {
			return i
		}
	case TypeFloat, TypeDecimal:
		if f, ok := asFloat64(v); ok {
			return f
		}
	case TypeTimestamp:
		switch t := v.(type) {
		case time.Time:
			return t
		case date.Date:
			if tm, err := time.Parse("2006-01-02", string(t)); err == nil {
				return tm
			}
		}
	case TypeString:
		return stringify(v)
	}
	return v
}

// asInt64 converts any integer value to int64.
func asInt64(v any) (int64, bool) {
	switch i := v.(type) {
	case int:
		return int64(i), true
	case int8:
		return int64(i), true
	case int16:
		return int64(i), true
	case int32:
		return int64(i), true
	case int64:
		return i, true
	case uint:
		return int64(i), true
	case uint8:
		return int64(i), true
	case uint16:
		return int64(i), true
	case uint32:
		return int64(i), true
	case uint64:
		return int64(i), true
	}
	return 0, false
}

// asFloat64 converts any integer or floating-point value to float64.
func asFloat64(v any) (float64, bool) {
	switch f := v.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	}
	if i, ok := asInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

// stringify is the best-effort string fallback used when a column
// widens to TypeString or a value has no formatting rule.
func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case time.Time:
		return s.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(v)
	}
}
