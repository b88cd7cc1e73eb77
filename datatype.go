package coltable

import (
	"fmt"
	"time"

	"github.com/domonda/go-types/date"
)

// DataType is the logical type of a column.
type DataType int

const (
	// TypeNull represents a column or value without any non-null data.
	TypeNull DataType = iota
	// TypeBool represents boolean data.
	TypeBool
	// TypeInt represents integer data of any width, stored widened as int64.
	TypeInt
	// TypeFloat represents floating-point data, stored widened as float64.
	TypeFloat
	// TypeDecimal represents fixed-precision decimal data.
	TypeDecimal
	// TypeDate represents calendar dates without a time of day.
	TypeDate
	// TypeTime represents a time of day without a date.
	TypeTime
	// TypeTimestamp represents a date and time, optionally zoned.
	TypeTimestamp
	// TypeString represents string data.
	TypeString
	// TypeStruct represents nested or otherwise opaque data.
	TypeStruct
	// TypeBinary represents binary/blob data.
	TypeBinary
)

// String returns the string representation of a DataType.
func (t DataType) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeBool:
		return "Bool"
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	case TypeDecimal:
		return "Decimal"
	case TypeDate:
		return "Date"
	case TypeTime:
		return "Time"
	case TypeTimestamp:
		return "Timestamp"
	case TypeString:
		return "String"
	case TypeStruct:
		return "Struct"
	case TypeBinary:
		return "Binary"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// Category groups data types for alignment and width estimation purposes.
type Category int

const (
	CategoryNull Category = iota
	CategoryBoolean
	CategoryNumeric
	CategoryTemporal
	CategoryText
	CategoryNested
)

// String returns the string representation of a Category.
func (c Category) String() string {
	switch c {
	case CategoryNull:
		return "Null"
	case CategoryBoolean:
		return "Boolean"
	case CategoryNumeric:
		return "Numeric"
	case CategoryTemporal:
		return "Temporal"
	case CategoryText:
		return "Text"
	case CategoryNested:
		return "Nested"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// Category returns the display category of the data type.
func (t DataType) Category() Category {
	switch t {
	case TypeNull:
		return CategoryNull
	case TypeBool:
		return CategoryBoolean
	case TypeInt, TypeFloat, TypeDecimal:
		return CategoryNumeric
	case TypeDate, TypeTime, TypeTimestamp:
		return CategoryTemporal
	case TypeStruct:
		return CategoryNested
	default:
		return CategoryText
	}
}

// Alignment is the canonical horizontal alignment of formatted cell values.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// String returns the string representation of an Alignment.
func (a Alignment) String() string {
	if a == AlignRight {
		return "Right"
	}
	return "Left"
}

// Alignment returns the canonical alignment for the data type:
// right for numeric, temporal and boolean data, left for everything else.
func (t DataType) Alignment() Alignment {
	switch t.Category() {
	case CategoryNumeric, CategoryTemporal, CategoryBoolean:
		return AlignRight
	default:
		return AlignLeft
	}
}

// typeOf classifies a Go value into its DataType.
// nil classifies as TypeNull, unknown types as TypeStruct.
func typeOf(v any) DataType {
	switch v.(type) {
	case nil:
		return TypeNull
	case bool:
		return TypeBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TypeInt
	case float32, float64:
		return TypeFloat
	case time.Time:
		return TypeTimestamp
	case date.Date:
		return TypeDate
	case string:
		return TypeString
	case []byte:
		return TypeBinary
	default:
		return TypeStruct
	}
}

// commonType returns the join of two data types in the widening lattice:
// the most specific type that can represent values of both.
// TypeNull joins to the other type, Int and Float join to Float,
// any numeric type joins with Decimal to Decimal, Date and Timestamp
// join to Timestamp. Every other mixed combination joins to TypeString.
func commonType(a, b DataType) DataType {
	if a == b {
		return a
	}
	if a == TypeNull {
		return b
	}
	if b == TypeNull {
		return a
	}
	if a.Category() == CategoryNumeric && b.Category() == CategoryNumeric {
		if a == TypeDecimal || b == TypeDecimal {
			return TypeDecimal
		}
		return TypeFloat
	}
	if (a == TypeDate && b == TypeTimestamp) || (a == TypeTimestamp && b == TypeDate) {
		return TypeTimestamp
	}
	return TypeString
}
