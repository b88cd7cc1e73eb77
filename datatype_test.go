package coltable

import (
	"testing"
	"time"

	"github.com/domonda/go-types/date"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		value any
		want  DataType
	}{
		{nil, TypeNull},
		{true, TypeBool},
		{int(1), TypeInt},
		{int8(1), TypeInt},
		{uint64(1), TypeInt},
		{float32(1.5), TypeFloat},
		{float64(1.5), TypeFloat},
		{time.Now(), TypeTimestamp},
		{date.Date("2024-01-02"), TypeDate},
		{"x", TypeString},
		{[]byte{1}, TypeBinary},
		{struct{ A int }{1}, TypeStruct},
		{map[string]int{}, TypeStruct},
	}
	for _, tt := range tests {
		if got := typeOf(tt.value); got != tt.want {
			t.Errorf("typeOf(%#v) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestCommonType(t *testing.T) {
	tests := []struct {
		a, b DataType
		want DataType
	}{
		{TypeNull, TypeNull, TypeNull},
		{TypeNull, TypeInt, TypeInt},
		{TypeFloat, TypeNull, TypeFloat},
		{TypeInt, TypeInt, TypeInt},
		{TypeInt, TypeFloat, TypeFloat},
		{TypeFloat, TypeInt, TypeFloat},
		{TypeInt, TypeDecimal, TypeDecimal},
		{TypeFloat, TypeDecimal, TypeDecimal},
		{TypeDate, TypeTimestamp, TypeTimestamp},
		{TypeTimestamp, TypeDate, TypeTimestamp},
		{TypeDate, TypeTime, TypeString},
		{TypeInt, TypeString, TypeString},
		{TypeInt, TypeStruct, TypeString},
		{TypeBool, TypeInt, TypeString},
		{TypeBinary, TypeString, TypeString},
	}
	for _, tt := range tests {
		if got := commonType(tt.a, tt.b); got != tt.want {
			t.Errorf("commonType(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDataTypeAlignment(t *testing.T) {
	right := []DataType{TypeBool, TypeInt, TypeFloat, TypeDecimal, TypeDate, TypeTime, TypeTimestamp}
	for _, typ := range right {
		if typ.Alignment() != AlignRight {
			t.Errorf("%s.Alignment() = %s, want Right", typ, typ.Alignment())
		}
	}
	left := []DataType{TypeNull, TypeString, TypeStruct, TypeBinary}
	for _, typ := range left {
		if typ.Alignment() != AlignLeft {
			t.Errorf("%s.Alignment() = %s, want Left", typ, typ.Alignment())
		}
	}
}
