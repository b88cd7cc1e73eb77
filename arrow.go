package coltable

import (
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/domonda/go-types/date"
)

// FromArrowTable creates a Table from an Apache Arrow table.
//
// All cell values are materialized into the coltable representation,
// so the caller may Release the Arrow table afterwards. Duplicate
// field names (which Arrow allows) are disambiguated by positional
// renaming. opts.MaxRows caps materialization while the Arrow
// table's full row count is retained as source row count.
func FromArrowTable(tbl arrow.Table, opts *Options) (*Table, error) {
	o := opts.orDefault()
	limit := int(tbl.NumRows())
	if max := o.maxRows(); max > 0 && max < limit {
		limit = max
	}
	cols := make([]column, tbl.NumCols())
	for i := range cols {
		field := tbl.Schema().Field(i)
		cols[i] = column{
			label:  field.Name,
			typ:    dataTypeFromArrow(field.Type),
			values: make([]any, 0, limit),
		}
		for _, chunk := range tbl.Column(i).Data().Chunks() {
			if len(cols[i].values) >= limit {
				break
			}
			appendArrowValues(&cols[i], chunk, limit)
		}
	}
	return assemble(cols, tbl, int(tbl.NumRows()), o)
}

// FromArrowRecord creates a Table from a single Arrow record batch.
// See FromArrowTable for the materialization semantics.
func FromArrowRecord(rec arrow.Record, opts *Options) (*Table, error) {
	o := opts.orDefault()
	limit := int(rec.NumRows())
	if max := o.maxRows(); max > 0 && max < limit {
		limit = max
	}
	cols := make([]column, rec.NumCols())
	for i := range cols {
		field := rec.Schema().Field(i)
		cols[i] = column{
			label:  field.Name,
			typ:    dataTypeFromArrow(field.Type),
			values: make([]any, 0, limit),
		}
		appendArrowValues(&cols[i], rec.Column(i), limit)
	}
	return assemble(cols, rec, int(rec.NumRows()), o)
}

// dataTypeFromArrow maps an Arrow data type onto the coltable
// type lattice. Nested and unknown Arrow types map to TypeStruct
// and are materialized via their string representation.
func dataTypeFromArrow(dt arrow.DataType) DataType {
	switch dt.ID() {
	case arrow.NULL:
		return TypeNull
	case arrow.BOOL:
		return TypeBool
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return TypeInt
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return TypeFloat
	case arrow.DECIMAL128, arrow.DECIMAL256:
		return TypeDecimal
	case arrow.DATE32, arrow.DATE64:
		return TypeDate
	case arrow.TIME32, arrow.TIME64:
		return TypeTime
	case arrow.TIMESTAMP:
		return TypeTimestamp
	case arrow.STRING, arrow.LARGE_STRING:
		return TypeString
	case arrow.BINARY, arrow.LARGE_BINARY, arrow.FIXED_SIZE_BINARY:
		return TypeBinary
	default:
		return TypeStruct
	}
}

// appendArrowValues appends the values of an Arrow array to the
// column, stopping at limit. Arrow nulls become nil cells.
func appendArrowValues(col *column, arr arrow.Array, limit int) {
	for i := 0; i < arr.Len() && len(col.values) < limit; i++ {
		if arr.IsNull(i) {
			col.values = append(col.values, nil)
			continue
		}
		col.values = append(col.values, arrowValue(arr, i))
	}
}

// arrowValue converts a single non-null Arrow array element to the
// coltable storage representation of its column type.
func arrowValue(arr arrow.Array, i int) any {
	switch a := arr.(type) {
	case *array.Boolean:
		return a.Value(i)
	case *array.Int8:
		return int64(a.Value(i))
	case *array.Int16:
		return int64(a.Value(i))
	case *array.Int32:
		return int64(a.Value(i))
	case *array.Int64:
		return a.Value(i)
	case *array.Uint8:
		return int64(a.Value(i))
	case *array.Uint16:
		return int64(a.Value(i))
	case *array.Uint32:
		return int64(a.Value(i))
	case *array.Uint64:
		return int64(a.Value(i))
	case *array.Float32:
		return float64(a.Value(i))
	case *array.Float64:
		return a.Value(i)
	case *array.String:
		return a.Value(i)
	case *array.LargeString:
		return a.Value(i)
	case *array.Binary:
		return append([]byte(nil), a.Value(i)...)
	case *array.LargeBinary:
		return append([]byte(nil), a.Value(i)...)
	case *array.FixedSizeBinary:
		return append([]byte(nil), a.Value(i)...)
	case *array.Date32:
		return date.Date(a.Value(i).ToTime().Format("2006-01-02"))
	case *array.Date64:
		return date.Date(a.Value(i).ToTime().Format("2006-01-02"))
	case *array.Timestamp:
		typ := a.DataType().(*arrow.TimestampType)
		t := a.Value(i).ToTime(typ.Unit)
		if typ.TimeZone != "" && typ.TimeZone != "UTC" {
			if loc, err := time.LoadLocation(typ.TimeZone); err == nil {
				t = t.In(loc)
			}
		}
		return t
	case *array.Time32:
		typ := a.DataType().(*arrow.Time32Type)
		return a.Value(i).ToTime(typ.Unit).Format("15:04:05.000")
	case *array.Time64:
		typ := a.DataType().(*arrow.Time64Type)
		return a.Value(i).ToTime(typ.Unit).Format("15:04:05.000")
	case *array.Decimal128:
		typ := a.DataType().(*arrow.Decimal128Type)
		return a.Value(i).ToFloat64(typ.Scale)
	case *array.Decimal256:
		typ := a.DataType().(*arrow.Decimal256Type)
		return a.Value(i).ToFloat64(typ.Scale)
	default:
		// Nested and exotic types keep their canonical string form.
		return arr.ValueStr(i)
	}
}
