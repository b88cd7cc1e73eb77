package coltable

import (
	"bytes"
	"sort"
	"time"

	"github.com/domonda/go-types/date"
)

// SortKey selects a column and direction for sorting.
type SortKey struct {
	// Col is the column index to sort by.
	Col int
	// Desc sorts in descending instead of ascending order.
	Desc bool
}

// SortIndex returns a permutation of the table's row indices ordered
// by the given keys. The sort is stable and leaves the column data
// untouched: element i of the result is the old index of the row
// that belongs at position i.
//
// Nulls sort before all non-null values in ascending order and after
// them in descending order, uniformly across all types.
func (t *Table) SortIndex(keys ...SortKey) ([]int, error) {
	for _, key := range keys {
		if err := t.checkCol(key.Col); err != nil {
			return nil, err
		}
	}
	perm := make([]int, t.numRows)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		for _, key := range keys {
			col := &t.cols[key.Col]
			c := compareValues(col.typ, col.values[perm[i]], col.values[perm[j]])
			if key.Desc {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
	return perm, nil
}

// Sort reorders the table's rows in place by the given keys.
// It is equivalent to SortIndex followed by Reorder.
func (t *Table) Sort(keys ...SortKey) error {
	perm, err := t.SortIndex(keys...)
	if err != nil {
		return err
	}
	return t.Reorder(perm)
}

// SortIndexByLabel is a convenience variant of SortIndex addressing
// the sort column by its label, using the first matching column.
func (t *Table) SortIndexByLabel(label string, desc bool) ([]int, error) {
	col, err := t.ColumnIndex(label)
	if err != nil {
		return nil, err
	}
	return t.SortIndex(SortKey{Col: col, Desc: desc})
}

// compareValues compares two cell values of a column with the given
// type, returning -1, 0 or +1. nil (null) compares before any
// non-null value.
func compareValues(typ DataType, a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	switch typ {
	case TypeBool:
		av, bv := a.(bool), b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case TypeInt:
		return compareOrdered(a.(int64), b.(int64))
	case TypeFloat, TypeDecimal:
		return compareOrdered(a.(float64), b.(float64))
	case TypeTimestamp:
		av, bv := a.(time.Time), b.(time.Time)
		switch {
		case av.Equal(bv):
			return 0
		case av.Before(bv):
			return -1
		default:
			return 1
		}
	case TypeDate:
		return compareOrdered(string(a.(date.Date)), string(b.(date.Date)))
	case TypeBinary:
		return bytes.Compare(a.([]byte), b.([]byte))
	case TypeString, TypeTime:
		return compareOrdered(a.(string), b.(string))
	default:
		return compareOrdered(stringify(a), stringify(b))
	}
}

func compareOrdered[T int64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
