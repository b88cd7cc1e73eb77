package coltable

import (
	"time"

	"golang.org/x/text/language"
)

// Options configures table construction and presentation.
// All ingestion functions accept a nil *Options which is
// equal to the zero value.
type Options struct {
	// HasHeader treats the first row of a row-oriented source
	// as column labels instead of data.
	HasHeader bool

	// ColumnLabels overrides source column labels positionally.
	// For map sources it also defines the column order.
	ColumnLabels []string

	// ColumnWidths overrides computed column widths positionally.
	// A zero width means the width is computed from the data.
	ColumnWidths []int

	// NullRep is the display string for null values and is also
	// mapped back onto nulls when encountered in ingested values.
	// The default is the empty string.
	NullRep string

	// MaxRows caps the number of stored rows.
	// Zero or negative means unlimited. The row count of the
	// original input is retained as the table's source row count.
	MaxRows int

	// Lang selects the locale used for number grouping
	// when formatting numeric values.
	Lang language.Tag

	// Location, when non-nil, renders timestamps in this zone
	// instead of the zone they carry.
	Location *time.Location
}

// orDefault returns the options or a zero value if o is nil.
func (o *Options) orDefault() *Options {
	if o == nil {
		return new(Options)
	}
	return o
}

// maxRows returns the configured row cap, or 0 for unlimited.
func (o *Options) maxRows() int {
	if o == nil || o.MaxRows < 0 {
		return 0
	}
	return o.MaxRows
}
