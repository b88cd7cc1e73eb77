package coltable

import "unicode/utf8"

// DefaultWidthSampleSize is the number of leading rows measured for
// text and nested columns when no explicit sample size is given.
const DefaultWidthSampleSize = 100

// ColumnWidth estimates the display width in runes of the column at
// the given index, including its label.
//
// The estimate avoids formatting every cell of large tables:
// boolean columns have a constant value width, numeric columns only
// format their minimum and maximum values, temporal columns only
// their first non-null value. Text and nested columns format a head
// sample of up to sampleSize rows (DefaultWidthSampleSize if
// sampleSize <= 0), so a long value below the sample is not
// accounted for. A positive MaxContentWidth on the formatter bounds
// the result regardless.
func (f *Formatter) ColumnWidth(t *Table, col, sampleSize int) (int, error) {
	if err := t.checkCol(col); err != nil {
		return 0, err
	}
	c := &t.cols[col]
	width := utf8.RuneCountInString(c.label)
	if t.numRows > 0 {
		if sampleSize <= 0 {
			sampleSize = DefaultWidthSampleSize
		}
		for _, v := range f.widthCandidates(c, sampleSize) {
			if w := utf8.RuneCountInString(f.FormatValue(v, c.typ)); w > width {
				width = w
			}
		}
	}
	if f.MaxContentWidth > 0 && width > f.MaxContentWidth {
		width = f.MaxContentWidth
	}
	return width, nil
}

// widthCandidates returns the cell values whose formatted widths
// bound the column's content width.
func (f *Formatter) widthCandidates(c *column, sampleSize int) []any {
	switch c.typ.Category() {
	case CategoryBoolean:
		return []any{false}
	case CategoryNumeric:
		var min, max any
		for _, v := range c.values {
			if v == nil {
				continue
			}
			if min == nil || compareValues(c.typ, v, min) < 0 {
				min = v
			}
			if max == nil || compareValues(c.typ, v, max) > 0 {
				max = v
			}
		}
		if min == nil {
			return []any{nil}
		}
		return []any{min, max}
	case CategoryTemporal:
		// Formatted temporal values have uniform width,
		// the first non-null value is representative.
		for _, v := range c.values {
			if v != nil {
				return []any{v}
			}
		}
		return []any{nil}
	default:
		if len(c.values) <= sampleSize {
			return c.values
		}
		return c.values[:sampleSize]
	}
}

// ColumnWidths estimates the widths of all columns of the table,
// honoring positive positional overrides from opts.ColumnWidths.
// See ColumnWidth for the estimation rules.
func (f *Formatter) ColumnWidths(t *Table, opts *Options, sampleSize int) ([]int, error) {
	o := opts.orDefault()
	widths := make([]int, len(t.cols))
	for col := range t.cols {
		if col < len(o.ColumnWidths) && o.ColumnWidths[col] > 0 {
			widths[col] = o.ColumnWidths[col]
			continue
		}
		w, err := f.ColumnWidth(t, col, sampleSize)
		if err != nil {
			return nil, err
		}
		widths[col] = w
	}
	return widths, nil
}
