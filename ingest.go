package coltable

import (
	"fmt"
	"sort"
)

// NamedColumn is a labeled sequence of values used for
// direct column assembly with FromColumns.
type NamedColumn struct {
	Label  string
	Values []any
}

// FromColumns creates a Table from the given columns, preserving
// their order. Columns of unequal length are padded with nulls to
// the longest column. Duplicate labels are kept as distinct columns
// and disambiguated by positional renaming, never merged.
//
// Each column's type is unified across its values: numeric values of
// mixed widths widen to a common numeric type, and values with no
// common non-string supertype fall back to their string
// representation. Ingestion never fails on mixed value types.
func FromColumns(cols []NamedColumn, opts *Options) (*Table, error) {
	o := opts.orDefault()
	return assemble(normalizeColumns(cols, o), cols, -1, o)
}

// FromColumnMap creates a Table from a mapping of column label to
// values. Go maps have no defined order, so the column order is
// taken from opts.ColumnLabels when given, otherwise the labels are
// sorted. A label in opts.ColumnLabels that is missing from the map
// is an ingestion error.
func FromColumnMap(data map[string][]any, opts *Options) (*Table, error) {
	o := opts.orDefault()
	labels := o.ColumnLabels
	if labels == nil {
		labels = make([]string, 0, len(data))
		for label := range data {
			labels = append(labels, label)
		}
		sort.Strings(labels)
	}
	cols := make([]NamedColumn, len(labels))
	for i, label := range labels {
		values, ok := data[label]
		if !ok {
			return nil, fmt.Errorf("%w: column %q not in data", ErrIngest, label)
		}
		cols[i] = NamedColumn{Label: label, Values: values}
	}
	return assemble(normalizeColumns(cols, o), data, -1, o)
}

// FromRows creates a Table from a sequence of rows.
//
// With opts.HasHeader the first row is consumed as column labels.
// Without a header and without opts.ColumnLabels the columns are
// auto-labeled f0, f1, … like unnamed fields. Ragged rows are padded
// with nulls to the widest row. An empty row sequence yields a
// zero-row table with zero or caller-supplied columns.
func FromRows(rows [][]any, opts *Options) (*Table, error) {
	o := opts.orDefault()
	source := rows

	var header []any
	if o.HasHeader && len(rows) > 0 {
		header = rows[0]
		rows = rows[1:]
	}
	numCols := len(header)
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	cols := make([]NamedColumn, numCols)
	for c := range cols {
		if c < len(header) {
			cols[c].Label = stringify(header[c])
		} else {
			cols[c].Label = fmt.Sprintf("f%d", c)
		}
		values := make([]any, len(rows))
		for r, row := range rows {
			if c < len(row) {
				values[r] = row[c]
			}
		}
		cols[c].Values = values
	}
	return assemble(normalizeColumns(cols, o), source, -1, o)
}

// normalizeColumns unifies each column's type across its values,
// widens the values to that type and maps the configured null
// representation onto nulls. The null representation is only
// mapped when it is non-empty, so legitimate empty strings survive.
func normalizeColumns(raw []NamedColumn, opts *Options) []column {
	cols := make([]column, len(raw))
	for i, rc := range raw {
		values := make([]any, len(rc.Values))
		typ := TypeNull
		for j, v := range rc.Values {
			if opts.NullRep != "" {
				if s, ok := v.(string); ok && s == opts.NullRep {
					v = nil
				}
			}
			values[j] = v
			typ = commonType(typ, typeOf(v))
		}
		for j, v := range values {
			values[j] = widen(v, typ)
		}
		cols[i] = column{label: rc.Label, typ: typ, values: values}
	}
	return cols
}

// assemble enforces the table invariants on normalized columns:
// equal column lengths (null padding), positionally renamed
// duplicate labels, and the MaxRows cap with the original input
// length retained as source row count. sourceRows < 0 derives the
// source row count from the longest column.
func assemble(cols []column, source any, sourceRows int, opts *Options) (*Table, error) {
	if len(cols) == 0 && len(opts.ColumnLabels) > 0 {
		cols = make([]column, len(opts.ColumnLabels))
		for i, label := range opts.ColumnLabels {
			cols[i] = column{label: label, typ: TypeNull}
		}
	}
	for i, label := range opts.ColumnLabels {
		if i < len(cols) {
			cols[i].label = label
		}
	}
	dedupeLabels(cols)

	numRows := 0
	for i := range cols {
		if len(cols[i].values) > numRows {
			numRows = len(cols[i].values)
		}
	}
	for i := range cols {
		for len(cols[i].values) < numRows {
			cols[i].values = append(cols[i].values, nil)
		}
	}
	if sourceRows < 0 {
		sourceRows = numRows
	}
	if max := opts.maxRows(); max > 0 && numRows > max {
		for i := range cols {
			cols[i].values = cols[i].values[:max]
		}
		numRows = max
	}
	return &Table{
		cols:           cols,
		numRows:        numRows,
		sourceRowCount: sourceRows,
		maxRows:        opts.maxRows(),
		nullRep:        opts.NullRep,
		source:         source,
	}, nil
}

// dedupeLabels renames duplicate column labels by appending a
// positional counter, keeping every column distinct and addressable.
func dedupeLabels(cols []column) {
	seen := make(map[string]bool, len(cols))
	for i := range cols {
		label := cols[i].label
		for n := 0; seen[label]; n++ {
			label = fmt.Sprintf("%s%d", cols[i].label, n)
		}
		seen[label] = true
		cols[i].label = label
	}
}
