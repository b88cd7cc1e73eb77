package coltable

import (
	"fmt"
)

// Table is the normalized in-memory columnar representation:
// an ordered sequence of equally long, named, typed columns.
//
// A Table is constructed once via one of the From* ingestion
// functions (or direct column assembly with FromColumns) and is
// conceptually immutable afterwards. The mutation methods
// (AppendRows, InsertRow, DeleteRow, UpdateCell, AppendColumn,
// Reorder) are exclusive operations: callers must serialize them
// against concurrent reads, e.g. by confining all calls to one
// goroutine. All read methods are re-entrant and side-effect-free.
type Table struct {
	cols           []column
	numRows        int
	sourceRowCount int
	maxRows        int
	nullRep        string
	source         any

	// OnSelectionCopied is called by CopySelection with the
	// extracted selection rows. It is a pure data hand-off for
	// external copy actions, no formatting is applied.
	OnSelectionCopied func(rows [][]any)
}

// RowCount returns the number of stored rows.
func (t *Table) RowCount() int { return t.numRows }

// SourceRowCount returns the row count of the original input
// before any MaxRows cap was applied. It is always >= RowCount.
func (t *Table) SourceRowCount() int { return t.sourceRowCount }

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.cols) }

// Labels returns the column labels in display order.
func (t *Table) Labels() []string {
	labels := make([]string, len(t.cols))
	for i := range t.cols {
		labels[i] = t.cols[i].label
	}
	return labels
}

// Label returns the label of the column at the given index.
func (t *Table) Label(col int) (string, error) {
	if err := t.checkCol(col); err != nil {
		return "", err
	}
	return t.cols[col].label, nil
}

// ColumnType returns the data type of the column at the given index.
func (t *Table) ColumnType(col int) (DataType, error) {
	if err := t.checkCol(col); err != nil {
		return TypeNull, err
	}
	return t.cols[col].typ, nil
}

// ColumnIndex returns the index of the first column with the given
// label, or ErrColumnNotFound. Labels are not required to be unique,
// columns with duplicate labels beyond the first can only be
// addressed by position.
func (t *Table) ColumnIndex(label string) (int, error) {
	for i := range t.cols {
		if t.cols[i].label == label {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrColumnNotFound, label)
}

// Cell returns the raw value at the given row and column.
// The lookup is O(1) regardless of table size. nil marks a null.
func (t *Table) Cell(row, col int) (any, error) {
	if err := t.checkCell(row, col); err != nil {
		return nil, err
	}
	return t.cols[col].values[row], nil
}

// Row returns the raw values of the row at the given index.
func (t *Table) Row(row int) ([]any, error) {
	if err := t.checkRow(row); err != nil {
		return nil, err
	}
	values := make([]any, len(t.cols))
	for i := range t.cols {
		values[i] = t.cols[i].values[row]
	}
	return values, nil
}

// ColumnValues returns a copy of the raw values of the column
// at the given index.
func (t *Table) ColumnValues(col int) ([]any, error) {
	if err := t.checkCol(col); err != nil {
		return nil, err
	}
	values := make([]any, t.numRows)
	copy(values, t.cols[col].values)
	return values, nil
}

// NullRep returns the configured null replacement display string.
func (t *Table) NullRep() string { return t.nullRep }

// MaxRows returns the configured row cap, or 0 for unlimited.
func (t *Table) MaxRows() int { return t.maxRows }

// SourceData returns the pre-cap, pre-normalization source the
// table was ingested from, for introspection. It is nil for tables
// assembled directly from columns.
func (t *Table) SourceData() any { return t.source }

// AppendRows appends the given rows to the table.
//
// Every row must have exactly one value per column, otherwise
// ErrShape is returned. Appending beyond a configured MaxRows cap
// is rejected with ErrRowLimit; the table never evicts rows.
// The operation is atomic: on error no column is modified.
// Column types widen as needed to represent the new values.
func (t *Table) AppendRows(rows ...[]any) error {
	for _, row := range rows {
		if len(row) != len(t.cols) {
			return fmt.Errorf("%w: got %d values for %d columns", ErrShape, len(row), len(t.cols))
		}
	}
	if t.maxRows > 0 && t.numRows+len(rows) > t.maxRows {
		return fmt.Errorf("%w: %d rows stored, appending %d exceeds cap of %d",
			ErrRowLimit, t.numRows, len(rows), t.maxRows)
	}
	for c := range t.cols {
		typ := t.cols[c].typ
		for _, row := range rows {
			typ = commonType(typ, typeOf(row[c]))
		}
		t.cols[c].rewiden(typ)
		for _, row := range rows {
			t.cols[c].values = append(t.cols[c].values, widen(row[c], typ))
		}
	}
	t.numRows += len(rows)
	t.sourceRowCount += len(rows)
	return nil
}

// InsertRow inserts a row before the given index.
// An index equal to RowCount appends the row at the end.
// The same shape, cap and widening rules as AppendRows apply.
func (t *Table) InsertRow(index int, row []any) error {
	if index < 0 || index > t.numRows {
		return fmt.Errorf("%w: %d of %d rows", ErrInvalidRow, index, t.numRows)
	}
	if len(row) != len(t.cols) {
		return fmt.Errorf("%w: got %d values for %d columns", ErrShape, len(row), len(t.cols))
	}
	if t.maxRows > 0 && t.numRows+1 > t.maxRows {
		return fmt.Errorf("%w: %d rows stored, cap is %d", ErrRowLimit, t.numRows, t.maxRows)
	}
	for c := range t.cols {
		typ := commonType(t.cols[c].typ, typeOf(row[c]))
		t.cols[c].rewiden(typ)
		values := t.cols[c].values
		values = append(values, nil)
		copy(values[index+1:], values[index:])
		values[index] = widen(row[c], typ)
		t.cols[c].values = values
	}
	t.numRows++
	t.sourceRowCount++
	return nil
}

// DeleteRow removes the row at the given index.
// The source row count is left unchanged.
func (t *Table) DeleteRow(row int) error {
	if err := t.checkRow(row); err != nil {
		return err
	}
	for c := range t.cols {
		t.cols[c].values = append(t.cols[c].values[:row], t.cols[c].values[row+1:]...)
	}
	t.numRows--
	return nil
}

// UpdateCell replaces a single value. The column type is re-derived
// only if the new value is incompatible with the current type, using
// the same widening rule as ingestion.
func (t *Table) UpdateCell(row, col int, value any) error {
	if err := t.checkCell(row, col); err != nil {
		return err
	}
	typ := commonType(t.cols[col].typ, typeOf(value))
	t.cols[col].rewiden(typ)
	t.cols[col].values[row] = widen(value, typ)
	return nil
}

// AppendColumn appends a column filled with the given default value
// (nil for an all-null column) and returns the new column index.
// Duplicate labels are kept distinct by positional renaming.
func (t *Table) AppendColumn(label string, defaultValue any) int {
	values := make([]any, t.numRows)
	typ := typeOf(defaultValue)
	value := widen(defaultValue, typ)
	for i := range values {
		values[i] = value
	}
	t.cols = append(t.cols, column{label: label, typ: typ, values: values})
	dedupeLabels(t.cols)
	return len(t.cols) - 1
}

// Reorder rearranges the rows of the table in place so that new
// row i holds the values of old row perm[i]. perm must contain
// every row index exactly once, e.g. a permutation from SortIndex.
func (t *Table) Reorder(perm []int) error {
	if len(perm) != t.numRows {
		return fmt.Errorf("%w: got %d indices for %d rows", ErrInvalidPermutation, len(perm), t.numRows)
	}
	seen := make([]bool, t.numRows)
	for _, p := range perm {
		if p < 0 || p >= t.numRows || seen[p] {
			return fmt.Errorf("%w: index %d", ErrInvalidPermutation, p)
		}
		seen[p] = true
	}
	for c := range t.cols {
		values := make([]any, t.numRows)
		for i, p := range perm {
			values[i] = t.cols[c].values[p]
		}
		t.cols[c].values = values
	}
	return nil
}

func (t *Table) checkRow(row int) error {
	if row < 0 || row >= t.numRows {
		return fmt.Errorf("%w: %d of %d rows", ErrInvalidRow, row, t.numRows)
	}
	return nil
}

func (t *Table) checkCol(col int) error {
	if col < 0 || col >= len(t.cols) {
		return fmt.Errorf("%w: %d of %d columns", ErrInvalidColumn, col, len(t.cols))
	}
	return nil
}

func (t *Table) checkCell(row, col int) error {
	if err := t.checkRow(row); err != nil {
		return err
	}
	return t.checkCol(col)
}
