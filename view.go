package coltable

import "fmt"

// View is a read-only window over a contiguous row and column range
// of a Table. It shares the table's column data instead of copying,
// so slicing cost is independent of the table size.
//
// A View observes mutations of the underlying table; the caller is
// responsible for not mutating the table while views derived from
// it are being read, per the Table concurrency contract.
type View struct {
	table   *Table
	rowOff  int
	numRows int
	colOff  int
	numCols int
}

// Slice returns a View over numRows rows starting at rowOff and
// numCols columns starting at colOff. The ranges must lie fully
// within the table.
func (t *Table) Slice(rowOff, numRows, colOff, numCols int) (*View, error) {
	if rowOff < 0 || numRows < 0 || rowOff+numRows > t.numRows {
		return nil, fmt.Errorf("%w: rows [%d..%d) of %d", ErrInvalidRow, rowOff, rowOff+numRows, t.numRows)
	}
	if colOff < 0 || numCols < 0 || colOff+numCols > len(t.cols) {
		return nil, fmt.Errorf("%w: columns [%d..%d) of %d", ErrInvalidColumn, colOff, colOff+numCols, len(t.cols))
	}
	return &View{
		table:   t,
		rowOff:  rowOff,
		numRows: numRows,
		colOff:  colOff,
		numCols: numCols,
	}, nil
}

// Table returns the underlying table of the view.
func (v *View) Table() *Table { return v.table }

// RowOffset returns the view's first row index in the underlying table.
func (v *View) RowOffset() int { return v.rowOff }

// ColumnOffset returns the view's first column index in the underlying table.
func (v *View) ColumnOffset() int { return v.colOff }

// RowCount returns the number of rows in the view.
func (v *View) RowCount() int { return v.numRows }

// ColumnCount returns the number of columns in the view.
func (v *View) ColumnCount() int { return v.numCols }

// Labels returns the labels of the view's columns.
func (v *View) Labels() []string {
	labels := make([]string, v.numCols)
	for i := 0; i < v.numCols; i++ {
		labels[i] = v.table.cols[v.colOff+i].label
	}
	return labels
}

// ColumnType returns the data type of the view column at the given index.
func (v *View) ColumnType(col int) (DataType, error) {
	if col < 0 || col >= v.numCols {
		return TypeNull, fmt.Errorf("%w: %d of %d columns", ErrInvalidColumn, col, v.numCols)
	}
	return v.table.cols[v.colOff+col].typ, nil
}

// Cell returns the raw value at the view-relative row and column.
// The lookup is O(1) like Table.Cell.
func (v *View) Cell(row, col int) (any, error) {
	if row < 0 || row >= v.numRows {
		return nil, fmt.Errorf("%w: %d of %d rows", ErrInvalidRow, row, v.numRows)
	}
	if col < 0 || col >= v.numCols {
		return nil, fmt.Errorf("%w: %d of %d columns", ErrInvalidColumn, col, v.numCols)
	}
	return v.table.cols[v.colOff+col].values[v.rowOff+row], nil
}

// Row returns the raw values of the view row at the given index.
func (v *View) Row(row int) ([]any, error) {
	if row < 0 || row >= v.numRows {
		return nil, fmt.Errorf("%w: %d of %d rows", ErrInvalidRow, row, v.numRows)
	}
	values := make([]any, v.numCols)
	for i := 0; i < v.numCols; i++ {
		values[i] = v.table.cols[v.colOff+i].values[v.rowOff+row]
	}
	return values, nil
}
