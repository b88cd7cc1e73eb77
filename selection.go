package coltable

// CellRef addresses a single cell by row and column index.
type CellRef struct {
	Row int
	Col int
}

// SelectRange returns the raw values of the rectangular cell range
// spanned by the two corner cells, inclusive on all sides. The
// corners may be given in any order, the result is always in
// row-major top-left to bottom-right order.
func (t *Table) SelectRange(a, b CellRef) ([][]any, error) {
	if err := t.checkCell(a.Row, a.Col); err != nil {
		return nil, err
	}
	if err := t.checkCell(b.Row, b.Col); err != nil {
		return nil, err
	}
	rowMin, rowMax := min(a.Row, b.Row), max(a.Row, b.Row)
	colMin, colMax := min(a.Col, b.Col), max(a.Col, b.Col)
	rows := make([][]any, 0, rowMax-rowMin+1)
	for r := rowMin; r <= rowMax; r++ {
		row := make([]any, 0, colMax-colMin+1)
		for c := colMin; c <= colMax; c++ {
			row = append(row, t.cols[c].values[r])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CopySelection extracts the cell range like SelectRange and hands
// the result to the table's OnSelectionCopied callback, if any.
// The extracted rows are also returned to the caller.
func (t *Table) CopySelection(a, b CellRef) ([][]any, error) {
	rows, err := t.SelectRange(a, b)
	if err != nil {
		return nil, err
	}
	if t.OnSelectionCopied != nil {
		t.OnSelectionCopied(rows)
	}
	return rows, nil
}
