package coltable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T) *Table {
	t.Helper()
	table, err := FromColumns([]NamedColumn{
		{Label: "id", Values: []any{1, 2, 3}},
		{Label: "name", Values: []any{"a", "b", "c"}},
	}, nil)
	require.NoError(t, err)
	return table
}

func TestCellOutOfRange(t *testing.T) {
	table := newTestTable(t)

	_, err := table.Cell(3, 0)
	require.ErrorIs(t, err, ErrInvalidRow)
	_, err = table.Cell(-1, 0)
	require.ErrorIs(t, err, ErrInvalidRow)
	_, err = table.Cell(0, 2)
	require.ErrorIs(t, err, ErrInvalidColumn)

	_, err = table.Row(3)
	require.ErrorIs(t, err, ErrInvalidRow)
	_, err = table.ColumnType(-1)
	require.ErrorIs(t, err, ErrInvalidColumn)
}

func TestColumnIndex(t *testing.T) {
	table := newTestTable(t)

	col, err := table.ColumnIndex("name")
	require.NoError(t, err)
	require.Equal(t, 1, col)

	_, err = table.ColumnIndex("nope")
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestAppendRows(t *testing.T) {
	table := newTestTable(t)

	err := table.AppendRows([]any{4, "d"}, []any{5, "e"})
	require.NoError(t, err)
	require.Equal(t, 5, table.RowCount())
	require.Equal(t, 5, table.SourceRowCount())

	row, err := table.Row(4)
	require.NoError(t, err)
	require.Equal(t, []any{int64(5), "e"}, row)
}

func TestAppendRowsWidens(t *testing.T) {
	table := newTestTable(t)

	err := table.AppendRows([]any{4.5, "d"})
	require.NoError(t, err)

	typ, err := table.ColumnType(0)
	require.NoError(t, err)
	require.Equal(t, TypeFloat, typ)

	// existing values are rewidened too
	cell, err := table.Cell(0, 0)
	require.NoError(t, err)
	require.Equal(t, float64(1), cell)
}

func TestAppendRowsBadArityIsAtomic(t *testing.T) {
	table := newTestTable(t)

	err := table.AppendRows([]any{4, "d"}, []any{5})
	require.ErrorIs(t, err, ErrShape)
	require.Equal(t, 3, table.RowCount())

	values, err := table.ColumnValues(0)
	require.NoError(t, err)
	require.Equal(t, []any{int64(1), int64(2), int64(3)}, values)
}

func TestAppendRowsBeyondCap(t *testing.T) {
	table, err := FromColumns([]NamedColumn{
		{Label: "a", Values: []any{1, 2}},
	}, &Options{MaxRows: 3})
	require.NoError(t, err)

	require.NoError(t, table.AppendRows([]any{3}))
	err = table.AppendRows([]any{4})
	require.ErrorIs(t, err, ErrRowLimit)
	require.Equal(t, 3, table.RowCount())
}

func TestInsertRow(t *testing.T) {
	table := newTestTable(t)

	err := table.InsertRow(1, []any{9, "q"})
	require.NoError(t, err)
	require.Equal(t, 4, table.RowCount())
	require.Equal(t, 4, table.SourceRowCount())

	values, err := table.ColumnValues(0)
	require.NoError(t, err)
	require.Equal(t, []any{int64(1), int64(9), int64(2), int64(3)}, values)

	// index == RowCount appends
	require.NoError(t, table.InsertRow(4, []any{5, "z"}))
	cell, err := table.Cell(4, 1)
	require.NoError(t, err)
	require.Equal(t, "z", cell)

	err = table.InsertRow(7, []any{0, ""})
	require.ErrorIs(t, err, ErrInvalidRow)
}

func TestDeleteRow(t *testing.T) {
	table := newTestTable(t)

	require.NoError(t, table.DeleteRow(1))
	require.Equal(t, 2, table.RowCount())
	require.Equal(t, 3, table.SourceRowCount())

	values, err := table.ColumnValues(1)
	require.NoError(t, err)
	require.Equal(t, []any{"a", "c"}, values)

	err = table.DeleteRow(5)
	require.ErrorIs(t, err, ErrInvalidRow)
}

func TestUpdateCell(t *testing.T) {
	table := newTestTable(t)

	require.NoError(t, table.UpdateCell(0, 1, "zz"))
	cell, err := table.Cell(0, 1)
	require.NoError(t, err)
	require.Equal(t, "zz", cell)

	// incompatible value rewidens the whole column
	require.NoError(t, table.UpdateCell(1, 0, 2.5))
	typ, err := table.ColumnType(0)
	require.NoError(t, err)
	require.Equal(t, TypeFloat, typ)
	cell, err = table.Cell(0, 0)
	require.NoError(t, err)
	require.Equal(t, float64(1), cell)

	// null does not change the column type
	require.NoError(t, table.UpdateCell(2, 1, nil))
	cell, err = table.Cell(2, 1)
	require.NoError(t, err)
	require.Nil(t, cell)
	typ, err = table.ColumnType(1)
	require.NoError(t, err)
	require.Equal(t, TypeString, typ)

	err = table.UpdateCell(9, 0, 1)
	require.ErrorIs(t, err, ErrInvalidRow)
}

func TestAppendColumn(t *testing.T) {
	table := newTestTable(t)

	col := table.AppendColumn("flag", true)
	require.Equal(t, 2, col)
	require.Equal(t, []string{"id", "name", "flag"}, table.Labels())

	cell, err := table.Cell(1, col)
	require.NoError(t, err)
	require.Equal(t, true, cell)

	// nil default yields an all-null column, duplicate labels rename
	col = table.AppendColumn("flag", nil)
	require.Equal(t, 3, col)
	label, err := table.Label(col)
	require.NoError(t, err)
	require.Equal(t, "flag0", label)

	cell, err = table.Cell(0, col)
	require.NoError(t, err)
	require.Nil(t, cell)
}

func TestReorder(t *testing.T) {
	table := newTestTable(t)

	require.NoError(t, table.Reorder([]int{2, 0, 1}))
	values, err := table.ColumnValues(1)
	require.NoError(t, err)
	require.Equal(t, []any{"c", "a", "b"}, values)

	err = table.Reorder([]int{0, 1})
	require.ErrorIs(t, err, ErrInvalidPermutation)
	err = table.Reorder([]int{0, 0, 1})
	require.ErrorIs(t, err, ErrInvalidPermutation)
	err = table.Reorder([]int{0, 1, 3})
	require.ErrorIs(t, err, ErrInvalidPermutation)
}
