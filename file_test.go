package coltable

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/stretchr/testify/require"
)

func writeTestParquetFile(t *testing.T, rec arrow.Record) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.parquet")
	f, err := os.Create(path)
	require.NoError(t, err)

	w, err := pqarrow.NewFileWriter(rec.Schema(), f, parquet.NewWriterProperties(), pqarrow.DefaultWriterProps())
	require.NoError(t, err)
	require.NoError(t, w.Write(rec))
	// w.Close also closes f through the parquet writer's sink
	require.NoError(t, w.Close())
	return path
}

func writeTestArrowFile(t *testing.T, rec arrow.Record) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.arrow")
	f, err := os.Create(path)
	require.NoError(t, err)

	w, err := ipc.NewFileWriter(f,
		ipc.WithSchema(rec.Schema()),
		ipc.WithAllocator(memory.NewGoAllocator()),
	)
	require.NoError(t, err)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func TestFromParquetFile(t *testing.T) {
	rec := buildTestRecord(t)
	defer rec.Release()
	path := writeTestParquetFile(t, rec)

	table, err := FromFile(context.Background(), path, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name", "amount"}, table.Labels())
	require.Equal(t, 3, table.RowCount())
	require.Equal(t, path, table.SourceData())

	cell, err := table.Cell(1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(2), cell)

	cell, err = table.Cell(2, 1)
	require.NoError(t, err)
	require.Nil(t, cell)
}

func TestFromArrowFile(t *testing.T) {
	rec := buildTestRecord(t)
	defer rec.Release()
	path := writeTestArrowFile(t, rec)

	table, err := FromFile(context.Background(), path, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name", "amount"}, table.Labels())
	require.Equal(t, 3, table.RowCount())
	require.Equal(t, path, table.SourceData())

	cell, err := table.Cell(0, 2)
	require.NoError(t, err)
	require.Equal(t, 1.5, cell)
}

func TestFromArrowFileMaxRows(t *testing.T) {
	rec := buildTestRecord(t)
	defer rec.Release()
	path := writeTestArrowFile(t, rec)

	table, err := FromFile(context.Background(), path, &Options{MaxRows: 2})
	require.NoError(t, err)
	require.Equal(t, 2, table.RowCount())
	require.Equal(t, 3, table.SourceRowCount())
}

func TestFromFileUnsupportedExtension(t *testing.T) {
	_, err := FromFile(context.Background(), "data.xlsx", nil)
	require.ErrorIs(t, err, ErrIngest)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), nil)
	require.ErrorIs(t, err, ErrIngest)
}

func TestFromFileCancelled(t *testing.T) {
	rec := buildTestRecord(t)
	defer rec.Release()
	path := writeTestArrowFile(t, rec)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FromFile(ctx, path, nil)
	require.Error(t, err)
}
