package coltable

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	fs "github.com/ungerik/go-fs"
)

// FromFile creates a Table from an on-disk columnar file,
// dispatching on the file extension:
//
//	.parquet, .pqt   Parquet
//	.arrow, .feather Arrow IPC file format
//	.csv             character separated values
//
// File ingestion is the only blocking operation of this package.
// It is cancellable through ctx; cancelling simply discards the
// partially built table. opts.MaxRows caps how many rows are
// materialized into the table.
func FromFile(ctx context.Context, path string, opts *Options) (*Table, error) {
	switch ext := strings.ToLower(fs.File(path).Ext()); ext {
	case ".parquet", ".pqt":
		return FromParquetFile(ctx, path, opts)
	case ".arrow", ".feather":
		return FromArrowFile(ctx, path, opts)
	case ".csv":
		return FromCSVFile(ctx, path, opts)
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrIngest, ext)
	}
}

// FromParquetFile creates a Table from a Parquet file.
func FromParquetFile(ctx context.Context, path string, opts *Options) (*Table, error) {
	data, err := fs.File(path).ReadAllContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", ErrIngest, path, err)
	}
	pf, err := file.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: opening parquet file %q: %w", ErrIngest, path, err)
	}
	defer pf.Close()

	reader, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, memory.NewGoAllocator())
	if err != nil {
		return nil, fmt.Errorf("%w: reading parquet file %q: %w", ErrIngest, path, err)
	}
	arrowTable, err := reader.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: reading parquet file %q: %w", ErrIngest, path, err)
	}
	defer arrowTable.Release()

	t, err := FromArrowTable(arrowTable, opts)
	if err != nil {
		return nil, err
	}
	t.source = path
	return t, nil
}

// FromArrowFile creates a Table from an Arrow IPC (Feather V2) file.
func FromArrowFile(ctx context.Context, path string, opts *Options) (*Table, error) {
	data, err := fs.File(path).ReadAllContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", ErrIngest, path, err)
	}
	reader, err := ipc.NewFileReader(bytes.NewReader(data), ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return nil, fmt.Errorf("%w: opening arrow file %q: %w", ErrIngest, path, err)
	}
	defer reader.Close()

	o := opts.orDefault()
	cols := arrowColumnsFromSchema(reader.Schema())
	sourceRows := 0
	stored := 0
	for i := 0; i < reader.NumRecords(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := reader.Record(i)
		if err != nil {
			return nil, fmt.Errorf("%w: reading arrow file %q: %w", ErrIngest, path, err)
		}
		sourceRows += int(rec.NumRows())
		if max := o.maxRows(); max <= 0 || stored < max {
			limit := sourceRows
			if max := o.maxRows(); max > 0 && max < limit {
				limit = max
			}
			for c := range cols {
				appendArrowValues(&cols[c], rec.Column(c), limit)
			}
			stored = limit
		}
	}
	t, err := assemble(cols, path, sourceRows, o)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// arrowColumnsFromSchema builds empty columns for an Arrow schema.
func arrowColumnsFromSchema(schema *arrow.Schema) []column {
	cols := make([]column, schema.NumFields())
	for i := range cols {
		field := schema.Field(i)
		cols[i] = column{label: field.Name, typ: dataTypeFromArrow(field.Type)}
	}
	return cols
}
