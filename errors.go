package coltable

import "errors"

// Common errors returned by the coltable package.
var (
	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")

	// ErrInvalidColumn is returned when a column index is out of range.
	ErrInvalidColumn = errors.New("invalid column index")

	// ErrShape is returned when a row's arity does not match the column count.
	ErrShape = errors.New("row length does not match column count")

	// ErrRowLimit is returned when appending or inserting rows
	// would grow the table beyond its configured maximum row count.
	ErrRowLimit = errors.New("table is at its maximum row count")

	// ErrIngest is returned when a source has a shape or format
	// that cannot be normalized into a table.
	ErrIngest = errors.New("cannot ingest source")

	// ErrColumnNotFound is returned when a column label is not found.
	ErrColumnNotFound = errors.New("column not found")

	// ErrInvalidPermutation is returned when a row permutation does not
	// contain every row index exactly once.
	ErrInvalidPermutation = errors.New("invalid row permutation")
)
