// Package coltable normalizes tabular data from columns, rows, maps,
// structs, Arrow, Parquet and CSV sources into an in-memory columnar
// Table with O(1) cell access, and provides slicing, stable multi-key
// sorting, rectangular selection extraction, locale-aware cell
// formatting and sampled column width estimation on top of it.
package coltable
