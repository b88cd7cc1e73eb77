package coltable

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/domonda/go-types/charset"
	fs "github.com/ungerik/go-fs"
)

// csvEncodings lists the character encodings tested during CSV
// ingestion, in priority order.
var csvEncodings = []string{
	"UTF-8",
	"UTF-16LE",
	"ISO 8859-1",
	"Windows 1252", // like ANSI
}

// csvEncodingTests contains characters with different byte
// representations across the tested encodings.
var csvEncodingTests = []string{
	"ä", "Ä", "ö", "Ö", "ü", "Ü", "ß", "§", "€",
}

// FromCSVFile creates a Table from a CSV file.
//
// The character encoding and the separator (comma, semicolon or tab)
// are detected from the data. Cell values are inferred per field:
// integers, floats and booleans are parsed, empty fields become
// nulls, everything else stays a string; the usual per-column type
// unification then applies. opts.HasHeader consumes the first row
// as column labels.
func FromCSVFile(ctx context.Context, path string, opts *Options) (*Table, error) {
	data, err := fs.File(path).ReadAllContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", ErrIngest, path, err)
	}
	rows, err := parseCSV(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %w", ErrIngest, path, err)
	}
	t, err := FromRows(rows, opts)
	if err != nil {
		return nil, err
	}
	t.source = path
	return t, nil
}

// parseCSV decodes the raw bytes to UTF-8, detects the separator
// and parses the data into rows of inferred values.
func parseCSV(data []byte) ([][]any, error) {
	encodings := make([]charset.Encoding, 0, len(csvEncodings))
	for _, name := range csvEncodings {
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return nil, err
		}
		encodings = append(encodings, enc)
	}
	data, _, err := charset.AutoDecode(data, encodings, csvEncodingTests)
	if err != nil {
		return nil, err
	}
	data = charset.TrimBOM(data, charset.BOMUTF8)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectSeparator(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]any, len(records))
	for r, record := range records {
		row := make([]any, len(record))
		for c, field := range record {
			row[c] = inferCSVValue(field)
		}
		rows[r] = row
	}
	return rows, nil
}

// detectSeparator counts candidate separators in the first line
// and returns the most frequent one, defaulting to comma.
func detectSeparator(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i != -1 {
		line = data[:i]
	}
	sep, best := ',', 0
	for _, candidate := range []byte{',', ';', '\t'} {
		if n := bytes.Count(line, []byte{candidate}); n > best {
			sep, best = rune(candidate), n
		}
	}
	return sep
}

// inferCSVValue parses a CSV field into a typed value.
func inferCSVValue(field string) any {
	if field == "" {
		return nil
	}
	if i, err := strconv.ParseInt(field, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(field, 64); err == nil {
		return f
	}
	switch field {
	case "true", "True", "TRUE":
		return true
	case "false", "False", "FALSE":
		return false
	}
	return field
}
