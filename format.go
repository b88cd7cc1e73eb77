package coltable

import (
	"encoding/hex"
	"strconv"
	"time"

	"github.com/domonda/go-types/date"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatFunc renders a single non-null cell value as a display string.
type FormatFunc func(v any) string

// Formatter renders raw cell values as display strings.
//
// Formatting never mutates the table: it is a pure projection from
// the stored value and the column type to a string. A Formatter
// returned by NewFormatter is safe for concurrent use.
type Formatter struct {
	// NullRep is the display string for null values.
	NullRep string

	// Lang selects the locale for number grouping, e.g. 1,234,567
	// for English and 1.234.567 for German locales.
	Lang language.Tag

	// Location, when non-nil, renders timestamps in this zone
	// instead of the zone they carry.
	Location *time.Location

	// MaxContentWidth truncates formatted values longer than this
	// many runes, marking the cut with an ellipsis.
	// Zero or negative disables truncation.
	MaxContentWidth int

	// Overrides replaces the built-in rendering per data type.
	// An override is only called for non-null values.
	Overrides map[DataType]FormatFunc

	printer *message.Printer
}

// NewFormatter returns a Formatter configured from the given options,
// carrying over NullRep, Lang and Location. A nil opts is valid and
// yields undecorated formatting.
func NewFormatter(opts *Options) *Formatter {
	o := opts.orDefault()
	return &Formatter{
		NullRep:  o.NullRep,
		Lang:     o.Lang,
		Location: o.Location,
		printer:  message.NewPrinter(o.Lang),
	}
}

// FormatCell renders the cell at the given row and column of the table.
func (f *Formatter) FormatCell(t *Table, row, col int) (string, error) {
	v, err := t.Cell(row, col)
	if err != nil {
		return "", err
	}
	return f.FormatValue(v, t.cols[col].typ), nil
}

// FormatValue renders a raw value of the given column type,
// applying null replacement and width truncation.
func (f *Formatter) FormatValue(v any, typ DataType) string {
	if v == nil {
		return f.NullRep
	}
	return f.truncate(f.render(v, typ))
}

// FullValue renders a raw value like FormatValue but never truncates,
// for tooltips and clipboard-style extraction of long cells.
func (f *Formatter) FullValue(v any, typ DataType) string {
	if v == nil {
		return f.NullRep
	}
	return f.render(v, typ)
}

func (f *Formatter) render(v any, typ DataType) string {
	if fn := f.Overrides[typ]; fn != nil {
		return fn(v)
	}
	switch typ {
	case TypeBool:
		if b, ok := v.(bool); ok {
			return strconv.FormatBool(b)
		}
	case TypeInt:
		if i, ok := v.(int64); ok {
			return f.messagePrinter().Sprintf("%d", i)
		}
	case TypeFloat, TypeDecimal:
		if fl, ok := v.(float64); ok {
			return f.messagePrinter().Sprintf("%v", fl)
		}
	case TypeDate:
		if d, ok := v.(date.Date); ok {
			return string(d)
		}
	case TypeTime:
		if s, ok := v.(string); ok {
			return s
		}
	case TypeTimestamp:
		if t, ok := v.(time.Time); ok {
			if f.Location != nil {
				t = t.In(f.Location)
			}
			return t.Format("2006-01-02T15:04:05.000Z07:00")
		}
	case TypeString:
		if s, ok := v.(string); ok {
			return s
		}
	case TypeBinary:
		if b, ok := v.([]byte); ok {
			return hex.EncodeToString(b)
		}
	}
	return stringify(v)
}

// truncate cuts the string to MaxContentWidth runes,
// replacing the last kept rune with an ellipsis.
func (f *Formatter) truncate(s string) string {
	if f.MaxContentWidth <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= f.MaxContentWidth {
		return s
	}
	if f.MaxContentWidth == 1 {
		return "…"
	}
	return string(runes[:f.MaxContentWidth-1]) + "…"
}

// messagePrinter lazily creates the locale printer for Lang.
// The zero language.Tag formats numbers without grouping.
func (f *Formatter) messagePrinter() *message.Printer {
	if f.printer == nil {
		f.printer = message.NewPrinter(f.Lang)
	}
	return f.printer
}
