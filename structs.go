package coltable

import (
	"fmt"
	"go/token"
	"reflect"
	"strings"
	"unicode"
)

// StructFieldNaming defines how struct fields are mapped to column
// labels by FromStructs.
//
// nil is a valid value for *StructFieldNaming and is equal to the
// zero value which uses all exported struct fields with their field
// name as column label.
type StructFieldNaming struct {
	// Tag is the struct field tag to be used as column label.
	// If Tag is empty, then every struct field is treated as untagged.
	Tag string
	// Ignore drops struct fields whose label equals this string.
	Ignore string
	// Untagged is called with the struct field name to derive a
	// label for fields without the Tag. If nil, the field name is
	// used unchanged.
	Untagged func(fieldName string) (label string)
}

// DefaultStructFieldNaming uses "col" as label tag, ignores "-"
// labeled fields, and uses SpacePascalCase for untagged fields.
var DefaultStructFieldNaming = StructFieldNaming{
	Tag:      "col",
	Ignore:   "-",
	Untagged: SpacePascalCase,
}

// StructFieldColumn returns the column label for a struct field.
func (n *StructFieldNaming) StructFieldColumn(structField reflect.StructField) string {
	if n == nil {
		return structField.Name
	}
	if n.Tag != "" {
		if tag, ok := structField.Tag.Lookup(n.Tag); ok {
			if i := strings.IndexByte(tag, ','); i != -1 {
				tag = tag[:i]
			}
			if tag != "" {
				return tag
			}
		}
	}
	if n.Untagged == nil {
		return structField.Name
	}
	return n.Untagged(structField.Name)
}

// FromStructs creates a Table from a slice (or pointer to slice) of
// structs, one row per element and one column per exported struct
// field. naming selects labels and ignored fields; nil uses
// DefaultStructFieldNaming. Field values pass through the same
// normalization as every other source: per-column type unification
// and null mapping for nil pointers.
func FromStructs(slice any, naming *StructFieldNaming, opts *Options) (*Table, error) {
	rows := reflect.ValueOf(slice)
	for rows.Kind() == reflect.Pointer && !rows.IsNil() {
		rows = rows.Elem()
	}
	if rows.Kind() != reflect.Slice && rows.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: need slice or array of structs, got %T", ErrIngest, slice)
	}
	structType := rows.Type().Elem()
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: need struct rows, got %s", ErrIngest, structType)
	}
	if naming == nil {
		naming = &DefaultStructFieldNaming
	}

	fields := structFieldTypes(structType)
	var cols []NamedColumn
	var fieldIndices []int
	for i, field := range fields {
		label := naming.StructFieldColumn(field)
		if label == naming.Ignore && naming.Ignore != "" {
			continue
		}
		cols = append(cols, NamedColumn{Label: label, Values: make([]any, rows.Len())})
		fieldIndices = append(fieldIndices, i)
	}
	for r := 0; r < rows.Len(); r++ {
		fieldValues := structFieldValues(rows.Index(r))
		for c, fi := range fieldIndices {
			cols[c].Values[r] = fieldInterface(fieldValues[fi])
		}
	}
	o := opts.orDefault()
	return assemble(normalizeColumns(cols, o), slice, -1, o)
}

// fieldInterface unwraps a struct field value for cell storage,
// turning nil pointers into nulls and dereferencing non-nil ones.
func fieldInterface(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	return v.Interface()
}

// structFieldTypes returns the exported fields of a struct type
// including the inlined fields of any anonymously embedded structs.
func structFieldTypes(structType reflect.Type) (fields []reflect.StructField) {
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		switch {
		case field.Anonymous:
			fields = append(fields, structFieldTypes(field.Type)...)
		case token.IsExported(field.Name):
			fields = append(fields, field)
		}
	}
	return fields
}

// structFieldValues returns the reflect.Value of exported struct
// fields including the inlined fields of anonymously embedded structs.
func structFieldValues(structValue reflect.Value) (values []reflect.Value) {
	if structValue.Kind() == reflect.Pointer {
		structValue = structValue.Elem()
	}
	structType := structValue.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		switch {
		case field.Anonymous:
			values = append(values, structFieldValues(structValue.Field(i))...)
		case token.IsExported(field.Name):
			values = append(values, structValue.Field(i))
		}
	}
	return values
}

// SpacePascalCase inserts spaces before upper case characters within
// PascalCase like names. It also replaces underscore '_' characters
// with spaces. Usable for StructFieldNaming.Untagged.
func SpacePascalCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	lastWasUpper := true
	lastWasSpace := true
	for _, r := range name {
		if r == '_' {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasUpper = false
			lastWasSpace = true
			continue
		}
		isUpper := unicode.IsUpper(r)
		if isUpper && !lastWasUpper && !lastWasSpace {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		lastWasUpper = isUpper
		lastWasSpace = unicode.IsSpace(r)
	}
	return strings.TrimSpace(b.String())
}
