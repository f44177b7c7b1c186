package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"registrar-hq/registrar/pkg/record"
)

// RenderRecord writes one record as "Label: value" lines, one field per
// line, in field order. Field names are title-cased with underscores turned
// into spaces (first_name -> "First name").
func RenderRecord(w io.Writer, rec record.Record) error {
	for _, f := range rec {
		value := ""
		if f.Value != nil {
			value = fmt.Sprint(f.Value)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", FieldLabel(f.Name), value); err != nil {
			return err
		}
	}
	return nil
}

// RenderResultSet writes a result set for the operator: a single record as
// one label/value block, a sequence as numbered blocks separated by blank
// lines.
func RenderResultSet(w io.Writer, rs record.ResultSet) error {
	switch rs.Kind() {
	case record.KindSingle:
		return RenderRecord(w, rs.Record())
	case record.KindMany:
		for i, rec := range rs.Records() {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%d.\n", i+1); err != nil {
				return err
			}
			if err := RenderRecord(w, rec); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

// FieldLabel converts a snake_case field name into a display label:
// the first rune is capitalized and underscores become spaces.
func FieldLabel(name string) string {
	label := strings.ReplaceAll(name, "_", " ")
	r, size := utf8.DecodeRuneInString(label)
	if size == 0 {
		return label
	}
	return string(unicode.ToUpper(r)) + label[size:]
}
