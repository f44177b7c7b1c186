package export

import (
	"encoding/xml"
	"fmt"
	"io"

	"registrar-hq/registrar/pkg/record"
)

const (
	rootTag = "data"
	itemTag = "item"
)

// writeXML emits the ResultSet as pretty-printed XML with 2-space
// indentation. A sequence becomes one <item> element per Record under the
// <data> root; a single Record's fields become leaf elements directly under
// the root. Field values are string-converted for the text content.
func writeXML(w io.Writer, rs record.ResultSet) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: rootTag}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}

	switch rs.Kind() {
	case record.KindSingle:
		if err := encodeFields(enc, rs.Record()); err != nil {
			return err
		}
	case record.KindMany:
		for _, rec := range rs.Records() {
			item := xml.StartElement{Name: xml.Name{Local: itemTag}}
			if err := enc.EncodeToken(item); err != nil {
				return err
			}
			if err := encodeFields(enc, rec); err != nil {
				return err
			}
			if err := enc.EncodeToken(item.End()); err != nil {
				return err
			}
		}
	default:
		return &ShapeError{Reason: "result set is neither a record nor a sequence of records"}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}

	// The encoder does not terminate the document with a newline.
	_, err := io.WriteString(w, "\n")
	return err
}

// encodeFields emits one leaf element per field, in Record order.
func encodeFields(enc *xml.Encoder, rec record.Record) error {
	for _, f := range rec {
		start := xml.StartElement{Name: xml.Name{Local: f.Name}}
		text := ""
		if f.Value != nil {
			text = fmt.Sprint(f.Value)
		}
		if err := enc.EncodeElement(text, start); err != nil {
			return err
		}
	}
	return nil
}
