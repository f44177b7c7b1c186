package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one named column value of a Record.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered field-name-to-value mapping representing one logical
// result unit, typically shaped from a single database row. Unlike a Go map,
// a Record preserves the order its fields were added in, and that order
// round-trips through both export formats.
type Record []Field

// New builds a Record from the given fields, preserving their order.
func New(fields ...Field) Record {
	return Record(fields)
}

// Names returns the field names in order.
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// Get returns the value for the named field and whether it exists.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// String returns the field value converted to its string form. Missing
// fields render as the empty string.
func (r Record) String(name string) string {
	v, ok := r.Get(name)
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// MarshalJSON serializes the Record as a JSON object with fields emitted
// in insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field name %q: %w", f.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field %q: %w", f.Name, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON parses a JSON object into the Record, preserving the order
// the keys appear in the document.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record: expected JSON object, got %v", tok)
	}

	out := Record{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("record: expected object key, got %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		out = append(out, Field{Name: key, Value: value})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = out
	return nil
}
