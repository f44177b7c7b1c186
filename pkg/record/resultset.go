package record

import "encoding/json"

// Kind tags the shape of a ResultSet.
type Kind int

const (
	// KindNone is the zero value; it marks a lookup miss and is not a
	// valid shape for export.
	KindNone Kind = iota
	// KindSingle holds exactly one Record (e.g., one address).
	KindSingle
	// KindMany holds an ordered sequence of homogeneous Records.
	KindMany
)

// ResultSet is a tagged variant over query results: either a single Record
// or an ordered sequence of Records. Consumers dispatch on Kind explicitly
// rather than inspecting the payload's runtime type.
type ResultSet struct {
	kind Kind
	one  Record
	many []Record
}

// None returns the ResultSet representing a lookup miss.
func None() ResultSet {
	return ResultSet{}
}

// One wraps a single Record.
func One(r Record) ResultSet {
	return ResultSet{kind: KindSingle, one: r}
}

// List wraps an ordered sequence of Records. A nil or empty slice is a
// valid (empty) result.
func List(records []Record) ResultSet {
	return ResultSet{kind: KindMany, many: records}
}

// Kind returns the shape tag.
func (s ResultSet) Kind() Kind {
	return s.kind
}

// Record returns the single Record of a KindSingle set. It returns nil for
// any other kind.
func (s ResultSet) Record() Record {
	if s.kind != KindSingle {
		return nil
	}
	return s.one
}

// Records returns the Records of a KindMany set. It returns nil for any
// other kind.
func (s ResultSet) Records() []Record {
	if s.kind != KindMany {
		return nil
	}
	return s.many
}

// Empty reports whether the set represents a lookup miss: either the zero
// value or a sequence with no Records. A single Record is never empty.
func (s ResultSet) Empty() bool {
	switch s.kind {
	case KindSingle:
		return false
	case KindMany:
		return len(s.many) == 0
	default:
		return true
	}
}

// Len returns the number of Records in the set.
func (s ResultSet) Len() int {
	switch s.kind {
	case KindSingle:
		return 1
	case KindMany:
		return len(s.many)
	default:
		return 0
	}
}

// MarshalJSON serializes a single Record as one object and a sequence as an
// array of objects, preserving field order either way. The zero value
// serializes as null.
func (s ResultSet) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case KindSingle:
		return json.Marshal(s.one)
	case KindMany:
		records := s.many
		if records == nil {
			records = []Record{}
		}
		return json.Marshal(records)
	default:
		return []byte("null"), nil
	}
}
