package export

import "fmt"

// FormatError reports a filename whose extension does not select a
// supported export format. It is an operator mistake, not a bug.
type FormatError struct {
	Filename string
	Ext      string
}

func (e *FormatError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("filename %q has no extension; use .json or .xml", e.Filename)
	}
	return fmt.Sprintf("unsupported export extension %q; use .json or .xml", e.Ext)
}

// ShapeError reports data handed to the serializer that is neither a record
// nor a sequence of records. It indicates a caller contract violation and is
// deliberately a distinct type from FormatError.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid export shape: %s", e.Reason)
}
