// Package export writes query results to JSON or XML files.
//
// The target format is chosen from the filename extension alone (.json or
// .xml, case-insensitive). Field order within a Record is preserved in both
// formats, so exporting the same ResultSet to the same filename twice
// produces byte-identical files.
//
// Writes overwrite the target file and are not atomic: a crash mid-write can
// leave a partial file behind. This is a known limitation, accepted for a
// local single-operator tool.
package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"registrar-hq/registrar/pkg/record"
)

// Format identifies a supported export format.
type Format string

const (
	// FormatJSON is indented JSON output.
	FormatJSON Format = "json"
	// FormatXML is pretty-printed XML output.
	FormatXML Format = "xml"
)

// FormatForFilename determines the export format from the filename's
// extension, case-insensitively. A filename without a base name or with an
// unsupported extension yields a *FormatError; nothing is written in that
// case.
func FormatForFilename(filename string) (Format, error) {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	if strings.TrimSuffix(base, ext) == "" || ext == "" {
		return "", &FormatError{Filename: filename, Ext: ext}
	}
	switch strings.ToLower(ext) {
	case ".json":
		return FormatJSON, nil
	case ".xml":
		return FormatXML, nil
	default:
		return "", &FormatError{Filename: filename, Ext: ext}
	}
}

// Export serializes the ResultSet to the named file, overwriting it if it
// exists. The format is dispatched from the filename extension.
func Export(rs record.ResultSet, filename string) error {
	format, err := FormatForFilename(filename)
	if err != nil {
		return err
	}
	if rs.Kind() == record.KindNone {
		return &ShapeError{Reason: "result set is neither a record nor a sequence of records"}
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create export file %q: %w", filename, err)
	}

	if err := ExportTo(f, format, rs); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s export to %q: %w", format, filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export file %q: %w", filename, err)
	}

	slog.Default().Info("result exported",
		"component", "export",
		"file", filename,
		"format", string(format),
		"records", rs.Len(),
	)
	return nil
}

// ExportTo serializes the ResultSet to the writer in the given format.
func ExportTo(w io.Writer, format Format, rs record.ResultSet) error {
	if rs.Kind() == record.KindNone {
		return &ShapeError{Reason: "result set is neither a record nor a sequence of records"}
	}
	switch format {
	case FormatJSON:
		return writeJSON(w, rs)
	case FormatXML:
		return writeXML(w, rs)
	default:
		return &FormatError{Ext: string(format)}
	}
}
