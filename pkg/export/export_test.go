package export

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"registrar-hq/registrar/pkg/record"
)

func addressRecord() record.Record {
	return record.New(
		record.Field{Name: "street", Value: "12 Oak Ave"},
		record.Field{Name: "city", Value: "Springfield"},
	)
}

func studentList() record.ResultSet {
	return record.List([]record.Record{
		record.New(
			record.Field{Name: "first_name", Value: "Amelia"},
			record.Field{Name: "last_name", Value: "Harper"},
		),
		record.New(
			record.Field{Name: "first_name", Value: "Noah"},
			record.Field{Name: "last_name", Value: "Bennett"},
		),
	})
}

func TestFormatForFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Format
		wantErr  bool
	}{
		{
			name:     "lowercase json",
			filename: "out.json",
			want:     FormatJSON,
		},
		{
			name:     "uppercase JSON routes to the structural format",
			filename: "OUT.JSON",
			want:     FormatJSON,
		},
		{
			name:     "mixed case xml",
			filename: "result.Xml",
			want:     FormatXML,
		},
		{
			name:     "unsupported extension",
			filename: "out.csv",
			wantErr:  true,
		},
		{
			name:     "no extension",
			filename: "out",
			wantErr:  true,
		},
		{
			name:     "extension without base name",
			filename: ".json",
			wantErr:  true,
		},
		{
			name:     "directory prefix is ignored for dispatch",
			filename: filepath.Join("some", "dir", "out.xml"),
			want:     FormatXML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatForFilename(tt.filename)
			if tt.wantErr {
				var formatErr *FormatError
				if !errors.As(err, &formatErr) {
					t.Fatalf("FormatForFilename(%q) error = %v, want *FormatError", tt.filename, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatForFilename(%q) error = %v", tt.filename, err)
			}
			if got != tt.want {
				t.Errorf("FormatForFilename(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestExportRejectedExtensionWritesNothing(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")

	err := Export(record.One(addressRecord()), target)
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("Export() error = %v, want *FormatError", err)
	}
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Errorf("Export() created %s despite rejected extension", target)
	}
}

func TestExportUntaggedResultSet(t *testing.T) {
	var buf bytes.Buffer
	err := ExportTo(&buf, FormatJSON, record.None())
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("ExportTo() error = %v, want *ShapeError", err)
	}
}

func TestJSONSingleRecord(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportTo(&buf, FormatJSON, record.One(addressRecord())); err != nil {
		t.Fatalf("ExportTo() error = %v", err)
	}

	want := "{\n    \"street\": \"12 Oak Ave\",\n    \"city\": \"Springfield\"\n}\n"
	if buf.String() != want {
		t.Errorf("JSON output = %q, want %q", buf.String(), want)
	}
}

func TestJSONSequencePreservesFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportTo(&buf, FormatJSON, studentList()); err != nil {
		t.Fatalf("ExportTo() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "[") {
		t.Fatalf("sequence output should be a JSON array, got %q", out)
	}
	first := strings.Index(out, "first_name")
	last := strings.Index(out, "last_name")
	if first == -1 || last == -1 || first > last {
		t.Errorf("field order not preserved in %q", out)
	}
}

func TestXMLChildTagCount(t *testing.T) {
	tests := []struct {
		name      string
		set       record.ResultSet
		wantItems int
	}{
		{
			name:      "two records yield two item tags",
			set:       studentList(),
			wantItems: 2,
		},
		{
			name:      "empty sequence yields a bare root",
			set:       record.List(nil),
			wantItems: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := ExportTo(&buf, FormatXML, tt.set); err != nil {
				t.Fatalf("ExportTo() error = %v", err)
			}
			got := strings.Count(buf.String(), "<item>")
			if got != tt.wantItems {
				t.Errorf("item tag count = %d, want %d\noutput:\n%s", got, tt.wantItems, buf.String())
			}
		})
	}
}

func TestXMLSingleRecordUnwrapped(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportTo(&buf, FormatXML, record.One(addressRecord())); err != nil {
		t.Fatalf("ExportTo() error = %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "<item>") {
		t.Errorf("single record should not be wrapped in an item tag:\n%s", out)
	}

	var parsed struct {
		Street string `xml:"street"`
		City   string `xml:"city"`
	}
	if err := xml.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if parsed.Street != "12 Oak Ave" || parsed.City != "Springfield" {
		t.Errorf("parsed = %+v, want street %q and city %q", parsed, "12 Oak Ave", "Springfield")
	}
}

func TestExportIdempotent(t *testing.T) {
	dir := t.TempDir()

	for _, ext := range []string{"json", "xml"} {
		target := filepath.Join(dir, "out."+ext)
		if err := Export(studentList(), target); err != nil {
			t.Fatalf("first Export(%s) error = %v", ext, err)
		}
		first, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if err := Export(studentList(), target); err != nil {
			t.Fatalf("second Export(%s) error = %v", ext, err)
		}
		second, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if !bytes.Equal(first, second) {
			t.Errorf("%s export not byte-identical across runs", ext)
		}
	}
}

func TestExportEndToEnd(t *testing.T) {
	dir := t.TempDir()
	set := record.One(addressRecord())

	jsonPath := filepath.Join(dir, "out.json")
	if err := Export(set, jsonPath); err != nil {
		t.Fatalf("Export(json) error = %v", err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var parsed map[string]string
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := map[string]string{"street": "12 Oak Ave", "city": "Springfield"}
	if len(parsed) != len(want) || parsed["street"] != want["street"] || parsed["city"] != want["city"] {
		t.Errorf("parsed JSON = %v, want %v", parsed, want)
	}

	xmlPath := filepath.Join(dir, "out.xml")
	if err := Export(set, xmlPath); err != nil {
		t.Fatalf("Export(xml) error = %v", err)
	}
	xmlData, err := os.ReadFile(xmlPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var root struct {
		XMLName xml.Name `xml:"data"`
		Street  string   `xml:"street"`
		City    string   `xml:"city"`
	}
	if err := xml.Unmarshal(xmlData, &root); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if root.Street != "12 Oak Ave" || root.City != "Springfield" {
		t.Errorf("parsed XML = %+v, want street %q and city %q", root, "12 Oak Ave", "Springfield")
	}
}
