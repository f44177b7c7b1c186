package cli

import (
	"bytes"
	"strings"
	"testing"

	"registrar-hq/registrar/pkg/record"
)

func TestFieldLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single word", in: "city", want: "City"},
		{name: "snake case", in: "first_name", want: "First name"},
		{name: "multibyte first rune", in: "école", want: "École"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FieldLabel(tt.in); got != tt.want {
				t.Errorf("FieldLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderRecord(t *testing.T) {
	rec := record.New(
		record.Field{Name: "street", Value: "12 Oak Ave"},
		record.Field{Name: "city", Value: "Springfield"},
	)

	var buf bytes.Buffer
	if err := RenderRecord(&buf, rec); err != nil {
		t.Fatalf("RenderRecord() error = %v", err)
	}

	want := "Street: 12 Oak Ave\nCity: Springfield\n"
	if buf.String() != want {
		t.Errorf("RenderRecord() = %q, want %q", buf.String(), want)
	}
}

func TestRenderResultSet(t *testing.T) {
	many := record.List([]record.Record{
		record.New(record.Field{Name: "course_name", Value: "Data Structures"}),
		record.New(record.Field{Name: "course_name", Value: "Discrete Mathematics"}),
	})

	var buf bytes.Buffer
	if err := RenderResultSet(&buf, many); err != nil {
		t.Fatalf("RenderResultSet() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "1.\n") || !strings.Contains(out, "2.\n") {
		t.Errorf("RenderResultSet() = %q, want numbered blocks", out)
	}
	if !strings.Contains(out, "Course name: Data Structures") {
		t.Errorf("RenderResultSet() = %q, want rendered field lines", out)
	}
}
