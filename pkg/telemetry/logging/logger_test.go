package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"registrar-hq/registrar/pkg/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "", want: slog.LevelInfo},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseLevel(%q) expected error, got nil", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseLevel(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    LogFormat
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: "text", want: FormatText},
		{in: "console", want: FormatConsole},
		{in: "", want: FormatConsole},
		{in: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseFormat(%q) expected error, got nil", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseFormat(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWritesStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("store opened", "path", "test.db")

	out := buf.String()
	if !strings.Contains(out, `"msg":"store opened"`) {
		t.Errorf("output = %q, want JSON message field", out)
	}
	if !strings.Contains(out, `"path":"test.db"`) {
		t.Errorf("output = %q, want structured attribute", out)
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LoggingConfig{Level: "warn", Format: "text"}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("should be filtered")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be filtered") {
		t.Errorf("output = %q, info line should be filtered at warn level", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("output = %q, warn line missing", out)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(config.LoggingConfig{Level: "loud"}, nil); err == nil {
		t.Error("New() expected error for invalid level, got nil")
	}
	if _, err := New(config.LoggingConfig{Level: "info", Format: "yaml"}, nil); err == nil {
		t.Error("New() expected error for invalid format, got nil")
	}
}
