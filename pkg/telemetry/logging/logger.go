package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"registrar-hq/registrar/pkg/config"
)

// LogFormat represents the output format for logs.
type LogFormat string

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON LogFormat = "json"
	// FormatText outputs logs in plain text format.
	FormatText LogFormat = "text"
	// FormatConsole outputs logs in human-readable console format.
	FormatConsole LogFormat = "console"
)

// New creates a *slog.Logger from the logging configuration. The writer
// defaults to os.Stderr so log output never interleaves with the
// interactive prompt on stdout.
func New(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	format, err := parseFormat(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid log format: %w", err)
	}

	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	case FormatText, FormatConsole:
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler), nil
}

// Setup builds a logger from the configuration and installs it as the
// process-wide default.
func Setup(cfg config.LoggingConfig) (*slog.Logger, error) {
	logger, err := New(cfg, nil)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

// parseLevel converts a level string to a slog.Level.
func parseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level %q", level)
	}
}

// parseFormat converts a format string to a LogFormat.
func parseFormat(format string) (LogFormat, error) {
	switch format {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console", "":
		return FormatConsole, nil
	default:
		return FormatConsole, fmt.Errorf("unknown format %q", format)
	}
}
