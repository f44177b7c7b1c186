package config

import "time"

// Config is the root configuration structure for Registrar.
// It contains the database, export, and telemetry sections.
type Config struct {
	// Database contains configuration for the SQLite store including
	// driver selection and the schema bootstrap script.
	Database DatabaseConfig `yaml:"database"`

	// Export contains configuration for result-file export.
	Export ExportConfig `yaml:"export"`

	// Telemetry contains configuration for observability, currently
	// structured logging.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// DatabaseConfig contains configuration for the SQLite store.
type DatabaseConfig struct {
	// Driver selects the database/sql driver: "sqlite3" (cgo) or
	// "sqlite" (pure Go).
	// Default: "sqlite3"
	Driver string `yaml:"driver"`

	// Path is the database file path.
	// Default: "registrar.db"
	Path string `yaml:"path"`

	// BootstrapScript is the path to the one-time schema-creation SQL
	// script executed at startup. A missing script is a fatal startup
	// error.
	// Default: "create_database.sql"
	BootstrapScript string `yaml:"bootstrap_script"`

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// ExportConfig contains configuration for result-file export.
type ExportConfig struct {
	// Directory is the base directory that relative export filenames
	// are resolved against.
	// Default: "."
	Directory string `yaml:"directory"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: "console", "text", "json".
	// Default: "console"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log output.
	// Default: false
	AddSource bool `yaml:"add_source"`
}
