package config

import "time"

// Default values for configuration fields.
const (
	// Database defaults
	DefaultDatabaseDriver          = "sqlite3"
	DefaultDatabasePath            = "registrar.db"
	DefaultDatabaseBootstrapScript = "create_database.sql"
	DefaultDatabaseBusyTimeout     = 5 * time.Second

	// Export defaults
	DefaultExportDirectory = "."

	// Logging defaults
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "console"
)

// ApplyDefaults fills in default values for any configuration fields that
// were not explicitly set.
func ApplyDefaults(cfg *Config) {
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DefaultDatabaseDriver
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = DefaultDatabasePath
	}
	if cfg.Database.BootstrapScript == "" {
		cfg.Database.BootstrapScript = DefaultDatabaseBootstrapScript
	}
	if cfg.Database.BusyTimeout == 0 {
		cfg.Database.BusyTimeout = DefaultDatabaseBusyTimeout
	}

	if cfg.Export.Directory == "" {
		cfg.Export.Directory = DefaultExportDirectory
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
}
