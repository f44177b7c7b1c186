package config

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "database.driver").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateDatabase(&cfg.Database)...)
	errs = append(errs, validateExport(&cfg.Export)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

// validateDatabase validates the database configuration section.
func validateDatabase(cfg *DatabaseConfig) []FieldError {
	var errs []FieldError

	switch cfg.Driver {
	case "sqlite3", "sqlite":
	default:
		errs = append(errs, FieldError{
			Field:   "database.driver",
			Message: fmt.Sprintf("unsupported driver %q (must be \"sqlite3\" or \"sqlite\")", cfg.Driver),
		})
	}

	if cfg.Path == "" {
		errs = append(errs, FieldError{
			Field:   "database.path",
			Message: "database path must not be empty",
		})
	}

	if cfg.BootstrapScript == "" {
		errs = append(errs, FieldError{
			Field:   "database.bootstrap_script",
			Message: "bootstrap script path must not be empty",
		})
	}

	if cfg.BusyTimeout <= 0 {
		errs = append(errs, FieldError{
			Field:   "database.busy_timeout",
			Message: "busy timeout must be positive",
		})
	}

	return errs
}

// validateExport validates the export configuration section.
func validateExport(cfg *ExportConfig) []FieldError {
	var errs []FieldError

	if cfg.Directory == "" {
		errs = append(errs, FieldError{
			Field:   "export.directory",
			Message: "export directory must not be empty",
		})
	}

	return errs
}

// validateTelemetry validates the telemetry configuration section.
func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid log level %q (must be debug, info, warn, or error)", cfg.Logging.Level),
		})
	}

	switch cfg.Logging.Format {
	case "console", "text", "json":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid log format %q (must be console, text, or json)", cfg.Logging.Format),
		})
	}

	return errs
}
