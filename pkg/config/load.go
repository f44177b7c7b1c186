package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. Environment variables are not consulted; use
// LoadConfigWithEnvOverrides for that functionality.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention REGISTRAR_SECTION_FIELD (e.g., REGISTRAR_DATABASE_PATH) and
// always take precedence over file-based configuration.
//
// The loading sequence is:
//  1. Load YAML from file
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables use the format REGISTRAR_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Database overrides
	if val := os.Getenv("REGISTRAR_DATABASE_DRIVER"); val != "" {
		cfg.Database.Driver = val
	}
	if val := os.Getenv("REGISTRAR_DATABASE_PATH"); val != "" {
		cfg.Database.Path = val
	}
	if val := os.Getenv("REGISTRAR_DATABASE_BOOTSTRAP_SCRIPT"); val != "" {
		cfg.Database.BootstrapScript = val
	}
	if val := os.Getenv("REGISTRAR_DATABASE_BUSY_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Database.BusyTimeout = d
		}
	}

	// Export overrides
	if val := os.Getenv("REGISTRAR_EXPORT_DIRECTORY"); val != "" {
		cfg.Export.Directory = val
	}

	// Logging overrides
	if val := os.Getenv("REGISTRAR_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("REGISTRAR_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
}
