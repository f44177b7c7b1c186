// Package logging configures structured logging for Registrar.
//
// The package wraps Go's standard log/slog package to provide:
//   - Structured logging with JSON, text, and console formats
//   - Configurable log levels (debug, info, warn, error)
//   - Component-scoped loggers via logger.With("component", ...)
//
// Log output goes to stderr by default so the interactive shell's prompts
// and results on stdout stay clean.
//
// Usage:
//
//	logger, err := logging.Setup(cfg.Telemetry.Logging)
//	if err != nil {
//	    return err
//	}
//	logger.Info("store opened", "path", cfg.Database.Path)
package logging
