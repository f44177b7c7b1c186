// Package store implements the read-only query layer over the local SQLite
// database of students, courses, enrollments, addresses, and reviews.
//
// Every lookup is a parameterized SELECT; values are always bound by
// position, never interpolated into the query text. A key that matches no
// rows is not an error — it yields an empty result set and the caller
// decides how to report it. Only connectivity failures (unreachable
// database, missing bootstrap script) are returned as errors.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3" // cgo SQLite driver ("sqlite3")
	_ "modernc.org/sqlite"          // pure-Go SQLite driver ("sqlite")
)

// Supported database/sql driver names.
const (
	DriverCgo    = "sqlite3"
	DriverPureGo = "sqlite"
)

// Config contains configuration for opening the store.
type Config struct {
	// Driver is the database/sql driver name: "sqlite3" (cgo) or
	// "sqlite" (pure Go).
	Driver string

	// Path is the database file path. ":memory:" opens a transient
	// in-memory database.
	Path string

	// BootstrapScript is the path to the one-time schema-creation SQL
	// script executed on open. The script must be idempotent.
	BootstrapScript string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// Store wraps a SQLite database handle and exposes the fixed set of
// lookups the query tool offers.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens the database, applies pragmas, and bootstraps the schema from
// the configured SQL script. A missing script or an unreachable database is
// a fatal startup condition for the caller.
func Open(cfg Config) (*Store, error) {
	switch cfg.Driver {
	case DriverCgo, DriverPureGo:
	case "":
		cfg.Driver = DriverCgo
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if cfg.BusyTimeout <= 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	logger := slog.Default().With("component", "store")

	db, err := sql.Open(cfg.Driver, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", cfg.Path, err)
	}

	// One interactive session, one query at a time.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, logger: logger}
	if err := s.initialize(cfg); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("store opened",
		"driver", cfg.Driver,
		"path", cfg.Path,
		"bootstrap_script", cfg.BootstrapScript,
	)
	return s, nil
}

// initialize applies connection pragmas and runs the bootstrap script.
func (s *Store) initialize(cfg Config) error {
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", cfg.BusyTimeout.Milliseconds())); err != nil {
		return fmt.Errorf("failed to set busy_timeout: %w", err)
	}
	if _, err := s.db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if cfg.BootstrapScript == "" {
		return nil
	}
	script, err := os.ReadFile(cfg.BootstrapScript)
	if err != nil {
		return fmt.Errorf("failed to read bootstrap script %q: %w", cfg.BootstrapScript, err)
	}
	if _, err := s.db.Exec(string(script)); err != nil {
		return fmt.Errorf("failed to execute bootstrap script %q: %w", cfg.BootstrapScript, err)
	}
	s.logger.Debug("schema bootstrapped", "script", cfg.BootstrapScript)
	return nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
