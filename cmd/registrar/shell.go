package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"registrar-hq/registrar/pkg/cli"
	"registrar-hq/registrar/pkg/config"
	"registrar-hq/registrar/pkg/shell"
	"registrar-hq/registrar/pkg/store"
	"registrar-hq/registrar/pkg/telemetry/logging"
)

var shellFlags struct {
	dbPath   string
	logLevel string
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive query shell",
	Long: `Start the interactive query shell against the configured database.

The shell presents a numbered menu of canned lookups over the student
records database. Any result can be saved as a JSON or XML file.

Examples:
  # Start with default config
  registrar shell

  # Start with custom config
  registrar shell --config /etc/registrar/config.yaml

  # Override the database path
  registrar shell --db ./students.db`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)

	shellCmd.Flags().StringVar(&shellFlags.dbPath, "db", "", "override database file path")
	shellCmd.Flags().StringVar(&shellFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
}

func runShell(cmd *cobra.Command, args []string) error {
	// Load configuration
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()

	// Apply flag overrides
	if shellFlags.dbPath != "" {
		cfg.Database.Path = shellFlags.dbPath
	}
	if shellFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = shellFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	// Initialize logging based on config
	logger, err := logging.Setup(cfg.Telemetry.Logging)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	// Open the store; a missing database or bootstrap script is fatal.
	st, err := store.Open(store.Config{
		Driver:          cfg.Database.Driver,
		Path:            cfg.Database.Path,
		BootstrapScript: cfg.Database.BootstrapScript,
		BusyTimeout:     cfg.Database.BusyTimeout,
	})
	if err != nil {
		return cli.NewCommandError("shell", err)
	}
	defer st.Close()

	ctx := cli.SetupSignalHandler()

	sh := shell.New(shell.Config{
		Store:     st,
		ExportDir: cfg.Export.Directory,
		Logger:    logger,
	})
	return sh.Run(ctx)
}
