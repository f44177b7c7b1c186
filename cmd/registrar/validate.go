package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"registrar-hq/registrar/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Load and validate the configuration file without opening the database.

All validation errors are reported together. The command exits non-zero if
the configuration is invalid.

Examples:
  # Validate the default config
  registrar validate

  # Validate a specific file
  registrar validate --config /etc/registrar/config.yaml`,
	RunE: validateConfig,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return err
	}

	fmt.Printf("Configuration %s is valid\n", cfgFile)
	fmt.Printf("  Database driver:   %s\n", cfg.Database.Driver)
	fmt.Printf("  Database path:     %s\n", cfg.Database.Path)
	fmt.Printf("  Bootstrap script:  %s\n", cfg.Database.BootstrapScript)
	fmt.Printf("  Export directory:  %s\n", cfg.Export.Directory)
	fmt.Printf("  Log level:         %s\n", cfg.Telemetry.Logging.Level)
	return nil
}
