package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "registrar",
	Short: "Registrar - student records query tool",
	Long: `Registrar is a command-line query tool over a local relational database
of students, courses, enrollments, addresses, and reviews.

It provides:
  - A fixed menu of canned lookups over the student records database
  - JSON and XML export of any query result
  - One-time schema bootstrap from a SQL script at startup`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
