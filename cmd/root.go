package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// CLI flags shared by every subcommand
	logLevel string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "lectplan",
	Short: "Partition ordered lectures into study days of minimum total complexity",
	Long: `lectplan splits an ordered sequence of lecture complexities into a fixed
number of contiguous study days. A day costs as much as its hardest lecture;
the planner minimizes the sum of day costs over all valid splits.`,
}

// validFormats maps accepted output format names.
var validFormats = map[string]bool{
	"text": true,
	"yaml": true,
	"json": true,
}

// setupCommand applies LECTPLAN_* environment defaults to unset flags and
// configures logging. Every subcommand calls this first.
func setupCommand(cmd *cobra.Command) {
	applyEnvDefaults(cmd)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// registerCommonFlags attaches the flags every subcommand carries.
func registerCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
