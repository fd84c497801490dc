package cmd

import (
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// EnvConfig carries process-environment defaults for CLI flags. A variable
// only takes effect when the matching flag is not set on the command line, so
// precedence is flag > LECTPLAN_* variable > built-in default.
type EnvConfig struct {
	LogLevel string `env:"LECTPLAN_LOG"`
	Days     int    `env:"LECTPLAN_DAYS"`
	Seed     *int64 `env:"LECTPLAN_SEED"`
}

// LoadEnvConfig reads LECTPLAN_* variables from the process environment.
func LoadEnvConfig() (*EnvConfig, error) {
	cfg := &EnvConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvDefaults writes environment values into flags the user left unset.
// Values go through the flag set so downstream Changed() checks treat an
// environment default the same as an explicit flag.
func applyEnvDefaults(cmd *cobra.Command) {
	cfg, err := LoadEnvConfig()
	if err != nil {
		logrus.Fatalf("Invalid LECTPLAN_* environment variable: %v", err)
	}

	flags := cmd.Flags()
	if cfg.LogLevel != "" && flags.Lookup("log") != nil && !flags.Changed("log") {
		_ = flags.Set("log", cfg.LogLevel)
	}
	if cfg.Days > 0 && flags.Lookup("days") != nil && !flags.Changed("days") {
		_ = flags.Set("days", strconv.Itoa(cfg.Days))
	}
	if cfg.Seed != nil && flags.Lookup("seed") != nil && !flags.Changed("seed") {
		_ = flags.Set("seed", strconv.FormatInt(*cfg.Seed, 10))
	}
}
