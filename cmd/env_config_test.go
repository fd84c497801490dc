package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvConfig_Empty(t *testing.T) {
	// GIVEN no LECTPLAN_* variables
	t.Setenv("LECTPLAN_LOG", "")
	t.Setenv("LECTPLAN_DAYS", "")
	t.Setenv("LECTPLAN_SEED", "")

	// WHEN the environment is loaded
	cfg, err := LoadEnvConfig()
	require.NoError(t, err)

	// THEN everything stays at its zero value and the seed is absent
	assert.Equal(t, "", cfg.LogLevel)
	assert.Equal(t, 0, cfg.Days)
	assert.Nil(t, cfg.Seed)
}

func TestLoadEnvConfig_AllSet(t *testing.T) {
	t.Setenv("LECTPLAN_LOG", "debug")
	t.Setenv("LECTPLAN_DAYS", "5")
	t.Setenv("LECTPLAN_SEED", "123")

	cfg, err := LoadEnvConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Days)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(123), *cfg.Seed)
}

func TestLoadEnvConfig_MalformedInteger(t *testing.T) {
	// GIVEN a day count that is not an integer
	t.Setenv("LECTPLAN_DAYS", "three")

	// WHEN the environment is loaded
	_, err := LoadEnvConfig()

	// THEN the parse error surfaces instead of a silent zero
	assert.Error(t, err)
}

// newEnvTestCommand builds a scratch command carrying the flags
// applyEnvDefaults knows about, without touching the package commands.
func newEnvTestCommand() (*cobra.Command, *string, *int, *int64) {
	var (
		log  string
		days int
		seed int64
	)
	cmd := &cobra.Command{Use: "scratch", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().StringVar(&log, "log", "error", "")
	cmd.Flags().IntVar(&days, "days", 0, "")
	cmd.Flags().Int64Var(&seed, "seed", 42, "")
	return cmd, &log, &days, &seed
}

func TestApplyEnvDefaults_FillsUnsetFlags(t *testing.T) {
	// GIVEN LECTPLAN_* variables and flags left at their defaults
	t.Setenv("LECTPLAN_LOG", "info")
	t.Setenv("LECTPLAN_DAYS", "3")
	t.Setenv("LECTPLAN_SEED", "999")
	cmd, log, days, seed := newEnvTestCommand()

	// WHEN environment defaults are applied
	applyEnvDefaults(cmd)

	// THEN the environment values land in the flag variables
	assert.Equal(t, "info", *log)
	assert.Equal(t, 3, *days)
	assert.Equal(t, int64(999), *seed)

	// AND the flags now count as set, so input-derived values cannot win
	assert.True(t, cmd.Flags().Changed("days"))
	assert.True(t, cmd.Flags().Changed("seed"))
}

func TestApplyEnvDefaults_ExplicitFlagWins(t *testing.T) {
	// GIVEN an environment value and a flag set on the command line
	t.Setenv("LECTPLAN_DAYS", "3")
	t.Setenv("LECTPLAN_SEED", "999")
	cmd, _, days, seed := newEnvTestCommand()
	require.NoError(t, cmd.Flags().Set("days", "7"))
	require.NoError(t, cmd.Flags().Set("seed", "1"))

	// WHEN environment defaults are applied
	applyEnvDefaults(cmd)

	// THEN the command line value survives
	assert.Equal(t, 7, *days)
	assert.Equal(t, int64(1), *seed)
}

func TestApplyEnvDefaults_NoEnvironment_LeavesDefaults(t *testing.T) {
	// GIVEN no LECTPLAN_* variables
	t.Setenv("LECTPLAN_LOG", "")
	t.Setenv("LECTPLAN_DAYS", "")
	t.Setenv("LECTPLAN_SEED", "")
	cmd, log, days, seed := newEnvTestCommand()

	// WHEN environment defaults are applied
	applyEnvDefaults(cmd)

	// THEN built-in defaults remain and nothing counts as set
	assert.Equal(t, "error", *log)
	assert.Equal(t, 0, *days)
	assert.Equal(t, int64(42), *seed)
	assert.False(t, cmd.Flags().Changed("days"))
	assert.False(t, cmd.Flags().Changed("seed"))
}

func TestApplyEnvDefaults_CommandWithoutFlag(t *testing.T) {
	// GIVEN a command that has no days or seed flag (like validate)
	t.Setenv("LECTPLAN_DAYS", "3")
	var log string
	cmd := &cobra.Command{Use: "scratch", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().StringVar(&log, "log", "error", "")

	// WHEN environment defaults are applied
	applyEnvDefaults(cmd)

	// THEN the missing flag is skipped without error
	assert.Equal(t, "error", log)
}
