package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

func TestInitConfig(t *testing.T) {
	t.Run("Flags override defaults", func(t *testing.T) {
		// Given: a command with flags set over a config file
		cmd := rootCmd()
		require.NoError(t, cmd.Flags().Parse([]string{
			"--config", writeTestConfig(t, "log-level: info\ngame:\n  first-player: first\n"),
			"--log-level", "debug",
			"--first-player", "second",
			"--max-attempts", "3",
		}))

		// When: building the config
		conf, err := initConfig(cmd, flagsOf(t, cmd))

		// Then: the flag values win
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, config.FirstPlayerSecond, conf.Game.FirstPlayer)
		assert.Equal(t, 3, conf.Game.MaxAttempts)
	})

	t.Run("Error on explicit config path that does not exist", func(t *testing.T) {
		// Given: --config pointing at a missing file
		cmd := rootCmd()
		require.NoError(t, cmd.Flags().Parse([]string{
			"--config", filepath.Join(t.TempDir(), "missing.yml"),
		}))

		// When: building the config
		_, err := initConfig(cmd, flagsOf(t, cmd))

		// Then: the missing file is reported
		require.ErrorIs(t, err, config.ErrConfigNotFound)
	})

	t.Run("Default config path may be missing", func(t *testing.T) {
		// Given: no --config flag and no config.yml in the working directory
		t.Chdir(t.TempDir())
		cmd := rootCmd()
		require.NoError(t, cmd.Flags().Parse([]string{"--max-attempts", "2"}))

		// When: building the config
		conf, err := initConfig(cmd, flagsOf(t, cmd))

		// Then: defaults and flags are used
		require.NoError(t, err)
		assert.Equal(t, 2, conf.Game.MaxAttempts)
	})

	t.Run("Error on invalid flag value", func(t *testing.T) {
		cmd := rootCmd()
		require.NoError(t, cmd.Flags().Parse([]string{
			"--config", writeTestConfig(t, "log-level: info\n"),
			"--first-player", "nobody",
		}))

		_, err := initConfig(cmd, flagsOf(t, cmd))

		require.Error(t, err)
	})
}

func TestInitLogger(t *testing.T) {
	logger := initLogger(&config.Config{LogLevel: "warn", LogFormat: "text"})

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// flagsOf reads the parsed flag values back from the command.
func flagsOf(t *testing.T, cmd *cobra.Command) *flags {
	t.Helper()

	opts := &flags{}
	var err error

	opts.configPath, err = cmd.Flags().GetString("config")
	require.NoError(t, err)
	opts.logLevel, err = cmd.Flags().GetString("log-level")
	require.NoError(t, err)
	opts.firstPlayer, err = cmd.Flags().GetString("first-player")
	require.NoError(t, err)
	opts.maxAttempts, err = cmd.Flags().GetInt("max-attempts")
	require.NoError(t, err)

	return opts
}
