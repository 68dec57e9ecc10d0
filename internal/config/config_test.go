package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Uses defaults when the file does not exist", func(t *testing.T) {
		// Given: a path to a missing file
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading the config
		conf, err := Load(path, false)

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "json", conf.LogFormat)
		assert.Equal(t, FirstPlayerRandom, conf.Game.FirstPlayer)
		assert.Equal(t, 0, conf.Game.MaxAttempts)
		assert.Equal(t, 24, conf.Game.NameWidth)
	})

	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file
		path := writeConfig(t, `
log-level: debug
log-format: text
game:
  first-player: second
  max-attempts: 3
  name-width: 10
`)

		// When: loading it
		conf, err := Load(path, false)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "text", conf.LogFormat)
		assert.Equal(t, FirstPlayerSecond, conf.Game.FirstPlayer)
		assert.Equal(t, 3, conf.Game.MaxAttempts)
		assert.Equal(t, 10, conf.Game.NameWidth)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: environment variables and no file
		t.Setenv("GAME_FIRST_PLAYER", "first")
		t.Setenv("GAME_MAX_ATTEMPTS", "5")

		// When: loading without a path
		conf, err := Load("", false)

		// Then: the environment values are used
		require.NoError(t, err)
		assert.Equal(t, FirstPlayerFirst, conf.Game.FirstPlayer)
		assert.Equal(t, 5, conf.Game.MaxAttempts)
	})

	t.Run("Error on invalid value", func(t *testing.T) {
		// Given: an unknown first-player policy
		path := writeConfig(t, "game:\n  first-player: whoever\n")

		// When: loading it
		conf, err := Load(path, false)

		// Then: validation fails
		require.Error(t, err)
		assert.Nil(t, conf)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("Error on missing file that must exist", func(t *testing.T) {
		// Given: a path to a missing file that was asked for explicitly
		path := filepath.Join(t.TempDir(), "typo.yml")

		// When: loading it
		conf, err := Load(path, true)

		// Then: ErrConfigNotFound is returned
		require.ErrorIs(t, err, ErrConfigNotFound)
		assert.Nil(t, conf)
	})

	t.Run("Reads an existing file that must exist", func(t *testing.T) {
		path := writeConfig(t, "log-level: warn\n")

		conf, err := Load(path, true)

		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Rejects negative max attempts", func(t *testing.T) {
		conf := &Config{
			LogLevel:  "info",
			LogFormat: "json",
			Game:      Game{FirstPlayer: FirstPlayerRandom, MaxAttempts: -1, NameWidth: 24},
		}

		require.Error(t, conf.Validate())
	})
}
