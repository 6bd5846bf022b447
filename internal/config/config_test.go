package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

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
	t.Run("Reads the YAML file", func(t *testing.T) {
		// Given: a complete config file
		path := writeConfig(t, "log-level: debug\nlog-file: game.log\nthink-delay: 250ms\nclear-screen: true\n")

		// When: loading it
		conf, err := Load(path)

		// Then: every field is filled
		require.NoError(t, err)
		expected := &Config{
			LogLevel:    "debug",
			LogFile:     "game.log",
			ThinkDelay:  250 * time.Millisecond,
			ClearScreen: true,
		}
		assert.Equal(t, expected, conf)
	})

	t.Run("Defaults for missing keys", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: warn\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the think delay and screen clearing keep their defaults
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, time.Second, conf.ThinkDelay)
		assert.True(t, conf.ClearScreen)
		assert.Empty(t, conf.LogFile)
	})

	t.Run("Explicit zero values are kept", func(t *testing.T) {
		// Given: a config file turning the delay and screen clearing off
		path := writeConfig(t, "think-delay: 0s\nclear-screen: false\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the file wins over the defaults
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Zero(t, conf.ThinkDelay)
		assert.False(t, conf.ClearScreen)
	})

	t.Run("Env overrides the file", func(t *testing.T) {
		// Given: a config file and env overrides
		path := writeConfig(t, "think-delay: 250ms\nclear-screen: true\n")
		t.Setenv("THINK_DELAY", "2s")
		t.Setenv("CLEAR_SCREEN", "false")

		// When: loading it
		conf, err := Load(path)

		// Then: the env values are used
		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, conf.ThinkDelay)
		assert.False(t, conf.ClearScreen)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
	})
}
