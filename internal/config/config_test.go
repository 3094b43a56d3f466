package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file with every section
		path := writeConfig(t, `
log-level: debug
frontend: terminal
seed: 7
window:
  size: 600
  fps: 30
  title: Test
assets:
  field: res/field.png
  mark-o: res/o.png
  mark-x: res/x.png
`)

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: the values come from the file
		expected := &Config{
			LogLevel: "debug",
			LogFile:  defaultTerminalLogFile,
			Frontend: FrontendTerminal,
			Seed:     7,
			Window:   Window{Size: 600, FPS: 30, Title: "Test"},
			Assets:   Assets{Field: "res/field.png", MarkO: "res/o.png", MarkX: "res/x.png"},
		}
		require.Equal(t, expected, conf)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: info\n")

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: the remaining values are defaulted
		assert.Equal(t, FrontendWindow, conf.Frontend)
		assert.Equal(t, 900, conf.Window.Size)
		assert.Equal(t, 60, conf.Window.FPS)
		assert.Equal(t, "Tic Tac Toe", conf.Window.Title)
		assert.Empty(t, conf.Assets.Field)
	})

	t.Run("Missing file uses the environment", func(t *testing.T) {
		// Given: no config file and an override in the environment
		t.Setenv("TICTACTOE_WINDOW_SIZE", "300")

		// When: the config is loaded
		conf := MustLoad(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment wins over the default
		assert.Equal(t, 300, conf.Window.Size)
		assert.Equal(t, 60, conf.Window.FPS)
	})

	t.Run("Panics on an invalid frontend", func(t *testing.T) {
		// Given: a config with an unsupported frontend
		path := writeConfig(t, "frontend: browser\n")

		// Then: loading panics
		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Frontend: FrontendWindow, Window: Window{Size: 900, FPS: 60}}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("Window too small", func(t *testing.T) {
		conf := valid
		conf.Window.Size = 2

		assert.ErrorIs(t, conf.Validate(), ErrWindowTooSmall)
	})

	t.Run("Non positive fps", func(t *testing.T) {
		conf := valid
		conf.Window.FPS = 0

		assert.ErrorIs(t, conf.Validate(), ErrInvalidFPS)
	})

	t.Run("Unknown frontend", func(t *testing.T) {
		conf := valid
		conf.Frontend = "browser"

		assert.ErrorIs(t, conf.Validate(), ErrUnknownFrontend)
	})
}
