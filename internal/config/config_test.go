package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/pixelstorm/internal/engine/history"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Canvas.Width)
	assert.Equal(t, 1, cfg.Canvas.Layers)
	assert.Len(t, cfg.Canvas.Palette, 16)
	assert.Equal(t, history.DefaultMaxEntries, cfg.History.MaxEntries)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 2*time.Second, cfg.ScriptTimeout())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[canvas]
width = 8
palette = ["#000000", "#ffffff"]

[history]
max_entries = 20

[scripts]
paths = ["~/tools.lua", "/abs/more.lua"]

[keys]
r = "RectFill"
"ctrl-z" = "Undo"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Canvas.Width)
	assert.Equal(t, 32, cfg.Canvas.Height, "unset keys keep defaults")
	assert.Equal(t, []string{"#000000", "#ffffff"}, cfg.Canvas.Palette)
	assert.Len(t, cfg.Palette(), 2)
	assert.Equal(t, 20, cfg.History.MaxEntries)
	assert.Equal(t, map[string]string{"r": "RectFill", "ctrl-z": "Undo"}, cfg.Keys)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "tools.lua"), cfg.Scripts.Paths[0])
	assert.Equal(t, "/abs/more.lua", cfg.Scripts.Paths[1])
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "[canvas]\nwidth = 8\n[log]\nlevel = \"warn\"\n")
	t.Setenv("PIXELSTORM_CANVAS_WIDTH", "64")
	t.Setenv("PIXELSTORM_LOG_LEVEL", "debug")
	t.Setenv("PIXELSTORM_CONFIG", "ignored")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Canvas.Width)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadParseError(t *testing.T) {
	_, err := Load(writeConfig(t, "[canvas\n"))
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Path, "config.toml")
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, "[canvas]\ncolour = 3\n"))
	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }, "canvas.width"},
		{"huge height", func(c *Config) { c.Canvas.Height = MaxCanvasSize + 1 }, "canvas.height"},
		{"no layers", func(c *Config) { c.Canvas.Layers = 0 }, "canvas.layers"},
		{"empty palette", func(c *Config) { c.Canvas.Palette = nil }, "canvas.palette"},
		{"bad color", func(c *Config) { c.Canvas.Palette = []string{"#nothex"} }, "canvas.palette"},
		{"negative history", func(c *Config) { c.History.MaxEntries = -1 }, "history.max_entries"},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"negative timeout", func(c *Config) { c.Scripts.TimeoutMS = -5 }, "scripts.timeout_ms"},
	}

	require.NoError(t, Default().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			var ve *ValidationError
			require.True(t, errors.As(cfg.Validate(), &ve))
			assert.Equal(t, tt.path, ve.Path)
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "[canvas]\nlayers = 0\n"))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "canvas.layers", ve.Path)
}
