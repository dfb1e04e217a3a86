package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/pixelstorm/internal/config/loader"
	"github.com/dshills/pixelstorm/internal/engine/canvas"
	"github.com/dshills/pixelstorm/internal/engine/history"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "PIXELSTORM_"

// Limits checked by Validate.
const (
	MaxCanvasSize  = canvas.MaxSize
	MaxLayers      = 64
	MaxPaletteSize = canvas.MaxPaletteSize
)

// Config holds every setting.
type Config struct {
	Canvas  CanvasConfig      `toml:"canvas"`
	History HistoryConfig     `toml:"history"`
	Log     LogConfig         `toml:"log"`
	Scripts ScriptsConfig     `toml:"scripts"`
	Keys    map[string]string `toml:"keys"`
}

// CanvasConfig describes the document created at startup.
type CanvasConfig struct {
	Width   int      `toml:"width"`
	Height  int      `toml:"height"`
	Layers  int      `toml:"layers"`
	Palette []string `toml:"palette"`
}

// HistoryConfig bounds the undo log.
type HistoryConfig struct {
	MaxEntries int `toml:"max_entries"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // empty disables logging
}

// ScriptsConfig lists Lua tool scripts.
type ScriptsConfig struct {
	Paths     []string `toml:"paths"`
	TimeoutMS int      `toml:"timeout_ms"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:   32,
			Height:  32,
			Layers:  1,
			Palette: canvas.DefaultPalette().Hexes(),
		},
		History: HistoryConfig{MaxEntries: history.DefaultMaxEntries},
		Log:     LogConfig{Level: "info"},
		Scripts: ScriptsConfig{TimeoutMS: 2000},
		Keys:    map[string]string{},
	}
}

// DefaultPath returns the user config file location, or "" if the user
// config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pixelstorm", "config.toml")
}

// Load layers the file at path and the environment over the defaults.
// A missing file is not an error. The result is validated.
func Load(path string) (*Config, error) {
	return load(loader.NewTOMLLoader(path), newEnvLoader())
}

func newEnvLoader() *loader.EnvLoader {
	env := loader.NewEnvLoader(EnvPrefix)
	env.RestrictSections("canvas", "history", "log", "scripts", "keys")
	return env
}

func load(sources ...loader.Loader) (*Config, error) {
	merged := make(map[string]any)
	for _, src := range sources {
		m, err := src.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, m)
	}

	cfg := Default()
	if len(merged) > 0 {
		if err := decode(merged, cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.expandPaths()
	return cfg, nil
}

// decode re-encodes the merged map and decodes it over cfg, so typed
// fields keep their defaults when a layer does not set them.
func decode(merged map[string]any, cfg *Config) error {
	data, err := toml.Marshal(merged)
	if err != nil {
		return fmt.Errorf("encoding merged config: %w", err)
	}

	// Arrays replace the defaults.
	if has(merged, "canvas", "palette") {
		cfg.Canvas.Palette = nil
	}
	if has(merged, "scripts", "paths") {
		cfg.Scripts.Paths = nil
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return &ParseError{Path: "<merged>", Message: err.Error(), Err: err}
	}
	return nil
}

func has(m map[string]any, section, key string) bool {
	sec, ok := m[section].(map[string]any)
	if !ok {
		return false
	}
	_, ok = sec[key]
	return ok
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.Canvas.Width < 1 || c.Canvas.Width > MaxCanvasSize {
		return &ValidationError{Path: "canvas.width", Value: c.Canvas.Width, Message: fmt.Sprintf("must be 1-%d", MaxCanvasSize)}
	}
	if c.Canvas.Height < 1 || c.Canvas.Height > MaxCanvasSize {
		return &ValidationError{Path: "canvas.height", Value: c.Canvas.Height, Message: fmt.Sprintf("must be 1-%d", MaxCanvasSize)}
	}
	if c.Canvas.Layers < 1 || c.Canvas.Layers > MaxLayers {
		return &ValidationError{Path: "canvas.layers", Value: c.Canvas.Layers, Message: fmt.Sprintf("must be 1-%d", MaxLayers)}
	}
	if len(c.Canvas.Palette) == 0 || len(c.Canvas.Palette) > MaxPaletteSize {
		return &ValidationError{Path: "canvas.palette", Value: len(c.Canvas.Palette), Message: fmt.Sprintf("must have 1-%d entries", MaxPaletteSize)}
	}
	if _, err := canvas.ParsePalette(c.Canvas.Palette); err != nil {
		return &ValidationError{Path: "canvas.palette", Value: c.Canvas.Palette, Message: err.Error()}
	}
	if c.History.MaxEntries < 0 {
		return &ValidationError{Path: "history.max_entries", Value: c.History.MaxEntries, Message: "must not be negative"}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "log.level", Value: c.Log.Level, Message: "must be debug, info, warn or error"}
	}
	if c.Scripts.TimeoutMS < 0 {
		return &ValidationError{Path: "scripts.timeout_ms", Value: c.Scripts.TimeoutMS, Message: "must not be negative"}
	}
	return nil
}

// Palette returns the parsed palette. Validate has already checked it.
func (c *Config) Palette() canvas.Palette {
	pal, err := canvas.ParsePalette(c.Canvas.Palette)
	if err != nil {
		return canvas.DefaultPalette()
	}
	return pal
}

// ScriptTimeout returns the Lua tool timeout.
func (c *Config) ScriptTimeout() time.Duration {
	return time.Duration(c.Scripts.TimeoutMS) * time.Millisecond
}

func (c *Config) expandPaths() {
	c.Log.File = expandHome(c.Log.File)
	for i, p := range c.Scripts.Paths {
		c.Scripts.Paths[i] = expandHome(p)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
