package loader

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFS is an in-memory FileSystem.
type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return []byte(data), nil
}

func TestTOMLLoader(t *testing.T) {
	fsys := memFS{
		"good.toml": "[canvas]\nwidth = 16\npalette = [\"#000000\"]\n",
		"bad.toml":  "[canvas\nwidth = 16\n",
	}

	cfg, err := NewTOMLLoaderWithFS(fsys, "good.toml").Load()
	require.NoError(t, err)
	canvas := cfg["canvas"].(map[string]any)
	assert.EqualValues(t, 16, canvas["width"])

	cfg, err = NewTOMLLoaderWithFS(fsys, "missing.toml").Load()
	require.NoError(t, err)
	assert.Nil(t, cfg)

	_, err = NewTOMLLoaderWithFS(fsys, "bad.toml").Load()
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "bad.toml", pe.Path)
	assert.Equal(t, 1, pe.Line)
	assert.Contains(t, pe.Error(), "bad.toml at line 1")
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"canvas": map[string]any{"width": 8, "height": 8},
		"log":    map[string]any{"level": "info"},
	}
	src := map[string]any{
		"canvas": map[string]any{"width": 32},
		"keys":   map[string]any{"r": "RectFill"},
	}

	got := DeepMerge(dst, src)
	assert.Equal(t, map[string]any{"width": 32, "height": 8}, got["canvas"])
	assert.Equal(t, map[string]any{"level": "info"}, got["log"])
	assert.Equal(t, map[string]any{"r": "RectFill"}, got["keys"])

	assert.Equal(t, map[string]any{"a": 1}, DeepMerge(nil, map[string]any{"a": 1}))
}

func TestEnvLoader(t *testing.T) {
	t.Setenv("PIXELSTORM_HISTORY_MAX_ENTRIES", "50")
	t.Setenv("PIXELSTORM_LOG_LEVEL", "debug")
	t.Setenv("PIXELSTORM_SCRIPTS_PATHS", `["a.lua","b.lua"]`)
	t.Setenv("PIXELSTORM_CONFIG", "/elsewhere.toml")
	t.Setenv("PIXEL_ART_DIR", "/tmp")

	l := NewEnvLoader("PIXELSTORM_")
	l.AddMapping("PIXEL_ART_DIR", "paths.art")
	l.RestrictSections("history", "log", "scripts", "paths")

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"max_entries": int64(50)}, cfg["history"])
	assert.Equal(t, map[string]any{"level": "debug"}, cfg["log"])
	assert.Equal(t, map[string]any{"paths": []any{"a.lua", "b.lua"}}, cfg["scripts"])
	assert.Equal(t, map[string]any{"art": "/tmp"}, cfg["paths"])
	_, hasConfig := cfg["config"]
	assert.False(t, hasConfig, "unknown sections are ignored")
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"yes", true},
		{"Off", false},
		{"1", int64(1)},
		{"-12", int64(-12)},
		{"0.5", 0.5},
		{"v1.2", "v1.2"},
		{`{"a":"b"}`, map[string]any{"a": "b"}},
		{"[broken", "[broken"},
		{"hello", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseValue(tt.in))
		})
	}
}

func TestOSFS(t *testing.T) {
	_, err := DefaultFS().ReadFile("/definitely/not/here.toml")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
