package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
		{LogLevel(-1), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"Warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogLevelDebug)

	logger.Info("painted %d pixels", 3)
	logger.WithComponent("history").Warn("100%")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], " [INFO] pixelstorm: painted 3 pixels") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], " [WARN] pixelstorm: 100% {component=history}") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogLevelWarn)

	logger.Debug("debug")
	logger.WithComponent("x").Info("info")
	if buf.Len() != 0 {
		t.Errorf("messages below warn were written: %q", buf.String())
	}

	logger.Warn("warn")
	logger.WithComponent("x").Error("error")
	if got := strings.Count(buf.String(), "\n"); got != 2 {
		t.Errorf("got %d lines, want 2", got)
	}
}

func TestLogger_ComponentDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(&buf, LogLevelInfo)
	_ = parent.WithComponent("scripts")

	parent.Info("plain")
	if strings.Contains(buf.String(), "{") {
		t.Errorf("parent gained a component: %q", buf.String())
	}
}

func TestNopLogger(t *testing.T) {
	if NewLogger(nil, LogLevelDebug) != NopLogger {
		t.Error("nil writer should give NopLogger")
	}
	// Must not panic.
	NopLogger.WithComponent("x").Error("dropped")
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pixelstorm.log")

	f, err := OpenLogFile(path)
	if err != nil {
		t.Fatalf("OpenLogFile: %v", err)
	}
	NewLogger(f, LogLevelInfo).Info("hello")
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "pixelstorm: hello") {
		t.Errorf("log file content = %q", data)
	}
}
