package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogLevel is the severity of a log line.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLogLevel maps a config or flag value to a level. "warning" is
// accepted for warn; anything unrecognized is info.
func ParseLogLevel(s string) LogLevel {
	s = strings.ToUpper(s)
	if s == "WARNING" {
		return LogLevelWarn
	}
	for i, name := range levelNames {
		if s == name {
			return LogLevel(i)
		}
	}
	return LogLevelInfo
}

// Logger writes one line per call:
//
//	2026-01-02T15:04:05.000 [WARN] pixelstorm: message {component=scripts}
//
// The terminal belongs to the renderer, so the sink is normally a file.
// Loggers from WithComponent share their parent's sink and lock.
type Logger struct {
	sink      *logSink
	level     LogLevel
	component string
}

type logSink struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string
}

// NopLogger discards everything.
var NopLogger = &Logger{}

// NewLogger returns a logger writing lines at or above level to w.
// A nil w gives a logger that discards everything.
func NewLogger(w io.Writer, level LogLevel) *Logger {
	if w == nil {
		return NopLogger
	}
	return &Logger{sink: &logSink{w: w, prefix: "pixelstorm"}, level: level}
}

// OpenLogFile opens path for appending, creating parent directories.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// WithComponent returns a logger that tags its lines with component.
func (l *Logger) WithComponent(component string) *Logger {
	child := *l
	child.component = component
	return &child
}

func (l *Logger) Debug(format string, args ...any) { l.write(LogLevelDebug, format, args) }
func (l *Logger) Info(format string, args ...any)  { l.write(LogLevelInfo, format, args) }
func (l *Logger) Warn(format string, args ...any)  { l.write(LogLevelWarn, format, args) }
func (l *Logger) Error(format string, args ...any) { l.write(LogLevelError, format, args) }

func (l *Logger) write(level LogLevel, format string, args []any) {
	if l.sink == nil || level < l.level {
		return
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	line := fmt.Sprintf("%s [%s] %s: %s", time.Now().Format("2006-01-02T15:04:05.000"), level, l.sink.prefix, msg)
	if l.component != "" {
		line += " {component=" + l.component + "}"
	}

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	_, _ = io.WriteString(l.sink.w, line+"\n")
}
