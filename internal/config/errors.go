package config

import (
	"fmt"

	"github.com/dshills/pixelstorm/internal/config/loader"
)

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError

// ValidationError represents a setting with an unusable value.
type ValidationError struct {
	Path    string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s = %v: %s", e.Path, e.Value, e.Message)
}
