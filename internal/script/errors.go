package script

import (
	"errors"
	"fmt"
)

// Errors for script operations.
var (
	// ErrEngineClosed is returned when operating on a closed engine.
	ErrEngineClosed = errors.New("script: engine is closed")

	// ErrTimeout is returned when a tool runs longer than the engine allows.
	ErrTimeout = errors.New("script: execution timeout")

	// ErrInvalidDefinition is returned for a malformed pixel.define call.
	ErrInvalidDefinition = errors.New("script: invalid tool definition")
)

// ToolError is returned when a Lua tool raises an error.
type ToolError struct {
	Tool string
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("script: tool %s: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// LoadError is returned when a script file cannot be loaded.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("script: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
