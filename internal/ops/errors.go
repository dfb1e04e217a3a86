package ops

import "errors"

// Errors returned by operations.
var (
	// ErrCancelled indicates the user declined a prompt.
	ErrCancelled = errors.New("ops: cancelled")

	// ErrInvalidInput indicates a prompt answer that could not be parsed.
	ErrInvalidInput = errors.New("ops: invalid input")
)
