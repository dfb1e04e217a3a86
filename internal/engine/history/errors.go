package history

import (
	"errors"
	"fmt"
)

// Common errors for history operations.
var (
	// ErrNothingToUndo indicates the cursor is at the start of the log.
	ErrNothingToUndo = errors.New("history: nothing to undo")

	// ErrNothingToRedo indicates the cursor is at the end of the log.
	ErrNothingToRedo = errors.New("history: nothing to redo")

	// ErrInvalidChangeConversion indicates an attempt to re-tag a Begin or
	// Complete change as a Step. It is a composite operation bug.
	ErrInvalidChangeConversion = errors.New("history: only atomic or step changes can become steps")

	// ErrEmptyName indicates an operation was registered without a name.
	ErrEmptyName = errors.New("history: operation name is empty")

	// ErrNilOperation indicates a nil operation was registered.
	ErrNilOperation = errors.New("history: operation is nil")

	// ErrMalformedReplay indicates a replayed log entry did not return a
	// single operation-carrying change.
	ErrMalformedReplay = errors.New("history: replay must return exactly one atomic or step change")
)

// ActionNotFoundError is returned when no operation is registered under a name.
type ActionNotFoundError struct {
	Name string
}

func (e *ActionNotFoundError) Error() string {
	return fmt.Sprintf("history: action %q not found", e.Name)
}

// LockedError is returned when a region is held by a different modal
// operation that has not completed yet.
type LockedError struct {
	Region Region
	Holder string
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("history: %s is locked by %q", e.Region, e.Holder)
}

// BusyError is returned when an operation would open a bracket while
// another operation's bracket is still open.
type BusyError struct {
	Holder string
}

func (e *BusyError) Error() string {
	return fmt.Sprintf("history: %q is still in progress", e.Holder)
}

// ActionFailedError wraps an error returned by Operation.Apply.
// Name is set for Perform failures; Index is the log slot for undo and redo
// failures and -1 otherwise.
type ActionFailedError struct {
	Name  string
	Index int
	Err   error
}

func (e *ActionFailedError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("history: action %q failed: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("history: replay of entry %d failed: %v", e.Index, e.Err)
}

func (e *ActionFailedError) Unwrap() error {
	return e.Err
}

// IsLocked returns true if err is a LockedError or a BusyError.
func IsLocked(err error) bool {
	var le *LockedError
	var be *BusyError
	return errors.As(err, &le) || errors.As(err, &be)
}
