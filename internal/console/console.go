// Package console defines the feedback capability that operations use to
// ask the user for input mid-apply and to report messages back.
//
// The history engine passes a Console alongside the document into every
// Operation.Apply call. It never interprets the answers; an operation that
// receives no answer (or an invalid one) fails, and that failure is what
// the engine propagates.
package console

import "fmt"

// Severity classifies a reported message.
type Severity int

const (
	// SeverityInfo is for plain feedback.
	SeverityInfo Severity = iota
	// SeverityWarn is for recoverable problems.
	SeverityWarn
	// SeverityError is for failures the user should see.
	SeverityError
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Console is the user feedback capability handed to operations.
type Console interface {
	// Prompt asks the user for a line of input.
	// ok is false when the user cancelled or no input is available.
	Prompt(message string) (answer string, ok bool)

	// Report shows a message to the user.
	Report(message string, severity Severity)
}

// Discard is a Console that never answers and drops every report.
// It is used when replaying history entries, which must not prompt.
var Discard Console = discard{}

type discard struct{}

func (discard) Prompt(string) (string, bool) { return "", false }
func (discard) Report(string, Severity)      {}
