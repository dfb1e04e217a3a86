package history

import "fmt"

// Kind tags a Change.
type Kind int

const (
	// KindBegin opens a multi-step bracket.
	KindBegin Kind = iota
	// KindComplete closes a multi-step bracket.
	KindComplete
	// KindAtomic is a finished, self-contained step.
	KindAtomic
	// KindStep is a sub-step inside a Begin/Complete bracket.
	KindStep
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindBegin:
		return "begin"
	case KindComplete:
		return "complete"
	case KindAtomic:
		return "atomic"
	case KindStep:
		return "step"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Change is one history log entry describing how a single Apply affected
// the document.
//
// Op is nil for Begin and Complete. For Atomic and Step it holds exactly the
// parameters needed to invert what was just done. While the change sits in
// the log, the log slot is the only owner of Op.
type Change[D any] struct {
	Kind Kind
	Op   Operation[D]
}

// Begin returns a bracket-opening change.
func Begin[D any]() Change[D] {
	return Change[D]{Kind: KindBegin}
}

// Complete returns a bracket-closing change.
func Complete[D any]() Change[D] {
	return Change[D]{Kind: KindComplete}
}

// Atomic wraps a finished operation.
func Atomic[D any](op Operation[D]) Change[D] {
	return Change[D]{Kind: KindAtomic, Op: op}
}

// Step wraps a finished operation nested inside a bracket.
func Step[D any](op Operation[D]) Change[D] {
	return Change[D]{Kind: KindStep, Op: op}
}

// HasOp reports whether the change carries an operation.
func (c Change[D]) HasOp() bool {
	return c.Kind == KindAtomic || c.Kind == KindStep
}

// AsStep re-tags an Atomic or Step change as a Step.
// Begin and Complete cannot be re-tagged; doing so means a composite tried
// to nest a half-open bracket, and ErrInvalidChangeConversion is returned.
func (c Change[D]) AsStep() (Change[D], error) {
	if !c.HasOp() {
		return Change[D]{}, fmt.Errorf("%w: %s", ErrInvalidChangeConversion, c.Kind)
	}
	return Step(c.Op), nil
}

// closes reports whether a sequence ending in this change releases the
// regions its operation holds.
func (c Change[D]) closes() bool {
	return c.Kind != KindBegin
}

// Description returns a human-readable description of the change.
func (c Change[D]) Description() string {
	if c.Op == nil {
		return c.Kind.String()
	}
	if d, ok := c.Op.(Describer); ok {
		return d.Description()
	}
	return fmt.Sprintf("%T", c.Op)
}
