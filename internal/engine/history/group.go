package history

import (
	"fmt"

	"github.com/dshills/pixelstorm/internal/console"
)

// Sequence collects the sub-steps of a composite operation.
//
// Each Run applies a wrapped operation and re-tags its result as Steps, so
// the composite contributes one undo unit no matter how many primitives it
// drives. A Sequence never touches the document itself.
//
// If a Run fails after earlier Runs succeeded, the earlier mutations stay
// applied; Sequence does not roll them back.
type Sequence[D any] struct {
	steps []Change[D]
}

// Run applies op and appends its result as steps.
// A wrapped operation that returns Begin or Complete fails with
// ErrInvalidChangeConversion.
func (s *Sequence[D]) Run(doc D, con console.Console, op Operation[D]) error {
	changes, err := op.Apply(doc, con)
	if err != nil {
		return err
	}
	return s.Add(changes...)
}

// Add appends already-finished changes as steps.
func (s *Sequence[D]) Add(changes ...Change[D]) error {
	for i, c := range changes {
		step, err := c.AsStep()
		if err != nil {
			return fmt.Errorf("step %d: %w", len(s.steps)+i, err)
		}
		s.steps = append(s.steps, step)
	}
	return nil
}

// Len returns the number of collected steps.
func (s *Sequence[D]) Len() int {
	return len(s.steps)
}

// Steps returns the collected steps followed by Complete. This is the
// result of the call that finishes a modal operation whose Begin is
// already in the log.
func (s *Sequence[D]) Steps() []Change[D] {
	out := make([]Change[D], 0, len(s.steps)+1)
	out = append(out, s.steps...)
	return append(out, Complete[D]())
}

// Bracket returns Begin, the collected steps and Complete. This is the
// result of a composite that finishes in a single call.
// An empty sequence yields no changes.
func (s *Sequence[D]) Bracket() []Change[D] {
	if len(s.steps) == 0 {
		return nil
	}
	out := make([]Change[D], 0, len(s.steps)+2)
	out = append(out, Begin[D]())
	out = append(out, s.steps...)
	return append(out, Complete[D]())
}

// Nest applies op and returns its result re-tagged as steps.
func Nest[D any](doc D, con console.Console, op Operation[D]) ([]Change[D], error) {
	var s Sequence[D]
	if err := s.Run(doc, con, op); err != nil {
		return nil, err
	}
	return s.steps, nil
}
