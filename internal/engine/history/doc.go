// Package history provides the undo/redo execution engine for the pixel
// editor.
//
// The engine runs named operations against a shared document and records
// what they did in a linear log. Key concepts:
//
// # Operations
//
// An Operation mutates the document and reports what it did as a list of
// Changes. Operations are self-inverting: after Apply mutates the document,
// the operation rewrites its own parameters so that applying it again undoes
// the mutation. The same instance is therefore replayed for both undo and
// redo.
//
// # Changes
//
// A Change is one log entry:
//   - Atomic: a finished, self-contained step (one undo unit)
//   - Begin / Complete: the brackets around a multi-step action
//   - Step: a sub-step inside a bracket
//
// # Modal operations and region locks
//
// A modal operation needs several Perform calls before it is done. Until
// then it returns [Begin] and holds the regions it declares (document
// content and/or viewport). Other operations that want a held region fail
// with a LockedError. Locks are cooperative flags, not mutexes.
//
// # Composite operations
//
// Composite operations never touch the document. They drive other
// operations through a Sequence, which re-tags each Atomic result as a Step:
//
//	var seq history.Sequence[*canvas.Document]
//	for _, p := range points {
//	    if err := seq.Run(doc, con, ops.PaintAt(layer, p, px)); err != nil {
//	        return nil, err
//	    }
//	}
//	return seq.Bracket(), nil
//
// # History
//
//	h := history.New[*canvas.Document](history.WithMaxEntries(1000))
//	h.Register("Paint", ops.NewBrushPaint())
//	h.Perform(doc, con, "Paint")
//	h.Undo(doc)
//	h.Redo(doc)
//
// History is not safe for concurrent use. It is owned by one editing
// session and driven from a single goroutine.
package history
