// Package engine groups the editing core of pixelstorm.
//
// # Architecture
//
// The engine is built from two sub-packages:
//
//   - canvas: the document model (layers, palette, viewport, cursor, brush)
//     and its JSON codec
//   - history: the generic action log with undo, redo, region locks and
//     multi-call brackets
//
// Operations that edit a canvas live in internal/ops and are performed
// through a history.History[*canvas.Document]:
//
//	h := history.New[*canvas.Document]()
//	if err := ops.Register(h); err != nil {
//	    return err
//	}
//	doc, _ := canvas.New(32, 32)
//	err := h.Perform(doc, console.Discard, ops.NamePaint)
//	...
//	err = h.Undo(doc)
//
// # Thread Safety
//
// A History and the document it edits belong to one goroutine. The
// application runs both on its event loop.
package engine
