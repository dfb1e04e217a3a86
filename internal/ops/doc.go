// Package ops provides the built-in pixel editing operations.
//
// Every operation implements history.Operation over *canvas.Document and is
// registered on a History by name with Register.
//
// Operations come in three shapes:
//
//   - Primitives (Paint, Erase, ToggleLayer, Pan, ZoomIn, ...) mutate the
//     document directly in a single call. The registered value is a
//     template: its first Apply binds the current cursor, brush or layer
//     into a fresh instance, mutates the document and returns that
//     instance, now holding the inverse, as an Atomic change.
//   - Modal tools (RectFill, Rect, Line) need two calls. The first records
//     a corner and returns Begin, holding the content region; the second
//     paints through nested PaintAt steps and returns the steps plus
//     Complete.
//   - Composites (Circle, FloodFill) drive PaintAt through a
//     history.Sequence and finish in one call.
package ops
