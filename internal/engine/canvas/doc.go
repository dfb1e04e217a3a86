// Package canvas provides the pixel document edited by operations.
//
// A Document is a stack of equally sized layers over a shared palette.
// Each pixel is empty, a palette index, or a true-color RGBA value, so
// indexed and true-color art can be mixed on one canvas. Layer 0 is the
// bottom of the stack; Composite resolves what is visible at a point.
//
// The Document also carries the editing state operations read: the cursor,
// the brush pixel, the active layer and the viewport over the canvas.
//
// Documents are not safe for concurrent use.
package canvas
