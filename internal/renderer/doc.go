// Package renderer draws a document onto a terminal backend.
//
// Each canvas pixel covers CellWidth*zoom columns and zoom rows, so pixels
// look square in a typical terminal font. Empty pixels show a checkerboard,
// translucent pixels are blended over it, and the cursor pixel is drawn
// with a contrasting marker. The bottom row is the status line.
//
// Sub-packages:
//
//   - core: cells, styles and colors shared with backends
//   - backend: the Backend interface, a tcell Terminal and a NullBackend
package renderer
