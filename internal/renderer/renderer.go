package renderer

import (
	"github.com/dshills/pixelstorm/internal/console"
	"github.com/dshills/pixelstorm/internal/engine/canvas"
	"github.com/dshills/pixelstorm/internal/renderer/backend"
	"github.com/dshills/pixelstorm/internal/renderer/core"
)

// CellWidth is the number of columns per canvas pixel at zoom 1.
const CellWidth = 2

// CursorRune marks the cursor pixel.
const CursorRune = '+'

// Checkerboard colors for empty pixels.
var (
	CheckerLight = core.ColorFromRGB(0x55, 0x55, 0x55)
	CheckerDark  = core.ColorFromRGB(0x3a, 0x3a, 0x3a)
)

// Status is the content of the status line.
type Status struct {
	Text     string
	Severity console.Severity
}

// Renderer draws documents onto a backend.
type Renderer struct {
	backend backend.Backend
}

// New creates a renderer over b. b must already be initialized.
func New(b backend.Backend) *Renderer {
	return &Renderer{backend: b}
}

// CanvasRows returns the number of screen rows available to the canvas.
func (r *Renderer) CanvasRows() int {
	_, h := r.backend.Size()
	return max(0, h-1)
}

// Draw renders doc and the status line and flushes the screen.
func (r *Renderer) Draw(doc *canvas.Document, status Status) {
	w, h := r.backend.Size()
	r.backend.HideCursor()

	for row := 0; row < h-1; row++ {
		for col := 0; col < w; col++ {
			r.backend.SetCell(col, row, r.pixelCell(doc, col, row))
		}
	}
	if h > 0 {
		r.drawStatus(h-1, w, status)
	}
	r.backend.Show()
}

// pixelCell returns the cell for screen position (col, row).
func (r *Renderer) pixelCell(doc *canvas.Document, col, row int) core.Cell {
	p := doc.Viewport.ToCanvas(col, row, CellWidth)
	if !doc.InBounds(p) {
		return core.EmptyCell()
	}

	bg := CheckerDark
	if (p.X+p.Y)%2 == 0 {
		bg = CheckerLight
	}
	if c, ok := doc.Composite(p); ok {
		bg = bg.Blend(core.ColorFromRGBA(c), float64(c.A)/255)
	}

	style := core.DefaultStyle().WithBackground(bg)
	if p == doc.Cursor {
		return core.NewStyledCell(CursorRune, style.WithForeground(bg.Contrast()).Bold())
	}
	return core.NewStyledCell(' ', style)
}

func (r *Renderer) drawStatus(row, width int, status Status) {
	style := core.DefaultStyle().Reverse()
	switch status.Severity {
	case console.SeverityWarn:
		style = core.DefaultStyle().
			WithForeground(core.ColorBlack).
			WithBackground(core.ColorFromRGB(0xff, 0xcc, 0x00))
	case console.SeverityError:
		style = core.DefaultStyle().
			WithForeground(core.ColorWhite).
			WithBackground(core.ColorFromRGB(0xcc, 0x22, 0x22)).
			Bold()
	}

	x := 0
	for _, ch := range core.Truncate(status.Text, width) {
		cw := core.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		r.backend.SetCell(x, row, core.NewStyledCell(ch, style))
		x += cw
	}
	for ; x < width; x++ {
		r.backend.SetCell(x, row, core.NewStyledCell(' ', style))
	}
}
