package ops

import (
	"fmt"

	"github.com/dshills/pixelstorm/internal/console"
	"github.com/dshills/pixelstorm/internal/engine/canvas"
	"github.com/dshills/pixelstorm/internal/engine/history"
)

type shapeKind int

const (
	shapeRectFill shapeKind = iota
	shapeRect
	shapeLine
)

func (k shapeKind) String() string {
	switch k {
	case shapeRectFill:
		return "fill rectangle"
	case shapeRect:
		return "rectangle"
	case shapeLine:
		return "line"
	default:
		return "shape"
	}
}

// shape is a two-call tool. The first call takes the start point from the
// cursor and opens a bracket; the second takes the end point and paints the
// shape with the brush on the active layer.
type shape struct {
	locksContent

	kind   shapeKind
	start  canvas.Point
	picked bool
}

func newShape(kind shapeKind) *shape {
	return &shape{kind: kind}
}

func (o *shape) Apply(doc *canvas.Document, con console.Console) (changes, error) {
	if !o.picked {
		o.start = doc.Cursor
		o.picked = true
		return changes{history.Begin[*canvas.Document]()}, nil
	}
	o.picked = false

	var pts []canvas.Point
	switch o.kind {
	case shapeRectFill:
		pts = rectPoints(o.start, doc.Cursor, true)
	case shapeRect:
		pts = rectPoints(o.start, doc.Cursor, false)
	case shapeLine:
		pts = linePoints(o.start, doc.Cursor)
	}

	var seq history.Sequence[*canvas.Document]
	for _, p := range pts {
		if err := seq.Run(doc, con, PaintAt(doc.Active, p, doc.Brush)); err != nil {
			return nil, err
		}
	}
	return seq.Steps(), nil
}

// IsComplete reports whether the start point has been taken, so the next
// call finishes the shape.
func (o *shape) IsComplete() bool { return o.picked }

// Reset drops a picked start point.
func (o *shape) Reset() { o.picked = false }

func (o *shape) Description() string {
	if o.picked {
		return fmt.Sprintf("%s from %s", o.kind, o.start)
	}
	return o.kind.String()
}

func rectPoints(a, b canvas.Point, filled bool) []canvas.Point {
	x0, x1 := minMax(a.X, b.X)
	y0, y1 := minMax(a.Y, b.Y)

	var pts []canvas.Point
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if filled || y == y0 || y == y1 || x == x0 || x == x1 {
				pts = append(pts, canvas.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// linePoints walks from a to b with Bresenham's algorithm.
func linePoints(a, b canvas.Point) []canvas.Point {
	dx, sx := abs(b.X-a.X), sign(b.X-a.X)
	dy, sy := -abs(b.Y-a.Y), sign(b.Y-a.Y)
	e := dx + dy

	var pts []canvas.Point
	p := a
	for {
		pts = append(pts, p)
		if p == b {
			return pts
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.X += sx
		}
		if e2 <= dx {
			e += dx
			p.Y += sy
		}
	}
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
