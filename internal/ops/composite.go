package ops

import (
	"fmt"

	"github.com/dshills/pixelstorm/internal/console"
	"github.com/dshills/pixelstorm/internal/engine/canvas"
	"github.com/dshills/pixelstorm/internal/engine/history"
)

// circle paints a midpoint circle outline around the cursor with a
// prompted radius. Points off the canvas are skipped.
type circle struct {
	primitive
	locksContent
}

func (o *circle) Apply(doc *canvas.Document, con console.Console) (changes, error) {
	r, err := promptInt(con, "radius")
	if err != nil {
		return nil, err
	}
	if r < 0 {
		return nil, fmt.Errorf("%w: negative radius %d", ErrInvalidInput, r)
	}

	var seq history.Sequence[*canvas.Document]
	for _, p := range circlePoints(doc.Cursor, r) {
		if !doc.InBounds(p) {
			continue
		}
		if err := seq.Run(doc, con, PaintAt(doc.Active, p, doc.Brush)); err != nil {
			return nil, err
		}
	}
	return seq.Bracket(), nil
}

func (o *circle) Description() string { return "circle" }

func circlePoints(c canvas.Point, r int) []canvas.Point {
	seen := make(map[canvas.Point]bool)
	var pts []canvas.Point
	add := func(x, y int) {
		p := canvas.Point{X: c.X + x, Y: c.Y + y}
		if !seen[p] {
			seen[p] = true
			pts = append(pts, p)
		}
	}

	x, y := r, 0
	d := 1 - r
	for x >= y {
		add(x, y)
		add(y, x)
		add(-y, x)
		add(-x, y)
		add(-x, -y)
		add(-y, -x)
		add(y, -x)
		add(x, -y)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
	return pts
}

// floodFill replaces the 4-connected region of identical pixels under the
// cursor on the active layer with the brush.
type floodFill struct {
	primitive
	locksContent
}

func (o *floodFill) Apply(doc *canvas.Document, con console.Console) (changes, error) {
	layer := doc.ActiveLayer()
	if layer == nil {
		return nil, canvas.ErrNoLayer
	}
	target := layer.At(doc.Cursor)
	if target == doc.Brush {
		return nil, nil
	}

	var seq history.Sequence[*canvas.Document]
	seen := map[canvas.Point]bool{doc.Cursor: true}
	queue := []canvas.Point{doc.Cursor}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if err := seq.Run(doc, con, PaintAt(doc.Active, p, doc.Brush)); err != nil {
			return nil, err
		}
		for _, n := range [...]canvas.Point{p.Add(1, 0), p.Add(-1, 0), p.Add(0, 1), p.Add(0, -1)} {
			if seen[n] || !doc.InBounds(n) || layer.At(n) != target {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seq.Bracket(), nil
}

func (o *floodFill) Description() string { return "flood fill" }
