package ops

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/pixelstorm/internal/console"
	"github.com/dshills/pixelstorm/internal/engine/canvas"
)

// pan moves the viewport and negates its delta.
type pan struct {
	primitive
	locksViewport

	dx, dy int
	bound  bool
	prompt bool
}

func (o *pan) Apply(doc *canvas.Document, con console.Console) (changes, error) {
	target := o
	if !o.bound {
		target = &pan{dx: o.dx, dy: o.dy, bound: true}
		if o.prompt {
			dx, dy, err := promptOffset(con)
			if err != nil {
				return nil, err
			}
			target.dx, target.dy = dx, dy
		}
	}
	if target.dx == 0 && target.dy == 0 {
		return nil, nil
	}

	doc.Viewport.Pan(target.dx, target.dy)
	target.dx, target.dy = -target.dx, -target.dy
	return atomic(target), nil
}

func (o *pan) Description() string {
	if !o.bound {
		return "pan"
	}
	return fmt.Sprintf("pan %d,%d", o.dx, o.dy)
}

func promptOffset(con console.Console) (dx, dy int, err error) {
	answer, ok := con.Prompt("pan by dx,dy")
	if !ok {
		return 0, 0, ErrCancelled
	}
	parts := strings.Split(answer, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: want dx,dy, got %q", ErrInvalidInput, answer)
	}
	dx, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	dy, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return 0, 0, fmt.Errorf("%w: want dx,dy, got %q", ErrInvalidInput, answer)
	}
	return dx, dy, nil
}

// zoom swaps the zoom level. The template binds current+step.
type zoom struct {
	primitive
	locksViewport

	step  int
	level int
	bound bool
}

func (o *zoom) Apply(doc *canvas.Document, _ console.Console) (changes, error) {
	target := o
	if !o.bound {
		level := canvas.ClampZoom(doc.Viewport.Zoom + o.step)
		if level == doc.Viewport.Zoom {
			return nil, nil
		}
		target = &zoom{level: level, bound: true}
	}

	target.level = doc.Viewport.SwapZoom(target.level)
	return atomic(target), nil
}

func (o *zoom) Description() string {
	if !o.bound {
		if o.step < 0 {
			return "zoom out"
		}
		return "zoom in"
	}
	return fmt.Sprintf("zoom to %d", o.level)
}
