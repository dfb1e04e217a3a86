package ops

import (
	"fmt"

	"github.com/dshills/pixelstorm/internal/console"
	"github.com/dshills/pixelstorm/internal/engine/canvas"
)

// paint swaps a pixel into one cell. Unbound, it is the registered Paint or
// Erase template and binds the active layer, cursor and brush on apply.
type paint struct {
	primitive
	locksContent

	layer int
	at    canvas.Point
	px    canvas.Pixel
	bound bool
	erase bool
}

// PaintAt returns a primitive that stores px at p on the given layer.
// Applying it again restores the previous pixel.
func PaintAt(layer int, p canvas.Point, px canvas.Pixel) Op {
	return &paint{layer: layer, at: p, px: px, bound: true}
}

func (o *paint) Apply(doc *canvas.Document, _ console.Console) (changes, error) {
	target := o
	if !o.bound {
		px := doc.Brush
		if o.erase {
			px = canvas.Empty()
		}
		target = &paint{layer: doc.Active, at: doc.Cursor, px: px, bound: true, erase: o.erase}
	}

	old, err := doc.SwapPixel(target.layer, target.at, target.px)
	if err != nil {
		return nil, err
	}
	target.px = old
	return atomic(target), nil
}

func (o *paint) Description() string {
	name := "paint"
	if o.erase {
		name = "erase"
	}
	if !o.bound {
		return name
	}
	return fmt.Sprintf("%s %s on layer %d", name, o.at, o.layer)
}
