package ops

import (
	"fmt"

	"github.com/dshills/pixelstorm/internal/console"
	"github.com/dshills/pixelstorm/internal/engine/canvas"
)

// toggleLayer flips the visibility of one layer. The inverse is itself.
type toggleLayer struct {
	primitive
	locksContent

	layer int // -1 until bound
}

func (o *toggleLayer) Apply(doc *canvas.Document, _ console.Console) (changes, error) {
	target := o
	if o.layer < 0 {
		target = &toggleLayer{layer: doc.Active}
	}

	l, err := doc.Layer(target.layer)
	if err != nil {
		return nil, err
	}
	l.Visible = !l.Visible
	return atomic(target), nil
}

func (o *toggleLayer) Description() string {
	if o.layer < 0 {
		return "toggle layer"
	}
	return fmt.Sprintf("toggle layer %d", o.layer)
}

// layerEdit inserts or removes a layer and flips between the two.
//
// active is the layer that was active before the previous apply; it is
// restored after the next one so undo and redo land on the same selection.
// -1 keeps whatever selection the edit leaves.
type layerEdit struct {
	primitive
	locksContent

	insert bool
	index  int // -1 until bound
	layer  *canvas.Layer
	active int
	label  string
}

func (o *layerEdit) Apply(doc *canvas.Document, _ console.Console) (changes, error) {
	target := o
	if o.index < 0 {
		target = &layerEdit{insert: o.insert, index: doc.Active, active: -1, label: o.Description()}
		if o.insert {
			target.index = doc.Active + 1
			target.layer = canvas.NewLayer(fmt.Sprintf("Layer %d", len(doc.Layers)+1), doc.Width, doc.Height)
		}
	}

	after := len(doc.Layers) - 1
	if target.insert {
		after = len(doc.Layers) + 1
	}
	if target.active >= after {
		return nil, fmt.Errorf("%w: %d", canvas.ErrNoLayer, target.active)
	}

	before := doc.Active
	if target.insert {
		if err := doc.InsertLayer(target.index, target.layer); err != nil {
			return nil, err
		}
	} else {
		l, err := doc.RemoveLayer(target.index)
		if err != nil {
			return nil, err
		}
		target.layer = l
	}
	if target.active >= 0 {
		if err := doc.SelectLayer(target.active); err != nil {
			return nil, err
		}
	}

	target.insert = !target.insert
	target.active = before
	return atomic(target), nil
}

// Description names the edit as it was first performed, not its current
// direction.
func (o *layerEdit) Description() string {
	if o.index >= 0 {
		return fmt.Sprintf("%s %d", o.label, o.index)
	}
	if o.insert {
		return "add layer"
	}
	return "delete layer"
}
