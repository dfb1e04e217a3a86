package ops

import (
	"fmt"

	"github.com/dshills/pixelstorm/internal/engine/canvas"
	"github.com/dshills/pixelstorm/internal/engine/history"
)

// Operation names.
const (
	NamePaint           = "Paint"           // brush into the cursor cell
	NameErase           = "Erase"           // clear the cursor cell
	NameToggleLayer     = "ToggleLayer"     // show/hide the active layer
	NameAddLayer        = "AddLayer"        // blank layer above the active one
	NameDeleteLayer     = "DeleteLayer"     // remove the active layer
	NameSetPaletteColor = "SetPaletteColor" // replace a palette entry
	NamePan             = "Pan"             // pan by a prompted offset
	NamePanLeft         = "PanLeft"
	NamePanRight        = "PanRight"
	NamePanUp           = "PanUp"
	NamePanDown         = "PanDown"
	NameZoomIn          = "ZoomIn"
	NameZoomOut         = "ZoomOut"
	NameRectFill        = "RectFill" // two corners, filled
	NameRect            = "Rect"     // two corners, outline
	NameLine            = "Line"     // two end points
	NameCircle          = "Circle"   // prompted radius around the cursor
	NameFloodFill       = "FloodFill"
)

// PanStep is the distance, in canvas pixels, of the directional pans.
const PanStep = 4

// History is the history type the operations are registered on.
type History = history.History[*canvas.Document]

// Op is an operation over a document.
type Op = history.Operation[*canvas.Document]

type changes = []history.Change[*canvas.Document]

// Builtins returns a fresh set of the built-in operations keyed by name.
func Builtins() map[string]Op {
	return map[string]Op{
		NamePaint:           &paint{},
		NameErase:           &paint{erase: true},
		NameToggleLayer:     &toggleLayer{layer: -1},
		NameAddLayer:        &layerEdit{insert: true, index: -1, active: -1},
		NameDeleteLayer:     &layerEdit{index: -1, active: -1},
		NameSetPaletteColor: &paletteColor{index: -1},
		NamePan:             &pan{prompt: true},
		NamePanLeft:         &pan{dx: -PanStep},
		NamePanRight:        &pan{dx: PanStep},
		NamePanUp:           &pan{dy: -PanStep},
		NamePanDown:         &pan{dy: PanStep},
		NameZoomIn:          &zoom{step: 1},
		NameZoomOut:         &zoom{step: -1},
		NameRectFill:        newShape(shapeRectFill),
		NameRect:            newShape(shapeRect),
		NameLine:            newShape(shapeLine),
		NameCircle:          &circle{},
		NameFloodFill:       &floodFill{},
	}
}

// Register registers the built-in operations on h.
func Register(h *History) error {
	for name, op := range Builtins() {
		if err := h.Register(name, op); err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
	}
	return nil
}

// primitive is embedded by operations that finish in one call.
type primitive struct{}

func (primitive) IsComplete() bool { return true }

type locksContent struct{}

func (locksContent) Locks(r history.Region) bool { return r == history.RegionContent }

type locksViewport struct{}

func (locksViewport) Locks(r history.Region) bool { return r == history.RegionViewport }

func atomic(op Op) changes {
	return changes{history.Atomic(op)}
}
