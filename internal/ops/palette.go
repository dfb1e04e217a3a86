package ops

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/dshills/pixelstorm/internal/console"
	"github.com/dshills/pixelstorm/internal/engine/canvas"
)

// paletteColor swaps one palette entry. The template prompts for the
// index and the new color.
type paletteColor struct {
	primitive
	locksContent

	index int // -1 until bound
	color color.RGBA
}

func (o *paletteColor) Apply(doc *canvas.Document, con console.Console) (changes, error) {
	target := o
	if o.index < 0 {
		idx, err := promptInt(con, fmt.Sprintf("palette index (0-%d)", len(doc.Palette)-1))
		if err != nil {
			return nil, err
		}
		hex, ok := con.Prompt("color (#rrggbb)")
		if !ok {
			return nil, ErrCancelled
		}
		c, err := canvas.ParseHex(strings.TrimSpace(hex))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		target = &paletteColor{index: idx, color: c}
	}

	old, err := doc.Palette.Swap(target.index, target.color)
	if err != nil {
		return nil, err
	}
	target.color = old
	return atomic(target), nil
}

func (o *paletteColor) Description() string {
	if o.index < 0 {
		return "set palette color"
	}
	return fmt.Sprintf("set palette color %d", o.index)
}

func promptInt(con console.Console, message string) (int, error) {
	answer, ok := con.Prompt(message)
	if !ok {
		return 0, ErrCancelled
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, answer)
	}
	return n, nil
}
