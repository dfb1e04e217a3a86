package canvas

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is the indexed color table shared by all layers.
type Palette []color.RGBA

// DefaultPalette returns a 16 color palette.
func DefaultPalette() Palette {
	hexes := []string{
		"#000000", "#1d2b53", "#7e2553", "#008751",
		"#ab5236", "#5f574f", "#c2c3c7", "#fff1e8",
		"#ff004d", "#ffa300", "#ffec27", "#00e436",
		"#29adff", "#83769c", "#ff77a8", "#ffccaa",
	}
	pal := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, _ := ParseHex(h)
		pal = append(pal, c)
	}
	return pal
}

// ParsePalette parses a list of hex colors.
func ParsePalette(hexes []string) (Palette, error) {
	pal := make(Palette, 0, len(hexes))
	for i, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		pal = append(pal, c)
	}
	return pal, nil
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#' is
// optional.
func ParseHex(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}, nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Get returns entry i.
func (p Palette) Get(i int) (color.RGBA, bool) {
	if i < 0 || i >= len(p) {
		return color.RGBA{}, false
	}
	return p[i], true
}

// Swap stores c at entry i and returns the previous entry.
func (p Palette) Swap(i int, c color.RGBA) (color.RGBA, error) {
	if i < 0 || i >= len(p) {
		return color.RGBA{}, fmt.Errorf("%w: %d", ErrNoPaletteEntry, i)
	}
	old := p[i]
	p[i] = c
	return old, nil
}

// Nearest returns the index of the entry perceptually closest to c.
// It returns -1 for an empty palette.
func (p Palette) Nearest(c color.RGBA) int {
	target := toColorful(c)
	best, bestDist := -1, math.MaxFloat64
	for i, entry := range p {
		d := target.DistanceLab(toColorful(entry))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Hexes returns the palette as "#rrggbb" strings.
func (p Palette) Hexes() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = Hex(c)
	}
	return out
}

// Clone returns a copy of the palette.
func (p Palette) Clone() Palette {
	return append(Palette(nil), p...)
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
