package canvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Point is a canvas coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// PixelKind says how a pixel stores its color.
type PixelKind uint8

const (
	// PixelEmpty is a transparent pixel.
	PixelEmpty PixelKind = iota
	// PixelIndexed refers to a palette entry.
	PixelIndexed
	// PixelTrue stores an RGBA value directly.
	PixelTrue
)

// Pixel is one cell of a layer.
type Pixel struct {
	Kind  PixelKind
	Index uint8
	Color color.RGBA
}

// Empty returns a transparent pixel.
func Empty() Pixel {
	return Pixel{}
}

// Indexed returns a palette pixel.
func Indexed(i uint8) Pixel {
	return Pixel{Kind: PixelIndexed, Index: i}
}

// TrueColor returns an RGBA pixel.
func TrueColor(c color.RGBA) Pixel {
	return Pixel{Kind: PixelTrue, Color: c}
}

// IsEmpty returns true for transparent pixels.
func (p Pixel) IsEmpty() bool {
	return p.Kind == PixelEmpty
}

// Resolve returns the pixel's color using pal for indexed pixels.
// ok is false for empty pixels and for indexes outside the palette.
func (p Pixel) Resolve(pal Palette) (c color.RGBA, ok bool) {
	switch p.Kind {
	case PixelIndexed:
		if int(p.Index) >= len(pal) {
			return color.RGBA{}, false
		}
		return pal[p.Index], true
	case PixelTrue:
		return p.Color, true
	default:
		return color.RGBA{}, false
	}
}

// String encodes the pixel: "" for empty, "i<n>" for indexed and
// "#rrggbbaa" for true color.
func (p Pixel) String() string {
	switch p.Kind {
	case PixelIndexed:
		return "i" + strconv.Itoa(int(p.Index))
	case PixelTrue:
		return fmt.Sprintf("#%02x%02x%02x%02x", p.Color.R, p.Color.G, p.Color.B, p.Color.A)
	default:
		return ""
	}
}

// ParsePixel decodes the format produced by Pixel.String.
// "#rrggbb" without alpha is accepted as opaque.
func ParsePixel(s string) (Pixel, error) {
	switch {
	case s == "":
		return Empty(), nil
	case strings.HasPrefix(s, "i"):
		n, err := strconv.ParseUint(s[1:], 10, 8)
		if err != nil {
			return Pixel{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return Indexed(uint8(n)), nil
	case strings.HasPrefix(s, "#"):
		c, err := ParseHex(s)
		if err != nil {
			return Pixel{}, err
		}
		return TrueColor(c), nil
	default:
		return Pixel{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
}
