package canvas

import (
	"fmt"
	"image/color"

	"github.com/google/uuid"
)

// Size limits for a document.
const (
	MaxSize        = 1024
	MaxPaletteSize = 256
)

// Document is the pixel canvas edited by operations.
type Document struct {
	ID   uuid.UUID
	Name string

	Width, Height int

	// Layers is bottom to top.
	Layers []*Layer
	Active int

	Palette  Palette
	Viewport Viewport

	// Editing state read by operations.
	Cursor Point
	Brush  Pixel
}

// Option configures a new Document.
type Option func(*Document)

// WithName sets the document name.
func WithName(name string) Option {
	return func(d *Document) {
		d.Name = name
	}
}

// WithPalette sets the palette.
func WithPalette(p Palette) Option {
	return func(d *Document) {
		d.Palette = p.Clone()
	}
}

// WithLayers creates n empty layers instead of one.
func WithLayers(n int) Option {
	return func(d *Document) {
		if n < 1 {
			n = 1
		}
		d.Layers = d.Layers[:0]
		for i := 0; i < n; i++ {
			d.Layers = append(d.Layers, NewLayer(fmt.Sprintf("Layer %d", i+1), d.Width, d.Height))
		}
	}
}

// New creates a document with one empty layer and the default palette.
// Each dimension must be 1-MaxSize.
func New(width, height int, opts ...Option) (*Document, error) {
	if width <= 0 || height <= 0 || width > MaxSize || height > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	d := &Document{
		ID:       uuid.New(),
		Name:     "untitled",
		Width:    width,
		Height:   height,
		Palette:  DefaultPalette(),
		Viewport: DefaultViewport(),
		Brush:    Indexed(7),
	}
	d.Layers = []*Layer{NewLayer("Layer 1", width, height)}

	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// InBounds returns true if p lies on the canvas.
func (d *Document) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < d.Width && p.Y < d.Height
}

// Layer returns layer i.
func (d *Document) Layer(i int) (*Layer, error) {
	if i < 0 || i >= len(d.Layers) {
		return nil, fmt.Errorf("%w: %d", ErrNoLayer, i)
	}
	return d.Layers[i], nil
}

// ActiveLayer returns the active layer.
func (d *Document) ActiveLayer() *Layer {
	l, err := d.Layer(d.Active)
	if err != nil {
		return nil
	}
	return l
}

// Pixel returns the pixel at p on layer i.
func (d *Document) Pixel(layer int, p Point) (Pixel, error) {
	l, err := d.Layer(layer)
	if err != nil {
		return Pixel{}, err
	}
	if !d.InBounds(p) {
		return Pixel{}, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	return l.At(p), nil
}

// SwapPixel stores px at p on layer i and returns the previous pixel.
func (d *Document) SwapPixel(layer int, p Point, px Pixel) (Pixel, error) {
	l, err := d.Layer(layer)
	if err != nil {
		return Pixel{}, err
	}
	if !d.InBounds(p) {
		return Pixel{}, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	return l.Swap(p, px)
}

// InsertLayer inserts l at index i (0..len) and makes it active.
func (d *Document) InsertLayer(i int, l *Layer) error {
	if i < 0 || i > len(d.Layers) {
		return fmt.Errorf("%w: %d", ErrNoLayer, i)
	}
	if w, h := l.Size(); w != d.Width || h != d.Height {
		return fmt.Errorf("%w: %dx%d", ErrSizeMismatch, w, h)
	}
	d.Layers = append(d.Layers, nil)
	copy(d.Layers[i+1:], d.Layers[i:])
	d.Layers[i] = l
	d.Active = i
	return nil
}

// RemoveLayer removes and returns layer i. The only layer cannot be removed.
func (d *Document) RemoveLayer(i int) (*Layer, error) {
	if i < 0 || i >= len(d.Layers) {
		return nil, fmt.Errorf("%w: %d", ErrNoLayer, i)
	}
	if len(d.Layers) == 1 {
		return nil, ErrLastLayer
	}
	l := d.Layers[i]
	copy(d.Layers[i:], d.Layers[i+1:])
	d.Layers[len(d.Layers)-1] = nil
	d.Layers = d.Layers[:len(d.Layers)-1]
	if d.Active >= len(d.Layers) {
		d.Active = len(d.Layers) - 1
	}
	return l, nil
}

// SelectLayer makes layer i active.
func (d *Document) SelectLayer(i int) error {
	if _, err := d.Layer(i); err != nil {
		return err
	}
	d.Active = i
	return nil
}

// MoveCursor moves the cursor by (dx, dy), clamped to the canvas.
func (d *Document) MoveCursor(dx, dy int) {
	d.SetCursor(d.Cursor.Add(dx, dy))
}

// SetCursor places the cursor at p, clamped to the canvas.
func (d *Document) SetCursor(p Point) {
	d.Cursor = Point{
		X: clamp(p.X, 0, d.Width-1),
		Y: clamp(p.Y, 0, d.Height-1),
	}
}

// Composite returns the visible color at p: visible layers blended bottom
// to top with normal alpha compositing and layer opacity. The result is
// not premultiplied.
// ok is false when no visible layer has a pixel there.
func (d *Document) Composite(p Point) (c color.RGBA, ok bool) {
	if !d.InBounds(p) {
		return color.RGBA{}, false
	}

	var r, g, b, a float64
	for _, l := range d.Layers {
		if !l.Visible || l.Opacity <= 0 {
			continue
		}
		src, has := l.At(p).Resolve(d.Palette)
		if !has {
			continue
		}
		sa := float64(src.A) / 255 * l.Opacity
		r = float64(src.R)*sa + r*(1-sa)
		g = float64(src.G)*sa + g*(1-sa)
		b = float64(src.B)*sa + b*(1-sa)
		a = sa + a*(1-sa)
		ok = true
	}
	if !ok || a <= 0 {
		return color.RGBA{}, false
	}
	// r, g and b are premultiplied by a.
	return color.RGBA{
		R: uint8(r/a + 0.5),
		G: uint8(g/a + 0.5),
		B: uint8(b/a + 0.5),
		A: uint8(a*255 + 0.5),
	}, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
