package canvas

// Layer is one raster plane of the document.
type Layer struct {
	Name    string
	Visible bool
	Opacity float64 // 0.0 to 1.0

	width, height int
	pixels        []Pixel
}

// NewLayer creates a visible, fully opaque, empty layer.
func NewLayer(name string, width, height int) *Layer {
	return &Layer{
		Name:    name,
		Visible: true,
		Opacity: 1,
		width:   width,
		height:  height,
		pixels:  make([]Pixel, width*height),
	}
}

// Size returns the layer dimensions.
func (l *Layer) Size() (width, height int) {
	return l.width, l.height
}

func (l *Layer) contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < l.width && p.Y < l.height
}

// At returns the pixel at p, or an empty pixel outside the layer.
func (l *Layer) At(p Point) Pixel {
	if !l.contains(p) {
		return Empty()
	}
	return l.pixels[p.Y*l.width+p.X]
}

// Swap stores px at p and returns the previous pixel.
func (l *Layer) Swap(p Point, px Pixel) (Pixel, error) {
	if !l.contains(p) {
		return Pixel{}, ErrOutOfBounds
	}
	i := p.Y*l.width + p.X
	old := l.pixels[i]
	l.pixels[i] = px
	return old, nil
}

// Pixels returns the layer's pixels in row-major order.
// The slice is shared with the layer.
func (l *Layer) Pixels() []Pixel {
	return l.pixels
}

// CountFilled returns the number of non-empty pixels.
func (l *Layer) CountFilled() int {
	n := 0
	for _, px := range l.pixels {
		if !px.IsEmpty() {
			n++
		}
	}
	return n
}

// Clone creates a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	clone := *l
	clone.pixels = append([]Pixel(nil), l.pixels...)
	return &clone
}
