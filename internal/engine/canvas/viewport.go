package canvas

// Zoom limits.
const (
	MinZoom = 1
	MaxZoom = 16
)

// Viewport is the camera over the canvas: the canvas point shown at the
// top-left of the screen and the magnification.
type Viewport struct {
	X, Y int
	Zoom int
}

// DefaultViewport returns an unzoomed viewport at the origin.
func DefaultViewport() Viewport {
	return Viewport{Zoom: MinZoom}
}

// Pan moves the viewport by (dx, dy).
func (v *Viewport) Pan(dx, dy int) {
	v.X += dx
	v.Y += dy
}

// SwapZoom sets the zoom level, clamped to [MinZoom, MaxZoom], and returns
// the previous level.
func (v *Viewport) SwapZoom(z int) int {
	old := v.Zoom
	v.Zoom = ClampZoom(z)
	return old
}

// ClampZoom bounds z to [MinZoom, MaxZoom].
func ClampZoom(z int) int {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// ToCanvas converts a screen cell to a canvas point. Each canvas pixel
// covers cellW*Zoom columns and Zoom rows.
func (v Viewport) ToCanvas(col, row, cellW int) Point {
	z := ClampZoom(v.Zoom)
	return Point{X: v.X + col/(cellW*z), Y: v.Y + row/z}
}
