package canvas

import "errors"

// Errors returned by document operations.
var (
	// ErrOutOfBounds indicates a point outside the canvas.
	ErrOutOfBounds = errors.New("canvas: point out of bounds")

	// ErrNoLayer indicates a layer index that does not exist.
	ErrNoLayer = errors.New("canvas: no such layer")

	// ErrNoPaletteEntry indicates a palette index that does not exist.
	ErrNoPaletteEntry = errors.New("canvas: no such palette entry")

	// ErrLastLayer indicates an attempt to remove the only layer.
	ErrLastLayer = errors.New("canvas: cannot remove the last layer")

	// ErrSizeMismatch indicates a layer whose size differs from the canvas.
	ErrSizeMismatch = errors.New("canvas: layer size does not match canvas")

	// ErrInvalidSize indicates a non-positive canvas dimension.
	ErrInvalidSize = errors.New("canvas: invalid size")

	// ErrInvalidColor indicates a color string that cannot be parsed.
	ErrInvalidColor = errors.New("canvas: invalid color")

	// ErrInvalidDocument indicates malformed encoded document data.
	ErrInvalidDocument = errors.New("canvas: invalid document data")
)
