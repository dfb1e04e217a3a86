package canvas

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// FormatVersion is written into every encoded document.
const FormatVersion = 1

// Encode serializes the document to JSON. History is not part of the
// encoding.
func Encode(d *Document) ([]byte, error) {
	data := []byte(`{}`)
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		data, err = sjson.SetBytes(data, path, value)
	}

	set("version", FormatVersion)
	set("id", d.ID.String())
	set("name", d.Name)
	set("width", d.Width)
	set("height", d.Height)
	set("active", d.Active)
	set("palette", d.Palette.Hexes())
	set("viewport.x", d.Viewport.X)
	set("viewport.y", d.Viewport.Y)
	set("viewport.zoom", d.Viewport.Zoom)
	set("cursor.x", d.Cursor.X)
	set("cursor.y", d.Cursor.Y)
	set("brush", d.Brush.String())

	if err == nil {
		data, err = sjson.SetRawBytes(data, "layers", []byte(`[]`))
	}
	for _, l := range d.Layers {
		if err != nil {
			break
		}
		var layer []byte
		layer, err = encodeLayer(l)
		if err == nil {
			data, err = sjson.SetRawBytes(data, "layers.-1", layer)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// Decode parses a document produced by Encode.
func Decode(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidDocument)
	}
	root := gjson.ParseBytes(data)

	if v := root.Get("version").Int(); v != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidDocument, v)
	}

	w, h := root.Get("width").Int(), root.Get("height").Int()
	if w < 1 || h < 1 || w > MaxSize || h > MaxSize {
		return nil, fmt.Errorf("%w: %w: %dx%d", ErrInvalidDocument, ErrInvalidSize, w, h)
	}
	width, height := int(w), int(h)
	d, err := New(width, height, WithName(root.Get("name").String()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if id, err := uuid.Parse(root.Get("id").String()); err == nil {
		d.ID = id
	}

	if pal := root.Get("palette"); pal.Exists() {
		var hexes []string
		for _, h := range pal.Array() {
			hexes = append(hexes, h.String())
		}
		if len(hexes) == 0 || len(hexes) > MaxPaletteSize {
			return nil, fmt.Errorf("%w: palette has %d entries, want 1-%d", ErrInvalidDocument, len(hexes), MaxPaletteSize)
		}
		p, err := ParsePalette(hexes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		d.Palette = p
	}

	d.Viewport = Viewport{
		X:    int(root.Get("viewport.x").Int()),
		Y:    int(root.Get("viewport.y").Int()),
		Zoom: ClampZoom(int(root.Get("viewport.zoom").Int())),
	}

	if brush, err := ParsePixel(root.Get("brush").String()); err == nil {
		d.Brush = brush
	}

	layers := root.Get("layers").Array()
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrInvalidDocument)
	}
	d.Layers = d.Layers[:0]
	for i, lj := range layers {
		l, err := decodeLayer(lj, width, height)
		if err != nil {
			return nil, fmt.Errorf("%w: layer %d: %v", ErrInvalidDocument, i, err)
		}
		d.Layers = append(d.Layers, l)
	}

	if err := d.SelectLayer(int(root.Get("active").Int())); err != nil {
		d.Active = 0
	}
	d.SetCursor(Point{X: int(root.Get("cursor.x").Int()), Y: int(root.Get("cursor.y").Int())})
	return d, nil
}

func encodeLayer(l *Layer) ([]byte, error) {
	pixels := make([]string, len(l.pixels))
	for i, px := range l.pixels {
		pixels[i] = px.String()
	}

	layer, err := sjson.SetBytes([]byte(`{}`), "name", l.Name)
	if err == nil {
		layer, err = sjson.SetBytes(layer, "visible", l.Visible)
	}
	if err == nil {
		layer, err = sjson.SetBytes(layer, "opacity", l.Opacity)
	}
	if err == nil {
		layer, err = sjson.SetBytes(layer, "pixels", pixels)
	}
	return layer, err
}

func decodeLayer(lj gjson.Result, width, height int) (*Layer, error) {
	l := NewLayer(lj.Get("name").String(), width, height)
	if v := lj.Get("visible"); v.Exists() {
		l.Visible = v.Bool()
	}
	if o := lj.Get("opacity"); o.Exists() {
		l.Opacity = o.Float()
	}

	pixels := lj.Get("pixels").Array()
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrSizeMismatch, len(pixels), width, height)
	}
	for i, pj := range pixels {
		px, err := ParsePixel(pj.String())
		if err != nil {
			return nil, err
		}
		l.pixels[i] = px
	}
	return l, nil
}

// Load reads an encoded document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}
	return Decode(data)
}

// Save writes the encoded document to path.
func Save(d *Document, path string) error {
	data, err := Encode(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing document %s: %w", path, err)
	}
	return nil
}
