package canvas

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"
)

func newDoc(t *testing.T, w, h int, opts ...Option) *Document {
	t.Helper()
	d, err := New(w, h, opts...)
	require.NoError(t, err)
	return d
}

func TestNewRejectsInvalidSize(t *testing.T) {
	_, err := New(0, 4)
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = New(MaxSize+1, 1)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestSwapPixel(t *testing.T) {
	d := newDoc(t, 2, 2)

	old, err := d.SwapPixel(0, Point{1, 1}, Indexed(3))
	require.NoError(t, err)
	assert.True(t, old.IsEmpty())

	px, err := d.Pixel(0, Point{1, 1})
	require.NoError(t, err)
	assert.Equal(t, Indexed(3), px)

	_, err = d.SwapPixel(0, Point{2, 0}, Indexed(1))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = d.SwapPixel(4, Point{0, 0}, Indexed(1))
	assert.ErrorIs(t, err, ErrNoLayer)
}

func TestInsertAndRemoveLayer(t *testing.T) {
	d := newDoc(t, 2, 2)

	require.NoError(t, d.InsertLayer(1, NewLayer("top", 2, 2)))
	assert.Len(t, d.Layers, 2)
	assert.Equal(t, 1, d.Active)
	assert.Equal(t, "top", d.ActiveLayer().Name)

	assert.ErrorIs(t, d.InsertLayer(0, NewLayer("small", 1, 1)), ErrSizeMismatch)

	l, err := d.RemoveLayer(1)
	require.NoError(t, err)
	assert.Equal(t, "top", l.Name)
	assert.Equal(t, 0, d.Active)

	_, err = d.RemoveLayer(0)
	assert.ErrorIs(t, err, ErrLastLayer)
}

func TestCursorIsClamped(t *testing.T) {
	d := newDoc(t, 4, 3)
	d.MoveCursor(10, -5)
	assert.Equal(t, Point{X: 3, Y: 0}, d.Cursor)
}

func TestCompositeLayers(t *testing.T) {
	d := newDoc(t, 1, 1, WithLayers(2))
	p := Point{}

	_, ok := d.Composite(p)
	assert.False(t, ok, "empty canvas has nothing visible")

	_, err := d.SwapPixel(0, p, TrueColor(color.RGBA{R: 255, A: 255}))
	require.NoError(t, err)
	c, ok := d.Composite(p)
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c)

	_, err = d.SwapPixel(1, p, TrueColor(color.RGBA{B: 255, A: 255}))
	require.NoError(t, err)
	c, _ = d.Composite(p)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, c, "opaque top layer wins")

	d.Layers[1].Opacity = 0.5
	c, _ = d.Composite(p)
	assert.Equal(t, color.RGBA{R: 128, B: 128, A: 255}, c)

	d.Layers[1].Visible = false
	c, _ = d.Composite(p)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c)
}

func TestPaletteParsingAndNearest(t *testing.T) {
	c, err := ParseHex("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c)

	c, err = ParseHex("00ff0080")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 255, A: 128}, c)

	_, err = ParseHex("#zzzzzz")
	assert.ErrorIs(t, err, ErrInvalidColor)

	pal, err := ParsePalette([]string{"#000000", "#ffffff", "#ff0000"})
	require.NoError(t, err)
	assert.Equal(t, 2, pal.Nearest(color.RGBA{R: 230, G: 20, B: 10, A: 255}))
	assert.Equal(t, 1, pal.Nearest(color.RGBA{R: 250, G: 250, B: 250, A: 255}))
	assert.Equal(t, -1, Palette(nil).Nearest(color.RGBA{}))

	old, err := pal.Swap(0, color.RGBA{G: 10, A: 255})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{A: 255}, old)
	_, err = pal.Swap(9, color.RGBA{})
	assert.ErrorIs(t, err, ErrNoPaletteEntry)
}

func TestPixelStringRoundTrip(t *testing.T) {
	tests := []Pixel{
		Empty(),
		Indexed(12),
		TrueColor(color.RGBA{R: 1, G: 2, B: 3, A: 4}),
	}
	for _, px := range tests {
		got, err := ParsePixel(px.String())
		require.NoError(t, err)
		assert.Equal(t, px, got)
	}

	_, err := ParsePixel("q9")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestViewport(t *testing.T) {
	v := DefaultViewport()
	assert.Equal(t, 1, v.SwapZoom(4))
	assert.Equal(t, 4, v.Zoom)
	assert.Equal(t, 4, v.SwapZoom(100))
	assert.Equal(t, MaxZoom, v.Zoom)

	v = Viewport{X: 2, Y: 1, Zoom: 2}
	assert.Equal(t, Point{X: 3, Y: 2}, v.ToCanvas(5, 3, 2))
}

func TestEncodeDecode(t *testing.T) {
	d := newDoc(t, 3, 2, WithName("sprite"), WithLayers(2))
	_, err := d.SwapPixel(0, Point{0, 0}, Indexed(4))
	require.NoError(t, err)
	_, err = d.SwapPixel(1, Point{2, 1}, TrueColor(color.RGBA{R: 9, G: 8, B: 7, A: 255}))
	require.NoError(t, err)
	d.Layers[1].Visible = false
	d.Viewport = Viewport{X: 1, Y: 1, Zoom: 3}
	d.SetCursor(Point{2, 1})
	d.Brush = Indexed(2)

	data, err := Encode(d)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
	assert.Equal(t, "sprite", got.Name)
	assert.Equal(t, d.Palette, got.Palette)
	assert.Equal(t, d.Viewport, got.Viewport)
	assert.Equal(t, d.Cursor, got.Cursor)
	assert.Equal(t, d.Brush, got.Brush)
	require.Len(t, got.Layers, 2)
	assert.False(t, got.Layers[1].Visible)
	assert.Equal(t, d.Layers[0].Pixels(), got.Layers[0].Pixels())
	assert.Equal(t, d.Layers[1].Pixels(), got.Layers[1].Pixels())
}

func TestDecodeRejectsBadData(t *testing.T) {
	_, err := Decode([]byte(`{not json`))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, err = Decode([]byte(`{"version":1,"width":1,"height":1,"layers":[{"pixels":[]}]}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, err = Decode([]byte(`{"version":7}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestDecodeRejectsOversizedCanvas(t *testing.T) {
	tests := []struct {
		name          string
		width, height string
	}{
		{"wraps to zero", "4294967296", "4294967296"},
		{"too wide", "1025", "1"},
		{"negative", "-2", "-2"},
		{"beyond int64", "99999999999999999999", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := `{"version":1,"width":` + tt.width + `,"height":` + tt.height + `,"layers":[{"pixels":[]}]}`
			d, err := Decode([]byte(data))
			require.ErrorIs(t, err, ErrInvalidDocument)
			assert.ErrorIs(t, err, ErrInvalidSize)
			assert.Nil(t, d)
		})
	}
}

func TestDecodeRejectsOversizedPalette(t *testing.T) {
	d := newDoc(t, 1, 1)
	data, err := Encode(d)
	require.NoError(t, err)

	hexes := make([]string, MaxPaletteSize+44)
	for i := range hexes {
		hexes[i] = "#000000"
	}
	data, err = sjson.SetBytes(data, "palette", hexes)
	require.NoError(t, err)
	_, err = Decode(data)
	assert.ErrorIs(t, err, ErrInvalidDocument)

	data, err = sjson.SetBytes(data, "palette", hexes[:MaxPaletteSize])
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)
	assert.Len(t, got.Palette, MaxPaletteSize)
}

func TestSaveLoad(t *testing.T) {
	d := newDoc(t, 2, 2)
	_, err := d.SwapPixel(0, Point{1, 0}, Indexed(5))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "art.json")
	require.NoError(t, Save(d, path))

	got, err := Load(path)
	require.NoError(t, err)
	px, err := got.Pixel(0, Point{1, 0})
	require.NoError(t, err)
	assert.Equal(t, Indexed(5), px)
}

func TestLayerClone(t *testing.T) {
	l := NewLayer("a", 2, 1)
	_, err := l.Swap(Point{0, 0}, Indexed(1))
	require.NoError(t, err)

	c := l.Clone()
	_, err = l.Swap(Point{0, 0}, Indexed(2))
	require.NoError(t, err)

	assert.Equal(t, Indexed(1), c.At(Point{0, 0}))
	assert.Equal(t, 1, c.CountFilled())
}

func TestCompositeTranslucent(t *testing.T) {
	d := newDoc(t, 1, 1)
	_, err := d.SwapPixel(0, Point{}, TrueColor(color.RGBA{R: 255, G: 255, B: 255, A: 128}))
	require.NoError(t, err)

	c, ok := d.Composite(Point{})
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 128}, c)
}
