package preview

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/vita/fonts"
	"github.com/ByLCY/vita/layout"
)

func TestRenderSizeAndPixels(t *testing.T) {
	fill := layout.Color{R: 10, G: 20, B: 30}
	res := &layout.Result{Pages: []layout.Page{{
		Width:  100,
		Height: 200,
		Rects:  []layout.Rect{{X: 10, Y: 10, Width: 40, Height: 40, FillColor: &fill}},
		Lines:  []layout.Line{{X1: 60, Y1: 150, X2: 90, Y2: 150, Width: 2, Color: layout.Color{R: 255}}},
		Texts:  []layout.TextRun{{Content: "Hi", X: 10, Y: 180, Font: fonts.Bold, Size: 12}},
	}}}

	out, err := NewRenderer(nil, 2).Render(res)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())

	// rect center (30, 30) pt -> (60, 340) px
	r, g, b, _ := img.At(60, 340).RGBA()
	assert.Equal(t, []uint32{10, 20, 30}, []uint32{r >> 8, g >> 8, b >> 8})
	// top-left corner stays white
	r, _, _, _ = img.At(1, 1).RGBA()
	assert.Equal(t, uint32(255), r>>8)
	// line at y=150pt -> 100px
	r, g, _, _ = img.At(150, 100).RGBA()
	assert.Equal(t, uint32(255), r>>8)
	assert.Equal(t, uint32(0), g>>8)
}

func TestRenderRejectsEmpty(t *testing.T) {
	_, err := NewRenderer(nil, 0).Render(&layout.Result{})
	assert.Error(t, err)
}

func TestRoundedRectStaysInBounds(t *testing.T) {
	pts := roundedRect(0, 0, 20, 10, 8)
	require.NotEmpty(t, pts)
	for _, p := range pts {
		assert.True(t, p[0] >= -1e-9 && p[0] <= 20+1e-9, "x=%g", p[0])
		assert.True(t, p[1] >= -1e-9 && p[1] <= 10+1e-9, "y=%g", p[1])
	}
	assert.Nil(t, roundedRect(0, 0, 0, 10, 2))
}

func TestEllipseRadius(t *testing.T) {
	for _, p := range ellipse(5, 5, 3) {
		assert.InDelta(t, 3, math.Hypot(p[0]-5, p[1]-5), 1e-9)
	}
}

func TestComposedPreview(t *testing.T) {
	set := fonts.Default()
	res, err := layout.Compose(layout.Input{Name: "Jane Doe", Skills: []string{"Go"}},
		layout.Options{Style: layout.DefaultStyle(), Metrics: set.NewMeasurer()})
	require.NoError(t, err)
	out, err := NewRenderer(set, 0.5).Render(res)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("\x89PNG")))
}
