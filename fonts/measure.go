package fonts

import (
	"golang.org/x/image/font"

	"github.com/golang/freetype/truetype"
)

type faceKey struct {
	role Role
	size float64
}

// Measurer answers width and vertical metric queries in points. truetype faces cache
// glyphs internally, so a Measurer belongs to a single render and must not be shared
// between goroutines.
type Measurer struct {
	set   *Set
	faces map[faceKey]font.Face
}

// NewMeasurer returns a Measurer backed by the set's fonts.
func (s *Set) NewMeasurer() *Measurer {
	return &Measurer{set: s, faces: map[faceKey]font.Face{}}
}

func (m *Measurer) face(role Role, size float64) font.Face {
	key := faceKey{role, size}
	if f, ok := m.faces[key]; ok {
		return f
	}
	f := truetype.NewFace(m.set.Resolve(role).font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	m.faces[key] = f
	return f
}

// Width returns the advance width of text set in role at size.
func (m *Measurer) Width(role Role, size float64, text string) float64 {
	if text == "" || size <= 0 {
		return 0
	}
	return float64(font.MeasureString(m.face(role, size), text)) / 64
}

// Ascent returns the ascender height at size.
func (m *Measurer) Ascent(role Role, size float64) float64 {
	return m.set.Resolve(role).ascentPerEm * size
}

// Descent returns the positive descender depth at size.
func (m *Measurer) Descent(role Role, size float64) float64 {
	return m.set.Resolve(role).descPerEm * size
}

// Covers reports whether role has a glyph for r.
func (m *Measurer) Covers(role Role, r rune) bool {
	return m.set.Resolve(role).Covers(r)
}
