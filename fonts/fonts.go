// Package fonts resolves the five font roles used by the résumé page (regular, bold,
// italic, arabic, symbol) to TrueType data. Roles without a usable file fall back to the
// Go fonts, so a Set is always complete.
package fonts

import (
	"fmt"
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Role names the purpose a face is used for.
type Role string

const (
	Regular Role = "regular"
	Bold    Role = "bold"
	Italic  Role = "italic"
	Arabic  Role = "arabic"
	Symbol  Role = "symbol"
)

// Roles lists every role in registration order.
var Roles = []Role{Regular, Bold, Italic, Arabic, Symbol}

// Paths maps roles to TTF files on disk. Missing or empty entries use the fallback.
type Paths map[Role]string

// Face is one loaded font.
type Face struct {
	Role     Role
	Name     string // family name used by the renderers
	Data     []byte
	Fallback bool

	font        *truetype.Font
	ascentPerEm float64
	descPerEm   float64
}

// Set holds one Face per role. It is read-only after Load and safe for concurrent use.
type Set struct {
	faces map[Role]*Face
}

// Load reads the configured files. A role whose file cannot be read or parsed is
// logged once and served by the Go fonts instead.
func Load(paths Paths) (*Set, error) {
	s := &Set{faces: make(map[Role]*Face, len(Roles))}
	for _, role := range Roles {
		path := paths[role]
		if path != "" {
			data, err := os.ReadFile(path)
			if err == nil {
				var face *Face
				face, err = newFace(role, data, false)
				if err == nil {
					s.faces[role] = face
					continue
				}
			}
			log.Printf("字体 %s (%s) 不可用，改用内置字体: %v", role, path, err)
		}
		face, err := newFace(role, fallbackData(role), true)
		if err != nil {
			return nil, fmt.Errorf("加载内置字体 %s 失败: %w", role, err)
		}
		s.faces[role] = face
	}
	return s, nil
}

// Default returns a Set made only of fallback fonts.
func Default() *Set {
	s, err := Load(nil)
	if err != nil {
		panic(err)
	}
	return s
}

func fallbackData(role Role) []byte {
	switch role {
	case Bold:
		return gobold.TTF
	case Italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

func newFace(role Role, data []byte, fallback bool) (*Face, error) {
	ft, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	// ppem == units per em 时 26.6 的度量就是字体单位
	upem := float64(sf.UnitsPerEm())
	m, err := sf.Metrics(&sfnt.Buffer{}, fixed.I(int(sf.UnitsPerEm())), font.HintingNone)
	if err != nil {
		return nil, err
	}
	return &Face{
		Role:        role,
		Name:        "vita-" + string(role),
		Data:        data,
		Fallback:    fallback,
		font:        ft,
		ascentPerEm: float64(m.Ascent) / 64 / upem,
		descPerEm:   float64(m.Descent) / 64 / upem,
	}, nil
}

// Resolve returns the face for role, using the regular face for unknown roles.
func (s *Set) Resolve(role Role) *Face {
	if f, ok := s.faces[role]; ok {
		return f
	}
	return s.faces[Regular]
}

// Bytes returns the TTF data registered for role.
func (s *Set) Bytes(role Role) []byte { return s.Resolve(role).Data }

// AscentPerEm is the ascender height as a fraction of the font size.
func (f *Face) AscentPerEm() float64 { return f.ascentPerEm }

// DescentPerEm is the positive descender depth as a fraction of the font size.
func (f *Face) DescentPerEm() float64 { return f.descPerEm }

// Covers reports whether the face maps r to a real glyph.
func (f *Face) Covers(r rune) bool { return f.font.Index(r) != 0 }

// TrueType exposes the parsed font for rasterizers.
func (f *Face) TrueType() *truetype.Font { return f.font }
