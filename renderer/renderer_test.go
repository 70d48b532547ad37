package renderer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ByLCY/vita/layout"
)

func TestCircleMask(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 30, 30))
	for y := 10; y < 30; y++ {
		for x := 10; x < 30; x++ {
			src.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	out := CircleMask(src)
	if out.Bounds() != image.Rect(0, 0, 20, 20) {
		t.Fatalf("unexpected bounds %v", out.Bounds())
	}
	if a := out.NRGBAAt(0, 0).A; a != 0 {
		t.Fatalf("corner should be transparent, alpha=%d", a)
	}
	if c := out.NRGBAAt(10, 10); c.A != 255 || c.R != 255 {
		t.Fatalf("center should keep the source pixel, got %v", c)
	}
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 3, 2))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := DecodePNG(layout.ImageBox{Name: "x", Data: buf.Bytes()})
	if err != nil {
		t.Fatalf("DecodePNG: %v", err)
	}
	if img.Bounds().Dx() != 3 {
		t.Fatalf("unexpected width %d", img.Bounds().Dx())
	}
	if _, err := DecodePNG(layout.ImageBox{Name: "bad", Data: []byte("nope")}); err == nil {
		t.Fatalf("expected error for invalid data")
	}
}
