// Package preview rasterizes a layout.Result into a PNG thumbnail of the first page,
// using golang/freetype for text and x/image/vector for shapes.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/golang/freetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/ByLCY/vita/fonts"
	"github.com/ByLCY/vita/layout"
	"github.com/ByLCY/vita/renderer"
)

// DefaultScale renders one pt as one pixel.
const DefaultScale = 1.0

const arcSegments = 12

// Renderer produces PNG previews.
type Renderer struct {
	fonts *fonts.Set
	scale float64
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer returns a preview renderer; scale <= 0 selects DefaultScale.
func NewRenderer(set *fonts.Set, scale float64) *Renderer {
	if set == nil {
		set = fonts.Default()
	}
	if scale <= 0 {
		scale = DefaultScale
	}
	return &Renderer{fonts: set, scale: scale}
}

func (r *Renderer) ContentType() string { return "image/png" }

// Render draws the first page only.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil || len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}
	page := result.Pages[0]
	w := int(math.Ceil(page.Width * r.scale))
	h := int(math.Ceil(page.Height * r.scale))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	c := canvas{dst: dst, scale: r.scale, h: page.Height}
	for _, rc := range page.Rects {
		c.rect(rc)
	}
	for _, box := range page.Images {
		if err := c.image(box); err != nil {
			return nil, err
		}
	}
	for _, ci := range page.Circles {
		c.circle(ci)
	}
	for _, ln := range page.Lines {
		c.line(ln)
	}
	if err := r.drawTexts(dst, page); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("编码预览图失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawTexts(dst *image.RGBA, page layout.Page) error {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetHinting(font.HintingNone)
	for _, t := range page.Texts {
		if t.Content == "" {
			continue
		}
		ctx.SetFont(r.fonts.Resolve(t.Font).TrueType())
		ctx.SetFontSize(t.Size * r.scale)
		ctx.SetSrc(image.NewUniform(rgba(t.Color)))
		pt := fixed.Point26_6{
			X: fixed.Int26_6(t.X * r.scale * 64),
			Y: fixed.Int26_6((page.Height - t.Y) * r.scale * 64),
		}
		if _, err := ctx.DrawString(t.Content, pt); err != nil {
			return fmt.Errorf("绘制文字 %q 失败: %w", t.Content, err)
		}
	}
	return nil
}

// canvas maps y-up points onto the pixel grid.
type canvas struct {
	dst   *image.RGBA
	scale float64
	h     float64
}

func (c canvas) px(x, y float64) (float32, float32) {
	return float32(x * c.scale), float32((c.h - y) * c.scale)
}

func (c canvas) fill(pts [][2]float64, holes [][2]float64, col layout.Color) {
	b := c.dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	addPolygon(z, c, pts)
	if len(holes) > 0 {
		// 反向绕行的内轮廓抵消外轮廓，形成描边环
		rev := make([][2]float64, len(holes))
		for i, p := range holes {
			rev[len(holes)-1-i] = p
		}
		addPolygon(z, c, rev)
	}
	z.Draw(c.dst, b, image.NewUniform(rgba(col)), image.Point{})
}

func addPolygon(z *vector.Rasterizer, c canvas, pts [][2]float64) {
	if len(pts) < 3 {
		return
	}
	z.MoveTo(c.px(pts[0][0], pts[0][1]))
	for _, p := range pts[1:] {
		z.LineTo(c.px(p[0], p[1]))
	}
	z.ClosePath()
}

func (c canvas) rect(rc layout.Rect) {
	outer := roundedRect(rc.X, rc.Y, rc.Width, rc.Height, rc.Radius)
	if rc.FillColor != nil {
		c.fill(outer, nil, *rc.FillColor)
	}
	if sw := rc.StrokeWidth; sw > 0 {
		inner := roundedRect(rc.X+sw, rc.Y+sw, rc.Width-2*sw, rc.Height-2*sw, math.Max(rc.Radius-sw, 0))
		c.fill(outer, inner, rc.StrokeColor)
	}
}

func (c canvas) circle(ci layout.Circle) {
	outer := ellipse(ci.CX, ci.CY, ci.R+ci.StrokeWidth/2)
	if ci.FillColor != nil {
		c.fill(ellipse(ci.CX, ci.CY, ci.R), nil, *ci.FillColor)
	}
	if ci.StrokeWidth > 0 {
		c.fill(outer, ellipse(ci.CX, ci.CY, ci.R-ci.StrokeWidth/2), ci.StrokeColor)
	}
}

func (c canvas) line(ln layout.Line) {
	dx, dy := ln.X2-ln.X1, ln.Y2-ln.Y1
	l := math.Hypot(dx, dy)
	if l == 0 || ln.Width <= 0 {
		return
	}
	// 线宽在预览里至少一像素
	half := math.Max(ln.Width, 1/c.scale) / 2
	nx, ny := -dy/l*half, dx/l*half
	c.fill([][2]float64{
		{ln.X1 + nx, ln.Y1 + ny},
		{ln.X2 + nx, ln.Y2 + ny},
		{ln.X2 - nx, ln.Y2 - ny},
		{ln.X1 - nx, ln.Y1 - ny},
	}, nil, ln.Color)
}

func (c canvas) image(box layout.ImageBox) error {
	if len(box.Data) == 0 {
		return nil
	}
	img, err := renderer.DecodePNG(box)
	if err != nil {
		return err
	}
	if box.ClipCircle {
		img = renderer.CircleMask(img)
	}
	x0, y0 := c.px(box.X, box.Y+box.Height)
	x1, y1 := c.px(box.X+box.Width, box.Y)
	target := image.Rect(int(x0), int(y0), int(math.Ceil(float64(x1))), int(math.Ceil(float64(y1))))
	draw.CatmullRom.Scale(c.dst, target, img, img.Bounds(), draw.Over, nil)
	return nil
}

// roundedRect 以逆时针顺序返回圆角矩形的折线近似。
func roundedRect(x, y, w, h, r float64) [][2]float64 {
	if w <= 0 || h <= 0 {
		return nil
	}
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	}
	corners := [4][3]float64{
		{x + w - r, y + r, -math.Pi / 2},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, math.Pi / 2},
		{x + r, y + r, math.Pi},
	}
	pts := make([][2]float64, 0, 4*(arcSegments+1))
	for _, k := range corners {
		for i := 0; i <= arcSegments; i++ {
			a := k[2] + float64(i)/arcSegments*math.Pi/2
			pts = append(pts, [2]float64{k[0] + r*math.Cos(a), k[1] + r*math.Sin(a)})
		}
	}
	return pts
}

func ellipse(cx, cy, r float64) [][2]float64 {
	if r <= 0 {
		return nil
	}
	n := 4 * arcSegments
	pts := make([][2]float64, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}

func rgba(c layout.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
