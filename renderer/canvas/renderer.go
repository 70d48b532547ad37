// Package canvasrenderer 通过 github.com/tdewolff/canvas 输出 PDF。
// 它是备用后端：画面与 fpdf 后端一致，但不写入可点击链接。
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/vita/fonts"
	"github.com/ByLCY/vita/layout"
	"github.com/ByLCY/vita/renderer"
)

// Renderer draws layout results via github.com/tdewolff/canvas.
type Renderer struct {
	fonts *fonts.Set

	fontMu       sync.Mutex
	fontFamilies map[fonts.Role]*canvas.FontFamily
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer 创建渲染器，set 为 nil 时使用内置字体。
func NewRenderer(set *fonts.Set) *Renderer {
	if set == nil {
		set = fonts.Default()
	}
	return &Renderer{
		fonts:        set,
		fontFamilies: map[fonts.Role]*canvas.FontFamily{},
	}
}

// ContentType implements renderer.ContentType.
func (r *Renderer) ContentType() string { return "application/pdf" }

// Render renders the result into a PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	var buf bytes.Buffer
	first := result.Pages[0]
	writer := pdf.New(&buf, toMm(first.Width), toMm(first.Height), nil)
	applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(toMm(page.Width), toMm(page.Height))
		}
		c := canvas.New(toMm(page.Width), toMm(page.Height))
		ctx := canvas.NewContext(c)
		// 布局坐标本身就是左下角为原点、y 轴向上
		ctx.SetCoordSystem(canvas.CartesianI)

		if err := r.drawPage(ctx, page); err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	if writer == nil {
		return
	}
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

// drawPage 按固定顺序绘制：卡片背景、图片、圆、线、文字。链接在此后端忽略。
func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page) error {
	r.drawRects(ctx, page.Rects)
	if err := r.drawImages(ctx, page.Images); err != nil {
		return err
	}
	r.drawCircles(ctx, page.Circles)
	r.drawLines(ctx, page.Lines)
	for _, t := range page.Texts {
		if err := r.drawText(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawText(ctx *canvas.Context, t layout.TextRun) error {
	if t.Content == "" {
		return nil
	}
	face, err := r.fontFace(t.Font, t.Size, t.Color)
	if err != nil {
		return err
	}
	// 布局给出的 Y 就是基线
	ctx.DrawText(toMm(t.X), toMm(t.Y), canvas.NewTextLine(face, t.Content, canvas.Left))
	return nil
}

func (r *Renderer) drawImages(ctx *canvas.Context, images []layout.ImageBox) error {
	for _, box := range images {
		if len(box.Data) == 0 || box.Width <= 0 {
			continue
		}
		img, err := renderer.DecodePNG(box)
		if err != nil {
			return err
		}
		if box.ClipCircle {
			img = renderer.CircleMask(img)
		}
		dpmm := float64(img.Bounds().Dx()) / toMm(box.Width)
		if dpmm <= 0 {
			dpmm = 1
		}
		ctx.DrawImage(toMm(box.X), toMm(box.Y), img, canvas.DPMM(dpmm))
	}
	return nil
}

// drawLines 绘制直线列表
func (r *Renderer) drawLines(ctx *canvas.Context, lines []layout.Line) {
	for _, ln := range lines {
		if ln.Width <= 0 {
			continue
		}
		ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
		ctx.SetStrokeColor(colorFromLayout(ln.Color))
		ctx.SetStrokeWidth(toMm(ln.Width))
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(toMm(ln.X2-ln.X1), toMm(ln.Y2-ln.Y1))
		ctx.DrawPath(toMm(ln.X1), toMm(ln.Y1), p)
	}
}

// drawRects 绘制（圆角）矩形
func (r *Renderer) drawRects(ctx *canvas.Context, rects []layout.Rect) {
	for _, rc := range rects {
		setPaint(ctx, rc.StrokeColor, rc.StrokeWidth, rc.FillColor)
		w, h := toMm(rc.Width), toMm(rc.Height)
		path := canvas.Rectangle(w, h)
		if rc.Radius > 0 {
			path = canvas.RoundedRectangle(w, h, toMm(rc.Radius))
		}
		ctx.DrawPath(toMm(rc.X), toMm(rc.Y), path)
	}
}

// drawCircles 绘制圆形，canvas.Circle 以原点为圆心
func (r *Renderer) drawCircles(ctx *canvas.Context, circles []layout.Circle) {
	for _, c := range circles {
		setPaint(ctx, c.StrokeColor, c.StrokeWidth, c.FillColor)
		ctx.DrawPath(toMm(c.CX), toMm(c.CY), canvas.Circle(toMm(c.R)))
	}
}

func setPaint(ctx *canvas.Context, stroke layout.Color, width float64, fill *layout.Color) {
	if fill != nil {
		ctx.SetFillColor(colorFromLayout(*fill))
	} else {
		ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	}
	if width > 0 {
		ctx.SetStrokeColor(colorFromLayout(stroke))
		ctx.SetStrokeWidth(toMm(width))
	} else {
		ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
		ctx.SetStrokeWidth(0)
	}
}

// fontFace 的 size 单位为 pt，与 canvas 的字体面一致。
func (r *Renderer) fontFace(role fonts.Role, size float64, col layout.Color) (*canvas.FontFace, error) {
	family, err := r.ensureFontFamily(role)
	if err != nil {
		return nil, err
	}
	return family.Face(size, colorFromLayout(col), canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily(role fonts.Role) (*canvas.FontFamily, error) {
	face := r.fonts.Resolve(role)
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if family, ok := r.fontFamilies[face.Role]; ok {
		return family, nil
	}
	family := canvas.NewFontFamily(face.Name)
	if err := family.LoadFont(face.Data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载字体 %s 失败: %w", face.Name, err)
	}
	r.fontFamilies[face.Role] = family
	return family, nil
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

// toMm 将点(pt)转换为毫米(mm)。
func toMm(pt float64) float64 { return pt * layout.PtToMm }
