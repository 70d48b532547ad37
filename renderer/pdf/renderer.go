// Package pdfrenderer 使用 codeberg.org/go-pdf/fpdf 输出 PDF，是默认的渲染后端。
// 它是唯一支持可点击链接的后端。
package pdfrenderer

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"codeberg.org/go-pdf/fpdf"

	"github.com/ByLCY/vita/fonts"
	"github.com/ByLCY/vita/layout"
	"github.com/ByLCY/vita/renderer"
)

// 固定时间戳保证相同输入得到逐字节一致的输出。
var fixedDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Renderer draws a layout.Result with fpdf.
type Renderer struct {
	fonts    *fonts.Set
	compress bool
}

var _ renderer.Renderer = (*Renderer)(nil)

// Option tweaks a Renderer.
type Option func(*Renderer)

// WithCompression toggles stream compression (on by default).
func WithCompression(on bool) Option {
	return func(r *Renderer) { r.compress = on }
}

// NewRenderer 创建使用 set 中字体的渲染器，set 为 nil 时使用内置字体。
func NewRenderer(set *fonts.Set, opts ...Option) *Renderer {
	if set == nil {
		set = fonts.Default()
	}
	r := &Renderer{fonts: set, compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ContentType implements renderer.ContentType.
func (r *Renderer) ContentType() string { return "application/pdf" }

// Render renders every page of result into one PDF document.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	first := result.Pages[0]
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: first.Width, Ht: first.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(r.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(fixedDate)
	pdf.SetModificationDate(fixedDate)
	applyMeta(pdf, result.Meta)

	for _, role := range fonts.Roles {
		face := r.fonts.Resolve(role)
		pdf.AddUTF8FontFromBytes(face.Name, "", face.Data)
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("注册字体失败: %w", err)
	}

	for _, page := range result.Pages {
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: page.Width, Ht: page.Height})
		p := pageWriter{pdf: pdf, fonts: r.fonts, h: page.Height}
		p.draw(page)
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("绘制页面失败: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(pdf *fpdf.Fpdf, meta layout.DocumentMeta) {
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetCreator(meta.Creator, true)
	pdf.SetProducer(meta.Creator, true)
	if len(meta.Keywords) > 0 {
		pdf.SetKeywords(strings.Join(meta.Keywords, ", "), true)
	}
}

// pageWriter 把 y 轴向上的布局坐标翻转为 fpdf 的左上角坐标。
type pageWriter struct {
	pdf   *fpdf.Fpdf
	fonts *fonts.Set
	h     float64
}

func (p pageWriter) draw(page layout.Page) {
	for _, rc := range page.Rects {
		p.rect(rc)
	}
	for i, img := range page.Images {
		p.image(i, img)
	}
	for _, c := range page.Circles {
		p.circle(c)
	}
	for _, ln := range page.Lines {
		setDraw(p.pdf, ln.Color)
		p.pdf.SetLineWidth(ln.Width)
		p.pdf.Line(ln.X1, p.h-ln.Y1, ln.X2, p.h-ln.Y2)
	}
	for _, t := range page.Texts {
		p.pdf.SetFont(p.fonts.Resolve(t.Font).Name, "", t.Size)
		p.pdf.SetTextColor(int(t.Color.R), int(t.Color.G), int(t.Color.B))
		p.pdf.Text(t.X, p.h-t.Y, t.Content)
	}
	for _, l := range page.Links {
		p.pdf.LinkString(l.X, p.h-(l.Y+l.Height), l.Width, l.Height, l.URL)
	}
}

func (p pageWriter) rect(rc layout.Rect) {
	style := shapeStyle(rc.StrokeWidth, rc.FillColor)
	if style == "" {
		return
	}
	setDraw(p.pdf, rc.StrokeColor)
	p.pdf.SetLineWidth(rc.StrokeWidth)
	if rc.FillColor != nil {
		setFill(p.pdf, *rc.FillColor)
	}
	top := p.h - (rc.Y + rc.Height)
	if rc.Radius > 0 {
		p.pdf.RoundedRect(rc.X, top, rc.Width, rc.Height, rc.Radius, "1234", style)
		return
	}
	p.pdf.Rect(rc.X, top, rc.Width, rc.Height, style)
}

func (p pageWriter) circle(c layout.Circle) {
	style := shapeStyle(c.StrokeWidth, c.FillColor)
	if style == "" {
		return
	}
	setDraw(p.pdf, c.StrokeColor)
	p.pdf.SetLineWidth(c.StrokeWidth)
	if c.FillColor != nil {
		setFill(p.pdf, *c.FillColor)
	}
	p.pdf.Circle(c.CX, p.h-c.CY, c.R, style)
}

func (p pageWriter) image(i int, img layout.ImageBox) {
	if len(img.Data) == 0 {
		return
	}
	// 同名图片在 fpdf 内只注册一次，这里加序号避免不同页面的同名资源冲突
	name := fmt.Sprintf("%s#%d", img.Name, i)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	p.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	top := p.h - (img.Y + img.Height)
	if img.ClipCircle {
		r := min(img.Width, img.Height) / 2
		p.pdf.ClipCircle(img.X+img.Width/2, top+img.Height/2, r, false)
		p.pdf.ImageOptions(name, img.X, top, img.Width, img.Height, false, opts, 0, "")
		p.pdf.ClipEnd()
		return
	}
	p.pdf.ImageOptions(name, img.X, top, img.Width, img.Height, false, opts, 0, "")
}

func shapeStyle(strokeWidth float64, fill *layout.Color) string {
	switch {
	case strokeWidth > 0 && fill != nil:
		return "DF"
	case fill != nil:
		return "F"
	case strokeWidth > 0:
		return "D"
	}
	return ""
}

func setDraw(pdf *fpdf.Fpdf, c layout.Color) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func setFill(pdf *fpdf.Fpdf, c layout.Color) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}
