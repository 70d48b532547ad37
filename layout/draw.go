package layout

import "github.com/ByLCY/vita/fonts"

// composer 持有一次渲染的全部状态：只在单个 goroutine 中使用，
// 游标不保存在这里，而是在各个绘制函数之间显式传递。
type composer struct {
	style  Style
	geo    Geometry
	m      Metrics
	assets Assets
	shape  func(string) string
	page   *Page
}

// text 在 (x, baseline) 处放置一行文本并返回其宽度。空字符串不产生元素。
func (c *composer) text(s string, x, y float64, role fonts.Role, size float64, col Color) float64 {
	if s == "" {
		return 0
	}
	w := c.m.Width(role, size, s)
	c.page.Texts = append(c.page.Texts, TextRun{
		Content: s, X: x, Y: y, Width: w, Font: role, Size: size, Color: col,
	})
	return w
}

// alignedText 在 [x, x+width] 内按 align 放置文本，返回实际左端。
func (c *composer) alignedText(s string, x, width, y float64, align Align, role fonts.Role, size float64, col Color) float64 {
	if s == "" {
		return x
	}
	w := c.m.Width(role, size, s)
	switch align {
	case AlignCenter:
		x += (width - w) / 2
	case AlignRight:
		x += width - w
	}
	c.text(s, x, y, role, size, col)
	return x
}

func (c *composer) rule(x, y, width, lineWidth float64, col Color) {
	c.page.Lines = append(c.page.Lines, Line{X1: x, Y1: y, X2: x + width, Y2: y, Color: col, Width: lineWidth})
}

func (c *composer) dot(cx, cy, r float64, col Color) {
	fill := col
	c.page.Circles = append(c.page.Circles, Circle{CX: cx, CY: cy, R: r, StrokeColor: col, StrokeWidth: 0.5, FillColor: &fill})
}

func (c *composer) link(x, y, w, h float64, url string) {
	if url == "" || w <= 0 || h <= 0 {
		return
	}
	c.page.Links = append(c.page.Links, Link{X: x, Y: y, Width: w, Height: h, URL: url})
}
