package layout

import (
	"fmt"
	"math"
	"strings"
)

// Stage 标记页面合成状态机的一个状态。
type Stage string

const (
	StageInit        Stage = "init"
	StageLeftCard    Stage = "left-card"
	StagePhoto       Stage = "photo"
	StageLeftColumn  Stage = "left-column"
	StageRightColumn Stage = "right-column"
	StageFinalized   Stage = "finalized"
)

// Creator is written into the document info of every page.
const Creator = "vita"

// Compose 在一页 A4 上排出两栏简历：左侧圆角卡片（可选圆形照片、姓名、联系方式、
// 技能、语言与自定义小节），右侧自定义小节、项目与教育经历。
// 状态依次为 init → left-card → photo? → left-column → right-column → finalized，
// 不回退。内容问题一律降级为“不绘制”，只有缺少 Metrics 时返回错误。
func Compose(in Input, opts Options) (*Result, error) {
	if opts.Metrics == nil {
		return nil, fmt.Errorf("layout: 缺少字体度量 Metrics")
	}
	shape := opts.Shaper
	if shape == nil {
		shape = func(s string) string { return s }
	}
	geo := NewGeometry(opts.Style)
	c := &composer{
		style:  opts.Style,
		geo:    geo,
		m:      opts.Metrics,
		assets: opts.Assets,
		shape:  shape,
		page:   &Page{Width: geo.Width, Height: geo.Height},
	}
	res := &Result{Geometry: geo, Trace: []Stage{StageInit}}

	c.card()
	res.Trace = append(res.Trace, StageLeftCard)

	cursor := geo.InnerTop
	if y, ok := c.photo(cursor, in.Photo); ok {
		cursor = y
		res.Trace = append(res.Trace, StagePhoto)
	}

	cursor = c.leftColumn(cursor, in)
	cursor = c.leftSections(cursor, in.LeftSections)
	res.Trace = append(res.Trace, StageLeftColumn)

	yR := geo.Top - c.style.Right.TopGap
	yR = c.rightSections(yR, in.RightSections)
	yR = c.projects(yR, in.Projects, in.RTL)
	c.education(yR, in.Education)
	res.Trace = append(res.Trace, StageRightColumn)

	res.Pages = []Page{*c.page}
	res.Meta = documentMeta(c.style.Labels.Document, in.Name)
	res.Trace = append(res.Trace, StageFinalized)
	return res, nil
}

func (c *composer) card() {
	g, pal := c.geo, c.style.Colors
	fill := pal.CardFill
	c.page.Rects = append(c.page.Rects, Rect{
		X: g.CardX, Y: g.CardY, Width: g.CardW, Height: g.CardH,
		Radius:      c.style.Card.Radius,
		StrokeColor: pal.CardBorder,
		StrokeWidth: c.style.Card.BorderWidth,
		FillColor:   &fill,
	})
}

// photo 在卡片顶部居中放置圆形裁剪的照片，返回照片下方的游标。
// 没有照片数据或无法解码时返回 false，页面不受影响。
func (c *composer) photo(y float64, data []byte) (float64, bool) {
	if len(data) == 0 || c.assets == nil {
		return y, false
	}
	img, ok := c.assets.Photo(data)
	if !ok {
		return y, false
	}
	g, cs := c.geo, c.style.Card
	d := math.Min(g.InnerW, cs.PhotoMax.Pt())
	r := d / 2
	cx, cy := g.InnerX+g.InnerW/2, y-r

	c.page.Images = append(c.page.Images, ImageBox{
		Name: img.Name, X: cx - r, Y: cy - r, Width: d, Height: d, ClipCircle: true, Data: img.Data,
	})
	c.page.Circles = append(c.page.Circles, Circle{
		CX: cx, CY: cy, R: r, StrokeColor: c.style.Colors.CardBorder, StrokeWidth: cs.PhotoBorder,
	})
	return cy - r - cs.PhotoGap.Pt(), true
}

func documentMeta(label, name string) DocumentMeta {
	meta := DocumentMeta{Title: label, Creator: Creator, Subject: label}
	if name = strings.TrimSpace(name); name != "" {
		meta.Title = label + " – " + name
		meta.Author = name
	}
	return meta
}
