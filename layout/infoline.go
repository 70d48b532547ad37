package layout

import (
	"math"
	"strings"

	"github.com/ByLCY/vita/fonts"
	"github.com/ByLCY/vita/social"
)

const bulletGlyph = "•"

// infoField 是一条联系方式：key 选择图标，platform 非空时尝试解析社交账号。
type infoField struct {
	key      string
	value    string
	platform social.Kind
}

// contactFields 按固定顺序列出非空的联系方式。
func contactFields(ct Contact) []infoField {
	all := []infoField{
		{key: "location", value: ct.Location},
		{key: "phone", value: ct.Phone},
		{key: "email", value: ct.Email},
		{key: "birthdate", value: ct.Birthdate},
		{key: "github", value: ct.GitHub, platform: social.GitHub},
		{key: "linkedin", value: ct.LinkedIn, platform: social.LinkedIn},
	}
	out := all[:0]
	for _, f := range all {
		f.value = strings.TrimSpace(f.value)
		if f.value != "" {
			out = append(out, f)
		}
	}
	return out
}

// resolve 返回显示文本与链接；社交账号先走严格规则，再走宽松规则，都失败时原样显示。
func (f infoField) resolve() (display, url string) {
	if f.platform == "" {
		return f.value, ""
	}
	if h, ok := social.NormalizeHandle(f.platform, f.value); ok {
		return h.Display, h.URL
	}
	if h, ok := social.LaxHandle(f.platform, f.value); ok {
		return h.Display, h.URL
	}
	return f.value, ""
}

// infoLine 绘制图标（或圆点）加换行后的值，图标与文字块垂直居中，
// 链接区域只覆盖第一行。值为空时游标不变。
func (c *composer) infoLine(y, x, width float64, f infoField) float64 {
	if f.value == "" {
		return y
	}
	st := c.style.Info
	display, url := f.resolve()

	role := fonts.Regular
	asc := c.m.Ascent(role, st.TextSize)
	dsc := c.m.Descent(role, st.TextSize)
	iconW, iconH := st.IconSize, st.IconSize

	c.marker(f.key, x, y, iconW, iconH)

	textX := x + iconW + st.IconPadX
	baseline := y - (iconH/2 - (asc-dsc)/2) + st.TextDY
	avail := math.Max(st.MinWidth, width-(textX-x))

	lines := WrapGreedy(c.m, role, st.TextSize, display, avail)
	cur := baseline
	for i, ln := range lines {
		w := c.text(ln, textX, cur, role, st.TextSize, c.style.Colors.Text)
		if i == 0 {
			c.link(textX, cur-dsc, w, asc+dsc, url)
		}
		cur -= st.LineGap
	}

	block := float64(len(lines)) * st.LineGap
	used := math.Max(iconH, block)
	return y - math.Max(st.LineGap, used+st.SafetyGap)
}

// marker 放置图标；没有图标时退回到符号字体的圆点，字体也缺字形时画实心圆。
func (c *composer) marker(key string, x, y, w, h float64) {
	if c.assets != nil {
		if img, ok := c.assets.Icon(key); ok {
			c.page.Images = append(c.page.Images, ImageBox{
				Name: img.Name, X: x, Y: y - h, Width: w, Height: h, Data: img.Data,
			})
			return
		}
	}
	size := c.style.Info.TextSize + 2
	if c.m.Covers(fonts.Symbol, []rune(bulletGlyph)[0]) {
		c.text(bulletGlyph, x, y, fonts.Symbol, size, c.style.Colors.Text)
		return
	}
	r := size * 0.18
	c.dot(x+r, y+size*0.3, r, c.style.Colors.Text)
}
