package layout

import (
	"strings"

	"github.com/ByLCY/vita/fonts"
)

// WrapGreedy 按空白切词，贪心地把词放进宽度不超过 maxWidth 的行。
// 空文本返回一个空行；单个超宽的词独占一行，不再拆分。
func WrapGreedy(m Metrics, role fonts.Role, size float64, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	lines := make([]string, 0, 1)
	cur := words[0]
	for _, w := range words[1:] {
		trial := cur + " " + w
		if m.Width(role, size, trial) <= maxWidth {
			cur = trial
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	return append(lines, cur)
}

// Align 是水平对齐方式。
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// paraStyle 描述一次段落绘制。LineGap/ParaGap 为 nil 时使用 Style.Text 的默认值，
// 显式的 0 照常生效。
type paraStyle struct {
	X, Width float64
	Font     fonts.Role
	Size     float64
	Color    Color
	Align    Align
	RTL      bool
	LineGap  *float64
	ParaGap  *float64
}

func gap(v float64) *float64 { return &v }

// paragraph 逐段换行绘制 lines，返回新的游标。每个换行后的行消耗 LineGap，
// 每段结束再减去 ParaGap；空段落也占一行。
func (c *composer) paragraph(y float64, lines []string, p paraStyle) float64 {
	shaped := p.RTL && p.Align == AlignRight
	lineGap := c.style.Text.Leading
	if shaped {
		lineGap = c.style.Text.LeadingRTL
	}
	if p.LineGap != nil {
		lineGap = *p.LineGap
	}
	paraGap := c.style.Text.ParaGap
	if p.ParaGap != nil {
		paraGap = *p.ParaGap
	}

	cur := y
	for _, raw := range lines {
		txt := raw
		if shaped {
			txt = c.shape(raw)
		}
		wrapped := []string{""}
		if txt != "" {
			wrapped = WrapGreedy(c.m, p.Font, p.Size, txt, p.Width)
		}
		for _, ln := range wrapped {
			c.alignedText(ln, p.X, p.Width, cur, p.Align, p.Font, p.Size, p.Color)
			cur -= lineGap
		}
		cur -= paraGap
	}
	return cur
}
