package layout

import (
	"strings"

	"github.com/ByLCY/vita/fonts"
	"github.com/ByLCY/vita/markup"
)

// leftColumn draws name, contact block, skills and languages inside the card. Each
// block without content is skipped entirely.
func (c *composer) leftColumn(y float64, in Input) float64 {
	g, hs, pal := c.geo, c.style.Header, c.style.Colors

	if name := strings.TrimSpace(in.Name); name != "" {
		c.alignedText(name, g.InnerX, g.InnerW, y, AlignCenter, fonts.Bold, hs.NameSize, pal.Heading)
		y -= hs.NameGap
	}

	y = c.contactBlock(y, in.Contact)

	if skills := nonEmpty(in.Skills); len(skills) > 0 {
		y = c.leftTitle(y, c.style.Labels.Skills, pal.Heading)
		y = c.bulletList(y, skills)
		y -= c.style.Left.SectionGap
	}

	if langs := nonEmpty(in.Languages); len(langs) > 0 {
		ls := c.style.Left
		y = c.leftTitle(y, c.style.Labels.Languages, pal.Heading)
		y = c.paragraph(y, []string{strings.Join(langs, ", ")}, paraStyle{
			X: g.InnerX, Width: g.InnerW,
			Font: fonts.Regular, Size: ls.TextSize, Color: pal.Text,
			Align: AlignLeft, LineGap: gap(ls.LineGap),
		})
		y -= ls.SectionGap
	}
	return y
}

// contactBlock draws heading, rule and info lines; with no contact field it returns y
// unchanged and draws nothing.
func (c *composer) contactBlock(y float64, ct Contact) float64 {
	fields := contactFields(ct)
	if len(fields) == 0 {
		return y
	}
	g, hs, pal := c.geo, c.style.Header, c.style.Colors

	c.alignedText(c.style.Labels.Contact, g.InnerX, g.InnerW, y, AlignCenter, fonts.Bold, hs.HeadingSize, pal.Heading)
	y -= hs.TitleToRule
	c.rule(g.InnerX, y, g.InnerW, hs.RuleWidth, pal.Rule)
	y -= hs.RuleToList

	for _, f := range fields {
		y = c.infoLine(y, g.InnerX, g.InnerW, f)
	}
	return y - hs.AfterContact
}

// leftSections draws the user defined titled bullet lists of the left card.
func (c *composer) leftSections(y float64, sections []markup.TextSection) float64 {
	for _, sec := range sections {
		if !sec.Valid() {
			continue
		}
		title, lines := strings.TrimSpace(sec.Title), nonEmpty(sec.Lines)
		y = c.leftTitle(y, title, c.style.Colors.Text)
		y = c.bulletList(y, lines)
		y -= c.style.Left.SectionGap
	}
	return y
}

// leftTitle draws a section title and its rule, returning the cursor of the first
// list line.
func (c *composer) leftTitle(y float64, title string, col Color) float64 {
	g, ls := c.geo, c.style.Left
	y -= ls.TitleTopGap
	c.alignedText(title, g.InnerX, g.InnerW, y, Align(ls.TitleAlign), fonts.Bold, ls.HeadingSize, col)
	y -= ls.TitleBottomGap
	c.rule(g.InnerX, y, g.InnerW, ls.RuleWidth, c.style.Colors.SectionRule)
	return y - ls.RuleToList
}

// bulletList wraps every item on its own; the bullet sits beside the first line only.
func (c *composer) bulletList(y float64, items []string) float64 {
	g, ls, pal := c.geo, c.style.Left, c.style.Colors
	maxW := g.InnerW - (ls.TextX + 2)
	for _, item := range items {
		for i, ln := range WrapGreedy(c.m, fonts.Regular, ls.TextSize, item, maxW) {
			if i == 0 {
				c.dot(g.InnerX+ls.BulletX, y+3, ls.BulletRadius, pal.Text)
			}
			c.text(ln, g.InnerX+ls.TextX, y, fonts.Regular, ls.TextSize, pal.Text)
			y -= ls.LineGap
		}
	}
	return y
}

func nonEmpty(items []string) []string {
	var out []string
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
