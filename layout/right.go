package layout

import (
	"strings"

	"github.com/ByLCY/vita/binding"
	"github.com/ByLCY/vita/fonts"
	"github.com/ByLCY/vita/markup"
)

// rightSections draws user defined sections as heading, rule and paragraph.
func (c *composer) rightSections(y float64, sections []markup.TextSection) float64 {
	g, rs, pal := c.geo, c.style.Right, c.style.Colors
	for _, sec := range sections {
		if !sec.Valid() {
			continue
		}
		title, lines := strings.TrimSpace(sec.Title), nonEmpty(sec.Lines)
		c.text(title, g.RightX, y, fonts.Bold, rs.HeadingSize, pal.Text)
		y -= rs.TitleToRule
		c.rule(g.RightX, y, g.RightW, rs.RuleWidth, pal.SectionRule)
		y -= rs.RuleToText
		y = c.paragraph(y, lines, paraStyle{
			X: g.RightX, Width: g.RightW,
			Font: fonts.Regular, Size: rs.TextSize, Color: pal.Text,
			Align: AlignLeft, LineGap: gap(rs.LineGap), ParaGap: gap(rs.ParaGap),
		})
		y -= rs.SectionGap
	}
	return y
}

// rightHeading draws a main heading of the right column followed by its rule.
func (c *composer) rightHeading(y float64, label string) float64 {
	g, pal := c.geo, c.style.Colors
	c.text(label, g.RightX, y, fonts.Bold, c.style.Right.HeadingSize, pal.Heading)
	y -= c.style.Project.HeadingGap
	c.rule(g.RightX, y, g.RightW, c.style.Header.RuleWidth, pal.Rule)
	return y - c.style.Right.RuleToText
}

// projects draws the project list; entries with no field are dropped and an empty
// list omits the whole section.
func (c *composer) projects(y float64, entries []markup.ProjectEntry, rtl bool) float64 {
	var clean []markup.ProjectEntry
	for _, p := range entries {
		p = markup.ProjectEntry{
			Title:       strings.TrimSpace(p.Title),
			Description: strings.TrimSpace(p.Description),
			Link:        strings.TrimSpace(p.Link),
		}
		if !p.Empty() {
			clean = append(clean, p)
		}
	}
	if len(clean) == 0 {
		return y
	}

	g, ps, pal := c.geo, c.style.Project, c.style.Colors
	y = c.rightHeading(y, c.style.Labels.Projects)

	desc := paraStyle{
		X: g.RightX, Width: g.RightW,
		Font: fonts.Regular, Size: c.style.Text.Size, Color: pal.Text,
		Align: AlignLeft, LineGap: gap(ps.Leading),
	}
	if rtl {
		// 右对齐的阿拉伯文用 Text.LeadingRTL
		desc.Font, desc.Align, desc.RTL, desc.LineGap = fonts.Arabic, AlignRight, true, nil
	}

	for _, p := range clean {
		if p.Title != "" {
			c.text(p.Title, g.RightX, y, fonts.Bold, ps.TitleSize, pal.Subhead)
			y -= ps.TitleGap
		}
		if p.Description != "" {
			y = c.paragraph(y, strings.Split(p.Description, "\n"), desc)
		}
		y -= ps.LinkGapAbove
		if p.Link != "" {
			label := binding.Interpolate(c.style.Labels.RepoLink, map[string]string{"link": p.Link})
			w := c.text(label, g.RightX, y, fonts.Italic, ps.LinkSize, pal.Link)
			asc := c.m.Ascent(fonts.Italic, ps.LinkSize)
			dsc := c.m.Descent(fonts.Italic, ps.LinkSize)
			c.link(g.RightX, y-dsc, w, asc+dsc, p.Link)
		}
		y -= ps.BlockGap
	}
	return y
}

// education draws one bold heading per block followed by its indented body lines.
func (c *composer) education(y float64, blocks []string) float64 {
	items := nonEmpty(blocks)
	if len(items) == 0 {
		return y
	}

	g, rs, es, pal := c.geo, c.style.Right, c.style.Education, c.style.Colors
	y = c.rightHeading(y, c.style.Labels.Education)

	for _, block := range items {
		parts := nonEmpty(strings.Split(block, "\n"))
		if len(parts) == 0 {
			continue
		}
		c.text(parts[0], g.RightX, y, fonts.Bold, c.style.Text.Size, pal.EduTitle)
		y -= rs.LineGap
		if rest := parts[1:]; len(rest) > 0 {
			y = c.paragraph(y, rest, paraStyle{
				X: g.RightX + es.Indent, Width: g.RightW - es.Indent,
				Font: fonts.Regular, Size: rs.TextSize, Color: pal.Text,
				Align: AlignLeft, LineGap: gap(es.Leading), ParaGap: gap(es.ParaGap),
			})
		}
		y -= rs.SectionGap
	}
	return y
}
