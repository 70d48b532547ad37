package markup

import (
	"strings"
)

// TextSection is a titled list of lines, e.g. "[Zertifikate]" followed by bullets.
type TextSection struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// Valid reports whether the section has a title and at least one non-blank line.
func (s TextSection) Valid() bool {
	if strings.TrimSpace(s.Title) == "" {
		return false
	}
	for _, ln := range s.Lines {
		if strings.TrimSpace(ln) != "" {
			return true
		}
	}
	return false
}

// ProjectEntry is one project block: title, free description and an optional link.
type ProjectEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// Empty reports whether all three fields are blank.
func (p ProjectEntry) Empty() bool {
	return strings.TrimSpace(p.Title) == "" &&
		strings.TrimSpace(p.Description) == "" &&
		strings.TrimSpace(p.Link) == ""
}

// ParseListOrCSV splits on commas and newlines, trims, and drops empty items.
func ParseListOrCSV(text string) []string {
	var out []string
	for _, item := range strings.Split(normalizeInput(strings.ReplaceAll(text, ",", "\n")), "\n") {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ParseBracketSections reads "[Title]" headed sections with "-", "•" or "–" bullets.
//
// A plain line continues the previous bullet; before the first bullet it becomes the
// title when none is pending. A blank line or a new header closes the section, which
// is kept only if it has both a title and at least one line.
func ParseBracketSections(text string) []TextSection {
	var (
		out   []TextSection
		title string
		items []string
	)
	flush := func() {
		if title != "" && len(items) > 0 {
			out = append(out, TextSection{Title: title, Lines: items})
		}
		title, items = "", nil
	}

	for _, ln := range lines(text) {
		switch ln.Kind {
		case KindBlank:
			flush()
		case KindHeader:
			flush()
			title = ln.Value
		case KindBullet:
			// 空的 "-" 也算一行，绘制时再过滤
			items = append(items, ln.Value)
		case KindText:
			if len(items) > 0 {
				items[len(items)-1] += " " + ln.Value
			} else if title == "" {
				title = ln.Value
			}
		}
	}
	flush()
	return out
}

// ParseBlocks splits text into blank-line separated blocks. Lines keep their
// indentation but lose trailing whitespace.
func ParseBlocks(text string) []string {
	var (
		out []string
		cur []string
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.Join(cur, "\n"))
		}
		cur = nil
	}
	for _, ln := range lines(text) {
		if ln.Kind == KindBlank {
			flush()
			continue
		}
		cur = append(cur, ln.Raw)
	}
	flush()
	return out
}

// ParseProjects reads project blocks separated by blank lines. The first line of a
// block is the title, any later line starting with http:// or https:// is the link
// (the last one wins), everything else is description.
func ParseProjects(text string) []ProjectEntry {
	var (
		out   []ProjectEntry
		title string
		desc  []string
		link  string
	)
	flush := func() {
		if title != "" || len(desc) > 0 || link != "" {
			out = append(out, ProjectEntry{
				Title:       strings.TrimSpace(title),
				Description: strings.TrimSpace(strings.Join(desc, "\n")),
				Link:        link,
			})
		}
		title, desc, link = "", nil, ""
	}

	for _, ln := range lines(text) {
		if ln.Kind == KindBlank {
			flush()
			continue
		}
		s := strings.TrimSpace(ln.Raw)
		switch {
		case title == "":
			title = s
		case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
			link = s
		default:
			desc = append(desc, s)
		}
	}
	flush()
	return out
}
