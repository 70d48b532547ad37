package markup

import (
	"regexp"
	"strings"
)

var languageLevelPattern = regexp.MustCompile(`(?i)^(.+?)\s*[-–:]\s*([abc][12])\b`)

// cefrLevels maps CEFR codes to the phrases printed on the page.
var cefrLevels = map[string]string{
	"a1": "Grundkenntnisse",
	"a2": "Grundkenntnisse",
	"b1": "Gute Kenntnisse",
	"b2": "Gute Kenntnisse",
	"c1": "Sehr gute Kenntnisse",
	"c2": "Verhandlungssicher",
}

// NormalizeLanguageLevel rewrites "Deutsch - B1" into "Deutsch – Gute Kenntnisse".
// Labels without a CEFR code are returned trimmed but otherwise unchanged.
func NormalizeLanguageLevel(label string) string {
	s := strings.TrimSpace(label)
	m := languageLevelPattern.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	level, ok := cefrLevels[strings.ToLower(m[2])]
	if !ok {
		level = m[2]
	}
	return strings.TrimSpace(m[1]) + " – " + level
}

// NormalizeLanguages applies NormalizeLanguageLevel to every entry.
func NormalizeLanguages(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		out = append(out, NormalizeLanguageLevel(l))
	}
	return out
}
