// Package shaping prepares right-to-left text for engines that draw runes left to
// right: Arabic letters are replaced by their contextual presentation forms and the
// result is reordered into visual order.
package shaping

import (
	"golang.org/x/text/unicode/bidi"
)

// ShapeRTL returns s in visual order with Arabic letters joined. Text without
// right-to-left runes is returned unchanged.
func ShapeRTL(s string) (out string) {
	if s == "" || !hasRTL(s) {
		return s
	}
	shaped := shapeArabic([]rune(s))
	defer func() {
		if recover() != nil {
			out = shaped
		}
	}()
	return visualOrder(shaped)
}

func visualOrder(s string) string {
	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return s
	}
	order, err := p.Order()
	if err != nil || order.NumRuns() == 0 {
		return s
	}

	runs := make([]string, order.NumRuns())
	for i := range runs {
		run := order.Run(i)
		if run.Direction() == bidi.RightToLeft {
			runs[i] = bidi.ReverseString(run.String())
		} else {
			runs[i] = run.String()
		}
	}
	if baseIsRTL(s) {
		for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
			runs[i], runs[j] = runs[j], runs[i]
		}
	}

	size := 0
	for _, r := range runs {
		size += len(r)
	}
	buf := make([]byte, 0, size)
	for _, r := range runs {
		buf = append(buf, r...)
	}
	return string(buf)
}

// baseIsRTL follows the first strong character rule.
func baseIsRTL(s string) bool {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return false
		case bidi.R, bidi.AL:
			return true
		}
	}
	return false
}

func hasRTL(s string) bool {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		if c := props.Class(); c == bidi.R || c == bidi.AL {
			return true
		}
	}
	return false
}
