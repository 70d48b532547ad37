package shaping

// arabicForm describes a letter in Arabic Presentation Forms-B: isolated is the
// first code point, followed by final, then initial and medial for dual-joining
// letters.
type arabicForm struct {
	isolated rune
	dual     bool
}

const (
	tatweel = 0x0640
	lam     = 'ل'
)

var arabicForms = map[rune]arabicForm{
	'ء': {0xFE80, false}, // hamza, never joins
	'آ': {0xFE81, false},
	'أ': {0xFE83, false},
	'ؤ': {0xFE85, false},
	'إ': {0xFE87, false},
	'ئ': {0xFE89, true},
	'ا': {0xFE8D, false},
	'ب': {0xFE8F, true},
	'ة': {0xFE93, false},
	'ت': {0xFE95, true},
	'ث': {0xFE99, true},
	'ج': {0xFE9D, true},
	'ح': {0xFEA1, true},
	'خ': {0xFEA5, true},
	'د': {0xFEA9, false},
	'ذ': {0xFEAB, false},
	'ر': {0xFEAD, false},
	'ز': {0xFEAF, false},
	'س': {0xFEB1, true},
	'ش': {0xFEB5, true},
	'ص': {0xFEB9, true},
	'ض': {0xFEBD, true},
	'ط': {0xFEC1, true},
	'ظ': {0xFEC5, true},
	'ع': {0xFEC9, true},
	'غ': {0xFECD, true},
	'ف': {0xFED1, true},
	'ق': {0xFED5, true},
	'ك': {0xFED9, true},
	'ل': {0xFEDD, true},
	'م': {0xFEE1, true},
	'ن': {0xFEE5, true},
	'ه': {0xFEE9, true},
	'و': {0xFEED, false},
	'ى': {0xFEEF, false},
	'ي': {0xFEF1, true},
}

// lam-alef ligatures: isolated form, final is +1.
var lamAlef = map[rune]rune{
	'آ': 0xFEF5,
	'أ': 0xFEF7,
	'إ': 0xFEF9,
	'ا': 0xFEFB,
}

// transparent marks (harakat) do not break or take part in joining.
func transparent(r rune) bool {
	return (r >= 0x064B && r <= 0x065F) || r == 0x0670
}

func joinsNext(r rune) bool {
	if r == tatweel {
		return true
	}
	f, ok := arabicForms[r]
	return ok && f.dual
}

func joinsPrev(r rune) bool {
	if r == tatweel {
		return true
	}
	f, ok := arabicForms[r]
	return ok && r != 'ء' && f.isolated != 0
}

// shapeArabic replaces Arabic letters by contextual forms, in logical order.
func shapeArabic(in []rune) string {
	out := make([]rune, 0, len(in))
	for i := 0; i < len(in); i++ {
		r := in[i]
		form, ok := arabicForms[r]
		if !ok {
			out = append(out, r)
			continue
		}
		prev := neighbour(in, i, -1)
		joinPrev := prev >= 0 && joinsNext(in[prev]) && r != 'ء'

		if r == lam {
			if j := neighbour(in, i, 1); j >= 0 {
				if lig, ok := lamAlef[in[j]]; ok {
					if joinPrev {
						lig++
					}
					out = append(out, lig)
					// keep marks between lam and alef, drop the alef itself
					out = append(out, in[i+1:j]...)
					i = j
					continue
				}
			}
		}

		next := neighbour(in, i, 1)
		joinNext := form.dual && next >= 0 && joinsPrev(in[next])

		switch {
		case joinPrev && joinNext:
			out = append(out, form.isolated+3)
		case joinNext:
			out = append(out, form.isolated+2)
		case joinPrev:
			out = append(out, form.isolated+1)
		default:
			out = append(out, form.isolated)
		}
	}
	return string(out)
}

// neighbour returns the index of the closest non-transparent rune in direction
// step, or -1.
func neighbour(in []rune, i, step int) int {
	for j := i + step; j >= 0 && j < len(in); j += step {
		if !transparent(in[j]) {
			return j
		}
	}
	return -1
}
