package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// Length is an absolute length stored in points. In YAML and JSON it may carry a unit
// suffix ("16mm", "1.2cm", "0.5in", "12pt"); bare numbers are points.
type Length float64

// Mm returns a Length of v millimetres.
func Mm(v float64) Length { return Length(v * MmToPt) }

// Pt returns the length in points.
func (l Length) Pt() float64 { return float64(l) }

// Mm returns the length in millimetres.
func (l Length) Mm() float64 { return float64(l) * PtToMm }

func (l Length) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(l), 'f', -1, 64) + "pt"), nil
}

func (l *Length) UnmarshalText(text []byte) error {
	parsed, err := ParseLength(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

var unitFactors = []struct {
	suffix string
	toPt   float64
}{
	{"mm", MmToPt},
	{"cm", 10 * MmToPt},
	{"in", 72},
	{"pt", 1},
}

// ParseLength parses a length string preserving its unit.
func ParseLength(value string) (Length, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return 0, fmt.Errorf("长度为空")
	}
	factor := 1.0
	for _, u := range unitFactors {
		if strings.HasSuffix(v, u.suffix) {
			factor = u.toPt
			v = strings.TrimSpace(strings.TrimSuffix(v, u.suffix))
			break
		}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("无效长度 %q: %w", value, err)
	}
	return Length(f * factor), nil
}
