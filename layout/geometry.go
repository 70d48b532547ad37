package layout

// Geometry is derived once from the style and never changes during a render.
type Geometry struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`
	Top    float64 `json:"top"`

	LeftX  float64 `json:"leftX"`
	LeftW  float64 `json:"leftW"`
	RightX float64 `json:"rightX"`
	RightW float64 `json:"rightW"`

	// card in the left column, (CardX, CardY) is its lower left corner
	CardX float64 `json:"cardX"`
	CardY float64 `json:"cardY"`
	CardW float64 `json:"cardW"`
	CardH float64 `json:"cardH"`

	InnerX float64 `json:"innerX"`
	InnerW float64 `json:"innerW"`
	// InnerTop is the first cursor inside the card.
	InnerTop float64 `json:"innerTop"`
}

// NewGeometry splits the page into a left card and a right column.
func NewGeometry(s Style) Geometry {
	w, h := s.Page.Width.Pt(), s.Page.Height.Pt()
	margin, gutter := s.Page.Margin.Pt(), s.Page.Gutter.Pt()
	avail := w - 2*margin - gutter

	g := Geometry{
		Width:  w,
		Height: h,
		Margin: margin,
		Top:    h - margin,
		LeftX:  margin,
		LeftW:  s.Page.LeftRatio * avail,
		RightW: (1 - s.Page.LeftRatio) * avail,
	}
	g.RightX = margin + g.LeftW + gutter

	g.CardX, g.CardY = g.LeftX, margin
	g.CardW, g.CardH = g.LeftW, h-2*margin
	g.InnerX = g.CardX + s.Card.Padding
	g.InnerW = g.CardW - 2*s.Card.Padding
	g.InnerTop = g.Top - s.Card.Padding
	return g
}
