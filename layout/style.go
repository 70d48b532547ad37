package layout

// Style is the immutable configuration of one page layout. Typographic sizes and gaps
// are in points; Length fields accept unit suffixes in YAML.
type Style struct {
	Page      PageStyle      `yaml:"page" json:"page"`
	Card      CardStyle      `yaml:"card" json:"card"`
	Text      TextStyle      `yaml:"text" json:"text"`
	Info      InfoStyle      `yaml:"info" json:"info"`
	Header    HeaderStyle    `yaml:"header" json:"header"`
	Left      LeftStyle      `yaml:"left" json:"left"`
	Right     RightStyle     `yaml:"right" json:"right"`
	Project   ProjectStyle   `yaml:"project" json:"project"`
	Education EducationStyle `yaml:"education" json:"education"`
	Colors    Palette        `yaml:"colors" json:"colors"`
	Labels    Labels         `yaml:"labels" json:"labels"`
}

// PageStyle fixes the page and the split into two columns.
type PageStyle struct {
	Width     Length  `yaml:"width" json:"width" validate:"gt=0"`
	Height    Length  `yaml:"height" json:"height" validate:"gt=0"`
	Margin    Length  `yaml:"margin" json:"margin" validate:"gte=0"`
	Gutter    Length  `yaml:"gutter" json:"gutter" validate:"gte=0"`
	LeftRatio float64 `yaml:"left_ratio" json:"left_ratio" validate:"gt=0,lt=1"`
}

// CardStyle describes the rounded left card and the photo inside it.
type CardStyle struct {
	Padding     float64 `yaml:"padding" json:"padding" validate:"gte=0"`
	Radius      float64 `yaml:"radius" json:"radius" validate:"gte=0"`
	BorderWidth float64 `yaml:"border_width" json:"border_width" validate:"gte=0"`
	PhotoMax    Length  `yaml:"photo_max" json:"photo_max" validate:"gt=0"`
	PhotoGap    Length  `yaml:"photo_gap" json:"photo_gap" validate:"gte=0"`
	PhotoBorder float64 `yaml:"photo_border" json:"photo_border" validate:"gte=0"`
}

// TextStyle holds the body paragraph defaults.
type TextStyle struct {
	Size       float64 `yaml:"size" json:"size" validate:"gt=0"`
	Leading    float64 `yaml:"leading" json:"leading" validate:"gt=0"`
	LeadingRTL float64 `yaml:"leading_rtl" json:"leading_rtl" validate:"gt=0"`
	ParaGap    float64 `yaml:"para_gap" json:"para_gap" validate:"gte=0"`
}

// InfoStyle configures icon + value lines in the contact block.
type InfoStyle struct {
	IconSize  float64 `yaml:"icon_size" json:"icon_size" validate:"gt=0"`
	IconPadX  float64 `yaml:"icon_pad_x" json:"icon_pad_x" validate:"gte=0"`
	TextDY    float64 `yaml:"text_dy" json:"text_dy"`
	TextSize  float64 `yaml:"text_size" json:"text_size" validate:"gt=0"`
	LineGap   float64 `yaml:"line_gap" json:"line_gap" validate:"gt=0"`
	SafetyGap float64 `yaml:"safety_gap" json:"safety_gap" validate:"gte=0"`
	MinWidth  float64 `yaml:"min_width" json:"min_width" validate:"gt=0"`
}

// HeaderStyle covers the name and the contact heading.
type HeaderStyle struct {
	NameSize     float64 `yaml:"name_size" json:"name_size" validate:"gt=0"`
	NameGap      float64 `yaml:"name_gap" json:"name_gap" validate:"gte=0"`
	HeadingSize  float64 `yaml:"heading_size" json:"heading_size" validate:"gt=0"`
	TitleToRule  float64 `yaml:"title_to_rule" json:"title_to_rule" validate:"gte=0"`
	RuleToList   float64 `yaml:"rule_to_list" json:"rule_to_list" validate:"gte=0"`
	AfterContact float64 `yaml:"after_contact" json:"after_contact" validate:"gte=0"`
	RuleWidth    float64 `yaml:"rule_width" json:"rule_width" validate:"gte=0"`
}

// LeftStyle configures titled blocks in the left card.
type LeftStyle struct {
	HeadingSize    float64 `yaml:"heading_size" json:"heading_size" validate:"gt=0"`
	TitleTopGap    float64 `yaml:"title_top_gap" json:"title_top_gap" validate:"gte=0"`
	TitleBottomGap float64 `yaml:"title_bottom_gap" json:"title_bottom_gap" validate:"gte=0"`
	TitleAlign     string  `yaml:"title_align" json:"title_align" validate:"oneof=left center right"`
	RuleWidth      float64 `yaml:"rule_width" json:"rule_width" validate:"gte=0"`
	RuleToList     float64 `yaml:"rule_to_list" json:"rule_to_list" validate:"gte=0"`
	TextSize       float64 `yaml:"text_size" json:"text_size" validate:"gt=0"`
	BulletX        float64 `yaml:"bullet_x" json:"bullet_x" validate:"gte=0"`
	BulletRadius   float64 `yaml:"bullet_radius" json:"bullet_radius" validate:"gt=0"`
	TextX          float64 `yaml:"text_x" json:"text_x" validate:"gte=0"`
	LineGap        float64 `yaml:"line_gap" json:"line_gap" validate:"gt=0"`
	SectionGap     float64 `yaml:"section_gap" json:"section_gap" validate:"gte=0"`
}

// RightStyle configures titled blocks in the right column.
type RightStyle struct {
	TopGap      float64 `yaml:"top_gap" json:"top_gap" validate:"gte=0"`
	HeadingSize float64 `yaml:"heading_size" json:"heading_size" validate:"gt=0"`
	TitleToRule float64 `yaml:"title_to_rule" json:"title_to_rule" validate:"gte=0"`
	RuleWidth   float64 `yaml:"rule_width" json:"rule_width" validate:"gte=0"`
	RuleToText  float64 `yaml:"rule_to_text" json:"rule_to_text" validate:"gte=0"`
	TextSize    float64 `yaml:"text_size" json:"text_size" validate:"gt=0"`
	LineGap     float64 `yaml:"line_gap" json:"line_gap" validate:"gt=0"`
	ParaGap     float64 `yaml:"para_gap" json:"para_gap" validate:"gte=0"`
	SectionGap  float64 `yaml:"section_gap" json:"section_gap" validate:"gte=0"`
}

// ProjectStyle configures one project entry.
type ProjectStyle struct {
	HeadingGap   float64 `yaml:"heading_gap" json:"heading_gap" validate:"gte=0"`
	TitleSize    float64 `yaml:"title_size" json:"title_size" validate:"gt=0"`
	TitleGap     float64 `yaml:"title_gap" json:"title_gap" validate:"gte=0"`
	Leading      float64 `yaml:"leading" json:"leading" validate:"gt=0"`
	LinkGapAbove float64 `yaml:"link_gap_above" json:"link_gap_above" validate:"gte=0"`
	LinkSize     float64 `yaml:"link_size" json:"link_size" validate:"gt=0"`
	BlockGap     float64 `yaml:"block_gap" json:"block_gap" validate:"gte=0"`
}

// EducationStyle configures one education block.
type EducationStyle struct {
	Leading float64 `yaml:"leading" json:"leading" validate:"gt=0"`
	ParaGap float64 `yaml:"para_gap" json:"para_gap" validate:"gte=0"`
	Indent  float64 `yaml:"indent" json:"indent" validate:"gte=0"`
}

// Palette names every color used on the page.
type Palette struct {
	Heading     Color `yaml:"heading" json:"heading"`
	Subhead     Color `yaml:"subhead" json:"subhead"`
	EduTitle    Color `yaml:"edu_title" json:"edu_title"`
	Text        Color `yaml:"text" json:"text"`
	Link        Color `yaml:"link" json:"link"`
	CardFill    Color `yaml:"card_fill" json:"card_fill"`
	CardBorder  Color `yaml:"card_border" json:"card_border"`
	Rule        Color `yaml:"rule" json:"rule"`
	SectionRule Color `yaml:"section_rule" json:"section_rule"`
}

// Labels holds the fixed headings. RepoLink is a binding template with ${link}.
type Labels struct {
	Contact   string `yaml:"contact" json:"contact"`
	Skills    string `yaml:"skills" json:"skills"`
	Languages string `yaml:"languages" json:"languages"`
	Projects  string `yaml:"projects" json:"projects"`
	Education string `yaml:"education" json:"education"`
	RepoLink  string `yaml:"repo_link" json:"repo_link" validate:"required"`
	Document  string `yaml:"document" json:"document"`
}

// DefaultStyle returns the compiled-in A4 layout.
func DefaultStyle() Style {
	return Style{
		Page: PageStyle{
			Width:     595.2755905511812,
			Height:    841.8897637795277,
			Margin:    Mm(16),
			Gutter:    Mm(8),
			LeftRatio: 0.40,
		},
		Card: CardStyle{
			Padding:     14,
			Radius:      10,
			BorderWidth: 1,
			PhotoMax:    Mm(42),
			PhotoGap:    Mm(6),
			PhotoBorder: 1,
		},
		Text: TextStyle{Size: 10, Leading: 14, LeadingRTL: 16, ParaGap: 4},
		Info: InfoStyle{
			IconSize:  10,
			IconPadX:  6,
			TextDY:    0,
			TextSize:  10,
			LineGap:   14,
			SafetyGap: 2,
			MinWidth:  20,
		},
		Header: HeaderStyle{
			NameSize:     18,
			NameGap:      20,
			HeadingSize:  13,
			TitleToRule:  6,
			RuleToList:   6,
			AfterContact: 6,
			RuleWidth:    0.7,
		},
		Left: LeftStyle{
			HeadingSize:    12,
			TitleTopGap:    8,
			TitleBottomGap: 6,
			TitleAlign:     "left",
			RuleWidth:      0.7,
			RuleToList:     12,
			TextSize:       10,
			BulletX:        4,
			BulletRadius:   1.5,
			TextX:          12,
			LineGap:        14,
			SectionGap:     6,
		},
		Right: RightStyle{
			TopGap:      8,
			HeadingSize: 13,
			TitleToRule: 6,
			RuleWidth:   0.7,
			RuleToText:  14,
			TextSize:    10,
			LineGap:     14,
			ParaGap:     2,
			SectionGap:  10,
		},
		Project: ProjectStyle{
			HeadingGap:   8,
			TitleSize:    11,
			TitleGap:     14,
			Leading:      14,
			LinkGapAbove: 2,
			LinkSize:     9,
			BlockGap:     10,
		},
		Education: EducationStyle{Leading: 13, ParaGap: 2, Indent: 4},
		Colors: Palette{
			Heading:     Hex("#1F3A5F"),
			Subhead:     Hex("#333333"),
			EduTitle:    Hex("#1F3A5F"),
			Text:        Hex("#000000"),
			Link:        Hex("#1F3A5F"),
			CardFill:    Hex("#F2F4F7"),
			CardBorder:  Hex("#D0D5DD"),
			Rule:        Hex("#B0B7C3"),
			SectionRule: Hex("#B0B7C3"),
		},
		Labels: Labels{
			Contact:   "Persönliche Informationen",
			Skills:    "Technische Fähigkeiten",
			Languages: "Sprachen",
			Projects:  "Ausgewählte Projekte",
			Education: "Berufliche Weiterbildung",
			RepoLink:  "Repo: ${link}",
			Document:  "Lebenslauf",
		},
	}
}
