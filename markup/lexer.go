package markup

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/text/unicode/norm"
)

var (
	// Each token is one physical line, newline included. Rules are tried in order,
	// so a bracketed line is a header before it can be plain text.
	lineLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Blank", Pattern: `[ \t]*\n|[ \t]+$`},
		{Name: "Header", Pattern: `[ \t]*\[[^\n]*\][ \t]*(?:\n|$)`},
		{Name: "Bullet", Pattern: `[ \t]*[-•–][^\n]*(?:\n|$)`},
		{Name: "Text", Pattern: `[^\n]+(?:\n|$)`},
	})

	scriptParser = participle.MustBuild[Script](
		participle.Lexer(lineLexer),
	)

	lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\u2028", "\n", "\u2029", "\n")
)

// Script is the root AST node of a free-text form field.
type Script struct {
	Lines []*SourceLine `parser:"@@*"`
}

// SourceLine is one classified input line.
type SourceLine struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Header *string        `parser:"  @Header"`
	Bullet *string        `parser:"| @Bullet"`
	Blank  bool           `parser:"| @Blank"`
	Text   *string        `parser:"| @Text"`
}

// Kind classifies a Line.
type Kind int

const (
	KindBlank Kind = iota
	KindHeader
	KindBullet
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindHeader:
		return "header"
	case KindBullet:
		return "bullet"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Line is a lexed line ready for the section state machines.
// Value is the payload (header title, bullet text or trimmed text); Raw keeps the
// line without its newline and without trailing whitespace.
type Line struct {
	Kind  Kind
	Value string
	Raw   string
}

// Parse parses a form field into its line AST.
func Parse(input string) (*Script, error) {
	return scriptParser.ParseString("", normalizeInput(input))
}

// Lex parses input and flattens the AST into classified lines.
func Lex(input string) ([]Line, error) {
	script, err := Parse(input)
	if err != nil {
		return nil, fmt.Errorf("lex form text: %w", err)
	}
	out := make([]Line, 0, len(script.Lines))
	for _, sl := range script.Lines {
		out = append(out, sl.classify())
	}
	return out, nil
}

// lines is Lex for the parsers, which treat untokenizable input as empty.
func lines(input string) []Line {
	out, err := Lex(input)
	if err != nil {
		return nil
	}
	return out
}

func (sl *SourceLine) classify() Line {
	switch {
	case sl.Header != nil:
		raw := trimLine(*sl.Header)
		s := strings.TrimSpace(raw)
		return Line{Kind: KindHeader, Value: strings.TrimSpace(s[1 : len(s)-1]), Raw: raw}
	case sl.Bullet != nil:
		raw := trimLine(*sl.Bullet)
		s := strings.TrimSpace(raw)
		_, size := utf8.DecodeRuneInString(s)
		return Line{Kind: KindBullet, Value: strings.TrimSpace(s[size:]), Raw: raw}
	case sl.Text != nil:
		raw := trimLine(*sl.Text)
		s := strings.TrimSpace(raw)
		if s == "" {
			// e.g. a line of non-breaking spaces
			return Line{Kind: KindBlank}
		}
		return Line{Kind: KindText, Value: s, Raw: raw}
	default:
		return Line{Kind: KindBlank}
	}
}

func normalizeInput(s string) string {
	return norm.NFC.String(lineBreaks.Replace(s))
}

func trimLine(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
