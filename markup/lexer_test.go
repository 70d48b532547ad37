package markup_test

import (
	"testing"

	"github.com/ByLCY/vita/markup"
)

const sampleField = "[Profil]\r\n- Backend-Entwickler\n  mit Fokus auf FastAPI\n\n• zweiter Punkt\n   \n– dritter Punkt\nplain text"

func TestLexClassifiesLines(t *testing.T) {
	lines, err := markup.Lex(sampleField)
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}

	want := []struct {
		kind  markup.Kind
		value string
	}{
		{markup.KindHeader, "Profil"},
		{markup.KindBullet, "Backend-Entwickler"},
		{markup.KindText, "mit Fokus auf FastAPI"},
		{markup.KindBlank, ""},
		{markup.KindBullet, "zweiter Punkt"},
		{markup.KindBlank, ""},
		{markup.KindBullet, "dritter Punkt"},
		{markup.KindText, "plain text"},
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %+v", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i].Kind != w.kind || lines[i].Value != w.value {
			t.Fatalf("line %d: expected %s %q, got %s %q", i, w.kind, w.value, lines[i].Kind, lines[i].Value)
		}
	}
}

func TestLexKeepsIndentationInRaw(t *testing.T) {
	lines, err := markup.Lex("  indented line   \n")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Raw != "  indented line" {
		t.Fatalf("expected raw with indentation and no trailing space, got %q", lines[0].Raw)
	}
}

func TestLexHeaderNeedsClosingBracket(t *testing.T) {
	lines, err := markup.Lex("[not a header\n[also] not\n")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	for i, ln := range lines {
		if ln.Kind != markup.KindText {
			t.Fatalf("line %d: expected text, got %s", i, ln.Kind)
		}
	}
}

func TestLexEmptyInput(t *testing.T) {
	lines, err := markup.Lex("")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %+v", lines)
	}
}
