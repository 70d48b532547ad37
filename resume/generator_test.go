package resume

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/vita/fonts"
	"github.com/ByLCY/vita/layout"
	pdfrenderer "github.com/ByLCY/vita/renderer/pdf"
)

func newGenerator() *Generator {
	set := fonts.Default()
	return &Generator{
		Style:    layout.DefaultStyle(),
		Fonts:    set,
		Renderer: pdfrenderer.NewRenderer(set),
	}
}

func TestGenerateFromForm(t *testing.T) {
	f := &Form{
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		GitHub:        "jane",
		SkillsText:    "Go, Rust",
		ProjectsText:  "Vita\nLayout engine\nhttps://github.com/jane/vita",
		EducationText: "M.Sc.\nTU Berlin",
	}
	out, err := newGenerator().Generate(context.Background(), f.Input())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out.Data, []byte("%PDF-")))
	require.Len(t, out.Result.Pages, 1)
	assert.Equal(t, "Jane Doe", out.Result.Meta.Author)
}

func TestGenerateHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newGenerator().Generate(ctx, layout.Input{Name: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateNeedsRenderer(t *testing.T) {
	_, err := (&Generator{}).Generate(context.Background(), layout.Input{})
	assert.Error(t, err)
}
