package resume

import (
	"context"
	"fmt"

	"github.com/ByLCY/vita/assets"
	"github.com/ByLCY/vita/fonts"
	"github.com/ByLCY/vita/layout"
	"github.com/ByLCY/vita/renderer"
	"github.com/ByLCY/vita/shaping"
)

// Generator composes and renders one résumé per call. Its fields are read-only after
// construction, so one Generator serves concurrent requests.
type Generator struct {
	Style    layout.Style
	Fonts    *fonts.Set
	Icons    *assets.Library
	Renderer renderer.Renderer
}

// Output is the rendered document plus the display list it was drawn from.
type Output struct {
	Data   []byte
	Result *layout.Result
}

// Generate lays out in and renders it. ctx is checked between the two stages.
func (g *Generator) Generate(ctx context.Context, in layout.Input) (*Output, error) {
	if g.Renderer == nil {
		return nil, fmt.Errorf("renderer 不能为空")
	}
	set := g.Fonts
	if set == nil {
		set = fonts.Default()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := layout.Compose(in, layout.Options{
		Style:   g.Style,
		Metrics: set.NewMeasurer(),
		Assets:  g.Icons,
		Shaper:  shaping.ShapeRTL,
	})
	if err != nil {
		return nil, fmt.Errorf("排版失败: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := g.Renderer.Render(res)
	if err != nil {
		return nil, fmt.Errorf("渲染失败: %w", err)
	}
	return &Output{Data: data, Result: res}, nil
}
