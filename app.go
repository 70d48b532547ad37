package main

import (
	"fmt"
	"log"

	"github.com/ByLCY/vita/assets"
	"github.com/ByLCY/vita/config"
	"github.com/ByLCY/vita/fonts"
	"github.com/ByLCY/vita/renderer"
	canvasrenderer "github.com/ByLCY/vita/renderer/canvas"
	pdfrenderer "github.com/ByLCY/vita/renderer/pdf"
	"github.com/ByLCY/vita/renderer/preview"
	"github.com/ByLCY/vita/resume"
)

// newGenerator wires style, fonts, icons and the selected engine.
func newGenerator(s *config.Settings) (*resume.Generator, error) {
	style, err := config.LoadStyle(s.StylePath)
	if err != nil {
		return nil, err
	}
	set, err := fonts.Load(s.Fonts)
	if err != nil {
		return nil, fmt.Errorf("加载字体失败: %w", err)
	}
	icons, err := assets.LoadIcons(s.IconsDir)
	if err != nil {
		// 没有图标时改画圆点
		log.Printf("图标目录不可用: %v", err)
		icons = nil
	}
	r, err := newRenderer(s.Engine, set)
	if err != nil {
		return nil, err
	}
	return &resume.Generator{Style: style, Fonts: set, Icons: icons, Renderer: r}, nil
}

func newRenderer(engine string, set *fonts.Set) (renderer.Renderer, error) {
	switch engine {
	case "", "pdf":
		return pdfrenderer.NewRenderer(set), nil
	case "canvas":
		return canvasrenderer.NewRenderer(set), nil
	case "preview":
		return preview.NewRenderer(set, preview.DefaultScale), nil
	default:
		return nil, fmt.Errorf("未知的渲染引擎 %q", engine)
	}
}

// outputExt is the file extension produced by engine.
func outputExt(engine string) string {
	if engine == "preview" {
		return ".png"
	}
	return ".pdf"
}
