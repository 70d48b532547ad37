package layout

// 该文件定义布局结果（显示列表），供布局计算、渲染与调试 JSON 共用。
// 所有坐标单位为 pt，原点位于页面左下角，y 轴向上；文本 Y 为基线位置。

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ByLCY/vita/fonts"
)

// Result 保存布局后的页面、文档元信息、页面几何以及合成阶段的轨迹。
type Result struct {
	Pages    []Page       `json:"pages"`
	Meta     DocumentMeta `json:"meta"`
	Geometry Geometry     `json:"geometry"`
	Trace    []Stage      `json:"trace"`
}

// Page 记录页面尺寸与可以直接绘制的元素。渲染顺序：
// Rects → Images → Circles → Lines → Texts → Links。
type Page struct {
	Width   float64    `json:"width"`
	Height  float64    `json:"height"`
	Rects   []Rect     `json:"rects,omitempty"`
	Images  []ImageBox `json:"images,omitempty"`
	Circles []Circle   `json:"circles,omitempty"`
	Lines   []Line     `json:"lines,omitempty"`
	Texts   []TextRun  `json:"texts,omitempty"`
	Links   []Link     `json:"links,omitempty"`
}

// Color 采用 0-255 的 RGB 数值，在 YAML/JSON 中写作 #RRGGBB。
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Hex 解析 "#RRGGBB"，解析失败时 panic，只用于编译期常量。
func Hex(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor 解析 "#RRGGBB" 或 "RRGGBB"。
func ParseColor(s string) (Color, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	b, err := hex.DecodeString(v)
	if err != nil || len(b) != 3 {
		return Color{}, fmt.Errorf("无效颜色 %q，应为 #RRGGBB", s)
	}
	return Color{R: b[0], G: b[1], B: b[2]}, nil
}

func (c Color) String() string { return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B) }

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// TextRun 是一行已定位的文本，X 为左端，Y 为基线。
type TextRun struct {
	Content string     `json:"content"`
	X       float64    `json:"x"`
	Y       float64    `json:"y"`
	Width   float64    `json:"width"`
	Font    fonts.Role `json:"font"`
	Size    float64    `json:"size"`
	Color   Color      `json:"color"`
}

// Line 表示一条线段。
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color Color   `json:"color"`
	Width float64 `json:"width"`
}

// Rect 表示一个矩形，Radius > 0 时为圆角矩形。(X, Y) 为左下角。
type Rect struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Radius      float64 `json:"radius,omitempty"`
	StrokeColor Color   `json:"strokeColor"`
	StrokeWidth float64 `json:"strokeWidth"`
	FillColor   *Color  `json:"fillColor,omitempty"` // 为空表示不填充
}

// Circle 表示一个圆，StrokeWidth 为 0 时不描边。
type Circle struct {
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	R           float64 `json:"r"`
	StrokeColor Color   `json:"strokeColor"`
	StrokeWidth float64 `json:"strokeWidth"`
	FillColor   *Color  `json:"fillColor,omitempty"`
}

// ImageBox 描述图片位置与尺寸，(X, Y) 为左下角。Data 为 PNG 数据，不写入调试 JSON。
type ImageBox struct {
	Name       string  `json:"name"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	ClipCircle bool    `json:"clipCircle,omitempty"`
	Data       []byte  `json:"-"`
}

// Link 是一个可点击的矩形区域，(X, Y) 为左下角。
type Link struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	URL    string  `json:"url"`
}

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords,omitempty"`
}

// Image 是一张已解码并重新编码为 PNG 的图片。
type Image struct {
	Name   string
	Data   []byte
	Width  int
	Height int
}
