package layout

import (
	"github.com/ByLCY/vita/fonts"
	"github.com/ByLCY/vita/markup"
)

// Metrics 提供排版所需的字体度量，单位为 pt。*fonts.Measurer 实现该接口。
type Metrics interface {
	Width(role fonts.Role, size float64, text string) float64
	Ascent(role fonts.Role, size float64) float64
	Descent(role fonts.Role, size float64) float64
	Covers(role fonts.Role, r rune) bool
}

// Assets 按需提供图标与照片。两者都只返回“有/无”，加载失败即视为没有。
type Assets interface {
	Icon(key string) (Image, bool)
	Photo(data []byte) (Image, bool)
}

// Options 配置一次合成所需的依赖。Metrics 必填；Assets 为空时不绘制图标与照片；
// Shaper 为空时从右到左文本原样输出。
type Options struct {
	Style   Style
	Metrics Metrics
	Assets  Assets
	Shaper  func(string) string
}

// Contact 是左栏的联系方式，全部为可选字段。
type Contact struct {
	Location  string `json:"location"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Birthdate string `json:"birthdate"`
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
}

// Empty reports whether no field has visible content, i.e. the contact block is omitted.
func (c Contact) Empty() bool { return len(contactFields(c)) == 0 }

// Input 是一页简历的全部内容，已经由 markup 解析完毕。
type Input struct {
	Name          string
	Contact       Contact
	Skills        []string
	Languages     []string
	LeftSections  []markup.TextSection
	RightSections []markup.TextSection
	Projects      []markup.ProjectEntry
	Education     []string
	Photo         []byte
	RTL           bool
}
