package renderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/ByLCY/vita/layout"
)

// Renderer 将布局结果输出为最终文件，例如 PDF 或 PNG 预览。
// Render 返回生成的二进制数据以及可能的错误，同一个 Renderer 可被并发调用。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}

// ContentType 返回渲染产物的 MIME 类型，供 HTTP 层设置响应头。
type ContentType interface {
	ContentType() string
}

// DecodePNG 解码显示列表中的图片数据（布局层保证为 PNG）。
func DecodePNG(box layout.ImageBox) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(box.Data))
	if err != nil {
		return nil, fmt.Errorf("解码图片 %s 失败: %w", box.Name, err)
	}
	return img, nil
}

// CircleMask 返回 img 的副本，内切圆之外的像素变为透明，
// 用于不支持裁剪路径的后端绘制圆形照片。
func CircleMask(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	r := min(cx, cy)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy > r*r {
				continue
			}
			out.Set(x, y, color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return out
}
