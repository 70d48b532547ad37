// Package assets loads the contact icons and prepares the uploaded photo. Everything
// it hands to the layout is re-encoded as PNG; anything it cannot read is treated as
// absent.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp"

	"github.com/ByLCY/vita/layout"
)

const (
	iconPixels  = 96
	photoPixels = 512
)

// IconFiles maps info-line keys to file names inside the icons directory.
var IconFiles = map[string]string{
	"location":  "pin.png",
	"phone":     "phone.png",
	"email":     "mail.png",
	"birthdate": "cake.png",
	"github":    "github.png",
	"linkedin":  "linkedin.png",
}

// ErrNotImage is returned for data that is not a supported raster image.
var ErrNotImage = errors.New("不支持的图片格式")

var imageTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// Library holds the decoded icons. It is filled once and read-only afterwards, so one
// Library can serve concurrent renders.
type Library struct {
	icons map[string]layout.Image
}

var _ layout.Assets = (*Library)(nil)

// LoadIcons reads the known icon files from dir. Missing or broken files are logged and
// skipped; an empty dir yields an empty Library.
func LoadIcons(dir string) (*Library, error) {
	lib := &Library{icons: map[string]layout.Image{}}
	if dir == "" {
		return lib, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("读取图标目录 %s 失败: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("图标路径 %s 不是目录", dir)
	}
	for key, name := range IconFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			log.Printf("跳过图标 %s: %v", name, err)
			continue
		}
		img, err := normalize("icon-"+key, data, func(src image.Image) image.Image {
			return imaging.Fit(src, iconPixels, iconPixels, imaging.Lanczos)
		})
		if err != nil {
			log.Printf("跳过图标 %s: %v", name, err)
			continue
		}
		lib.icons[key] = img
	}
	return lib, nil
}

// Len returns the number of loaded icons.
func (l *Library) Len() int { return len(l.icons) }

// Icon returns the icon for an info-line key.
func (l *Library) Icon(key string) (layout.Image, bool) {
	if l == nil {
		return layout.Image{}, false
	}
	img, ok := l.icons[key]
	return img, ok
}

// Photo prepares an uploaded photo, reporting false when it cannot be decoded.
func (l *Library) Photo(data []byte) (layout.Image, bool) {
	img, err := PreparePhoto(data)
	if err != nil {
		return layout.Image{}, false
	}
	return img, true
}

// PreparePhoto sniffs, decodes and center-crops data to a square PNG of at most
// photoPixels on each side. EXIF orientation is applied.
func PreparePhoto(data []byte) (layout.Image, error) {
	return normalize("photo", data, func(src image.Image) image.Image {
		b := src.Bounds()
		side := min(b.Dx(), b.Dy(), photoPixels)
		return imaging.Fill(src, side, side, imaging.Center, imaging.Lanczos)
	})
}

// DetectImage reports the MIME type of data, or ErrNotImage.
func DetectImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNotImage
	}
	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), imageTypes...) {
		return "", fmt.Errorf("%w: %s", ErrNotImage, mt.String())
	}
	return mt.String(), nil
}

func normalize(name string, data []byte, transform func(image.Image) image.Image) (layout.Image, error) {
	if _, err := DetectImage(data); err != nil {
		return layout.Image{}, err
	}
	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return layout.Image{}, fmt.Errorf("解码图片失败: %w", err)
	}
	if b := src.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return layout.Image{}, fmt.Errorf("%w: 空图片", ErrNotImage)
	}
	out := transform(src)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return layout.Image{}, fmt.Errorf("编码 PNG 失败: %w", err)
	}
	b := out.Bounds()
	return layout.Image{Name: name, Data: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}
