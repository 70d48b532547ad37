// Package config reads process settings from the environment and the layout style
// from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ByLCY/vita/binding"
	"github.com/ByLCY/vita/fonts"
	"github.com/ByLCY/vita/layout"
)

const (
	DefaultAddr        = ":8000"
	DefaultEngine      = "pdf"
	DefaultMaxUploadMB = 10
)

// Settings are the process level options. Every field has a VITA_* variable and a
// matching command line flag.
type Settings struct {
	Addr        string `validate:"required,hostname_port"`
	Engine      string `validate:"oneof=pdf canvas preview"`
	StylePath   string
	IconsDir    string
	Fonts       fonts.Paths
	MaxUploadMB int `validate:"min=1,max=100"`
}

var fontEnv = map[fonts.Role]string{
	fonts.Regular: "VITA_FONT_REGULAR",
	fonts.Bold:    "VITA_FONT_BOLD",
	fonts.Italic:  "VITA_FONT_ITALIC",
	fonts.Arabic:  "VITA_FONT_ARABIC",
	fonts.Symbol:  "VITA_FONT_SYMBOL",
}

// FromEnv builds Settings from the environment, applying defaults for unset values.
// The result is not validated so flags can still override it.
func FromEnv() (*Settings, error) {
	s := &Settings{
		Addr:        getEnv("VITA_ADDR", DefaultAddr),
		Engine:      strings.ToLower(getEnv("VITA_ENGINE", DefaultEngine)),
		StylePath:   os.Getenv("VITA_STYLE"),
		IconsDir:    os.Getenv("VITA_ICONS_DIR"),
		Fonts:       fonts.Paths{},
		MaxUploadMB: DefaultMaxUploadMB,
	}
	for role, key := range fontEnv {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			s.Fonts[role] = v
		}
	}
	if v := os.Getenv("VITA_MAX_UPLOAD_MB"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("VITA_MAX_UPLOAD_MB must be an integer: %w", err)
		}
		s.MaxUploadMB = n
	}
	return s, nil
}

// Validate checks the settings with their struct tags.
func (s *Settings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// MaxUploadBytes is the request body limit for form uploads.
func (s *Settings) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}

// LoadStyle returns layout.DefaultStyle with the YAML file at path merged over it.
// Keys missing from the file keep their defaults. An empty path yields the defaults.
func LoadStyle(path string) (layout.Style, error) {
	style := layout.DefaultStyle()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return layout.Style{}, fmt.Errorf("读取样式文件 %s 失败: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &style); err != nil {
			return layout.Style{}, fmt.Errorf("解析样式文件 %s 失败: %w", path, err)
		}
	}
	if err := ValidateStyle(style); err != nil {
		return layout.Style{}, err
	}
	return style, nil
}

// ValidateStyle checks sizes and alignment, and that the repo link label references
// ${link}.
func ValidateStyle(style layout.Style) error {
	validate := validator.New()
	if err := validate.Struct(style); err != nil {
		return fmt.Errorf("invalid style: %w", err)
	}
	if !slices.Contains(binding.Placeholders(style.Labels.RepoLink), "link") {
		return fmt.Errorf("invalid style: labels.repo_link %q must reference ${link}", style.Labels.RepoLink)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
