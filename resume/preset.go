package resume

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/xeipuuv/gojsonschema"

	"github.com/ByLCY/vita/markup"
)

//go:embed schema/preset.schema.json
var presetSchema []byte

const (
	defaultPhotoMime = "image/png"
	defaultPhotoName = "photo.png"
)

// StringList decodes from either a JSON array of strings or a single string that is
// split like the skills form field.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = markup.ParseListOrCSV(one)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("期望字符串或字符串数组: %w", err)
	}
	*l = many
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Preset is the JSON document saved and loaded by the preset commands. The photo is
// kept base64 encoded; Photo returns the decoded bytes.
type Preset struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	Birthdate string `json:"birthdate"`

	Skills    StringList `json:"skills"`
	Languages StringList `json:"languages"`

	ProjectsText      string `json:"projects_text"`
	EducationText     string `json:"education_text"`
	SectionsLeftText  string `json:"sections_left_text"`
	SectionsRightText string `json:"sections_right_text"`
	RTLMode           bool   `json:"rtl_mode"`

	PhotoB64  *string `json:"photo_b64"`
	PhotoMime *string `json:"photo_mime"`
	PhotoName *string `json:"photo_name"`

	photo []byte
}

// ValidationError lists every schema violation of a preset document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is one violation; Field is "(root)" for document level errors.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("preset validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidatePreset checks data against the embedded preset schema.
func ValidatePreset(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(presetSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("解析预设失败: %w", err)
	}
	if result.Valid() {
		return nil
	}
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// ParsePreset validates and decodes a preset document. A photo that is not valid
// base64 is dropped together with its mime type and name.
func ParsePreset(data []byte) (*Preset, error) {
	if err := ValidatePreset(data); err != nil {
		return nil, err
	}
	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("解码预设失败: %w", err)
	}
	if p.PhotoB64 != nil && *p.PhotoB64 != "" {
		raw, err := base64.StdEncoding.DecodeString(*p.PhotoB64)
		if err != nil || len(raw) == 0 {
			p.PhotoB64, p.PhotoMime, p.PhotoName = nil, nil, nil
		} else {
			p.SetPhoto(raw, deref(p.PhotoName), deref(p.PhotoMime))
		}
	}
	return &p, nil
}

// LoadPreset reads and parses the preset stored at path.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取预设 %s 失败: %w", path, err)
	}
	p, err := ParsePreset(data)
	if err != nil {
		return nil, fmt.Errorf("预设 %s: %w", path, err)
	}
	return p, nil
}

// SavePreset writes p as indented JSON. The file is replaced atomically: the data goes
// to a sibling temp file which is synced and then renamed over path.
func SavePreset(path string, p *Preset) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("编码预设失败: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("创建临时文件失败: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("写入预设失败: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("同步预设失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("关闭临时文件失败: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("替换预设 %s 失败: %w", path, err)
	}
	return nil
}

// SetPhoto stores data as the preset photo. Empty name and mime get defaults; the
// mime type is sniffed from data, then guessed from the name, then image/png.
func (p *Preset) SetPhoto(data []byte, name, mimeType string) {
	if len(data) == 0 {
		p.photo = nil
		p.PhotoB64, p.PhotoMime, p.PhotoName = nil, nil, nil
		return
	}
	if name == "" {
		name = defaultPhotoName
	}
	if mimeType == "" {
		mimeType = guessMime(data, name)
	}
	b64 := base64.StdEncoding.EncodeToString(data)
	p.photo = data
	p.PhotoB64, p.PhotoMime, p.PhotoName = &b64, &mimeType, &name
}

// Photo returns the decoded photo, or nil.
func (p *Preset) Photo() []byte { return p.photo }

// Form converts the preset into the form representation, so both inputs share one
// mapping onto layout.Input.
func (p *Preset) Form() *Form {
	rtl := "false"
	if p.RTLMode {
		rtl = "true"
	}
	return &Form{
		Name:              p.Name,
		Location:          p.Location,
		Phone:             p.Phone,
		Email:             p.Email,
		GitHub:            p.GitHub,
		LinkedIn:          p.LinkedIn,
		Birthdate:         p.Birthdate,
		ProjectsText:      p.ProjectsText,
		EducationText:     p.EducationText,
		SectionsLeftText:  p.SectionsLeftText,
		SectionsRightText: p.SectionsRightText,
		SkillsText:        strings.Join(p.Skills, ", "),
		LanguagesText:     strings.Join(p.Languages, ", "),
		RTLMode:           rtl,
		Photo:             p.photo,
	}
}

func guessMime(data []byte, name string) string {
	if mt := mimetype.Detect(data); strings.HasPrefix(mt.String(), "image/") {
		return mt.String()
	}
	if byExt := mime.TypeByExtension(filepath.Ext(name)); strings.HasPrefix(byExt, "image/") {
		return byExt
	}
	return defaultPhotoMime
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
