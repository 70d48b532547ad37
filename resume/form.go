// Package resume maps the two input shapes of the résumé generator, the HTTP form and
// the saved JSON preset, onto layout.Input, and drives composition plus rendering.
package resume

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ByLCY/vita/layout"
	"github.com/ByLCY/vita/markup"
)

// Form holds the raw fields of POST /generate-form. Free-text fields use the small
// line languages understood by package markup.
type Form struct {
	Name      string `json:"name" validate:"max=200"`
	Location  string `json:"location" validate:"max=200"`
	Phone     string `json:"phone" validate:"max=100"`
	Email     string `json:"email" validate:"max=200"`
	GitHub    string `json:"github" validate:"max=300"`
	LinkedIn  string `json:"linkedin" validate:"max=300"`
	Birthdate string `json:"birthdate" validate:"max=100"`

	ProjectsText      string `json:"projects_text" validate:"max=20000"`
	EducationText     string `json:"education_text" validate:"max=20000"`
	SectionsLeftText  string `json:"sections_left_text" validate:"max=20000"`
	SectionsRightText string `json:"sections_right_text" validate:"max=20000"`
	SkillsText        string `json:"skills_text" validate:"max=5000"`
	LanguagesText     string `json:"languages_text" validate:"max=2000"`

	// RTLMode is "true" or "false"; anything but a case-insensitive "true" is false.
	RTLMode string `json:"rtl_mode" validate:"omitempty,max=10"`

	Photo []byte `json:"-"`
}

// FormFields lists the multipart field names read into a Form.
var FormFields = []string{
	"name", "location", "phone", "email", "github", "linkedin", "birthdate",
	"projects_text", "education_text", "sections_left_text", "sections_right_text",
	"skills_text", "languages_text", "rtl_mode",
}

// Set assigns a multipart field by name and reports whether the name is known.
func (f *Form) Set(field, value string) bool {
	switch field {
	case "name":
		f.Name = value
	case "location":
		f.Location = value
	case "phone":
		f.Phone = value
	case "email":
		f.Email = value
	case "github":
		f.GitHub = value
	case "linkedin":
		f.LinkedIn = value
	case "birthdate":
		f.Birthdate = value
	case "projects_text":
		f.ProjectsText = value
	case "education_text":
		f.EducationText = value
	case "sections_left_text":
		f.SectionsLeftText = value
	case "sections_right_text":
		f.SectionsRightText = value
	case "skills_text":
		f.SkillsText = value
	case "languages_text":
		f.LanguagesText = value
	case "rtl_mode":
		f.RTLMode = value
	default:
		return false
	}
	return true
}

// Validate checks field lengths.
func (f *Form) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}

// RTL reports whether right-to-left mode was requested.
func (f *Form) RTL() bool {
	return strings.ToLower(strings.TrimSpace(f.RTLMode)) == "true"
}

// Input parses every free-text field and returns the composer input.
func (f *Form) Input() layout.Input {
	return layout.Input{
		Name: f.Name,
		Contact: layout.Contact{
			Location:  f.Location,
			Phone:     f.Phone,
			Email:     f.Email,
			Birthdate: f.Birthdate,
			GitHub:    f.GitHub,
			LinkedIn:  f.LinkedIn,
		},
		Skills:        markup.ParseListOrCSV(f.SkillsText),
		Languages:     markup.NormalizeLanguages(markup.ParseListOrCSV(f.LanguagesText)),
		LeftSections:  markup.ParseBracketSections(f.SectionsLeftText),
		RightSections: markup.ParseBracketSections(f.SectionsRightText),
		Projects:      markup.ParseProjects(f.ProjectsText),
		Education:     markup.ParseBlocks(f.EducationText),
		Photo:         f.Photo,
		RTL:           f.RTL(),
	}
}
