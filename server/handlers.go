package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ByLCY/vita/assets"
	"github.com/ByLCY/vita/layout"
	"github.com/ByLCY/vita/resume"
)

// multipart fields beyond this stay on disk
const formMemory = 8 << 20

// handleGenerateForm renders the multipart form posted by the editor.
func (s *Server) handleGenerateForm(w http.ResponseWriter, r *http.Request) {
	form, err := s.readForm(w, r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if err := form.Validate(); err != nil {
		s.errorResponse(w, r, validationError(err))
		return
	}
	s.generate(w, r, form.Input())
}

// handleGeneratePreset renders a preset JSON document.
func (s *Server) handleGeneratePreset(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > s.maxUpload {
		s.errorResponse(w, r, &ErrTooLarge{Limit: s.maxUpload})
		return
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxUpload))
	if err != nil {
		s.errorResponse(w, r, s.bodyError(err))
		return
	}
	preset, err := resume.ParsePreset(data)
	if err != nil {
		var ve *resume.ValidationError
		if !errors.As(err, &ve) {
			err = &ErrPayload{Cause: err}
		}
		s.errorResponse(w, r, err)
		return
	}
	form := preset.Form()
	form.Photo = s.checkPhoto(r, form.Photo)
	if err := form.Validate(); err != nil {
		s.errorResponse(w, r, validationError(err))
		return
	}
	s.generate(w, r, form.Input())
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request, in layout.Input) {
	out, err := s.gen.Generate(r.Context(), in)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", s.mediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", s.filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out.Data); err != nil {
		log.Printf("%s write response: %v", RequestID(r.Context()), err)
	}
}

func (s *Server) readForm(w http.ResponseWriter, r *http.Request) (*resume.Form, error) {
	if r.ContentLength > s.maxUpload {
		return nil, &ErrTooLarge{Limit: s.maxUpload}
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return nil, s.bodyError(err)
		}
	} else if err := r.ParseMultipartForm(formMemory); err != nil {
		return nil, s.bodyError(err)
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	form := &resume.Form{}
	for _, name := range resume.FormFields {
		form.Set(name, r.PostFormValue(name))
	}

	file, _, err := r.FormFile("photo")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		return nil, s.bodyError(err)
	default:
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, s.bodyError(err)
		}
		form.Photo = s.checkPhoto(r, data)
	}
	return form, nil
}

// checkPhoto drops uploads that are not images; the page is then drawn without photo.
func (s *Server) checkPhoto(r *http.Request, data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	if _, err := assets.DetectImage(data); err != nil {
		log.Printf("%s skip photo: %v", RequestID(r.Context()), err)
		return nil
	}
	return data
}

func (s *Server) bodyError(err error) error {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return &ErrTooLarge{Limit: s.maxUpload}
	}
	return &ErrPayload{Cause: err}
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("failed on %q (%s)", fe.Tag(), fe.Param())}
	}
	return &ErrValidation{Field: "(form)", Message: err.Error()}
}
