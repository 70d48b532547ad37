package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ByLCY/vita/resume"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrPayload indicates a body that could not be decoded (multipart or JSON).
type ErrPayload struct {
	Cause error
}

func (e *ErrPayload) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Cause)
}

func (e *ErrPayload) Unwrap() error { return e.Cause }

// ErrTooLarge indicates a body above the configured upload limit.
type ErrTooLarge struct {
	Limit int64
}

func (e *ErrTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation *ErrValidation
		payload    *ErrPayload
		tooLarge   *ErrTooLarge
		preset     *resume.ValidationError
		maxBytes   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooLarge), errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &validation), errors.As(err, &payload), errors.As(err, &preset):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
