package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/vita/fonts"
	"github.com/ByLCY/vita/layout"
	pdfrenderer "github.com/ByLCY/vita/renderer/pdf"
	"github.com/ByLCY/vita/renderer/preview"
	"github.com/ByLCY/vita/resume"
)

func newTestServer(t *testing.T, limit int64) *Server {
	t.Helper()
	set := fonts.Default()
	s, err := New(Config{
		Addr:           ":0",
		MaxUploadBytes: limit,
		Generator: &resume.Generator{
			Style:    layout.DefaultStyle(),
			Fonts:    set,
			Renderer: pdfrenderer.NewRenderer(set),
		},
	})
	require.NoError(t, err)
	return s
}

func multipartBody(t *testing.T, fields map[string]string, photo []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if photo != nil {
		fw, err := mw.CreateFormFile("photo", "me.png")
		require.NoError(t, err)
		_, err = fw.Write(photo)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, 1<<20)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t, 1<<20)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestPreflight(t *testing.T) {
	s := newTestServer(t, 1<<20)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/generate-form", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestGenerateForm(t *testing.T) {
	s := newTestServer(t, 1<<20)
	body, ct := multipartBody(t, map[string]string{
		"name":          "Jane Doe",
		"github":        "https://github.com/jane/dotfiles",
		"skills_text":   "Go, Rust",
		"projects_text": "Vita\nLayout engine\nhttps://github.com/jane/vita",
		"rtl_mode":      "false",
	}, []byte("not an image"))
	req := httptest.NewRequest(http.MethodPost, "/generate-form", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="resume.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestGenerateFormURLEncoded(t *testing.T) {
	s := newTestServer(t, 1<<20)
	req := httptest.NewRequest(http.MethodPost, "/generate-form", strings.NewReader("name=Jane&skills_text=Go"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestGenerateFormMalformed(t *testing.T) {
	s := newTestServer(t, 1<<20)
	req := httptest.NewRequest(http.MethodPost, "/generate-form", strings.NewReader("--x\r\ngarbage"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/generate-form", strings.NewReader("x"))
	req.Header.Set("Content-Type", "text/plain")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateFormTooLarge(t *testing.T) {
	s := newTestServer(t, 512)
	body, ct := multipartBody(t, map[string]string{"name": strings.Repeat("x", 2048)}, nil)
	req := httptest.NewRequest(http.MethodPost, "/generate-form", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestGenerateFormValidation(t *testing.T) {
	s := newTestServer(t, 1<<20)
	body, ct := multipartBody(t, map[string]string{"name": strings.Repeat("x", 300)}, nil)
	req := httptest.NewRequest(http.MethodPost, "/generate-form", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Name")
}

func TestGeneratePreset(t *testing.T) {
	s := newTestServer(t, 1<<20)
	doc := `{"name":"Jane","skills":["Go"],"languages":"Deutsch - B2","rtl_mode":false,"photo_b64":null}`
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-preset", strings.NewReader(doc)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestGeneratePresetErrors(t *testing.T) {
	s := newTestServer(t, 1<<20)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-preset", strings.NewReader(`{"rtl_mode":"yes"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "preset validation failed", resp["error"])
	assert.NotEmpty(t, resp["details"])

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-preset", strings.NewReader(`{oops`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewEngineServesPNG(t *testing.T) {
	set := fonts.Default()
	s, err := New(Config{
		Addr:           ":0",
		MaxUploadBytes: 1 << 20,
		Generator:      &resume.Generator{Style: layout.DefaultStyle(), Fonts: set, Renderer: preview.NewRenderer(set, 0.5)},
	})
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-preset", strings.NewReader(`{"name":"Jane"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{MaxUploadBytes: 1})
	assert.Error(t, err)
	_, err = New(Config{Generator: &resume.Generator{Renderer: pdfrenderer.NewRenderer(nil)}})
	assert.Error(t, err)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&ErrValidation{Field: "name"}, http.StatusBadRequest},
		{&ErrPayload{Cause: errors.New("x")}, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", &ErrTooLarge{Limit: 1}), http.StatusRequestEntityTooLarge},
		{&ErrPayload{Cause: &http.MaxBytesError{Limit: 1}}, http.StatusRequestEntityTooLarge},
		{&resume.ValidationError{}, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), "%v", tt.err)
	}
}
