package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	router := NewRouter(NewAPI(nil, nil, t.TempDir()))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Errorf("body = %q, want healthy status", rec.Body.String())
	}
}

func TestCVUploadRejectsGet(t *testing.T) {
	t.Parallel()

	router := NewRouter(NewAPI(nil, nil, t.TempDir()))

	req := httptest.NewRequest(http.MethodGet, "/api/cv/upload", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestCVUploadRejectsUnsupportedExtension(t *testing.T) {
	t.Parallel()

	router := NewRouter(NewAPI(nil, nil, t.TempDir()))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "payload.exe")
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(part, "MZ binary junk")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/cv/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid file type") {
		t.Errorf("body = %q, want invalid file type message", rec.Body.String())
	}
}

func TestCVUploadRejectsMissingFile(t *testing.T) {
	t.Parallel()

	router := NewRouter(NewAPI(nil, nil, t.TempDir()))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("note", "no file here")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/cv/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
