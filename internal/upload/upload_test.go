package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soley/admin-cli/pkg/log"
)

type failingStorage struct{}

func (failingStorage) Put(context.Context, string, string, io.Reader) (string, error) {
	return "", errors.New("disk full")
}

func newTestServer(t *testing.T, storage Storage, ratePerMin int) *Server {
	t.Helper()
	srv, err := New(Config{
		Logger:        log.NewNop(),
		Addr:          ":0",
		Mode:          gin.TestMode,
		Storage:       storage,
		RatePerMinute: ratePerMin,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	srv.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return srv
}

func multipartBody(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func post(srv *Server, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, Route, body)
	req.Header.Set("Content-Type", contentType)
	req.RemoteAddr = "192.0.2.10:5555"
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func TestUploadStoresImage(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewDiskStorage(dir, "http://localhost:3000/uploads/")
	if err != nil {
		t.Fatal(err)
	}
	srv := newTestServer(t, storage, 0)

	body, ct := multipartBody(t, FormField, "Burger.PNG", "image/png", []byte("png-bytes"))
	w := post(srv, body, ct)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	res := decode(t, w)
	if !regexp.MustCompile(`^restaurant-1700000000000-[0-9a-f]{6}\.png$`).MatchString(res["filename"]) {
		t.Errorf("filename = %q", res["filename"])
	}
	if res["url"] != "http://localhost:3000/uploads/"+res["filename"] {
		t.Errorf("url = %q", res["url"])
	}
	data, err := os.ReadFile(filepath.Join(dir, res["filename"]))
	if err != nil || string(data) != "png-bytes" {
		t.Errorf("stored file = %q, %v", data, err)
	}
}

func TestUploadRejections(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		contentType string
		size        int
		wantMsg     string
	}{
		{"not an image", FormField, "application/pdf", 10, "Only image files are allowed"},
		{"too large", FormField, "image/jpeg", int(DefaultMaxBytes) + 1, "File size must be less than 5MB"},
		{"missing file", "other", "image/png", 10, "No file uploaded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, _ := NewDiskStorage(t.TempDir(), "http://x")
			srv := newTestServer(t, storage, 0)

			body, ct := multipartBody(t, tt.field, "f.jpg", tt.contentType, bytes.Repeat([]byte("a"), tt.size))
			w := post(srv, body, ct)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", w.Code)
			}
			if got := decode(t, w)["error"]; got != tt.wantMsg {
				t.Errorf("error = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestUploadStorageFailure(t *testing.T) {
	srv := newTestServer(t, failingStorage{}, 0)

	body, ct := multipartBody(t, FormField, "a.png", "image/png", []byte("x"))
	w := post(srv, body, ct)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if got := decode(t, w)["error"]; got != "Upload failed" {
		t.Errorf("error = %q", got)
	}
}

func TestUploadRateLimited(t *testing.T) {
	storage, _ := NewDiskStorage(t.TempDir(), "http://x")
	srv := newTestServer(t, storage, 6) // burst of 1

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		body, ct := multipartBody(t, FormField, "a.png", "image/png", []byte("x"))
		if w := post(srv, body, ct); w.Code != want {
			t.Fatalf("request %d: status = %d, want %d", i, w.Code, want)
		}
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, failingStorage{}, 0)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("health = %d %s", w.Code, w.Body.String())
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := New(Config{Logger: log.NewNop(), Addr: ":0", Mode: gin.TestMode}); err == nil {
		t.Error("expected error without storage")
	}
}

func TestDiskStorageRejectsPaths(t *testing.T) {
	storage, _ := NewDiskStorage(t.TempDir(), "http://x")
	if _, err := storage.Put(context.Background(), "../escape.png", "image/png", strings.NewReader("x")); err == nil {
		t.Error("expected error for path traversal")
	}
}
