package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/soley/admin-cli/internal/utils"
)

// Storage persists an uploaded image and returns its public URL.
type Storage interface {
	Put(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// DiskStorage writes files under Dir and serves them from BaseURL.
type DiskStorage struct {
	Dir     string
	BaseURL string
}

// NewDiskStorage creates dir if needed.
func NewDiskStorage(dir, baseURL string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}
	return &DiskStorage{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Put implements Storage.
func (s *DiskStorage) Put(ctx context.Context, filename, _ string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	path := filepath.Join(s.Dir, filename)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return s.BaseURL + "/" + filename, nil
}

// Filename builds restaurant-<unix ms>-<6 random chars>.<ext> for an upload.
func Filename(original string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("restaurant-%d-%s.%s", now.UnixMilli(), suffix, utils.FileExtension(original))
}
