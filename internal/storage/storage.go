package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Storage persists uploaded files and returns the public URL they will be
// served from.
type Storage interface {
	Save(ctx context.Context, category, filename string, data []byte, contentType string) (string, error)
}

// GenerateFilename builds a collision-free filename for an upload, keeping
// the original extension: <prefix>-<unix>-<uuid fragment><ext>.
func GenerateFilename(prefix, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s-%d-%s%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

// DiskStorage writes uploads under a local directory served at /uploads.
type DiskStorage struct {
	baseDir string
}

// NewDiskStorage creates a DiskStorage rooted at baseDir, creating the
// per-category subdirectories used by the site.
func NewDiskStorage(baseDir string) (*DiskStorage, error) {
	for _, sub := range []string{"", "cars", "hotels"} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}
	return &DiskStorage{baseDir: baseDir}, nil
}

// Save writes the file and returns its /uploads URL path.
func (s *DiskStorage) Save(ctx context.Context, category, filename string, data []byte, contentType string) (string, error) {
	dir := filepath.Join(s.baseDir, category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory '%s': %w", dir, err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write upload '%s': %w", path, err)
	}
	return fmt.Sprintf("/uploads/%s/%s", category, filename), nil
}

// Path returns the on-disk path for a stored file.
func (s *DiskStorage) Path(category, filename string) string {
	return filepath.Join(s.baseDir, category, filename)
}
