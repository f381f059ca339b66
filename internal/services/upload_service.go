package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"github.com/Lumora-KR/rps-server/internal/models"
	"github.com/Lumora-KR/rps-server/internal/storage"
)

// IUploadService defines the interface for image upload handling.
type IUploadService interface {
	SaveImages(ctx context.Context, category, prefix string, files []*multipart.FileHeader) ([]string, error)
	FindImageByID(ctx context.Context, id uint) (*models.Image, error)
}

type uploadService struct {
	db      *gorm.DB
	store   storage.Storage
	maxDim  int
	maxSize int64
}

// NewUploadService creates a new UploadService. Uploaded images larger than
// maxDim pixels on their longer side are downscaled before storage.
func NewUploadService(db *gorm.DB, store storage.Storage, maxDim int) IUploadService {
	return &uploadService{db: db, store: store, maxDim: maxDim, maxSize: 5 << 20}
}

var imageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// SaveImages stores each uploaded file under the given category, records an
// Image row per file and returns the public URLs in upload order.
func (s *uploadService) SaveImages(ctx context.Context, category, prefix string, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := s.saveOne(ctx, category, prefix, fh)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *uploadService) saveOne(ctx context.Context, category, prefix string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxSize {
		return "", fmt.Errorf("file '%s' exceeds the %dMB upload limit", fh.Filename, s.maxSize>>20)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType, ok := imageExtensions[ext]
	if !ok {
		return "", fmt.Errorf("unsupported image type '%s'", ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload '%s': %w", fh.Filename, err)
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return "", fmt.Errorf("failed to read upload '%s': %w", fh.Filename, err)
	}

	data = storage.Downscale(data, s.maxDim)

	filename := storage.GenerateFilename(prefix, fh.Filename)
	url, err := s.store.Save(ctx, category, filename, data, contentType)
	if err != nil {
		return "", err
	}

	img := models.Image{
		Filename:     filename,
		OriginalName: fh.Filename,
		MimeType:     contentType,
		Size:         int64(len(data)),
		Path:         category + "/" + filename,
		URL:          url,
	}
	if err := s.db.WithContext(ctx).Create(&img).Error; err != nil {
		return "", err
	}

	return url, nil
}

func (s *uploadService) FindImageByID(ctx context.Context, id uint) (*models.Image, error) {
	var img models.Image
	if err := s.db.WithContext(ctx).First(&img, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &img, nil
}
