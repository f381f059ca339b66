package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Lumora-KR/rps-server/internal/services"
	"github.com/Lumora-KR/rps-server/internal/storage"
)

// ImageHandler serves stored images by id. Only disk-backed storage can
// stream files; with S3 storage the public URL on the record is the way in.
type ImageHandler struct {
	uploads services.IUploadService
	disk    *storage.DiskStorage
}

// NewImageHandler creates a new ImageHandler. disk may be nil when uploads
// live in S3.
func NewImageHandler(uploads services.IUploadService, disk *storage.DiskStorage) *ImageHandler {
	return &ImageHandler{uploads: uploads, disk: disk}
}

func (h *ImageHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Image not found")
		return
	}

	img, err := h.uploads.FindImageByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Image not found", "Failed to serve image")
		return
	}

	if h.disk == nil {
		c.Redirect(http.StatusFound, img.URL)
		return
	}

	path := h.disk.Path("", img.Path)
	if _, err := os.Stat(path); err != nil {
		respondError(c, http.StatusNotFound, "Image file not found")
		return
	}

	c.Header("Content-Type", img.MimeType)
	c.File(path)
}
