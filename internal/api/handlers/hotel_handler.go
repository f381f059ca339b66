package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lumora-KR/rps-server/internal/models"
	"github.com/Lumora-KR/rps-server/internal/services"
)

// HotelHandler serves the provider-facing hotel listing endpoints.
type HotelHandler struct {
	service services.IHotelService
	uploads services.IUploadService
}

// NewHotelHandler creates a new HotelHandler.
func NewHotelHandler(service services.IHotelService, uploads services.IUploadService) *HotelHandler {
	return &HotelHandler{service: service, uploads: uploads}
}

func (h *HotelHandler) hotelFromForm(c *gin.Context) *models.Hotel {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	rating, _ := strconv.ParseFloat(c.PostForm("rating"), 64)
	return &models.Hotel{
		Name:          c.PostForm("name"),
		Location:      c.PostForm("location"),
		Price:         price,
		Rating:        rating,
		Type:          c.PostForm("type"),
		Description:   c.PostForm("description"),
		Amenities:     parseStringList(c.PostForm("amenities")),
		ProviderName:  c.PostForm("providerName"),
		ProviderEmail: c.PostForm("providerEmail"),
		ProviderPhone: c.PostForm("providerPhone"),
	}
}

func (h *HotelHandler) saveUploads(c *gin.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}
	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}
	return h.uploads.SaveImages(c.Request.Context(), "hotels", "hotel", files)
}

func (h *HotelHandler) Create(c *gin.Context) {
	hotel := h.hotelFromForm(c)
	if hotel.Name == "" || hotel.Location == "" || hotel.Price == 0 || hotel.Type == "" ||
		hotel.ProviderName == "" || hotel.ProviderEmail == "" || hotel.ProviderPhone == "" {
		respondError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	urls, err := h.saveUploads(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Error uploading images")
		return
	}
	hotel.Images = urls

	created, err := h.service.Create(c.Request.Context(), hotel)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to add hotel. Please try again later.")
		return
	}
	respondCreated(c, "Your hotel has been added successfully!", created)
}

func (h *HotelHandler) List(c *gin.Context) {
	hotels, pagination, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch hotels")
		return
	}
	respondList(c, hotels, pagination)
}

func (h *HotelHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Hotel not found")
		return
	}
	hotel, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Hotel not found", "Failed to fetch hotel")
		return
	}
	respondData(c, hotel)
}

func (h *HotelHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Hotel not found")
		return
	}

	hotel := h.hotelFromForm(c)

	images := parseStringList(c.PostForm("existingImages"))
	urls, err := h.saveUploads(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Error uploading images")
		return
	}
	images = append(images, urls...)
	hotel.Images = images

	updated, err := h.service.Update(c.Request.Context(), id, hotel)
	if err != nil {
		respondServiceError(c, err, "Hotel not found", "Failed to update hotel. Please try again later.")
		return
	}
	respondMessage(c, "Hotel updated successfully", updated)
}

func (h *HotelHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Hotel not found")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Hotel not found", "Failed to delete hotel. Please try again later.")
		return
	}
	respondMessage(c, "Hotel deleted successfully", nil)
}

func (h *HotelHandler) Chart(c *gin.Context) {
	chart, err := h.service.Chart(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch chart data")
		return
	}
	respondData(c, chart)
}
