package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Lumora-KR/rps-server/internal/models"
	"github.com/Lumora-KR/rps-server/internal/services"
)

// CarRentalHandler serves the provider-facing car listing endpoints. Create
// and Update accept multipart forms so image files ride along with the
// listing fields.
type CarRentalHandler struct {
	service services.ICarRentalService
	uploads services.IUploadService
}

// NewCarRentalHandler creates a new CarRentalHandler.
func NewCarRentalHandler(service services.ICarRentalService, uploads services.IUploadService) *CarRentalHandler {
	return &CarRentalHandler{service: service, uploads: uploads}
}

// parseStringList accepts either a JSON array or a comma-separated string.
func parseStringList(raw string) models.JSONStrings {
	if raw == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}

// parseStringMap accepts a JSON object, falling back to an empty map.
func parseStringMap(raw string) models.JSONMap {
	if raw == "" {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return models.JSONMap{}
	}
	return m
}

func (h *CarRentalHandler) carFromForm(c *gin.Context) *models.CarRental {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	car := &models.CarRental{
		Title:          c.PostForm("title"),
		CarType:        c.PostForm("carType"),
		Price:          price,
		PriceUnit:      c.PostForm("priceUnit"),
		Seating:        c.PostForm("seating"),
		Transmission:   c.PostForm("transmission"),
		Fuel:           c.PostForm("fuel"),
		Description:    c.PostForm("description"),
		Features:       parseStringList(c.PostForm("features")),
		Specifications: parseStringMap(c.PostForm("specifications")),
		ProviderName:   c.PostForm("providerName"),
		ProviderEmail:  c.PostForm("providerEmail"),
		ProviderPhone:  c.PostForm("providerPhone"),
	}
	// AC stays nil when the field was not sent, so updates keep the stored
	// value.
	if v, ok := c.GetPostForm("ac"); ok {
		ac := v == "true"
		car.AC = &ac
	}
	return car
}

// saveUploads stores any files sent under the "images" field and returns
// their public URLs.
func (h *CarRentalHandler) saveUploads(c *gin.Context, category, prefix string) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}
	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}
	return h.uploads.SaveImages(c.Request.Context(), category, prefix, files)
}

func (h *CarRentalHandler) Create(c *gin.Context) {
	car := h.carFromForm(c)
	if car.AC == nil {
		car.AC = new(bool)
	}
	if car.Title == "" || car.CarType == "" || car.Price == 0 || car.Seating == "" ||
		car.Transmission == "" || car.Fuel == "" ||
		car.ProviderName == "" || car.ProviderEmail == "" || car.ProviderPhone == "" {
		respondError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	urls, err := h.saveUploads(c, "cars", "car")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Error uploading images")
		return
	}
	car.Images = urls

	created, err := h.service.Create(c.Request.Context(), car)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to add car rental. Please try again later.")
		return
	}
	respondCreated(c, "Your car rental has been added successfully!", created)
}

func (h *CarRentalHandler) List(c *gin.Context) {
	cars, pagination, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch car rentals")
		return
	}
	respondList(c, cars, pagination)
}

func (h *CarRentalHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Car rental not found")
		return
	}
	car, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Car rental not found", "Failed to fetch car rental")
		return
	}
	respondData(c, car)
}

// Update merges retained images (the "existingImages" field) with any new
// uploads before handing the listing to the service.
func (h *CarRentalHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Car rental not found")
		return
	}

	car := h.carFromForm(c)

	images := parseStringList(c.PostForm("existingImages"))
	urls, err := h.saveUploads(c, "cars", "car")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Error uploading images")
		return
	}
	images = append(images, urls...)
	car.Images = images

	updated, err := h.service.Update(c.Request.Context(), id, car)
	if err != nil {
		respondServiceError(c, err, "Car rental not found", "Failed to update car rental. Please try again later.")
		return
	}
	respondMessage(c, "Car rental updated successfully", updated)
}

func (h *CarRentalHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Car rental not found")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Car rental not found", "Failed to delete car rental. Please try again later.")
		return
	}
	respondMessage(c, "Car rental deleted successfully", nil)
}

func (h *CarRentalHandler) Chart(c *gin.Context) {
	chart, err := h.service.Chart(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch chart data")
		return
	}
	respondData(c, chart)
}
