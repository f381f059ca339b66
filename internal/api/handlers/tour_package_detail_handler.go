package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumora-KR/rps-server/internal/models"
	"github.com/Lumora-KR/rps-server/internal/services"
)

// TourPackageDetailHandler serves the tour package booking form endpoints.
type TourPackageDetailHandler struct {
	service services.ITourPackageDetailService
}

// NewTourPackageDetailHandler creates a new TourPackageDetailHandler.
func NewTourPackageDetailHandler(service services.ITourPackageDetailService) *TourPackageDetailHandler {
	return &TourPackageDetailHandler{service: service}
}

type tourPackageDetailRequest struct {
	Name         string        `json:"name" binding:"required"`
	Email        string        `json:"email" binding:"required"`
	Phone        string        `json:"phone" binding:"required"`
	PackageID    string        `json:"packageId" binding:"required"`
	PackageName  string        `json:"packageName"`
	SelectedDate string        `json:"selectedDate"`
	Adults       int           `json:"adults"`
	Children     int           `json:"children"`
	Message      string        `json:"message"`
	Status       models.Status `json:"status"`
}

func (r *tourPackageDetailRequest) toModel() *models.TourPackageDetail {
	return &models.TourPackageDetail{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		PackageID:    r.PackageID,
		PackageName:  r.PackageName,
		SelectedDate: r.SelectedDate,
		Adults:       r.Adults,
		Children:     r.Children,
		Message:      r.Message,
		Status:       r.Status,
	}
}

func (h *TourPackageDetailHandler) Create(c *gin.Context) {
	var req tourPackageDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}
	req.Status = ""

	created, err := h.service.Create(c.Request.Context(), req.toModel())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to send your booking request. Please try again later.")
		return
	}
	respondMessage(c, "Your tour package booking request has been sent successfully. We will contact you soon!", created)
}

func (h *TourPackageDetailHandler) List(c *gin.Context) {
	details, pagination, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch tour package bookings")
		return
	}
	respondList(c, details, pagination)
}

func (h *TourPackageDetailHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Tour package booking not found")
		return
	}
	detail, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Tour package booking not found", "Failed to fetch tour package booking")
		return
	}
	respondData(c, detail)
}

func (h *TourPackageDetailHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Tour package booking not found")
		return
	}

	var req tourPackageDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondServiceError(c, err, "Tour package booking not found", "Failed to update tour package booking")
		return
	}
	respondMessage(c, "Tour package booking updated successfully", updated)
}

func (h *TourPackageDetailHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Tour package booking not found")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Tour package booking not found", "Failed to delete tour package booking")
		return
	}
	respondMessage(c, "Tour package booking deleted successfully", nil)
}

func (h *TourPackageDetailHandler) Chart(c *gin.Context) {
	chart, err := h.service.Chart(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch chart data")
		return
	}
	respondData(c, chart)
}
