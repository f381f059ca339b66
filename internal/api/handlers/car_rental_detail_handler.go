package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumora-KR/rps-server/internal/models"
	"github.com/Lumora-KR/rps-server/internal/services"
)

// CarRentalDetailHandler serves the car rental booking form endpoints.
type CarRentalDetailHandler struct {
	service services.ICarRentalDetailService
}

// NewCarRentalDetailHandler creates a new CarRentalDetailHandler.
func NewCarRentalDetailHandler(service services.ICarRentalDetailService) *CarRentalDetailHandler {
	return &CarRentalDetailHandler{service: service}
}

type carRentalDetailRequest struct {
	Name           string        `json:"name" binding:"required"`
	Email          string        `json:"email" binding:"required"`
	Phone          string        `json:"phone" binding:"required"`
	CarID          string        `json:"carId" binding:"required"`
	CarName        string        `json:"carName"`
	PickupDate     string        `json:"pickupDate" binding:"required"`
	ReturnDate     string        `json:"returnDate" binding:"required"`
	PickupLocation string        `json:"pickupLocation"`
	ReturnLocation string        `json:"returnLocation"`
	Message        string        `json:"message"`
	Status         models.Status `json:"status"`
}

func (r *carRentalDetailRequest) toModel() *models.CarRentalDetail {
	return &models.CarRentalDetail{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		CarID:          r.CarID,
		CarName:        r.CarName,
		PickupDate:     r.PickupDate,
		ReturnDate:     r.ReturnDate,
		PickupLocation: r.PickupLocation,
		ReturnLocation: r.ReturnLocation,
		Message:        r.Message,
		Status:         r.Status,
	}
}

func (h *CarRentalDetailHandler) Create(c *gin.Context) {
	var req carRentalDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}
	// Status is server-controlled on submission.
	req.Status = ""

	created, err := h.service.Create(c.Request.Context(), req.toModel())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to send your booking request. Please try again later.")
		return
	}
	respondMessage(c, "Your car rental booking request has been sent successfully. We will contact you soon!", created)
}

func (h *CarRentalDetailHandler) List(c *gin.Context) {
	details, pagination, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch car rental details")
		return
	}
	respondList(c, details, pagination)
}

func (h *CarRentalDetailHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Car rental booking not found")
		return
	}
	detail, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Car rental booking not found", "Failed to fetch car rental booking")
		return
	}
	respondData(c, detail)
}

func (h *CarRentalDetailHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Car rental booking not found")
		return
	}

	var req carRentalDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondServiceError(c, err, "Car rental booking not found", "Failed to update car rental booking")
		return
	}
	respondMessage(c, "Car rental booking updated successfully", updated)
}

func (h *CarRentalDetailHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Car rental booking not found")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Car rental booking not found", "Failed to delete car rental booking")
		return
	}
	respondMessage(c, "Car rental booking deleted successfully", nil)
}

func (h *CarRentalDetailHandler) Chart(c *gin.Context) {
	chart, err := h.service.Chart(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch chart data")
		return
	}
	respondData(c, chart)
}
