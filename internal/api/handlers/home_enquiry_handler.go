package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lumora-KR/rps-server/internal/models"
	"github.com/Lumora-KR/rps-server/internal/services"
)

// HomeEnquiryHandler serves the home page enquiry form endpoints.
type HomeEnquiryHandler struct {
	service services.IHomeEnquiryService
}

// NewHomeEnquiryHandler creates a new HomeEnquiryHandler.
func NewHomeEnquiryHandler(service services.IHomeEnquiryService) *HomeEnquiryHandler {
	return &HomeEnquiryHandler{service: service}
}

type homeEnquiryRequest struct {
	FormType string        `json:"formType" binding:"required"`
	Name     string        `json:"name" binding:"required"`
	Email    string        `json:"email" binding:"required"`
	Phone    string        `json:"phone" binding:"required"`
	Status   models.Status `json:"status"`

	FromLocation string `json:"fromLocation"`
	ToLocation   string `json:"toLocation"`
	PickupDate   string `json:"pickupDate"`
	CarType      string `json:"carType"`

	PackageType string `json:"packageType"`
	TravelDate  string `json:"travelDate"`
	Duration    string `json:"duration"`
	Travelers   string `json:"travelers"`

	Destination string `json:"destination"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	Rooms       string `json:"rooms"`
}

func (r *homeEnquiryRequest) toModel() *models.HomeEnquiry {
	return &models.HomeEnquiry{
		FormType:     models.FormType(r.FormType),
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Status:       r.Status,
		FromLocation: r.FromLocation,
		ToLocation:   r.ToLocation,
		PickupDate:   r.PickupDate,
		CarType:      r.CarType,
		PackageType:  r.PackageType,
		TravelDate:   r.TravelDate,
		Duration:     r.Duration,
		Travelers:    r.Travelers,
		Destination:  r.Destination,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		Rooms:        r.Rooms,
	}
}

func (h *HomeEnquiryHandler) Create(c *gin.Context) {
	var req homeEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}
	req.Status = ""

	created, err := h.service.Create(c.Request.Context(), req.toModel())
	if err != nil {
		respondServiceError(c, err, "Enquiry not found", "Failed to send your enquiry. Please try again later.")
		return
	}
	respondMessage(c, "Your enquiry has been sent successfully. We will contact you soon!", created)
}

func (h *HomeEnquiryHandler) List(c *gin.Context) {
	enquiries, pagination, err := h.service.List(c.Request.Context(), "all", listParams(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch enquiries")
		return
	}
	respondList(c, enquiries, pagination)
}

// ListByType serves GET /:type, narrowing the listing to one form variant.
func (h *HomeEnquiryHandler) ListByType(c *gin.Context) {
	enquiries, pagination, err := h.service.List(c.Request.Context(), c.Param("type"), listParams(c))
	if err != nil {
		respondServiceError(c, err, "Enquiry not found", "Failed to fetch enquiries")
		return
	}
	respondList(c, enquiries, pagination)
}

// GetOrListByType serves GET /:key. A numeric key fetches one enquiry; any
// other key narrows the listing to that form variant, matching the dual
// routes of the admin panel.
func (h *HomeEnquiryHandler) GetOrListByType(c *gin.Context) {
	if id, err := strconv.ParseUint(c.Param("type"), 10, 32); err == nil && id > 0 {
		h.getByID(c, uint(id))
		return
	}
	h.ListByType(c)
}

func (h *HomeEnquiryHandler) getByID(c *gin.Context, id uint) {
	enquiry, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Enquiry not found", "Failed to fetch enquiry")
		return
	}
	respondData(c, enquiry)
}

func (h *HomeEnquiryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Enquiry not found")
		return
	}

	var req homeEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondServiceError(c, err, "Enquiry not found", "Failed to update enquiry")
		return
	}
	respondMessage(c, "Enquiry updated successfully", updated)
}

func (h *HomeEnquiryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Enquiry not found")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Enquiry not found", "Failed to delete enquiry")
		return
	}
	respondMessage(c, "Enquiry deleted successfully", nil)
}

// Chart serves GET /chart/:type, where :type may be "all".
func (h *HomeEnquiryHandler) Chart(c *gin.Context) {
	chart, err := h.service.Chart(c.Request.Context(), c.Param("type"))
	if err != nil {
		respondServiceError(c, err, "Enquiry not found", "Failed to fetch chart data")
		return
	}
	respondData(c, chart)
}
