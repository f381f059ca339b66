package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumora-KR/rps-server/internal/models"
	"github.com/Lumora-KR/rps-server/internal/services"
)

// HotelEnquiryHandler serves the hotel booking enquiry endpoints.
type HotelEnquiryHandler struct {
	service services.IHotelEnquiryService
}

// NewHotelEnquiryHandler creates a new HotelEnquiryHandler.
func NewHotelEnquiryHandler(service services.IHotelEnquiryService) *HotelEnquiryHandler {
	return &HotelEnquiryHandler{service: service}
}

type hotelEnquiryRequest struct {
	HotelID      uint          `json:"hotelId" binding:"required"`
	HotelName    string        `json:"hotelName"`
	Name         string        `json:"name" binding:"required"`
	Email        string        `json:"email" binding:"required"`
	Phone        string        `json:"phone" binding:"required"`
	CheckInDate  string        `json:"checkInDate" binding:"required"`
	CheckOutDate string        `json:"checkOutDate" binding:"required"`
	Guests       int           `json:"guests"`
	Rooms        int           `json:"rooms"`
	Message      string        `json:"message"`
	Status       models.Status `json:"status"`
}

func (r *hotelEnquiryRequest) toModel() *models.HotelEnquiry {
	return &models.HotelEnquiry{
		HotelID:      r.HotelID,
		HotelName:    r.HotelName,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		Guests:       r.Guests,
		Rooms:        r.Rooms,
		Message:      r.Message,
		Status:       r.Status,
	}
}

func (h *HotelEnquiryHandler) Create(c *gin.Context) {
	var req hotelEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}
	req.Status = ""

	created, err := h.service.Create(c.Request.Context(), req.toModel())
	if err != nil {
		respondServiceError(c, err, "Hotel not found", "Failed to send your enquiry. Please try again later.")
		return
	}
	respondMessage(c, "Your hotel booking enquiry has been sent successfully. The hotel will contact you soon!", created)
}

func (h *HotelEnquiryHandler) List(c *gin.Context) {
	enquiries, pagination, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch hotel enquiries")
		return
	}
	respondList(c, enquiries, pagination)
}

func (h *HotelEnquiryHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Hotel enquiry not found")
		return
	}
	enquiry, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Hotel enquiry not found", "Failed to fetch hotel enquiry")
		return
	}
	respondData(c, enquiry)
}

func (h *HotelEnquiryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Hotel enquiry not found")
		return
	}

	var req hotelEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondServiceError(c, err, "Hotel enquiry not found", "Failed to update hotel enquiry")
		return
	}
	respondMessage(c, "Hotel enquiry updated successfully", updated)
}

func (h *HotelEnquiryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Hotel enquiry not found")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Hotel enquiry not found", "Failed to delete hotel enquiry")
		return
	}
	respondMessage(c, "Hotel enquiry deleted successfully", nil)
}

func (h *HotelEnquiryHandler) Chart(c *gin.Context) {
	chart, err := h.service.Chart(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch chart data")
		return
	}
	respondData(c, chart)
}
