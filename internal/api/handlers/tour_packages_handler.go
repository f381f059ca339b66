package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumora-KR/rps-server/internal/email"
)

// TourPackagesHandler serves the general tour packages enquiry form. The
// submission is forwarded by email only and never stored.
type TourPackagesHandler struct {
	mailer email.Mailer
}

// NewTourPackagesHandler creates a new TourPackagesHandler.
func NewTourPackagesHandler(mailer email.Mailer) *TourPackagesHandler {
	return &TourPackagesHandler{mailer: mailer}
}

type tourPackagesRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Destination string `json:"destination"`
	TravelDate  string `json:"travelDate"`
	Adults      string `json:"adults"`
	Children    string `json:"children"`
	Budget      string `json:"budget"`
	Message     string `json:"message"`
}

func (h *TourPackagesHandler) Create(c *gin.Context) {
	var req tourPackagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	msg := email.TourPackagesFormAdmin(email.TourPackagesForm{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Destination: req.Destination,
		TravelDate:  req.TravelDate,
		Adults:      req.Adults,
		Children:    req.Children,
		Budget:      req.Budget,
		Message:     req.Message,
	})
	if _, err := h.mailer.Send(c.Request.Context(), msg); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to send your enquiry. Please try again later.")
		return
	}
	respondMessage(c, "Your tour package enquiry has been sent successfully. We will contact you soon!", nil)
}
