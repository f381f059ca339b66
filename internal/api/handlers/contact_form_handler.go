package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumora-KR/rps-server/internal/models"
	"github.com/Lumora-KR/rps-server/internal/services"
)

// ContactFormHandler serves the contact page endpoints.
type ContactFormHandler struct {
	service services.IContactFormService
}

// NewContactFormHandler creates a new ContactFormHandler.
func NewContactFormHandler(service services.IContactFormService) *ContactFormHandler {
	return &ContactFormHandler{service: service}
}

type contactFormRequest struct {
	Name    string        `json:"name" binding:"required"`
	Email   string        `json:"email" binding:"required"`
	Phone   string        `json:"phone" binding:"required"`
	Subject string        `json:"subject"`
	Message string        `json:"message" binding:"required"`
	Status  models.Status `json:"status"`
}

func (r *contactFormRequest) toModel() *models.ContactForm {
	return &models.ContactForm{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
		Status:  r.Status,
	}
}

func (h *ContactFormHandler) Create(c *gin.Context) {
	var req contactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}
	req.Status = ""

	created, err := h.service.Create(c.Request.Context(), req.toModel())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error: Could not process your message.")
		return
	}
	respondMessage(c, "Your message has been submitted successfully. We will contact you soon!", created)
}

func (h *ContactFormHandler) List(c *gin.Context) {
	forms, pagination, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch contact form submissions")
		return
	}
	respondList(c, forms, pagination)
}

func (h *ContactFormHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Contact form submission not found")
		return
	}
	form, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Contact form submission not found", "Failed to fetch contact form submission")
		return
	}
	respondData(c, form)
}

func (h *ContactFormHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Contact form submission not found")
		return
	}

	var req contactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondServiceError(c, err, "Contact form submission not found", "Failed to update contact form submission")
		return
	}
	respondMessage(c, "Contact form submission updated successfully", updated)
}

func (h *ContactFormHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Contact form submission not found")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Contact form submission not found", "Failed to delete contact form submission")
		return
	}
	respondMessage(c, "Contact form submission deleted successfully", nil)
}

func (h *ContactFormHandler) Chart(c *gin.Context) {
	chart, err := h.service.Chart(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch chart data")
		return
	}
	respondData(c, chart)
}
