package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumora-KR/rps-server/internal/models"
	"github.com/Lumora-KR/rps-server/internal/services"
	"github.com/Lumora-KR/rps-server/internal/utils"
)

func setupHomeEnquiryRouter(t *testing.T) (*gin.Engine, *recordingMailer) {
	t.Helper()
	db := utils.SetupTestDB(t)
	mailer := &recordingMailer{}
	h := NewHomeEnquiryHandler(services.NewHomeEnquiryService(db, mailer))

	r := gin.New()
	g := r.Group("/api/home-enquiries")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/chart/:type", h.Chart)
	g.GET("/:type", h.GetOrListByType)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r, mailer
}

func TestHomeEnquiryHandler_CreateVariants(t *testing.T) {
	r, mailer := setupHomeEnquiryRouter(t)

	// Missing the cars variant fields.
	w, env := doJSON(t, r, http.MethodPost, "/api/home-enquiries", gin.H{
		"formType": "cars", "name": "Asha", "email": "asha@example.com", "phone": "9876543210",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please provide all required fields", env.Message)
	assert.Empty(t, mailer.sent)

	w, env = doJSON(t, r, http.MethodPost, "/api/home-enquiries", gin.H{
		"formType": "cars", "name": "Asha", "email": "asha@example.com", "phone": "9876543210",
		"fromLocation": "Chennai", "toLocation": "Madurai", "pickupDate": "2023-06-15",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, env.Message, "sent successfully")
	assert.Len(t, mailer.sent, 2)

	w, env = doJSON(t, r, http.MethodPost, "/api/home-enquiries", gin.H{
		"formType": "flights", "name": "Asha", "email": "asha@example.com", "phone": "9876543210",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid form type", env.Message)
}

func TestHomeEnquiryHandler_TypeAndIDDispatch(t *testing.T) {
	r, _ := setupHomeEnquiryRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/home-enquiries", gin.H{
		"formType": "hotels", "name": "Ravi", "email": "ravi@example.com", "phone": "9000000000",
		"destination": "Ooty", "checkIn": "2023-10-01", "checkOut": "2023-10-04",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Numeric key fetches one record.
	w, env := doJSON(t, r, http.MethodGet, "/api/home-enquiries/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Ravi")

	// A variant key lists that variant.
	w, env = doJSON(t, r, http.MethodGet, "/api/home-enquiries/hotels", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(1), env.Pagination.Total)

	w, env = doJSON(t, r, http.MethodGet, "/api/home-enquiries/cars", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), env.Pagination.Total)

	// Unknown variant is rejected.
	w, _ = doJSON(t, r, http.MethodGet, "/api/home-enquiries/flights", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Chart honours the variant filter, "all" included.
	w, env = doJSON(t, r, http.MethodGet, "/api/home-enquiries/chart/all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var chart services.ChartData
	require.NoError(t, jsonUnmarshal(env.Data, &chart))
	assert.Len(t, chart.Labels, 31)
}

func TestHomeEnquiryHandler_UpdateDelete(t *testing.T) {
	r, mailer := setupHomeEnquiryRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/home-enquiries", gin.H{
		"formType": "tourPackages", "name": "Mira", "email": "mira@example.com", "phone": "9111111111",
		"packageType": "honeymoon", "travelDate": "2023-12-20",
	})
	require.Equal(t, http.StatusOK, w.Code)
	sentBefore := len(mailer.sent)

	w, env := doJSON(t, r, http.MethodPut, "/api/home-enquiries/1", gin.H{
		"formType": "tourPackages", "name": "Mira", "email": "mira@example.com", "phone": "9111111111",
		"status": string(models.StatusConfirmed),
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"status":"confirmed"`)
	assert.Len(t, mailer.sent, sentBefore+1)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/home-enquiries/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodDelete, "/api/home-enquiries/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
