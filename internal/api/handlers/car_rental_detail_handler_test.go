package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumora-KR/rps-server/internal/models"
	"github.com/Lumora-KR/rps-server/internal/services"
	"github.com/Lumora-KR/rps-server/internal/utils"
	"gorm.io/gorm"
)

func setupCarRentalDetailRouter(t *testing.T) (*gin.Engine, *gorm.DB, *recordingMailer) {
	t.Helper()
	db := utils.SetupTestDB(t)
	mailer := &recordingMailer{}
	h := NewCarRentalDetailHandler(services.NewCarRentalDetailService(db, mailer))

	r := gin.New()
	g := r.Group("/api/car-rental-detail")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/chart", h.Chart)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r, db, mailer
}

func validCarRentalBooking(i int) gin.H {
	return gin.H{
		"name":       fmt.Sprintf("Customer %d", i),
		"email":      fmt.Sprintf("customer%d@example.com", i),
		"phone":      "9876543210",
		"carId":      "swift-dzire",
		"carName":    "Swift Dzire",
		"pickupDate": "2023-06-15",
		"returnDate": "2023-06-18",
	}
}

func TestCarRentalDetailHandler_CreateValidation(t *testing.T) {
	r, db, mailer := setupCarRentalDetailRouter(t)

	body := validCarRentalBooking(1)
	delete(body, "phone")

	w, env := doJSON(t, r, http.MethodPost, "/api/car-rental-detail", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Please provide all required fields", env.Message)

	// Nothing persisted, nothing mailed.
	var count int64
	require.NoError(t, db.Model(&models.CarRentalDetail{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, mailer.sent)
}

func TestCarRentalDetailHandler_CreateAndFetch(t *testing.T) {
	r, _, mailer := setupCarRentalDetailRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/car-rental-detail", validCarRentalBooking(1))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Contains(t, env.Message, "sent successfully")
	assert.Contains(t, string(env.Data), `"status":"pending"`)
	assert.Len(t, mailer.sent, 2)

	// A submitted status must not override the server-side default.
	body := validCarRentalBooking(2)
	body["status"] = "completed"
	w, env = doJSON(t, r, http.MethodPost, "/api/car-rental-detail", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"status":"pending"`)

	w, env = doJSON(t, r, http.MethodGet, "/api/car-rental-detail/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Customer 1")

	w, _ = doJSON(t, r, http.MethodGet, "/api/car-rental-detail/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCarRentalDetailHandler_ListPagination(t *testing.T) {
	r, _, _ := setupCarRentalDetailRouter(t)

	for i := 1; i <= 15; i++ {
		w, _ := doJSON(t, r, http.MethodPost, "/api/car-rental-detail", validCarRentalBooking(i))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/car-rental-detail?page=2&limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(15), env.Pagination.Total)
	assert.Equal(t, 2, env.Pagination.TotalPages)
	assert.Equal(t, 2, env.Pagination.CurrentPage)
	assert.Equal(t, 10, env.Pagination.Limit)

	var page []models.CarRentalDetail
	require.NoError(t, jsonUnmarshal(env.Data, &page))
	assert.Len(t, page, 5)

	// Search narrows, unknown term returns an empty page.
	w, env = doJSON(t, r, http.MethodGet, "/api/car-rental-detail?search=customer+12", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), env.Pagination.Total)

	w, env = doJSON(t, r, http.MethodGet, "/api/car-rental-detail?search=zzz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), env.Pagination.Total)
}

func TestCarRentalDetailHandler_UpdateStatusFlow(t *testing.T) {
	r, _, mailer := setupCarRentalDetailRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/car-rental-detail", validCarRentalBooking(1))
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mailer.sent, 2)

	update := validCarRentalBooking(1)
	update["status"] = "confirmed"
	w, env := doJSON(t, r, http.MethodPut, "/api/car-rental-detail/1", update)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"status":"confirmed"`)
	// One status notification to the customer.
	assert.Len(t, mailer.sent, 3)

	// The update path re-validates the required fields.
	bad := validCarRentalBooking(1)
	delete(bad, "email")
	w, env = doJSON(t, r, http.MethodPut, "/api/car-rental-detail/1", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please provide all required fields", env.Message)

	update["status"] = "parked"
	w, _ = doJSON(t, r, http.MethodPut, "/api/car-rental-detail/1", update)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCarRentalDetailHandler_DeleteAndChart(t *testing.T) {
	r, _, _ := setupCarRentalDetailRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/car-rental-detail", validCarRentalBooking(1))
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doJSON(t, r, http.MethodGet, "/api/car-rental-detail/chart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var chart services.ChartData
	require.NoError(t, jsonUnmarshal(env.Data, &chart))
	assert.Len(t, chart.Labels, 31)
	require.Len(t, chart.Datasets, 1)
	var total int64
	for _, n := range chart.Datasets[0].Data {
		total += n
	}
	assert.Equal(t, int64(1), total)
	assert.Equal(t, int64(1), chart.StatusCounts["pending"])

	w, _ = doJSON(t, r, http.MethodDelete, "/api/car-rental-detail/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodDelete, "/api/car-rental-detail/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
