package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumora-KR/rps-server/internal/auth"
	"github.com/Lumora-KR/rps-server/internal/config"
	"github.com/Lumora-KR/rps-server/internal/email"
	"github.com/Lumora-KR/rps-server/internal/models"
	"github.com/Lumora-KR/rps-server/internal/storage"
	"github.com/Lumora-KR/rps-server/internal/utils"
)

type nullMailer struct{}

func (nullMailer) Send(ctx context.Context, msg email.Message) (string, error) { return "id", nil }
func (nullMailer) SendBestEffort(ctx context.Context, msg email.Message)       {}

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := utils.SetupTestDB(t)

	hash, err := auth.HashPassword("rpstours123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{Username: "rpstours", PasswordHash: hash}).Error)
	require.NoError(t, db.Create(&models.Hotel{
		Name: "Grand Palace", Location: "Jaipur", Price: 4500, Type: "luxury",
		ProviderName: "Palace Group", ProviderEmail: "palace@example.com", ProviderPhone: "9123456780",
	}).Error)

	cfg := &config.Config{
		JwtSecret:           "test-secret",
		JwtTTL:              time.Hour,
		UploadDir:           t.TempDir(),
		ImageMaxDimension:   2048,
		RateLimitBucketSize: 100,
		RateLimitRefillRate: 100,
	}

	disk, err := storage.NewDiskStorage(cfg.UploadDir)
	require.NoError(t, err)

	return SetupRouter(cfg, db, nullMailer{}, disk, disk, nil)
}

func do(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_HealthAndMounts(t *testing.T) {
	r := setupTestServer(t)

	w := do(r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Enquiry listing mounts answer with the envelope.
	for _, path := range []string{
		"/api/car-rental-detail",
		"/api/tour-package-detail",
		"/api/hotel-enquiries",
		"/api/contact",
		"/api/home-enquiries",
		"/api/car-rentals",
		"/api/hotels-list",
	} {
		w = do(r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"success":true`, path)
	}

	// Dashboard aggregations are public.
	for _, path := range []string{
		"/api/dashboard/stats",
		"/api/dashboard/chart-data",
		"/api/dashboard/recent-activity",
		"/api/dashboard/quick-stats",
	} {
		w = do(r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_HotelEnquiryAlias(t *testing.T) {
	r := setupTestServer(t)

	// The public site posts to /api/hotels.
	w := do(r, http.MethodPost, "/api/hotels", "", gin.H{
		"hotelId": 1, "name": "Asha", "email": "asha@example.com", "phone": "9876543210",
		"checkInDate": "2023-07-01", "checkOutDate": "2023-07-03",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The admin panel reads the same data at /api/hotel-enquiries.
	w = do(r, http.MethodGet, "/api/hotel-enquiries", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestRouter_ProtectedRoutes(t *testing.T) {
	r := setupTestServer(t)

	for _, path := range []string{"/api/auth/user", "/api/dashboard/welcome"} {
		w := do(r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Contains(t, w.Body.String(), "No token, authorization denied")
	}

	w := do(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "rpstours", "password": "rpstours123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)

	w = do(r, http.MethodGet, "/api/dashboard/welcome", loginResp.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rpstours")

	w = do(r, http.MethodGet, "/api/auth/user", loginResp.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_EndToEndBookingLifecycle(t *testing.T) {
	r := setupTestServer(t)

	w := do(r, http.MethodPost, "/api/car-rental-detail", "", gin.H{
		"name": "Asha", "email": "asha@example.com", "phone": "9876543210",
		"carId": "swift-dzire", "pickupDate": "2023-06-15", "returnDate": "2023-06-18",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPut, "/api/car-rental-detail/1", "", gin.H{
		"name": "Asha", "email": "asha@example.com", "phone": "9876543210",
		"carId": "swift-dzire", "pickupDate": "2023-06-15", "returnDate": "2023-06-18",
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)

	w = do(r, http.MethodGet, "/api/car-rental-detail?status=confirmed", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	w = do(r, http.MethodGet, "/api/car-rental-detail/stats/chart", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"statusCounts"`)

	w = do(r, http.MethodDelete, "/api/car-rental-detail/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodGet, "/api/car-rental-detail/1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
