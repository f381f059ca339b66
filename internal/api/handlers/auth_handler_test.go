package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumora-KR/rps-server/internal/api/middleware"
	"github.com/Lumora-KR/rps-server/internal/auth"
	"github.com/Lumora-KR/rps-server/internal/config"
	"github.com/Lumora-KR/rps-server/internal/models"
	"github.com/Lumora-KR/rps-server/internal/services"
	"github.com/Lumora-KR/rps-server/internal/utils"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := utils.SetupTestDB(t)

	hash, err := auth.HashPassword("rpstours123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{Username: "rpstours", PasswordHash: hash}).Error)

	cfg := &config.Config{JwtSecret: "test-secret", JwtTTL: time.Hour}
	h := NewAuthHandler(services.NewUserService(db, cfg))

	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/auth/user", middleware.AuthMiddleware(cfg.JwtSecret), h.CurrentUser)
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	r := setupAuthRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "rpstours", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	// Unknown user gets the same message as a bad password.
	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "ghost", "password": "rpstours123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "rpstours", "password": "rpstours123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
	assert.Contains(t, w.Body.String(), `"username":"rpstours"`)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandler_CurrentUser(t *testing.T) {
	r := setupAuthRouter(t)

	token, err := auth.GenerateJWT(1, "rpstours", "test-secret", time.Hour)
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.Header.Set("x-auth-token", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"rpstours"`)
	assert.NotContains(t, w.Body.String(), "password")

	// No token at all.
	req, _ = http.NewRequest(http.MethodGet, "/api/auth/user", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token, authorization denied")
}
