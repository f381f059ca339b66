package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumora-KR/rps-server/internal/api/middleware"
	"github.com/Lumora-KR/rps-server/internal/services"
)

// AuthHandler serves the admin panel authentication endpoints.
type AuthHandler struct {
	users services.IUserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.IUserService) *AuthHandler {
	return &AuthHandler{users: users}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login answers with the token and user at the top level of the body, the
// shape the admin panel consumes.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, user, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondError(c, http.StatusInternalServerError, "An error occurred during login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

// CurrentUser returns the authenticated user's record, password excluded.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID := c.GetUint(middleware.ContextKeyUserID)

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
