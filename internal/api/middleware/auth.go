package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumora-KR/rps-server/internal/auth"
)

const (
	// ContextKeyUserID holds the key for the user ID in Gin context.
	ContextKeyUserID = "userID"
	// ContextKeyUsername holds the key for the username in Gin context.
	ContextKeyUsername = "username"
)

// AuthMiddleware creates a Gin middleware validating the admin panel's
// x-auth-token header.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("x-auth-token")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "No token, authorization denied",
			})
			return
		}

		claims, err := auth.ValidateJWT(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Token is not valid",
			})
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUsername, claims.Username)

		c.Next()
	}
}
