package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTourPackagesHandler_MailOnly(t *testing.T) {
	mailer := &recordingMailer{}
	h := NewTourPackagesHandler(mailer)

	r := gin.New()
	r.POST("/api/tour-packages", h.Create)

	w, env := doJSON(t, r, http.MethodPost, "/api/tour-packages", gin.H{
		"name": "Asha", "email": "asha@example.com", "phone": "9876543210",
		"destination": "Kerala", "travelDate": "2023-12-01", "adults": "2",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Contains(t, env.Message, "sent successfully")
	// Forwarded to staff only, nothing else.
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].Subject, "Kerala")
	assert.Empty(t, mailer.sent[0].To)

	w, env = doJSON(t, r, http.MethodPost, "/api/tour-packages", gin.H{
		"name": "Asha", "email": "asha@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please provide all required fields", env.Message)
	assert.Len(t, mailer.sent, 1)
}
