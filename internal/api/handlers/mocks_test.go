package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Lumora-KR/rps-server/internal/email"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// recordingMailer captures outbound messages for assertions.
type recordingMailer struct {
	sent []email.Message
}

func (m *recordingMailer) Send(ctx context.Context, msg email.Message) (string, error) {
	m.sent = append(m.sent, msg)
	return "test-message-id", nil
}

func (m *recordingMailer) SendBestEffort(ctx context.Context, msg email.Message) {
	m.sent = append(m.sent, msg)
}

// envelope mirrors the response body for decoding in tests.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Total       int64 `json:"total"`
		TotalPages  int   `json:"totalPages"`
		CurrentPage int   `json:"currentPage"`
		Limit       int   `json:"limit"`
	} `json:"pagination"`
}

func jsonUnmarshal(raw json.RawMessage, dest interface{}) error {
	return json.Unmarshal(raw, dest)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}
