package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/Lumora-KR/rps-server/internal/email"
	"github.com/Lumora-KR/rps-server/internal/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return utils.SetupTestDB(t)
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
