package email

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Lumora-KR/rps-server/internal/config"
)

// Message is a single outbound email. To is optional: when empty, the
// configured admin address receives the message.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer applies the site-wide defaults (admin recipient, "RPS Tours" from
// display name) and hands complete MIME messages to a Sender. Delivery is a
// single attempt with no retry.
type Mailer interface {
	// Send delivers one message and returns a message identifier.
	Send(ctx context.Context, msg Message) (string, error)
	// SendBestEffort delivers one message, logging rather than returning
	// failures. Creation and update flows must never fail on email errors.
	SendBestEffort(ctx context.Context, msg Message)
}

type mailer struct {
	cfg    *config.Config
	sender Sender
}

// NewMailer creates a Mailer on top of the given Sender.
func NewMailer(cfg *config.Config, sender Sender) Mailer {
	return &mailer{cfg: cfg, sender: sender}
}

func (m *mailer) Send(ctx context.Context, msg Message) (string, error) {
	to := msg.To
	if to == "" {
		to = m.cfg.EmailTo
	}
	subject := msg.Subject
	if subject == "" {
		subject = "New Message from RPS Tours Website"
	}
	html := msg.HTML
	if html == "" {
		html = "<p>No content provided</p>"
	}

	messageID := fmt.Sprintf("<%s@rpstours>", uuid.NewString())
	raw := buildRawMessage(m.cfg.EmailFrom, to, subject, messageID, html)

	if err := m.sender.Send(ctx, []string{to}, subject, raw); err != nil {
		return "", err
	}
	return messageID, nil
}

func (m *mailer) SendBestEffort(ctx context.Context, msg Message) {
	if _, err := m.Send(ctx, msg); err != nil {
		log.Error().Err(err).Str("to", msg.To).Str("subject", msg.Subject).
			Msg("email send failed (ignored)")
	}
}

func buildRawMessage(from, to, subject, messageID, html string) []byte {
	headers := fmt.Sprintf("From: \"RPS Tours\" <%s>\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		fmt.Sprintf("Message-ID: %s\r\n", messageID) +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n"
	return []byte(headers + html + "\r\n")
}
