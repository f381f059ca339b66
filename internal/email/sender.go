package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog/log"

	"github.com/Lumora-KR/rps-server/internal/config"
)

// Sender defines the interface for sending emails.
// The rawMessage parameter contains the full email message, including
// headers and body, properly formatted.
type Sender interface {
	Send(ctx context.Context, to []string, subject string, rawMessage []byte) error
}

// SMTPSender implements the Sender interface using Go's net/smtp package.
type SMTPSender struct {
	cfg  *config.Config
	auth smtp.Auth
	addr string
}

// NewSMTPSender creates a new SMTPSender. When no SMTP host is configured it
// returns a LoggingSender instead, so development setups still "send" mail.
func NewSMTPSender(cfg *config.Config) Sender {
	if cfg.EmailHost == "" {
		log.Info().Msg("SMTP host not configured, using logging email sender")
		return &LoggingSender{cfg: cfg}
	}

	auth := smtp.PlainAuth(
		"", // identity
		cfg.EmailUser,
		cfg.EmailPass,
		cfg.EmailHost,
	)
	addr := fmt.Sprintf("%s:%d", cfg.EmailHost, cfg.EmailPort)

	return &SMTPSender{
		cfg:  cfg,
		auth: auth,
		addr: addr,
	}
}

// Send sends an email using SMTP. EMAIL_SECURE selects implicit TLS (port
// 465 servers); otherwise delivery goes through smtp.SendMail, which
// upgrades via STARTTLS when the server offers it.
func (s *SMTPSender) Send(ctx context.Context, to []string, subject string, rawMessage []byte) error {
	var err error
	if s.cfg.EmailSecure {
		err = s.sendImplicitTLS(to, rawMessage)
	} else {
		err = smtp.SendMail(s.addr, s.auth, s.cfg.EmailFrom, to, rawMessage)
	}
	if err != nil {
		log.Error().Err(err).Strs("to", to).Msg("failed to send email via SMTP")
		return fmt.Errorf("smtp error: %w", err)
	}
	log.Info().Strs("to", to).Str("subject", subject).Msg("email sent via SMTP")
	return nil
}

// sendImplicitTLS opens the TLS connection up front and then runs the SMTP
// dialogue over it.
func (s *SMTPSender) sendImplicitTLS(to []string, rawMessage []byte) error {
	conn, err := tls.Dial("tcp", s.addr, &tls.Config{ServerName: s.cfg.EmailHost})
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, s.cfg.EmailHost)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if err := client.Auth(s.auth); err != nil {
		return err
	}
	if err := client.Mail(s.cfg.EmailFrom); err != nil {
		return err
	}
	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(rawMessage); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

// LoggingSender is a development implementation that logs email details
// instead of sending them.
type LoggingSender struct {
	cfg *config.Config
}

// Send logs the email details instead of sending.
func (s *LoggingSender) Send(ctx context.Context, to []string, subject string, rawMessage []byte) error {
	log.Info().
		Strs("to", to).
		Str("subject", subject).
		Str("from", s.cfg.EmailFrom).
		Str("body", string(rawMessage)).
		Msg("email logged (not sent)")
	return nil
}
