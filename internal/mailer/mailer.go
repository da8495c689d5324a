// Package mailer sends transactional mail through the provider configured
// per event. Only the SMTP provider is implemented in-process; hosted
// providers are reached through their own HTTP APIs and stay behind the
// same interface.
package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/models"
)

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers messages through one configured provider.
type Sender interface {
	Send(msg Message) error
}

// New builds a sender from the stored per-event settings.
func New(settings *models.EmailSettings) (Sender, error) {
	switch settings.Provider {
	case models.ProviderSMTP, "":
		if settings.Host == "" || settings.FromAddress == "" {
			return nil, fmt.Errorf("smtp settings incomplete: host and from address are required")
		}
		return &smtpSender{settings: settings}, nil
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", settings.Provider)
	}
}

type smtpSender struct {
	settings *models.EmailSettings
}

func (s *smtpSender) Send(msg Message) error {
	cfg := s.settings
	port := cfg.Port
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", cfg.Host, port)

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Secret, cfg.Host)
	}

	from := cfg.FromAddress
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress)
	}

	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from, msg.To, msg.Subject, msg.Body)

	if err := smtp.SendMail(addr, auth, cfg.FromAddress, []string{msg.To}, []byte(body)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// RegistrationConfirmation composes the mail sent after a successful
// public registration.
func RegistrationConfirmation(event *models.Event, p *models.Participant) Message {
	return Message{
		To:      p.Email,
		Subject: fmt.Sprintf("You're registered for %s", event.Name),
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour registration for %s is confirmed.\n\nYour check-in code: %s\n\nShow the QR code attached to this code at the entrance.\n",
			p.FullName, event.Name, p.CheckinCode),
	}
}
