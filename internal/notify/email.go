package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

const (
	channelEmail = "email"
	leadSubject  = "Maison de Café — New lead"
)

// EmailConfig carries the SMTP settings for lead delivery.
type EmailConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
	To   string
}

// EmailNotifier emails the lead summary over SMTP.
type EmailNotifier struct {
	cfg  EmailConfig
	send func(*gomail.Message) error
}

func NewEmailNotifier(cfg EmailConfig) *EmailNotifier {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)

	return &EmailNotifier{
		cfg: cfg,
		send: func(m *gomail.Message) error {
			return dialer.DialAndSend(m)
		},
	}
}

func (e *EmailNotifier) SendLead(_ context.Context, lead Lead) []Result {
	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.From)
	m.SetHeader("To", e.cfg.To)
	m.SetHeader("Subject", leadSubject)
	m.SetBody("text/plain", lead.Summary())

	if err := e.send(m); err != nil {
		return []Result{{Channel: channelEmail, Err: fmt.Errorf("send lead email: %w", err)}}
	}

	return []Result{{Channel: channelEmail}}
}
