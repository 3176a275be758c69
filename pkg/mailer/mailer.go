package mailer

import (
	"log"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/folio/pkg/config"
	"github.com/jordan-wright/email"
)

type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type smtpMailer struct {
	cfg config.Smtp
}

func NewMailer(cfg config.Smtp) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(to, subject, htmlBody string) error {
	e := email.NewEmail()
	if m.cfg.From != "" {
		e.From = m.cfg.From
	} else {
		e.From = m.cfg.User
	}
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(htmlBody)

	hostAndPort := strings.Join([]string{
		m.cfg.Host,
		strconv.Itoa(m.cfg.Port),
	}, ":")

	plainAuth := smtp.PlainAuth(
		"", // identity
		m.cfg.User,
		m.cfg.Pass,
		m.cfg.Host,
	)

	return e.Send(hostAndPort, plainAuth)
}

// consoleMailer logs instead of sending. Used when SMTP is not configured so
// local development still shows the reset link.
type consoleMailer struct{}

func (consoleMailer) Send(to, subject, htmlBody string) error {
	log.Printf("[warn] SMTP not configured, mocking email send")
	log.Printf("To: %s", to)
	log.Printf("Subject: %s", subject)
	log.Printf("--- Email Content ---\n%s\n---------------------", htmlBody)
	return nil
}

// FromConfig picks the SMTP mailer when credentials exist, else the console
// fallback.
func FromConfig(cfg config.Smtp) Mailer {
	if cfg.Host == "" || cfg.User == "" || cfg.Pass == "" {
		return consoleMailer{}
	}
	return NewMailer(cfg)
}
