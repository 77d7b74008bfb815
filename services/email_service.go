// File: /services/email_service.go
package services

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"motolinks-api/config"
)

// EmailService sends the welcome mail after registration. It is optional:
// with no SMTP host configured every send is a silent no-op, and a failed
// send is logged but never fails the request that triggered it.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
	log    *zap.Logger
}

func NewEmailService(cfg *config.Config, log *zap.Logger) *EmailService {
	var dialer *gomail.Dialer
	if cfg.SMTPHost != "" {
		dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return &EmailService{
		config: cfg,
		dialer: dialer,
		log:    log,
	}
}

func (es *EmailService) Enabled() bool { return es.dialer != nil }

// SendWelcomeEmail is meant to run in its own goroutine.
func (es *EmailService) SendWelcomeEmail(email, username string) {
	if es.dialer == nil {
		return
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", es.config.FromEmail, es.config.FromName)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to MotoLinks")
	m.SetBody("text/html", fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account is ready. Add motorcycles to your catalog and share
		them with the short links we generate for every record.</p>
	`, username))

	if err := es.dialer.DialAndSend(m); err != nil {
		es.log.Warn("welcome email failed",
			zap.String("email", email),
			zap.Error(err),
		)
	}
}
