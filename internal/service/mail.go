package service

import (
	"fmt"

	"contacts-api/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends verification emails over SMTP.
type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) SendVerificationMail(to, username, token string) error {
	scheme := "http"
	if m.cfg.Host.SSL {
		scheme = "https"
	}

	verifLink := fmt.Sprintf("%s://%s/api/auth/confirmed_email/%s",
		scheme, m.cfg.Host.Domain, token)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Mail.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Confirm your email")
	msg.SetBody("text/html", fmt.Sprintf(
		"Hi %s!<br><br>Click <a href='%s'>here</a> to confirm your email.<br><br>This link will expire in %s",
		username, verifLink, m.cfg.JWT.VerifyTTL))

	d := gomail.NewDialer(m.cfg.Mail.Host, m.cfg.Mail.Port, m.cfg.Mail.Username, m.cfg.Mail.Password)

	return d.DialAndSend(msg)
}
