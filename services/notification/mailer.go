package notification

import (
	"fmt"
	"net/smtp"

	"salonix/config"
)

// Mailer delivers a single rendered email.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer implements Mailer over plain SMTP with AUTH.
type SMTPMailer struct{}

func (SMTPMailer) Send(to, subject, htmlBody string) error {
	cfg := config.AppConfig
	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		cfg.MailFrom, to, subject, htmlBody)

	if err := smtp.SendMail(addr, auth, cfg.MailFrom, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
