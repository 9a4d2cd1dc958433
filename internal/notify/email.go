package notify

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// Mailer sends one notification email with plain-text and HTML bodies.
type Mailer interface {
	Send(subject, textBody, htmlBody string) error
}

// SMTPMailer delivers mail through an SMTP relay with STARTTLS.
type SMTPMailer struct {
	cfg EmailConfig
}

// NewSMTPMailer creates a mailer for the given SMTP settings.
func NewSMTPMailer(cfg EmailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send builds and sends the message to the configured recipient.
func (m *SMTPMailer) Send(subject, textBody, htmlBody string) error {
	sender := m.cfg.SenderName
	if sender == "" {
		sender = "easwatch"
	}

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("%s <%s>", sender, m.cfg.SMTPUser)
	mail.To = []string{m.cfg.Recipient}
	mail.Subject = subject
	mail.Text = []byte(textBody)
	mail.HTML = []byte(htmlBody)

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)
	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPassword, m.cfg.SMTPHost)
	return mail.SendWithStartTLS(addr, auth, &tls.Config{ServerName: m.cfg.SMTPHost})
}
