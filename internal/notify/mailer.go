// Package notify delivers operator notifications. The settings layer
// consumes it as a capability only; credentials are handed over per call
// and never retained or logged here.
package notify

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer sends a mail on behalf of the configured sender account.
type Mailer interface {
	Send(sender, password string, receivers []string, subject, body string) error
}

// SMTPMailer sends mail through a fixed SMTP relay.
type SMTPMailer struct {
	Host string
	Port int
}

// Send delivers one plain text mail to the receivers.
func (m *SMTPMailer) Send(sender, password string, receivers []string, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	auth := smtp.PlainAuth("", sender, password, m.Host)

	msg := strings.Join([]string{
		"From: " + sender,
		"To: " + strings.Join(receivers, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	return smtp.SendMail(addr, auth, sender, receivers, []byte(msg))
}
