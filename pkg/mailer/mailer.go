package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"trip-booking/pkg/utils"
)

// Mailer sends transactional email. The auth service only depends on this
// interface so tests can drop in a no-op.
type Mailer interface {
	Send(toEmail, toName, subject, plainText, htmlContent string) error
}

type sendGridMailer struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridMailer(cfg utils.MailConfig) Mailer {
	return &sendGridMailer{
		apiKey:    cfg.SendGridKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (m *sendGridMailer) Send(toEmail, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
