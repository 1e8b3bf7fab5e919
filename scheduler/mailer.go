package scheduler

import (
	"fmt"

	"github.com/harish-chowdari/hospital-management/configuration"

	"github.com/go-gomail/gomail"
)

// GomailMailer sends reminder emails through the configured SMTP sender.
type GomailMailer struct{}

func (GomailMailer) Send(to, subject, body string) error {
	senderEmail := configuration.SenderEmail()
	senderPassword := configuration.SenderPassword()

	m := gomail.NewMessage()
	m.SetHeader("From", senderEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer("smtp.gmail.com", 587, senderEmail, senderPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}

	return nil
}
