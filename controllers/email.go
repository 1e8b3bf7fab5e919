package controllers

import (
	"fmt"
	"io"

	"github.com/harish-chowdari/hospital-management/configuration"

	"github.com/go-gomail/gomail"
)

// SendEmailWithAttachment sends an email with an attachment
func SendEmailWithAttachment(subject, msg, email, attachmentName string, attachmentData []byte) error {
	senderEmail := configuration.SenderEmail()
	senderPassword := configuration.SenderPassword()

	m := gomail.NewMessage()
	m.SetHeader("From", senderEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", msg)

	m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachmentData)
		return err
	}))

	d := gomail.NewDialer("smtp.gmail.com", 587, senderEmail, senderPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}

	return nil
}
