package services

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gomail/gomail"
)

// Mailer is the outbound mail dependency of the account and booking flows.
type Mailer interface {
	Send(to, subject, body string) error
	SendWithAttachment(to, subject, body, attachmentName string, attachmentData []byte) error
}

// EmailService sends outbound mail over SMTP. Credentials come from the
// Email and Password environment variables.
type EmailService struct {
	host     string
	port     int
	from     string
	password string
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:     "smtp.gmail.com",
		port:     587,
		from:     os.Getenv("Email"),
		password: os.Getenv("Password"),
	}
}

func (e *EmailService) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(e.host, e.port, e.from, e.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}

func (e *EmailService) SendWithAttachment(to, subject, body, attachmentName string, attachmentData []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachmentData)
		return err
	}))

	d := gomail.NewDialer(e.host, e.port, e.from, e.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}
