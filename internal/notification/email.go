// internal/notification/email.go

package notification

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"gopkg.in/gomail.v2"
)

// SMTPEmailService implements email notifications using SMTP
type SMTPEmailService struct {
	from     string
	fromName string
	dialer   *gomail.Dialer
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// NewSMTPEmailService creates a new SMTP email service
func NewSMTPEmailService(cfg SMTPConfig) (EmailService, error) {
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" || cfg.From == "" {
		return nil, fmt.Errorf("incomplete SMTP configuration")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.FromName == "" {
		cfg.FromName = "LoveLink"
	}

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.TLSConfig = &tls.Config{InsecureSkipVerify: false}

	return &SMTPEmailService{
		from:     cfg.From,
		fromName: cfg.FromName,
		dialer:   dialer,
	}, nil
}

// SendEmail sends a single email
func (s *SMTPEmailService) SendEmail(ctx context.Context, notification *EmailNotification) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.from, s.fromName))
	m.SetHeader("To", notification.To)
	m.SetHeader("Subject", notification.Subject)

	if notification.HTML != "" {
		m.SetBody("text/html", notification.HTML)
		if notification.Body != "" {
			m.AddAlternative("text/plain", notification.Body)
		}
	} else {
		m.SetBody("text/plain", notification.Body)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("Failed to send email to %s: %v", notification.To, err)
		return err
	}
	return nil
}

// SendGridEmailService implements email notifications using SendGrid
type SendGridEmailService struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

// NewSendGridEmailService creates a new SendGrid email service
func NewSendGridEmailService(apiKey, from, fromName string) (EmailService, error) {
	if apiKey == "" || from == "" {
		return nil, fmt.Errorf("incomplete SendGrid configuration")
	}
	if fromName == "" {
		fromName = "LoveLink"
	}

	return &SendGridEmailService{
		client:   sendgrid.NewSendClient(apiKey),
		from:     from,
		fromName: fromName,
	}, nil
}

// SendEmail sends a single email via SendGrid
func (s *SendGridEmailService) SendEmail(ctx context.Context, notification *EmailNotification) error {
	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail("", notification.To)
	message := mail.NewSingleEmail(from, notification.Subject, to, notification.Body, notification.HTML)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		log.Printf("Failed to send email to %s: %v", notification.To, err)
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
