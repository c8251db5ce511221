// internal/notification/models.go

package notification

import (
	"context"
	"time"
)

// EmailNotification represents an email to be sent
type EmailNotification struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	HTML    string `json:"html,omitempty"`
}

// SMSNotification represents an SMS to be sent
type SMSNotification struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// PushNotification represents a push notification to be sent
type PushNotification struct {
	Tokens []string          `json:"tokens"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data,omitempty"`
}

// DeviceToken binds a user to one of their device push tokens.
type DeviceToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Token     string    `json:"token" db:"token"`
	Platform  string    `json:"platform" db:"platform"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type RegisterTokenRequest struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// EmailService sends email notifications
type EmailService interface {
	SendEmail(ctx context.Context, notification *EmailNotification) error
}

// SMSService sends SMS notifications
type SMSService interface {
	SendSMS(ctx context.Context, notification *SMSNotification) error
}

// PushService sends push notifications
type PushService interface {
	SendPush(ctx context.Context, notification *PushNotification) error
}
