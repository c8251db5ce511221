// internal/notification/mock.go

package notification

import (
	"context"
	"log"
)

// Mock services log instead of sending. Used in development and tests.

type MockEmailService struct{}

func NewMockEmailService() EmailService { return &MockEmailService{} }

func (s *MockEmailService) SendEmail(ctx context.Context, n *EmailNotification) error {
	log.Printf("[mock email] to=%s subject=%q", n.To, n.Subject)
	return nil
}

type MockSMSService struct{}

func NewMockSMSService() SMSService { return &MockSMSService{} }

func (s *MockSMSService) SendSMS(ctx context.Context, n *SMSNotification) error {
	log.Printf("[mock sms] to=%s message=%q", n.To, n.Message)
	return nil
}

type MockPushService struct{}

func NewMockPushService() PushService { return &MockPushService{} }

func (s *MockPushService) SendPush(ctx context.Context, n *PushNotification) error {
	log.Printf("[mock push] tokens=%d title=%q", len(n.Tokens), n.Title)
	return nil
}
