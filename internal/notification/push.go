// internal/notification/push.go

package notification

import (
	"context"
	"errors"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMPushService implements push notifications using Firebase Cloud Messaging
type FCMPushService struct {
	client *messaging.Client
}

// NewFCMPushService creates a new FCM push service
func NewFCMPushService(ctx context.Context, credentialsPath string) (PushService, error) {
	if credentialsPath == "" {
		return nil, errors.New("firebase credentials path must be set")
	}

	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &FCMPushService{client: client}, nil
}

// SendPush sends a push notification to the given device tokens.
func (s *FCMPushService) SendPush(ctx context.Context, notification *PushNotification) error {
	if len(notification.Tokens) == 0 {
		return errors.New("no tokens provided")
	}

	message := &messaging.MulticastMessage{
		Tokens: notification.Tokens,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: notification.Data,
	}

	resp, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send push: %w", err)
	}
	if resp.FailureCount > 0 {
		log.Printf("Push delivered to %d/%d devices", resp.SuccessCount, len(notification.Tokens))
	}
	return nil
}
