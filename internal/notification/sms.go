// internal/notification/sms.go

package notification

import (
	"context"
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSMSService implements SMS notifications using Twilio
type TwilioSMSService struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSMSService creates a new Twilio SMS service
func NewTwilioSMSService(accountSID, authToken, from string) (SMSService, error) {
	if accountSID == "" || authToken == "" || from == "" {
		return nil, fmt.Errorf("incomplete Twilio configuration")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSMSService{client: client, from: from}, nil
}

// SendSMS sends a single SMS
func (s *TwilioSMSService) SendSMS(ctx context.Context, notification *SMSNotification) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(notification.To)
	params.SetFrom(s.from)
	params.SetBody(notification.Message)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send SMS to %s: %v", notification.To, err)
		return err
	}
	return nil
}
