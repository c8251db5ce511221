// internal/notification/dispatcher.go

package notification

import (
	"context"
	"log"
	"time"
)

// Dispatcher fans a realtime event that found no open session out to the
// user's devices, with an email for the events worth one.
type Dispatcher struct {
	repo  Repository
	push  PushService
	email EmailService
	sms   SMSService
}

func NewDispatcher(repo Repository, push PushService, email EmailService, sms SMSService) *Dispatcher {
	return &Dispatcher{repo: repo, push: push, email: email, sms: sms}
}

// Dispatch delivers one offline event. Failures are logged, never
// propagated; the triggering request already succeeded.
func (d *Dispatcher) Dispatch(userID int64, event string, payload interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	title, body, emailWorthy := describeEvent(event)
	if title == "" {
		return
	}

	if d.push != nil {
		tokens, err := d.repo.TokensForUser(ctx, userID)
		if err != nil {
			log.Printf("notification: token lookup for user %d failed: %v", userID, err)
		} else if len(tokens) > 0 {
			err := d.push.SendPush(ctx, &PushNotification{
				Tokens: tokens,
				Title:  title,
				Body:   body,
				Data:   map[string]string{"event": event},
			})
			if err != nil {
				log.Printf("notification: push to user %d failed: %v", userID, err)
			}
		}
	}

	if d.email != nil && emailWorthy {
		address, err := d.repo.EmailForUser(ctx, userID)
		if err != nil {
			log.Printf("notification: email lookup for user %d failed: %v", userID, err)
			return
		}
		if address == "" {
			return
		}
		err = d.email.SendEmail(ctx, &EmailNotification{
			To:      address,
			Subject: title,
			Body:    body,
		})
		if err != nil {
			log.Printf("notification: email to user %d failed: %v", userID, err)
		}
	}

	if d.sms != nil && event == "new_match" {
		phone, err := d.repo.PhoneForUser(ctx, userID)
		if err != nil {
			log.Printf("notification: phone lookup for user %d failed: %v", userID, err)
			return
		}
		if phone == "" {
			return
		}
		err = d.sms.SendSMS(ctx, &SMSNotification{To: phone, Message: body})
		if err != nil {
			log.Printf("notification: sms to user %d failed: %v", userID, err)
		}
	}
}

func describeEvent(event string) (title, body string, emailWorthy bool) {
	switch event {
	case "message":
		return "New message", "You have a new message waiting for you.", false
	case "new_match":
		return "It's a match!", "You have a new match. Start the conversation!", true
	case "love_request":
		return "Someone likes you", "You received a new love request.", true
	}
	return "", "", false
}
