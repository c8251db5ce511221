// internal/chat/service.go

package chat

import (
	"context"
	"errors"
	"log"
	"strings"
)

var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrNotParticipant = errors.New("you are not part of this conversation")
	ErrEmptyMessage   = errors.New("message cannot be empty")
	ErrMessageQuota   = errors.New("free message limit reached, upgrade to premium to continue")
)

// Broadcaster pushes realtime events to users' open sessions.
type Broadcaster interface {
	SendToUser(userID int64, event string, payload interface{})
}

// SentMessage is a created message plus the sender's quota standing, so
// the client can warn without a second round trip.
type SentMessage struct {
	Message *Message     `json:"message"`
	Quota   *QuotaStatus `json:"quota,omitempty"`
}

type Service interface {
	History(ctx context.Context, matchID, viewerID int64) ([]*Message, error)
	Send(ctx context.Context, matchID, senderID int64, content string) (*SentMessage, error)
	Quota(ctx context.Context, matchID, userID int64) (*QuotaStatus, error)
	MarkRead(ctx context.Context, matchID, readerID int64) error
}

// Config carries the free tier rules.
type Config struct {
	FreeMessageLimit   int
	QuotaWarnRemaining int
}

type service struct {
	repo        Repository
	cfg         Config
	broadcaster Broadcaster
	isPremium   func(ctx context.Context, userID int64) (bool, error)
}

func NewService(repo Repository, cfg Config, broadcaster Broadcaster, isPremium func(ctx context.Context, userID int64) (bool, error)) Service {
	return &service{repo: repo, cfg: cfg, broadcaster: broadcaster, isPremium: isPremium}
}

func (s *service) participants(ctx context.Context, matchID, userID int64) (int64, error) {
	user1, user2, err := s.repo.Participants(ctx, matchID)
	if err != nil {
		return 0, err
	}
	switch userID {
	case user1:
		return user2, nil
	case user2:
		return user1, nil
	}
	return 0, ErrNotParticipant
}

// History returns the conversation oldest first and marks the partner's
// messages read in the background.
func (s *service) History(ctx context.Context, matchID, viewerID int64) ([]*Message, error) {
	if _, err := s.participants(ctx, matchID, viewerID); err != nil {
		return nil, err
	}

	messages, err := s.repo.History(ctx, matchID)
	if err != nil {
		return nil, err
	}

	go func() {
		if _, err := s.repo.MarkRead(context.Background(), matchID, viewerID); err != nil {
			log.Printf("chat: mark read for match %d failed: %v", matchID, err)
		}
	}()

	return messages, nil
}

func (s *service) Send(ctx context.Context, matchID, senderID int64, content string) (*SentMessage, error) {
	partnerID, err := s.participants(ctx, matchID, senderID)
	if err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	quota, err := s.Quota(ctx, matchID, senderID)
	if err != nil {
		return nil, err
	}
	if !quota.Premium && quota.Remaining <= 0 {
		RecordQuotaBlocked()
		return nil, ErrMessageQuota
	}

	msg := &Message{
		MatchID:  matchID,
		SenderID: senderID,
		Content:  content,
	}
	if err := s.repo.Insert(ctx, msg); err != nil {
		return nil, err
	}

	RecordMessageSent()

	if !quota.Premium {
		quota.Used++
		quota.Remaining--
		quota.Warn = quota.Remaining <= int64(s.cfg.QuotaWarnRemaining)
	}

	// Both sides get the stored row, the sender included, so every
	// session renders the same ids and timestamps.
	if s.broadcaster != nil {
		s.broadcaster.SendToUser(partnerID, WSTypeMessage, msg)
		s.broadcaster.SendToUser(senderID, WSTypeMessage, msg)
	}

	sent := &SentMessage{Message: msg}
	if !quota.Premium {
		sent.Quota = quota
	}
	return sent, nil
}

// Quota reports the sender's standing in this match. Premium users are
// never capped.
func (s *service) Quota(ctx context.Context, matchID, userID int64) (*QuotaStatus, error) {
	premium, err := s.isPremium(ctx, userID)
	if err != nil {
		return nil, err
	}
	if premium {
		return &QuotaStatus{Premium: true}, nil
	}

	used, err := s.repo.CountSentByUser(ctx, matchID, userID)
	if err != nil {
		return nil, err
	}

	remaining := int64(s.cfg.FreeMessageLimit) - used
	if remaining < 0 {
		remaining = 0
	}

	return &QuotaStatus{
		Limit:     s.cfg.FreeMessageLimit,
		Used:      used,
		Remaining: remaining,
		Warn:      remaining <= int64(s.cfg.QuotaWarnRemaining),
	}, nil
}

func (s *service) MarkRead(ctx context.Context, matchID, readerID int64) error {
	if _, err := s.participants(ctx, matchID, readerID); err != nil {
		return err
	}
	_, err := s.repo.MarkRead(ctx, matchID, readerID)
	return err
}
