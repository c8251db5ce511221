// internal/loverequest/service.go

package loverequest

import (
	"context"
	"errors"
)

var (
	ErrSelfRequest        = errors.New("you cannot send a love request to yourself")
	ErrRequestPending     = errors.New("love request already sent")
	ErrAlreadyMatched     = errors.New("you are already matched with this user")
	ErrPreviouslyDeclined = errors.New("this request was previously declined")
	ErrRequestNotFound    = errors.New("love request not found")
	ErrNotReceiver        = errors.New("only the receiver can respond to this request")
	ErrAlreadyResolved    = errors.New("this request has already been resolved")
)

// Notifier delivers realtime events to a user's open sessions. Delivery is
// best effort; a user with no sessions just misses the event.
type Notifier interface {
	SendToUser(userID int64, event string, payload interface{})
}

type Service interface {
	Send(ctx context.Context, senderID, receiverID int64) (*LoveRequest, error)
	// Respond resolves a pending request. On accept it returns the id of
	// the match created alongside.
	Respond(ctx context.Context, requestID, callerID int64, accept bool) (*LoveRequest, int64, error)
	Status(ctx context.Context, callerID, otherUserID int64) (string, error)
	Pending(ctx context.Context, userID int64) ([]*PendingRequest, error)
	Sent(ctx context.Context, userID int64) ([]*LoveRequest, error)
}

type service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository, notifier Notifier) Service {
	return &service{repo: repo, notifier: notifier}
}

func (s *service) Send(ctx context.Context, senderID, receiverID int64) (*LoveRequest, error) {
	if senderID == receiverID {
		return nil, ErrSelfRequest
	}

	existing, err := s.repo.FindBetween(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case StatusPending:
			return nil, ErrRequestPending
		case StatusAccepted:
			return nil, ErrAlreadyMatched
		case StatusRejected:
			return nil, ErrPreviouslyDeclined
		}
	}

	req := &LoveRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     StatusPending,
	}
	if err := s.repo.Insert(ctx, req); err != nil {
		return nil, err
	}

	RecordRequestSent()

	if s.notifier != nil {
		s.notifier.SendToUser(receiverID, "love_request", req)
	}
	return req, nil
}

func (s *service) Respond(ctx context.Context, requestID, callerID int64, accept bool) (*LoveRequest, int64, error) {
	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, 0, err
	}
	if req.ReceiverID != callerID {
		return nil, 0, ErrNotReceiver
	}
	if req.Status != StatusPending {
		return nil, 0, ErrAlreadyResolved
	}

	if !accept {
		transitioned, err := s.repo.Reject(ctx, requestID)
		if err != nil {
			return nil, 0, err
		}
		if !transitioned {
			return nil, 0, ErrAlreadyResolved
		}
		req.Status = StatusRejected
		RecordRequestResolved(StatusRejected)
		return req, 0, nil
	}

	matchID, transitioned, err := s.repo.Accept(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	if !transitioned {
		// A concurrent responder won the pending->resolved race.
		return nil, 0, ErrAlreadyResolved
	}

	req.Status = StatusAccepted
	RecordRequestResolved(StatusAccepted)
	RecordMatchCreated()

	if s.notifier != nil {
		payload := map[string]interface{}{
			"match_id":   matchID,
			"request_id": req.ID,
		}
		s.notifier.SendToUser(req.SenderID, "new_match", payload)
		s.notifier.SendToUser(req.ReceiverID, "new_match", payload)
	}
	return req, matchID, nil
}

// Status reports where the pair stands, in either direction. An empty
// string means no request exists between them.
func (s *service) Status(ctx context.Context, callerID, otherUserID int64) (string, error) {
	existing, err := s.repo.FindBetween(ctx, callerID, otherUserID)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return "", nil
	}
	return existing.Status, nil
}

func (s *service) Pending(ctx context.Context, userID int64) ([]*PendingRequest, error) {
	requests, err := s.repo.ListPending(ctx, userID)
	if err != nil {
		return nil, err
	}

	senderIDs := make([]int64, 0, len(requests))
	for _, req := range requests {
		senderIDs = append(senderIDs, req.SenderID)
	}

	summaries, err := s.repo.SenderSummaries(ctx, senderIDs)
	if err != nil {
		return nil, err
	}

	enriched := make([]*PendingRequest, 0, len(requests))
	for _, req := range requests {
		enriched = append(enriched, &PendingRequest{
			LoveRequest: *req,
			Sender:      summaries[req.SenderID],
		})
	}
	return enriched, nil
}

func (s *service) Sent(ctx context.Context, userID int64) ([]*LoveRequest, error) {
	return s.repo.ListSent(ctx, userID)
}
