// internal/match/service.go

package match

import (
	"context"
	"errors"
)

var ErrMatchNotFound = errors.New("match not found")

type Service interface {
	List(ctx context.Context, viewerID int64) ([]*MatchView, error)
	Get(ctx context.Context, matchID, viewerID int64) (*Match, error)
	IsMember(ctx context.Context, matchID, userID int64) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// List builds the viewer's inbox: every match newest first, each carrying
// the partner's summary, the latest message, and the unread count. The
// enrichment runs as three set queries over the match id list rather than
// per-match lookups.
func (s *service) List(ctx context.Context, viewerID int64) ([]*MatchView, error) {
	matches, err := s.repo.ListByUser(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return []*MatchView{}, nil
	}

	matchIDs := make([]int64, 0, len(matches))
	partnerIDs := make([]int64, 0, len(matches))
	for _, m := range matches {
		matchIDs = append(matchIDs, m.ID)
		partnerIDs = append(partnerIDs, m.Partner(viewerID))
	}

	partners, err := s.repo.PartnerSummaries(ctx, partnerIDs)
	if err != nil {
		return nil, err
	}
	lastMessages, err := s.repo.LastMessages(ctx, matchIDs)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.UnreadCounts(ctx, matchIDs, viewerID)
	if err != nil {
		return nil, err
	}

	views := make([]*MatchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, &MatchView{
			Match:       *m,
			Partner:     partners[m.Partner(viewerID)],
			LastMessage: lastMessages[m.ID],
			UnreadCount: unread[m.ID],
		})
	}
	return views, nil
}

func (s *service) Get(ctx context.Context, matchID, viewerID int64) (*Match, error) {
	m, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.User1ID != viewerID && m.User2ID != viewerID {
		return nil, ErrMatchNotFound
	}
	return m, nil
}

func (s *service) IsMember(ctx context.Context, matchID, userID int64) (bool, error) {
	return s.repo.IsMember(ctx, matchID, userID)
}
