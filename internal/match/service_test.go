// internal/match/service_test.go

package match

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	matches      []*Match
	summaries    map[int64]*PartnerSummary
	lastMessages map[int64]*LastMessage
	unread       map[int64]int64
}

func (f *fakeRepository) ListByUser(ctx context.Context, userID int64) ([]*Match, error) {
	out := []*Match{}
	for _, m := range f.matches {
		if m.User1ID == userID || m.User2ID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id int64) (*Match, error) {
	for _, m := range f.matches {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, ErrMatchNotFound
}

func (f *fakeRepository) IsMember(ctx context.Context, matchID, userID int64) (bool, error) {
	for _, m := range f.matches {
		if m.ID == matchID {
			return m.User1ID == userID || m.User2ID == userID, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) PartnerSummaries(ctx context.Context, userIDs []int64) (map[int64]*PartnerSummary, error) {
	out := map[int64]*PartnerSummary{}
	for _, id := range userIDs {
		if s, ok := f.summaries[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func (f *fakeRepository) LastMessages(ctx context.Context, matchIDs []int64) (map[int64]*LastMessage, error) {
	out := map[int64]*LastMessage{}
	for _, id := range matchIDs {
		if m, ok := f.lastMessages[id]; ok {
			out[id] = m
		}
	}
	return out, nil
}

func (f *fakeRepository) UnreadCounts(ctx context.Context, matchIDs []int64, viewerID int64) (map[int64]int64, error) {
	out := map[int64]int64{}
	for _, id := range matchIDs {
		if n, ok := f.unread[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

func TestListEnrichesForViewer(t *testing.T) {
	name := "Ben"
	repo := &fakeRepository{
		matches: []*Match{
			{ID: 10, User1ID: 1, User2ID: 2, CreatedAt: time.Now()},
			{ID: 11, User1ID: 2, User2ID: 3, CreatedAt: time.Now()},
		},
		summaries: map[int64]*PartnerSummary{
			2: {UserID: 2, FirstName: &name},
		},
		lastMessages: map[int64]*LastMessage{
			10: {MatchID: 10, SenderID: 2, Content: "hey"},
		},
		unread: map[int64]int64{10: 3},
	}
	svc := NewService(repo)

	views, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, int64(10), v.ID)
	require.NotNil(t, v.Partner)
	assert.Equal(t, int64(2), v.Partner.UserID)
	require.NotNil(t, v.LastMessage)
	assert.Equal(t, "hey", v.LastMessage.Content)
	assert.Equal(t, int64(3), v.UnreadCount)
}

func TestListEmpty(t *testing.T) {
	svc := NewService(&fakeRepository{})

	views, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestGetHidesForeignMatch(t *testing.T) {
	repo := &fakeRepository{
		matches: []*Match{{ID: 10, User1ID: 1, User2ID: 2}},
	}
	svc := NewService(repo)

	_, err := svc.Get(context.Background(), 10, 3)
	assert.ErrorIs(t, err, ErrMatchNotFound)

	m, err := svc.Get(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), m.ID)
}

func TestPartner(t *testing.T) {
	m := &Match{User1ID: 1, User2ID: 2}
	assert.Equal(t, int64(2), m.Partner(1))
	assert.Equal(t, int64(1), m.Partner(2))
}
