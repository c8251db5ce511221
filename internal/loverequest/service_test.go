// internal/loverequest/service_test.go

package loverequest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	requests    map[int64]*LoveRequest
	nextID      int64
	nextMatchID int64
	matchPairs  map[[2]int64]int64
	summaries   map[int64]*SenderSummary
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		requests:   map[int64]*LoveRequest{},
		matchPairs: map[[2]int64]int64{},
		summaries:  map[int64]*SenderSummary{},
	}
}

func (f *fakeRepository) Insert(ctx context.Context, req *LoveRequest) error {
	f.nextID++
	req.ID = f.nextID
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	stored := *req
	f.requests[req.ID] = &stored
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id int64) (*LoveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, ErrRequestNotFound
	}
	copied := *req
	return &copied, nil
}

func (f *fakeRepository) FindBetween(ctx context.Context, userA, userB int64) (*LoveRequest, error) {
	var latest *LoveRequest
	for _, req := range f.requests {
		sameDir := req.SenderID == userA && req.ReceiverID == userB
		reverse := req.SenderID == userB && req.ReceiverID == userA
		if !sameDir && !reverse {
			continue
		}
		if latest == nil || req.CreatedAt.After(latest.CreatedAt) {
			latest = req
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeRepository) Accept(ctx context.Context, req *LoveRequest) (int64, bool, error) {
	stored, ok := f.requests[req.ID]
	if !ok || stored.Status != StatusPending {
		return 0, false, nil
	}
	stored.Status = StatusAccepted

	user1, user2 := req.SenderID, req.ReceiverID
	if user1 > user2 {
		user1, user2 = user2, user1
	}
	pair := [2]int64{user1, user2}
	if id, exists := f.matchPairs[pair]; exists {
		return id, true, nil
	}
	f.nextMatchID++
	f.matchPairs[pair] = f.nextMatchID
	return f.nextMatchID, true, nil
}

func (f *fakeRepository) Reject(ctx context.Context, requestID int64) (bool, error) {
	stored, ok := f.requests[requestID]
	if !ok || stored.Status != StatusPending {
		return false, nil
	}
	stored.Status = StatusRejected
	return true, nil
}

func (f *fakeRepository) ListPending(ctx context.Context, receiverID int64) ([]*LoveRequest, error) {
	out := []*LoveRequest{}
	for _, req := range f.requests {
		if req.ReceiverID == receiverID && req.Status == StatusPending {
			copied := *req
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListSent(ctx context.Context, senderID int64) ([]*LoveRequest, error) {
	out := []*LoveRequest{}
	for _, req := range f.requests {
		if req.SenderID == senderID {
			copied := *req
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepository) SenderSummaries(ctx context.Context, userIDs []int64) (map[int64]*SenderSummary, error) {
	out := map[int64]*SenderSummary{}
	for _, id := range userIDs {
		if s, ok := f.summaries[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

type recordedEvent struct {
	userID  int64
	event   string
	payload interface{}
}

type fakeNotifier struct {
	events []recordedEvent
}

func (f *fakeNotifier) SendToUser(userID int64, event string, payload interface{}) {
	f.events = append(f.events, recordedEvent{userID, event, payload})
}

func TestSendCreatesPending(t *testing.T) {
	repo := newFakeRepository()
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier)

	req, err := svc.Send(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, req.Status)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, int64(2), notifier.events[0].userID)
	assert.Equal(t, "love_request", notifier.events[0].event)
}

func TestSendRefusals(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	_, err := svc.Send(ctx, 1, 1)
	assert.ErrorIs(t, err, ErrSelfRequest)

	_, err = svc.Send(ctx, 1, 2)
	require.NoError(t, err)

	// Duplicate while pending, in both directions.
	_, err = svc.Send(ctx, 1, 2)
	assert.ErrorIs(t, err, ErrRequestPending)
	_, err = svc.Send(ctx, 2, 1)
	assert.ErrorIs(t, err, ErrRequestPending)
}

func TestSendAfterAcceptRefused(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	req, err := svc.Send(ctx, 1, 2)
	require.NoError(t, err)
	_, _, err = svc.Respond(ctx, req.ID, 2, true)
	require.NoError(t, err)

	_, err = svc.Send(ctx, 1, 2)
	assert.ErrorIs(t, err, ErrAlreadyMatched)
	_, err = svc.Send(ctx, 2, 1)
	assert.ErrorIs(t, err, ErrAlreadyMatched)
}

func TestSendAfterRejectRefused(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	req, err := svc.Send(ctx, 1, 2)
	require.NoError(t, err)
	_, _, err = svc.Respond(ctx, req.ID, 2, false)
	require.NoError(t, err)

	_, err = svc.Send(ctx, 1, 2)
	assert.ErrorIs(t, err, ErrPreviouslyDeclined)
}

func TestRespondAcceptCreatesMatchAndNotifiesBoth(t *testing.T) {
	repo := newFakeRepository()
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier)
	ctx := context.Background()

	req, err := svc.Send(ctx, 1, 2)
	require.NoError(t, err)
	notifier.events = nil

	resolved, matchID, err := svc.Respond(ctx, req.ID, 2, true)
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, resolved.Status)
	assert.NotZero(t, matchID)

	require.Len(t, notifier.events, 2)
	recipients := []int64{notifier.events[0].userID, notifier.events[1].userID}
	assert.ElementsMatch(t, []int64{1, 2}, recipients)
	for _, ev := range notifier.events {
		assert.Equal(t, "new_match", ev.event)
	}
}

func TestRespondOnlyReceiver(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	req, err := svc.Send(ctx, 1, 2)
	require.NoError(t, err)

	_, _, err = svc.Respond(ctx, req.ID, 1, true)
	assert.ErrorIs(t, err, ErrNotReceiver)
	_, _, err = svc.Respond(ctx, req.ID, 3, true)
	assert.ErrorIs(t, err, ErrNotReceiver)
}

func TestRespondExactlyOnce(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	req, err := svc.Send(ctx, 1, 2)
	require.NoError(t, err)

	_, _, err = svc.Respond(ctx, req.ID, 2, false)
	require.NoError(t, err)

	_, _, err = svc.Respond(ctx, req.ID, 2, true)
	assert.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestStatusEitherDirection(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	status, err := svc.Status(ctx, 1, 2)
	require.NoError(t, err)
	assert.Empty(t, status)

	_, err = svc.Send(ctx, 1, 2)
	require.NoError(t, err)

	status, err = svc.Status(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status)
}

func TestPendingEnrichedWithSenders(t *testing.T) {
	repo := newFakeRepository()
	name := "Ada"
	repo.summaries[1] = &SenderSummary{UserID: 1, FirstName: &name}
	svc := NewService(repo, nil)
	ctx := context.Background()

	_, err := svc.Send(ctx, 1, 2)
	require.NoError(t, err)

	pending, err := svc.Pending(ctx, 2)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.NotNil(t, pending[0].Sender)
	assert.Equal(t, "Ada", *pending[0].Sender.FirstName)
}
