// internal/discover/service_test.go

package discover

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	candidates      []*Candidate
	viewerInterests []string
}

func (f *fakeRepository) FetchCandidates(ctx context.Context, viewerID int64) ([]*Candidate, error) {
	out := []*Candidate{}
	for _, c := range f.candidates {
		if c.UserID != viewerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetViewerInterests(ctx context.Context, viewerID int64) ([]string, error) {
	return f.viewerInterests, nil
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func newTestService(repo *fakeRepository, now time.Time) Service {
	return &service{repo: repo, now: func() time.Time { return now }}
}

func TestFeedExcludesViewer(t *testing.T) {
	repo := &fakeRepository{
		candidates: []*Candidate{
			{UserID: 1, FirstName: strPtr("Ada")},
			{UserID: 2, FirstName: strPtr("Ben")},
		},
	}
	svc := newTestService(repo, time.Now())

	feed, err := svc.Feed(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, int64(2), feed[0].UserID)
}

func TestFeedEnrichment(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	avatar := "https://cdn.example.com/ben.jpg"
	repo := &fakeRepository{
		viewerInterests: []string{"hiking", "jazz"},
		candidates: []*Candidate{
			{
				UserID:    2,
				FirstName: strPtr("Ben"),
				Birthday:  timePtr(time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)),
				Interests: []string{"jazz", "sailing"},
				AvatarURL: &avatar,
			},
			{
				UserID:    3,
				FirstName: strPtr("Cara"),
			},
		},
	}
	svc := newTestService(repo, now)

	feed, err := svc.Feed(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	ben := feed[0]
	require.NotNil(t, ben.Age)
	assert.Equal(t, 24, *ben.Age)
	assert.Equal(t, 66, ben.Compatibility)
	assert.Equal(t, avatar, ben.Image)

	cara := feed[1]
	assert.Nil(t, cara.Age)
	assert.Equal(t, DefaultAvatarURL, cara.Image)
	assert.GreaterOrEqual(t, cara.Compatibility, 60)
	assert.Less(t, cara.Compatibility, 90)
}

func TestFeedFilters(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepository{
		candidates: []*Candidate{
			{
				UserID:    2,
				FirstName: strPtr("Ben"),
				Birthday:  timePtr(time.Date(1994, 1, 1, 0, 0, 0, 0, time.UTC)),
				Gender:    strPtr("Male"),
				Location:  strPtr("Lagos, Nigeria"),
			},
			{
				UserID:    3,
				FirstName: strPtr("Cara"),
				Birthday:  timePtr(time.Date(2002, 1, 1, 0, 0, 0, 0, time.UTC)),
				Gender:    strPtr("Female"),
				Location:  strPtr("Abuja"),
			},
			{
				// No birthday: age filters must not exclude her.
				UserID:    4,
				FirstName: strPtr("Dee"),
				Gender:    strPtr("female"),
				Location:  strPtr("Lagos Island"),
			},
		},
	}
	svc := newTestService(repo, now)

	feed, err := svc.Feed(context.Background(), 1, &Filters{AgeMin: 25, AgeMax: 40})
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, int64(2), feed[0].UserID)
	assert.Equal(t, int64(4), feed[1].UserID)

	feed, err = svc.Feed(context.Background(), 1, &Filters{Gender: "FEMALE"})
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, int64(3), feed[0].UserID)
	assert.Equal(t, int64(4), feed[1].UserID)

	feed, err = svc.Feed(context.Background(), 1, &Filters{Location: "lagos"})
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, int64(2), feed[0].UserID)
	assert.Equal(t, int64(4), feed[1].UserID)

	feed, err = svc.Feed(context.Background(), 1, &Filters{Gender: "female", Location: "lagos"})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, int64(4), feed[0].UserID)
}
