// internal/discover/service.go

package discover

import (
	"context"
	"strings"
	"time"
)

type Service interface {
	Feed(ctx context.Context, viewerID int64, filters *Filters) ([]*Candidate, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// Feed builds the viewer's discovery feed: every other real profile,
// enriched with age and a compatibility score against the viewer's
// interests, then narrowed by the optional filters.
func (s *service) Feed(ctx context.Context, viewerID int64, filters *Filters) ([]*Candidate, error) {
	viewerInterests, err := s.repo.GetViewerInterests(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.repo.FetchCandidates(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	feed := make([]*Candidate, 0, len(candidates))
	for _, c := range candidates {
		s.enrich(c, viewerInterests, now)
		if filters == nil || matches(c, filters) {
			feed = append(feed, c)
		}
	}
	return feed, nil
}

func (s *service) enrich(c *Candidate, viewerInterests []string, now time.Time) {
	if c.Birthday != nil {
		age := AgeAt(*c.Birthday, now)
		c.Age = &age
	}

	c.Compatibility = Compatibility(viewerInterests, []string(c.Interests))

	if c.AvatarURL != nil && *c.AvatarURL != "" {
		c.Image = *c.AvatarURL
	} else {
		c.Image = DefaultAvatarURL
	}
}

// matches applies the filter set. Age bounds only exclude candidates whose
// age is actually known; the text filters compare case-insensitively,
// exact for gender and looking_for, substring for location and education.
func matches(c *Candidate, f *Filters) bool {
	if f.AgeMin > 0 && c.Age != nil && *c.Age < f.AgeMin {
		return false
	}
	if f.AgeMax > 0 && c.Age != nil && *c.Age > f.AgeMax {
		return false
	}
	if f.Gender != "" && !equalsFold(c.Gender, f.Gender) {
		return false
	}
	if f.LookingFor != "" && !equalsFold(c.LookingFor, f.LookingFor) {
		return false
	}
	if f.Location != "" && !containsFold(c.Location, f.Location) {
		return false
	}
	if f.Education != "" && !containsFold(c.Education, f.Education) {
		return false
	}
	return true
}

func equalsFold(field *string, want string) bool {
	return field != nil && strings.EqualFold(*field, want)
}

func containsFold(field *string, want string) bool {
	return field != nil && strings.Contains(strings.ToLower(*field), strings.ToLower(want))
}
