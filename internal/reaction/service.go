// internal/reaction/service.go

package reaction

import (
	"context"
	"errors"
	"fmt"
	"log"
)

var (
	ErrAlreadyReacted = errors.New("you have already reacted to this profile")
	ErrSelfReaction   = errors.New("you cannot react to your own profile")
)

type Service interface {
	// React records the verdict, or returns ErrAlreadyReacted wrapping
	// the existing kind when the pair already has one.
	React(ctx context.Context, userID, targetProfileID int64, kind string) (*Reaction, error)
	Check(ctx context.Context, userID, targetProfileID int64) (string, error)
	LikeCount(ctx context.Context, profileID int64) (int64, error)
}

type service struct {
	repo        Repository
	cache       *Cache
	profileByID func(ctx context.Context, profileID int64) (int64, error)
}

// NewService wires the reaction service. ownerOf resolves a profile id to
// its owning user id so self-reactions can be refused.
func NewService(repo Repository, cache *Cache, ownerOf func(ctx context.Context, profileID int64) (int64, error)) Service {
	return &service{repo: repo, cache: cache, profileByID: ownerOf}
}

func (s *service) React(ctx context.Context, userID, targetProfileID int64, kind string) (*Reaction, error) {
	ownerID, err := s.profileByID(ctx, targetProfileID)
	if err != nil {
		return nil, err
	}
	if ownerID == userID {
		return nil, ErrSelfReaction
	}

	rec := &Reaction{
		UserID:          userID,
		TargetProfileID: targetProfileID,
		Kind:            kind,
	}

	inserted, err := s.repo.Insert(ctx, rec)
	if err != nil {
		return nil, err
	}
	if !inserted {
		RecordDuplicateReaction()
		existing, err := s.repo.Get(ctx, userID, targetProfileID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("already reacted with %q: %w", existing.Kind, ErrAlreadyReacted)
		}
		return nil, ErrAlreadyReacted
	}

	if err := s.repo.BumpCounter(ctx, targetProfileID, kind); err != nil {
		return nil, err
	}

	if kind == KindLike && s.cache != nil {
		if err := s.cache.IncrLikeCount(ctx, targetProfileID); err != nil {
			log.Printf("reaction: cache incr for profile %d failed: %v", targetProfileID, err)
		}
	}

	RecordReaction(kind)
	return rec, nil
}

func (s *service) Check(ctx context.Context, userID, targetProfileID int64) (string, error) {
	existing, err := s.repo.Get(ctx, userID, targetProfileID)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return "", nil
	}
	return existing.Kind, nil
}

// LikeCount serves from the cache when warm, otherwise counts in the
// database and fills the cache for the next caller.
func (s *service) LikeCount(ctx context.Context, profileID int64) (int64, error) {
	if s.cache != nil {
		count, ok, err := s.cache.GetLikeCount(ctx, profileID)
		if err != nil {
			log.Printf("reaction: cache read for profile %d failed: %v", profileID, err)
		} else if ok {
			return count, nil
		}
	}

	count, err := s.repo.CountLikes(ctx, profileID)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.SetLikeCount(ctx, profileID, count); err != nil {
			log.Printf("reaction: cache fill for profile %d failed: %v", profileID, err)
		}
	}
	return count, nil
}
