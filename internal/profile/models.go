// internal/profile/models.go

package profile

import (
	"time"

	"github.com/lib/pq"
)

// Profile is a user's public-facing dating identity record.
// One row per user, created lazily on first authenticated access.
type Profile struct {
	ID           int64          `json:"id" db:"id"`
	UserID       int64          `json:"user_id" db:"user_id"`
	FirstName    *string        `json:"first_name" db:"first_name"`
	LastName     *string        `json:"last_name" db:"last_name"`
	Birthday     *time.Time     `json:"birthday" db:"birthday"`
	Gender       *string        `json:"gender" db:"gender"`
	Location     *string        `json:"location" db:"location"`
	LookingFor   *string        `json:"looking_for" db:"looking_for"`
	Education    *string        `json:"education" db:"education"`
	Bio          *string        `json:"bio" db:"bio"`
	Interests    pq.StringArray `json:"interests" db:"interests"`
	AvatarURL    *string        `json:"avatar_url" db:"avatar_url"`
	IsVerified   bool           `json:"is_verified" db:"is_verified"`
	IsPremium    bool           `json:"is_premium" db:"is_premium"`
	LikeCount    int            `json:"like_count" db:"like_count"`
	DislikeCount int            `json:"dislike_count" db:"dislike_count"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// UpdateProfileRequest carries an owner's partial profile edit.
// Nil fields are left untouched; writes are last-write-wins.
type UpdateProfileRequest struct {
	FirstName  *string  `json:"first_name" validate:"omitempty,max=50"`
	LastName   *string  `json:"last_name" validate:"omitempty,max=50"`
	Birthday   *string  `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Gender     *string  `json:"gender" validate:"omitempty,max=30"`
	Location   *string  `json:"location" validate:"omitempty,max=100"`
	LookingFor *string  `json:"looking_for" validate:"omitempty,max=100"`
	Education  *string  `json:"education" validate:"omitempty,max=100"`
	Bio        *string  `json:"bio" validate:"omitempty,max=1000"`
	Interests  []string `json:"interests" validate:"omitempty,max=20,dive,min=1,max=40"`
}
