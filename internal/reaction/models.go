// internal/reaction/models.go

package reaction

import "time"

const (
	KindLike    = "like"
	KindDislike = "dislike"
)

// Reaction records one user's verdict on a profile. At most one row per
// (user, target) pair; a reaction is never changed once stored.
type Reaction struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	TargetProfileID int64     `json:"target_profile_id" db:"target_profile_id"`
	Kind            string    `json:"kind" db:"kind"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

type ReactRequest struct {
	TargetProfileID int64  `json:"target_profile_id" validate:"required,gt=0"`
	Kind            string `json:"kind" validate:"required,oneof=like dislike"`
}
