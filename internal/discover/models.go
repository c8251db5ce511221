// internal/discover/models.go

package discover

import (
	"time"

	"github.com/lib/pq"
)

// DefaultAvatarURL stands in for candidates who haven't uploaded a photo,
// so the feed never renders an empty image slot.
const DefaultAvatarURL = "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400"

// Candidate is a feed entry: a profile row enriched with the derived
// fields the client renders (age, compatibility, display image).
type Candidate struct {
	ID            int64          `json:"id" db:"id"`
	UserID        int64          `json:"user_id" db:"user_id"`
	FirstName     *string        `json:"first_name" db:"first_name"`
	LastName      *string        `json:"last_name" db:"last_name"`
	Birthday      *time.Time     `json:"-" db:"birthday"`
	Gender        *string        `json:"gender" db:"gender"`
	Location      *string        `json:"location" db:"location"`
	LookingFor    *string        `json:"looking_for" db:"looking_for"`
	Education     *string        `json:"education" db:"education"`
	Bio           *string        `json:"bio" db:"bio"`
	Interests     pq.StringArray `json:"interests" db:"interests"`
	AvatarURL     *string        `json:"-" db:"avatar_url"`
	IsVerified    bool           `json:"is_verified" db:"is_verified"`
	Age           *int           `json:"age"`
	Compatibility int            `json:"compatibility"`
	Image         string         `json:"image"`
}

// Filters narrows the feed. Zero values mean "don't filter on this".
type Filters struct {
	AgeMin     int    `json:"age_min"`
	AgeMax     int    `json:"age_max"`
	Gender     string `json:"gender"`
	Location   string `json:"location"`
	LookingFor string `json:"looking_for"`
	Education  string `json:"education"`
}
