// internal/match/models.go

package match

import "time"

// Match is the permanent record of a mutual connection. Rows are stored
// with user1_id < user2_id and are never updated or deleted.
type Match struct {
	ID        int64     `json:"id" db:"id"`
	User1ID   int64     `json:"user1_id" db:"user1_id"`
	User2ID   int64     `json:"user2_id" db:"user2_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Partner returns the other participant from the viewer's perspective.
func (m *Match) Partner(viewerID int64) int64 {
	if m.User1ID == viewerID {
		return m.User2ID
	}
	return m.User1ID
}

// PartnerSummary is the slice of the other participant's profile shown on
// a match card.
type PartnerSummary struct {
	UserID    int64   `json:"user_id" db:"user_id"`
	FirstName *string `json:"first_name" db:"first_name"`
	LastName  *string `json:"last_name" db:"last_name"`
	AvatarURL *string `json:"avatar_url" db:"avatar_url"`
	Location  *string `json:"location" db:"location"`
}

// LastMessage is the newest message in a match's conversation.
type LastMessage struct {
	MatchID   int64     `json:"-" db:"match_id"`
	SenderID  int64     `json:"sender_id" db:"sender_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MatchView is a match enriched for the viewer's inbox.
type MatchView struct {
	Match
	Partner     *PartnerSummary `json:"partner,omitempty"`
	LastMessage *LastMessage    `json:"last_message,omitempty"`
	UnreadCount int64           `json:"unread_count"`
}
