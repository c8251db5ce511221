// internal/loverequest/models.go

package loverequest

import "time"

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// LoveRequest is a one-shot invitation from sender to receiver. It moves
// from pending to exactly one of accepted or rejected and never back.
type LoveRequest struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"sender_id" db:"sender_id"`
	ReceiverID int64     `json:"receiver_id" db:"receiver_id"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type SendRequest struct {
	ReceiverID int64 `json:"receiver_id" validate:"required,gt=0"`
}

type RespondRequest struct {
	Accept bool `json:"accept"`
}

// SenderSummary is the slice of a sender's profile shown on a pending
// request card.
type SenderSummary struct {
	UserID    int64   `json:"user_id" db:"user_id"`
	FirstName *string `json:"first_name" db:"first_name"`
	LastName  *string `json:"last_name" db:"last_name"`
	AvatarURL *string `json:"avatar_url" db:"avatar_url"`
	Location  *string `json:"location" db:"location"`
}

// PendingRequest is a received request enriched with its sender's summary.
type PendingRequest struct {
	LoveRequest
	Sender *SenderSummary `json:"sender,omitempty"`
}
