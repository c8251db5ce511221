// internal/chat/models.go

package chat

import (
	"encoding/json"
	"time"
)

// Message is one line of a match's conversation. Rows are append-only;
// the only mutation ever applied is is_read flipping false to true.
type Message struct {
	ID        int64     `json:"id" db:"id"`
	MatchID   int64     `json:"match_id" db:"match_id"`
	SenderID  int64     `json:"sender_id" db:"sender_id"`
	Content   string    `json:"content" db:"content"`
	IsRead    bool      `json:"is_read" db:"is_read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// QuotaStatus tells a sender where they stand against the free tier.
type QuotaStatus struct {
	Premium   bool  `json:"premium"`
	Limit     int   `json:"limit"`
	Used      int64 `json:"used"`
	Remaining int64 `json:"remaining"`
	Warn      bool  `json:"warn"`
}

// Websocket event types pushed to clients.
const (
	WSTypeMessage     = "message"
	WSTypeRead        = "read"
	WSTypeNewMatch    = "new_match"
	WSTypeLoveRequest = "love_request"
)

// WSMessage is the envelope for every frame on the socket, in both
// directions.
type WSMessage struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// wsSendPayload is what a client puts on the wire to send a chat message.
type wsSendPayload struct {
	MatchID int64  `json:"match_id"`
	Content string `json:"content"`
}

// wsReadPayload asks the server to mark a conversation read.
type wsReadPayload struct {
	MatchID int64 `json:"match_id"`
}
