// internal/chat/repository.go

package chat

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Insert(ctx context.Context, msg *Message) error
	History(ctx context.Context, matchID int64) ([]*Message, error)
	// MarkRead flips every unread message in the match not sent by the
	// reader, returning how many were flipped.
	MarkRead(ctx context.Context, matchID, readerID int64) (int64, error)
	CountSentByUser(ctx context.Context, matchID, senderID int64) (int64, error)
	Participants(ctx context.Context, matchID int64) (int64, int64, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Insert(ctx context.Context, msg *Message) error {
	query := `
		INSERT INTO messages (match_id, sender_id, content, is_read)
		VALUES ($1, $2, $3, false)
		RETURNING id, created_at
	`

	return r.db.QueryRowxContext(ctx, query, msg.MatchID, msg.SenderID, msg.Content).
		Scan(&msg.ID, &msg.CreatedAt)
}

func (r *postgresRepository) History(ctx context.Context, matchID int64) ([]*Message, error) {
	messages := []*Message{}
	err := r.db.SelectContext(ctx, &messages,
		`SELECT * FROM messages WHERE match_id = $1 ORDER BY created_at ASC`,
		matchID)
	return messages, err
}

func (r *postgresRepository) MarkRead(ctx context.Context, matchID, readerID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE messages SET is_read = true
		 WHERE match_id = $1 AND sender_id != $2 AND is_read = false`,
		matchID, readerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *postgresRepository) CountSentByUser(ctx context.Context, matchID, senderID int64) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM messages WHERE match_id = $1 AND sender_id = $2`,
		matchID, senderID)
	return count, err
}

func (r *postgresRepository) Participants(ctx context.Context, matchID int64) (int64, int64, error) {
	var pair struct {
		User1ID int64 `db:"user1_id"`
		User2ID int64 `db:"user2_id"`
	}
	err := r.db.GetContext(ctx, &pair,
		`SELECT user1_id, user2_id FROM matches WHERE id = $1`, matchID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, ErrMatchNotFound
	}
	if err != nil {
		return 0, 0, err
	}
	return pair.User1ID, pair.User2ID, nil
}
