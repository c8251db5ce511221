// internal/loverequest/repository.go

package loverequest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repository interface {
	Insert(ctx context.Context, req *LoveRequest) error
	GetByID(ctx context.Context, id int64) (*LoveRequest, error)
	// FindBetween looks the pair up in either direction.
	FindBetween(ctx context.Context, userA, userB int64) (*LoveRequest, error)
	// Accept flips a pending request to accepted and creates the match in
	// the same transaction. Reports whether this call made the transition
	// and the match id when it did.
	Accept(ctx context.Context, req *LoveRequest) (int64, bool, error)
	// Reject flips a pending request to rejected, reporting whether this
	// call made the transition.
	Reject(ctx context.Context, requestID int64) (bool, error)
	ListPending(ctx context.Context, receiverID int64) ([]*LoveRequest, error)
	ListSent(ctx context.Context, senderID int64) ([]*LoveRequest, error)
	SenderSummaries(ctx context.Context, userIDs []int64) (map[int64]*SenderSummary, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Insert(ctx context.Context, req *LoveRequest) error {
	query := `
		INSERT INTO love_requests (sender_id, receiver_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query, req.SenderID, req.ReceiverID, StatusPending).
		Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	// The unique pair index closes the race two concurrent senders can
	// open between the dedup check and the insert.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrRequestPending
	}
	return err
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*LoveRequest, error) {
	var req LoveRequest
	err := r.db.GetContext(ctx, &req, `SELECT * FROM love_requests WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *postgresRepository) FindBetween(ctx context.Context, userA, userB int64) (*LoveRequest, error) {
	query := `
		SELECT * FROM love_requests
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at DESC
		LIMIT 1
	`

	var req LoveRequest
	err := r.db.GetContext(ctx, &req, query, userA, userB)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *postgresRepository) Accept(ctx context.Context, req *LoveRequest) (int64, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, false, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE love_requests SET status = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $1 AND status = $3`,
		req.ID, StatusAccepted, StatusPending)
	if err != nil {
		return 0, false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, false, err
	}
	if affected == 0 {
		return 0, false, nil
	}

	user1, user2 := req.SenderID, req.ReceiverID
	if user1 > user2 {
		user1, user2 = user2, user1
	}

	// The no-op DO UPDATE makes RETURNING yield the id even when the
	// pair is somehow already matched.
	var matchID int64
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO matches (user1_id, user2_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user1_id, user2_id) DO UPDATE SET user1_id = EXCLUDED.user1_id
		 RETURNING id`,
		user1, user2).Scan(&matchID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create match: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, false, err
	}
	return matchID, true, nil
}

func (r *postgresRepository) Reject(ctx context.Context, requestID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE love_requests SET status = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $1 AND status = $3`,
		requestID, StatusRejected, StatusPending)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *postgresRepository) ListPending(ctx context.Context, receiverID int64) ([]*LoveRequest, error) {
	requests := []*LoveRequest{}
	err := r.db.SelectContext(ctx, &requests,
		`SELECT * FROM love_requests
		 WHERE receiver_id = $1 AND status = $2
		 ORDER BY created_at DESC`,
		receiverID, StatusPending)
	return requests, err
}

func (r *postgresRepository) ListSent(ctx context.Context, senderID int64) ([]*LoveRequest, error) {
	requests := []*LoveRequest{}
	err := r.db.SelectContext(ctx, &requests,
		`SELECT * FROM love_requests
		 WHERE sender_id = $1
		 ORDER BY created_at DESC`,
		senderID)
	return requests, err
}

// SenderSummaries loads profile summaries for a batch of user ids in one
// query, keyed by user id.
func (r *postgresRepository) SenderSummaries(ctx context.Context, userIDs []int64) (map[int64]*SenderSummary, error) {
	if len(userIDs) == 0 {
		return map[int64]*SenderSummary{}, nil
	}

	summaries := []*SenderSummary{}
	err := r.db.SelectContext(ctx, &summaries,
		`SELECT user_id, first_name, last_name, avatar_url, location
		 FROM profiles WHERE user_id = ANY($1)`,
		pq.Array(userIDs))
	if err != nil {
		return nil, err
	}

	byUser := make(map[int64]*SenderSummary, len(summaries))
	for _, s := range summaries {
		byUser[s.UserID] = s
	}
	return byUser, nil
}
