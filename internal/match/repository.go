// internal/match/repository.go

package match

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]*Match, error)
	GetByID(ctx context.Context, id int64) (*Match, error)
	IsMember(ctx context.Context, matchID, userID int64) (bool, error)
	PartnerSummaries(ctx context.Context, userIDs []int64) (map[int64]*PartnerSummary, error)
	LastMessages(ctx context.Context, matchIDs []int64) (map[int64]*LastMessage, error)
	UnreadCounts(ctx context.Context, matchIDs []int64, viewerID int64) (map[int64]int64, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID int64) ([]*Match, error) {
	matches := []*Match{}
	err := r.db.SelectContext(ctx, &matches,
		`SELECT * FROM matches
		 WHERE user1_id = $1 OR user2_id = $1
		 ORDER BY created_at DESC`,
		userID)
	return matches, err
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*Match, error) {
	var m Match
	err := r.db.GetContext(ctx, &m, `SELECT * FROM matches WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *postgresRepository) IsMember(ctx context.Context, matchID, userID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (
			SELECT 1 FROM matches
			WHERE id = $1 AND (user1_id = $2 OR user2_id = $2)
		)`,
		matchID, userID)
	return exists, err
}

func (r *postgresRepository) PartnerSummaries(ctx context.Context, userIDs []int64) (map[int64]*PartnerSummary, error) {
	if len(userIDs) == 0 {
		return map[int64]*PartnerSummary{}, nil
	}

	summaries := []*PartnerSummary{}
	err := r.db.SelectContext(ctx, &summaries,
		`SELECT user_id, first_name, last_name, avatar_url, location
		 FROM profiles WHERE user_id = ANY($1)`,
		pq.Array(userIDs))
	if err != nil {
		return nil, err
	}

	byUser := make(map[int64]*PartnerSummary, len(summaries))
	for _, s := range summaries {
		byUser[s.UserID] = s
	}
	return byUser, nil
}

// LastMessages fetches the newest message per match for the whole id list
// in one query.
func (r *postgresRepository) LastMessages(ctx context.Context, matchIDs []int64) (map[int64]*LastMessage, error) {
	if len(matchIDs) == 0 {
		return map[int64]*LastMessage{}, nil
	}

	query := `
		SELECT DISTINCT ON (match_id) match_id, sender_id, content, created_at
		FROM messages
		WHERE match_id = ANY($1)
		ORDER BY match_id, created_at DESC
	`

	messages := []*LastMessage{}
	if err := r.db.SelectContext(ctx, &messages, query, pq.Array(matchIDs)); err != nil {
		return nil, err
	}

	byMatch := make(map[int64]*LastMessage, len(messages))
	for _, m := range messages {
		byMatch[m.MatchID] = m
	}
	return byMatch, nil
}

func (r *postgresRepository) UnreadCounts(ctx context.Context, matchIDs []int64, viewerID int64) (map[int64]int64, error) {
	if len(matchIDs) == 0 {
		return map[int64]int64{}, nil
	}

	query := `
		SELECT match_id, COUNT(*) AS unread
		FROM messages
		WHERE match_id = ANY($1) AND sender_id != $2 AND is_read = false
		GROUP BY match_id
	`

	rows := []struct {
		MatchID int64 `db:"match_id"`
		Unread  int64 `db:"unread"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(matchIDs), viewerID); err != nil {
		return nil, err
	}

	byMatch := make(map[int64]int64, len(rows))
	for _, row := range rows {
		byMatch[row.MatchID] = row.Unread
	}
	return byMatch, nil
}
