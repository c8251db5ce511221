// internal/reaction/repository.go

package reaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	// Insert stores the reaction if the pair has none yet and reports
	// whether a row was actually written.
	Insert(ctx context.Context, reaction *Reaction) (bool, error)
	Get(ctx context.Context, userID, targetProfileID int64) (*Reaction, error)
	BumpCounter(ctx context.Context, targetProfileID int64, kind string) error
	CountLikes(ctx context.Context, profileID int64) (int64, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Insert(ctx context.Context, reaction *Reaction) (bool, error) {
	// The unique index on (user_id, target_profile_id) makes concurrent
	// duplicates collapse into a single winner.
	query := `
		INSERT INTO reactions (user_id, target_profile_id, kind)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, target_profile_id) DO NOTHING
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		reaction.UserID, reaction.TargetProfileID, reaction.Kind).
		Scan(&reaction.ID, &reaction.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *postgresRepository) Get(ctx context.Context, userID, targetProfileID int64) (*Reaction, error) {
	var rec Reaction
	err := r.db.GetContext(ctx, &rec,
		`SELECT * FROM reactions WHERE user_id = $1 AND target_profile_id = $2`,
		userID, targetProfileID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *postgresRepository) BumpCounter(ctx context.Context, targetProfileID int64, kind string) error {
	column := "dislike_count"
	if kind == KindLike {
		column = "like_count"
	}

	_, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET `+column+` = `+column+` + 1 WHERE id = $1`,
		targetProfileID)
	return err
}

func (r *postgresRepository) CountLikes(ctx context.Context, profileID int64) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM reactions WHERE target_profile_id = $1 AND kind = $2`,
		profileID, KindLike)
	return count, err
}
