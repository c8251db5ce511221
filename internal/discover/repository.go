// internal/discover/repository.go

package discover

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repository interface {
	FetchCandidates(ctx context.Context, viewerID int64) ([]*Candidate, error)
	GetViewerInterests(ctx context.Context, viewerID int64) ([]string, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

// FetchCandidates returns every browsable profile except the viewer's own.
// Rows without a first name are skeletons from the lazy create and are
// not worth showing.
func (r *postgresRepository) FetchCandidates(ctx context.Context, viewerID int64) ([]*Candidate, error) {
	query := `
		SELECT id, user_id, first_name, last_name, birthday, gender, location,
		       looking_for, education, bio, interests, avatar_url, is_verified
		FROM profiles
		WHERE user_id != $1
		  AND first_name IS NOT NULL
		  AND first_name != ''
		ORDER BY created_at DESC
	`

	candidates := []*Candidate{}
	if err := r.db.SelectContext(ctx, &candidates, query, viewerID); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *postgresRepository) GetViewerInterests(ctx context.Context, viewerID int64) ([]string, error) {
	var interests pq.StringArray
	err := r.db.GetContext(ctx, &interests,
		`SELECT interests FROM profiles WHERE user_id = $1`, viewerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []string(interests), nil
}
