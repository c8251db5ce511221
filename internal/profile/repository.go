// internal/profile/repository.go

package profile

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID int64) (*Profile, error)
	GetByID(ctx context.Context, id int64) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	UpdateAvatar(ctx context.Context, userID int64, avatarURL *string) error
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetByUserID(ctx context.Context, userID int64) (*Profile, error) {
	var p Profile
	err := r.db.GetContext(ctx, &p, `SELECT * FROM profiles WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*Profile, error) {
	var p Profile
	err := r.db.GetContext(ctx, &p, `SELECT * FROM profiles WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, profile *Profile) error {
	// Two sessions racing the lazy create both land on the same row.
	query := `
		INSERT INTO profiles (user_id, interests)
		VALUES ($1, '{}')
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRowxContext(ctx, query, profile.UserID).
		Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *postgresRepository) Update(ctx context.Context, profile *Profile) error {
	query := `
		UPDATE profiles
		SET first_name = $2, last_name = $3, birthday = $4, gender = $5,
		    location = $6, looking_for = $7, education = $8, bio = $9,
		    interests = $10, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $1
		RETURNING updated_at
	`

	var updatedAt time.Time
	err := r.db.QueryRowxContext(
		ctx, query,
		profile.UserID, profile.FirstName, profile.LastName, profile.Birthday,
		profile.Gender, profile.Location, profile.LookingFor, profile.Education,
		profile.Bio, pq.Array([]string(profile.Interests)),
	).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrProfileNotFound
	}
	if err != nil {
		return err
	}

	profile.UpdatedAt = updatedAt
	return nil
}

func (r *postgresRepository) UpdateAvatar(ctx context.Context, userID int64, avatarURL *string) error {
	query := `
		UPDATE profiles
		SET avatar_url = $2, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, avatarURL)
	return err
}
