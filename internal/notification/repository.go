// internal/notification/repository.go

package notification

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	SaveToken(ctx context.Context, token *DeviceToken) error
	DeleteToken(ctx context.Context, userID int64, token string) error
	TokensForUser(ctx context.Context, userID int64) ([]string, error)
	EmailForUser(ctx context.Context, userID int64) (string, error)
	PhoneForUser(ctx context.Context, userID int64) (string, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) SaveToken(ctx context.Context, token *DeviceToken) error {
	// Re-registering the same token moves it to its latest owner.
	query := `
		INSERT INTO device_tokens (user_id, token, platform)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE SET user_id = EXCLUDED.user_id, platform = EXCLUDED.platform
		RETURNING id, created_at
	`

	return r.db.QueryRowxContext(ctx, query, token.UserID, token.Token, token.Platform).
		Scan(&token.ID, &token.CreatedAt)
}

func (r *postgresRepository) DeleteToken(ctx context.Context, userID int64, token string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM device_tokens WHERE user_id = $1 AND token = $2`,
		userID, token)
	return err
}

func (r *postgresRepository) TokensForUser(ctx context.Context, userID int64) ([]string, error) {
	tokens := []string{}
	err := r.db.SelectContext(ctx, &tokens,
		`SELECT token FROM device_tokens WHERE user_id = $1`, userID)
	return tokens, err
}

func (r *postgresRepository) EmailForUser(ctx context.Context, userID int64) (string, error) {
	var email string
	err := r.db.GetContext(ctx, &email,
		`SELECT email FROM users WHERE id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return email, err
}

func (r *postgresRepository) PhoneForUser(ctx context.Context, userID int64) (string, error) {
	var phone sql.NullString
	err := r.db.GetContext(ctx, &phone,
		`SELECT phone FROM users WHERE id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return phone.String, err
}
