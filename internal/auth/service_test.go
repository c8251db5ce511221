// internal/auth/service_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	users  map[int64]*User
	nextID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: map[int64]*User{}}
}

func (f *fakeRepository) CreateUser(ctx context.Context, user *User) error {
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *fakeRepository) GetUserByID(ctx context.Context, id int64) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func testService(repo Repository) Service {
	return NewService(repo, &Config{
		JWTSecret:          "test-secret",
		BCryptCost:         4,
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 24 * time.Hour,
	})
}

func TestSignupAndSignin(t *testing.T) {
	repo := newFakeRepository()
	svc := testService(repo)
	ctx := context.Background()

	pair, err := svc.Signup(ctx, &SignupRequest{Email: "ada@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotZero(t, pair.UserID)

	// Password hashes are stored, never the plaintext.
	stored := repo.users[pair.UserID]
	assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash)

	signin, err := svc.Signin(ctx, &SigninRequest{Email: "ada@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)
	assert.Equal(t, pair.UserID, signin.UserID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeRepository()
	svc := testService(repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &SignupRequest{Email: "ada@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, &SignupRequest{Email: "ada@example.com", Password: "different-pass"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSigninWrongPassword(t *testing.T) {
	repo := newFakeRepository()
	svc := testService(repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &SignupRequest{Email: "ada@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	_, err = svc.Signin(ctx, &SigninRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Signin(ctx, &SigninRequest{Email: "nobody@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenClaims(t *testing.T) {
	repo := newFakeRepository()
	svc := testService(repo)
	ctx := context.Background()

	pair, err := svc.Signup(ctx, &SignupRequest{Email: "ada@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, pair.UserID, claims.UserID)
	assert.Equal(t, "access", claims.Type)

	claims, err = svc.ValidateToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.Type)

	_, err = svc.ValidateToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh(t *testing.T) {
	repo := newFakeRepository()
	svc := testService(repo)
	ctx := context.Background()

	pair, err := svc.Signup(ctx, &SignupRequest{Email: "ada@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, pair.UserID, refreshed.UserID)

	// An access token cannot be used to refresh.
	_, err = svc.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
