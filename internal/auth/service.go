// internal/auth/service.go

package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Config holds auth-related settings
type Config struct {
	JWTSecret          string
	BCryptCost         int
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type Service interface {
	Signup(ctx context.Context, req *SignupRequest) (*TokenPair, error)
	Signin(ctx context.Context, req *SigninRequest) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

type service struct {
	repo Repository
	cfg  *Config
}

func NewService(repo Repository, cfg *Config) Service {
	return &service{repo: repo, cfg: cfg}
}

func (s *service) Signup(ctx context.Context, req *SignupRequest) (*TokenPair, error) {
	if _, err := s.repo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BCryptCost)
	if err != nil {
		return nil, err
	}

	user := &User{Email: req.Email, Phone: req.Phone, PasswordHash: string(hash)}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *service) Signin(ctx context.Context, req *SigninRequest) (*TokenPair, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.ValidateToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != "refresh" {
		return nil, ErrInvalidToken
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return s.issueTokens(user)
}

func (s *service) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *service) issueTokens(user *User) (*TokenPair, error) {
	access, err := s.signToken(user, "access", s.cfg.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(user, "refresh", s.cfg.RefreshTokenExpiry)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, UserID: user.ID}, nil
}

func (s *service) signToken(user *User, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
