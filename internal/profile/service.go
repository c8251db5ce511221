// internal/profile/service.go

package profile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"time"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrFileTooLarge    = errors.New("image must be 5MB or smaller")
	ErrBadFileType     = errors.New("image must be JPEG, PNG, WebP or GIF")
)

// allowedAvatarTypes are the MIME types accepted for avatar uploads
var allowedAvatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type Service interface {
	// Get returns the caller's profile, creating an empty one on first access
	Get(ctx context.Context, userID int64) (*Profile, error)
	GetByUserID(ctx context.Context, userID int64) (*Profile, error)
	Update(ctx context.Context, userID int64, req *UpdateProfileRequest) (*Profile, error)
	UploadAvatar(ctx context.Context, userID int64, file multipart.File, header *multipart.FileHeader) (string, error)
	DeleteAvatar(ctx context.Context, userID int64) error
	IsPremium(ctx context.Context, userID int64) (bool, error)
}

type service struct {
	repo          Repository
	uploadService UploadService
	maxAvatarSize int64
}

func NewService(repo Repository, uploadService UploadService, maxAvatarSize int64) Service {
	return &service{
		repo:          repo,
		uploadService: uploadService,
		maxAvatarSize: maxAvatarSize,
	}
}

func (s *service) Get(ctx context.Context, userID int64) (*Profile, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		p = &Profile{UserID: userID, Interests: []string{}}
		if err := s.repo.Create(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	}
	return p, err
}

func (s *service) GetByUserID(ctx context.Context, userID int64) (*Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) Update(ctx context.Context, userID int64, req *UpdateProfileRequest) (*Profile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		p.FirstName = req.FirstName
	}
	if req.LastName != nil {
		p.LastName = req.LastName
	}
	if req.Birthday != nil {
		bday, err := time.Parse("2006-01-02", *req.Birthday)
		if err != nil {
			return nil, fmt.Errorf("invalid birthday: %w", err)
		}
		p.Birthday = &bday
	}
	if req.Gender != nil {
		p.Gender = req.Gender
	}
	if req.Location != nil {
		p.Location = req.Location
	}
	if req.LookingFor != nil {
		p.LookingFor = req.LookingFor
	}
	if req.Education != nil {
		p.Education = req.Education
	}
	if req.Bio != nil {
		p.Bio = req.Bio
	}
	if req.Interests != nil {
		p.Interests = req.Interests
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UploadAvatar(ctx context.Context, userID int64, file multipart.File, header *multipart.FileHeader) (string, error) {
	// Validate before any upload work
	if header.Size > s.maxAvatarSize {
		return "", ErrFileTooLarge
	}
	if !allowedAvatarTypes[header.Header.Get("Content-Type")] {
		return "", ErrBadFileType
	}

	p, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	folder := fmt.Sprintf("avatars/%d", userID)
	url, err := s.uploadService.UploadFile(ctx, file, header, folder)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateAvatar(ctx, userID, &url); err != nil {
		return "", err
	}

	// Best-effort cleanup of the replaced object
	if p.AvatarURL != nil && *p.AvatarURL != "" {
		if err := s.uploadService.DeleteFile(ctx, *p.AvatarURL); err != nil {
			log.Printf("failed to delete old avatar for user %d: %v", userID, err)
		}
	}

	return url, nil
}

func (s *service) DeleteAvatar(ctx context.Context, userID int64) error {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if p.AvatarURL != nil && *p.AvatarURL != "" {
		if err := s.uploadService.DeleteFile(ctx, *p.AvatarURL); err != nil {
			log.Printf("failed to delete avatar for user %d: %v", userID, err)
		}
	}

	return s.repo.UpdateAvatar(ctx, userID, nil)
}

// IsPremium reports whether the user's profile carries the premium flag.
// Gates the free-tier message quota and call features.
func (s *service) IsPremium(ctx context.Context, userID int64) (bool, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.IsPremium, nil
}
