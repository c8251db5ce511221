// internal/profile/service_test.go

package profile

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	profiles map[int64]*Profile
	nextID   int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{profiles: map[int64]*Profile{}}
}

func (f *fakeRepository) GetByUserID(ctx context.Context, userID int64) (*Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id int64) (*Profile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, ErrProfileNotFound
}

func (f *fakeRepository) Create(ctx context.Context, profile *Profile) error {
	if existing, ok := f.profiles[profile.UserID]; ok {
		*profile = *existing
		return nil
	}
	f.nextID++
	profile.ID = f.nextID
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	stored := *profile
	f.profiles[profile.UserID] = &stored
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, profile *Profile) error {
	if _, ok := f.profiles[profile.UserID]; !ok {
		return ErrProfileNotFound
	}
	profile.UpdatedAt = time.Now()
	stored := *profile
	f.profiles[profile.UserID] = &stored
	return nil
}

func (f *fakeRepository) UpdateAvatar(ctx context.Context, userID int64, avatarURL *string) error {
	p, ok := f.profiles[userID]
	if !ok {
		return ErrProfileNotFound
	}
	p.AvatarURL = avatarURL
	return nil
}

type fakeUploadService struct {
	uploaded []string
	deleted  []string
}

func (f *fakeUploadService) UploadFile(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder string) (string, error) {
	url := "https://cdn.example.com/" + folder + "/" + header.Filename
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeUploadService) DeleteFile(ctx context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

func avatarHeader(size int64, contentType string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "avatar.jpg",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestGetCreatesLazily(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, &fakeUploadService{}, 5<<20)
	ctx := context.Background()

	p, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.UserID)
	assert.Nil(t, p.FirstName)
	assert.Empty(t, []string(p.Interests))

	// Second access returns the same row, not a new one.
	again, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, p.ID, again.ID)
	assert.Len(t, repo.profiles, 1)
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, &fakeUploadService{}, 5<<20)
	ctx := context.Background()

	name := "Ada"
	bio := "hello"
	_, err := svc.Update(ctx, 1, &UpdateProfileRequest{FirstName: &name, Bio: &bio})
	require.NoError(t, err)

	newBio := "updated"
	p, err := svc.Update(ctx, 1, &UpdateProfileRequest{Bio: &newBio})
	require.NoError(t, err)

	require.NotNil(t, p.FirstName)
	assert.Equal(t, "Ada", *p.FirstName, "untouched field survives")
	assert.Equal(t, "updated", *p.Bio)
}

func TestUpdateParsesBirthday(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, &fakeUploadService{}, 5<<20)

	birthday := "2000-06-15"
	p, err := svc.Update(context.Background(), 1, &UpdateProfileRequest{Birthday: &birthday})
	require.NoError(t, err)
	require.NotNil(t, p.Birthday)
	assert.Equal(t, 2000, p.Birthday.Year())

	bad := "15/06/2000"
	_, err = svc.Update(context.Background(), 1, &UpdateProfileRequest{Birthday: &bad})
	assert.Error(t, err)
}

func TestUploadAvatarValidation(t *testing.T) {
	repo := newFakeRepository()
	uploads := &fakeUploadService{}
	svc := NewService(repo, uploads, 5<<20)
	ctx := context.Background()

	_, err := svc.UploadAvatar(ctx, 1, nil, avatarHeader(6<<20, "image/jpeg"))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = svc.UploadAvatar(ctx, 1, nil, avatarHeader(1024, "application/pdf"))
	assert.ErrorIs(t, err, ErrBadFileType)

	assert.Empty(t, uploads.uploaded, "nothing reaches storage on a rejected file")
}

func TestUploadAvatarReplacesOld(t *testing.T) {
	repo := newFakeRepository()
	uploads := &fakeUploadService{}
	svc := NewService(repo, uploads, 5<<20)
	ctx := context.Background()

	first, err := svc.UploadAvatar(ctx, 1, nil, avatarHeader(1024, "image/jpeg"))
	require.NoError(t, err)

	_, err = svc.UploadAvatar(ctx, 1, nil, avatarHeader(1024, "image/png"))
	require.NoError(t, err)

	assert.Contains(t, uploads.deleted, first, "replaced object is cleaned up")

	p, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, p.AvatarURL)
}

func TestIsPremium(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, &fakeUploadService{}, 5<<20)
	ctx := context.Background()

	// No profile yet reads as not premium, not as an error.
	premium, err := svc.IsPremium(ctx, 9)
	require.NoError(t, err)
	assert.False(t, premium)

	_, err = svc.Get(ctx, 9)
	require.NoError(t, err)
	repo.profiles[9].IsPremium = true

	premium, err = svc.IsPremium(ctx, 9)
	require.NoError(t, err)
	assert.True(t, premium)
}
