package impl

import (
	"context"
	"net/http"
	"strings"

	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/repository"
	"ecospot/internal/domain/service"
	"ecospot/internal/usecase"
	"ecospot/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const profileImagePrefix = "profile_images/"

// profileImageUploader stores a user's profile image and records its URL.
// One object per user, a new upload replaces the previous image.
type profileImageUploader struct {
	storage  service.ObjectStorage
	userRepo repository.UserRepository
	maxSize  int64
}

func newProfileImageUploader(storage service.ObjectStorage, userRepo repository.UserRepository, maxSize string) (*profileImageUploader, error) {
	size, err := util.ParseSize(maxSize)
	if err != nil {
		return nil, errors.Wrap(err, "invalid storage.maxImageSize")
	}

	return &profileImageUploader{storage: storage, userRepo: userRepo, maxSize: size}, nil
}

func (u *profileImageUploader) Upload(ctx context.Context, userID uuid.UUID, image *usecase.ImageUpload) (string, error) {
	if image == nil || len(image.Data) == 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("image is required")
	}
	if int64(len(image.Data)) > u.maxSize {
		return "", domainerrors.ErrImageTooLarge.WithDetails("maximum size is " + util.FormatSize(u.maxSize))
	}

	contentType := strings.TrimSpace(image.ContentType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(image.Data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", domainerrors.ErrUnsupportedImage.WithDetails(contentType)
	}

	url, err := u.storage.Put(ctx, profileImagePrefix+userID.String(), contentType, image.Data)
	if err != nil {
		return "", errors.Wrap(err, "failed to store profile image")
	}

	if err := u.userRepo.UpdateProfileImage(ctx, userID, url); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to save profile image url")
	}

	return url, nil
}
