package usecase

import (
	"context"
	"time"

	"ecospot/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationSettings is the sampling contract of the mobile location client.
type LocationSettings struct {
	UpdateInterval time.Duration
	HighAccuracy   bool
}

// ProfileUsecase defines operations on the authenticated user's profile.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateLocation(ctx context.Context, userID uuid.UUID, location entity.Location) (*entity.User, error)
	SaveFCMToken(ctx context.Context, userID uuid.UUID, token string) error
	UploadProfileImage(ctx context.Context, userID uuid.UUID, image *ImageUpload) (string, error)
	LocationSettings() LocationSettings
}
