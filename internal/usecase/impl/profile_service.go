package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ecospot/config"
	deliverycontext "ecospot/internal/delivery/context"
	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/repository"
	"ecospot/internal/domain/service"
	"ecospot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	publisher service.EventPublisher
	images    *profileImageUploader
	settings  usecase.LocationSettings
	logger    *slog.Logger
	now       func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Publisher service.EventPublisher
	Storage   service.ObjectStorage
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(params ProfileServiceParams) (usecase.ProfileUsecase, error) {
	images, err := newProfileImageUploader(params.Storage, params.UserRepo, params.Config.Storage.MaxImageSize)
	if err != nil {
		return nil, err
	}

	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		publisher: params.Publisher,
		images:    images,
		settings: usecase.LocationSettings{
			UpdateInterval: params.Config.Location.UpdateInterval,
			HighAccuracy:   params.Config.Location.HighAccuracy,
		},
		logger: params.Logger,
		now:    time.Now,
	}, nil
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the user's profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return user, nil
}

// UpdateLocation stores the location and publishes the change for the proximity worker.
// Every write is published; the worker decides whether the user moved.
func (srv *profileService) UpdateLocation(ctx context.Context, userID uuid.UUID, location entity.Location) (*entity.User, error) {
	if !location.Valid() {
		return nil, domainerrors.ErrInvalidLocation
	}

	now := srv.now().UTC()
	var (
		write *repository.LocationWrite
		user  *entity.User
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		write, err = repoFactory.UserRepo().UpdateLocation(ctx, userID, location, now)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to update location")
		}

		user, err = repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to reload user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	after := location
	msg := &service.LocationChangedMessage{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Event: &entity.LocationChangedEvent{
			UserID:     userID,
			Before:     write.Previous,
			After:      &after,
			Version:    write.Version,
			OccurredAt: now,
		},
	}
	if err := srv.publisher.PublishLocationChanged(ctx, msg); err != nil {
		srv.log(ctx).Error("Failed to publish location change",
			userIDAttr(userID), slog.Int64("version", write.Version), slog.Any("error", err))
	}

	return user, nil
}

// SaveFCMToken replaces the user's push token.
func (srv *profileService) SaveFCMToken(ctx context.Context, userID uuid.UUID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("token is required")
	}

	if err := srv.userRepo.UpdateFCMToken(ctx, userID, token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to save push token")
	}

	return nil
}

// UploadProfileImage stores the image and returns its download URL.
func (srv *profileService) UploadProfileImage(ctx context.Context, userID uuid.UUID, image *usecase.ImageUpload) (string, error) {
	url, err := srv.images.Upload(ctx, userID, image)
	if err != nil {
		srv.log(ctx).Warn("Profile image upload failed", userIDAttr(userID), slog.Any("error", err))

		return "", err
	}

	return url, nil
}

// LocationSettings returns the sampling contract of the mobile client.
func (srv *profileService) LocationSettings() usecase.LocationSettings {
	return srv.settings
}
