package impl

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
	"time"

	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/repository"
	"ecospot/internal/domain/service"
	mockRepo "ecospot/internal/mocks/repository"
	mockSvc "ecospot/internal/mocks/service"
	"ecospot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service   *profileService
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	publisher *mockSvc.MockEventPublisher
	storage   *mockSvc.MockObjectStorage
	tx        *txRepos
	now       time.Time
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	storage := mockSvc.NewMockObjectStorage(t)
	cfg := newTestConfig()
	cfg.Storage.MaxImageSize = "1KB"
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	svc, err := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Publisher: publisher,
		Storage:   storage,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, err)
	profile := svc.(*profileService)
	profile.now = func() time.Time { return now }

	return profileServiceFixtures{
		service:   profile,
		txManager: txManager,
		userRepo:  userRepo,
		publisher: publisher,
		storage:   storage,
		tx:        newTxRepos(t),
		now:       now,
	}
}

func TestProfileService_UpdateLocation_PublishesVersionedEvent(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	previous := entity.Location{Lat: 50, Lng: 19}
	next := entity.Location{Lat: 50.001, Lng: 19.001}

	expectTransaction(fx.txManager, fx.tx)
	fx.tx.userRepo.EXPECT().UpdateLocation(ctx, userID, next, fx.now).
		Return(&repository.LocationWrite{Previous: &previous, Version: 8}, nil)
	fx.tx.userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Location: &next, LocationVersion: 8}, nil)
	fx.publisher.EXPECT().
		PublishLocationChanged(ctx, mock.MatchedBy(func(msg *service.LocationChangedMessage) bool {
			e := msg.Event

			return e.UserID == userID && e.Version == 8 && *e.Before == previous && *e.After == next && e.OccurredAt.Equal(fx.now)
		})).
		Return(nil)

	user, err := fx.service.UpdateLocation(ctx, userID, next)

	require.NoError(t, err)
	assert.Equal(t, int64(8), user.LocationVersion)
}

func TestProfileService_UpdateLocation_PublishFailureKeepsWrite(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	next := entity.Location{Lat: 1, Lng: 2}

	expectTransaction(fx.txManager, fx.tx)
	fx.tx.userRepo.EXPECT().UpdateLocation(ctx, userID, next, fx.now).Return(&repository.LocationWrite{Version: 1}, nil)
	fx.tx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Location: &next}, nil)
	fx.publisher.EXPECT().PublishLocationChanged(ctx, mock.Anything).Return(errors.New("broker down"))

	user, err := fx.service.UpdateLocation(ctx, userID, next)

	require.NoError(t, err)
	assert.Equal(t, next, *user.Location)
}

func TestProfileService_UpdateLocation_InvalidCoordinates(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UpdateLocation(context.Background(), uuid.New(), entity.Location{Lat: 91, Lng: 0})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidLocation))
}

func TestProfileService_SaveFCMToken(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().UpdateFCMToken(ctx, userID, "token").Return(nil)

	require.NoError(t, fx.service.SaveFCMToken(ctx, userID, "  token "))
	assert.True(t, errors.Is(fx.service.SaveFCMToken(ctx, userID, " "), domainerrors.ErrValidationFailed))
}

func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))))

	return buf.Bytes()
}

func TestProfileService_UploadProfileImage_DetectsContentType(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	data := encodeTestPNG(t)

	fx.storage.EXPECT().Put(ctx, "profile_images/"+userID.String(), "image/png", data).Return("https://cdn/p.png", nil)
	fx.userRepo.EXPECT().UpdateProfileImage(ctx, userID, "https://cdn/p.png").Return(nil)

	url, err := fx.service.UploadProfileImage(ctx, userID, &usecase.ImageUpload{Data: data})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/p.png", url)
}

func TestProfileService_UploadProfileImage_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		upload  *usecase.ImageUpload
		wantErr error
	}{
		{name: "too large", upload: &usecase.ImageUpload{ContentType: "image/png", Data: make([]byte, 1001)}, wantErr: domainerrors.ErrImageTooLarge},
		{name: "not an image", upload: &usecase.ImageUpload{Data: []byte("plain text")}, wantErr: domainerrors.ErrUnsupportedImage},
		{name: "empty", upload: &usecase.ImageUpload{}, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			_, err := fx.service.UploadProfileImage(context.Background(), uuid.New(), tt.upload)

			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestProfileService_LocationSettings(t *testing.T) {
	fx := createTestProfileService(t)

	settings := fx.service.LocationSettings()

	assert.Equal(t, 15*time.Second, settings.UpdateInterval)
	assert.True(t, settings.HighAccuracy)
}
