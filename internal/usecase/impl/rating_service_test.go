package impl

import (
	"context"
	"testing"

	"ecospot/internal/domain/constants"
	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/repository"
	mockRepo "ecospot/internal/mocks/repository"
	mockSvc "ecospot/internal/mocks/service"
	"ecospot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ratingServiceFixtures struct {
	service    usecase.RatingUsecase
	txManager  *mockRepo.MockTransactionManager
	ratingRepo *mockRepo.MockRatingRepository
	bus        *mockSvc.MockChangeBus
	tx         *txRepos
}

func createTestRatingService(t *testing.T) ratingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	bus := mockSvc.NewMockChangeBus(t)

	svc := NewRatingService(RatingServiceParams{
		TxManager:  txManager,
		RatingRepo: ratingRepo,
		ChangeBus:  bus,
		Logger:     newDiscardLogger(),
	})

	return ratingServiceFixtures{
		service:    svc,
		txManager:  txManager,
		ratingRepo: ratingRepo,
		bus:        bus,
		tx:         newTxRepos(t),
	}
}

func TestRatingService_RateSpot_FirstRating(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()
	userID, spotID := uuid.New(), uuid.New()

	expectTransaction(fx.txManager, fx.tx)
	fx.tx.spotRepo.EXPECT().FindByIDForUpdate(ctx, spotID).
		Return(&entity.RecyclingSpot{ID: spotID, AverageRating: 4, RatingCount: 2}, nil)
	fx.tx.ratingRepo.EXPECT().FindRating(ctx, userID, spotID).Return(nil, repository.ErrRatingNotFound)
	fx.tx.spotRepo.EXPECT().
		UpdateRatingAggregate(ctx, mock.MatchedBy(func(s *entity.RecyclingSpot) bool {
			return s.RatingCount == 3 && s.AverageRating > 4.33 && s.AverageRating < 4.34
		})).
		Return(nil)
	fx.tx.ratingRepo.EXPECT().
		UpsertRating(ctx, mock.MatchedBy(func(r *entity.Rating) bool {
			return r.UserID == userID && r.SpotID == spotID && r.Value == 5
		})).
		Return(nil)
	fx.tx.userRepo.EXPECT().AddPoints(ctx, userID, entity.PointsFirstRating).Return(nil)

	fx.bus.EXPECT().Publish(ctx, constants.SpotTopic(spotID.String())).Return(nil)
	fx.bus.EXPECT().Publish(ctx, constants.TopicSpots).Return(nil)
	fx.bus.EXPECT().Publish(ctx, constants.UserRatingTopic(userID.String(), spotID.String())).Return(nil)

	output, err := fx.service.RateSpot(ctx, userID, spotID, 5)

	require.NoError(t, err)
	assert.True(t, output.FirstTime)
	assert.Equal(t, 3, output.Spot.RatingCount)
	assert.InDelta(t, 13.0/3.0, output.Spot.AverageRating, 1e-9)
}

func TestRatingService_RateSpot_ReRatingReplacesPrevious(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()
	userID, spotID := uuid.New(), uuid.New()

	expectTransaction(fx.txManager, fx.tx)
	fx.tx.spotRepo.EXPECT().FindByIDForUpdate(ctx, spotID).
		Return(&entity.RecyclingSpot{ID: spotID, AverageRating: 3, RatingCount: 3}, nil)
	fx.tx.ratingRepo.EXPECT().FindRating(ctx, userID, spotID).
		Return(&entity.Rating{UserID: userID, SpotID: spotID, Value: 2}, nil)
	fx.tx.spotRepo.EXPECT().UpdateRatingAggregate(ctx, mock.Anything).Return(nil)
	fx.tx.ratingRepo.EXPECT().UpsertRating(ctx, mock.Anything).Return(nil)
	fx.bus.EXPECT().Publish(ctx, mock.Anything).Return(nil).Times(3)

	output, err := fx.service.RateSpot(ctx, userID, spotID, 5)

	require.NoError(t, err)
	assert.False(t, output.FirstTime)
	assert.Equal(t, 3, output.Spot.RatingCount)
	assert.InDelta(t, 4.0, output.Spot.AverageRating, 1e-9)
	fx.tx.userRepo.AssertNotCalled(t, "AddPoints", mock.Anything, mock.Anything, mock.Anything)
}

func TestRatingService_RateSpot_InvalidValue(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()

	for _, value := range []int{0, 6, -1} {
		_, err := fx.service.RateSpot(ctx, uuid.New(), uuid.New(), value)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating))
	}
}

func TestRatingService_RateSpot_SpotNotFound(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()
	spotID := uuid.New()

	expectTransaction(fx.txManager, fx.tx)
	fx.tx.spotRepo.EXPECT().FindByIDForUpdate(ctx, spotID).Return(nil, repository.ErrSpotNotFound)

	output, err := fx.service.RateSpot(ctx, uuid.New(), spotID, 4)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSpotNotFound))
}

func TestRatingService_RateSpot_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()
	userID, spotID := uuid.New(), uuid.New()

	expectTransaction(fx.txManager, fx.tx)
	fx.tx.spotRepo.EXPECT().FindByIDForUpdate(ctx, spotID).Return(&entity.RecyclingSpot{ID: spotID}, nil)
	fx.tx.ratingRepo.EXPECT().FindRating(ctx, userID, spotID).Return(nil, repository.ErrRatingNotFound)
	fx.tx.spotRepo.EXPECT().UpdateRatingAggregate(ctx, mock.Anything).Return(nil)
	fx.tx.ratingRepo.EXPECT().UpsertRating(ctx, mock.Anything).Return(nil)
	fx.tx.userRepo.EXPECT().AddPoints(ctx, userID, entity.PointsFirstRating).Return(nil)
	fx.bus.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("bus down")).Times(3)

	output, err := fx.service.RateSpot(ctx, userID, spotID, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, output.Spot.RatingCount)
	assert.InDelta(t, 1.0, output.Spot.AverageRating, 1e-9)
}

func TestRatingService_GetUserRating_Unrated(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()
	userID, spotID := uuid.New(), uuid.New()

	fx.ratingRepo.EXPECT().FindRating(ctx, userID, spotID).Return(nil, repository.ErrRatingNotFound)

	value, err := fx.service.GetUserRating(ctx, userID, spotID)

	require.NoError(t, err)
	assert.Equal(t, 0, value)
}
