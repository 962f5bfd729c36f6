package impl

import (
	"context"
	"testing"
	"time"

	"ecospot/internal/domain/constants"
	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/repository"
	"ecospot/internal/infra/changebus"
	mockRepo "ecospot/internal/mocks/repository"
	"ecospot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type liveServiceFixtures struct {
	service     usecase.LiveUsecase
	spotRepo    *mockRepo.MockSpotRepository
	commentRepo *mockRepo.MockCommentRepository
	ratingRepo  *mockRepo.MockRatingRepository
	bus         *changebus.MemoryBus
}

func createTestLiveService(t *testing.T) liveServiceFixtures {
	spotRepo := mockRepo.NewMockSpotRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	bus := changebus.NewMemoryBus()
	t.Cleanup(func() { _ = bus.Close() })

	return liveServiceFixtures{
		service: NewLiveService(LiveServiceParams{
			SpotRepo:    spotRepo,
			CommentRepo: commentRepo,
			RatingRepo:  ratingRepo,
			ChangeBus:   bus,
			Logger:      newDiscardLogger(),
		}),
		spotRepo:    spotRepo,
		commentRepo: commentRepo,
		ratingRepo:  ratingRepo,
		bus:         bus,
	}
}

func receive[T any](t *testing.T, ch <-chan usecase.Snapshot[T]) usecase.Snapshot[T] {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")

		return usecase.Snapshot[T]{}
	}
}

func waitDone(t *testing.T, sub usecase.Subscription) {
	t.Helper()
	select {
	case <-sub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("subscription did not stop")
	}
}

func TestLiveService_WatchUserRating_DeliversInitialAndChanges(t *testing.T) {
	fx := createTestLiveService(t)
	ctx := context.Background()
	userID, spotID := uuid.New(), uuid.New()

	fx.ratingRepo.EXPECT().FindRating(mock.Anything, userID, spotID).Return(nil, repository.ErrRatingNotFound).Once()
	fx.ratingRepo.EXPECT().FindRating(mock.Anything, userID, spotID).Return(&entity.Rating{Value: 4}, nil).Once()

	snapshots := make(chan usecase.Snapshot[int], 4)
	sub, err := fx.service.WatchUserRating(ctx, userID, spotID, func(s usecase.Snapshot[int]) { snapshots <- s })
	require.NoError(t, err)

	first := receive(t, snapshots)
	assert.Equal(t, uint64(1), first.Seq)
	assert.Equal(t, 0, first.Data)

	require.NoError(t, fx.bus.Publish(ctx, constants.UserRatingTopic(userID.String(), spotID.String())))

	second := receive(t, snapshots)
	assert.Equal(t, uint64(2), second.Seq)
	assert.Equal(t, 4, second.Data)

	sub.Cancel()
	sub.Cancel()
	waitDone(t, sub)
	assert.NoError(t, sub.Err())
}

func TestLiveService_WatchSpot_InitialLoadError(t *testing.T) {
	fx := createTestLiveService(t)
	spotID := uuid.New()

	fx.spotRepo.EXPECT().FindByID(mock.Anything, spotID).Return(nil, repository.ErrSpotNotFound)

	sub, err := fx.service.WatchSpot(context.Background(), spotID, func(usecase.Snapshot[entity.RecyclingSpot]) {})

	assert.Nil(t, sub)
	assert.True(t, errors.Is(err, domainerrors.ErrSpotNotFound))
}

func TestLiveService_WatchComments_BusShutdownEndsFeed(t *testing.T) {
	fx := createTestLiveService(t)
	spotID := uuid.New()

	fx.commentRepo.EXPECT().ListBySpot(mock.Anything, spotID).Return([]*entity.Comment{{Text: "hi"}}, nil)

	snapshots := make(chan usecase.Snapshot[[]entity.Comment], 1)
	sub, err := fx.service.WatchComments(context.Background(), spotID, func(s usecase.Snapshot[[]entity.Comment]) { snapshots <- s })
	require.NoError(t, err)

	first := receive(t, snapshots)
	require.Len(t, first.Data, 1)

	require.NoError(t, fx.bus.Close())
	waitDone(t, sub)
	assert.ErrorIs(t, sub.Err(), ErrFeedClosed)
}

func TestLiveService_WatchSpots_SnapshotsAreCopies(t *testing.T) {
	fx := createTestLiveService(t)
	ctx, cancel := context.WithCancel(context.Background())
	stored := &entity.RecyclingSpot{ID: uuid.New(), Name: "Bin", WasteTypes: entity.WasteTypes{entity.WasteTypeGlass}}

	fx.spotRepo.EXPECT().List(mock.Anything).Return([]*entity.RecyclingSpot{stored}, nil)

	snapshots := make(chan usecase.Snapshot[[]entity.RecyclingSpot], 1)
	sub, err := fx.service.WatchSpots(ctx, nil, func(s usecase.Snapshot[[]entity.RecyclingSpot]) { snapshots <- s })
	require.NoError(t, err)

	snap := receive(t, snapshots)
	snap.Data[0].WasteTypes[0] = entity.WasteTypeMetal
	snap.Data[0].Name = "Changed"

	assert.Equal(t, entity.WasteTypeGlass, stored.WasteTypes[0])
	assert.Equal(t, "Bin", stored.Name)

	cancel()
	waitDone(t, sub)
	assert.NoError(t, sub.Err())
}
