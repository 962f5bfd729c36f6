package impl

import (
	"context"
	"strings"
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

type commentServiceFixtures struct {
	service     usecase.CommentUsecase
	txManager   *mockRepo.MockTransactionManager
	spotRepo    *mockRepo.MockSpotRepository
	commentRepo *mockRepo.MockCommentRepository
	bus         *mockSvc.MockChangeBus
	tx          *txRepos
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	spotRepo := mockRepo.NewMockSpotRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	bus := mockSvc.NewMockChangeBus(t)

	return commentServiceFixtures{
		service: NewCommentService(CommentServiceParams{
			TxManager:   txManager,
			SpotRepo:    spotRepo,
			CommentRepo: commentRepo,
			ChangeBus:   bus,
			Logger:      newDiscardLogger(),
		}),
		txManager:   txManager,
		spotRepo:    spotRepo,
		commentRepo: commentRepo,
		bus:         bus,
		tx:          newTxRepos(t),
	}
}

func TestCommentService_AddComment_Success(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	userID, spotID := uuid.New(), uuid.New()

	expectTransaction(fx.txManager, fx.tx)
	fx.tx.spotRepo.EXPECT().FindByID(ctx, spotID).Return(&entity.RecyclingSpot{ID: spotID}, nil)
	fx.tx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, FullName: "Ada"}, nil)
	fx.tx.commentRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Comment) bool {
			return c.Text == "Clean and tidy" && c.AuthorName == "Ada" && c.SpotID == spotID
		})).
		Return(nil)
	fx.tx.userRepo.EXPECT().AddPoints(ctx, userID, entity.PointsAddComment).Return(nil)
	fx.bus.EXPECT().Publish(ctx, constants.SpotCommentsTopic(spotID.String())).Return(nil)

	comment, err := fx.service.AddComment(ctx, userID, spotID, "  Clean and tidy ")

	require.NoError(t, err)
	assert.Equal(t, "Clean and tidy", comment.Text)
}

func TestCommentService_AddComment_RejectsText(t *testing.T) {
	fx := createTestCommentService(t)

	for _, text := range []string{"   ", strings.Repeat("x", maxCommentLength+1)} {
		_, err := fx.service.AddComment(context.Background(), uuid.New(), uuid.New(), text)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestCommentService_AddComment_SpotNotFound(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	spotID := uuid.New()

	expectTransaction(fx.txManager, fx.tx)
	fx.tx.spotRepo.EXPECT().FindByID(ctx, spotID).Return(nil, repository.ErrSpotNotFound)

	_, err := fx.service.AddComment(ctx, uuid.New(), spotID, "hello")

	assert.True(t, errors.Is(err, domainerrors.ErrSpotNotFound))
}

func TestCommentService_ListComments(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	spotID := uuid.New()
	want := []*entity.Comment{{ID: uuid.New(), SpotID: spotID, Text: "first"}}

	fx.spotRepo.EXPECT().FindByID(ctx, spotID).Return(&entity.RecyclingSpot{ID: spotID}, nil)
	fx.commentRepo.EXPECT().ListBySpot(ctx, spotID).Return(want, nil)

	got, err := fx.service.ListComments(ctx, spotID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
