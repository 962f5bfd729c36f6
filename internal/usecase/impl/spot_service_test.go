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

type spotServiceFixtures struct {
	service   usecase.SpotUsecase
	txManager *mockRepo.MockTransactionManager
	spotRepo  *mockRepo.MockSpotRepository
	qrCode    *mockSvc.MockQRCodeService
	bus       *mockSvc.MockChangeBus
	tx        *txRepos
}

func createTestSpotService(t *testing.T) spotServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	spotRepo := mockRepo.NewMockSpotRepository(t)
	qrCode := mockSvc.NewMockQRCodeService(t)
	bus := mockSvc.NewMockChangeBus(t)

	return spotServiceFixtures{
		service: NewSpotService(SpotServiceParams{
			TxManager: txManager,
			SpotRepo:  spotRepo,
			QRCode:    qrCode,
			ChangeBus: bus,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		spotRepo:  spotRepo,
		qrCode:    qrCode,
		bus:       bus,
		tx:        newTxRepos(t),
	}
}

func TestSpotService_CreateSpot_RewardsAuthor(t *testing.T) {
	fx := createTestSpotService(t)
	ctx := context.Background()
	authorID := uuid.New()
	input := &usecase.CreateSpotInput{
		Name:       " Glass bank ",
		Location:   entity.Location{Lat: 52.1, Lng: 21.1},
		WasteTypes: entity.WasteTypes{entity.WasteTypePaper, entity.WasteTypeGlass, entity.WasteTypeGlass},
	}

	expectTransaction(fx.txManager, fx.tx)
	fx.tx.userRepo.EXPECT().FindByID(ctx, authorID).Return(&entity.User{ID: authorID, FullName: "Ada"}, nil)
	fx.tx.spotRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(s *entity.RecyclingSpot) bool {
			return s.Name == "Glass bank" && s.AuthorName == "Ada" &&
				assert.ObjectsAreEqual(entity.WasteTypes{entity.WasteTypeGlass, entity.WasteTypePaper}, s.WasteTypes)
		})).
		Run(func(ctx context.Context, spot *entity.RecyclingSpot) { spot.ID = uuid.New() }).
		Return(nil)
	fx.tx.userRepo.EXPECT().AddPoints(ctx, authorID, entity.PointsAddSpot).Return(nil)
	fx.bus.EXPECT().Publish(ctx, constants.TopicSpots).Return(nil)
	fx.bus.EXPECT().Publish(ctx, mock.MatchedBy(func(topic string) bool { return topic != constants.TopicSpots })).Return(nil)

	spot, err := fx.service.CreateSpot(ctx, authorID, input)

	require.NoError(t, err)
	assert.Equal(t, "Ada", spot.AuthorName)
}

func TestSpotService_CreateSpot_UnnamedAuthorFallsBack(t *testing.T) {
	fx := createTestSpotService(t)
	ctx := context.Background()
	authorID := uuid.New()

	expectTransaction(fx.txManager, fx.tx)
	fx.tx.userRepo.EXPECT().FindByID(ctx, authorID).Return(&entity.User{ID: authorID}, nil)
	fx.tx.spotRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.tx.userRepo.EXPECT().AddPoints(ctx, authorID, entity.PointsAddSpot).Return(nil)
	fx.bus.EXPECT().Publish(ctx, mock.Anything).Return(nil)

	spot, err := fx.service.CreateSpot(ctx, authorID, &usecase.CreateSpotInput{Name: "Bin", Location: entity.Location{Lat: 1, Lng: 1}})

	require.NoError(t, err)
	assert.Equal(t, entity.UnknownAuthorName, spot.AuthorName)
}

func TestSpotService_CreateSpot_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.CreateSpotInput
		wantErr error
	}{
		{name: "blank name", input: &usecase.CreateSpotInput{Name: " ", Location: entity.Location{Lat: 1, Lng: 1}}, wantErr: domainerrors.ErrValidationFailed},
		{name: "bad location", input: &usecase.CreateSpotInput{Name: "Bin", Location: entity.Location{Lat: 1, Lng: 200}}, wantErr: domainerrors.ErrInvalidLocation},
		{name: "unknown waste type", input: &usecase.CreateSpotInput{Name: "Bin", Location: entity.Location{Lat: 1, Lng: 1}, WasteTypes: entity.WasteTypes{"wood"}}, wantErr: domainerrors.ErrInvalidWasteType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSpotService(t)

			_, err := fx.service.CreateSpot(context.Background(), uuid.New(), tt.input)

			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestSpotService_ListSpots_AppliesFilter(t *testing.T) {
	fx := createTestSpotService(t)
	ctx := context.Background()
	glass := &entity.RecyclingSpot{ID: uuid.New(), Name: "Glass bank", WasteTypes: entity.WasteTypes{entity.WasteTypeGlass}}
	paper := &entity.RecyclingSpot{ID: uuid.New(), Name: "Paper bin", WasteTypes: entity.WasteTypes{entity.WasteTypePaper}}
	fx.spotRepo.EXPECT().List(ctx).Return([]*entity.RecyclingSpot{glass, paper}, nil)

	wt := entity.WasteTypePaper
	spots, err := fx.service.ListSpots(ctx, &usecase.ListSpotsInput{Filter: entity.SpotFilter{WasteType: &wt}})

	require.NoError(t, err)
	require.Len(t, spots, 1)
	assert.Equal(t, paper.ID, spots[0].ID)
}

func TestSpotService_GetSpot_NotFound(t *testing.T) {
	fx := createTestSpotService(t)
	ctx := context.Background()
	spotID := uuid.New()
	fx.spotRepo.EXPECT().FindByID(ctx, spotID).Return(nil, repository.ErrSpotNotFound)

	_, err := fx.service.GetSpot(ctx, spotID)

	assert.True(t, errors.Is(err, domainerrors.ErrSpotNotFound))
}

func TestSpotService_SpotQRCode(t *testing.T) {
	fx := createTestSpotService(t)
	ctx := context.Background()
	spotID := uuid.New()
	fx.spotRepo.EXPECT().FindByID(ctx, spotID).Return(&entity.RecyclingSpot{ID: spotID}, nil)
	fx.qrCode.EXPECT().GenerateSpotQR(spotID).Return([]byte("png"), nil)

	data, err := fx.service.SpotQRCode(ctx, spotID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}
