package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ecospot/internal/delivery/context"
	"ecospot/internal/domain/constants"
	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/repository"
	"ecospot/internal/domain/service"
	"ecospot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type spotService struct {
	txManager repository.TransactionManager
	spotRepo  repository.SpotRepository
	qrCode    service.QRCodeService
	bus       service.ChangeBus
	logger    *slog.Logger
}

// SpotServiceParams holds dependencies for SpotService, injected by Fx.
type SpotServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	SpotRepo  repository.SpotRepository
	QRCode    service.QRCodeService
	ChangeBus service.ChangeBus
	Logger    *slog.Logger
}

// NewSpotService creates a new spot service.
func NewSpotService(params SpotServiceParams) usecase.SpotUsecase {
	return &spotService{
		txManager: params.TxManager,
		spotRepo:  params.SpotRepo,
		qrCode:    params.QRCode,
		bus:       params.ChangeBus,
		logger:    params.Logger,
	}
}

func (srv *spotService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSpot adds a spot and rewards its author.
func (srv *spotService) CreateSpot(ctx context.Context, authorID uuid.UUID, input *usecase.CreateSpotInput) (*entity.RecyclingSpot, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if !input.Location.Valid() {
		return nil, domainerrors.ErrInvalidLocation
	}
	for _, wt := range input.WasteTypes {
		if !wt.IsValid() {
			return nil, domainerrors.ErrInvalidWasteType.WithDetails(wt.String())
		}
	}

	spot := &entity.RecyclingSpot{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Location:    input.Location,
		WasteTypes:  input.WasteTypes.Normalize(),
		AuthorID:    authorID,
	}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		author, err := repoFactory.UserRepo().FindByID(ctx, authorID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load author")
		}
		spot.AuthorName = author.DisplayName()

		if err := repoFactory.SpotRepo().Create(ctx, spot); err != nil {
			return errors.Wrap(err, "failed to create spot")
		}

		if err := repoFactory.UserRepo().AddPoints(ctx, authorID, entity.PointsAddSpot); err != nil {
			return errors.Wrap(err, "failed to reward author")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Spot created", slog.Any("spotID", spot.ID), userIDAttr(authorID))
	publishChanges(ctx, srv.bus, srv.log(ctx), constants.TopicSpots, constants.SpotTopic(spot.ID.String()))

	return spot, nil
}

// GetSpot retrieves a spot.
func (srv *spotService) GetSpot(ctx context.Context, spotID uuid.UUID) (*entity.RecyclingSpot, error) {
	spot, err := srv.spotRepo.FindByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, repository.ErrSpotNotFound) {
			return nil, domainerrors.ErrSpotNotFound
		}

		return nil, errors.Wrap(err, "failed to get spot")
	}

	return spot, nil
}

// ListSpots returns the spots matching the filter, oldest first.
func (srv *spotService) ListSpots(ctx context.Context, input *usecase.ListSpotsInput) ([]*entity.RecyclingSpot, error) {
	spots, err := srv.spotRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spots")
	}
	if input == nil || !input.Filter.Active() {
		return spots, nil
	}

	return input.Filter.Apply(spots, input.Origin), nil
}

// SpotQRCode renders the QR code of an existing spot.
func (srv *spotService) SpotQRCode(ctx context.Context, spotID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetSpot(ctx, spotID); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateSpotQR(spotID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate qr code")
	}

	return png, nil
}
