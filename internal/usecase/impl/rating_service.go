package impl

import (
	"context"
	"log/slog"
	"time"

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

type ratingService struct {
	txManager  repository.TransactionManager
	ratingRepo repository.RatingRepository
	bus        service.ChangeBus
	logger     *slog.Logger
	now        func() time.Time
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RatingRepo repository.RatingRepository
	ChangeBus  service.ChangeBus
	Logger     *slog.Logger
}

// NewRatingService creates a new rating service.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:  params.TxManager,
		ratingRepo: params.RatingRepo,
		bus:        params.ChangeBus,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RateSpot records the user's rating and folds it into the spot aggregate.
// The spot row is locked for the whole read-modify-write so concurrent
// ratings of the same spot are applied one after another.
func (srv *ratingService) RateSpot(ctx context.Context, userID, spotID uuid.UUID, value int) (*usecase.RateSpotOutput, error) {
	if !entity.ValidRating(value) {
		return nil, domainerrors.ErrInvalidRating
	}

	var (
		spot      *entity.RecyclingSpot
		firstTime bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		spot, err = repoFactory.SpotRepo().FindByIDForUpdate(ctx, spotID)
		if err != nil {
			if errors.Is(err, repository.ErrSpotNotFound) {
				return domainerrors.ErrSpotNotFound
			}

			return errors.Wrap(err, "failed to lock spot")
		}

		var previous *int
		existing, err := repoFactory.RatingRepo().FindRating(ctx, userID, spotID)
		switch {
		case err == nil:
			previous = &existing.Value
		case !errors.Is(err, repository.ErrRatingNotFound):
			return errors.Wrap(err, "failed to find rating")
		}

		firstTime = spot.ApplyRating(previous, value)
		if err := repoFactory.SpotRepo().UpdateRatingAggregate(ctx, spot); err != nil {
			return errors.Wrap(err, "failed to update rating aggregate")
		}

		rating := &entity.Rating{UserID: userID, SpotID: spotID, Value: value, UpdatedAt: srv.now().UTC()}
		if err := repoFactory.RatingRepo().UpsertRating(ctx, rating); err != nil {
			return errors.Wrap(err, "failed to save rating")
		}

		if firstTime {
			if err := repoFactory.UserRepo().AddPoints(ctx, userID, entity.PointsFirstRating); err != nil {
				return errors.Wrap(err, "failed to reward rating")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Spot rated", slog.Any("spotID", spotID), userIDAttr(userID),
		slog.Int("value", value), slog.Bool("firstTime", firstTime))
	publishChanges(ctx, srv.bus, srv.log(ctx),
		constants.SpotTopic(spotID.String()),
		constants.TopicSpots,
		constants.UserRatingTopic(userID.String(), spotID.String()),
	)

	return &usecase.RateSpotOutput{Spot: spot, Rating: value, FirstTime: firstTime}, nil
}

// GetUserRating returns the user's rating of the spot, or 0 when unrated.
func (srv *ratingService) GetUserRating(ctx context.Context, userID, spotID uuid.UUID) (int, error) {
	rating, err := srv.ratingRepo.FindRating(ctx, userID, spotID)
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to get rating")
	}

	return rating.Value, nil
}
