package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

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

// ErrFeedClosed is reported by a subscription whose change bus shut down.
var ErrFeedClosed = errors.New("live feed closed")

type liveService struct {
	spotRepo    repository.SpotRepository
	commentRepo repository.CommentRepository
	ratingRepo  repository.RatingRepository
	bus         service.ChangeBus
	logger      *slog.Logger
	now         func() time.Time
}

// LiveServiceParams holds dependencies for LiveService, injected by Fx.
type LiveServiceParams struct {
	fx.In

	SpotRepo    repository.SpotRepository
	CommentRepo repository.CommentRepository
	RatingRepo  repository.RatingRepository
	ChangeBus   service.ChangeBus
	Logger      *slog.Logger
}

// NewLiveService creates the live feed service.
func NewLiveService(params LiveServiceParams) usecase.LiveUsecase {
	return &liveService{
		spotRepo:    params.SpotRepo,
		commentRepo: params.CommentRepo,
		ratingRepo:  params.RatingRepo,
		bus:         params.ChangeBus,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// WatchSpots streams the filtered spot list.
func (srv *liveService) WatchSpots(ctx context.Context, input *usecase.ListSpotsInput, consumer func(usecase.Snapshot[[]entity.RecyclingSpot])) (usecase.Subscription, error) {
	var filter entity.SpotFilter
	var origin *entity.Location
	if input != nil {
		filter = input.Filter
		origin = input.Origin
	}

	load := func(ctx context.Context) ([]entity.RecyclingSpot, error) {
		spots, err := srv.spotRepo.List(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list spots")
		}
		if filter.Active() {
			spots = filter.Apply(spots, origin)
		}
		result := make([]entity.RecyclingSpot, len(spots))
		for i, spot := range spots {
			result[i] = copySpot(spot)
		}

		return result, nil
	}

	return watch(ctx, srv, constants.TopicSpots, load, consumer)
}

// WatchSpot streams one spot, including its rating aggregate.
func (srv *liveService) WatchSpot(ctx context.Context, spotID uuid.UUID, consumer func(usecase.Snapshot[entity.RecyclingSpot])) (usecase.Subscription, error) {
	load := func(ctx context.Context) (entity.RecyclingSpot, error) {
		spot, err := srv.spotRepo.FindByID(ctx, spotID)
		if err != nil {
			if errors.Is(err, repository.ErrSpotNotFound) {
				return entity.RecyclingSpot{}, domainerrors.ErrSpotNotFound
			}

			return entity.RecyclingSpot{}, errors.Wrap(err, "failed to get spot")
		}

		return copySpot(spot), nil
	}

	return watch(ctx, srv, constants.SpotTopic(spotID.String()), load, consumer)
}

// WatchComments streams a spot's comments, oldest first.
func (srv *liveService) WatchComments(ctx context.Context, spotID uuid.UUID, consumer func(usecase.Snapshot[[]entity.Comment])) (usecase.Subscription, error) {
	load := func(ctx context.Context) ([]entity.Comment, error) {
		comments, err := srv.commentRepo.ListBySpot(ctx, spotID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list comments")
		}
		result := make([]entity.Comment, len(comments))
		for i, c := range comments {
			result[i] = *c
		}

		return result, nil
	}

	return watch(ctx, srv, constants.SpotCommentsTopic(spotID.String()), load, consumer)
}

// WatchUserRating streams the user's rating of a spot, 0 while unrated.
func (srv *liveService) WatchUserRating(ctx context.Context, userID, spotID uuid.UUID, consumer func(usecase.Snapshot[int])) (usecase.Subscription, error) {
	load := func(ctx context.Context) (int, error) {
		rating, err := srv.ratingRepo.FindRating(ctx, userID, spotID)
		if errors.Is(err, repository.ErrRatingNotFound) {
			return 0, nil
		}
		if err != nil {
			return 0, errors.Wrap(err, "failed to get rating")
		}

		return rating.Value, nil
	}

	return watch(ctx, srv, constants.UserRatingTopic(userID.String(), spotID.String()), load, consumer)
}

func copySpot(spot *entity.RecyclingSpot) entity.RecyclingSpot {
	c := *spot
	c.WasteTypes = slices.Clone(spot.WasteTypes)

	return c
}

// subscription is the handle of one running feed.
type subscription struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu  sync.Mutex
	err error
}

func (s *subscription) Cancel() {
	s.cancel()
}

func (s *subscription) Done() <-chan struct{} {
	return s.done
}

func (s *subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

func (s *subscription) fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// watch subscribes before the initial load so no change between the two is missed.
// The consumer receives the initial snapshot and one snapshot per change signal.
func watch[T any](
	ctx context.Context,
	srv *liveService,
	topic string,
	load func(context.Context) (T, error),
	consumer func(usecase.Snapshot[T]),
) (usecase.Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)

	signals, unsubscribe, err := srv.bus.Subscribe(ctx, topic)
	if err != nil {
		cancel()

		return nil, errors.Wrapf(err, "failed to subscribe to %s", topic)
	}

	initial, err := load(ctx)
	if err != nil {
		unsubscribe()
		cancel()

		return nil, err
	}

	sub := &subscription{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(sub.done)
		defer unsubscribe()
		defer cancel()

		var seq uint64 = 1
		consumer(usecase.Snapshot[T]{Topic: topic, Seq: seq, Data: initial, At: srv.now()})

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-signals:
				if !ok {
					if ctx.Err() == nil {
						sub.fail(ErrFeedClosed)
					}

					return
				}

				data, err := load(ctx)
				if err != nil {
					if ctx.Err() == nil {
						srv.logger.Warn("Live feed reload failed", slog.String("topic", topic), slog.Any("error", err))
						sub.fail(err)
					}

					return
				}
				seq++
				consumer(usecase.Snapshot[T]{Topic: topic, Seq: seq, Data: data, At: srv.now()})
			}
		}
	}()

	return sub, nil
}
