package usecase

import (
	"context"
	"time"

	"ecospot/internal/domain/entity"

	"github.com/google/uuid"
)

// Snapshot is one immutable view of a live feed.
// Seq increases by one per delivery within a subscription.
type Snapshot[T any] struct {
	Topic string
	Seq   uint64
	Data  T
	At    time.Time
}

// Subscription is the handle of a live feed.
type Subscription interface {
	// Cancel stops delivery. It is safe to call more than once.
	Cancel()
	// Done is closed once the feed has stopped and the consumer will not be called again.
	Done() <-chan struct{}
	// Err reports why the feed stopped, nil after Cancel or context cancellation.
	Err() error
}

// LiveUsecase opens live feeds that deliver a fresh snapshot after every change.
// Consumers are called sequentially from one goroutine per subscription.
type LiveUsecase interface {
	WatchSpots(ctx context.Context, input *ListSpotsInput, consumer func(Snapshot[[]entity.RecyclingSpot])) (Subscription, error)
	WatchSpot(ctx context.Context, spotID uuid.UUID, consumer func(Snapshot[entity.RecyclingSpot])) (Subscription, error)
	WatchComments(ctx context.Context, spotID uuid.UUID, consumer func(Snapshot[[]entity.Comment])) (Subscription, error)
	WatchUserRating(ctx context.Context, userID, spotID uuid.UUID, consumer func(Snapshot[int])) (Subscription, error)
}
