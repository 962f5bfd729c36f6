package repository

import (
	"context"

	"ecospot/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSpotNotFound is returned when a recycling spot does not exist.
var ErrSpotNotFound = errors.New("recycling spot not found")

// SpotRepository defines the persistence operations for recycling spots.
type SpotRepository interface {
	// Create persists a new spot and its tile key. ID and CreatedAt are assigned when empty.
	Create(ctx context.Context, spot *entity.RecyclingSpot) error

	// FindByID retrieves a spot.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecyclingSpot, error)

	// FindByIDForUpdate retrieves a spot and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.RecyclingSpot, error)

	// List returns every spot ordered by creation time.
	List(ctx context.Context) ([]*entity.RecyclingSpot, error)

	// ListInTiles returns the spots whose tile key is in keys.
	ListInTiles(ctx context.Context, keys []int64) ([]*entity.RecyclingSpot, error)

	// UpdateRatingAggregate stores AverageRating and RatingCount.
	UpdateRatingAggregate(ctx context.Context, spot *entity.RecyclingSpot) error
}

// ErrRatingNotFound is returned when the user has not rated the spot.
var ErrRatingNotFound = errors.New("rating not found")

// RatingRepository defines the persistence operations for per-user ratings.
type RatingRepository interface {
	// FindRating retrieves the user's rating of a spot.
	FindRating(ctx context.Context, userID, spotID uuid.UUID) (*entity.Rating, error)

	// UpsertRating inserts or replaces the user's rating of a spot.
	UpsertRating(ctx context.Context, rating *entity.Rating) error
}

// CommentRepository defines the persistence operations for spot comments.
type CommentRepository interface {
	// Create appends a comment. ID and CreatedAt are assigned when empty.
	Create(ctx context.Context, comment *entity.Comment) error

	// ListBySpot returns a spot's comments, oldest first.
	ListBySpot(ctx context.Context, spotID uuid.UUID) ([]*entity.Comment, error)
}
