package usecase

import (
	"context"

	"ecospot/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSpotInput defines the data required to add a recycling spot.
type CreateSpotInput struct {
	Name        string
	Description string
	Location    entity.Location
	WasteTypes  entity.WasteTypes
}

// ListSpotsInput holds the filter and the caller's position for radius filtering.
type ListSpotsInput struct {
	Filter entity.SpotFilter
	Origin *entity.Location
}

// SpotUsecase defines operations on recycling spots.
type SpotUsecase interface {
	CreateSpot(ctx context.Context, authorID uuid.UUID, input *CreateSpotInput) (*entity.RecyclingSpot, error)
	GetSpot(ctx context.Context, spotID uuid.UUID) (*entity.RecyclingSpot, error)
	ListSpots(ctx context.Context, input *ListSpotsInput) ([]*entity.RecyclingSpot, error)
	SpotQRCode(ctx context.Context, spotID uuid.UUID) ([]byte, error)
}

// RateSpotOutput reports the spot aggregate after a rating.
type RateSpotOutput struct {
	Spot      *entity.RecyclingSpot
	Rating    int
	FirstTime bool
}

// RatingUsecase defines rating operations.
type RatingUsecase interface {
	RateSpot(ctx context.Context, userID, spotID uuid.UUID, value int) (*RateSpotOutput, error)
	// GetUserRating returns the user's rating of the spot, or 0 when unrated.
	GetUserRating(ctx context.Context, userID, spotID uuid.UUID) (int, error)
}

// CommentUsecase defines comment operations.
type CommentUsecase interface {
	AddComment(ctx context.Context, userID, spotID uuid.UUID, text string) (*entity.Comment, error)
	ListComments(ctx context.Context, spotID uuid.UUID) ([]*entity.Comment, error)
}

// RankingUsecase defines leaderboard operations.
type RankingUsecase interface {
	TopUsers(ctx context.Context, limit int) ([]*entity.RankedUser, error)
}
