package postgres

import (
	"context"

	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/repository"
	"ecospot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements the domain.RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// FindRating retrieves the rating a user gave a spot.
func (repo *ratingRepository) FindRating(ctx context.Context, userID, spotID uuid.UUID) (*entity.Rating, error) {
	var ratingM model.RatingModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND spot_id = ?", userID, spotID).
		First(&ratingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return &entity.Rating{
		UserID:    ratingM.UserID,
		SpotID:    ratingM.SpotID,
		Value:     ratingM.Value,
		UpdatedAt: ratingM.UpdatedAt,
	}, nil
}

// UpsertRating inserts the rating or replaces the value already on file.
func (repo *ratingRepository) UpsertRating(ctx context.Context, rating *entity.Rating) error {
	ratingM := &model.RatingModel{
		UserID:    rating.UserID,
		SpotID:    rating.SpotID,
		Value:     rating.Value,
		UpdatedAt: rating.UpdatedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "spot_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(ratingM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSpotNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}
