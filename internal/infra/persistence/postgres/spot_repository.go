package postgres

import (
	"context"

	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/geo"
	"ecospot/internal/domain/repository"
	"ecospot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// spotRepository implements the domain.SpotRepository interface using GORM.
type spotRepository struct {
	db *gorm.DB
}

// NewSpotRepository is the constructor for spotRepository.
func NewSpotRepository(db *gorm.DB) repository.SpotRepository {
	return &spotRepository{db: db}
}

// Create persists a new spot together with the tile key of its location.
func (repo *spotRepository) Create(ctx context.Context, spot *entity.RecyclingSpot) error {
	spotM := fromSpotDomain(spot)
	if spotM.ID == uuid.Nil {
		spotM.ID = uuid.Must(uuid.NewV7())
	}

	if err := repo.db.WithContext(ctx).Create(spotM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("spot violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recycling spot")
	}

	spot.ID = spotM.ID
	spot.CreatedAt = spotM.CreatedAt

	return nil
}

// FindByID retrieves a single spot.
func (repo *spotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecyclingSpot, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a spot with SELECT ... FOR UPDATE.
func (repo *spotRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.RecyclingSpot, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *spotRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.RecyclingSpot, error) {
	var spotM model.SpotModel
	if err := db.Where("id = ?", id).First(&spotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpotNotFound
		}

		return nil, errors.Wrap(err, "failed to find recycling spot by id")
	}

	return toSpotDomain(&spotM), nil
}

// List returns every spot, oldest first.
func (repo *spotRepository) List(ctx context.Context) ([]*entity.RecyclingSpot, error) {
	return repo.find(repo.db.WithContext(ctx))
}

// ListInTiles returns the spots indexed under any of keys.
func (repo *spotRepository) ListInTiles(ctx context.Context, keys []int64) ([]*entity.RecyclingSpot, error) {
	if len(keys) == 0 {
		return []*entity.RecyclingSpot{}, nil
	}

	return repo.find(repo.db.WithContext(ctx).Where("tile_key IN ?", keys))
}

func (repo *spotRepository) find(db *gorm.DB) ([]*entity.RecyclingSpot, error) {
	var spotModels []*model.SpotModel
	if err := db.Order("created_at ASC").Find(&spotModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recycling spots")
	}

	spots := make([]*entity.RecyclingSpot, 0, len(spotModels))
	for _, spotM := range spotModels {
		spots = append(spots, toSpotDomain(spotM))
	}

	return spots, nil
}

// UpdateRatingAggregate stores the spot's average rating and rating count.
func (repo *spotRepository) UpdateRatingAggregate(ctx context.Context, spot *entity.RecyclingSpot) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SpotModel{}).
		Where("id = ?", spot.ID).
		Updates(map[string]any{
			"average_rating": spot.AverageRating,
			"rating_count":   spot.RatingCount,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update spot rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSpotNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSpotDomain(data *model.SpotModel) *entity.RecyclingSpot {
	if data == nil {
		return nil
	}

	return &entity.RecyclingSpot{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Location:      entity.Location{Lat: data.Lat, Lng: data.Lng},
		WasteTypes:    entity.WasteTypesFromStrings(data.WasteTypes),
		AuthorID:      data.AuthorID,
		AuthorName:    data.AuthorName,
		AverageRating: data.AverageRating,
		RatingCount:   data.RatingCount,
		CreatedAt:     data.CreatedAt,
	}
}

func fromSpotDomain(data *entity.RecyclingSpot) *model.SpotModel {
	if data == nil {
		return nil
	}

	return &model.SpotModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Lat:           data.Location.Lat,
		Lng:           data.Location.Lng,
		TileKey:       geo.TileKey(data.Location.Point()),
		WasteTypes:    data.WasteTypes.ToStrings(),
		AuthorID:      data.AuthorID,
		AuthorName:    data.AuthorName,
		AverageRating: data.AverageRating,
		RatingCount:   data.RatingCount,
		CreatedAt:     data.CreatedAt,
	}
}
