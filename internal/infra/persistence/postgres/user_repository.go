package postgres

import (
	"context"
	"time"

	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/repository"
	"ecospot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.ID == uuid.Nil {
		userM.ID = uuid.Must(uuid.NewV7())
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyInUse.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateLocation locks the user row, stores the new location and bumps the version.
// It must run inside a transaction for the row lock to hold.
func (repo *userRepository) UpdateLocation(ctx context.Context, id uuid.UUID, location entity.Location, at time.Time) (*repository.LocationWrite, error) {
	var current model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "lat", "lng", "location_version").
		Where("id = ?", id).
		First(&current).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to lock user location")
	}

	write := &repository.LocationWrite{Version: current.LocationVersion + 1}
	if current.Lat != nil && current.Lng != nil {
		write.Previous = &entity.Location{Lat: *current.Lat, Lng: *current.Lng}
	}

	err = repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"lat":                 location.Lat,
			"lng":                 location.Lng,
			"location_updated_at": at,
			"location_version":    write.Version,
		}).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update user location")
	}

	return write, nil
}

// UpdateFCMToken replaces the push token of the user.
func (repo *userRepository) UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error {
	return repo.updateColumn(ctx, id, "fcm_token", token)
}

// UpdateProfileImage stores the profile image reference.
func (repo *userRepository) UpdateProfileImage(ctx context.Context, id uuid.UUID, url string) error {
	return repo.updateColumn(ctx, id, "profile_image_url", url)
}

// AddPoints increments points in a single statement so concurrent awards never overwrite each other.
func (repo *userRepository) AddPoints(ctx context.Context, id uuid.UUID, delta int) error {
	return repo.updateColumn(ctx, id, "points", gorm.Expr("points + ?", delta))
}

func (repo *userRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user "+column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ListTopByPoints returns the highest scoring users. Ties go to the earlier account.
func (repo *userRepository) ListTopByPoints(ctx context.Context, limit int) ([]*entity.User, error) {
	var userModels []*model.UserModel
	err := repo.db.WithContext(ctx).
		Order("points DESC").
		Order("created_at ASC").
		Limit(limit).
		Find(&userModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users by points")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:                data.ID,
		FullName:          data.FullName,
		Phone:             data.Phone,
		Email:             data.Email,
		ProfileImageURL:   data.ProfileImageURL,
		Points:            data.Points,
		LocationUpdatedAt: data.LocationUpdatedAt,
		LocationVersion:   data.LocationVersion,
		FCMToken:          data.FCMToken,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	if data.Lat != nil && data.Lng != nil {
		user.Location = &entity.Location{Lat: *data.Lat, Lng: *data.Lng}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:                data.ID,
		FullName:          data.FullName,
		Phone:             data.Phone,
		Email:             data.Email,
		ProfileImageURL:   data.ProfileImageURL,
		Points:            data.Points,
		LocationUpdatedAt: data.LocationUpdatedAt,
		LocationVersion:   data.LocationVersion,
		FCMToken:          data.FCMToken,
	}
	if data.Location != nil {
		lat, lng := data.Location.Lat, data.Location.Lng
		userM.Lat, userM.Lng = &lat, &lng
	}

	return userM
}
