// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"ecospot/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// LocationWrite is the outcome of a location update.
type LocationWrite struct {
	Previous *entity.Location // Location before the write, nil when none was stored.
	Version  int64            // LocationVersion after the write.
}

// UserRepository defines the persistence operations for user profiles.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create persists a new user. ID and timestamps are assigned when empty.
	Create(ctx context.Context, user *entity.User) error

	// UpdateLocation stores a new location and increments LocationVersion.
	// The row is locked so concurrent writes of the same user are serialized.
	UpdateLocation(ctx context.Context, id uuid.UUID, location entity.Location, at time.Time) (*LocationWrite, error)

	// UpdateFCMToken replaces the user's push token.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error

	// UpdateProfileImage stores the download reference of the profile image.
	UpdateProfileImage(ctx context.Context, id uuid.UUID, url string) error

	// AddPoints atomically adds delta to the user's points.
	AddPoints(ctx context.Context, id uuid.UUID, delta int) error

	// ListTopByPoints returns users ordered by points, highest first.
	ListTopByPoints(ctx context.Context, limit int) ([]*entity.User, error)
}
