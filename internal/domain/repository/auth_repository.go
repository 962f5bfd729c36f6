package repository

import (
	"context"

	"ecospot/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for credential persistence.
var (
	// ErrAuthNotFound is returned when no credential exists for an email.
	ErrAuthNotFound = errors.New("authentication not found")
	// ErrEmailTaken is returned when a credential already exists for an email.
	ErrEmailTaken = errors.New("email already registered")
)

// AuthRepository defines the persistence operations for email credentials.
type AuthRepository interface {
	// CreateAuthentication persists a credential. Returns ErrEmailTaken on a duplicate email.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthenticationByEmail retrieves the credential of an email.
	FindAuthenticationByEmail(ctx context.Context, email string) (*entity.Authentication, error)
}
