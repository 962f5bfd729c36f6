// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode/utf8"

	"ecospot/config"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input past 72 bytes.
const bcryptMaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
	maxLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{
		cost:      bcrypt.DefaultCost,
		minLength: 6,
		maxLength: bcryptMaxPasswordBytes,
	}
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		hasher.cost = cfg.Auth.BcryptCost
	}
	if cfg.PasswordStrength != nil {
		if cfg.PasswordStrength.MinLength > 0 {
			hasher.minLength = cfg.PasswordStrength.MinLength
		}
		if cfg.PasswordStrength.MaxLength > 0 && cfg.PasswordStrength.MaxLength < bcryptMaxPasswordBytes {
			hasher.maxLength = cfg.PasswordStrength.MaxLength
		}
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength enforces the configured length bounds.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < h.minLength {
		return domainerrors.ErrWeakPassword.WithDetails(fmt.Sprintf("minimum length is %d", h.minLength))
	}
	if len(password) > h.maxLength {
		return domainerrors.ErrWeakPassword.WithDetails(fmt.Sprintf("maximum length is %d bytes", h.maxLength))
	}

	return nil
}
