package auth

import (
	"strings"
	"testing"

	"ecospot/config"
	domainerrors "ecospot/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("recycle")
	require.NoError(t, err)
	assert.NotEqual(t, "recycle", hash)

	assert.True(t, hasher.Check("recycle", hash))
	assert.False(t, hasher.Check("Recycle", hash))
	assert.False(t, hasher.Check("recycle", "not-a-hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("recycle")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	tests := []struct {
		name     string
		password string
		weak     bool
	}{
		{name: "too short", password: "12345", weak: true},
		{name: "minimum length", password: "123456"},
		{name: "multibyte counts runes", password: "šđčćžš"},
		{name: "past bcrypt limit", password: strings.Repeat("a", 73), weak: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.weak {
				assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))

				return
			}
			assert.NoError(t, err)
		})
	}
}
