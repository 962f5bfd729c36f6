package auth

import (
	"testing"
	"time"

	"ecospot/config"
	"ecospot/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	tokenService, err := NewJWTService(cfg)
	require.NoError(t, err)

	return tokenService.(*jwtService)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc := createTestJWTService(t)
	userID := uuid.New()
	roles := []string{"user"}

	accessToken, refreshToken, err := svc.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsSwappedTokenTypes(t *testing.T) {
	svc := createTestJWTService(t)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New(), []string{"user"})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := createTestJWTService(t)
	issued := time.Now().Add(-2 * time.Minute)
	svc.now = func() time.Time { return issued }

	accessToken, err := svc.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateAccessToken(accessToken)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := createTestJWTService(t)

	_, err := svc.ValidateAccessToken("not-a-jwt")
	assert.Error(t, err)
}

func TestJWTService_HashToken(t *testing.T) {
	svc := createTestJWTService(t)

	first := svc.HashToken("token")
	assert.Len(t, first, 64)
	assert.Equal(t, first, svc.HashToken("token"))
	assert.NotEqual(t, first, svc.HashToken("other"))
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
