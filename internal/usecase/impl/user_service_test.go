package impl

import (
	"context"
	"testing"
	"time"

	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/repository"
	"ecospot/internal/domain/service"
	mockRepo "ecospot/internal/mocks/repository"
	mockSvc "ecospot/internal/mocks/service"
	"ecospot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	storage          *mockSvc.MockObjectStorage
	tx               *txRepos
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	storage := mockSvc.NewMockObjectStorage(t)

	svc, err := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		AuthRepo:         authRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Storage:          storage,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})
	require.NoError(t, err)

	return userServiceFixtures{
		service:          svc,
		txManager:        txManager,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		storage:          storage,
		tx:               newTxRepos(t),
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		FullName: " Test User ",
		Email:    " Test@Example.com ",
		Password: "secret1",
		FCMToken: "device-token",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	expectTransaction(fx.txManager, fx.tx)
	fx.tx.authRepo.EXPECT().FindAuthenticationByEmail(ctx, "test@example.com").Return(nil, repository.ErrAuthNotFound)
	fx.tx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.FullName == "Test User" && u.Email == "test@example.com" && u.FCMToken == "device-token"
		})).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.tx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.PasswordHash == "hashed_password" && a.UserID != uuid.Nil
		})).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_RegisterUser_EmailInUse(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{FullName: "Test User", Email: "test@example.com", Password: "secret1"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	expectTransaction(fx.txManager, fx.tx)
	fx.tx.authRepo.EXPECT().FindAuthenticationByEmail(ctx, input.Email).
		Return(&entity.Authentication{UserID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyInUse))
}

func TestUserService_RegisterUser_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.RegisterUserInput
		wantErr error
	}{
		{
			name:    "malformed email",
			input:   &usecase.RegisterUserInput{FullName: "A", Email: "not-an-email", Password: "secret1"},
			wantErr: domainerrors.ErrInvalidEmail,
		},
		{
			name:    "blank name",
			input:   &usecase.RegisterUserInput{FullName: "  ", Email: "a@example.com", Password: "secret1"},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			_, err := fx.service.RegisterUser(context.Background(), tt.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)
	input := &usecase.RegisterUserInput{FullName: "A", Email: "a@example.com", Password: "123"}

	fx.hasher.EXPECT().ValidatePasswordStrength("123").Return(domainerrors.ErrWeakPassword)

	_, err := fx.service.RegisterUser(context.Background(), input)

	assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
}

func TestUserService_RegisterUser_ImageFailureKeepsAccount(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		FullName:     "Test User",
		Email:        "test@example.com",
		Password:     "secret1",
		ProfileImage: &usecase.ImageUpload{ContentType: "image/png", Data: []byte("png")},
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	expectTransaction(fx.txManager, fx.tx)
	fx.tx.authRepo.EXPECT().FindAuthenticationByEmail(ctx, input.Email).Return(nil, repository.ErrAuthNotFound)
	fx.tx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.tx.authRepo.EXPECT().CreateAuthentication(ctx, mock.Anything).Return(nil)
	fx.storage.EXPECT().Put(ctx, mock.Anything, "image/png", input.ProfileImage.Data).Return("", errors.New("bucket down"))

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Empty(t, output.User.ProfileImageURL)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.authRepo.EXPECT().FindAuthenticationByEmail(ctx, "test@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "test@example.com"}, nil)
	fx.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx, userID, mock.AnythingOfType("time.Time")).Return(2, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID, []string{"user"}).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(rt *entity.RefreshToken) bool {
			return rt.UserID == userID && rt.TokenHash == "refresh-hash"
		})).
		Return(nil)
	fx.userRepo.EXPECT().UpdateFCMToken(ctx, userID, "device-token").Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "Test@example.com", Password: "secret1", FCMToken: "device-token"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, "device-token", output.User.FCMToken)
}

func TestUserService_Login_PruneFailureDoesNotBlock(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.authRepo.EXPECT().FindAuthenticationByEmail(ctx, "test@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx, userID, mock.Anything).Return(0, errors.New("db down"))
	fx.tokenService.EXPECT().GenerateTokens(userID, []string{"user"}).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.Anything).Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "test@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().FindAuthenticationByEmail(ctx, "test@example.com").
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "test@example.com", Password: "wrong"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().FindAuthenticationByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrAuthNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "secret1"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh").
		Return(&service.Claims{UserID: userID, Roles: []string{"user"}, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "refresh-hash"}, nil)
	fx.tokenService.EXPECT().GenerateAccessToken(userID, []string{"user"}).Return("new-access", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestUserService_RefreshToken_RevokedSession(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: uuid.New()}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_DeletesSession(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: uuid.New()}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"})

	require.NoError(t, err)
}

func TestUserService_Logout_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("malformed"))

	err := fx.service.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "garbage"})

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}
