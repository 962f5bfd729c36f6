package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ecospot/config"
	deliverycontext "ecospot/internal/delivery/context"
	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/repository"
	"ecospot/internal/domain/service"
	"ecospot/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	authRepo         repository.AuthRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	images           *profileImageUploader
	validate         *validator.Validate
	logger           *slog.Logger
	now              func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Storage          service.ObjectStorage
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) (usecase.UserUsecase, error) {
	images, err := newProfileImageUploader(params.Storage, params.UserRepo, params.Config.Storage.MaxImageSize)
	if err != nil {
		return nil, err
	}

	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		authRepo:         params.AuthRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		images:           images,
		validate:         validator.New(),
		logger:           params.Logger,
		now:              time.Now,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterUser creates the profile and the email credential in one transaction.
// The optional profile image is uploaded after commit; a failed upload keeps the account.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	if err := srv.validate.Var(email, "required,email"); err != nil {
		return nil, domainerrors.ErrInvalidEmail
	}
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("full name is required")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var registered *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.AuthRepo().FindAuthenticationByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyInUse
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		user := &entity.User{
			FullName: fullName,
			Phone:    strings.TrimSpace(input.Phone),
			Email:    email,
			FCMToken: strings.TrimSpace(input.FCMToken),
		}
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		auth := &entity.Authentication{UserID: user.ID, Email: email, PasswordHash: passwordHash}
		if err := repoFactory.AuthRepo().CreateAuthentication(ctx, auth); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrEmailAlreadyInUse
			}

			return errors.Wrap(err, "failed to create authentication")
		}
		registered = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	if input.ProfileImage != nil {
		url, err := srv.images.Upload(ctx, registered.ID, input.ProfileImage)
		if err != nil {
			srv.log(ctx).Warn("Profile image upload failed during registration",
				slog.Any("userID", registered.ID), slog.Any("error", err))
		} else {
			registered.ProfileImageURL = url
		}
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registered.ID))

	return &usecase.RegisterOutput{User: registered}, nil
}

// Login verifies the credential and opens a session.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	authRecord, err := srv.authRepo.FindAuthenticationByEmail(ctx, email)
	if errors.Is(err, repository.ErrAuthNotFound) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find authentication")
	}
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	if pruned, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx, user.ID, srv.now()); err != nil {
		srv.log(ctx).Warn("Failed to prune expired sessions", slog.Any("userID", user.ID), slog.Any("error", err))
	} else if pruned > 0 {
		srv.log(ctx).Debug("Pruned expired sessions", slog.Any("userID", user.ID), slog.Int64("count", pruned))
	}

	roles := entity.Roles{entity.RoleUser}
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.RefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token")
	}

	if token := strings.TrimSpace(input.FCMToken); token != "" && token != user.FCMToken {
		if err := srv.userRepo.UpdateFCMToken(ctx, user.ID, token); err != nil {
			srv.log(ctx).Warn("Failed to save push token on login", slog.Any("userID", user.ID), slog.Any("error", err))
		} else {
			user.FCMToken = token
		}
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken mints a new access token for a live session.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	session, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if session.UserID != claims.UserID {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(claims.UserID, claims.Roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout ends the session of the refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return domainerrors.ErrRefreshTokenInvalid
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Debug("User logged out", slog.Any("userID", claims.UserID))

	return nil
}

// userIDAttr keeps user ids uniform across log lines.
func userIDAttr(id uuid.UUID) slog.Attr {
	return slog.String("userID", id.String())
}
