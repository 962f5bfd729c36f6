// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ecospot/internal/domain/entity"
)

// --- Input DTOs ---

// ImageUpload is an uploaded image file.
type ImageUpload struct {
	ContentType string
	Data        []byte
}

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	FullName     string
	Phone        string
	Email        string
	Password     string
	FCMToken     string       // Optional, saved best-effort.
	ProfileImage *ImageUpload // Optional.
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
	FCMToken string // Optional, saved best-effort.
}

// RefreshTokenInput carries the refresh token of a session.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the session to end.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns a new access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// UserUsecase defines account registration and session operations.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
