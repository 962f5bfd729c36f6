package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthenticationModel stores the email/password credential of a user. Emails are unique across users.
type AuthenticationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_user_authentications_user"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_authentications_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

func (AuthenticationModel) TableName() string {
	return "user_authentications"
}

// RefreshTokenModel stores the sha256 hash of an issued refresh token, never the token itself.
// Rows past ExpiresAt are rejected on use and removed on logout.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_refresh_tokens_user"`
	TokenHash string    `gorm:"type:char(64);not null;uniqueIndex:idx_refresh_tokens_hash"`
	ExpiresAt time.Time `gorm:"not null;index:idx_refresh_tokens_expires"`
	CreatedAt time.Time
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
