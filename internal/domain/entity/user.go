package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the profile of an app user.
type User struct {
	ID                uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	FullName          string     // Display name shown on spots, comments and the ranking.
	Phone             string     // Contact phone number.
	Email             string     // Login email.
	ProfileImageURL   string     // Download reference of the profile image, empty when none.
	Points            int        // Gamification points. Only ever increases.
	Location          *Location  // Last reported location, nil until the first report.
	LocationUpdatedAt *time.Time // When Location was last written.
	LocationVersion   int64      // Incremented on every location write.
	FCMToken          string     // Push token of the user's current device.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DisplayName returns the name shown to other users.
func (u *User) DisplayName() string {
	if u == nil || u.FullName == "" {
		return UnknownAuthorName
	}

	return u.FullName
}

// UnknownAuthorName is shown when a profile has no name.
const UnknownAuthorName = "Unknown user"

// Reward points for user actions.
const (
	PointsAddSpot     = 10
	PointsFirstRating = 3
	PointsAddComment  = 5
)

// RankedUser is one row of the points leaderboard.
type RankedUser struct {
	Rank            int       `json:"rank"`
	UserID          uuid.UUID `json:"user_id"`
	FullName        string    `json:"full_name"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	Points          int       `json:"points"`
}

// Authentication is an email and password credential of a user.
type Authentication struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Email        string
	PasswordHash string // bcrypt hash.
	CreatedAt    time.Time
}

// RefreshToken is a long-lived session used to mint new access tokens.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 of the raw token.
	ExpiresAt time.Time
	CreatedAt time.Time
}
