package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
// It is an exported type so it can be used by the migration tool from other packages.
type UserModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FullName          string     `gorm:"type:varchar(100)"`
	Phone             string     `gorm:"type:varchar(32)"`
	Email             string     `gorm:"type:varchar(255);unique;not null"`
	ProfileImageURL   string     `gorm:"type:text"`
	Points            int        `gorm:"not null;default:0;index:idx_users_points,sort:desc"`
	Lat               *float64   `gorm:"type:double precision"`
	Lng               *float64   `gorm:"type:double precision"`
	LocationUpdatedAt *time.Time
	LocationVersion   int64  `gorm:"not null;default:0"`
	ProximityVersion  int64  `gorm:"not null;default:0"` // Highest location version handled by the proximity worker.
	FCMToken          string `gorm:"column:fcm_token;type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
