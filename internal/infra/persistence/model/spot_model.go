package model

import (
	"time"

	"github.com/google/uuid"
)

// SpotModel mirrors the 'recycling_spots' table.
// TileKey is the web-mercator quadkey of the spot at the index zoom and backs radius lookups.
type SpotModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string    `gorm:"type:varchar(200);not null"`
	Description   string    `gorm:"type:text"`
	Lat           float64   `gorm:"type:double precision;not null"`
	Lng           float64   `gorm:"type:double precision;not null"`
	TileKey       int64     `gorm:"not null;index"`
	WasteTypes    []string  `gorm:"type:jsonb;serializer:json"`
	AuthorID      uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorName    string    `gorm:"type:varchar(100)"`
	AverageRating float64   `gorm:"type:double precision;not null;default:0"`
	RatingCount   int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SpotModel) TableName() string {
	return "recycling_spots"
}

// RatingModel mirrors the 'spot_ratings' table. One row per user and spot.
type RatingModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	SpotID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Value     int       `gorm:"not null;check:value BETWEEN 1 AND 5"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "spot_ratings"
}

// CommentModel mirrors the 'spot_comments' table.
type CommentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SpotID     uuid.UUID `gorm:"type:uuid;not null;index:idx_spot_comments_spot_created"`
	Text       string    `gorm:"type:text;not null"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null"`
	AuthorName string    `gorm:"type:varchar(100)"`
	CreatedAt  time.Time `gorm:"index:idx_spot_comments_spot_created"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "spot_comments"
}
