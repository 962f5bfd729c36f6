package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLedgerModel mirrors the 'spot_notification_ledger' table.
// It records when a user was last notified about a spot.
type NotificationLedgerModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	SpotID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	NotifiedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationLedgerModel) TableName() string {
	return "spot_notification_ledger"
}

// All returns every persistence model in dependency order, for migrations.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&SpotModel{},
		&RatingModel{},
		&CommentModel{},
		&NotificationLedgerModel{},
	}
}
