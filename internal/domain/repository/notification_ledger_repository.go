package repository

import (
	"context"
	"time"

	"ecospot/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationLedgerRepository stores proximity trigger state per user.
type NotificationLedgerRepository interface {
	// ClaimLocationVersion records version as handled for the user.
	// It returns false when an equal or newer version was already claimed.
	ClaimLocationVersion(ctx context.Context, userID uuid.UUID, version int64) (bool, error)

	// GetLedger returns the user's spot notification timestamps.
	GetLedger(ctx context.Context, userID uuid.UUID) (entity.NotificationLedger, error)

	// MergeLedger upserts at for each spot and leaves other entries untouched.
	MergeLedger(ctx context.Context, userID uuid.UUID, spotIDs []uuid.UUID, at time.Time) error
}
