package postgres

import (
	"context"
	"time"

	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/repository"
	"ecospot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// notificationLedgerRepository implements the domain.NotificationLedgerRepository interface.
type notificationLedgerRepository struct {
	db *gorm.DB
}

// NewNotificationLedgerRepository is the constructor for notificationLedgerRepository.
func NewNotificationLedgerRepository(db *gorm.DB) repository.NotificationLedgerRepository {
	return &notificationLedgerRepository{db: db}
}

// ClaimLocationVersion advances users.proximity_version only when version is newer.
// The conditional update is atomic, so two workers cannot both claim the same version.
func (repo *notificationLedgerRepository) ClaimLocationVersion(ctx context.Context, userID uuid.UUID, version int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND proximity_version < ?", userID, version).
		UpdateColumn("proximity_version", version)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim location version")
	}

	return result.RowsAffected > 0, nil
}

// GetLedger reads from the primary so a merge made by the previous event is always visible.
func (repo *notificationLedgerRepository) GetLedger(ctx context.Context, userID uuid.UUID) (entity.NotificationLedger, error) {
	var rows []*model.NotificationLedgerModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to read notification ledger")
	}

	ledger := make(entity.NotificationLedger, len(rows))
	for _, row := range rows {
		ledger[row.SpotID] = row.NotifiedAt
	}

	return ledger, nil
}

// MergeLedger upserts the notification time of each spot in one statement.
func (repo *notificationLedgerRepository) MergeLedger(ctx context.Context, userID uuid.UUID, spotIDs []uuid.UUID, at time.Time) error {
	if len(spotIDs) == 0 {
		return nil
	}

	rows := make([]*model.NotificationLedgerModel, 0, len(spotIDs))
	for _, spotID := range spotIDs {
		rows = append(rows, &model.NotificationLedgerModel{
			UserID:     userID,
			SpotID:     spotID,
			NotifiedAt: at,
		})
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "spot_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"notified_at"}),
		}).
		Create(&rows).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to merge notification ledger")
	}

	return nil
}
