package usecase

import (
	"context"

	"ecospot/internal/domain/entity"
)

// ProximitySkipReason explains why an event produced no notification.
type ProximitySkipReason string

// Skip reasons reported by the proximity trigger.
const (
	SkipNotMoved   ProximitySkipReason = "not_moved"
	SkipDuplicate  ProximitySkipReason = "duplicate_version"
	SkipLookup     ProximitySkipReason = "lookup_failed"
	SkipNoToken    ProximitySkipReason = "no_push_token"
	SkipNoneNearby ProximitySkipReason = "none_nearby"
	SkipSendFailed ProximitySkipReason = "send_failed"
)

// ProximityResult summarizes one handled location event.
type ProximityResult struct {
	Notified   []*entity.NearbySpot
	Skipped    ProximitySkipReason
	MessageID  string
	LedgerSync bool // Whether the ledger merge succeeded after a send.
}

// ProximityUsecase reacts to user location changes with nearby spot notifications.
type ProximityUsecase interface {
	// HandleLocationChange returns an error only when the event should be redelivered.
	HandleLocationChange(ctx context.Context, event *entity.LocationChangedEvent) (*ProximityResult, error)
}
