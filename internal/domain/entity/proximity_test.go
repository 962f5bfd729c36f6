package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLocationChangedEvent_Moved(t *testing.T) {
	a := &Location{Lat: 44.81, Lng: 20.46}
	b := &Location{Lat: 44.82, Lng: 20.46}
	same := &Location{Lat: 44.81, Lng: 20.46}

	assert.True(t, (&LocationChangedEvent{Before: a, After: b}).Moved())
	assert.False(t, (&LocationChangedEvent{Before: a, After: same}).Moved())
	assert.False(t, (&LocationChangedEvent{Before: nil, After: b}).Moved())
	assert.False(t, (&LocationChangedEvent{Before: a, After: nil}).Moved())
}

func TestNotificationLedger_CoolingDown(t *testing.T) {
	spotID := uuid.New()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	ledger := NotificationLedger{spotID: now}

	assert.False(t, ledger.CoolingDown(uuid.New(), now, time.Hour))
	assert.True(t, ledger.CoolingDown(spotID, now.Add(10*time.Minute), time.Hour))
	assert.True(t, ledger.CoolingDown(spotID, now.Add(time.Hour), time.Hour))
	assert.False(t, ledger.CoolingDown(spotID, now.Add(61*time.Minute), time.Hour))
}

func TestNotificationLedger_MergeKeepsOtherEntries(t *testing.T) {
	kept := uuid.New()
	refreshed := uuid.New()
	added := uuid.New()
	old := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	now := old.Add(2 * time.Hour)

	ledger := NotificationLedger{kept: old, refreshed: old}
	ledger.Merge([]uuid.UUID{refreshed, added}, now)

	assert.Equal(t, NotificationLedger{kept: old, refreshed: now, added: now}, ledger)
}
