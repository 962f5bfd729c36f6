package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationChangedEvent is emitted after a user's location write commits.
type LocationChangedEvent struct {
	UserID     uuid.UUID `json:"user_id"`
	Before     *Location `json:"before,omitempty"`
	After      *Location `json:"after,omitempty"`
	Version    int64     `json:"version"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Moved reports whether the event carries a real position change.
// Events without both positions or with an unchanged position are ignored.
func (e *LocationChangedEvent) Moved() bool {
	return e.Before != nil && e.After != nil && !SameLocation(e.Before, e.After)
}

// NotificationLedger maps spot id to the last time the user was notified about it.
type NotificationLedger map[uuid.UUID]time.Time

// CoolingDown reports whether the spot was notified within cooldown of now.
// Notification is allowed again once strictly more than cooldown has elapsed.
func (l NotificationLedger) CoolingDown(spotID uuid.UUID, now time.Time, cooldown time.Duration) bool {
	last, ok := l[spotID]
	if !ok {
		return false
	}

	return now.Sub(last) <= cooldown
}

// Merge overwrites the given spots' timestamps and keeps all other entries.
func (l NotificationLedger) Merge(spotIDs []uuid.UUID, at time.Time) {
	for _, id := range spotIDs {
		l[id] = at
	}
}

// NearbySpot is a spot selected for a proximity notification.
type NearbySpot struct {
	Spot       *RecyclingSpot
	DistanceKm float64
}
