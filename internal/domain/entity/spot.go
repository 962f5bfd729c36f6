package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Rating bounds accepted from users.
const (
	MinRating = 1
	MaxRating = 5
)

// RecyclingSpot is a recycling drop-off point on the map.
type RecyclingSpot struct {
	ID            uuid.UUID  // The Global Unique Identifier (GUID) for the spot.
	Name          string     // Display name shown on the map marker.
	Description   string     // Free-text description.
	Location      Location   // Where the spot is.
	WasteTypes    WasteTypes // Waste categories accepted at the spot.
	AuthorID      uuid.UUID  // The user who added the spot.
	AuthorName    string     // Display name of the author at creation time.
	AverageRating float64    // Mean of all ratings on file.
	RatingCount   int        // Number of distinct users who rated the spot.
	CreatedAt     time.Time  // Assigned by the server on insert.
}

// Notifiable reports whether the spot can appear in a proximity notification.
func (s *RecyclingSpot) Notifiable() bool {
	return strings.TrimSpace(s.Name) != "" && s.Location.Valid()
}

// ApplyRating folds a user's rating into the aggregate.
// previous is the user's earlier rating for the spot, or nil for a first rating.
// It reports whether this was the user's first rating.
func (s *RecyclingSpot) ApplyRating(previous *int, next int) (firstTime bool) {
	if previous == nil {
		count := float64(s.RatingCount)
		s.AverageRating = (s.AverageRating*count + float64(next)) / (count + 1)
		s.RatingCount++

		return true
	}

	// Rows written before the count existed carry 0; the user's own rating counts as one.
	if s.RatingCount < 1 {
		s.RatingCount = 1
	}
	count := float64(s.RatingCount)
	s.AverageRating = (s.AverageRating*count - float64(*previous) + float64(next)) / count

	return false
}

// ValidRating reports whether value is an accepted star rating.
func ValidRating(value int) bool {
	return value >= MinRating && value <= MaxRating
}

// Rating is a single user's rating of a spot.
type Rating struct {
	UserID    uuid.UUID
	SpotID    uuid.UUID
	Value     int
	UpdatedAt time.Time
}

// Comment is an append-only remark on a spot.
type Comment struct {
	ID         uuid.UUID
	SpotID     uuid.UUID
	Text       string
	AuthorID   uuid.UUID
	AuthorName string
	CreatedAt  time.Time
}
