package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecyclingSpot_ApplyRating_FirstThenUpdate(t *testing.T) {
	spot := &RecyclingSpot{AverageRating: 4.0, RatingCount: 2}

	first := spot.ApplyRating(nil, 5)
	assert.True(t, first)
	assert.Equal(t, 3, spot.RatingCount)
	assert.InDelta(t, 13.0/3.0, spot.AverageRating, 1e-9)

	previous := 5
	first = spot.ApplyRating(&previous, 1)
	assert.False(t, first)
	assert.Equal(t, 3, spot.RatingCount)
	assert.InDelta(t, 3.0, spot.AverageRating, 1e-9)
}

func TestRecyclingSpot_ApplyRating_FirstOnEmptySpot(t *testing.T) {
	spot := &RecyclingSpot{}

	assert.True(t, spot.ApplyRating(nil, 4))
	assert.Equal(t, 1, spot.RatingCount)
	assert.InDelta(t, 4.0, spot.AverageRating, 1e-9)
}

func TestRecyclingSpot_ApplyRating_UpdateWithZeroCount(t *testing.T) {
	spot := &RecyclingSpot{AverageRating: 2.0, RatingCount: 0}
	previous := 2

	assert.False(t, spot.ApplyRating(&previous, 5))
	assert.Equal(t, 1, spot.RatingCount)
	assert.InDelta(t, 5.0, spot.AverageRating, 1e-9)
}

func TestRecyclingSpot_Notifiable(t *testing.T) {
	assert.True(t, (&RecyclingSpot{Name: "Bin", Location: Location{Lat: 44.8, Lng: 20.4}}).Notifiable())
	assert.False(t, (&RecyclingSpot{Name: "  ", Location: Location{Lat: 44.8, Lng: 20.4}}).Notifiable())
	assert.False(t, (&RecyclingSpot{Name: "Bin", Location: Location{Lat: 120, Lng: 20.4}}).Notifiable())
}

func TestParseWasteType(t *testing.T) {
	wt, ok := ParseWasteType("GLASS")
	assert.True(t, ok)
	assert.Equal(t, WasteTypeGlass, wt)

	_, ok = ParseWasteType("wood")
	assert.False(t, ok)
}

func TestWasteTypes_Normalize(t *testing.T) {
	in := WasteTypes{WasteTypePaper, WasteTypeGlass, WasteTypePaper}

	assert.Equal(t, WasteTypes{WasteTypeGlass, WasteTypePaper}, in.Normalize())
}
