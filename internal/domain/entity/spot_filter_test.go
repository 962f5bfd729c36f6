package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterFixture() []*RecyclingSpot {
	return []*RecyclingSpot{
		{
			Name:       "Park Bin",
			AuthorName: "Ana",
			Location:   Location{Lat: 44.8125, Lng: 20.4612},
			WasteTypes: WasteTypes{WasteTypeGlass, WasteTypePlastic},
		},
		{
			Name:       "Mall Bin",
			AuthorName: "Bob",
			Location:   Location{Lat: 45.2671, Lng: 19.8335},
			WasteTypes: WasteTypes{WasteTypeBatteries},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestSpotFilter_NoCriteriaKeepsListAndOrder(t *testing.T) {
	spots := filterFixture()

	result := SpotFilter{}.Apply(spots, nil)

	assert.Equal(t, spots, result)
}

func TestSpotFilter_NameIsCaseInsensitive(t *testing.T) {
	spots := filterFixture()

	for _, text := range []string{"park", "PARK", "pArK"} {
		result := SpotFilter{Name: text}.Apply(spots, nil)
		assert.Equal(t, []*RecyclingSpot{spots[0]}, result, text)
	}
}

func TestSpotFilter_AuthorSubstring(t *testing.T) {
	spots := filterFixture()

	result := SpotFilter{Author: "an"}.Apply(spots, nil)

	assert.Equal(t, []*RecyclingSpot{spots[0]}, result)
}

func TestSpotFilter_WasteType(t *testing.T) {
	spots := filterFixture()

	result := SpotFilter{WasteType: ptr(WasteTypeBatteries)}.Apply(spots, nil)
	assert.Equal(t, []*RecyclingSpot{spots[1]}, result)

	result = SpotFilter{WasteType: ptr(WasteTypeMetal)}.Apply(spots, nil)
	assert.Empty(t, result)
}

func TestSpotFilter_ConflictingCriteriaYieldEmpty(t *testing.T) {
	spots := filterFixture()

	// "bin" matches everything, author "zoran" matches nothing.
	result := SpotFilter{Name: "bin", Author: "zoran"}.Apply(spots, nil)

	assert.Empty(t, result)
}

func TestSpotFilter_Radius(t *testing.T) {
	spots := filterFixture()
	origin := &Location{Lat: 44.8130, Lng: 20.4600}

	result := SpotFilter{RadiusKm: ptr(5.0)}.Apply(spots, origin)
	assert.Equal(t, []*RecyclingSpot{spots[0]}, result)

	result = SpotFilter{RadiusKm: ptr(100.0)}.Apply(spots, origin)
	assert.Equal(t, spots, result)
}

func TestSpotFilter_RadiusIncludesBoundary(t *testing.T) {
	spots := filterFixture()
	origin := &Location{Lat: 44.8130, Lng: 20.4600}
	exact := origin.DistanceKm(spots[0].Location)

	result := SpotFilter{RadiusKm: &exact}.Apply(spots, origin)

	assert.Equal(t, []*RecyclingSpot{spots[0]}, result)
}

func TestSpotFilter_RadiusSkippedWithoutOrigin(t *testing.T) {
	spots := filterFixture()

	result := SpotFilter{RadiusKm: ptr(0.1)}.Apply(spots, nil)

	assert.Equal(t, spots, result)
}

func TestSpotFilter_Active(t *testing.T) {
	assert.False(t, SpotFilter{}.Active())
	assert.True(t, SpotFilter{Author: "a"}.Active())
	assert.True(t, SpotFilter{RadiusKm: ptr(1.0)}.Active())
}
