package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

var (
	belgradeSquare = orb.Point{20.4612, 44.8125}
	kalemegdan     = orb.Point{20.4503, 44.8234}
	noviSad        = orb.Point{19.8335, 45.2671}
)

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(belgradeSquare, belgradeSquare))
	assert.Equal(t, 0.0, DistanceKm(noviSad, noviSad))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	assert.Equal(t, DistanceKm(belgradeSquare, noviSad), DistanceKm(noviSad, belgradeSquare))
	assert.Equal(t, DistanceKm(kalemegdan, belgradeSquare), DistanceKm(belgradeSquare, kalemegdan))
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	// Belgrade to Novi Sad is roughly 70 km in a straight line.
	assert.InDelta(t, 70.5, DistanceKm(belgradeSquare, noviSad), 1.0)
	assert.InDelta(t, 1.49, DistanceKm(belgradeSquare, kalemegdan), 0.05)
}

func TestDistanceKm_MeridianOffset(t *testing.T) {
	offsetDeg := 0.5 / EarthRadiusKm * 180 / math.Pi
	north := orb.Point{belgradeSquare.Lon(), belgradeSquare.Lat() + offsetDeg}

	assert.InDelta(t, 0.5, DistanceKm(belgradeSquare, north), 1e-9)
}

func TestValidPoint(t *testing.T) {
	tests := []struct {
		name  string
		point orb.Point
		want  bool
	}{
		{name: "belgrade", point: belgradeSquare, want: true},
		{name: "origin", point: orb.Point{0, 0}, want: true},
		{name: "latitude out of range", point: orb.Point{20, 91}, want: false},
		{name: "longitude out of range", point: orb.Point{-181, 10}, want: false},
		{name: "nan", point: orb.Point{math.NaN(), 10}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPoint(tt.point))
		})
	}
}
