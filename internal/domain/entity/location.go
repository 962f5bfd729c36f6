// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"ecospot/internal/domain/geo"

	"github.com/paulmach/orb"
)

// Location is a WGS84 coordinate in degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point converts the location to an orb point ({lng, lat}).
func (l Location) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// Valid reports whether the coordinate is inside the WGS84 range.
func (l Location) Valid() bool {
	return geo.ValidPoint(l.Point())
}

// DistanceKm returns the haversine distance to other in kilometers.
func (l Location) DistanceKm(other Location) float64 {
	return geo.DistanceKm(l.Point(), other.Point())
}

// SameLocation reports whether two optional locations are both set and equal.
func SameLocation(a, b *Location) bool {
	if a == nil || b == nil {
		return false
	}

	return *a == *b
}
