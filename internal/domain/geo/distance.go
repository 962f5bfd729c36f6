// Package geo holds the great-circle math and the tile index shared by the
// spot filter and the proximity trigger.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used by every distance in the service.
const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine distance between two points in kilometers.
// Points follow the orb convention of {longitude, latitude} in degrees.
func DistanceKm(from, to orb.Point) float64 {
	lat1 := toRadians(from.Lat())
	lat2 := toRadians(to.Lat())
	dLat := toRadians(to.Lat() - from.Lat())
	dLng := toRadians(to.Lon() - from.Lon())

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// ValidPoint reports whether p is a usable WGS84 coordinate.
func ValidPoint(p orb.Point) bool {
	lat, lng := p.Lat(), p.Lon()
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
