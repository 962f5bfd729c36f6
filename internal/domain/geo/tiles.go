package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/maptile/tilecover"
)

const (
	// TileZoom is the web-mercator zoom of the spot tile index.
	// A zoom 15 tile is about 1.2 km wide at the equator. Stored keys depend on it.
	TileZoom maptile.Zoom = 15

	// coverPadding widens the search box so the orb earth radius
	// (6378.137 km) never yields a box smaller than a 6371 km circle.
	coverPadding = 1.1

	// maxCoverTiles caps the cover size. Larger covers happen only near
	// the poles or the antimeridian and fall back to a full scan.
	maxCoverTiles = 64
)

// TileKey returns the index key of the tile containing p.
func TileKey(p orb.Point) int64 {
	return int64(maptile.At(p, TileZoom).Quadkey())
}

// CoverKeys returns the keys of every tile intersecting a box of radiusKm
// around center. ok is false when no compact cover exists and the caller
// has to scan without the index.
func CoverKeys(center orb.Point, radiusKm float64) (keys []int64, ok bool) {
	bound := orbgeo.NewBoundAroundPoint(center, radiusKm*1000*coverPadding)
	if bound.Min.Lon() > bound.Max.Lon() {
		return nil, false
	}

	lo := maptile.At(bound.Min, TileZoom)
	hi := maptile.At(bound.Max, TileZoom)
	if hi.X < lo.X || lo.Y < hi.Y {
		return nil, false
	}
	if count := uint64(hi.X-lo.X+1) * uint64(lo.Y-hi.Y+1); count > maxCoverTiles {
		return nil, false
	}

	cover := tilecover.Bound(bound, TileZoom)
	keys = make([]int64, 0, len(cover))
	for tile := range cover {
		keys = append(keys, int64(tile.Quadkey()))
	}

	return keys, true
}
