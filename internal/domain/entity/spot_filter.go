package entity

import "strings"

// SpotFilter holds the optional criteria of the spot list.
// Empty fields are inactive and all active predicates must hold.
type SpotFilter struct {
	Name      string
	WasteType *WasteType
	RadiusKm  *float64
	Author    string
}

// Active reports whether any criterion is set.
func (f SpotFilter) Active() bool {
	return f.Name != "" || f.WasteType != nil || f.RadiusKm != nil || f.Author != ""
}

// Apply returns the spots matching every active criterion, in input order.
// The radius criterion is skipped when origin is nil.
func (f SpotFilter) Apply(spots []*RecyclingSpot, origin *Location) []*RecyclingSpot {
	name := strings.ToLower(f.Name)
	author := strings.ToLower(f.Author)

	result := make([]*RecyclingSpot, 0, len(spots))
	for _, spot := range spots {
		if name != "" && !strings.Contains(strings.ToLower(spot.Name), name) {
			continue
		}
		if f.WasteType != nil && !spot.WasteTypes.Contains(*f.WasteType) {
			continue
		}
		if f.RadiusKm != nil && origin != nil && origin.DistanceKm(spot.Location) > *f.RadiusKm {
			continue
		}
		if author != "" && !strings.Contains(strings.ToLower(spot.AuthorName), author) {
			continue
		}
		result = append(result, spot)
	}

	return result
}
