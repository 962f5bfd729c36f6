package entity

import (
	"slices"
	"strings"
)

// WasteType is a category of waste accepted at a recycling spot.
type WasteType string

// Waste types accepted at recycling spots.
const (
	WasteTypeBatteries   WasteType = "batteries"
	WasteTypeElectronics WasteType = "electronics"
	WasteTypeGlass       WasteType = "glass"
	WasteTypePlastic     WasteType = "plastic"
	WasteTypeMetal       WasteType = "metal"
	WasteTypePaper       WasteType = "paper"
)

// AllWasteTypes lists every waste type in display order.
var AllWasteTypes = []WasteType{
	WasteTypeBatteries,
	WasteTypeElectronics,
	WasteTypeGlass,
	WasteTypePlastic,
	WasteTypeMetal,
	WasteTypePaper,
}

// ParseWasteType accepts any letter case, so "GLASS" and "glass" are equal.
func ParseWasteType(s string) (WasteType, bool) {
	wt := WasteType(strings.ToLower(strings.TrimSpace(s)))

	return wt, wt.IsValid()
}

// String returns the string representation of the WasteType.
func (w WasteType) String() string {
	return string(w)
}

// IsValid checks if the WasteType is a known value.
func (w WasteType) IsValid() bool {
	return slices.Contains(AllWasteTypes, w)
}

// WasteTypes is a set of waste types attached to a spot.
type WasteTypes []WasteType

// Contains checks if the set contains a specific waste type.
func (ws WasteTypes) Contains(wt WasteType) bool {
	return slices.Contains(ws, wt)
}

// Normalize drops duplicates and keeps display order.
func (ws WasteTypes) Normalize() WasteTypes {
	result := make(WasteTypes, 0, len(ws))
	for _, wt := range AllWasteTypes {
		if ws.Contains(wt) {
			result = append(result, wt)
		}
	}

	return result
}

// ToStrings converts WasteTypes to []string for persistence.
func (ws WasteTypes) ToStrings() []string {
	result := make([]string, len(ws))
	for i, wt := range ws {
		result[i] = wt.String()
	}

	return result
}

// WasteTypesFromStrings converts []string to WasteTypes, filtering out unknown values.
func WasteTypesFromStrings(ss []string) WasteTypes {
	result := make(WasteTypes, 0, len(ss))
	for _, s := range ss {
		if wt, ok := ParseWasteType(s); ok {
			result = append(result, wt)
		}
	}

	return result
}
