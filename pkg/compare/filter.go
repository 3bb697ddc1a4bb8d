package compare

import "github.com/mesh-intelligence/colorcompare/pkg/types"

// Apply narrows entries to those matching the active filters.
//
// With no active filters the input is returned as is. Otherwise an entry is
// kept when its color name is an active color filter or any of its pigments
// is an active pigment filter. The two dimensions combine with OR, so
// activating a filter can only add matches to the union, never demand both.
func Apply(entries []types.ColorEntry, filters types.FilterState) []types.ColorEntry {
	if filters.IsEmpty() {
		return entries
	}
	kept := make([]types.ColorEntry, 0, len(entries))
	for _, e := range entries {
		if Matches(e, filters) {
			kept = append(kept, e)
		}
	}
	return kept
}

// Matches reports whether a single entry passes non-empty filters.
// An entry without pigments can only match on its color name.
func Matches(entry types.ColorEntry, filters types.FilterState) bool {
	if filters.HasColor(types.NormalizeColorName(entry.ColorName)) {
		return true
	}
	for _, p := range entry.Pigments {
		if filters.HasPigment(p.Name) {
			return true
		}
	}
	return false
}
