package compare

import "github.com/mesh-intelligence/colorcompare/pkg/types"

// AvailableFilters lists the distinct color names and non-empty pigment
// names across the given entry lists, collated for display. These are the
// only values worth offering as filters for the loaded data.
func AvailableFilters(sides ...[]types.ColorEntry) types.FilterOptions {
	colors := map[string]struct{}{}
	pigments := map[string]struct{}{}
	for _, entries := range sides {
		for _, e := range entries {
			colors[types.NormalizeColorName(e.ColorName)] = struct{}{}
			for _, p := range e.Pigments {
				if p.Name != "" {
					pigments[p.Name] = struct{}{}
				}
			}
		}
	}
	opts := types.FilterOptions{
		Colors:   keys(colors),
		Pigments: keys(pigments),
	}
	sortCollated(opts.Colors)
	sortCollated(opts.Pigments)
	return opts
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
