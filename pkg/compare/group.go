package compare

import "github.com/mesh-intelligence/colorcompare/pkg/types"

// GroupByColorName buckets entries by exact color name. An empty name lands
// under types.UnknownColorName. Bucket order follows first occurrence and
// entries keep their relative order.
func GroupByColorName(entries []types.ColorEntry) types.GroupedEntries {
	var grouped types.GroupedEntries
	for _, e := range entries {
		grouped.Add(e)
	}
	return grouped
}
