package compare

import (
	"github.com/mesh-intelligence/colorcompare/pkg/document"
	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

// Side is one half of a comparison: what to label the panel with and the
// entries to show in it.
type Side struct {
	Info    types.ObjectInfo
	Entries []types.ColorEntry
}

// SideFromDocument extracts a dataset document into a Side labelled label.
func SideFromDocument(label string, doc document.Doc) Side {
	return Side{Info: types.ObjectInfo{Label: label}, Entries: Extract(doc)}
}

// SideFromProduct wraps a product as a Side.
func SideFromProduct(p types.Product) Side {
	return Side{Info: p.Info, Entries: p.Entries}
}

// Input is a complete, immutable request for one comparison.
type Input struct {
	A, B    Side
	Filters types.FilterState
	Order   types.Order
}

// Run filters, groups, aligns, and formats both sides. Running it twice on
// the same Input yields equal views.
func Run(in Input) types.ComparisonView {
	order := in.Order
	if order == "" {
		order = types.OrderFirstSeen
	}

	groupedA := GroupByColorName(Apply(in.A.Entries, in.Filters))
	groupedB := GroupByColorName(Apply(in.B.Entries, in.Filters))
	groups := Align(groupedA, groupedB, order)

	return types.ComparisonView{
		Left:    in.A.Info,
		Right:   in.B.Info,
		Filters: in.Filters,
		Order:   order,
		Groups:  FormatGroups(groups),
		Stats:   stats(groupedA, groupedB, groups),
	}
}

func stats(a, b types.GroupedEntries, groups []types.RowGroup) types.ViewStats {
	s := types.ViewStats{
		EntriesA: a.Total(),
		EntriesB: b.Total(),
		Groups:   len(groups),
	}
	for _, g := range groups {
		s.Rows += len(g.Rows)
		for _, r := range g.Rows {
			if r.A.IsPlaceholder() {
				s.PlaceholdersA++
			}
			if r.B.IsPlaceholder() {
				s.PlaceholdersB++
			}
		}
	}
	return s
}
