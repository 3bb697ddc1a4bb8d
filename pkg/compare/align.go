package compare

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

// Align pairs two grouped mappings into row groups, one per color name
// present on either side. For each name the group holds max(countA, countB)
// rows; row i carries the i-th entry of each side, or a placeholder where
// that side has fewer entries.
func Align(a, b types.GroupedEntries, order types.Order) []types.RowGroup {
	names := unionNames(a, b, order)
	groups := make([]types.RowGroup, 0, len(names))
	for _, name := range names {
		ea, eb := a.Entries(name), b.Entries(name)
		rows := make([]types.AlignedRow, max(len(ea), len(eb)))
		for i := range rows {
			rows[i] = types.AlignedRow{A: slotAt(ea, i), B: slotAt(eb, i)}
		}
		groups = append(groups, types.RowGroup{ColorName: name, Rows: rows})
	}
	return groups
}

func slotAt(entries []types.ColorEntry, i int) types.Slot {
	if i < len(entries) {
		return types.Filled(entries[i])
	}
	return types.Placeholder()
}

// unionNames lists each name once: A's names, then B's names not in A, each
// in first-occurrence order. OrderAlphabetical re-sorts that union.
func unionNames(a, b types.GroupedEntries, order types.Order) []string {
	names := a.Names()
	for _, name := range b.Names() {
		if !a.Has(name) {
			names = append(names, name)
		}
	}
	if order == types.OrderAlphabetical {
		sortCollated(names)
	}
	return names
}

// sortCollated sorts names for display. A byte-wise pre-sort breaks ties
// between strings the collator considers equal, keeping the result
// deterministic.
func sortCollated(names []string) {
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.Strings(names)
	sort.SliceStable(names, func(i, j int) bool {
		return c.CompareString(names[i], names[j]) < 0
	})
}
