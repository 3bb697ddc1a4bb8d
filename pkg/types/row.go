// Aligned comparison rows and display records.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Order selects how color groups are sequenced in an alignment.
type Order string

// Supported alignment orders.
const (
	// OrderFirstSeen lists side A's names in first-occurrence order, then the
	// names only side B has, in B's first-occurrence order.
	OrderFirstSeen Order = "first-seen"

	// OrderAlphabetical sorts names with locale-aware collation.
	OrderAlphabetical Order = "alphabetical"
)

// ParseOrder converts a flag or config value to an Order. The empty string
// selects OrderFirstSeen.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.TrimSpace(s)) {
	case "", OrderFirstSeen:
		return OrderFirstSeen, nil
	case OrderAlphabetical:
		return OrderAlphabetical, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: %s, %s)", ErrOrderUnknown, s, OrderFirstSeen, OrderAlphabetical)
	}
}

// Slot holds either a ColorEntry or a placeholder for a missing one.
// The zero value is a placeholder.
type Slot struct {
	entry  ColorEntry
	filled bool
}

// Filled wraps an entry in a slot.
func Filled(entry ColorEntry) Slot {
	return Slot{entry: entry, filled: true}
}

// Placeholder returns an empty slot.
func Placeholder() Slot {
	return Slot{}
}

// IsPlaceholder reports whether the slot has no entry.
func (s Slot) IsPlaceholder() bool {
	return !s.filled
}

// Entry returns the wrapped entry and true, or a zero entry and false.
func (s Slot) Entry() (ColorEntry, bool) {
	return s.entry, s.filled
}

// MarshalJSON encodes a placeholder as null and an entry as itself.
func (s Slot) MarshalJSON() ([]byte, error) {
	if !s.filled {
		return []byte("null"), nil
	}
	return json.Marshal(s.entry)
}

// AlignedRow pairs the i-th entry of each side within one color group.
type AlignedRow struct {
	A Slot `json:"a"`
	B Slot `json:"b"`
}

// RowGroup holds the aligned rows for one color name. len(Rows) equals the
// larger of the two sides' entry counts for that name.
type RowGroup struct {
	ColorName string       `json:"color_name"`
	Rows      []AlignedRow `json:"rows"`
}

// DisplayRecord is a flat, markup-free rendering of one slot.
type DisplayRecord struct {
	Placeholder bool     `json:"placeholder"`
	Text        string   `json:"text,omitempty"`
	Hex         string   `json:"hex,omitempty"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Pigments    []string `json:"pigments,omitempty"`
	Elements    []string `json:"elements,omitempty"`
}

// PigmentSummary joins the pigment summaries with sep.
func (r DisplayRecord) PigmentSummary(sep string) string {
	return strings.Join(r.Pigments, sep)
}

// ElementSummary joins the element summaries with sep.
func (r DisplayRecord) ElementSummary(sep string) string {
	return strings.Join(r.Elements, sep)
}

// PanelRow is a formatted AlignedRow.
type PanelRow struct {
	A DisplayRecord `json:"a"`
	B DisplayRecord `json:"b"`
}

// PanelGroup is a formatted RowGroup.
type PanelGroup struct {
	ColorName string     `json:"color_name"`
	Rows      []PanelRow `json:"rows"`
}

// ViewStats summarizes a comparison.
type ViewStats struct {
	EntriesA      int `json:"entries_a"`
	EntriesB      int `json:"entries_b"`
	Groups        int `json:"groups"`
	Rows          int `json:"rows"`
	PlaceholdersA int `json:"placeholders_a"`
	PlaceholdersB int `json:"placeholders_b"`
}

// ComparisonView is everything a presentation layer needs to paint two
// side-by-side panels.
type ComparisonView struct {
	Left    ObjectInfo   `json:"left"`
	Right   ObjectInfo   `json:"right"`
	Filters FilterState  `json:"filters"`
	Order   Order        `json:"order"`
	Groups  []PanelGroup `json:"groups"`
	Stats   ViewStats    `json:"stats"`
}
