package compare

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

// Format turns a slot into a display record. A placeholder becomes the
// "no data" sentinel; an entry exposes its swatch color, name, description,
// and pigment and element summaries, each defaulting to types.NoneMarker.
func Format(slot types.Slot) types.DisplayRecord {
	entry, ok := slot.Entry()
	if !ok {
		return types.DisplayRecord{Placeholder: true, Text: types.NoDataText}
	}
	return types.DisplayRecord{
		Hex:         DisplayHex(entry.HexCode),
		Name:        orNone(entry.ColorName),
		Description: orNone(entry.Description),
		Pigments:    pigmentSummaries(entry.Pigments),
		Elements:    elementSummaries(entry.Elements),
	}
}

// FormatGroups formats every row of every group.
func FormatGroups(groups []types.RowGroup) []types.PanelGroup {
	panels := make([]types.PanelGroup, 0, len(groups))
	for _, g := range groups {
		rows := make([]types.PanelRow, 0, len(g.Rows))
		for _, r := range g.Rows {
			rows = append(rows, types.PanelRow{A: Format(r.A), B: Format(r.B)})
		}
		panels = append(panels, types.PanelGroup{ColorName: g.ColorName, Rows: rows})
	}
	return panels
}

// DisplayHex returns the swatch color for a raw hex code: types.DefaultHex
// when empty, a lowercase #rrggbb when the code parses, and the raw value
// otherwise.
func DisplayHex(raw string) string {
	if raw == "" {
		return types.DefaultHex
	}
	c, err := colorful.Hex(raw)
	if err != nil {
		return raw
	}
	return c.Hex()
}

func pigmentSummaries(pigments []types.Pigment) []string {
	if len(pigments) == 0 {
		return []string{types.NoneMarker}
	}
	out := make([]string, 0, len(pigments))
	for _, p := range pigments {
		out = append(out, orNone(p.Name)+" ("+orNone(p.ConfidenceLevel)+")")
	}
	return out
}

func elementSummaries(elements []types.Element) []string {
	if len(elements) == 0 {
		return []string{types.NoneMarker}
	}
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		out = append(out, orNone(e.Symbol)+" ("+orNone(e.Amount)+")")
	}
	return out
}

func orNone(s string) string {
	if s == "" {
		return types.NoneMarker
	}
	return s
}
