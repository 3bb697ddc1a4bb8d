// Color-analysis entry types shared by the comparison pipeline.
package types

// Display defaults used when a field is absent from the source document.
const (
	// UnknownColorName is the bucket key for entries without a color name.
	UnknownColorName = "Unknown"

	// NoneMarker stands in for any missing scalar or empty list in a display record.
	NoneMarker = "—"

	// DefaultHex is the swatch color used when an entry carries no hex code.
	DefaultHex = "#cccccc"

	// NoDataText is the text of a placeholder display record.
	NoDataText = "No data available"
)

// Pigment is one pigment identified in a color observation.
type Pigment struct {
	Name            string `json:"name"`
	ConfidenceLevel string `json:"confidence_level,omitempty"`
}

// Element is one chemical element measured in a color observation.
type Element struct {
	Symbol string `json:"symbol"`
	Amount string `json:"amount,omitempty"`
}

// ColorEntry is one observation of a color's analysis on an object.
// Entries are values; nothing mutates them after extraction.
type ColorEntry struct {
	ColorName   string    `json:"color_name"`
	HexCode     string    `json:"hex_code,omitempty"`
	Description string    `json:"description,omitempty"`
	Pigments    []Pigment `json:"pigments,omitempty"`
	Elements    []Element `json:"elements,omitempty"`
}

// NormalizeColorName maps an absent or empty name to UnknownColorName.
// Any other value is returned unchanged; matching is exact and case-sensitive.
func NormalizeColorName(name string) string {
	if name == "" {
		return UnknownColorName
	}
	return name
}

// PigmentNames returns the names of the entry's pigments in order.
func (e ColorEntry) PigmentNames() []string {
	names := make([]string, 0, len(e.Pigments))
	for _, p := range e.Pigments {
		names = append(names, p.Name)
	}
	return names
}

// ObjectInfo describes the artwork or dataset shown at the top of a panel.
type ObjectInfo struct {
	Label           string `json:"label"`
	AccessionNumber string `json:"accession_number,omitempty"`
	ThumbURL        string `json:"thumb_url,omitempty"`
	Link            string `json:"link,omitempty"`
}

// Product is one artwork from a products document together with its entries.
type Product struct {
	Info    ObjectInfo   `json:"info"`
	Entries []ColorEntry `json:"entries"`
}
