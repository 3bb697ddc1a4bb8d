package render

import (
	"encoding/json"
	"io"

	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

// JSON encodes the view as a single JSON document.
type JSON struct {
	Indent string
}

// Render implements Renderer.
func (j JSON) Render(w io.Writer, view types.ComparisonView) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	return enc.Encode(view)
}
