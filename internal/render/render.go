// Package render paints a ComparisonView for a presentation surface: styled
// terminal text, a standalone HTML page, or JSON. Renderers consume display
// records only; they never look at source documents.
package render

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

// Renderer writes a view to w.
type Renderer interface {
	Render(w io.Writer, view types.ComparisonView) error
}

// New returns the renderer for an output format.
func New(format string) (Renderer, error) {
	f, err := types.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	switch f {
	case types.FormatHTML:
		return HTML{}, nil
	case types.FormatJSON:
		return JSON{Indent: "  "}, nil
	case types.FormatText:
		return Text{ColumnWidth: DefaultColumnWidth}, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrFormatUnknown, format)
	}
}
