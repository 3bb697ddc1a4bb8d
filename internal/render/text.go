package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

// DefaultColumnWidth is the width of each panel column in terminal output.
const DefaultColumnWidth = 44

const minColumnWidth = 20

// Text renders two styled columns for a terminal. Colors are emitted only
// when the destination supports them.
type Text struct {
	ColumnWidth int
}

// Render implements Renderer.
func (t Text) Render(w io.Writer, view types.ComparisonView) error {
	width := t.ColumnWidth
	if width < minColumnWidth {
		width = DefaultColumnWidth
	}
	p := newPalette(lipgloss.NewRenderer(w), width)

	var b strings.Builder
	b.WriteString(p.pair(objectHeader(p, view.Left), objectHeader(p, view.Right)))
	b.WriteString("\n")
	if !view.Filters.IsEmpty() {
		b.WriteString(p.dim.Render(filterLine(view.Filters)))
		b.WriteString("\n")
	}

	if len(view.Groups) == 0 {
		b.WriteString("\n")
		b.WriteString(p.pair(p.dim.Render(types.NoDataText), p.dim.Render(types.NoDataText)))
		b.WriteString("\n")
	}
	for _, g := range view.Groups {
		b.WriteString("\n")
		b.WriteString(p.heading.Render(fmt.Sprintf("%s (%d)", g.ColorName, len(g.Rows))))
		b.WriteString("\n")
		for _, row := range g.Rows {
			b.WriteString(p.pair(p.record(row.A), p.record(row.B)))
			b.WriteString("\n")
		}
	}

	s := view.Stats
	b.WriteString("\n")
	b.WriteString(p.dim.Render(fmt.Sprintf("%d groups, %d rows (entries: %d | %d)", s.Groups, s.Rows, s.EntriesA, s.EntriesB)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// palette holds the styles for one render, bound to the output's renderer.
type palette struct {
	r       *lipgloss.Renderer
	column  lipgloss.Style
	heading lipgloss.Style
	dim     lipgloss.Style
}

func newPalette(r *lipgloss.Renderer, width int) palette {
	return palette{
		r:       r,
		column:  r.NewStyle().Width(width),
		heading: r.NewStyle().Bold(true).Underline(true),
		dim:     r.NewStyle().Faint(true),
	}
}

func (p palette) pair(left, right string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, p.column.Render(left), "  ", p.column.Render(right))
}

func (p palette) record(rec types.DisplayRecord) string {
	if rec.Placeholder {
		return p.dim.Render(rec.Text)
	}
	lines := []string{
		p.swatch(rec.Hex) + " " + rec.Name,
		"Description: " + rec.Description,
		"Pigments: " + rec.PigmentSummary(", "),
		"Elements: " + rec.ElementSummary(", "),
	}
	return strings.Join(lines, "\n")
}

func (p palette) swatch(hex string) string {
	bg := SwatchColor(hex)
	return p.r.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(ContrastColor(bg))).
		Render(" " + hex + " ")
}

func objectHeader(p palette, info types.ObjectInfo) string {
	lines := []string{p.heading.Render(info.Label)}
	if info.AccessionNumber != "" {
		lines = append(lines, "Accession no. "+info.AccessionNumber)
	}
	if info.Link != "" {
		lines = append(lines, info.Link)
	}
	return strings.Join(lines, "\n")
}

func filterLine(f types.FilterState) string {
	return fmt.Sprintf("Filters: colors [%s] pigments [%s]",
		strings.Join(f.Colors(), ", "), strings.Join(f.Pigments(), ", "))
}

// SwatchColor returns hex as #rrggbb when it parses, else types.DefaultHex.
func SwatchColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return types.DefaultHex
	}
	return c.Hex()
}

// ContrastColor picks black or white text for a swatch background, by
// CIE L* lightness.
func ContrastColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	if l, _, _ := c.Lab(); l < 0.55 {
		return "#ffffff"
	}
	return "#000000"
}
