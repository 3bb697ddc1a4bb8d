package render

import (
	"html/template"
	"io"

	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

// HTML renders a standalone page with two columns of color entries.
// Column A lives in #colorsA and column B in #colorsB; row i of each
// column belongs to the same aligned row.
type HTML struct{}

// Render implements Renderer.
func (HTML) Render(w io.Writer, view types.ComparisonView) error {
	return pageTemplate.Execute(w, view)
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Left.Label}} vs {{.Right.Label}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
.comparison { display: grid; grid-template-columns: 1fr 1fr; gap: 1.5rem; }
.color-entry { border: 1px solid #ddd; border-radius: 4px; padding: .5rem; margin-bottom: .5rem; min-height: 6rem; }
.swatch { width: 3rem; height: 1.5rem; border: 1px solid #999; }
.placeholder { color: #999; text-align: center; }
.filters { color: #666; }
</style>
</head>
<body>
<header class="comparison">
{{template "object" .Left}}
{{template "object" .Right}}
</header>
{{if not .Filters.IsEmpty}}<p class="filters">Filters: colors {{range .Filters.Colors}}<span class="filter-color">{{.}}</span> {{end}}pigments {{range .Filters.Pigments}}<span class="filter-pigment">{{.}}</span> {{end}}</p>{{end}}
<main class="comparison">
<section id="colorsA" class="column">
{{range .Groups}}{{$name := .ColorName}}{{range .Rows}}<div class="color-entry" data-color="{{$name}}">{{template "record" .A}}</div>
{{end}}{{end}}</section>
<section id="colorsB" class="column">
{{range .Groups}}{{$name := .ColorName}}{{range .Rows}}<div class="color-entry" data-color="{{$name}}">{{template "record" .B}}</div>
{{end}}{{end}}</section>
</main>
</body>
</html>
{{define "object"}}<div class="object">
<h2 class="object-name">{{.Label}}</h2>
{{if .ThumbURL}}<img src="{{.ThumbURL}}" alt="{{.Label}}">{{end}}
{{if .AccessionNumber}}<p class="accession">Accession no. {{.AccessionNumber}}</p>{{end}}
{{if .Link}}<p><a class="link" href="{{.Link}}" target="_blank">View on MCH</a></p>{{end}}
</div>{{end}}
{{define "record"}}{{if .Placeholder}}<div class="placeholder">{{.Text}}</div>{{else}}<div class="swatch" style="background-color: {{.Hex}};"></div>
<div class="color-name">{{.Name}}</div>
<div class="description"><strong>Description:</strong> {{.Description}}</div>
<div class="pigments"><strong>Pigments:</strong>{{range .Pigments}}<br><span class="pigment">{{.}}</span>{{end}}</div>
<div class="elements"><strong>Elements:</strong>{{range .Elements}}<br><span class="element">{{.}}</span>{{end}}</div>{{end}}{{end}}
`))
