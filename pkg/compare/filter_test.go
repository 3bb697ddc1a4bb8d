package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

func TestApplyIdentity(t *testing.T) {
	entries := Extract(loadDoc(t, "kotara.json"))
	got := Apply(entries, types.NewFilterState(nil, nil))
	assert.Equal(t, entries, got)

	assert.Nil(t, Apply(nil, types.FilterState{}))
}

func TestApply(t *testing.T) {
	entries := []types.ColorEntry{
		entry("Red", "madder red", "madder"),
		entry("Red", "bare red"),
		entry("Blue", "azurite blue", "azurite"),
		entry("Blue", "madder blue", "madder", "lead white"),
		entry("Green", "bare green"),
	}

	tests := []struct {
		name     string
		colors   []string
		pigments []string
		want     []string
	}{
		{
			name:   "color only",
			colors: []string{"Red"},
			want:   []string{"madder red", "bare red"},
		},
		{
			name:     "pigment only",
			pigments: []string{"madder"},
			want:     []string{"madder red", "madder blue"},
		},
		{
			name:     "dimensions combine with OR",
			colors:   []string{"Green"},
			pigments: []string{"azurite"},
			want:     []string{"azurite blue", "bare green"},
		},
		{
			name:     "pigment match outside color filter is kept",
			colors:   []string{"Blue"},
			pigments: []string{"madder"},
			want:     []string{"madder red", "azurite blue", "madder blue"},
		},
		{
			name:   "no match",
			colors: []string{"Purple"},
			want:   []string{},
		},
		{
			name:   "color match is case-sensitive",
			colors: []string{"red"},
			want:   []string{},
		},
		{
			name:     "entry without pigments matches only by color",
			pigments: []string{"madder", "azurite", "lead white"},
			want:     []string{"madder red", "azurite blue", "madder blue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(entries, types.NewFilterState(tt.colors, tt.pigments))
			descs := make([]string, 0, len(got))
			for _, e := range got {
				descs = append(descs, e.Description)
			}
			assert.Equal(t, tt.want, descs)
		})
	}
}

func TestApplyKeepsOnlyMatches(t *testing.T) {
	entries := append(Extract(loadDoc(t, "kotara.json")), Extract(loadDoc(t, "indira.json"))...)
	filters := types.NewFilterState([]string{"Blue", "Unknown"}, []string{"red ochre", "vermilion"})

	for _, e := range Apply(entries, filters) {
		matched := filters.HasColor(e.ColorName)
		for _, p := range e.Pigments {
			matched = matched || filters.HasPigment(p.Name)
		}
		assert.True(t, matched, "kept entry %+v matches no filter", e)
	}
}

func TestApplyPigmentOnlyFilter(t *testing.T) {
	e := entry("Red", "", "madder")
	got := Apply([]types.ColorEntry{e}, types.NewFilterState([]string{"Blue"}, []string{"madder"}))
	assert.Equal(t, []types.ColorEntry{e}, got)
}

func TestMatchesUnknownName(t *testing.T) {
	assert.True(t, Matches(types.ColorEntry{}, types.NewFilterState([]string{types.UnknownColorName}, nil)))
}
