package types

import (
	"encoding/json"
	"sort"
)

// FilterState is an immutable snapshot of the active color-name and
// pigment-name filters. Toggle methods return a new value and leave the
// receiver untouched, so a snapshot handed to the pipeline cannot change
// under it.
type FilterState struct {
	colors   map[string]struct{}
	pigments map[string]struct{}
}

// NewFilterState builds a snapshot from the given values. Duplicates collapse.
func NewFilterState(colors, pigments []string) FilterState {
	return FilterState{
		colors:   toSet(colors),
		pigments: toSet(pigments),
	}
}

// IsEmpty reports whether neither dimension has an active value.
func (f FilterState) IsEmpty() bool {
	return len(f.colors) == 0 && len(f.pigments) == 0
}

// HasColor reports whether name is an active color filter.
func (f FilterState) HasColor(name string) bool {
	_, ok := f.colors[name]
	return ok
}

// HasPigment reports whether name is an active pigment filter.
func (f FilterState) HasPigment(name string) bool {
	_, ok := f.pigments[name]
	return ok
}

// Colors returns the active color filters, sorted.
func (f FilterState) Colors() []string {
	return sortedKeys(f.colors)
}

// Pigments returns the active pigment filters, sorted.
func (f FilterState) Pigments() []string {
	return sortedKeys(f.pigments)
}

// ToggleColor returns a copy with name added to or removed from the color set.
func (f FilterState) ToggleColor(name string) FilterState {
	return FilterState{colors: toggle(f.colors, name), pigments: f.pigments}
}

// TogglePigment returns a copy with name added to or removed from the pigment set.
func (f FilterState) TogglePigment(name string) FilterState {
	return FilterState{colors: f.colors, pigments: toggle(f.pigments, name)}
}

// MarshalJSON encodes the snapshot as {"colors": [...], "pigments": [...]}.
func (f FilterState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Colors   []string `json:"colors"`
		Pigments []string `json:"pigments"`
	}{
		Colors:   f.Colors(),
		Pigments: f.Pigments(),
	})
}

// FilterOptions lists the filter values present in loaded data.
type FilterOptions struct {
	Colors   []string `json:"colors"`
	Pigments []string `json:"pigments"`
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func toggle(set map[string]struct{}, name string) map[string]struct{} {
	out := make(map[string]struct{}, len(set)+1)
	for k := range set {
		out[k] = struct{}{}
	}
	if _, ok := out[name]; ok {
		delete(out, name)
	} else {
		out[name] = struct{}{}
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
