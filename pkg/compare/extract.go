package compare

import (
	"github.com/mesh-intelligence/colorcompare/pkg/document"
	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

// Dataset document layout.
const (
	keyColorSet    = "visiblecolorSet"
	keyColor       = "color"
	keyName        = "name"
	keyHexCode     = "hexCode"
	keyDescription = "description"
	keyPigmentSet  = "visiblecolorhierarchicalpigmentSet"
	keyPigment     = "hierarchicalPigment"
	keyConfidence  = "confidenceLevel"
	keyElementSet  = "visiblecolorelementSet"
	keyElement     = "element"
	keySymbol      = "symbol"
	keyAmount      = "amount"
)

// Extract returns the color entries of a dataset document, in source order.
// Items of visiblecolorSet that are not objects are skipped.
func Extract(doc document.Doc) []types.ColorEntry {
	items := doc.Get(keyColorSet).List()
	entries := make([]types.ColorEntry, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		entries = append(entries, extractEntry(item))
	}
	return entries
}

func extractEntry(item document.Doc) types.ColorEntry {
	color := item.Get(keyColor)
	return types.ColorEntry{
		ColorName:   types.NormalizeColorName(color.Get(keyName).Text()),
		HexCode:     color.Get(keyHexCode).Text(),
		Description: item.Get(keyDescription).Text(),
		Pigments:    extractPigments(item.Get(keyPigmentSet), keyPigment),
		Elements:    extractElements(item.Get(keyElementSet)),
	}
}

// extractPigments reads a pigment list whose items nest the pigment record
// under nestedKey.
func extractPigments(set document.Doc, nestedKey string) []types.Pigment {
	items := set.List()
	if len(items) == 0 {
		return nil
	}
	pigments := make([]types.Pigment, 0, len(items))
	for _, p := range items {
		pigments = append(pigments, types.Pigment{
			Name:            p.Path(nestedKey, keyName).Text(),
			ConfidenceLevel: p.Get(keyConfidence).Text(),
		})
	}
	return pigments
}

func extractElements(set document.Doc) []types.Element {
	items := set.List()
	if len(items) == 0 {
		return nil
	}
	elements := make([]types.Element, 0, len(items))
	for _, e := range items {
		el := e.Get(keyElement)
		elements = append(elements, types.Element{
			Symbol: el.Get(keySymbol).TextOr(el.Get(keyName).Text()),
			Amount: e.Get(keyAmount).Text(),
		})
	}
	return elements
}
