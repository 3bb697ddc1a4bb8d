package compare

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/colorcompare/pkg/document"
	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

// Products document layout.
const (
	keyProducts          = "products"
	keySpecs             = "specs"
	keyThumbURL          = "thumbUrl"
	keyAccessionNumber   = "accessionNumber"
	keySlug              = "slug"
	keyProductPigmentSet = "visiblecolorpigmentSet"
	keyProductPigment    = "pigment"
	keyProductElementSet = keyElementSet
)

// WorksBaseURL is the public Mapping Color in History page for a work slug.
const WorksBaseURL = "https://mappingcolor.fas.harvard.edu/works/"

// ExtractProducts returns every product in a products document. Products
// that are not objects are skipped.
func ExtractProducts(doc document.Doc) []types.Product {
	items := doc.Get(keyProducts).List()
	products := make([]types.Product, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		products = append(products, ExtractProduct(item))
	}
	return products
}

// ExtractProduct reads one product object. Its specs map color names to
// lists of observations; names are visited in sorted order because JSON
// object order does not survive decoding.
func ExtractProduct(item document.Doc) types.Product {
	specs := item.Get(keySpecs)
	var entries []types.ColorEntry
	for _, color := range specs.Keys() {
		for _, spec := range specs.Get(color).List() {
			if !spec.IsObject() {
				continue
			}
			entries = append(entries, types.ColorEntry{
				ColorName:   types.NormalizeColorName(color),
				HexCode:     spec.Get(keyHexCode).Text(),
				Description: spec.Get(keyDescription).Text(),
				Pigments:    extractPigments(spec.Get(keyProductPigmentSet), keyProductPigment),
				Elements:    extractElements(spec.Get(keyProductElementSet)),
			})
		}
	}
	return types.Product{
		Info:    productInfo(item),
		Entries: entries,
	}
}

func productInfo(item document.Doc) types.ObjectInfo {
	info := types.ObjectInfo{
		Label:           item.Get(keyName).TextOr(types.NoneMarker),
		AccessionNumber: item.Get(keyAccessionNumber).TextOr(types.NoneMarker),
		ThumbURL:        item.Get(keyThumbURL).Text(),
	}
	if slug := item.Get(keySlug).Text(); slug != "" {
		info.Link = WorksBaseURL + url.PathEscape(slug)
	}
	return info
}

// FindProduct selects a product by zero-based index or by exact name.
func FindProduct(products []types.Product, key string) (types.Product, error) {
	key = strings.TrimSpace(key)
	if i, err := strconv.Atoi(key); err == nil {
		if i >= 0 && i < len(products) {
			return products[i], nil
		}
		return types.Product{}, fmt.Errorf("%w: index %d (have %d)", types.ErrProductNotFound, i, len(products))
	}
	for _, p := range products {
		if p.Info.Label == key {
			return p, nil
		}
	}
	return types.Product{}, fmt.Errorf("%w: %q", types.ErrProductNotFound, key)
}
