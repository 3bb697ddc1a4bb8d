package compare

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/colorcompare/pkg/document"
	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

// loadDoc parses a document from testdata.
func loadDoc(t *testing.T, name string) document.Doc {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	doc, err := document.Parse(data)
	require.NoError(t, err)
	return doc
}

// entry builds a ColorEntry with the given name, description, and pigment names.
func entry(name, desc string, pigments ...string) types.ColorEntry {
	e := types.ColorEntry{ColorName: name, Description: desc}
	for _, p := range pigments {
		e.Pigments = append(e.Pigments, types.Pigment{Name: p})
	}
	return e
}
