package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "visiblecolorSet": [
    {"color": {"name": "Red", "hexCode": "#aa0000"}, "amount": 12.5, "flag": true},
    {"color": null},
    "stray"
  ],
  "count": 3,
  "empty": "",
  "off": false
}`

func TestParseAndNavigate(t *testing.T) {
	d, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.True(t, d.IsObject())
	assert.Equal(t, "Red", d.Get("visiblecolorSet").Index(0).Path("color", "name").Text())
	assert.Equal(t, "12.5", d.Get("visiblecolorSet").Index(0).Get("amount").Text())
	assert.Equal(t, "true", d.Get("visiblecolorSet").Index(0).Get("flag").Text())
	assert.Equal(t, "3", d.Get("count").Text())
	assert.Len(t, d.Get("visiblecolorSet").List(), 3)
	assert.Equal(t, []string{"count", "empty", "off", "visiblecolorSet"}, d.Keys())
}

func TestMissingHopsDegrade(t *testing.T) {
	d, err := Parse([]byte(sample))
	require.NoError(t, err)

	tests := []struct {
		name string
		doc  Doc
	}{
		{name: "absent key", doc: d.Get("nope")},
		{name: "null member", doc: d.Get("visiblecolorSet").Index(1).Path("color", "name")},
		{name: "key on string", doc: d.Get("visiblecolorSet").Index(2).Get("color")},
		{name: "index out of range", doc: d.Get("visiblecolorSet").Index(10)},
		{name: "negative index", doc: d.Get("visiblecolorSet").Index(-1)},
		{name: "index on object", doc: d.Index(0)},
		{name: "empty doc path", doc: Empty().Path("a", "b", "c")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.doc.IsMissing())
			assert.Equal(t, "", tt.doc.Text())
			assert.Equal(t, "—", tt.doc.TextOr("—"))
			assert.Nil(t, tt.doc.List())
			assert.Nil(t, tt.doc.Keys())
		})
	}
}

func TestTextFalsyScalars(t *testing.T) {
	d, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "", d.Get("empty").Text())
	assert.Equal(t, "fallback", d.Get("empty").TextOr("fallback"))
	assert.Equal(t, "", d.Get("off").Text())
	assert.Equal(t, "", d.Get("visiblecolorSet").Text(), "arrays have no text")
	assert.Equal(t, "0", From(0.0).Text())
	assert.Equal(t, "7", From(7).Text())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`{"a":`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{} {}`))
	assert.ErrorIs(t, err, ErrTrailingData)

	d, err := Parse([]byte(`[1, 2]`))
	require.NoError(t, err)
	assert.False(t, d.IsObject())
	assert.Len(t, d.List(), 2)
}
