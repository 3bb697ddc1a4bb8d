// Package document gives typed, never-failing access to loosely structured
// JSON. Every hop returns a Doc; a missing key, a wrong type, or an
// out-of-range index yields an empty Doc, and leaf accessors fall back to a
// typed default instead of failing.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// ErrTrailingData is returned by Parse when the input holds more than one
// JSON value.
var ErrTrailingData = errors.New("trailing data after JSON value")

// Doc wraps one decoded JSON value. The zero Doc is empty.
type Doc struct {
	v any
}

// Empty returns the empty document that fetch failures degrade to.
func Empty() Doc {
	return Doc{}
}

// From wraps an already-decoded value (map[string]any, []any, string,
// json.Number, float64, bool, or nil).
func From(v any) Doc {
	return Doc{v: v}
}

// Parse decodes data into a Doc. Numbers keep their source text.
func Parse(data []byte) (Doc, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Doc{}, fmt.Errorf("decoding document: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Doc{}, ErrTrailingData
	}
	return Doc{v: v}, nil
}

// Raw returns the wrapped value.
func (d Doc) Raw() any {
	return d.v
}

// IsMissing reports whether the document holds no value (absent or null).
func (d Doc) IsMissing() bool {
	return d.v == nil
}

// IsObject reports whether the document is a JSON object.
func (d Doc) IsObject() bool {
	_, ok := d.v.(map[string]any)
	return ok
}

// Get returns the member key of an object, or an empty Doc.
func (d Doc) Get(key string) Doc {
	obj, ok := d.v.(map[string]any)
	if !ok {
		return Doc{}
	}
	return Doc{v: obj[key]}
}

// Path follows keys through nested objects.
func (d Doc) Path(keys ...string) Doc {
	cur := d
	for _, k := range keys {
		cur = cur.Get(k)
		if cur.IsMissing() {
			return Doc{}
		}
	}
	return cur
}

// Index returns element i of an array, or an empty Doc.
func (d Doc) Index(i int) Doc {
	arr, ok := d.v.([]any)
	if !ok || i < 0 || i >= len(arr) {
		return Doc{}
	}
	return Doc{v: arr[i]}
}

// List returns the elements of an array, or nil for anything else.
func (d Doc) List() []Doc {
	arr, ok := d.v.([]any)
	if !ok {
		return nil
	}
	out := make([]Doc, len(arr))
	for i, v := range arr {
		out[i] = Doc{v: v}
	}
	return out
}

// Keys returns the member names of an object in sorted order, or nil.
func (d Doc) Keys() []string {
	obj, ok := d.v.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Text returns a scalar as a string. Strings are returned as-is, numbers in
// their shortest decimal form, and true as "true". Objects, arrays, null,
// false, and absent values yield "".
func (d Doc) Text() string {
	switch v := d.v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		if v {
			return "true"
		}
		return ""
	default:
		return ""
	}
}

// TextOr returns Text, or def when Text is empty.
func (d Doc) TextOr(def string) string {
	if s := d.Text(); s != "" {
		return s
	}
	return def
}
