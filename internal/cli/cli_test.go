package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

const testdataDir = "../../pkg/compare/testdata"

// testEnv is an isolated config and data directory pair.
type testEnv struct {
	configDir string
	dataDir   string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	e := testEnv{
		configDir: filepath.Join(t.TempDir(), "config"),
		dataDir:   t.TempDir(),
	}
	for _, name := range []string{"kotara.json", "indira.json", "products.json"} {
		data, err := os.ReadFile(filepath.Join(testdataDir, name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(e.dataDir, name), data, 0o644))
	}
	return e
}

func (e testEnv) writeConfig(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(e.configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(e.configDir, configFileExt), []byte(content), 0o644))
}

type result struct {
	code   int
	stdout string
	stderr string
}

func (e testEnv) run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	args = append(args, "--config-dir", e.configDir, "--data-dir", e.dataDir)
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func decodeView(t *testing.T, s string) types.ComparisonView {
	t.Helper()
	var raw struct {
		Left   types.ObjectInfo   `json:"left"`
		Right  types.ObjectInfo   `json:"right"`
		Order  types.Order        `json:"order"`
		Groups []types.PanelGroup `json:"groups"`
		Stats  types.ViewStats    `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(s), &raw))
	return types.ComparisonView{Left: raw.Left, Right: raw.Right, Order: raw.Order, Groups: raw.Groups, Stats: raw.Stats}
}

func groupNames(groups []types.PanelGroup) []string {
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.ColorName)
	}
	return names
}

func TestVersion(t *testing.T) {
	e := newTestEnv(t)
	res := e.run(t, "", "version")
	assert.Equal(t, exitSuccess, res.code)
	assert.Contains(t, res.stdout, "colorcompare v"+Version)
}

func TestInit(t *testing.T) {
	e := newTestEnv(t)

	res := e.run(t, "", "init")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Wrote")

	data, err := os.ReadFile(filepath.Join(e.configDir, configFileExt))
	require.NoError(t, err)
	var cf configFile
	require.NoError(t, yaml.Unmarshal(data, &cf))
	assert.Equal(t, types.SourceDir, cf.Source)
	assert.Equal(t, []string{"kotara.json", "indira.json"}, cf.Datasets)
	assert.Equal(t, e.dataDir, cf.DataDir)
	assert.Equal(t, "first-seen", cf.Order)

	res = e.run(t, "", "init")
	require.Equal(t, exitSuccess, res.code)
	assert.Contains(t, res.stdout, "already present")
}

func TestDatasets(t *testing.T) {
	e := newTestEnv(t)

	res := e.run(t, "", "datasets")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "0\tkotara.json\n1\tindira.json\n", res.stdout)

	res = e.run(t, "", "datasets", "--json")
	require.Equal(t, exitSuccess, res.code)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &names))
	assert.Equal(t, []string{"kotara.json", "indira.json"}, names)
}

func TestCompareDefaultsToFirstTwoDatasets(t *testing.T) {
	e := newTestEnv(t)

	res := e.run(t, "", "compare")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "kotara.json")
	assert.Contains(t, res.stdout, "indira.json")
	assert.Contains(t, res.stdout, "Red (2)")
	assert.Contains(t, res.stdout, types.NoDataText)
	assert.Empty(t, res.stderr)
}

func TestCompareJSON(t *testing.T) {
	e := newTestEnv(t)

	res := e.run(t, "", "compare", "kotara.json", "1", "--json")
	require.Equal(t, exitSuccess, res.code, res.stderr)

	view := decodeView(t, res.stdout)
	assert.Equal(t, "kotara.json", view.Left.Label)
	assert.Equal(t, "indira.json", view.Right.Label)
	assert.Equal(t, []string{"Red", "Blue", "Unknown", "Green"}, groupNames(view.Groups))
	assert.Equal(t, 5, view.Stats.Rows)
}

func TestCompareFiltersAndOrder(t *testing.T) {
	e := newTestEnv(t)

	res := e.run(t, "", "compare",
		"--color", "Green", "--pigment", "vermilion",
		"--order", "alphabetical", "--format", "json")
	require.Equal(t, exitSuccess, res.code, res.stderr)

	view := decodeView(t, res.stdout)
	assert.Equal(t, types.OrderAlphabetical, view.Order)
	assert.Equal(t, []string{"Green", "Red"}, groupNames(view.Groups))
}

func TestCompareHTMLToFile(t *testing.T) {
	e := newTestEnv(t)
	out := filepath.Join(t.TempDir(), "compare.html")

	res := e.run(t, "", "compare", "--format", "html", "--out", out)
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "Wrote "+out)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	assert.Equal(t, 5, doc.Find("#colorsA .color-entry").Length())
	assert.Equal(t, 5, doc.Find("#colorsB .color-entry").Length())
	assert.Equal(t, 3, doc.Find("#colorsB .placeholder").Length())
}

func TestCompareMissingDocumentDegradesToEmpty(t *testing.T) {
	e := newTestEnv(t)
	e.writeConfig(t, "datasets:\n  - kotara.json\n  - missing.json\n")

	res := e.run(t, "", "compare", "--json")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stderr, "error loading missing.json")

	view := decodeView(t, res.stdout)
	assert.Equal(t, 0, view.Stats.EntriesB)
	assert.Equal(t, view.Stats.Rows, view.Stats.PlaceholdersB)

	res = e.run(t, "", "compare", "--json", "--quiet")
	require.Equal(t, exitSuccess, res.code)
	assert.Empty(t, res.stderr)
}

func TestCompareOverHTTP(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := os.ReadFile(filepath.Join(testdataDir, filepath.Base(r.URL.Path)))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}))
	defer srv.Close()

	e := newTestEnv(t)
	e.writeConfig(t, "source: http\nbase_url: "+srv.URL+"/data/\n")

	res := e.run(t, "", "compare", "--json")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	view := decodeView(t, res.stdout)
	assert.Equal(t, 4, view.Stats.Groups)
	assert.ElementsMatch(t, []string{"/data/kotara.json", "/data/indira.json"}, paths)
}

func TestCompareErrors(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		args    []string
		code    int
		wantErr string
	}{
		{
			name:    "unknown dataset",
			args:    []string{"compare", "kotara.json", "nope.json"},
			code:    exitUserError,
			wantErr: "dataset not found",
		},
		{
			name:    "single dataset",
			args:    []string{"compare", "kotara.json"},
			code:    exitUserError,
			wantErr: "expected zero or two datasets",
		},
		{
			name:    "bad format",
			args:    []string{"compare", "--format", "pdf"},
			code:    exitUserError,
			wantErr: "unknown output format",
		},
		{
			name:    "bad order",
			args:    []string{"compare", "--order", "random"},
			code:    exitUserError,
			wantErr: "unknown order",
		},
		{
			name:    "catalog too small",
			config:  "datasets:\n  - kotara.json\n",
			args:    []string{"compare"},
			code:    exitUserError,
			wantErr: "two datasets are required",
		},
		{
			name:    "unknown source",
			config:  "source: ftp\n",
			args:    []string{"compare"},
			code:    exitUserError,
			wantErr: "unknown source",
		},
		{
			name:    "http without base url",
			config:  "source: http\n",
			args:    []string{"datasets"},
			code:    exitUserError,
			wantErr: "base_url is required",
		},
		{
			name:    "unwritable output",
			args:    []string{"compare", "--out", "/nonexistent-dir/out.txt"},
			code:    exitSysError,
			wantErr: "write /nonexistent-dir/out.txt",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			if tt.config != "" {
				e.writeConfig(t, tt.config)
			}
			res := e.run(t, "", tt.args...)
			assert.Equal(t, tt.code, res.code)
			assert.Contains(t, res.stderr, tt.wantErr)
		})
	}
}

func TestOptions(t *testing.T) {
	e := newTestEnv(t)

	res := e.run(t, "", "options", "--json")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	var opts types.FilterOptions
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &opts))
	assert.Contains(t, opts.Colors, "Green")
	assert.Contains(t, opts.Colors, "Unknown")
	assert.Contains(t, opts.Pigments, "malachite")
	assert.Contains(t, opts.Pigments, "vermilion")

	res = e.run(t, "", "options")
	require.Equal(t, exitSuccess, res.code)
	assert.True(t, strings.HasPrefix(res.stdout, "Colors:\n"))
	assert.Contains(t, res.stdout, "Pigments:\n")
}

func TestProducts(t *testing.T) {
	e := newTestEnv(t)

	res := e.run(t, "", "products")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "0\tPortrait of a Lady\t1943.12"))

	res = e.run(t, "", "products", "0", "River Landscape", "--json")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	view := decodeView(t, res.stdout)
	assert.Equal(t, "Portrait of a Lady", view.Left.Label)
	assert.Equal(t, "https://mappingcolor.fas.harvard.edu/works/river-landscape", view.Right.Link)
	assert.Equal(t, []string{"Blue", "Red"}, groupNames(view.Groups))
	assert.Equal(t, 3, view.Stats.Rows)

	res = e.run(t, "", "products", "0", "9")
	assert.Equal(t, exitUserError, res.code)
	assert.Contains(t, res.stderr, "product not found")
}

func TestBrowse(t *testing.T) {
	e := newTestEnv(t)
	input := strings.Join([]string{
		"color Green",
		"",
		"bogus",
		"order alphabetical",
		"order sideways",
		"quit",
		"clear",
	}, "\n")

	res := e.run(t, input, "browse", "--json")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stderr, `unknown command "bogus"`)
	assert.Contains(t, res.stderr, "unknown order")

	dec := json.NewDecoder(strings.NewReader(res.stdout))
	var views []types.ComparisonView
	for {
		var raw json.RawMessage
		err := dec.Decode(&raw)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		views = append(views, decodeView(t, string(raw)))
	}
	require.Len(t, views, 3, "initial view plus one per accepted change")
	assert.Equal(t, 4, views[0].Stats.Groups)
	assert.Equal(t, []string{"Green"}, groupNames(views[1].Groups))
	assert.Equal(t, types.OrderAlphabetical, views[2].Order)
}

func TestBrowseSelectClearsFilters(t *testing.T) {
	e := newTestEnv(t)
	input := "color Red\nselect 1 0\nselect only-one\n"

	res := e.run(t, input, "browse", "--json")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stderr, "two datasets are required")

	dec := json.NewDecoder(strings.NewReader(res.stdout))
	var last types.ComparisonView
	n := 0
	for dec.More() {
		var raw json.RawMessage
		require.NoError(t, dec.Decode(&raw))
		last = decodeView(t, string(raw))
		n++
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, "indira.json", last.Left.Label)
	assert.Equal(t, 4, last.Stats.Groups)
}
