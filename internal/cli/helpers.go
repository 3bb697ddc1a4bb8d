package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/colorcompare/internal/render"
	"github.com/mesh-intelligence/colorcompare/internal/source"
	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

// viewFlags are shared by every command that prints a comparison.
type viewFlags struct {
	colors   []string
	pigments []string
	order    string
	format   string
	out      string
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.colors, "color", nil, "show only entries with this color name (repeatable)")
	cmd.Flags().StringArrayVar(&f.pigments, "pigment", nil, "show only entries containing this pigment (repeatable)")
	cmd.Flags().StringVar(&f.order, "order", "", "color group order: first-seen or alphabetical")
	cmd.Flags().StringVar(&f.format, "format", "", "output format: text, html or json")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write output to file instead of stdout")
}

func (f *viewFlags) filters() types.FilterState {
	return types.NewFilterState(f.colors, f.pigments)
}

// pairArgs accepts either no datasets (use the first two in the catalog)
// or exactly two.
func pairArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || len(args) == 2 {
		return nil
	}
	return fmt.Errorf("expected zero or two datasets, got %d", len(args))
}

// pickPair resolves the datasets to compare. With no arguments the first
// two catalog entries are used.
func (a *app) pickPair(args []string) (string, string, error) {
	if len(args) == 0 {
		if len(a.cfg.Datasets) < 2 {
			return "", "", fmt.Errorf("%w: catalog has %d", types.ErrNotEnoughDatasets, len(a.cfg.Datasets))
		}
		return a.cfg.Datasets[0], a.cfg.Datasets[1], nil
	}
	nameA, err := a.resolveDataset(args[0])
	if err != nil {
		return "", "", err
	}
	nameB, err := a.resolveDataset(args[1])
	if err != nil {
		return "", "", err
	}
	return nameA, nameB, nil
}

// resolveDataset accepts a catalog name or a zero-based catalog index.
func (a *app) resolveDataset(key string) (string, error) {
	key = strings.TrimSpace(key)
	for _, name := range a.cfg.Datasets {
		if name == key {
			return name, nil
		}
	}
	if i, err := strconv.Atoi(key); err == nil && i >= 0 && i < len(a.cfg.Datasets) {
		return a.cfg.Datasets[i], nil
	}
	return "", fmt.Errorf("%w: %q (available: %s)", types.ErrDatasetNotFound, key, strings.Join(a.cfg.Datasets, ", "))
}

// order returns the flag value, falling back to config.yaml.
func (a *app) order(flag string) (types.Order, error) {
	if flag == "" {
		flag = a.cfg.Order
	}
	return types.ParseOrder(flag)
}

// fetcher builds the tolerant single-document fetcher for the configured source.
func (a *app) fetcher() (source.Fetcher, error) {
	loader, err := source.NewLoader(a.cfg, a.settings)
	if err != nil {
		return nil, err
	}
	return source.Tolerant{Loader: loader, Logger: a.logger}, nil
}

// newPair builds a parallel pair fetcher. The caller must Close it.
func (a *app) newPair() (*source.Pair, error) {
	f, err := a.fetcher()
	if err != nil {
		return nil, err
	}
	return source.NewPair(f, a.settings.FetchWorkers), nil
}

// renderer picks the output renderer: --json wins, then --format, then config.
func (a *app) renderer(format string) (render.Renderer, error) {
	if a.flags.jsonMode {
		format = types.FormatJSON
	}
	if format == "" {
		format = a.cfg.Format
	}
	return render.New(format)
}

// writeView renders view to the --out file or to stdout.
func (a *app) writeView(cmd *cobra.Command, view types.ComparisonView, f viewFlags) error {
	r, err := a.renderer(f.format)
	if err != nil {
		return err
	}
	if f.out != "" {
		if err := render.WriteFile(f.out, r, view); err != nil {
			return systemErrorf("write %s: %w", f.out, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", f.out)
		return nil
	}
	if err := r.Render(cmd.OutOrStdout(), view); err != nil {
		return systemErrorf("render: %w", err)
	}
	return nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
