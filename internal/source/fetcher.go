package source

import (
	"context"
	"log"

	"github.com/mesh-intelligence/colorcompare/pkg/document"
)

// Fetcher returns a parsed document for a name. It never fails: anything
// that goes wrong yields document.Empty().
type Fetcher interface {
	Fetch(ctx context.Context, name string) document.Doc
}

// Tolerant adapts a Loader into a Fetcher, logging failures.
type Tolerant struct {
	Loader Loader
	Logger *log.Logger
}

// Fetch loads and parses name, degrading to an empty document on error.
func (t Tolerant) Fetch(ctx context.Context, name string) document.Doc {
	data, err := t.Loader.Load(ctx, name)
	if err != nil {
		t.logf("error loading %s: %v", name, err)
		return document.Empty()
	}
	doc, err := document.Parse(data)
	if err != nil {
		t.logf("error parsing %s: %v", name, err)
		return document.Empty()
	}
	return doc
}

func (t Tolerant) logf(format string, args ...any) {
	if t.Logger != nil {
		t.Logger.Printf(format, args...)
	}
}
