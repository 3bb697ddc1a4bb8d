package source

import (
	"context"

	"github.com/alitto/pond"

	"github.com/mesh-intelligence/colorcompare/pkg/document"
)

// Pair fetches both sides of a comparison concurrently and waits for both.
// A Pair is safe for concurrent use; Close releases its workers.
type Pair struct {
	fetcher Fetcher
	pool    *pond.WorkerPool
}

// NewPair returns a Pair backed by workers goroutines, all kept warm.
func NewPair(f Fetcher, workers int) *Pair {
	if workers < 1 {
		workers = 1
	}
	return &Pair{
		fetcher: f,
		pool:    pond.New(workers, 64, pond.MinWorkers(workers)),
	}
}

// Fetch retrieves a and b in parallel. Both results are required, so it
// returns only after both fetches finish.
func (p *Pair) Fetch(ctx context.Context, a, b string) (document.Doc, document.Doc) {
	var docA, docB document.Doc
	group := p.pool.Group()
	group.Submit(func() { docA = p.fetcher.Fetch(ctx, a) })
	group.Submit(func() { docB = p.fetcher.Fetch(ctx, b) })
	group.Wait()
	return docA, docB
}

// Close stops the pool after queued fetches finish.
func (p *Pair) Close() {
	p.pool.StopAndWait()
}
