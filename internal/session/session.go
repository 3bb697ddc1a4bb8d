// Package session owns the mutable selection state of an interactive
// comparison: the selected dataset pair, the active filters, and the group
// order. Every change produces a new immutable snapshot and reruns the pure
// pipeline. Runs are numbered; a run that finishes after a newer one started
// is discarded with ErrSuperseded.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/colorcompare/pkg/compare"
	"github.com/mesh-intelligence/colorcompare/pkg/document"
	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

// Session errors.
var (
	ErrSuperseded  = errors.New("result superseded by a newer selection")
	ErrNoSelection = errors.New("no dataset pair selected")
	ErrEmptyFilter = errors.New("filter value must not be empty")
)

// PairFetcher retrieves both documents of a comparison; see source.Pair.
type PairFetcher interface {
	Fetch(ctx context.Context, a, b string) (document.Doc, document.Doc)
}

// State is a snapshot of the selection.
type State struct {
	A, B    string
	Filters types.FilterState
	Order   types.Order
}

// Result is the outcome of one pipeline run.
type Result struct {
	Seq     uint64
	RunID   string
	State   State
	View    types.ComparisonView
	Options types.FilterOptions
}

// Session is safe for concurrent use.
type Session struct {
	fetcher PairFetcher
	logger  *log.Logger

	mu    sync.Mutex
	seq   uint64
	state State
}

// New returns a Session with no selection, first-seen order, and no filters.
func New(f PairFetcher, logger *log.Logger) *Session {
	return &Session{
		fetcher: f,
		logger:  logger,
		state:   State{Order: types.OrderFirstSeen},
	}
}

// State returns the current selection snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Select chooses a new dataset pair. Active filters are cleared because they
// name values from the previous data.
func (s *Session) Select(ctx context.Context, a, b string) (Result, error) {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return Result{}, types.ErrNotEnoughDatasets
	}
	return s.update(ctx, func(st State) (State, error) {
		st.A, st.B = a, b
		st.Filters = types.FilterState{}
		return st, nil
	})
}

// ToggleColor adds or removes a color-name filter.
func (s *Session) ToggleColor(ctx context.Context, name string) (Result, error) {
	if name == "" {
		return Result{}, ErrEmptyFilter
	}
	return s.update(ctx, func(st State) (State, error) {
		st.Filters = st.Filters.ToggleColor(name)
		return st, nil
	})
}

// TogglePigment adds or removes a pigment-name filter.
func (s *Session) TogglePigment(ctx context.Context, name string) (Result, error) {
	if name == "" {
		return Result{}, ErrEmptyFilter
	}
	return s.update(ctx, func(st State) (State, error) {
		st.Filters = st.Filters.TogglePigment(name)
		return st, nil
	})
}

// ClearFilters drops every active filter.
func (s *Session) ClearFilters(ctx context.Context) (Result, error) {
	return s.update(ctx, func(st State) (State, error) {
		st.Filters = types.FilterState{}
		return st, nil
	})
}

// SetOrder changes how color groups are sequenced.
func (s *Session) SetOrder(ctx context.Context, order string) (Result, error) {
	o, err := types.ParseOrder(order)
	if err != nil {
		return Result{}, err
	}
	return s.update(ctx, func(st State) (State, error) {
		st.Order = o
		return st, nil
	})
}

// Refresh reruns the pipeline on the current selection.
func (s *Session) Refresh(ctx context.Context) (Result, error) {
	return s.update(ctx, func(st State) (State, error) { return st, nil })
}

// update applies change to the state, claims a sequence number, and runs
// the pipeline outside the lock.
func (s *Session) update(ctx context.Context, change func(State) (State, error)) (Result, error) {
	s.mu.Lock()
	next, err := change(s.state)
	if err != nil {
		s.mu.Unlock()
		return Result{}, err
	}
	if next.A == "" || next.B == "" {
		s.mu.Unlock()
		return Result{}, ErrNoSelection
	}
	s.state = next
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	return s.run(ctx, seq, next)
}

func (s *Session) run(ctx context.Context, seq uint64, st State) (Result, error) {
	runID := newRunID()
	docA, docB := s.fetcher.Fetch(ctx, st.A, st.B)

	s.mu.Lock()
	latest := s.seq
	s.mu.Unlock()
	if seq != latest {
		s.logf("run %s (#%d) discarded: superseded by #%d", runID, seq, latest)
		return Result{}, fmt.Errorf("%w: run #%d, latest #%d", ErrSuperseded, seq, latest)
	}

	sideA := compare.SideFromDocument(st.A, docA)
	sideB := compare.SideFromDocument(st.B, docB)
	return Result{
		Seq:   seq,
		RunID: runID,
		State: st,
		View: compare.Run(compare.Input{
			A:       sideA,
			B:       sideB,
			Filters: st.Filters,
			Order:   st.Order,
		}),
		Options: compare.AvailableFilters(sideA.Entries, sideB.Entries),
	}, nil
}

func (s *Session) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// newRunID generates a time-ordered UUID v7 for log correlation.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
