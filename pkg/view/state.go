// Package view holds the catalog state a presenter renders: the fetch
// lifecycle and the record picked for the detail viewer. The two slots are
// independent.
package view

import (
	"context"
	"sync"

	"github.com/stonewall-sec/auditscope/pkg/catalog"
)

type Phase int

const (
	Loading Phase = iota
	Ready
)

func (p Phase) String() string {
	if p == Ready {
		return "ready"
	}
	return "loading"
}

// Status values reported to presenters.
const (
	StatusLoading   = "loading"
	StatusEmpty     = "empty"
	StatusPopulated = "populated"
)

// State is safe for concurrent use.
type State struct {
	mu         sync.RWMutex
	phase      Phase
	collection []catalog.AuditRecord
	selected   *catalog.AuditRecord
	closed     bool
	settled    chan struct{}
}

// New starts in Loading with the curated records already visible.
func New(curated []catalog.AuditRecord) *State {
	return &State{
		phase:      Loading,
		collection: clone(curated),
		settled:    make(chan struct{}),
	}
}

// Settle moves the state to Ready with the final collection. Only the first
// call after New has an effect, and none after Close.
func (s *State) Settle(collection []catalog.AuditRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != Loading || s.closed {
		return false
	}
	s.phase = Ready
	s.collection = clone(collection)
	close(s.settled)
	return true
}

// Close tears the state down. A pending aggregation result is discarded.
func (s *State) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Done is closed once the state is Ready.
func (s *State) Done() <-chan struct{} {
	return s.settled
}

func (s *State) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

func (s *State) IsLoading() bool {
	return s.Phase() == Loading
}

// Collection returns a copy of the records to display.
func (s *State) Collection() []catalog.AuditRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.collection)
}

// Select replaces the selected record. Membership in the collection is not checked.
func (s *State) Select(r catalog.AuditRecord) {
	s.mu.Lock()
	s.selected = &r
	s.mu.Unlock()
}

func (s *State) Dismiss() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

// Selected returns a copy of the selected record, or nil.
func (s *State) Selected() *catalog.AuditRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	r := *s.selected
	return &r
}

// Snapshot is a consistent read of the whole state.
type Snapshot struct {
	Status   string                `json:"status"`
	Loading  bool                  `json:"loading"`
	Records  []catalog.AuditRecord `json:"records"`
	Selected *catalog.AuditRecord  `json:"selected"`
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Loading: s.phase == Loading,
		Records: clone(s.collection),
	}
	switch {
	case snap.Loading:
		snap.Status = StatusLoading
	case len(s.collection) == 0:
		snap.Status = StatusEmpty
	default:
		snap.Status = StatusPopulated
	}
	if s.selected != nil {
		r := *s.selected
		snap.Selected = &r
	}
	return snap
}

// Source produces the final collection from the curated records.
type Source interface {
	Aggregate(ctx context.Context, curated []catalog.AuditRecord) []catalog.AuditRecord
}

// Mount creates the state and starts the single aggregation for it. The state
// becomes Ready when src returns.
func Mount(ctx context.Context, curated []catalog.AuditRecord, src Source) *State {
	s := New(curated)
	go func() {
		s.Settle(src.Aggregate(ctx, clone(curated)))
	}()
	return s
}

func clone(recs []catalog.AuditRecord) []catalog.AuditRecord {
	out := make([]catalog.AuditRecord, len(recs))
	copy(out, recs)
	return out
}
