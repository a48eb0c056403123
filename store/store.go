// Package store provides the entity state containers for the dashboard
package store

import (
	"context"
	"sync"

	"github.com/amourdesk/amourdesk-go/internal/observability/logging"
	"github.com/amourdesk/amourdesk-go/models/records"
	"github.com/amourdesk/amourdesk-go/upstream"
)

// Store mediates between the dashboard and the upstream API for one entity
// type. It owns the in-memory collection and the per-operation request
// lifecycle flags.
//
// Collection contract: List replaces the collection wholesale, Create appends
// the stored record, Delete filters it out by identifier. Update replaces
// only the detail record -- the collection is stale after any mutation until
// the next List, which is what every list screen invokes after mutating.
//
// Each operation kind carries a monotonically increasing sequence number; a
// settling response is applied only when it is the latest issued for that
// kind, so a slow stale response can never overwrite a newer one. There is no
// cancellation beyond that fencing.
type Store[E records.Record] struct {
	name     string
	resource *upstream.Resource[E]
	logger   *logging.ChanneledLogger

	mu         sync.RWMutex
	collection []E
	current    *E
	states     map[OpKind]RequestState
	errMsg     string
	seq        map[OpKind]uint64
}

// New creates an empty store for one entity type.
func New[E records.Record](name string, resource *upstream.Resource[E], logger *logging.ChanneledLogger) *Store[E] {
	if logger == nil {
		logger = logging.NewChanneledLogger(nil)
	}
	states := make(map[OpKind]RequestState, len(opKinds))
	for _, kind := range opKinds {
		states[kind] = StateIdle
	}
	return &Store[E]{
		name:       name,
		resource:   resource,
		logger:     logger,
		collection: []E{},
		states:     states,
		seq:        make(map[OpKind]uint64, len(opKinds)),
	}
}

// Name returns the entity name used in logs and notices.
func (s *Store[E]) Name() string { return s.name }

// begin transitions an operation to pending and returns its fence ticket.
func (s *Store[E]) begin(kind OpKind) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[kind]++
	s.states[kind] = StatePending
	s.errMsg = ""
	return s.seq[kind]
}

// settle applies the outcome of an operation unless a newer invocation of the
// same kind has been issued since. apply runs under the write lock.
func (s *Store[E]) settle(kind OpKind, ticket uint64, opErr error, apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket != s.seq[kind] {
		s.logger.Content().Debug("Discarding stale response",
			"entity", s.name, "op", string(kind), "ticket", ticket, "latest", s.seq[kind])
		return
	}
	if opErr != nil {
		s.states[kind] = StateRejected
		s.errMsg = upstream.Message(opErr)
		return
	}
	s.states[kind] = StateFulfilled
	if apply != nil {
		apply()
	}
}

// List fetches all records and, on success, replaces the collection.
func (s *Store[E]) List(ctx context.Context) ([]E, error) {
	ticket := s.begin(OpList)
	items, err := s.resource.List(ctx)
	s.settle(OpList, ticket, err, func() {
		if items == nil {
			items = []E{}
		}
		s.collection = items
	})
	return items, err
}

// GetOne fetches a single record and, on success, replaces the detail record.
func (s *Store[E]) GetOne(ctx context.Context, id records.ID) (E, error) {
	ticket := s.begin(OpGet)
	item, err := s.resource.Get(ctx, id)
	s.settle(OpGet, ticket, err, func() {
		s.current = &item
	})
	return item, err
}

// Create submits a draft and, on success, appends the stored record to the
// collection without a verifying re-fetch.
func (s *Store[E]) Create(ctx context.Context, draft any) (E, error) {
	ticket := s.begin(OpCreate)
	item, err := s.resource.Create(ctx, draft)
	s.settle(OpCreate, ticket, err, func() {
		s.collection = append(s.collection, item)
	})
	return item, err
}

// Update submits a draft for an existing record. On success only the detail
// record is replaced; the collection entry is refreshed by the caller's next
// List.
func (s *Store[E]) Update(ctx context.Context, id records.ID, draft any) (E, error) {
	ticket := s.begin(OpUpdate)
	item, err := s.resource.Update(ctx, id, draft)
	s.settle(OpUpdate, ticket, err, func() {
		s.current = &item
	})
	return item, err
}

// Delete removes a record and, on success, filters it out of the collection
// by identifier.
func (s *Store[E]) Delete(ctx context.Context, id records.ID) (records.ID, error) {
	ticket := s.begin(OpDelete)
	acked, err := s.resource.Delete(ctx, id)
	s.settle(OpDelete, ticket, err, func() {
		kept := s.collection[:0:0]
		for _, item := range s.collection {
			if item.RecordID() != acked {
				kept = append(kept, item)
			}
		}
		s.collection = kept
	})
	return acked, err
}

// Collection returns a copy of the in-memory collection.
func (s *Store[E]) Collection() []E {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]E, len(s.collection))
	copy(out, s.collection)
	return out
}

// Current returns the detail record, if one has been fetched.
func (s *Store[E]) Current() (E, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		var zero E
		return zero, false
	}
	return *s.current, true
}

// Count returns the collection size.
func (s *Store[E]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collection)
}

// State returns the lifecycle state of one operation kind.
func (s *Store[E]) State(kind OpKind) RequestState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[kind]
}

// Error returns the last display-ready failure message, or "".
func (s *Store[E]) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// Snapshot returns the busy flags the dashboard binds spinners to. Loading
// covers every operation kind; Adding and Deleting are specific, matching the
// source screens' isAdding/isDeleting flags.
func (s *Store[E]) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Adding:   s.states[OpCreate] == StatePending,
		Deleting: s.states[OpDelete] == StatePending,
		Error:    s.errMsg,
	}
	for _, kind := range opKinds {
		if s.states[kind] == StatePending {
			snap.Loading = true
			break
		}
	}
	return snap
}
