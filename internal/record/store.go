package record

import (
	"fmt"
	"sync"

	"github.com/ohadaerp/erp/internal/bus"
	"go.uber.org/zap"
)

// Bus event kinds published by Store.
const (
	EventUpserted = "record.upserted"
	EventRemoved  = "record.removed"
)

// Change is the payload of record events.
type Change struct {
	Kind     string
	ID       string
	Inserted bool
}

// Option configures a Store.
type Option func(*storeOptions)

type storeOptions struct {
	bus    *bus.Bus
	logger *zap.Logger
}

// WithBus publishes upserts and removals on b.
func WithBus(b *bus.Bus) Option {
	return func(o *storeOptions) { o.bus = b }
}

// WithLogger sets the store logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *storeOptions) { o.logger = l }
}

// Store holds the canonical ordered list of one record kind. Records are
// treated as immutable snapshots: Upsert replaces a record wholesale and
// never moves it.
type Store[T any] struct {
	mu     sync.RWMutex
	schema Schema[T]
	items  []T
	index  map[string]int
	bus    *bus.Bus
	logger *zap.Logger
}

// NewStore creates an empty store for the given schema.
func NewStore[T any](schema Schema[T], opts ...Option) *Store[T] {
	o := storeOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{
		schema: schema,
		index:  make(map[string]int),
		bus:    o.bus,
		logger: o.logger.With(zap.String("kind", schema.Kind)),
	}
}

// Kind returns the record kind this store holds.
func (s *Store[T]) Kind() string { return s.schema.Kind }

// Schema returns the store's schema.
func (s *Store[T]) Schema() Schema[T] { return s.schema }

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// All returns every record in insertion order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", s.schema.Kind, id, ErrNotFound)
	}
	return s.items[i], nil
}

// Query returns the records matching every filter of q and, when q.Term is
// set, containing it case-insensitively in at least one searchable field.
// Results keep insertion order.
func (s *Store[T]) Query(q Query) ([]T, error) {
	m, err := compile(s.schema, q)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.items))
	for _, r := range s.items {
		if m.matches(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Upsert inserts r at the end, or replaces the record with the same id at
// its current position.
func (s *Store[T]) Upsert(r T) error {
	id := s.schema.ID(r)
	if id == "" {
		return fmt.Errorf("upsert %s: %w", s.schema.Kind, ErrEmptyID)
	}

	s.mu.Lock()
	i, exists := s.index[id]
	if exists {
		s.items[i] = r
	} else {
		s.index[id] = len(s.items)
		s.items = append(s.items, r)
	}
	s.mu.Unlock()

	s.logger.Debug("record upserted", zap.String("id", id), zap.Bool("inserted", !exists))
	s.publish(EventUpserted, Change{Kind: s.schema.Kind, ID: id, Inserted: !exists})
	return nil
}

// Remove deletes the record with the given id. Removing an absent id,
// including a second removal of the same id, returns ErrNotFound.
func (s *Store[T]) Remove(id string) error {
	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("remove %s %q: %w", s.schema.Kind, id, ErrNotFound)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.schema.ID(s.items[j])] = j
	}
	s.mu.Unlock()

	s.logger.Debug("record removed", zap.String("id", id))
	s.publish(EventRemoved, Change{Kind: s.schema.Kind, ID: id})
	return nil
}

func (s *Store[T]) publish(kind string, c Change) {
	if s.bus != nil {
		s.bus.Emit(kind, c)
	}
}
