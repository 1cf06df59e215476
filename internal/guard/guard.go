// Package guard puts a confirmation step in front of record removal so a
// single action can never destroy data.
package guard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ohadaerp/erp/internal/bus"
	"github.com/ohadaerp/erp/internal/record"
	"go.uber.org/zap"
)

// EventStateChanged is published on every guard transition.
const EventStateChanged = "guard.state_changed"

// Remover is the store side of a deletion.
type Remover interface {
	Kind() string
	Remove(id string) error
}

// Option configures a Guard.
type Option func(*options)

type options struct {
	bus    *bus.Bus
	logger *zap.Logger
}

// WithBus publishes state changes on b.
func WithBus(b *bus.Bus) Option {
	return func(o *options) { o.bus = b }
}

// WithLogger sets the guard logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Guard is the Idle/Confirming state machine of one list view. At most one
// record is staged at a time.
type Guard[T any] struct {
	mu        sync.Mutex
	state     State
	store     Remover
	idOf      func(T) string
	candidate T
	prompt    Prompt
	lastErr   error
	bus       *bus.Bus
	logger    *zap.Logger
}

// New creates an idle guard removing records from store.
func New[T any](store Remover, idOf func(T) string, opts ...Option) *Guard[T] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Guard[T]{
		state:  Idle,
		store:  store,
		idOf:   idOf,
		bus:    o.bus,
		logger: o.logger.With(zap.String("kind", store.Kind())),
	}
}

// State returns the current state.
func (g *Guard[T]) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Pending returns the staged prompt while confirming.
func (g *Guard[T]) Pending() (Prompt, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.prompt, g.state == Confirming
}

// Candidate returns the staged record while confirming.
func (g *Guard[T]) Candidate() (T, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.candidate, g.state == Confirming
}

// LastError returns the error of the last failed Confirm, cleared by any
// successful transition.
func (g *Guard[T]) LastError() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastErr
}

// RequestDelete stages r and opens the confirmation. It fails while another
// record is staged, leaving that record in place.
func (g *Guard[T]) RequestDelete(r T, req Request) (Prompt, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	to, err := next(g.state, OpRequest)
	if err != nil {
		return Prompt{}, err
	}
	id := g.idOf(r)
	if req.ItemName == "" {
		req.ItemName = id
	}
	g.candidate = r
	g.prompt = Compose(req)
	g.lastErr = nil
	g.transition(to, id)
	return g.prompt, nil
}

// Cancel discards the staged record without touching the store.
func (g *Guard[T]) Cancel() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	to, err := next(g.state, OpCancel)
	if err != nil {
		return err
	}
	id := g.idOf(g.candidate)
	g.reset()
	g.transition(to, id)
	return nil
}

// Confirm removes the staged record. A record that is already gone counts
// as removed. Any other failure keeps the dialog open so the user can retry
// or cancel.
func (g *Guard[T]) Confirm() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	to, err := next(g.state, OpConfirm)
	if err != nil {
		return err
	}
	id := g.idOf(g.candidate)

	if err := g.store.Remove(id); err != nil {
		if !errors.Is(err, record.ErrNotFound) {
			g.lastErr = fmt.Errorf("delete %s %q: %w", g.store.Kind(), id, err)
			g.logger.Warn("delete failed", zap.String("id", id), zap.Error(err))
			return g.lastErr
		}
		g.logger.Info("record already removed", zap.String("id", id))
	}

	g.reset()
	g.transition(to, id)
	return nil
}

func (g *Guard[T]) reset() {
	var zero T
	g.candidate = zero
	g.prompt = Prompt{}
	g.lastErr = nil
}

// transition must be called with g.mu held.
func (g *Guard[T]) transition(to State, id string) {
	from := g.state
	g.state = to
	g.logger.Debug("guard transition", zap.String("id", id), zap.String("from", string(from)), zap.String("to", string(to)))
	if g.bus != nil {
		g.bus.Emit(EventStateChanged, StateChange{Kind: g.store.Kind(), ID: id, From: from, To: to})
	}
}
