package reducerx

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/comalice/reducerx/internal/core"
	"github.com/comalice/reducerx/internal/extensibility"
)

// Action is a tagged request to transition state. The key discriminates
// action variants; applications define one concrete type per variant so
// reducers can type-switch exhaustively.
type Action interface {
	ActionKey() string
}

// Msg is a generic Action for dynamic or open-ended action sets. The payload
// is optional and untyped; reducers assert the type they expect.
type Msg struct {
	Key     string
	Payload any
}

// ActionKey returns the discriminant.
func (m Msg) ActionKey() string { return m.Key }

// ActionPayload returns the payload.
func (m Msg) ActionPayload() any { return m.Payload }

// Payloader is implemented by actions that carry an untyped payload.
type Payloader interface {
	ActionPayload() any
}

// PayloadOf extracts the payload from an action, or nil if the action
// carries none.
func PayloadOf(a Action) any {
	if p, ok := a.(Payloader); ok {
		return p.ActionPayload()
	}
	return nil
}

// ReducerFunc computes the next state from the current state and an action.
// Reducers must be pure, must return a new value rather than mutate in
// place, and should return the input state unchanged for actions they do
// not recognize.
type ReducerFunc[S, A any] func(state S, action A) S

// Dispatch submits an action for the container to apply.
type Dispatch[A any] func(action A)

// Transition records one committed dispatch.
type Transition[S, A any] struct {
	Seq    uint64
	Action A
	Prev   S
	Next   S
	At     time.Time
}

// Store holds one immutable state value. Dispatch applies the reducer to
// (previous value, action) and commits the result into the backing cell.
// The store itself never fails: a reducer panic propagates to the Dispatch
// caller and the committed state stays at its previous value.
type Store[S, A any] struct {
	inner    *core.Store[S, A]
	dispatch Dispatch[A]
}

// Option applies configuration to a Store via functional options pattern.
type Option[S, A any] func(*config[S, A])

type config[S, A any] struct {
	host Host[S]
	core []core.Option[S, A]
}

// WithHost allocates the store's cell from the given host instead of a
// private in-memory slot. The host's slot semantics apply: the initializer
// is read only on first allocation.
func WithHost[S, A any](h Host[S]) Option[S, A] {
	return func(c *config[S, A]) {
		c.host = h
	}
}

// WithObserver registers fn to run after every commit with the action, the
// previous state, and the next state.
func WithObserver[S, A any](fn func(action A, prev, next S)) Option[S, A] {
	return func(c *config[S, A]) {
		c.core = append(c.core, core.WithObserver[S, A](extensibility.FuncObserver[S, A](fn)))
	}
}

// WithLogger enables structured logging of every dispatch.
func WithLogger[S, A any](logger *zap.Logger) Option[S, A] {
	return func(c *config[S, A]) {
		c.core = append(c.core, core.WithLogger[S, A](logger))
	}
}

// WithJournal keeps a bounded in-memory record of the most recent
// transitions, readable via Recent.
func WithJournal[S, A any](size int) Option[S, A] {
	return func(c *config[S, A]) {
		c.core = append(c.core, core.WithJournal[S, A](size))
	}
}

// New creates a store holding initial and applying reduce on each dispatch.
// The initial value is read once; if an injected host already holds a value,
// initial is ignored.
func New[S, A any](initial S, reduce ReducerFunc[S, A], opts ...Option[S, A]) (*Store[S, A], error) {
	if reduce == nil {
		return nil, errors.New("nil reducer")
	}

	var cfg config[S, A]
	for _, opt := range opts {
		opt(&cfg)
	}

	coreOpts := cfg.core
	if cfg.host != nil {
		coreOpts = append(coreOpts, core.WithCell[S, A](cfg.host.Allocate(initial)))
	}

	inner, err := core.NewStore[S, A](initial, reduce, coreOpts...)
	if err != nil {
		return nil, err
	}

	s := &Store[S, A]{inner: inner}
	s.dispatch = inner.Dispatch
	return s, nil
}

// State returns the latest committed value.
func (s *Store[S, A]) State() S {
	return s.inner.State()
}

// Dispatch applies the reducer to the current state and the action, then
// commits the result. Dispatches issued in sequence fold left-to-right,
// each seeing the result of the prior one as current state.
func (s *Store[S, A]) Dispatch(action A) {
	s.inner.Dispatch(action)
}

// Dispatcher returns a standalone dispatch function with stable identity
// across the store's lifetime.
func (s *Store[S, A]) Dispatcher() Dispatch[A] {
	return s.dispatch
}

// Recent returns the journaled transitions, oldest first. Nil unless the
// store was built with WithJournal.
func (s *Store[S, A]) Recent() []Transition[S, A] {
	j := s.inner.Journal()
	if j == nil {
		return nil
	}
	entries := j.Entries()
	out := make([]Transition[S, A], len(entries))
	for i, e := range entries {
		out[i] = Transition[S, A]{Seq: e.Seq, Action: e.Action, Prev: e.Prev, Next: e.Next, At: e.At}
	}
	return out
}

// UseReducer allocates the container from host and returns the current state
// together with a dispatch function. Calling it again on the same host
// returns the latest committed state; the initial value is only consulted on
// the first call (host slot semantics).
func UseReducer[S, A any](host Host[S], initial S, reduce ReducerFunc[S, A]) (S, Dispatch[A], error) {
	s, err := New(initial, reduce, WithHost[S, A](host))
	if err != nil {
		var zero S
		return zero, nil, err
	}
	return s.State(), s.Dispatcher(), nil
}
