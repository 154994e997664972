// Package core provides the runtime tier of the state container: the Store,
// its pluggable components, and the dispatch path that folds actions into
// the backing cell.
// Dependencies: internal/primitives.
//
//go:generate go test ./... -race
package core

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/comalice/reducerx/internal/primitives"
)

// Pluggable component interfaces.

// Cell is the single-slot reactive primitive the store commits into.
// Set must fold the update function over the latest committed value.
type Cell[S any] interface {
	Get() S
	Set(update func(prev S) S)
}

// Observer is notified after each commit.
type Observer[S, A any] interface {
	OnCommit(action A, prev S, next S)
}

// Middleware wraps the dispatch path. It may drop or rewrite actions before
// the reducer sees them by choosing whether and with what to call next.
type Middleware[A any] func(next func(A)) func(A)

// Option applies configuration to Store via functional options pattern.
type Option[S, A any] func(*Store[S, A])

// Store applies a pure reducer to (current state, action) on each Dispatch
// and commits the result into its cell. Dispatch is synchronous on the
// caller's goroutine; the store adds no batching or scheduling of its own.
type Store[S, A any] struct {
	cell       Cell[S]
	reduce     func(S, A) S
	observers  []Observer[S, A]
	middleware []Middleware[A]
	journal    *Journal[S, A]
	logger     *zap.Logger
	dispatch   func(A)
	seq        atomic.Uint64
}

// NewStore creates a Store holding initial. If no cell is injected via
// WithCell, a private in-memory slot is used and initial seeds it; an
// injected cell keeps whatever value it already holds.
func NewStore[S, A any](initial S, reduce func(S, A) S, opts ...Option[S, A]) (*Store[S, A], error) {
	if reduce == nil {
		return nil, errors.New("nil reducer")
	}

	s := &Store[S, A]{reduce: reduce}

	// Apply functional options
	for _, opt := range opts {
		opt(s)
	}

	if s.cell == nil {
		s.cell = primitives.NewCell(initial)
	}

	// Compose the dispatch chain, innermost last.
	d := s.commit
	for i := len(s.middleware) - 1; i >= 0; i-- {
		d = s.middleware[i](d)
	}
	s.dispatch = d

	return s, nil
}

// State returns the latest committed value.
func (s *Store[S, A]) State() S {
	return s.cell.Get()
}

// Dispatch applies the reducer and commits the result. A reducer panic
// propagates to the caller and leaves the committed state intact.
func (s *Store[S, A]) Dispatch(action A) {
	s.dispatch(action)
}

// Journal returns the store's journal, or nil if none was configured.
func (s *Store[S, A]) Journal() *Journal[S, A] {
	return s.journal
}

// commit is the innermost dispatch stage: fold the action into the cell,
// then record and notify.
func (s *Store[S, A]) commit(action A) {
	var prev, next S
	s.cell.Set(func(cur S) S {
		prev = cur
		next = s.reduce(cur, action)
		return next
	})

	seq := s.seq.Add(1)

	if s.journal != nil {
		s.journal.Record(Entry[S, A]{
			Seq:    seq,
			Action: action,
			Prev:   prev,
			Next:   next,
			At:     time.Now(),
		})
	}

	if s.logger != nil {
		s.logger.Debug("dispatch",
			zap.Uint64("seq", seq),
			zap.String("action", Describe(action)),
		)
	}

	for _, o := range s.observers {
		o.OnCommit(action, prev, next)
	}
}

type keyed interface {
	ActionKey() string
}

// Describe returns a short label for an action: its key when it carries
// one, its dynamic type otherwise.
func Describe(action any) string {
	if k, ok := action.(keyed); ok {
		return k.ActionKey()
	}
	return fmt.Sprintf("%T", action)
}
