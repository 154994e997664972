// Package core provides the runtime tier of the state container.
// Options for configuring Store instances.
package core

import "go.uber.org/zap"

// WithCell configures the Store to commit into an injected cell instead of
// a private slot. The cell's existing value wins over the store's initial.
func WithCell[S, A any](c Cell[S]) Option[S, A] {
	return func(s *Store[S, A]) {
		s.cell = c
	}
}

// WithObserver registers an Observer, notified after each commit in
// registration order.
func WithObserver[S, A any](o Observer[S, A]) Option[S, A] {
	return func(s *Store[S, A]) {
		s.observers = append(s.observers, o)
	}
}

// WithMiddleware appends a Middleware stage to the dispatch chain. Stages
// run in registration order, outermost first.
func WithMiddleware[S, A any](mw Middleware[A]) Option[S, A] {
	return func(s *Store[S, A]) {
		s.middleware = append(s.middleware, mw)
	}
}

// WithJournal keeps a bounded record of the most recent size transitions.
func WithJournal[S, A any](size int) Option[S, A] {
	return func(s *Store[S, A]) {
		s.journal = NewJournal[S, A](size)
	}
}

// WithLogger enables structured debug logging of dispatches.
func WithLogger[S, A any](logger *zap.Logger) Option[S, A] {
	return func(s *Store[S, A]) {
		s.logger = logger
	}
}
