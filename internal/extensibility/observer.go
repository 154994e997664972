// Package extensibility provides pluggable implementations of the core
// component interfaces: observers that watch commits and middleware that
// wraps the dispatch path.
package extensibility

import (
	"github.com/comalice/reducerx/internal/core"
)

// FuncObserver adapts a plain function to the core Observer interface.
type FuncObserver[S, A any] func(action A, prev, next S)

// OnCommit calls the function.
func (f FuncObserver[S, A]) OnCommit(action A, prev, next S) {
	f(action, prev, next)
}

// Commit is one observed transition, as delivered by ChannelObserver.
type Commit[S, A any] struct {
	Action A
	Prev   S
	Next   S
}

// ChannelObserver is an Observer backed by a Go channel. Provides a simple
// way to feed committed transitions to a consumer goroutine.
type ChannelObserver[S, A any] struct {
	ch chan Commit[S, A]
}

// NewChannelObserver creates a ChannelObserver with the given buffer size.
// The buffer should be sized for the consumer's lag; commits are dropped
// when it is full so dispatch never blocks.
func NewChannelObserver[S, A any](buffer int) *ChannelObserver[S, A] {
	return &ChannelObserver[S, A]{
		ch: make(chan Commit[S, A], buffer),
	}
}

// OnCommit delivers the transition to the channel, dropping it if full.
func (o *ChannelObserver[S, A]) OnCommit(action A, prev, next S) {
	select {
	case o.ch <- Commit[S, A]{Action: action, Prev: prev, Next: next}:
	default:
		// drop if full
	}
}

// Commits returns the receive-only channel of observed transitions.
func (o *ChannelObserver[S, A]) Commits() <-chan Commit[S, A] {
	return o.ch
}

// Close closes the channel. Do not close while the observer is still
// registered with a live store.
func (o *ChannelObserver[S, A]) Close() {
	close(o.ch)
}

var _ core.Observer[int, int] = FuncObserver[int, int](nil)
var _ core.Observer[int, int] = (*ChannelObserver[int, int])(nil)
