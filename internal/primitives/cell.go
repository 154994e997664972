// Package primitives provides foundational data structures for the state
// container. All implementations use only the Go standard library.
//
// Cell is the single-slot value store the core tier commits into when no
// host cell is injected. It is deliberately minimal: one value, replaced
// atomically by an update function that always sees the latest committed
// value.
//
// # Fold Semantics
//
// Set applies the update function to the value held at the time the lock is
// acquired, never to a stale snapshot. Sequential Set calls therefore
// compose: each sees the result of the prior one.
//
// # Panic Safety
//
// If the update function panics, nothing is committed; the slot keeps its
// previous value and the panic propagates to the Set caller.
//
//go:generate go test ./... -race
package primitives

import "sync"

// Cell is a mutex-guarded single-slot value store.
type Cell[S any] struct {
	mu    sync.Mutex
	value S
}

// NewCell creates a Cell holding initial.
func NewCell[S any](initial S) *Cell[S] {
	return &Cell[S]{value: initial}
}

// Get returns the latest committed value. Safe for concurrent use.
func (c *Cell[S]) Get() S {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set commits update(previous) as the new value. Exclusive lock for the
// duration of the update, so concurrent Set calls serialize.
func (c *Cell[S]) Set(update func(prev S) S) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = update(c.value)
}

// Swap replaces the value outright and returns the previous one.
func (c *Cell[S]) Swap(next S) S {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev := c.value
	c.value = next
	return prev
}
