// Package core provides the runtime tier of the state container.
// Journal keeps a bounded in-memory record of committed dispatches.
// Stdlib-only implementation.
// Thread-safe for concurrent access.
package core

import (
	"sync"
	"time"
)

// Entry records one committed dispatch: the action, the state it saw, and
// the state it produced.
type Entry[S, A any] struct {
	Seq    uint64
	Action A
	Prev   S
	Next   S
	At     time.Time
}

// Journal is a bounded ring of recent entries. When full, the oldest entry
// is dropped and counted.
type Journal[S, A any] struct {
	mu      sync.RWMutex
	entries []Entry[S, A]
	max     int
	dropped uint64
}

// NewJournal creates a Journal keeping at most max entries. A max of zero
// or less falls back to 64.
func NewJournal[S, A any](max int) *Journal[S, A] {
	if max <= 0 {
		max = 64
	}
	return &Journal[S, A]{max: max}
}

// Record appends an entry, evicting the oldest when the journal is full.
func (j *Journal[S, A]) Record(e Entry[S, A]) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.entries) == j.max {
		copy(j.entries, j.entries[1:])
		j.entries = j.entries[:j.max-1]
		j.dropped++
	}
	j.entries = append(j.entries, e)
}

// Entries returns a copy of the recorded entries, oldest first.
func (j *Journal[S, A]) Entries() []Entry[S, A] {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]Entry[S, A], len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of recorded entries.
func (j *Journal[S, A]) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

// Dropped returns how many entries were evicted to respect the bound.
func (j *Journal[S, A]) Dropped() uint64 {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.dropped
}

// Clear removes all recorded entries. The dropped count is kept.
func (j *Journal[S, A]) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = j.entries[:0]
}
