package reducerx

import "sync"

// Cell is the host reactive-state primitive the container builds on: one
// slot holding the latest committed value. Set folds over the latest pending
// value, never a stale snapshot, so sequential updates compose.
type Cell[S any] interface {
	Get() S
	Set(update func(prev S) S)
}

// Host allocates single-slot cells. Allocate reads initial exactly once:
// allocating again on the same host returns the existing cell and ignores
// the new initial value.
type Host[S any] interface {
	Allocate(initial S) Cell[S]
}

// MemoryCell is an in-memory Cell with synchronous watcher callbacks.
// It stands in for a real host runtime's reactive slot in tests and demos.
type MemoryCell[S any] struct {
	mu       sync.Mutex
	value    S
	watchers map[int]func(prev, next S)
	nextID   int
	batching bool
	pending  bool
	pendPrev S
}

// NewMemoryCell creates a cell holding initial.
func NewMemoryCell[S any](initial S) *MemoryCell[S] {
	return &MemoryCell[S]{
		value:    initial,
		watchers: make(map[int]func(prev, next S)),
	}
}

// Get returns the latest committed value.
func (c *MemoryCell[S]) Get() S {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set commits update(previous) as the new value and notifies watchers.
// If update panics nothing is committed and the panic propagates to the
// caller. Watchers run outside the cell's lock, so a watcher may Get or Set
// re-entrantly.
func (c *MemoryCell[S]) Set(update func(prev S) S) {
	prev, next, watchers := c.apply(update)
	for _, w := range watchers {
		w(prev, next)
	}
}

func (c *MemoryCell[S]) apply(update func(prev S) S) (prev, next S, watchers []func(prev, next S)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev = c.value
	next = update(prev) // panic propagates before commit
	c.value = next

	if c.batching {
		if !c.pending {
			c.pending = true
			c.pendPrev = prev
		}
		return prev, next, nil
	}

	watchers = make([]func(prev, next S), 0, len(c.watchers))
	for _, w := range c.watchers {
		watchers = append(watchers, w)
	}
	return prev, next, watchers
}

// Watch registers fn to be called after each commit. Returns a cancel
// function that unregisters it.
func (c *MemoryCell[S]) Watch(fn func(prev, next S)) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.watchers[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.watchers, id)
	}
}

// Batch coalesces watcher notifications for all commits made inside fn into
// a single callback spanning from the first pre-batch value to the final
// committed value. Commits themselves are never coalesced: every Set still
// folds over the latest value. Not reentrant.
func (c *MemoryCell[S]) Batch(fn func()) {
	c.mu.Lock()
	c.batching = true
	c.pending = false
	c.mu.Unlock()

	defer c.flush()
	fn()
}

func (c *MemoryCell[S]) flush() {
	c.mu.Lock()
	c.batching = false
	notify := c.pending
	c.pending = false
	prev, next := c.pendPrev, c.value
	watchers := make([]func(prev, next S), 0, len(c.watchers))
	for _, w := range c.watchers {
		watchers = append(watchers, w)
	}
	c.mu.Unlock()

	if !notify {
		return
	}
	for _, w := range watchers {
		w(prev, next)
	}
}

// MemoryHost is a single-slot Host backed by a MemoryCell.
type MemoryHost[S any] struct {
	mu   sync.Mutex
	cell *MemoryCell[S]
}

// NewMemoryHost creates an empty host.
func NewMemoryHost[S any]() *MemoryHost[S] {
	return &MemoryHost[S]{}
}

// Allocate returns the host's cell, creating it with initial on first call.
// Subsequent calls ignore initial.
func (h *MemoryHost[S]) Allocate(initial S) Cell[S] {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cell == nil {
		h.cell = NewMemoryCell(initial)
	}
	return h.cell
}

// Cell returns the allocated cell, or nil before the first Allocate.
func (h *MemoryHost[S]) Cell() *MemoryCell[S] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cell
}
