package reducerx_test

import (
	"testing"

	. "github.com/comalice/reducerx"
)

func TestMemoryCellFoldsOverLatestValue(t *testing.T) {
	c := NewMemoryCell(0)

	c.Set(func(prev int) int { return prev + 1 })
	c.Set(func(prev int) int { return prev + 1 })

	if got := c.Get(); got != 2 {
		t.Errorf("value = %d, want 2", got)
	}
}

func TestMemoryCellWatchAndCancel(t *testing.T) {
	c := NewMemoryCell(0)

	var calls int
	var lastPrev, lastNext int
	cancel := c.Watch(func(prev, next int) {
		calls++
		lastPrev, lastNext = prev, next
	})

	c.Set(func(prev int) int { return prev + 5 })
	if calls != 1 || lastPrev != 0 || lastNext != 5 {
		t.Errorf("calls=%d prev=%d next=%d, want 1/0/5", calls, lastPrev, lastNext)
	}

	cancel()
	c.Set(func(prev int) int { return prev + 5 })
	if calls != 1 {
		t.Errorf("watcher called after cancel: calls = %d", calls)
	}
}

// A watcher may re-enter the cell; notifications run outside the lock.
func TestMemoryCellReentrantWatcher(t *testing.T) {
	c := NewMemoryCell(0)

	var once bool
	c.Watch(func(prev, next int) {
		if !once {
			once = true
			c.Set(func(p int) int { return p + 10 })
		}
	})

	c.Set(func(prev int) int { return prev + 1 })

	if got := c.Get(); got != 11 {
		t.Errorf("value = %d, want 11", got)
	}
}

func TestMemoryCellBatchCoalescesNotifications(t *testing.T) {
	c := NewMemoryCell(0)

	var calls int
	var lastPrev, lastNext int
	c.Watch(func(prev, next int) {
		calls++
		lastPrev, lastNext = prev, next
	})

	c.Batch(func() {
		c.Set(func(prev int) int { return prev + 1 })
		c.Set(func(prev int) int { return prev + 1 })
		c.Set(func(prev int) int { return prev + 1 })

		// Commits are not coalesced, only notifications are.
		if got := c.Get(); got != 3 {
			t.Errorf("value inside batch = %d, want 3", got)
		}
	})

	if calls != 1 {
		t.Errorf("watcher calls = %d, want 1", calls)
	}
	if lastPrev != 0 || lastNext != 3 {
		t.Errorf("coalesced notification = (%d, %d), want (0, 3)", lastPrev, lastNext)
	}
}

func TestMemoryCellEmptyBatchNotifiesNothing(t *testing.T) {
	c := NewMemoryCell(0)

	var calls int
	c.Watch(func(prev, next int) { calls++ })

	c.Batch(func() {})

	if calls != 0 {
		t.Errorf("watcher calls = %d, want 0", calls)
	}
}

func TestMemoryCellSetPanicKeepsValueAndLock(t *testing.T) {
	c := NewMemoryCell(7)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		c.Set(func(prev int) int { panic("bad update") })
	}()

	// Value is intact and the cell is still usable (lock released).
	if got := c.Get(); got != 7 {
		t.Errorf("value = %d, want 7", got)
	}
	c.Set(func(prev int) int { return prev + 1 })
	if got := c.Get(); got != 8 {
		t.Errorf("value = %d, want 8", got)
	}
}

func TestMemoryHostAllocateReadsInitialOnce(t *testing.T) {
	h := NewMemoryHost[int]()

	c1 := h.Allocate(1)
	c2 := h.Allocate(99)

	if c1 != c2 {
		t.Fatal("Allocate returned a different cell on second call")
	}
	if got := c2.Get(); got != 1 {
		t.Errorf("value = %d, want 1 (second initial must be ignored)", got)
	}
}

func TestMemoryHostCellNilBeforeAllocate(t *testing.T) {
	h := NewMemoryHost[int]()
	if h.Cell() != nil {
		t.Error("Cell() before Allocate should be nil")
	}
	h.Allocate(0)
	if h.Cell() == nil {
		t.Error("Cell() after Allocate should not be nil")
	}
}
