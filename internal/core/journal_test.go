package core

import "testing"

func entry(seq uint64) Entry[int, string] {
	return Entry[int, string]{Seq: seq, Action: "a", Prev: int(seq) - 1, Next: int(seq)}
}

func TestJournalEvictsOldest(t *testing.T) {
	j := NewJournal[int, string](3)

	for seq := uint64(1); seq <= 5; seq++ {
		j.Record(entry(seq))
	}

	if got := j.Len(); got != 3 {
		t.Fatalf("len = %d, want 3", got)
	}
	if got := j.Dropped(); got != 2 {
		t.Errorf("dropped = %d, want 2", got)
	}

	entries := j.Entries()
	for i, want := range []uint64{3, 4, 5} {
		if entries[i].Seq != want {
			t.Errorf("entries[%d].Seq = %d, want %d", i, entries[i].Seq, want)
		}
	}
}

func TestJournalDefaultBound(t *testing.T) {
	j := NewJournal[int, string](0)
	j.Record(entry(1))
	if got := j.Len(); got != 1 {
		t.Errorf("len = %d, want 1", got)
	}
}

func TestJournalEntriesIsACopy(t *testing.T) {
	j := NewJournal[int, string](4)
	j.Record(entry(1))

	entries := j.Entries()
	entries[0].Seq = 99

	if j.Entries()[0].Seq != 1 {
		t.Error("mutating the returned slice must not affect the journal")
	}
}

func TestJournalClear(t *testing.T) {
	j := NewJournal[int, string](2)
	j.Record(entry(1))
	j.Record(entry(2))
	j.Record(entry(3))

	j.Clear()

	if got := j.Len(); got != 0 {
		t.Errorf("len after clear = %d, want 0", got)
	}
	if got := j.Dropped(); got != 1 {
		t.Errorf("dropped after clear = %d, want 1 (kept)", got)
	}
}
