package badge

import (
	"testing"
	"time"
)

// fakeClock advances only when told to, so debounce tests don't sleep.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func snapshotWithX(x float64) []PlacedComponent {
	return []PlacedComponent{{ID: "c1", Kind: KindFreeText, X: x, Y: 10, Width: 60, Height: 12, Visible: true}}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	clock := newFakeClock()
	h := NewHistory(HistoryDepth, HistoryDebounce)
	h.SetClock(clock.now)

	s0 := snapshotWithX(10)
	s1 := snapshotWithX(40)

	h.Force(s0)
	clock.advance(time.Second)
	if !h.Record(s1) {
		t.Fatalf("push after idle must be recorded")
	}

	back, ok := h.Undo()
	if !ok {
		t.Fatalf("undo should be available")
	}
	if back[0] != s0[0] {
		t.Fatalf("undo must restore S0, got %+v", back[0])
	}

	fwd, ok := h.Redo()
	if !ok {
		t.Fatalf("redo should be available after undo")
	}
	if fwd[0] != s1[0] {
		t.Fatalf("redo must restore S1, got %+v", fwd[0])
	}
}

func TestUndoAtBottomIsNoOp(t *testing.T) {
	h := NewHistory(HistoryDepth, HistoryDebounce)
	h.Force(snapshotWithX(10))
	if _, ok := h.Undo(); ok {
		t.Fatalf("undo at cursor 0 must return none")
	}
}

func TestDebounceCoalescesRapidChanges(t *testing.T) {
	clock := newFakeClock()
	h := NewHistory(HistoryDepth, HistoryDebounce)
	h.SetClock(clock.now)

	h.Force(snapshotWithX(0))
	clock.advance(time.Second)

	if !h.Record(snapshotWithX(1)) {
		t.Fatalf("first change after idle must record immediately")
	}
	clock.advance(100 * time.Millisecond)
	if h.Record(snapshotWithX(2)) {
		t.Fatalf("change 100ms after a push must be suppressed")
	}
	if h.Len() != 2 {
		t.Fatalf("two rapid changes must produce one push, have %d snapshots", h.Len())
	}

	clock.advance(time.Second)
	if !h.Record(snapshotWithX(3)) {
		t.Fatalf("push after the window must be recorded")
	}
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	clock := newFakeClock()
	h := NewHistory(50, HistoryDebounce)
	h.SetClock(clock.now)

	for i := 0; i < 60; i++ {
		clock.advance(time.Second)
		h.Record(snapshotWithX(float64(i)))
	}

	if h.Len() != 50 {
		t.Fatalf("expected exactly 50 retained snapshots, got %d", h.Len())
	}

	// Walk all the way back: 49 undos from the newest, landing on the
	// oldest retained snapshot (x=10; 0..9 were evicted).
	undos := 0
	var last []PlacedComponent
	for {
		snap, ok := h.Undo()
		if !ok {
			break
		}
		last = snap
		undos++
	}
	if undos != 49 {
		t.Fatalf("expected 49 undo steps, got %d", undos)
	}
	if last[0].X != 10 {
		t.Fatalf("oldest retained snapshot should be x=10, got %v", last[0].X)
	}
}

func TestPushDiscardsRedoTail(t *testing.T) {
	clock := newFakeClock()
	h := NewHistory(HistoryDepth, HistoryDebounce)
	h.SetClock(clock.now)

	h.Force(snapshotWithX(0))
	for _, x := range []float64{1, 2} {
		clock.advance(time.Second)
		h.Record(snapshotWithX(x))
	}

	h.Undo()
	h.Undo()

	clock.advance(time.Second)
	h.Record(snapshotWithX(9))

	if h.CanRedo() {
		t.Fatalf("push after undo must discard the redo tail")
	}
	snap, ok := h.Undo()
	if !ok || snap[0].X != 0 {
		t.Fatalf("history should now be 0 -> 9, undo got %+v ok=%v", snap, ok)
	}
}

func TestHistoryOwnsCopies(t *testing.T) {
	h := NewHistory(HistoryDepth, HistoryDebounce)
	live := snapshotWithX(10)
	h.Force(live)

	live[0].X = 99

	h.Force(snapshotWithX(50))
	snap, ok := h.Undo()
	if !ok || snap[0].X != 10 {
		t.Fatalf("mutating the live slice must not alter history, got %+v", snap)
	}
}
