package badge

import "time"

// Default history tuning. Sessions pass these to NewHistory; tests use
// their own values.
const (
	HistoryDepth    = 50
	HistoryDebounce = 500 * time.Millisecond
)

// History is a snapshot-based undo/redo stack over the component registry.
// Pushes are coalesced: a change arriving within the debounce window of the
// previous push is dropped, so a drag does not produce one entry per pixel.
// The first change after a longer idle period always records immediately.
type History struct {
	snapshots [][]PlacedComponent
	cursor    int
	depth     int
	debounce  time.Duration
	lastPush  time.Time
	now       func() time.Time
}

// NewHistory returns an empty stack. depth caps the number of retained
// snapshots (oldest evicted); debounce is the coalescing window.
func NewHistory(depth int, debounce time.Duration) *History {
	if depth < 1 {
		depth = 1
	}
	return &History{cursor: -1, depth: depth, debounce: debounce, now: time.Now}
}

// SetClock replaces the time source. Tests use this to exercise the
// debounce window without sleeping.
func (h *History) SetClock(now func() time.Time) { h.now = now }

// Record pushes a snapshot, subject to coalescing. It reports whether the
// snapshot was actually retained. Any redo tail beyond the cursor is
// discarded on push (linear history after a branch point).
func (h *History) Record(snapshot []PlacedComponent) bool {
	t := h.now()
	if !h.lastPush.IsZero() && t.Sub(h.lastPush) < h.debounce {
		return false
	}
	h.push(snapshot)
	h.lastPush = t
	return true
}

// Force pushes a snapshot regardless of the debounce window. Used for the
// initial state of a session so undo always has a floor to return to. It
// does not start the debounce window: the first edit after a load must
// always record.
func (h *History) Force(snapshot []PlacedComponent) {
	h.push(snapshot)
}

func (h *History) push(snapshot []PlacedComponent) {
	cp := make([]PlacedComponent, len(snapshot))
	copy(cp, snapshot)

	h.snapshots = h.snapshots[:h.cursor+1]
	h.snapshots = append(h.snapshots, cp)
	if len(h.snapshots) > h.depth {
		h.snapshots = h.snapshots[len(h.snapshots)-h.depth:]
	}
	h.cursor = len(h.snapshots) - 1
}

// Undo moves the cursor back one position and returns that snapshot for
// the caller to apply to the live registry. At the bottom of the stack it
// returns nil, false.
func (h *History) Undo() ([]PlacedComponent, bool) {
	if h.cursor <= 0 {
		return nil, false
	}
	h.cursor--
	return h.copyAt(h.cursor), true
}

// Redo is the mirror of Undo at the opposite boundary.
func (h *History) Redo() ([]PlacedComponent, bool) {
	if h.cursor >= len(h.snapshots)-1 {
		return nil, false
	}
	h.cursor++
	return h.copyAt(h.cursor), true
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return h.cursor < len(h.snapshots)-1 }

// Len returns the number of retained snapshots.
func (h *History) Len() int { return len(h.snapshots) }

func (h *History) copyAt(i int) []PlacedComponent {
	cp := make([]PlacedComponent, len(h.snapshots[i]))
	copy(cp, h.snapshots[i])
	return cp
}
