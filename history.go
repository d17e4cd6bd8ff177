package brush

import (
	"image"

	"github.com/disintegration/imaging"
)

// DefaultHistoryDepth bounds how many undo snapshots MemoryHistory
// keeps before dropping the oldest.
const DefaultHistoryDepth = 32

// MemoryHistory is a bounded in-memory History implementation holding
// full-surface snapshots. Save is debounced: it only marks the history
// dirty, and the snapshot is taken when the host next calls Commit (or
// immediately via SaveNow). That keeps a long stroke from saving an
// unusable number of intermediate states.
type MemoryHistory struct {
	src       image.Image
	depth     int
	dirty     bool
	snapshots []*image.NRGBA
}

// NewMemoryHistory creates a history over src, keeping at most depth
// snapshots. If depth <= 0, DefaultHistoryDepth is used.
func NewMemoryHistory(src image.Image, depth int) *MemoryHistory {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &MemoryHistory{src: src, depth: depth}
}

// Save implements History. It marks the history dirty; the snapshot is
// deferred to the next Commit.
func (h *MemoryHistory) Save() {
	h.dirty = true
}

// SaveNow implements History. It snapshots the surface immediately.
func (h *MemoryHistory) SaveNow() {
	h.dirty = false
	h.push()
}

// Commit takes the snapshot requested by Save, if any.
// Call from the host loop after the render flush.
func (h *MemoryHistory) Commit() {
	if !h.dirty {
		return
	}
	h.dirty = false
	h.push()
}

// Dirty reports whether a Save is waiting for Commit.
func (h *MemoryHistory) Dirty() bool { return h.dirty }

// Len returns the number of stored snapshots.
func (h *MemoryHistory) Len() int { return len(h.snapshots) }

// Undo removes and returns the most recent snapshot, or nil when the
// history is empty.
func (h *MemoryHistory) Undo() *image.NRGBA {
	n := len(h.snapshots)
	if n == 0 {
		return nil
	}
	snap := h.snapshots[n-1]
	h.snapshots = h.snapshots[:n-1]
	return snap
}

// push appends a snapshot, evicting the oldest past the depth bound.
func (h *MemoryHistory) push() {
	if h.src == nil {
		return
	}
	snap := imaging.Clone(h.src)
	h.snapshots = append(h.snapshots, snap)
	if len(h.snapshots) > h.depth {
		h.snapshots = h.snapshots[1:]
	}
}
