package vim

// Snapshot is a (buffer, cursor) pair captured before an edit.
type Snapshot struct {
	Lines  []string
	Cursor Position
}

// History is a linear undo/redo history of snapshots.
//
// Both stacks are append-only from the point of view of any Model holding them:
// pushes always reslice to capacity first so two Models derived from the same
// parent never write into a shared backing array.
type History struct {
	undo []Snapshot // oldest -> newest
	redo []Snapshot
}

// Push records the pre-edit state and discards the redo stack.
func (h *History) Push(s Snapshot) {
	h.undo = append(h.undo[:len(h.undo):len(h.undo)], s)
	h.redo = nil
}

// Undo pops the newest undo snapshot and records current on the redo stack.
// Returns false when there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	n := len(h.undo) - 1
	s := h.undo[n]
	h.undo = h.undo[:n:n]
	h.redo = append(h.redo[:len(h.redo):len(h.redo)], current)
	return s, true
}

// Redo is the mirror of Undo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	n := len(h.redo) - 1
	s := h.redo[n]
	h.redo = h.redo[:n:n]
	h.undo = append(h.undo[:len(h.undo):len(h.undo)], current)
	return s, true
}

// CanUndo returns true if there are snapshots to undo.
func (h History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if there are snapshots to redo.
func (h History) CanRedo() bool {
	return len(h.redo) > 0
}
