package buffer

// DefaultHistoryLimit is the number of ops kept when no limit is configured.
const DefaultHistoryLimit = 1000

// History is a linear undo/redo log of EditOps. Both stacks keep the most
// recent op last.
type History struct {
	undo  []EditOp
	redo  []EditOp
	limit int
}

// NewHistory returns an empty history keeping at most limit undo entries.
// A limit <= 0 selects DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Record pushes op onto the undo stack and invalidates the redo stack.
func (h *History) Record(op EditOp) {
	h.undo = append(h.undo, op)
	if over := len(h.undo) - h.limit; over > 0 {
		h.undo = append(h.undo[:0:0], h.undo[over:]...)
	}
	h.redo = nil
}

// Undo moves the most recent op onto the redo stack and returns it.
func (h *History) Undo() (EditOp, bool) {
	if len(h.undo) == 0 {
		return EditOp{}, false
	}
	op := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, op)
	return op, true
}

// Redo moves the most recently undone op back onto the undo stack and
// returns it.
func (h *History) Redo() (EditOp, bool) {
	if len(h.redo) == 0 {
		return EditOp{}, false
	}
	op := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, op)
	return op, true
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }

func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the sizes of the undo and redo stacks.
func (h *History) Len() (undo, redo int) { return len(h.undo), len(h.redo) }
