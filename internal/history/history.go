// Package history keeps a linear undo/redo ledger of swipe operations.
//
// The ledger is pure bookkeeping: it records which operations happened and
// hands them back on undo/redo, but it has no idea how to invert one — the
// caller replays the inverse (or forward) side effect itself.
package history

// Operation is a recorded, reversible swipe action.
type Operation interface {
	isOperation()
}

// Delete records a rejected card. Snapshot is an opaque deep copy of the
// card at rejection time; the ledger never inspects it.
type Delete struct {
	Snapshot any
	EmailID  string
}

// Save records an accepted card and where it was written.
type Save struct {
	Snapshot         any
	AddedToCalendar  bool
	AddedToReminders bool
}

func (Delete) isOperation() {}
func (Save) isOperation()   {}

// History is a two-stack undo/redo ledger. At any point undo plus the
// reverse of redo is the full chronological record, with a single cut point
// that Undo/Redo slide back and forth. Not safe for concurrent use; callers
// with multiple goroutines must serialize access themselves.
type History struct {
	undo []Operation
	redo []Operation
}

// Record appends op to the undo stack and discards the redo stack. A new
// action always truncates the redone-available branch, even an unrelated one.
func (h *History) Record(op Operation) {
	h.undo = append(h.undo, op)
	h.redo = nil
}

// Undo moves the most recent operation to the redo stack and returns it for
// the caller to invert. Returns nil when there is nothing to undo.
func (h *History) Undo() Operation {
	if len(h.undo) == 0 {
		return nil
	}
	op := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, op)
	return op
}

// Redo is the mirror of Undo: the operation comes back to the undo stack and
// the caller re-applies its forward effect. Returns nil when the redo stack
// is empty.
func (h *History) Redo() Operation {
	if len(h.redo) == 0 {
		return nil
	}
	op := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, op)
	return op
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }

func (h *History) CanRedo() bool { return len(h.redo) > 0 }
