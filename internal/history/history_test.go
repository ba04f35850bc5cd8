package history

import "testing"

func TestEmptyHistory(t *testing.T) {
	var h History

	if h.CanUndo() {
		t.Error("CanUndo() = true on empty history")
	}
	if h.CanRedo() {
		t.Error("CanRedo() = true on empty history")
	}
	if op := h.Undo(); op != nil {
		t.Errorf("Undo() = %v, want nil", op)
	}
	if op := h.Redo(); op != nil {
		t.Errorf("Redo() = %v, want nil", op)
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("empty undo/redo flipped CanUndo/CanRedo")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	var h History
	a := Delete{EmailID: "a"}
	b := Save{AddedToCalendar: true}

	h.Record(a)
	h.Record(b)

	if op := h.Undo(); op != b {
		t.Fatalf("first Undo() = %v, want %v", op, b)
	}
	if op := h.Undo(); op != a {
		t.Fatalf("second Undo() = %v, want %v", op, a)
	}
	if h.CanUndo() {
		t.Error("CanUndo() = true after undoing everything")
	}

	if op := h.Redo(); op != a {
		t.Fatalf("first Redo() = %v, want %v", op, a)
	}
	if op := h.Redo(); op != b {
		t.Fatalf("second Redo() = %v, want %v", op, b)
	}
	if op := h.Redo(); op != nil {
		t.Fatalf("third Redo() = %v, want nil", op)
	}
}

func TestRecordClearsRedo(t *testing.T) {
	var h History
	a := Delete{EmailID: "a"}
	c := Save{AddedToReminders: true}

	h.Record(a)
	h.Undo()
	if !h.CanRedo() {
		t.Fatal("CanRedo() = false after undo")
	}

	h.Record(c)
	if h.CanRedo() {
		t.Error("CanRedo() = true after new record")
	}
	if op := h.Redo(); op != nil {
		t.Errorf("Redo() = %v after new record, want nil", op)
	}

	// the new record is undoable
	if op := h.Undo(); op != c {
		t.Errorf("Undo() = %v, want %v", op, c)
	}
}

func TestOperationOrderPreserved(t *testing.T) {
	var h History
	ops := []Operation{
		Delete{EmailID: "1"},
		Save{AddedToCalendar: true},
		Delete{EmailID: "2"},
	}
	for _, op := range ops {
		h.Record(op)
	}

	// undo pops newest-first
	for i := len(ops) - 1; i >= 0; i-- {
		if got := h.Undo(); got != ops[i] {
			t.Fatalf("Undo() = %v, want %v", got, ops[i])
		}
	}
	// redo replays oldest-first
	for i := 0; i < len(ops); i++ {
		if got := h.Redo(); got != ops[i] {
			t.Fatalf("Redo() = %v, want %v", got, ops[i])
		}
	}
}
