package editor

import "curved/curve"

// change is one undoable transition: deep snapshots of the whole
// channel set before and after a user action.
type change struct {
	before curve.Set
	after  curve.Set
	label  string
}

// History is the snapshot-based undo/redo stack. Whole-state snapshots
// are memory-heavy but simple, and channel node counts stay small (tens,
// not thousands), so full copies are acceptable.
type History struct {
	undo []change
	redo []change
	max  int
}

// NewHistory returns a history keeping at most max transitions; max <= 0
// selects the default depth.
func NewHistory(max int) *History {
	if max <= 0 {
		max = 100
	}
	return &History{max: max}
}

// push records a transition. A transition whose before and after states
// are tolerance-equal is discarded: no-ops leave no history entry. Any
// redoable future is invalidated. Reports whether an entry was pushed.
func (h *History) push(before, after curve.Set, label string) bool {
	if before.Equal(after) {
		return false
	}
	h.undo = append(h.undo, change{before: before.Clone(), after: after.Clone(), label: label})
	if len(h.undo) > h.max {
		h.undo = h.undo[1:]
	}
	h.redo = h.redo[:0]
	return true
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Len returns the number of undoable transitions.
func (h *History) Len() int {
	return len(h.undo)
}

// LastLabel returns the label of the most recent undoable transition.
func (h *History) LastLabel() string {
	if len(h.undo) == 0 {
		return ""
	}
	return h.undo[len(h.undo)-1].label
}

// Clear drops all history, as done when a new state is loaded.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// Undo reverts the most recent transition on the editor. Reports
// whether anything was undone.
func (e *Editor) Undo() bool {
	h := e.history
	if len(h.undo) == 0 {
		return false
	}
	ch := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, ch)
	e.applySnapshot(ch.before)
	return true
}

// Redo reapplies the most recently undone transition. Reports whether
// anything was redone.
func (e *Editor) Redo() bool {
	h := e.history
	if len(h.redo) == 0 {
		return false
	}
	ch := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, ch)
	e.applySnapshot(ch.after)
	return true
}
