package editor

import (
	"testing"

	"curved/curve"
)

// shifted returns a default set with the red channel's last anchor y
// lowered by d, giving cheap distinct states.
func shifted(d float64) curve.Set {
	s := curve.DefaultSet()
	s[curve.Red][1].Main.Y -= d
	return s
}

func TestPushDiscardsNoOps(t *testing.T) {
	h := NewHistory(0)
	s := curve.DefaultSet()
	if h.push(s, s.Clone(), "noop") {
		t.Error("push accepted a no-op transition")
	}

	near := s.Clone()
	near[curve.Red][0].Out.Y += curve.Epsilon / 2
	if h.push(s, near, "subtolerance") {
		t.Error("push accepted a transition below the equality tolerance")
	}
	if h.Len() != 0 || h.CanUndo() {
		t.Errorf("history not empty after no-op pushes: len %d", h.Len())
	}
}

func TestPushCapsDepth(t *testing.T) {
	h := NewHistory(2)
	for i := 1; i <= 3; i++ {
		if !h.push(shifted(float64(i-1)*0.1), shifted(float64(i)*0.1), "step") {
			t.Fatalf("push %d rejected", i)
		}
	}
	if h.Len() != 2 {
		t.Errorf("history len = %d, want capped at 2", h.Len())
	}
}

func TestPushInvalidatesRedo(t *testing.T) {
	e := newTestEditor()
	e.InsertNode(0, 0.5)
	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if !e.History().CanRedo() {
		t.Fatal("no redo after undo")
	}
	e.InsertNode(0, 0.3)
	if e.History().CanRedo() {
		t.Error("redo survived a new transition")
	}
}

func TestUndoRedoRestoreExactStates(t *testing.T) {
	e := newTestEditor()
	s0 := e.Channels()
	e.InsertNode(0, 0.5)
	s1 := e.Channels()
	e.DeleteNode(1)
	s2 := e.Channels()

	e.Undo()
	if !e.Channels().Equal(s1) {
		t.Error("undo did not restore the post-insert state")
	}
	e.Undo()
	if !e.Channels().Equal(s0) {
		t.Error("undo did not restore the initial state")
	}
	e.Redo()
	if !e.Channels().Equal(s1) {
		t.Error("redo did not restore the post-insert state")
	}
	e.Redo()
	if !e.Channels().Equal(s2) {
		t.Error("redo did not restore the final state")
	}
}

func TestUndoClearsInteractionState(t *testing.T) {
	e := newTestEditor()
	e.InsertNode(0, 0.5)
	e.selected = map[int]struct{}{1: {}}
	e.Undo()
	if len(e.SelectedIndices()) != 0 || e.Dragging() {
		t.Error("interaction state survived an undo")
	}
}

func TestClear(t *testing.T) {
	e := newTestEditor()
	e.InsertNode(0, 0.5)
	e.Undo()
	e.History().Clear()
	if e.History().CanUndo() || e.History().CanRedo() {
		t.Error("history not empty after Clear")
	}
}

func TestLastLabel(t *testing.T) {
	h := NewHistory(0)
	if h.LastLabel() != "" {
		t.Errorf("LastLabel on empty history = %q", h.LastLabel())
	}
	h.push(shifted(0), shifted(0.2), "Darken")
	if h.LastLabel() != "Darken" {
		t.Errorf("LastLabel = %q, want Darken", h.LastLabel())
	}
}
