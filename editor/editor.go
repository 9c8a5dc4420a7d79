// Package editor implements the tone-curve editing engine: the channel
// store, the handle-alignment constraint system, edit operations, the
// selection and drag interaction state machine, and snapshot-based
// undo/redo. The engine is single-threaded and event-driven; every
// mutating operation runs to completion within one input-event turn.
//
// The engine is indifferent to how it is presented. A front-end
// supplies a Mapper between the logical unit square and its own
// surface, feeds mouse and key events in, and reads the channel and
// selection state back out each frame.
package editor

import (
	"fmt"
	"sort"

	"curved/bezier"
	"curved/curve"
)

// Mapper converts between logical unit-square coordinates and the
// presentation surface. Hit-testing radii and box-selection containment
// are measured in view units, so the mapping must be consistent and
// invertible but is otherwise opaque to the engine.
type Mapper interface {
	ToView(p curve.Point) (x, y float64)
	FromView(x, y float64) curve.Point
}

// Default interaction radii, in view units.
const (
	DefaultMainRadius   = 10.0
	DefaultHandleRadius = 8.0
	// DefaultInsertRadius is how close (in view units) a press must be
	// to the curve for it to insert a node rather than start a box
	// selection.
	DefaultInsertRadius = 20.0
)

// insertTTolerance rejects inserts whose parameter lands on top of an
// existing anchor.
const insertTTolerance = 0.005

// Editor owns the channel set and all interaction state. It is not safe
// for concurrent use; the single-threaded event loop is the intended
// caller.
type Editor struct {
	set    curve.Set
	active curve.ChannelID

	selected map[int]struct{}
	drag     PartRef
	dragging bool

	boxSelecting bool
	boxStartX    float64
	boxStartY    float64
	boxEndX      float64
	boxEndY      float64

	// before holds the deep snapshot captured when a mutating action
	// started; nil when no action is pending.
	before  curve.Set
	history *History

	clampHandles bool

	mapper       Mapper
	mainRadius   float64
	handleRadius float64
	insertRadius float64
}

// New returns an editor over the default identity curves.
func New(mapper Mapper) *Editor {
	return &Editor{
		set:          curve.DefaultSet(),
		active:       curve.Red,
		selected:     make(map[int]struct{}),
		drag:         noPart,
		history:      NewHistory(0),
		clampHandles: true,
		mapper:       mapper,
		mainRadius:   DefaultMainRadius,
		handleRadius: DefaultHandleRadius,
		insertRadius: DefaultInsertRadius,
	}
}

// SetMapper replaces the view mapping, e.g. after a resize.
func (e *Editor) SetMapper(m Mapper) {
	e.mapper = m
}

// SetRadii overrides the hit-testing radii, in view units.
func (e *Editor) SetRadii(main, handle, insert float64) {
	e.mainRadius = main
	e.handleRadius = handle
	e.insertRadius = insert
}

// activeNodes returns the live node slice of the active channel. The
// active channel existing in the set is an engine invariant; violating
// it is a construction bug, not a runtime condition.
func (e *Editor) activeNodes() []curve.Node {
	nodes, ok := e.set[e.active]
	if !ok {
		panic(fmt.Sprintf("editor: active channel %s missing from set", e.active))
	}
	return nodes
}

// setActiveNodes replaces the active channel's node slice after a
// length-changing mutation.
func (e *Editor) setActiveNodes(nodes []curve.Node) {
	e.set[e.active] = nodes
}

// ActiveChannel returns the channel currently being edited.
func (e *Editor) ActiveChannel() curve.ChannelID {
	return e.active
}

// SetActiveChannel switches editing to another channel and resets the
// selection and any in-progress interaction.
func (e *Editor) SetActiveChannel(ch curve.ChannelID) {
	if _, ok := e.set[ch]; !ok {
		return
	}
	if ch == e.active {
		return
	}
	e.active = ch
	e.clearInteraction()
}

// Nodes returns a copy of a channel's node sequence. The engine never
// hands out live mutable references across the component boundary.
func (e *Editor) Nodes(ch curve.ChannelID) []curve.Node {
	nodes := e.set[ch]
	out := make([]curve.Node, len(nodes))
	copy(out, nodes)
	return out
}

// ActiveNodeCount returns the number of nodes in the active channel.
func (e *Editor) ActiveNodeCount() int {
	return len(e.activeNodes())
}

// Alignment returns the alignment mode of a node in the active channel,
// or Free for an out-of-range index.
func (e *Editor) Alignment(idx int) curve.HandleAlignment {
	nodes := e.activeNodes()
	if idx < 0 || idx >= len(nodes) {
		return curve.Free
	}
	return nodes[idx].Align
}

// Channels returns a deep copy of the whole channel set.
func (e *Editor) Channels() curve.Set {
	return e.set.Clone()
}

// SelectedIndices returns the selected anchor indices in ascending
// order.
func (e *Editor) SelectedIndices() []int {
	out := make([]int, 0, len(e.selected))
	for i := range e.selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// IsSelected reports whether the anchor at idx is selected.
func (e *Editor) IsSelected(idx int) bool {
	_, ok := e.selected[idx]
	return ok
}

// DragTarget returns the part currently (or most recently) being
// dragged.
func (e *Editor) DragTarget() PartRef {
	return e.drag
}

// Dragging reports whether a drag is in progress.
func (e *Editor) Dragging() bool {
	return e.dragging
}

// BoxSelecting reports whether a box selection is in progress, and if
// so its current rectangle in view coordinates.
func (e *Editor) BoxSelecting() (x0, y0, x1, y1 float64, active bool) {
	if !e.boxSelecting {
		return 0, 0, 0, 0, false
	}
	x0, x1 = order(e.boxStartX, e.boxEndX)
	y0, y1 = order(e.boxStartY, e.boxEndY)
	return x0, y0, x1, y1, true
}

// ClampHandles reports whether handle coordinates are clamped into the
// unit square.
func (e *Editor) ClampHandles() bool {
	return e.clampHandles
}

// SetClampHandles toggles clamping of handle coordinates into the unit
// square. Existing handles are left where they are; the setting applies
// to subsequent moves and snaps.
func (e *Editor) SetClampHandles(clamp bool) {
	e.clampHandles = clamp
}

// Sample answers a channel's y at x. Pure with respect to the engine
// state; callable at arbitrary density between edits.
func (e *Editor) Sample(ch curve.ChannelID, x float64) float64 {
	return bezier.Sample(e.set, ch, x)
}

// History exposes the undo/redo stack.
func (e *Editor) History() *History {
	return e.history
}

// Replace swaps in an entirely new channel set, as used by load. The
// selection, any pending interaction, and the undo history are cleared.
// The set is validated first; the live state is untouched on failure.
func (e *Editor) Replace(set curve.Set) error {
	if err := set.Validate(); err != nil {
		return err
	}
	e.set = set.Clone()
	if _, ok := e.set[e.active]; !ok {
		e.active = curve.Red
	}
	e.clearInteraction()
	e.history.Clear()
	return nil
}

// applySnapshot restores a historical state during undo/redo replay.
func (e *Editor) applySnapshot(s curve.Set) {
	e.set = s.Clone()
	e.clearInteraction()
}

// clearInteraction drops the selection, drag target, box selection, and
// any pending snapshot.
func (e *Editor) clearInteraction() {
	e.selected = make(map[int]struct{})
	e.drag = noPart
	e.dragging = false
	e.boxSelecting = false
	e.before = nil
}

func order(a, b float64) (lo, hi float64) {
	if a <= b {
		return a, b
	}
	return b, a
}
