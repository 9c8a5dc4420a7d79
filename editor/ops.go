package editor

import (
	"curved/bezier"
	"curved/curve"
)

// InsertNode subdivides the given segment of the active channel at t
// and splices a new node in. The two neighbors' facing handles are
// rewired to the subdivision results so the curve shape is preserved;
// the new node defaults to Aligned. Inserts whose parameter lands on an
// existing anchor (within insertTTolerance) are rejected. Returns the
// new node's index and whether the insert happened. The transition is
// recorded in the history.
func (e *Editor) InsertNode(segment int, t float64) (int, bool) {
	nodes := e.activeNodes()
	if segment < 0 || segment >= len(nodes)-1 {
		return -1, false
	}
	if t <= insertTTolerance || t >= 1-insertTTolerance {
		return -1, false
	}

	before := e.set.Clone()

	p0, p1, p2, p3 := bezier.SegmentPoints(nodes[segment], nodes[segment+1])
	split := bezier.Subdivide(p0, p1, p2, p3, t)

	newNode := curve.NewNode(split.Point)
	newNode.In = split.MidIn
	newNode.Out = split.MidOut

	nodes[segment].Out = split.LeftOut
	nodes[segment+1].In = split.RightIn

	idx := segment + 1
	nodes = append(nodes, curve.Node{})
	copy(nodes[idx+1:], nodes[idx:])
	nodes[idx] = newNode
	e.setActiveNodes(nodes)

	e.history.push(before, e.set, "Add Node")
	return idx, true
}

// DeleteNode removes one interior node from the active channel.
// Endpoint nodes are never deletable. The selection is cleared and the
// transition recorded.
func (e *Editor) DeleteNode(idx int) bool {
	nodes := e.activeNodes()
	if idx <= 0 || idx >= len(nodes)-1 {
		return false
	}
	before := e.set.Clone()
	e.setActiveNodes(append(nodes[:idx], nodes[idx+1:]...))
	e.history.push(before, e.set, "Delete Node")
	e.selected = make(map[int]struct{})
	e.drag = noPart
	return true
}

// DeleteSelected removes every selected interior node, processing
// indices in descending order so the remaining indices stay valid. A
// selection with no eligible node is silently ignored and leaves no
// history entry.
func (e *Editor) DeleteSelected() bool {
	if len(e.selected) == 0 {
		return false
	}
	before := e.set.Clone()
	indices := e.SelectedIndices()
	nodes := e.activeNodes()
	removed := false
	for i := len(indices) - 1; i >= 0; i-- {
		idx := indices[i]
		if idx <= 0 || idx >= len(nodes)-1 {
			continue
		}
		nodes = append(nodes[:idx], nodes[idx+1:]...)
		removed = true
	}
	if !removed {
		return false
	}
	e.setActiveNodes(nodes)
	e.history.push(before, e.set, "Delete Nodes")
	e.selected = make(map[int]struct{})
	e.drag = noPart
	e.dragging = false
	return true
}

// SetSelectedAlignment changes the alignment mode of the single
// selected node and immediately re-snaps its handles. The request is
// ignored when the selection is not exactly one node, and a mode equal
// to the current one is a no-op with no history entry.
func (e *Editor) SetSelectedAlignment(mode curve.HandleAlignment) bool {
	if len(e.selected) != 1 || !mode.Valid() {
		return false
	}
	idx := e.SelectedIndices()[0]
	nodes := e.activeNodes()
	if idx < 0 || idx >= len(nodes) {
		return false
	}
	if nodes[idx].Align == mode {
		return false
	}

	before := e.set.Clone()
	nodes[idx].Align = mode
	e.applyAlignmentSnap(nodes, idx, PartHandleOut)
	return e.history.push(before, e.set, "Change Alignment")
}

// ResetChannel replaces the active channel with the two-node identity
// default. The selection and any in-progress interaction are dropped;
// the transition is recorded unless the channel was already at the
// default.
func (e *Editor) ResetChannel() bool {
	before := e.set.Clone()
	e.setActiveNodes(curve.DefaultNodes())
	pushed := e.history.push(before, e.set, "Reset Curve")
	e.selected = make(map[int]struct{})
	e.drag = noPart
	e.dragging = false
	e.boxSelecting = false
	return pushed
}

// moveSelectedAnchors applies the same logical delta to every selected
// anchor. Each anchor's x is clamped against its own neighbors (with
// MinSeparation) and its y into [0,1]; endpoints stay pinned at x=0 and
// x=1. Both handles travel by the anchor's clamped delta, which keeps a
// collapsed handle coincident with its anchor; the alignment snap
// re-runs afterwards.
func (e *Editor) moveSelectedAnchors(delta curve.Point) {
	nodes := e.activeNodes()
	for _, idx := range e.SelectedIndices() {
		if idx < 0 || idx >= len(nodes) {
			continue
		}
		node := &nodes[idx]
		oldMain := node.Main

		target := oldMain.Add(delta)
		target.X = e.clampAnchorX(nodes, idx, target.X)
		target.Y = clampUnit(target.Y)
		node.Main = target

		moved := target.Sub(oldMain)
		node.In = e.clampHandle(node.In.Add(moved))
		node.Out = e.clampHandle(node.Out.Add(moved))

		e.applyAlignmentSnap(nodes, idx, PartHandleOut)
	}
}

// clampAnchorX confines an anchor's x between its neighbors. Endpoints
// are pinned.
func (e *Editor) clampAnchorX(nodes []curve.Node, idx int, x float64) float64 {
	if idx == 0 {
		return 0
	}
	if idx == len(nodes)-1 {
		return 1
	}
	minX := nodes[idx-1].Main.X + curve.MinSeparation
	maxX := nodes[idx+1].Main.X - curve.MinSeparation
	if minX > maxX {
		mid := (minX + maxX) / 2
		minX, maxX = mid, mid
	}
	if x < minX {
		x = minX
	}
	if x > maxX {
		x = maxX
	}
	return clampUnit(x)
}

// moveHandle translates one handle by the drag delta. Handle x is
// deliberately unclamped during a drag unless the clamp-handles setting
// is on; the opposite handle re-snaps per the node's alignment mode.
func (e *Editor) moveHandle(ref PartRef, delta curve.Point) {
	nodes := e.activeNodes()
	if ref.Index < 0 || ref.Index >= len(nodes) {
		return
	}
	node := &nodes[ref.Index]
	switch ref.Part {
	case PartHandleIn:
		node.In = e.clampHandle(node.In.Add(delta))
	case PartHandleOut:
		node.Out = e.clampHandle(node.Out.Add(delta))
	default:
		return
	}
	e.applyAlignmentSnap(nodes, ref.Index, ref.Part)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
