package editor

import "curved/curve"

// MousePress feeds a button-down event at a view position into the
// engine. It resolves, in order: right-click delete over a deletable
// anchor, grabbing an existing part to drag (with click selection
// semantics for anchors), a synchronous insert when the press lands
// within the insert radius of the curve, and otherwise the start of a
// box selection.
func (e *Editor) MousePress(x, y float64, btn Button, mods Modifiers) {
	e.boxSelecting = false
	e.dragging = false
	e.drag = noPart
	e.before = nil

	hit := e.FindNearbyPart(x, y)

	if btn == ButtonRight {
		if hit.Part == PartMain {
			e.DeleteNode(hit.Index)
		}
		return
	}
	if btn != ButtonLeft {
		return
	}

	if hit.Part != PartNone {
		e.dragging = true
		e.drag = hit

		if hit.Part == PartMain {
			// Plain click replaces the selection with this anchor
			// unless it is already selected; a modified click toggles
			// membership.
			if mods&ModToggle != 0 {
				if e.IsSelected(hit.Index) {
					delete(e.selected, hit.Index)
				} else {
					e.selected[hit.Index] = struct{}{}
				}
			} else if !e.IsSelected(hit.Index) {
				e.selected = map[int]struct{}{hit.Index: {}}
			}
		} else {
			// Grabbing a handle drops any anchor selection.
			e.selected = make(map[int]struct{})
		}
		e.before = e.set.Clone()
		return
	}

	seg := e.ClosestSegment(x, y)
	if seg.Segment >= 0 && seg.T > insertTTolerance && seg.T < 1-insertTTolerance &&
		seg.DistSq < e.insertRadius*e.insertRadius {
		if idx, ok := e.InsertNode(seg.Segment, seg.T); ok {
			// The new anchor immediately becomes the sole selection and
			// drag target; the drag that follows is its own transition.
			e.selected = map[int]struct{}{idx: {}}
			e.dragging = true
			e.drag = PartRef{PartMain, idx}
			e.before = e.set.Clone()
		}
		return
	}

	e.boxSelecting = true
	e.boxStartX, e.boxStartY = x, y
	e.boxEndX, e.boxEndY = x, y
	if mods&ModToggle == 0 {
		e.selected = make(map[int]struct{})
	}
}

// MouseMove advances an in-progress drag or box selection.
func (e *Editor) MouseMove(x, y float64) {
	if e.boxSelecting {
		e.boxEndX, e.boxEndY = x, y
		return
	}
	if !e.dragging {
		return
	}

	nodes := e.activeNodes()
	if e.drag.Index < 0 || e.drag.Index >= len(nodes) {
		e.dragging = false
		e.drag = noPart
		return
	}

	logical := e.mapper.FromView(x, y)
	primary := nodes[e.drag.Index]

	switch e.drag.Part {
	case PartMain:
		// The pointer dictates where the primary anchor wants to be;
		// the clamped difference becomes the group delta.
		target := curve.Point{
			X: e.clampAnchorX(nodes, e.drag.Index, logical.X),
			Y: clampUnit(logical.Y),
		}
		delta := target.Sub(primary.Main)
		if delta.X == 0 && delta.Y == 0 {
			return
		}
		if !e.IsSelected(e.drag.Index) {
			e.selected[e.drag.Index] = struct{}{}
		}
		e.moveSelectedAnchors(delta)
	case PartHandleIn:
		e.moveHandle(e.drag, logical.Sub(primary.In))
	case PartHandleOut:
		e.moveHandle(e.drag, logical.Sub(primary.Out))
	}
}

// MouseRelease ends a drag or box selection. A completed drag finalizes
// an undo transition only if the state actually changed; a completed
// box selection selects every anchor inside the rectangle, replacing or
// extending the selection depending on the modifier.
func (e *Editor) MouseRelease(x, y float64, btn Button, mods Modifiers) {
	if btn != ButtonLeft {
		return
	}

	if e.dragging {
		e.dragging = false
		if e.before != nil {
			e.history.push(e.before, e.set, "Modify Curve")
			e.before = nil
		}
		return
	}

	if e.boxSelecting {
		e.boxEndX, e.boxEndY = x, y
		x0, y0, x1, y1, _ := e.BoxSelecting()
		e.boxSelecting = false

		if mods&ModToggle == 0 {
			e.selected = make(map[int]struct{})
		}
		nodes := e.activeNodes()
		for i := range nodes {
			vx, vy := e.mapper.ToView(nodes[i].Main)
			if vx >= x0 && vx <= x1 && vy >= y0 && vy <= y1 {
				e.selected[i] = struct{}{}
			}
		}
		e.drag = noPart
	}
}
