package editor

import (
	"math"

	"curved/curve"
)

// handleCoincidenceSq is the squared distance below which a handle is
// treated as coincident with its anchor.
const handleCoincidenceSq = 1e-12

// applyAlignmentSnap recomputes the handle opposite the one that just
// moved so the node's alignment mode holds. Only interior nodes snap;
// endpoint nodes are effectively Free for their unused handle.
func (e *Editor) applyAlignmentSnap(nodes []curve.Node, idx int, moved Part) {
	if idx <= 0 || idx >= len(nodes)-1 {
		return
	}
	if moved != PartHandleIn && moved != PartHandleOut {
		return
	}
	node := &nodes[idx]
	if node.Align == curve.Free {
		return
	}

	var source, target *curve.Point
	if moved == PartHandleIn {
		source, target = &node.In, &node.Out
	} else {
		source, target = &node.Out, &node.In
	}

	v := source.Sub(node.Main)
	lenSq := v.LengthSq()
	var snapped curve.Point
	if lenSq < handleCoincidenceSq {
		snapped = node.Main
	} else {
		length := math.Sqrt(lenSq)
		dir := v.Mul(-1 / length)
		if node.Align == curve.Aligned {
			// Direction snaps, the target's previous length is kept.
			oldLen := target.Sub(node.Main).Length()
			if oldLen < 1e-9 {
				oldLen = 0
			}
			snapped = node.Main.Add(dir.Mul(oldLen))
		} else {
			// Mirrored: direction and length both match the source.
			snapped = node.Main.Add(dir.Mul(length))
		}
	}

	*target = e.clampHandle(snapped)
}

// clampHandle confines a handle to the unit square when clamping is
// enabled.
func (e *Editor) clampHandle(p curve.Point) curve.Point {
	if e.clampHandles {
		return p.Clamp01()
	}
	return p
}
