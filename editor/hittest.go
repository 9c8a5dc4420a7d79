package editor

import (
	"math"

	"curved/bezier"
	"curved/curve"
)

// closestSegmentSteps is how many points per segment the proximity
// search samples when looking for an insert location.
const closestSegmentSteps = 20

// FindNearbyPart returns the closest interactive part of the active
// curve to a view position, or a PartNone reference. Handles are
// checked first with the smaller radius; an anchor within its larger
// radius wins when it is strictly closer.
func (e *Editor) FindNearbyPart(x, y float64) PartRef {
	closest := noPart
	minDistSq := math.MaxFloat64

	nodes := e.activeNodes()
	handleSq := e.handleRadius * e.handleRadius
	mainSq := e.mainRadius * e.mainRadius

	for i := range nodes {
		if i > 0 {
			if d := e.viewDistSq(nodes[i].In, x, y); d < handleSq && d < minDistSq {
				minDistSq = d
				closest = PartRef{PartHandleIn, i}
			}
		}
		if i < len(nodes)-1 {
			if d := e.viewDistSq(nodes[i].Out, x, y); d < handleSq && d < minDistSq {
				minDistSq = d
				closest = PartRef{PartHandleOut, i}
			}
		}
		if d := e.viewDistSq(nodes[i].Main, x, y); d < mainSq && d < minDistSq {
			minDistSq = d
			closest = PartRef{PartMain, i}
		}
	}
	return closest
}

// SegmentHit describes the closest point found on the curve: the
// segment it lies on, the parameter along that segment, and the squared
// view-space distance from the query position.
type SegmentHit struct {
	Segment int
	T       float64
	DistSq  float64
}

// ClosestSegment scans the active curve for the point nearest to a view
// position. This is a proximity search over the curve itself, sampled
// at closestSegmentSteps points per segment; the caller decides whether
// the hit is close enough to act on.
func (e *Editor) ClosestSegment(x, y float64) SegmentHit {
	best := SegmentHit{Segment: -1, DistSq: math.MaxFloat64}
	nodes := e.activeNodes()
	if len(nodes) < 2 {
		return best
	}

	for i := 0; i < len(nodes)-1; i++ {
		p0, p1, p2, p3 := bezier.SegmentPoints(nodes[i], nodes[i+1])
		for j := 0; j <= closestSegmentSteps; j++ {
			t := float64(j) / closestSegmentSteps
			pt := bezier.Evaluate(p0, p1, p2, p3, t)
			if d := e.viewDistSq(pt, x, y); d < best.DistSq {
				best = SegmentHit{Segment: i, T: t, DistSq: d}
			}
		}
	}
	return best
}

// viewDistSq returns the squared view-space distance between a logical
// point and a view position.
func (e *Editor) viewDistSq(p curve.Point, x, y float64) float64 {
	vx, vy := e.mapper.ToView(p)
	dx := x - vx
	dy := y - vy
	return dx*dx + dy*dy
}
