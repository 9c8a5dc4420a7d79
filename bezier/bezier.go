// Package bezier implements cubic Bézier evaluation, De Casteljau
// subdivision, and the Newton–Raphson inverse solve used to sample a
// channel's y response at a given x. All functions are pure and never
// panic on degenerate input.
package bezier

import (
	"math"

	"curved/curve"
)

const (
	// maxIterations bounds the Newton–Raphson inverse solve.
	maxIterations = 15
	// xTolerance is the convergence tolerance on the x error.
	xTolerance = 1e-7
	// derivativeFloor aborts the solve when the tangent goes flat; the
	// last computed t is used as-is.
	derivativeFloor = 1e-7
	// verticalEps classifies a segment as numerically vertical.
	verticalEps = 1e-9
)

// Lerp linearly interpolates between a and b.
func Lerp(a, b curve.Point, t float64) curve.Point {
	return curve.Point{
		X: a.X*(1-t) + b.X*t,
		Y: a.Y*(1-t) + b.Y*t,
	}
}

// Evaluate returns the point on the cubic Bézier segment p0..p3 at
// parameter t in [0,1].
func Evaluate(p0, p1, p2, p3 curve.Point, t float64) curve.Point {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	a := mt * mt2
	b := 3 * mt2 * t
	c := 3 * mt * t2
	d := t * t2
	return curve.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// XDerivative returns the derivative of the segment's x component with
// respect to t.
func XDerivative(p0, p1, p2, p3 curve.Point, t float64) float64 {
	mt := 1 - t
	return 3*mt*mt*(p1.X-p0.X) +
		6*mt*t*(p2.X-p1.X) +
		3*t*t*(p3.X-p2.X)
}

// Split holds the geometry produced by subdividing a segment at t: the
// point on the curve plus the four handles that shape the two new
// segments.
type Split struct {
	Point   curve.Point // point on the curve at t; anchor of the inserted node
	LeftOut curve.Point // replacement Out handle for the left anchor
	MidIn   curve.Point // In handle of the inserted node
	MidOut  curve.Point // Out handle of the inserted node
	RightIn curve.Point // replacement In handle for the right anchor
}

// Subdivide splits the segment p0..p3 at parameter t using the De
// Casteljau construction.
func Subdivide(p0, p1, p2, p3 curve.Point, t float64) Split {
	p01 := Lerp(p0, p1, t)
	p12 := Lerp(p1, p2, t)
	p23 := Lerp(p2, p3, t)
	var s Split
	s.LeftOut = p01
	s.RightIn = p23
	s.MidIn = Lerp(p01, p12, t)
	s.MidOut = Lerp(p12, p23, t)
	s.Point = Lerp(s.MidIn, s.MidOut, t)
	return s
}

// SegmentPoints returns the four control points of the segment between
// two neighboring nodes.
func SegmentPoints(n0, n1 curve.Node) (p0, p1, p2, p3 curve.Point) {
	return n0.Main, n0.Out, n1.In, n1.Main
}

// SolveTForX finds t such that the segment's x component equals x,
// starting from guess t0. If the solve does not converge within
// maxIterations, or the tangent goes flat, the last computed t is
// returned; downstream export tooling depends on this legacy behavior.
func SolveTForX(p0, p1, p2, p3 curve.Point, x, t0 float64) float64 {
	t := clamp01(t0)
	for i := 0; i < maxIterations; i++ {
		err := Evaluate(p0, p1, p2, p3, t).X - x
		if math.Abs(err) < xTolerance {
			break
		}
		dxdt := XDerivative(p0, p1, p2, p3, t)
		if math.Abs(dxdt) < derivativeFloor {
			break
		}
		t = clamp01(t - err/dxdt)
	}
	return clamp01(t)
}

// SampleAtX returns the curve's y value at x for an ordered node
// sequence. The result is always finite and within [0,1]:
//
//   - x is clamped into [0,1] first;
//   - outside the anchor range the nearest endpoint's y is returned;
//   - a numerically vertical bracketing segment yields the left
//     anchor's y (vertical segments are not truly invertible);
//   - fewer than two nodes falls back to the identity response x.
func SampleAtX(nodes []curve.Node, x float64) float64 {
	x = clamp01(x)
	if len(nodes) < 2 {
		return x
	}

	segment := -1
	for i := 0; i < len(nodes)-1; i++ {
		if x >= nodes[i].Main.X && x <= nodes[i+1].Main.X {
			if math.Abs(nodes[i+1].Main.X-nodes[i].Main.X) < verticalEps {
				return clamp01(nodes[i].Main.Y)
			}
			segment = i
			break
		}
	}
	if segment == -1 {
		if x <= nodes[0].Main.X {
			return clamp01(nodes[0].Main.Y)
		}
		return clamp01(nodes[len(nodes)-1].Main.Y)
	}

	p0, p1, p2, p3 := SegmentPoints(nodes[segment], nodes[segment+1])
	xRange := p3.X - p0.X
	if math.Abs(xRange) < verticalEps {
		return clamp01(p0.Y)
	}
	t0 := clamp01((x - p0.X) / xRange)
	t := SolveTForX(p0, p1, p2, p3, x, t0)
	return clamp01(Evaluate(p0, p1, p2, p3, t).Y)
}

// Sample answers a channel's y at x for a whole set. A missing or
// degenerate channel falls back to the identity response.
func Sample(s curve.Set, ch curve.ChannelID, x float64) float64 {
	return SampleAtX(s[ch], x)
}

// SetSampler adapts a bare curve.Set to the sampling interface consumed
// by the export builders.
type SetSampler struct {
	Set curve.Set
}

// Sample returns the channel's response at x.
func (s SetSampler) Sample(ch curve.ChannelID, x float64) float64 {
	return Sample(s.Set, ch, x)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
