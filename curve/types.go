// Package curve contains the fundamental types used throughout the curved editor.
package curve

import (
	"fmt"
	"math"
)

// Epsilon is the per-coordinate tolerance used for node equality.
// Undo no-op detection depends on it: two states closer than this are
// considered the same state.
const Epsilon = 1e-9

// MinSeparation is the smallest allowed x distance between neighboring
// anchors. Anchor moves clamp against it so interior anchors can never
// coincide with their neighbors.
const MinSeparation = 1e-9

// Point is a 2D coordinate in the logical unit square [0,1]x[0,1].
type Point struct {
	X, Y float64
}

// Add returns p translated by v.
func (p Point) Add(v Point) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// LengthSq returns the squared length of p treated as a vector.
func (p Point) LengthSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Length returns the length of p treated as a vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Eq reports whether two points are equal within Epsilon per coordinate.
func (p Point) Eq(q Point) bool {
	return math.Abs(p.X-q.X) < Epsilon && math.Abs(p.Y-q.Y) < Epsilon
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Clamp01 returns p with both coordinates clamped into [0,1].
func (p Point) Clamp01() Point {
	return Point{clamp01(p.X), clamp01(p.Y)}
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

// HandleAlignment defines how a node's two handles behave relative to
// each other when one of them moves.
type HandleAlignment int

const (
	// Free lets the handles move independently.
	Free HandleAlignment = iota
	// Aligned keeps the handles collinear through the anchor; lengths
	// stay independent.
	Aligned
	// Mirrored keeps the handles collinear and equidistant from the
	// anchor.
	Mirrored
)

// String returns the string representation of a HandleAlignment.
func (a HandleAlignment) String() string {
	switch a {
	case Free:
		return "Free"
	case Aligned:
		return "Aligned"
	case Mirrored:
		return "Mirrored"
	default:
		return "Unknown"
	}
}

// Valid reports whether a is one of the defined alignment modes.
func (a HandleAlignment) Valid() bool {
	return a >= Free && a <= Mirrored
}

// AlignmentFromInt converts a persisted alignment code, rejecting
// values outside the defined range.
func AlignmentFromInt(v int) (HandleAlignment, error) {
	a := HandleAlignment(v)
	if !a.Valid() {
		return Free, fmt.Errorf("alignment code %d out of range", v)
	}
	return a, nil
}

// Node is one control point of a channel's curve: the anchor the curve
// passes through plus the two Bézier handles shaping the incoming and
// outgoing segments. The first node's In handle and the last node's Out
// handle are unused.
type Node struct {
	Main  Point
	In    Point
	Out   Point
	Align HandleAlignment
}

// NewNode returns a node at p with both handles coincident with the
// anchor and the default Aligned mode.
func NewNode(p Point) Node {
	return Node{Main: p, In: p, Out: p, Align: Aligned}
}

// Equal reports whether two nodes are equal within Epsilon per
// coordinate. Alignment must match exactly.
func (n Node) Equal(o Node) bool {
	return n.Main.Eq(o.Main) && n.In.Eq(o.In) && n.Out.Eq(o.Out) && n.Align == o.Align
}

// ChannelID identifies one independently editable curve.
type ChannelID int

const (
	Red ChannelID = iota
	Green
	Blue
)

// String returns the display name of the channel.
func (c ChannelID) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return "Unknown"
	}
}

// Key returns the channel's persistence key.
func (c ChannelID) Key() string {
	switch c {
	case Red:
		return "RED"
	case Green:
		return "GREEN"
	case Blue:
		return "BLUE"
	default:
		return ""
	}
}

// Channels lists every channel in display order.
func Channels() []ChannelID {
	return []ChannelID{Red, Green, Blue}
}
