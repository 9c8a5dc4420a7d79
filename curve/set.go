package curve

import (
	"fmt"
	"math"
)

// Set maps each channel to its ordered node sequence. All channels
// independently satisfy the channel invariants: at least two nodes,
// anchors sorted ascending by x, first anchor pinned at x=0, last at
// x=1, and every anchor y within [0,1].
type Set map[ChannelID][]Node

// DefaultNodes returns the two-node identity curve: anchors at (0,0)
// and (1,1) with handles at the thirds of the diagonal and Free
// endpoints, so sampling the default yields y == x.
func DefaultNodes() []Node {
	n0 := NewNode(Point{0, 0})
	n1 := NewNode(Point{1, 1})
	n0.Out = Point{1.0 / 3.0, 1.0 / 3.0}
	n1.In = Point{2.0 / 3.0, 2.0 / 3.0}
	n0.Align = Free
	n1.Align = Free
	return []Node{n0, n1}
}

// DefaultSet returns a set with every channel at the identity curve.
func DefaultSet() Set {
	s := make(Set, len(Channels()))
	for _, ch := range Channels() {
		s[ch] = DefaultNodes()
	}
	return s
}

// Clone creates a deep copy of the set. Snapshots pushed to the undo
// history must never alias the live set.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	clone := make(Set, len(s))
	for ch, nodes := range s {
		ns := make([]Node, len(nodes))
		copy(ns, nodes)
		clone[ch] = ns
	}
	return clone
}

// Equal reports whether two sets hold the same channels with
// tolerance-equal nodes.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for ch, nodes := range s {
		other, ok := o[ch]
		if !ok || len(nodes) != len(other) {
			return false
		}
		for i := range nodes {
			if !nodes[i].Equal(other[i]) {
				return false
			}
		}
	}
	return true
}

// ValidateNodes checks one channel's node sequence against the channel
// invariants.
func ValidateNodes(nodes []Node) error {
	if len(nodes) < 2 {
		return fmt.Errorf("need at least 2 nodes, have %d", len(nodes))
	}
	for i, n := range nodes {
		if !n.Main.IsFinite() || !n.In.IsFinite() || !n.Out.IsFinite() {
			return fmt.Errorf("node %d: non-finite coordinate", i)
		}
		if !n.Align.Valid() {
			return fmt.Errorf("node %d: invalid alignment %d", i, int(n.Align))
		}
		if n.Main.Y < 0 || n.Main.Y > 1 {
			return fmt.Errorf("node %d: anchor y %v outside [0,1]", i, n.Main.Y)
		}
	}
	if math.Abs(nodes[0].Main.X) > Epsilon {
		return fmt.Errorf("first anchor x %v not pinned at 0", nodes[0].Main.X)
	}
	if math.Abs(nodes[len(nodes)-1].Main.X-1) > Epsilon {
		return fmt.Errorf("last anchor x %v not pinned at 1", nodes[len(nodes)-1].Main.X)
	}
	for i := 1; i < len(nodes); i++ {
		if nodes[i].Main.X <= nodes[i-1].Main.X {
			return fmt.Errorf("anchors %d and %d not strictly increasing in x (%v, %v)",
				i-1, i, nodes[i-1].Main.X, nodes[i].Main.X)
		}
	}
	return nil
}

// Validate checks that every expected channel is present and satisfies
// the channel invariants.
func (s Set) Validate() error {
	for _, ch := range Channels() {
		nodes, ok := s[ch]
		if !ok {
			return fmt.Errorf("channel %s missing", ch.Key())
		}
		if err := ValidateNodes(nodes); err != nil {
			return fmt.Errorf("channel %s: %w", ch.Key(), err)
		}
	}
	return nil
}
