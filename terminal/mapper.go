// Package terminal is the tcell front-end of the curve editor: it owns
// the screen, translates mouse and key events into engine calls, and
// renders the channel curves, nodes, and selection each frame. All
// curve semantics live in the editor package; this package is
// presentation only.
package terminal

import "curved/curve"

// CellMapper maps the logical unit square onto a rectangle of terminal
// cells: a linear scale plus a fixed margin, with y growing downward on
// screen. It satisfies editor.Mapper.
type CellMapper struct {
	X0, Y0 float64 // top-left corner of the plot rectangle
	W, H   float64 // plot rectangle extent in cells
}

// ToView converts a logical point to cell coordinates.
func (m CellMapper) ToView(p curve.Point) (float64, float64) {
	return m.X0 + p.X*m.W, m.Y0 + (1-p.Y)*m.H
}

// FromView converts cell coordinates back to logical space. The result
// is deliberately unclamped; the engine clamps where its invariants
// require it.
func (m CellMapper) FromView(x, y float64) curve.Point {
	if m.W < 1 || m.H < 1 {
		return curve.Point{}
	}
	return curve.Point{
		X: (x - m.X0) / m.W,
		Y: 1 - (y-m.Y0)/m.H,
	}
}
