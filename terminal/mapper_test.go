package terminal

import (
	"math"
	"testing"

	"curved/curve"
)

func TestCellMapperCorners(t *testing.T) {
	m := CellMapper{X0: 2, Y0: 1, W: 76, H: 20}

	cases := []struct {
		p    curve.Point
		x, y float64
	}{
		{curve.Point{X: 0, Y: 0}, 2, 21},
		{curve.Point{X: 1, Y: 1}, 78, 1},
		{curve.Point{X: 0.5, Y: 0.5}, 40, 11},
	}
	for _, tc := range cases {
		x, y := m.ToView(tc.p)
		if x != tc.x || y != tc.y {
			t.Errorf("ToView(%v) = %v,%v, want %v,%v", tc.p, x, y, tc.x, tc.y)
		}
	}
}

func TestCellMapperRoundTrip(t *testing.T) {
	m := CellMapper{X0: 3, Y0: 2, W: 60, H: 18}
	for _, p := range []curve.Point{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0.25, Y: 0.8}, {X: 0.999, Y: 0.001},
	} {
		x, y := m.ToView(p)
		back := m.FromView(x, y)
		if math.Abs(back.X-p.X) > 1e-12 || math.Abs(back.Y-p.Y) > 1e-12 {
			t.Errorf("round trip of %v via (%v,%v) gave %v", p, x, y, back)
		}
	}
}

func TestCellMapperUnclamped(t *testing.T) {
	m := CellMapper{X0: 0, Y0: 0, W: 100, H: 100}
	p := m.FromView(-50, 150)
	if p.X >= 0 || p.Y >= 0 {
		t.Errorf("FromView outside the plot = %v, want unclamped negatives", p)
	}
}

func TestCellMapperDegenerateExtent(t *testing.T) {
	m := CellMapper{X0: 5, Y0: 5, W: 0, H: 0}
	if p := m.FromView(40, 40); p != (curve.Point{}) {
		t.Errorf("FromView with zero extent = %v, want the zero point", p)
	}
}
