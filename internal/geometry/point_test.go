package geometry

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestPixelVecOps(t *testing.T) {
	p0 := PixelPoint{X: 2, Y: 3}
	p1 := PixelPoint{X: 5, Y: 7}

	v := p1.Sub(p0)
	if v.DX != 3 || v.DY != 4 {
		t.Fatalf("Sub: got %+v, want {3 4}", v)
	}
	if got := v.Len(); got != 5 {
		t.Errorf("Len: got %v, want 5", got)
	}

	m := p0.Midpoint(p1)
	if m.X != 3.5 || m.Y != 5 {
		t.Errorf("Midpoint: got %+v, want {3.5 5}", m)
	}

	if got := v.Dot(PixelVec{DX: 1, DY: 0}); got != 3 {
		t.Errorf("Dot: got %v, want 3", got)
	}

	s := v.Scale(2)
	if s.DX != 6 || s.DY != 8 {
		t.Errorf("Scale: got %+v, want {6 8}", s)
	}

	u := v.Unit()
	if !scalar.EqualWithinAbs(u.DX, 0.6, tol) || !scalar.EqualWithinAbs(u.DY, 0.8, tol) {
		t.Errorf("Unit: got %+v, want {0.6 0.8}", u)
	}
	if !scalar.EqualWithinAbs(u.Len(), 1, tol) {
		t.Errorf("Unit length: got %v, want 1", u.Len())
	}
}

func TestPixelVecPerp(t *testing.T) {
	// Pixel handedness: (x, y) -> (-y, x).
	tests := []struct {
		in   PixelVec
		want PixelVec
	}{
		{PixelVec{DX: 1, DY: 0}, PixelVec{DX: 0, DY: 1}},
		{PixelVec{DX: 0, DY: 1}, PixelVec{DX: -1, DY: 0}},
		{PixelVec{DX: 3, DY: 4}, PixelVec{DX: -4, DY: 3}},
	}
	for _, tt := range tests {
		if got := tt.in.Perp(); got != tt.want {
			t.Errorf("Perp(%+v): got %+v, want %+v", tt.in, got, tt.want)
		}
	}
	// Perpendicularity always holds regardless of handedness.
	v := PixelVec{DX: 2.5, DY: -7.25}
	if got := v.Dot(v.Perp()); got != 0 {
		t.Errorf("Dot(v, Perp(v)): got %v, want 0", got)
	}
}

func TestUnitZeroVectorSentinel(t *testing.T) {
	pz := PixelVec{}.Unit()
	if !pz.IsZero() {
		t.Errorf("PixelVec zero Unit: got %+v, want zero sentinel", pz)
	}
	mz := MetricVec{}.Unit()
	if !mz.IsZero() {
		t.Errorf("MetricVec zero Unit: got %+v, want zero sentinel", mz)
	}
}

func TestMetricPointOps(t *testing.T) {
	a := MetricPoint{X: 0, Y: 0}
	b := MetricPoint{X: 3, Y: 4}

	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance: got %v, want 5", got)
	}
	m := a.Midpoint(b)
	if m.X != 1.5 || m.Y != 2 {
		t.Errorf("Midpoint: got %+v, want {1.5 2}", m)
	}
	v := b.Sub(a)
	if v.DX != 3 || v.DY != 4 {
		t.Errorf("Sub: got %+v, want {3 4}", v)
	}
	if got := v.Scale(-1).Len(); got != 5 {
		t.Errorf("Scale(-1).Len: got %v, want 5", got)
	}
}
