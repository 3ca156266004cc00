package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	// Menu button geometry: 200x56 at (300, 160)
	r := NewRect(300, 160, 200, 56)

	tests := []struct {
		name     string
		p        Vec
		expected bool
	}{
		{"inside", Vec{400, 180}, true},
		{"top-left corner", Vec{300, 160}, true},
		{"right edge (exclusive)", Vec{500, 180}, false},
		{"bottom edge (exclusive)", Vec{400, 216}, false},
		{"fractional inside", Vec{499.9, 215.9}, true},
		{"outside left", Vec{299.5, 180}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsPoint(tc.p); got != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (25, 25)", r.Right(), r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec
		want Vec
	}{
		{"zero stays zero", Vec{}, Vec{}},
		{"axis", Vec{0, -7}, Vec{0, -1}},
		{"3-4-5", Vec{3, 4}, Vec{0.6, 0.8}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestVecDist(t *testing.T) {
	a := Vec{1, 2}
	b := Vec{4, 6}
	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist = %f, expected 5", d)
	}
	if got := a.Add(b).Sub(b); got != a {
		t.Errorf("Add/Sub round trip = %v, expected %v", got, a)
	}
	if got := b.Scale(0.5); got != (Vec{2, 3}) {
		t.Errorf("Scale = %v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs incorrect")
	}
}
