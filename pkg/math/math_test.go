// pkg/math/math_test.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	for _, test := range []struct {
		a, expected float32
	}{
		{0, 0},
		{1, 1},
		{TwoPi + 1, 1},
		{-HalfPi, 3 * HalfPi},
		{-TwoPi, 0},
	} {
		if n := NormalizeAngle(test.a); Abs(n-test.expected) > 1e-4 {
			t.Errorf("NormalizeAngle(%f): got %f, expected %f", test.a, n, test.expected)
		}
	}
}

func TestAngleDifference(t *testing.T) {
	for _, test := range []struct {
		a, b, expected float32
	}{
		{0, 0, 0},
		{0.1, TwoPi - 0.1, 0.2},
		{HalfPi, -HalfPi, Pi()},
		{TwoPi, 0, 0},
	} {
		if d := AngleDifference(test.a, test.b); Abs(d-test.expected) > 1e-4 {
			t.Errorf("AngleDifference(%f, %f): got %f, expected %f", test.a, test.b, d, test.expected)
		}
	}
}

func TestArcSweep(t *testing.T) {
	for _, test := range []struct {
		a0, a1   float32
		ccw      bool
		expected float32
	}{
		{0, HalfPi, false, HalfPi},
		{HalfPi, 0, false, 3 * HalfPi},
		{HalfPi, 0, true, -HalfPi},
		{0, HalfPi, true, -3 * HalfPi},
		{0, TwoPi, false, TwoPi},
		{TwoPi, 0, true, -TwoPi},
		{-HalfPi / 2, 0, false, HalfPi / 2},
	} {
		if s := ArcSweep(test.a0, test.a1, test.ccw); Abs(s-test.expected) > 1e-4 {
			t.Errorf("ArcSweep(%f, %f, %v): got %f, expected %f", test.a0, test.a1, test.ccw, s, test.expected)
		}
	}
}

func TestMatrixRotateTranslate(t *testing.T) {
	// Translate then rotate, as a canvas context would compose them.
	m := Identity3x3().Translate(200, 200).Rotate(HalfPi)

	p := m.TransformPoint([2]float32{10, 0})
	if Abs(p[0]-200) > 1e-4 || Abs(p[1]-210) > 1e-4 {
		t.Errorf("got %v, expected [200 210]", p)
	}

	if s := m.ScaleFactor(); Abs(s-1) > 1e-5 {
		t.Errorf("rigid transform scale factor %f, expected 1", s)
	}
}

func TestPolar2f(t *testing.T) {
	p := Polar2f([2]float32{100, 100}, 50, -HalfPi)
	if Abs(p[0]-100) > 1e-4 || Abs(p[1]-50) > 1e-4 {
		t.Errorf("got %v, expected [100 50]", p)
	}
}

func TestCirclePoints(t *testing.T) {
	pts := CirclePoints(8)
	if len(pts) != 8 {
		t.Fatalf("got %d points, expected 8", len(pts))
	}
	if Abs(pts[0][0]-1) > 1e-6 || Abs(pts[0][1]) > 1e-6 {
		t.Errorf("first point %v, expected [1 0]", pts[0])
	}
	if Abs(pts[2][0]) > 1e-6 || Abs(pts[2][1]-1) > 1e-6 {
		t.Errorf("quarter-turn point %v, expected [0 1]", pts[2])
	}
	for i, p := range pts {
		if l := Length2f(p); Abs(l-1) > 1e-5 {
			t.Errorf("point %d: length %f", i, l)
		}
	}

	// Cached slices are shared.
	if again := CirclePoints(8); &again[0] != &pts[0] {
		t.Errorf("expected cached tessellation to be reused")
	}
}

func TestExtent2D(t *testing.T) {
	e := Extent2DFromPoints([][2]float32{{1, 5}, {-2, 3}, {4, -1}})
	if e.P0 != [2]float32{-2, -1} || e.P1 != [2]float32{4, 5} {
		t.Errorf("bounds %+v", e)
	}
	if e.Width() != 6 || e.Height() != 6 {
		t.Errorf("width/height %f/%f", e.Width(), e.Height())
	}
	in := e.Inset(1)
	if in.Inside([2]float32{-2, -1}) {
		t.Errorf("corner should be outside of inset extent")
	}
	if !in.Inside(e.Center()) {
		t.Errorf("center should be inside of inset extent")
	}
}

func TestPointInPolygon(t *testing.T) {
	type testCase struct {
		name     string
		point    [2]float32
		polygon  [][2]float32
		expected bool
	}

	testCases := []testCase{
		{
			name:     "PointInsideSimpleSquare",
			point:    [2]float32{1, 1},
			polygon:  [][2]float32{{0, 0}, {0, 2}, {2, 2}, {2, 0}},
			expected: true,
		},
		{
			name:     "PointOutsideSimpleSquare",
			point:    [2]float32{3, 3},
			polygon:  [][2]float32{{0, 0}, {0, 2}, {2, 2}, {2, 0}},
			expected: false,
		},
		{
			name:     "PointInsideTriangle",
			point:    [2]float32{1, 0.5},
			polygon:  [][2]float32{{0, 0}, {2, 0}, {1, 2}},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if result := PointInPolygon(tc.point, tc.polygon); result != tc.expected {
				t.Errorf("got %v, expected %v", result, tc.expected)
			}
		})
	}
}
