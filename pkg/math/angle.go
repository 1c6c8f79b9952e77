// pkg/math/angle.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// NormalizeAngle reduces an angle in radians to [0, 2pi).
func NormalizeAngle(a float32) float32 {
	a = Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		// Mod can round up to exactly 2pi for tiny negative inputs.
		a = 0
	}
	return a
}

// AngleDifference returns the minimum difference between two angles
// given in radians; the result is always in [0, pi].
func AngleDifference(a, b float32) float32 {
	d := Abs(NormalizeAngle(a) - NormalizeAngle(b))
	if d > Pi() {
		d = TwoPi - d
	}
	return d
}

// ArcSweep returns the signed angle swept by an arc from a0 to a1 using
// the conventions of 2D canvas APIs: a clockwise (increasing-angle on a
// y-down surface) arc sweeps (a1-a0) mod 2pi, a counterclockwise one
// sweeps the negative of (a0-a1) mod 2pi, and if the requested span
// covers a full turn or more the arc is a full circle.
func ArcSweep(a0, a1 float32, ccw bool) float32 {
	if !ccw {
		if a1-a0 >= TwoPi {
			return TwoPi
		}
		return NormalizeAngle(a1 - a0)
	}
	if a0-a1 >= TwoPi {
		return -TwoPi
	}
	return -NormalizeAngle(a0 - a1)
}
