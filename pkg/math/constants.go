// pkg/math/constants.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import gomath "math"

const (
	// TwoPi is one full turn in radians.
	TwoPi = 2 * gomath.Pi
	// HalfPi is a quarter turn; subtracting it moves angle zero from
	// three o'clock to twelve o'clock on a y-down surface.
	HalfPi = gomath.Pi / 2
)
