// pkg/radar/grid.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"github.com/HefnySco/radarscreen/pkg/math"
	"github.com/HefnySco/radarscreen/pkg/renderer"
)

const (
	pointerHeight    = 20
	pointerBaseWidth = 10
)

// DrawGrid clears the surface and draws the grid's rays and rings, and
// optionally the pointer, rotated by GridRotation about the viewport's
// center. The surface's transformation is left as it was found.
func DrawGrid(s renderer.Surface, vp Viewport, cfg Config) {
	s.Clear()

	s.Save()
	defer s.Restore()

	s.Translate(vp.Center[0], vp.Center[1])
	s.Rotate(GridRotation(cfg))

	// Rays
	s.BeginPath()
	for i := 1; i <= cfg.Sections; i++ {
		p := math.Polar2f([2]float32{}, vp.OuterRadius, RayAngle(i, cfg.Sections))
		s.MoveTo(0, 0)
		s.LineTo(p[0], p[1])
	}
	s.SetStrokeRGBA(renderer.Green)
	s.Stroke()

	// Range rings
	for i := 1; i <= cfg.Rings; i++ {
		s.BeginPath()
		s.Arc(0, 0, RingRadius(i, cfg.Rings, vp.OuterRadius), 0, math.TwoPi, false)
		s.SetStrokeRGBA(renderer.Green)
		s.Stroke()
	}

	if cfg.DrawPointer {
		drawPointer(s, vp.OuterRadius)
	}
}

// drawPointer draws a filled triangle pointing outward just beyond the
// outermost ring at the top of the (rotated) grid.
func drawPointer(s renderer.Surface, radius float32) {
	s.BeginPath()
	s.MoveTo(0, -radius-pointerHeight)
	s.LineTo(-pointerBaseWidth/2, -radius)
	s.LineTo(pointerBaseWidth/2, -radius)
	s.ClosePath()
	s.SetFillRGBA(renderer.Yellow)
	s.Fill()
}
