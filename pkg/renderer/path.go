// pkg/renderer/path.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"github.com/HefnySco/radarscreen/pkg/math"
)

// drawState is the portion of the canvas state that Save and Restore
// manage.
type drawState struct {
	xform        math.Matrix3
	fill, stroke RGBA
}

// subpath is a flattened polyline, stored in device coordinates.
type subpath struct {
	pts    [][2]float32
	closed bool
}

// canvas implements the state and path-building parts of the Surface
// interface in terms of flattened device-space polylines. Surfaces that
// actually produce pixels or geometry embed it and implement Bounds,
// Clear, Fill, Stroke, and FillText on top of its subpaths.
type canvas struct {
	state    drawState
	stack    []drawState
	subpaths []subpath
}

func (c *canvas) reset() {
	c.state = drawState{xform: math.Identity3x3(), fill: Black, stroke: Black}
	c.stack = c.stack[:0]
	c.subpaths = c.subpaths[:0]
}

func (c *canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recently saved state; unbalanced calls are
// ignored.
func (c *canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *canvas) Translate(x, y float32) {
	c.state.xform = c.state.xform.Translate(x, y)
}

func (c *canvas) Rotate(theta float32) {
	c.state.xform = c.state.xform.Rotate(theta)
}

func (c *canvas) SetFillRGBA(rgba RGBA) {
	c.state.fill = rgba
}

func (c *canvas) SetStrokeRGBA(rgba RGBA) {
	c.state.stroke = rgba
}

func (c *canvas) BeginPath() {
	c.subpaths = c.subpaths[:0]
}

func (c *canvas) current() *subpath {
	if len(c.subpaths) == 0 {
		return nil
	}
	return &c.subpaths[len(c.subpaths)-1]
}

func (c *canvas) moveToDevice(p [2]float32) {
	c.subpaths = append(c.subpaths, subpath{pts: [][2]float32{p}})
}

func (c *canvas) lineToDevice(p [2]float32) {
	if sp := c.current(); sp != nil && len(sp.pts) > 0 {
		sp.pts = append(sp.pts, p)
	} else {
		c.moveToDevice(p)
	}
}

func (c *canvas) MoveTo(x, y float32) {
	c.moveToDevice(c.state.xform.TransformPoint([2]float32{x, y}))
}

// LineTo behaves like MoveTo if there is no current point.
func (c *canvas) LineTo(x, y float32) {
	c.lineToDevice(c.state.xform.TransformPoint([2]float32{x, y}))
}

// ClosePath marks the current subpath as closed and starts a new one at
// its first point.
func (c *canvas) ClosePath() {
	sp := c.current()
	if sp == nil || len(sp.pts) == 0 {
		return
	}
	sp.closed = true
	c.moveToDevice(sp.pts[0])
}

// arcSegments returns the number of line segments used to approximate a
// full circle of radius r in device space.
func arcSegments(r float32) int {
	return math.Clamp(int(math.Ceil(math.TwoPi*r/3)), 16, 512)
}

func (c *canvas) Arc(cx, cy, r, a0, a1 float32, ccw bool) {
	r = max(r, 0)
	sweep := math.ArcSweep(a0, a1, ccw)
	xf := c.state.xform
	center := [2]float32{cx, cy}
	nfull := arcSegments(r * xf.ScaleFactor())

	c.lineToDevice(xf.TransformPoint(math.Polar2f(center, r, a0)))

	if math.Abs(sweep) == math.TwoPi {
		// Full circles use the shared unit circle vertices, rotated to
		// start at a0.
		s, co := math.Sin(a0), math.Cos(a0)
		pts := math.CirclePoints(nfull)
		for i := 1; i <= nfull; i++ {
			idx := i % nfull
			if ccw {
				idx = (nfull - i) % nfull
			}
			u := pts[idx]
			v := [2]float32{co*u[0] - s*u[1], s*u[0] + co*u[1]}
			c.lineToDevice(xf.TransformPoint(math.Add2f(center, math.Scale2f(v, r))))
		}
		return
	}

	n := max(1, int(math.Ceil(math.Abs(sweep)/math.TwoPi*float32(nfull))))
	for i := 1; i <= n; i++ {
		a := a0 + sweep*float32(i)/float32(n)
		c.lineToDevice(xf.TransformPoint(math.Polar2f(center, r, a)))
	}
}

// fillPolygons returns the subpaths that enclose area; fills implicitly
// close every subpath.
func (c *canvas) fillPolygons() [][][2]float32 {
	var polys [][][2]float32
	for _, sp := range c.subpaths {
		if len(sp.pts) >= 3 {
			polys = append(polys, sp.pts)
		}
	}
	return polys
}

// strokeSegments calls fn for each nondegenerate line segment of the
// current path's outline.
func (c *canvas) strokeSegments(fn func(p0, p1 [2]float32)) {
	for _, sp := range c.subpaths {
		for i := 1; i < len(sp.pts); i++ {
			if sp.pts[i-1] != sp.pts[i] {
				fn(sp.pts[i-1], sp.pts[i])
			}
		}
		if sp.closed && len(sp.pts) > 2 && sp.pts[len(sp.pts)-1] != sp.pts[0] {
			fn(sp.pts[len(sp.pts)-1], sp.pts[0])
		}
	}
}
