// pkg/math/geom.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

///////////////////////////////////////////////////////////////////////////
// Extent2D

// Extent2D represents a 2D bounding box with the two vertices at its
// opposite minimum and maximum corners.
type Extent2D struct {
	P0, P1 [2]float32
}

// EmptyExtent2D returns an Extent2D representing an empty bounding box.
func EmptyExtent2D() Extent2D {
	// Degenerate bounds
	return Extent2D{P0: [2]float32{1e30, 1e30}, P1: [2]float32{-1e30, -1e30}}
}

// Extent2DFromPoints returns an Extent2D that bounds all of the provided
// points.
func Extent2DFromPoints(pts [][2]float32) Extent2D {
	e := EmptyExtent2D()
	for _, p := range pts {
		e = Union(e, p)
	}
	return e
}

func (e Extent2D) Width() float32 {
	return e.P1[0] - e.P0[0]
}

func (e Extent2D) Height() float32 {
	return e.P1[1] - e.P0[1]
}

func (e Extent2D) Center() [2]float32 {
	return [2]float32{(e.P0[0] + e.P1[0]) / 2, (e.P0[1] + e.P1[1]) / 2}
}

// Inset shrinks the extent by the given distance in all directions.
func (e Extent2D) Inset(d float32) Extent2D {
	return Extent2D{
		P0: [2]float32{e.P0[0] + d, e.P0[1] + d},
		P1: [2]float32{e.P1[0] - d, e.P1[1] - d}}
}

func (e Extent2D) Inside(p [2]float32) bool {
	return p[0] >= e.P0[0] && p[0] <= e.P1[0] && p[1] >= e.P0[1] && p[1] <= e.P1[1]
}

func Union(e Extent2D, p [2]float32) Extent2D {
	e.P0[0] = min(e.P0[0], p[0])
	e.P0[1] = min(e.P0[1], p[1])
	e.P1[0] = max(e.P1[0], p[0])
	e.P1[1] = max(e.P1[1], p[1])
	return e
}

///////////////////////////////////////////////////////////////////////////
// Geometry

// PointInPolygon checks whether the given point is inside the given polygon;
// it assumes that the last vertex does not repeat the first one, and so includes
// the edge from pts[len(pts)-1] to pts[0] in its test.
func PointInPolygon(p [2]float32, pts [][2]float32) bool {
	inside := false
	for i := 0; i < len(pts); i++ {
		p0, p1 := pts[i], pts[(i+1)%len(pts)]
		if (p0[1] <= p[1] && p[1] < p1[1]) || (p1[1] <= p[1] && p[1] < p0[1]) {
			x := p0[0] + (p[1]-p0[1])*(p1[0]-p0[0])/(p1[1]-p0[1])
			if x > p[0] {
				inside = !inside
			}
		}
	}
	return inside
}

// So that we can efficiently draw circles with various tessellations,
// circlePoints caches vertex positions of a unit circle at the origin for
// recently-used tessellation rates.
var circlePoints *lru.Cache[int, [][2]float32]

func init() {
	var err error
	if circlePoints, err = lru.New[int, [][2]float32](64); err != nil {
		panic(err)
	}
}

// CirclePoints returns the vertices for a unit circle at the origin with
// the given number of segments, starting at angle zero (+x) and proceeding
// in the direction of increasing angle. The returned slice is shared and
// must not be modified.
func CirclePoints(nsegs int) [][2]float32 {
	if pts, ok := circlePoints.Get(nsegs); ok {
		return pts
	}

	// Evaluate the vertices of the circle to initialize a new slice.
	pts := make([][2]float32, nsegs)
	for d := range nsegs {
		angle := float32(d) / float32(nsegs) * TwoPi
		pts[d] = [2]float32{Cos(angle), Sin(angle)}
	}
	circlePoints.Add(nsegs, pts)
	return pts
}
