// pkg/radar/layout.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"github.com/HefnySco/radarscreen/pkg/math"
)

// OuterRadiusFraction is the fraction of half the surface's smaller
// dimension that the outermost ring covers.
const OuterRadiusFraction = 0.8

// Viewport records the surface dimensions and the derived grid center
// and outer radius, all in pixels.
type Viewport struct {
	Width, Height float32
	Center        [2]float32
	OuterRadius   float32
}

func NewViewport(width, height float32) Viewport {
	return Viewport{
		Width:       width,
		Height:      height,
		Center:      [2]float32{width / 2, height / 2},
		OuterRadius: min(width, height) / 2 * OuterRadiusFraction,
	}
}

// ViewportFromExtent returns the Viewport for a surface with the given
// bounds.
func ViewportFromExtent(e math.Extent2D) Viewport {
	return NewViewport(e.Width(), e.Height())
}

// EffectiveAngle returns the grid's total rotation in radians: whole
// rotation steps, each half a section wide, plus the continuous
// rotation. cfg.Sections must be positive.
func EffectiveAngle(cfg Config) float32 {
	return float32(cfg.RotationSteps)*math.Pi()/float32(cfg.Sections) + cfg.Rotation
}

// GridRotation returns the rotation applied to the grid's rays and
// rings, which lags EffectiveAngle by half a section.
func GridRotation(cfg Config) float32 {
	return EffectiveAngle(cfg) - math.Pi()/float32(cfg.Sections)
}

// RayAngle returns the angle of the index'th ray, before grid rotation.
func RayAngle(index, sections int) float32 {
	return math.TwoPi * float32(index) / float32(sections)
}

// RingRadius returns the radius of the index'th ring.
func RingRadius(index, rings int, outerRadius float32) float32 {
	return outerRadius * float32(index) / float32(rings)
}

// SectionAngleBounds returns the start and end angles of the given
// 1-based section. Section s spans from 2pi(s-2)/n to 2pi(s-1)/n, offset
// by -pi/2 so that angles are measured from the top of the screen and
// then rotated by the effective angle.
func SectionAngleBounds(section, sections int, effective float32) (start, end float32) {
	n := float32(sections)
	start = math.TwoPi*float32(section-2)/n - math.HalfPi + effective
	end = math.TwoPi*float32(section-1)/n - math.HalfPi + effective
	return
}

// RingRadiusBounds returns the inner and outer radii of the given 1-based
// ring. Ring r spans R(r-2)/rings to R(r-1)/rings with both clamped to be
// non-negative, so ring 1 is degenerate and ring 2 starts at the center.
func RingRadiusBounds(ring, rings int, outerRadius float32) (inner, outer float32) {
	n := float32(rings)
	inner = max(0, outerRadius*float32(ring-2)/n)
	outer = max(0, outerRadius*float32(ring-1)/n)
	return
}

// SectionLayout and RingLayout describe the extent of a single section
// or ring as used for highlighting.
type SectionLayout struct {
	Section    int
	Start, End float32
}

type RingLayout struct {
	Ring         int
	Inner, Outer float32
}

// Layout summarizes all of the geometry derived from a Config for a
// given Viewport.
type Layout struct {
	Viewport     Viewport
	Effective    float32
	GridRotation float32
	RayAngles    []float32
	RingRadii    []float32
	Sections     []SectionLayout
	Rings        []RingLayout
}

// ComputeLayout evaluates the layout for every ray, ring, section, and
// ring band of the grid. cfg must be valid.
func ComputeLayout(cfg Config, vp Viewport) Layout {
	l := Layout{
		Viewport:     vp,
		Effective:    EffectiveAngle(cfg),
		GridRotation: GridRotation(cfg),
	}
	for i := 1; i <= cfg.Sections; i++ {
		l.RayAngles = append(l.RayAngles, RayAngle(i, cfg.Sections))
		start, end := SectionAngleBounds(i, cfg.Sections, l.Effective)
		l.Sections = append(l.Sections, SectionLayout{Section: i, Start: start, End: end})
	}
	for i := 1; i <= cfg.Rings; i++ {
		l.RingRadii = append(l.RingRadii, RingRadius(i, cfg.Rings, vp.OuterRadius))
		inner, outer := RingRadiusBounds(i, cfg.Rings, vp.OuterRadius)
		l.Rings = append(l.Rings, RingLayout{Ring: i, Inner: inner, Outer: outer})
	}
	return l
}
