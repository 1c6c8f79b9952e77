// pkg/renderer/renderer.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"log/slog"

	"github.com/HefnySco/radarscreen/pkg/math"
)

// Surface defines the 2D drawing interface that the radar code draws
// through. It follows the model of an HTML canvas 2D context: there is a
// current transformation (manipulated with Translate and Rotate and
// saved/restored along with the current colors by Save and Restore), a
// current path that is built up with MoveTo, LineTo, Arc, and ClosePath,
// and that path is then filled or stroked.
//
// There are three implementations: CommandBuffer records the calls so
// that they can be compared or replayed later, ImageSurface rasterizes
// into an image.RGBA, and MeshSurface tessellates everything into lines
// and triangles.
type Surface interface {
	// Bounds returns the surface's extent in pixels; P0 is always the
	// origin.
	Bounds() math.Extent2D

	// Clear resets every pixel of the surface to transparent, regardless
	// of the current transformation.
	Clear()

	// Save pushes the current transformation and colors; Restore pops
	// them.
	Save()
	Restore()

	// Translate and Rotate post-multiply the current transformation.
	// Positive rotation angles are clockwise on the y-down surface.
	Translate(x, y float32)
	Rotate(theta float32)

	// BeginPath discards the current path.
	BeginPath()
	MoveTo(x, y float32)
	LineTo(x, y float32)
	// Arc adds a circular arc centered at (cx, cy) from angle a0 to a1;
	// if there is a current point, a line is first added from it to the
	// start of the arc. Angles are in radians, with zero along +x.
	Arc(cx, cy, r, a0, a1 float32, ccw bool)
	ClosePath()

	SetFillRGBA(c RGBA)
	SetStrokeRGBA(c RGBA)

	// Fill fills the current path using the nonzero rule; Stroke draws
	// its outline. Neither discards the path.
	Fill()
	Stroke()

	// FillText draws text with its baseline starting at (x, y), which is
	// transformed by the current transformation.
	FillText(text string, x, y float32)
}

// RendererStats encapsulates assorted statistics from rendering.
type RendererStats struct {
	nFills, nStrokes   int
	nLines, nTriangles int
	nGlyphs            int
}

func (rs *RendererStats) Fills() int     { return rs.nFills }
func (rs *RendererStats) Strokes() int   { return rs.nStrokes }
func (rs *RendererStats) Lines() int     { return rs.nLines }
func (rs *RendererStats) Triangles() int { return rs.nTriangles }
func (rs *RendererStats) Glyphs() int    { return rs.nGlyphs }

func (rs *RendererStats) String() string {
	return fmt.Sprintf("%d fills, %d strokes: %d lines, %d tris, %d glyphs",
		rs.nFills, rs.nStrokes, rs.nLines, rs.nTriangles, rs.nGlyphs)
}

func (rs *RendererStats) Merge(s RendererStats) {
	rs.nFills += s.nFills
	rs.nStrokes += s.nStrokes
	rs.nLines += s.nLines
	rs.nTriangles += s.nTriangles
	rs.nGlyphs += s.nGlyphs
}

func (rs RendererStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("fills", rs.nFills),
		slog.Int("strokes", rs.nStrokes),
		slog.Int("lines", rs.nLines),
		slog.Int("tris", rs.nTriangles),
		slog.Int("glyphs", rs.nGlyphs),
	)
}
