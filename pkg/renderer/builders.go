// pkg/renderer/builders.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"sync"

	"github.com/HefnySco/radarscreen/pkg/math"
)

///////////////////////////////////////////////////////////////////////////
// DrawBuilders

// The various *DrawBuilder types accumulate a number of independent
// things of the same type to draw and then issue them to a Surface in a
// batch. Vertices are used as given, under whatever transformation the
// target Surface currently has.

// LinesDrawBuilder accumulates lines to be drawn together. The lines are
// stroked with the target's current stroke color; if per-line colors are
// required, the ColoredLinesDrawBuilder should be used instead.
type LinesDrawBuilder struct {
	p       [][2]float32
	indices []int32
}

// Reset resets the internal arrays used for accumulating lines,
// maintaining the initial allocations.
func (l *LinesDrawBuilder) Reset() {
	l.p = l.p[:0]
	l.indices = l.indices[:0]
}

// AddLine adds a line with the specified vertex positions to the set of
// lines to be drawn.
func (l *LinesDrawBuilder) AddLine(p0, p1 [2]float32) {
	idx := int32(len(l.p))
	l.p = append(l.p, p0, p1)
	l.indices = append(l.indices, idx, idx+1)
}

// AddLineStrip adds multiple lines to the lines draw builder where each
// line is given by a successive pair of points, a la GL_LINE_STRIP.
func (l *LinesDrawBuilder) AddLineStrip(p [][2]float32) {
	idx := int32(len(l.p))
	l.p = append(l.p, p...)
	for i := 0; i < len(p)-1; i++ {
		l.indices = append(l.indices, idx+int32(i), idx+int32(i+1))
	}
}

// AddCircle adds lines that draw the outline of a circle centered at the
// point p. The nsegs parameter specifies the tessellation rate for the
// circle.
func (l *LinesDrawBuilder) AddCircle(p [2]float32, radius float32, nsegs int) {
	circle := math.CirclePoints(nsegs)

	idx := int32(len(l.p))
	for i := 0; i < nsegs; i++ {
		l.p = append(l.p, math.Add2f(p, math.Scale2f(circle[i], radius)))
	}
	for i := 0; i < nsegs; i++ {
		// The first vertex is reused as the endpoint of the last line
		// segment.
		l.indices = append(l.indices, idx+int32(i), idx+int32((i+1)%nsegs))
	}
}

// NumLines returns the number of lines that have been added.
func (l *LinesDrawBuilder) NumLines() int {
	return len(l.indices) / 2
}

// Bounds returns the 2D bounding box of the specified lines.
func (l *LinesDrawBuilder) Bounds() math.Extent2D {
	return math.Extent2DFromPoints(l.p)
}

func (l *LinesDrawBuilder) line(i int) ([2]float32, [2]float32) {
	return l.p[l.indices[2*i]], l.p[l.indices[2*i+1]]
}

// GenerateCommands strokes the lines stored in the LinesDrawBuilder on
// the given Surface.
func (l *LinesDrawBuilder) GenerateCommands(s Surface) {
	if len(l.indices) == 0 {
		return
	}

	s.BeginPath()
	for i := range l.NumLines() {
		p0, p1 := l.line(i)
		s.MoveTo(p0[0], p0[1])
		s.LineTo(p1[0], p1[1])
	}
	s.Stroke()
}

// LinesDrawBuilders are managed using a sync.Pool so that their buf slice
// allocations persist across multiple uses.
var linesDrawBuilderPool = sync.Pool{New: func() any { return &LinesDrawBuilder{} }}

func GetLinesDrawBuilder() *LinesDrawBuilder {
	return linesDrawBuilderPool.Get().(*LinesDrawBuilder)
}

func ReturnLinesDrawBuilder(ld *LinesDrawBuilder) {
	ld.Reset()
	linesDrawBuilderPool.Put(ld)
}

// ColoredLinesDrawBuilder is similar to the LinesDrawBuilder though it
// allows specifying the color of each line individually.
type ColoredLinesDrawBuilder struct {
	LinesDrawBuilder
	color []RGBA
}

func (l *ColoredLinesDrawBuilder) Reset() {
	l.LinesDrawBuilder.Reset()
	l.color = l.color[:0]
}

func (l *ColoredLinesDrawBuilder) AddLine(p0, p1 [2]float32, color RGBA) {
	l.LinesDrawBuilder.AddLine(p0, p1)
	l.color = append(l.color, color)
}

// GenerateCommands strokes the lines on the given Surface, issuing one
// stroke for each run of consecutive lines with the same color.
func (l *ColoredLinesDrawBuilder) GenerateCommands(s Surface) {
	for start := 0; start < len(l.color); {
		end := start + 1
		for end < len(l.color) && l.color[end] == l.color[start] {
			end++
		}

		s.SetStrokeRGBA(l.color[start])
		s.BeginPath()
		for i := start; i < end; i++ {
			p0, p1 := l.line(i)
			s.MoveTo(p0[0], p0[1])
			s.LineTo(p1[0], p1[1])
		}
		s.Stroke()

		start = end
	}
}

var coloredLinesDrawBuilderPool = sync.Pool{New: func() any { return &ColoredLinesDrawBuilder{} }}

func GetColoredLinesDrawBuilder() *ColoredLinesDrawBuilder {
	return coloredLinesDrawBuilderPool.Get().(*ColoredLinesDrawBuilder)
}

func ReturnColoredLinesDrawBuilder(cld *ColoredLinesDrawBuilder) {
	cld.Reset()
	coloredLinesDrawBuilderPool.Put(cld)
}

// TrianglesDrawBuilder collects triangles to be filled together with the
// target's current fill color.
type TrianglesDrawBuilder struct {
	p       [][2]float32
	indices []int32
}

func (t *TrianglesDrawBuilder) Reset() {
	t.p = t.p[:0]
	t.indices = t.indices[:0]
}

// AddTriangle adds a triangle with the specified three vertices to be
// drawn.
func (t *TrianglesDrawBuilder) AddTriangle(p0, p1, p2 [2]float32) {
	idx := int32(len(t.p))
	t.p = append(t.p, p0, p1, p2)
	t.indices = append(t.indices, idx, idx+1, idx+2)
}

func (t *TrianglesDrawBuilder) NumTriangles() int {
	return len(t.indices) / 3
}

func (t *TrianglesDrawBuilder) Bounds() math.Extent2D {
	return math.Extent2DFromPoints(t.p)
}

func (t *TrianglesDrawBuilder) triangle(i int) [3][2]float32 {
	return [3][2]float32{t.p[t.indices[3*i]], t.p[t.indices[3*i+1]], t.p[t.indices[3*i+2]]}
}

func (t *TrianglesDrawBuilder) addTrianglePaths(s Surface, start, end int) {
	s.BeginPath()
	for i := start; i < end; i++ {
		tri := t.triangle(i)
		s.MoveTo(tri[0][0], tri[0][1])
		s.LineTo(tri[1][0], tri[1][1])
		s.LineTo(tri[2][0], tri[2][1])
		s.ClosePath()
	}
}

// GenerateCommands fills the triangles stored in the TrianglesDrawBuilder
// on the given Surface.
func (t *TrianglesDrawBuilder) GenerateCommands(s Surface) {
	if len(t.indices) == 0 {
		return
	}
	t.addTrianglePaths(s, 0, t.NumTriangles())
	s.Fill()
}

var trianglesDrawBuilderPool = sync.Pool{New: func() any { return &TrianglesDrawBuilder{} }}

func GetTrianglesDrawBuilder() *TrianglesDrawBuilder {
	return trianglesDrawBuilderPool.Get().(*TrianglesDrawBuilder)
}

func ReturnTrianglesDrawBuilder(td *TrianglesDrawBuilder) {
	td.Reset()
	trianglesDrawBuilderPool.Put(td)
}

// ColoredTrianglesDrawBuilder is similar to TrianglesDrawBuilder though
// each triangle has its own color.
type ColoredTrianglesDrawBuilder struct {
	TrianglesDrawBuilder
	color []RGBA
}

func (t *ColoredTrianglesDrawBuilder) Reset() {
	t.TrianglesDrawBuilder.Reset()
	t.color = t.color[:0]
}

func (t *ColoredTrianglesDrawBuilder) AddTriangle(p0, p1, p2 [2]float32, color RGBA) {
	t.TrianglesDrawBuilder.AddTriangle(p0, p1, p2)
	t.color = append(t.color, color)
}

// GenerateCommands fills the triangles on the given Surface, issuing one
// fill for each run of consecutive triangles with the same color.
func (t *ColoredTrianglesDrawBuilder) GenerateCommands(s Surface) {
	for start := 0; start < len(t.color); {
		end := start + 1
		for end < len(t.color) && t.color[end] == t.color[start] {
			end++
		}

		s.SetFillRGBA(t.color[start])
		t.addTrianglePaths(s, start, end)
		s.Fill()

		start = end
	}
}

var coloredTrianglesDrawBuilderPool = sync.Pool{New: func() any { return &ColoredTrianglesDrawBuilder{} }}

func GetColoredTrianglesDrawBuilder() *ColoredTrianglesDrawBuilder {
	return coloredTrianglesDrawBuilderPool.Get().(*ColoredTrianglesDrawBuilder)
}

func ReturnColoredTrianglesDrawBuilder(ctd *ColoredTrianglesDrawBuilder) {
	ctd.Reset()
	coloredTrianglesDrawBuilderPool.Put(ctd)
}
