// pkg/renderer/mesh.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"github.com/HefnySco/radarscreen/pkg/math"

	"github.com/mmp/earcut-go"
)

// Label is a string drawn at a device-space position.
type Label struct {
	Text  string
	P     [2]float32
	Color RGBA
}

// MeshSurface is a Surface that tessellates everything drawn to it into
// device-space geometry: filled paths become triangles and stroked paths
// become line segments. The result can be inspected directly or issued
// to another Surface with GenerateCommands, which is handy for GPU-style
// backends that only draw lines and triangles.
//
// Paint order is only preserved within each kind of geometry; triangles
// are issued before lines, which are issued before labels.
type MeshSurface struct {
	canvas
	extent math.Extent2D
	lines  *ColoredLinesDrawBuilder
	tris   *ColoredTrianglesDrawBuilder
	labels []Label
	stats  RendererStats
}

var _ Surface = (*MeshSurface)(nil)

func NewMeshSurface(width, height int) *MeshSurface {
	m := &MeshSurface{
		extent: math.Extent2D{P1: [2]float32{float32(width), float32(height)}},
		lines:  GetColoredLinesDrawBuilder(),
		tris:   GetColoredTrianglesDrawBuilder(),
	}
	m.reset()
	return m
}

// Release returns the surface's builders to their pools; the surface may
// not be used afterward.
func (m *MeshSurface) Release() {
	ReturnColoredLinesDrawBuilder(m.lines)
	ReturnColoredTrianglesDrawBuilder(m.tris)
	m.lines, m.tris = nil, nil
}

func (m *MeshSurface) Bounds() math.Extent2D {
	return m.extent
}

// Clear discards all of the geometry generated so far.
func (m *MeshSurface) Clear() {
	m.lines.Reset()
	m.tris.Reset()
	m.labels = m.labels[:0]
	m.stats = RendererStats{}
}

func (m *MeshSurface) Fill() {
	ntris := 0
	for _, poly := range m.fillPolygons() {
		vertices := make([]earcut.Vertex, len(poly))
		for i, v := range poly {
			vertices[i].P = [2]float64{float64(v[0]), float64(v[1])}
		}

		for _, tri := range earcut.Triangulate(earcut.Polygon{Rings: [][]earcut.Vertex{vertices}}) {
			var v32 [3][2]float32
			for i, v64 := range tri.Vertices {
				v32[i] = [2]float32{float32(v64.P[0]), float32(v64.P[1])}
			}
			m.tris.AddTriangle(v32[0], v32[1], v32[2], m.state.fill)
			ntris++
		}
	}
	if ntris > 0 {
		m.stats.nFills++
		m.stats.nTriangles += ntris
	}
}

func (m *MeshSurface) Stroke() {
	n := 0
	m.strokeSegments(func(p0, p1 [2]float32) {
		m.lines.AddLine(p0, p1, m.state.stroke)
		n++
	})
	if n > 0 {
		m.stats.nStrokes++
		m.stats.nLines += n
	}
}

func (m *MeshSurface) FillText(text string, x, y float32) {
	m.labels = append(m.labels, Label{
		Text:  text,
		P:     m.state.xform.TransformPoint([2]float32{x, y}),
		Color: m.state.fill,
	})
	m.stats.nGlyphs += len(text)
}

func (m *MeshSurface) Stats() RendererStats {
	return m.stats
}

func (m *MeshSurface) Labels() []Label {
	return m.labels
}

// Triangles returns the bounds and number of the triangles generated so
// far.
func (m *MeshSurface) Triangles() (math.Extent2D, int) {
	return m.tris.Bounds(), m.tris.NumTriangles()
}

// Lines returns the bounds and number of the line segments generated so
// far.
func (m *MeshSurface) Lines() (math.Extent2D, int) {
	return m.lines.Bounds(), m.lines.NumLines()
}

// GenerateCommands issues the tessellated geometry to the given Surface
// in device coordinates.
func (m *MeshSurface) GenerateCommands(s Surface) {
	m.tris.GenerateCommands(s)
	m.lines.GenerateCommands(s)
	for _, l := range m.labels {
		s.SetFillRGBA(l.Color)
		s.FillText(l.Text, l.P[0], l.P[1])
	}
}
