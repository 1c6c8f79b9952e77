// pkg/renderer/mesh_test.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"testing"

	"github.com/HefnySco/radarscreen/pkg/math"
)

func TestMeshSurface(t *testing.T) {
	m := NewMeshSurface(100, 100)
	defer m.Release()

	m.BeginPath()
	m.MoveTo(10, 10)
	m.LineTo(30, 10)
	m.LineTo(30, 30)
	m.LineTo(10, 30)
	m.ClosePath()
	m.SetFillRGBA(Yellow)
	m.Fill()
	m.SetStrokeRGBA(Green)
	m.Stroke()

	m.Translate(50, 50)
	m.SetFillRGBA(White)
	m.FillText("40 m", 5, 5)

	ext, ntris := m.Triangles()
	if ntris != 2 {
		t.Errorf("got %d triangles, expected 2", ntris)
	}
	if ext.P0 != [2]float32{10, 10} || ext.P1 != [2]float32{30, 30} {
		t.Errorf("triangle bounds: got %v", ext)
	}
	if _, nlines := m.Lines(); nlines != 4 {
		t.Errorf("got %d lines, expected 4", nlines)
	}

	labels := m.Labels()
	if len(labels) != 1 || labels[0].Text != "40 m" || labels[0].P != [2]float32{55, 55} || labels[0].Color != White {
		t.Errorf("labels: got %+v", labels)
	}

	st := m.Stats()
	if st.Fills() != 1 || st.Strokes() != 1 || st.Triangles() != 2 || st.Lines() != 4 || st.Glyphs() != 4 {
		t.Errorf("stats: got %s", st.String())
	}

	cb := NewCommandBuffer(100, 100)
	m.GenerateCommands(cb)
	summary, err := cb.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary["Fill"] != 1 || summary["Stroke"] != 1 || summary["FillText"] != 1 {
		t.Errorf("generated commands: got %v", summary)
	}

	m.Clear()
	if _, n := m.Triangles(); n != 0 || len(m.Labels()) != 0 {
		t.Errorf("Clear did not discard geometry")
	}
}

func TestMeshSurfaceCircle(t *testing.T) {
	m := NewMeshSurface(200, 200)
	defer m.Release()

	m.BeginPath()
	m.Arc(100, 100, 50, 0, math.TwoPi, false)
	m.Fill()
	m.Stroke()

	_, ntris := m.Triangles()
	_, nlines := m.Lines()
	if nlines != arcSegments(50) {
		t.Errorf("got %d lines, expected %d", nlines, arcSegments(50))
	}
	if ntris != nlines-2 {
		t.Errorf("got %d triangles, expected %d", ntris, nlines-2)
	}
}

func TestLinesDrawBuilder(t *testing.T) {
	ld := GetLinesDrawBuilder()
	defer ReturnLinesDrawBuilder(ld)

	ld.AddLine([2]float32{0, 0}, [2]float32{1, 1})
	ld.AddLineStrip([][2]float32{{0, 0}, {1, 0}, {1, 1}})
	ld.AddCircle([2]float32{5, 5}, 2, 8)
	if n := ld.NumLines(); n != 1+2+8 {
		t.Errorf("got %d lines, expected 11", n)
	}
	if b := ld.Bounds(); b.P0 != [2]float32{0, 0} || b.P1 != [2]float32{7, 7} {
		t.Errorf("bounds: got %v", b)
	}

	cb := NewCommandBuffer(10, 10)
	ld.GenerateCommands(cb)
	summary, _ := cb.Summary()
	if summary["MoveTo"] != 11 || summary["LineTo"] != 11 || summary["Stroke"] != 1 {
		t.Errorf("generated commands: got %v", summary)
	}
}

func TestColoredDrawBuilders(t *testing.T) {
	cld := GetColoredLinesDrawBuilder()
	defer ReturnColoredLinesDrawBuilder(cld)
	cld.AddLine([2]float32{0, 0}, [2]float32{1, 0}, Green)
	cld.AddLine([2]float32{1, 0}, [2]float32{1, 1}, Green)
	cld.AddLine([2]float32{1, 1}, [2]float32{0, 1}, Yellow)

	ctd := GetColoredTrianglesDrawBuilder()
	defer ReturnColoredTrianglesDrawBuilder(ctd)
	ctd.AddTriangle([2]float32{0, 0}, [2]float32{1, 0}, [2]float32{0, 1}, White)
	ctd.AddTriangle([2]float32{1, 0}, [2]float32{1, 1}, [2]float32{0, 1}, Yellow)
	ctd.AddTriangle([2]float32{2, 0}, [2]float32{3, 0}, [2]float32{2, 1}, Yellow)

	cb := NewCommandBuffer(10, 10)
	cld.GenerateCommands(cb)
	ctd.GenerateCommands(cb)
	summary, _ := cb.Summary()
	if summary["Stroke"] != 2 || summary["SetStrokeRGBA"] != 2 {
		t.Errorf("colored lines: got %v", summary)
	}
	if summary["Fill"] != 2 || summary["SetFillRGBA"] != 2 || summary["ClosePath"] != 3 {
		t.Errorf("colored triangles: got %v", summary)
	}

	td := GetTrianglesDrawBuilder()
	defer ReturnTrianglesDrawBuilder(td)
	td.AddTriangle([2]float32{0, 0}, [2]float32{4, 0}, [2]float32{0, 4})
	s := NewImageSurface(10, 10)
	s.SetFillRGBA(White)
	td.GenerateCommands(s)
	if c := s.Image.RGBAAt(1, 1); c.A == 0 {
		t.Errorf("triangle was not filled")
	}
}
