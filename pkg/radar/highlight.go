// pkg/radar/highlight.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"fmt"

	"github.com/HefnySco/radarscreen/pkg/log"
	"github.com/HefnySco/radarscreen/pkg/math"
	"github.com/HefnySco/radarscreen/pkg/renderer"
)

const (
	// HighlightPadding is the distance from the surface edges that wedge
	// corners are kept from.
	HighlightPadding = 10
	// Distance labels are drawn this far beyond the wedge's outer radius.
	labelOffset = 10
)

// Wedge is the region of the grid covered by a highlighted cell: the
// angular span of its section and the radial span of its ring, along with
// the four corners where those meet.
type Wedge struct {
	Start, End   float32 // radians
	Inner, Outer float32 // pixels

	InnerStart, OuterStart [2]float32
	OuterEnd, InnerEnd     [2]float32
}

// ComputeWedge returns the wedge for the given cell. Indices outside the
// grid are evaluated with the same formulas.
func ComputeWedge(cell HighlightCell, cfg Config, vp Viewport) Wedge {
	var w Wedge
	w.Start, w.End = SectionAngleBounds(cell.Section, cfg.Sections, EffectiveAngle(cfg))
	w.Inner, w.Outer = RingRadiusBounds(cell.Ring, cfg.Rings, vp.OuterRadius)

	w.InnerStart = math.Polar2f(vp.Center, w.Inner, w.Start)
	w.OuterStart = math.Polar2f(vp.Center, w.Outer, w.Start)
	w.OuterEnd = math.Polar2f(vp.Center, w.Outer, w.End)
	w.InnerEnd = math.Polar2f(vp.Center, w.Inner, w.End)
	return w
}

// ClampWedge pulls the wedge's corners in toward the viewport edges.
// The checks are applied in order and each one only looks at a single
// corner, moving it and its neighbor along that edge:
//
//   - left: if InnerStart is left of the padding, InnerStart and InnerEnd
//   - top: if InnerStart is above the padding, InnerStart and OuterStart
//   - right: if OuterStart is right of the padding, OuterStart and OuterEnd
//   - bottom: if OuterEnd is below the padding, OuterEnd and InnerEnd
//
// This does not guarantee that every corner ends up inside the padded
// viewport.
func ClampWedge(w Wedge, vp Viewport, padding float32) Wedge {
	if w.InnerStart[0] < padding {
		w.InnerStart[0] = padding
		w.InnerEnd[0] = padding
	}
	if w.InnerStart[1] < padding {
		w.InnerStart[1] = padding
		w.OuterStart[1] = padding
	}
	if right := vp.Width - padding; w.OuterStart[0] > right {
		w.OuterStart[0] = right
		w.OuterEnd[0] = right
	}
	if bottom := vp.Height - padding; w.OuterEnd[1] > bottom {
		w.OuterEnd[1] = bottom
		w.InnerEnd[1] = bottom
	}
	return w
}

// Label returns the wedge's distance label: its outer radius in whole
// pixels.
func (w Wedge) Label() string {
	return fmt.Sprintf("%.0f m", math.Round(w.Outer))
}

// LabelPosition returns where the label is drawn: just beyond the outer
// radius, midway through the wedge's angular span.
func (w Wedge) LabelPosition(vp Viewport) [2]float32 {
	return math.Polar2f(vp.Center, w.Outer+labelOffset, (w.Start+w.End)/2)
}

// Path adds the wedge's outline to the surface's current path. The
// straight edges use the (possibly clamped) corners while the arcs always
// follow the unclamped radii about the viewport center.
func (w Wedge) Path(s renderer.Surface, vp Viewport) {
	cx, cy := vp.Center[0], vp.Center[1]
	s.MoveTo(w.InnerStart[0], w.InnerStart[1])
	s.LineTo(w.OuterStart[0], w.OuterStart[1])
	s.Arc(cx, cy, w.Outer, w.Start, w.End, false)
	s.LineTo(w.OuterEnd[0], w.OuterEnd[1])
	s.Arc(cx, cy, w.Inner, w.End, w.Start, true)
	s.ClosePath()
}

// HighlightWedges returns the clamped wedges for the drawable cells, in
// order, along with their colors. Cells outside the grid or with colors
// that can't be parsed are skipped and a warning is logged.
func HighlightWedges(cfg Config, vp Viewport, cells []HighlightCell, lg *log.Logger) ([]Wedge, []renderer.RGBA) {
	var wedges []Wedge
	var colors []renderer.RGBA
	for _, cell := range cells {
		if !cell.InGrid(cfg) {
			lg.Warnf("%s: %v: skipping", cell, ErrCellOutOfGrid)
			continue
		}
		c, err := renderer.ParseColor(cell.Color)
		if err != nil {
			lg.Warnf("%s: %v: %v: skipping", cell, ErrInvalidColor, err)
			continue
		}

		w := ClampWedge(ComputeWedge(cell, cfg, vp), vp, HighlightPadding)
		wedges = append(wedges, w)
		colors = append(colors, c)
	}
	return wedges, colors
}

// DrawHighlights fills the wedge for each cell with its color and draws
// its distance label, processing the cells in order so that later cells
// paint over earlier ones.
func DrawHighlights(s renderer.Surface, cfg Config, vp Viewport, cells []HighlightCell, lg *log.Logger) {
	wedges, colors := HighlightWedges(cfg, vp, cells, lg)
	for i, w := range wedges {
		s.BeginPath()
		w.Path(s, vp)
		s.SetFillRGBA(colors[i])
		s.Fill()

		p := w.LabelPosition(vp)
		s.SetFillRGBA(renderer.White)
		s.FillText(w.Label(), p[0], p[1])
	}
}
