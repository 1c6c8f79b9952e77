// pkg/radar/screen.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"log/slog"

	"github.com/HefnySco/radarscreen/pkg/log"
	"github.com/HefnySco/radarscreen/pkg/renderer"

	"github.com/brunoga/deep"
)

// Screen binds a grid configuration and a set of highlighted cells to a
// drawing surface. Every change repaints the entire surface: the grid is
// redrawn and then the highlights are drawn over it. No derived geometry
// is kept between repaints.
//
// A Screen is not safe for concurrent use.
type Screen struct {
	surface renderer.Surface
	cfg     Config
	cells   []HighlightCell
	lg      *log.Logger
}

// New validates cfg and returns a Screen that draws to s; the grid is
// drawn immediately, with no highlights. lg may be nil.
func New(s renderer.Surface, cfg Config, lg *log.Logger) (*Screen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sc := &Screen{surface: s, cfg: cfg, lg: lg}
	vp := sc.Viewport()
	lg.Info("radar screen created", slog.Int("sections", cfg.Sections), slog.Int("rings", cfg.Rings),
		slog.Float64("width", float64(vp.Width)), slog.Float64("height", float64(vp.Height)))
	sc.repaint()
	return sc, nil
}

// Update replaces the configuration and the highlighted cells and then
// repaints. The cells are copied, so the caller may reuse the slice. If
// cfg is invalid, nothing changes and the validation error is returned.
func (sc *Screen) Update(cfg Config, cells []HighlightCell) error {
	if err := cfg.Validate(); err != nil {
		sc.lg.Warnf("%v: keeping previous configuration", err)
		return err
	}

	if cfg.Sections != sc.cfg.Sections || cfg.Rings != sc.cfg.Rings {
		sc.lg.Info("grid geometry changed",
			slog.Int("sections", cfg.Sections), slog.Int("prev_sections", sc.cfg.Sections),
			slog.Int("rings", cfg.Rings), slog.Int("prev_rings", sc.cfg.Rings))
	}

	sc.cfg = cfg
	sc.cells = deep.MustCopy(cells)
	sc.repaint()
	return nil
}

// Redraw repaints using the current configuration and highlights.
func (sc *Screen) Redraw() {
	sc.repaint()
}

func (sc *Screen) Config() Config {
	return sc.cfg
}

// Highlights returns a copy of the current highlighted cells.
func (sc *Screen) Highlights() []HighlightCell {
	return deep.MustCopy(sc.cells)
}

// Viewport returns the viewport for the surface's current bounds.
func (sc *Screen) Viewport() Viewport {
	return ViewportFromExtent(sc.surface.Bounds())
}

func (sc *Screen) repaint() {
	vp := sc.Viewport()
	DrawGrid(sc.surface, vp, sc.cfg)
	DrawHighlights(sc.surface, sc.cfg, vp, sc.cells, sc.lg)
	sc.lg.Debug("repainted", slog.Float64("effective_angle", float64(EffectiveAngle(sc.cfg))),
		slog.Int("highlights", len(sc.cells)))
}
