// pkg/radar/demo_test.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"slices"
	"testing"

	"github.com/HefnySco/radarscreen/pkg/math"
	"github.com/HefnySco/radarscreen/pkg/rand"
	"github.com/HefnySco/radarscreen/pkg/renderer"
	"github.com/HefnySco/radarscreen/pkg/util"
)

func TestRandomHighlights(t *testing.T) {
	cfg := Config{Sections: 5, Rings: 3}
	cells := RandomHighlights(rand.New(11), cfg, 200, nil)
	if len(cells) != 200 {
		t.Fatalf("got %d cells, expected 200", len(cells))
	}

	var e util.ErrorLogger
	ValidateHighlights(cfg, cells, &e)
	if e.HaveErrors() {
		t.Errorf("random cells failed validation: %s", e.String())
	}

	if again := RandomHighlights(rand.New(11), cfg, 200, nil); !slices.Equal(cells, again) {
		t.Errorf("same seed produced different highlights")
	}
}

func TestDemoHighlights(t *testing.T) {
	var e util.ErrorLogger
	ValidateHighlights(DefaultConfig(), DemoHighlights(), &e)
	if e.HaveErrors() {
		t.Errorf("demo highlights are invalid for the default config: %s", e.String())
	}
}

// Randomized checks of the layout and clamping over many configurations.
func TestRandomGrids(t *testing.T) {
	r := rand.New(2025)
	for i := 0; i < 500; i++ {
		cfg := Config{
			Sections:      r.IntRange(1, 24),
			Rings:         r.IntRange(1, 10),
			RotationSteps: r.IntRange(0, 48),
			Rotation:      r.Float32Range(-math.TwoPi, math.TwoPi),
		}
		vp := NewViewport(r.Float32Range(50, 800), r.Float32Range(50, 800))

		for _, cell := range RandomHighlights(r, cfg, 4, nil) {
			w := ComputeWedge(cell, cfg, vp)
			if d := w.End - w.Start; math.Abs(d-math.TwoPi/float32(cfg.Sections)) > 1e-3 {
				t.Errorf("%+v %s: wedge spans %f", cfg, cell, d)
			}
			if w.Inner < 0 || w.Outer < w.Inner || w.Outer > vp.OuterRadius {
				t.Errorf("%+v %s: bad radii [%f, %f]", cfg, cell, w.Inner, w.Outer)
			}

			c := ClampWedge(w, vp, HighlightPadding)
			if c.InnerStart[0] < HighlightPadding || c.InnerStart[1] < HighlightPadding {
				t.Errorf("%+v %s: inner start %v not clamped", cfg, cell, c.InnerStart)
			}
			if c.OuterStart[0] > vp.Width-HighlightPadding || c.OuterEnd[1] > vp.Height-HighlightPadding {
				t.Errorf("%+v %s: outer corners %v %v not clamped", cfg, cell, c.OuterStart, c.OuterEnd)
			}
		}

		// Whatever the configuration, the grid draws exactly one ray per
		// section and one circle per ring.
		cb := renderer.GetCommandBuffer(int(vp.Width), int(vp.Height))
		DrawGrid(cb, vp, cfg)
		summary, err := cb.Summary()
		if err != nil {
			t.Fatalf("Summary: %v", err)
		}
		if summary["LineTo"] != cfg.Sections || summary["Arc"] != cfg.Rings {
			t.Errorf("%+v: got %v", cfg, summary)
		}
		renderer.ReturnCommandBuffer(cb)
	}
}
