// pkg/radar/demo.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"github.com/HefnySco/radarscreen/pkg/rand"
)

// DemoHighlights returns a fixed pair of cells that is handy for checking
// a new grid configuration by eye.
func DemoHighlights() []HighlightCell {
	return []HighlightCell{
		{Section: 3, Ring: 2, Color: "#ff0000"},
		{Section: 5, Ring: 4, Color: "#00ff00"},
	}
}

// DefaultPalette is used for randomly generated highlights.
var DefaultPalette = []string{"#ff0000", "#00ff00", "#0000ff", "orange", "cyan", "magenta"}

// RandomHighlights returns n cells chosen uniformly from the grid
// described by cfg, colored from the palette (DefaultPalette if empty).
// Cells may repeat.
func RandomHighlights(r *rand.Rand, cfg Config, n int, palette []string) []HighlightCell {
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	cells := make([]HighlightCell, n)
	for i := range cells {
		cells[i] = HighlightCell{
			Section: r.IntRange(1, cfg.Sections),
			Ring:    r.IntRange(1, cfg.Rings),
			Color:   rand.SampleSlice(r, palette),
		}
	}
	return cells
}
