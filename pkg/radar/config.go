// pkg/radar/config.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"fmt"

	"github.com/HefnySco/radarscreen/pkg/math"
	"github.com/HefnySco/radarscreen/pkg/renderer"
	"github.com/HefnySco/radarscreen/pkg/util"
)

// Config describes the grid: how many sections (angular divisions) and
// rings (radial divisions) it has and how it is rotated.
type Config struct {
	Sections int `json:"sections" mapstructure:"sections"`
	Rings    int `json:"rings" mapstructure:"rings"`
	// RotationSteps rotates the grid in increments of half a section.
	RotationSteps int `json:"rotation_steps" mapstructure:"rotation_steps"`
	// Rotation is an additional continuous rotation, in radians.
	Rotation    float32 `json:"rotation" mapstructure:"rotation"`
	DrawPointer bool    `json:"draw_pointer" mapstructure:"draw_pointer"`
}

func DefaultConfig() Config {
	return Config{Sections: 8, Rings: 4}
}

// Validate checks the configuration, returning an error that wraps
// ErrInvalidConfig and describes every problem found.
func (c Config) Validate() error {
	var e util.ErrorLogger
	c.check(&e)
	if e.HaveErrors() {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, e.String())
	}
	return nil
}

func (c Config) check(e *util.ErrorLogger) {
	if c.Sections < 1 {
		e.ErrorString("sections must be at least 1 (got %d)", c.Sections)
	}
	if c.Rings < 1 {
		e.ErrorString("rings must be at least 1 (got %d)", c.Rings)
	}
	if c.RotationSteps < 0 {
		e.ErrorString("rotation_steps must not be negative (got %d)", c.RotationSteps)
	}
	if !math.IsFinite(c.Rotation) {
		e.ErrorString("rotation must be a finite number of radians (got %f)", c.Rotation)
	}
}

// HighlightCell identifies a wedge of the grid by its 1-based section
// and ring and gives the CSS color it should be filled with.
type HighlightCell struct {
	Section int    `json:"section" mapstructure:"section"`
	Ring    int    `json:"ring" mapstructure:"ring"`
	Color   string `json:"color" mapstructure:"color"`
}

func (h HighlightCell) String() string {
	return fmt.Sprintf("(%d,%d) %s", h.Section, h.Ring, h.Color)
}

// InGrid reports whether the cell's indices are within the bounds of the
// grid described by cfg.
func (h HighlightCell) InGrid(cfg Config) bool {
	return h.Section >= 1 && h.Section <= cfg.Sections && h.Ring >= 1 && h.Ring <= cfg.Rings
}

// ValidateHighlights reports problems with the given cells without
// rejecting them; rendering skips any cell that fails these checks.
func ValidateHighlights(cfg Config, cells []HighlightCell, e *util.ErrorLogger) {
	for i, cell := range cells {
		e.Push(fmt.Sprintf("highlight %d", i))
		if !cell.InGrid(cfg) {
			e.ErrorString("%s: %v", cell, ErrCellOutOfGrid)
		}
		if _, err := renderer.ParseColor(cell.Color); err != nil {
			e.Error(err)
		}
		e.Pop()
	}
}
