// pkg/radar/errors.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import "errors"

var (
	ErrInvalidConfig = errors.New("Invalid radar configuration")
	ErrInvalidColor  = errors.New("Invalid highlight color")
	ErrCellOutOfGrid = errors.New("Highlight cell is outside the grid")
)
