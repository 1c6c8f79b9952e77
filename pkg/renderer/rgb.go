// pkg/renderer/rgb.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/HefnySco/radarscreen/pkg/math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

///////////////////////////////////////////////////////////////////////////
// RGB

type RGB struct {
	R, G, B float32
}

type RGBA struct {
	R, G, B, A float32
}

// RGBA returns the color with the given alpha.
func (r RGB) RGBA(alpha float32) RGBA {
	return RGBA{R: r.R, G: r.G, B: r.B, A: alpha}
}

func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// NRGBA converts to the image/color representation, clamping each
// component to [0,1] first.
func (c RGBA) NRGBA() color.NRGBA {
	cvt := func(v float32) uint8 {
		return uint8(math.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{R: cvt(c.R), G: cvt(c.G), B: cvt(c.B), A: cvt(c.A)}
}

// RGBFromHex converts a packed integer color value to an RGB where the low
// 8 bits give blue, the next 8 give green, and then the next 8 give red.
func RGBFromHex(c int) RGB {
	r, g, b := (c>>16)&255, (c>>8)&255, c&255
	return RGB{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255}
}

func RGBFromUInt8(r uint8, g uint8, b uint8) RGB {
	return RGB{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255}
}

func rgbaFromColor(c color.RGBA) RGBA {
	// colornames are all opaque, so premultiplication doesn't matter.
	return RGBFromUInt8(c.R, c.G, c.B).RGBA(float32(c.A) / 255)
}

var (
	Black  = rgbaFromColor(colornames.Black)
	White  = rgbaFromColor(colornames.White)
	Green  = rgbaFromColor(colornames.Green)
	Yellow = rgbaFromColor(colornames.Yellow)
)

// ParseColor parses a CSS color: one of the SVG 1.1 color keywords,
// "transparent", a hex string (#rgb, #rgba, #rrggbb or #rrggbbaa), or an
// rgb()/rgba() functional notation.
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	ls := strings.ToLower(s)

	if c, ok := colornames.Map[ls]; ok {
		return rgbaFromColor(c), nil
	}
	if ls == "transparent" {
		return RGBA{}, nil
	}
	if strings.HasPrefix(ls, "#") {
		return parseHexColor(s)
	}
	if strings.HasPrefix(ls, "rgb") {
		return parseRGBFunc(s, ls)
	}
	return RGBA{}, fmt.Errorf("%q: unknown color", s)
}

func parseHexColor(s string) (RGBA, error) {
	// colorful only handles the opaque forms; peel off the alpha digits
	// first.
	hex, alpha := s, ""
	switch len(s) {
	case 4, 7:
	case 5:
		hex, alpha = s[:4], s[4:]+s[4:]
	case 9:
		hex, alpha = s[:7], s[7:]
	default:
		return RGBA{}, fmt.Errorf("%q: expected #rgb, #rgba, #rrggbb or #rrggbbaa", s)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return RGBA{}, fmt.Errorf("%q: %w", s, err)
	}
	a := uint64(255)
	if alpha != "" {
		if a, err = strconv.ParseUint(alpha, 16, 8); err != nil {
			return RGBA{}, fmt.Errorf("%q: invalid alpha: %w", s, err)
		}
	}
	r, g, b := c.RGB255()
	return RGBFromUInt8(r, g, b).RGBA(float32(a) / 255), nil
}

// parseRGBFunc handles rgb(r, g, b), rgba(r, g, b, a) and the
// space-separated rgb(r g b / a) form. Channels are 0-255 or percentages;
// alpha is 0-1 or a percentage.
func parseRGBFunc(s, ls string) (RGBA, error) {
	open, end := strings.IndexByte(ls, '('), strings.LastIndexByte(ls, ')')
	if name := strings.TrimSpace(ls[:max(open, 0)]); open == -1 || end != len(ls)-1 ||
		(name != "rgb" && name != "rgba") {
		return RGBA{}, fmt.Errorf("%q: expected rgb(...) or rgba(...)", s)
	}

	args := strings.FieldsFunc(ls[open+1:end], func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
	if len(args) != 3 && len(args) != 4 {
		return RGBA{}, fmt.Errorf("%q: expected 3 or 4 components, got %d", s, len(args))
	}

	component := func(arg string, scale float32) (float32, error) {
		if pct, ok := strings.CutSuffix(arg, "%"); ok {
			arg, scale = pct, 100
		}
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return 0, err
		} else if !math.IsFinite(float32(v)) {
			return 0, fmt.Errorf("not a finite number")
		}
		return math.Clamp(float32(v)/scale, 0, 1), nil
	}

	var c [4]float32
	c[3] = 1
	for i, arg := range args {
		scale := float32(255)
		if i == 3 {
			scale = 1
		}
		v, err := component(arg, scale)
		if err != nil {
			return RGBA{}, fmt.Errorf("%q: component %q: %w", s, arg, err)
		}
		c[i] = v
	}
	return RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}
