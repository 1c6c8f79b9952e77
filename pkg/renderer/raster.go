// pkg/renderer/raster.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/HefnySco/radarscreen/pkg/math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ImageSurface is a Surface that rasterizes into an *image.RGBA. Paths
// are filled with an anti-aliasing rasterizer; strokes are one pixel wide
// and are rasterized as a quadrilateral around each segment. Text is
// drawn with a fixed 7x13 bitmap font and is not affected by rotation.
type ImageSurface struct {
	canvas
	Image *image.RGBA
	z     *vector.Rasterizer
	stats RendererStats
}

var _ Surface = (*ImageSurface)(nil)

const strokeWidth = 1.0

func NewImageSurface(width, height int) *ImageSurface {
	s := &ImageSurface{
		Image: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:     vector.NewRasterizer(width, height),
	}
	s.reset()
	return s
}

func (s *ImageSurface) Bounds() math.Extent2D {
	b := s.Image.Bounds()
	return math.Extent2D{P1: [2]float32{float32(b.Dx()), float32(b.Dy())}}
}

func (s *ImageSurface) Stats() RendererStats {
	return s.stats
}

// Clear erases the image to transparent and resets the statistics, so
// that they describe a single repaint as with MeshSurface.
func (s *ImageSurface) Clear() {
	draw.Draw(s.Image, s.Image.Bounds(), image.Transparent, image.Point{}, draw.Src)
	s.stats = RendererStats{}
}

func (s *ImageSurface) rasterize(c RGBA) {
	b := s.Image.Bounds()
	s.z.DrawOp = draw.Over
	s.z.Draw(s.Image, b, image.NewUniform(c.NRGBA()), image.Point{})
	s.z.Reset(b.Dx(), b.Dy())
}

func (s *ImageSurface) Fill() {
	polys := s.fillPolygons()
	if len(polys) == 0 {
		return
	}
	for _, p := range polys {
		s.z.MoveTo(p[0][0], p[0][1])
		for _, v := range p[1:] {
			s.z.LineTo(v[0], v[1])
		}
		s.z.ClosePath()
		s.stats.nTriangles += len(p) - 2
	}
	s.rasterize(s.state.fill)
	s.stats.nFills++
}

func (s *ImageSurface) Stroke() {
	n := 0
	s.strokeSegments(func(p0, p1 [2]float32) {
		d := math.Normalize2f(math.Sub2f(p1, p0))
		off := math.Scale2f([2]float32{-d[1], d[0]}, strokeWidth/2)
		a, b := math.Add2f(p0, off), math.Add2f(p1, off)
		c, e := math.Sub2f(p1, off), math.Sub2f(p0, off)
		s.z.MoveTo(a[0], a[1])
		s.z.LineTo(b[0], b[1])
		s.z.LineTo(c[0], c[1])
		s.z.LineTo(e[0], e[1])
		s.z.ClosePath()
		n++
	})
	if n == 0 {
		return
	}
	s.rasterize(s.state.stroke)
	s.stats.nStrokes++
	s.stats.nLines += n
}

func (s *ImageSurface) FillText(text string, x, y float32) {
	p := s.state.xform.TransformPoint([2]float32{x, y})
	d := &font.Drawer{
		Dst:  s.Image,
		Src:  image.NewUniform(s.state.fill.NRGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(p[0] * 64), Y: fixed.Int26_6(p[1] * 64)},
	}
	d.DrawString(text)
	s.stats.nGlyphs += len(text)
}

// WritePNG encodes the surface's current contents as a PNG.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.Image); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
