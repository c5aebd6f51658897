// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"iter"

	"github.com/gogpu/n64gfx/pixel"
)

// Point is a single colored pixel write.
type Point[P pixel.Packed] struct {
	Pos   image.Point
	Color P
}

// DrawTarget is the capability a renderer needs from a surface: its
// dimensions and a way to write colored points. Writes outside the target
// are dropped, never reported.
type DrawTarget[P pixel.Packed] interface {
	Size() image.Point
	DrawPoints(points iter.Seq[Point[P]])
}

// in reports whether (x, y) addresses a pixel of the surface.
func (s *Surface[P]) in(x, y int) bool {
	return x >= 0 && x < int(s.width) && y >= 0 && y < int(s.height)
}

// DrawPoints writes each point's color at offset x + y*width. Points
// outside [0, width) x [0, height) are silently dropped; callers are
// expected to clip.
func (s *Surface[P]) DrawPoints(points iter.Seq[Point[P]]) {
	w := int(s.width)
	for pt := range points {
		if s.in(pt.Pos.X, pt.Pos.Y) {
			s.pix[pt.Pos.X+pt.Pos.Y*w] = pt.Color
		}
	}
}

// Clear sets every pixel to c.
func (s *Surface[P]) Clear(c P) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

// PixelAt returns the pixel at (x, y), or the zero value outside.
func (s *Surface[P]) PixelAt(x, y int) P {
	if !s.in(x, y) {
		var zero P
		return zero
	}
	return s.pix[x+y*int(s.width)]
}

// SetPixel writes one pixel, dropping writes outside the surface.
func (s *Surface[P]) SetPixel(x, y int, c P) {
	if s.in(x, y) {
		s.pix[x+y*int(s.width)] = c
	}
}

// ColorModel implements image.Image.
func (s *Surface[P]) ColorModel() color.Model { return pixel.ModelOf[P]() }

// Bounds implements image.Image.
func (s *Surface[P]) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(s.width), int(s.height))
}

// At implements image.Image.
func (s *Surface[P]) At(x, y int) color.Color { return s.PixelAt(x, y) }

// Set implements draw.Image, converting c to P.
func (s *Surface[P]) Set(x, y int, c color.Color) {
	s.SetPixel(x, y, pixel.Convert[P](c))
}

var (
	_ DrawTarget[pixel.RGBA5551] = (*Surface[pixel.RGBA5551])(nil)
	_ DrawTarget[pixel.RGBA8888] = (*Surface[pixel.RGBA8888])(nil)
	_ draw.Image                 = (*Surface[pixel.RGBA5551])(nil)
)
