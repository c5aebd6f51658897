// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixel

import "image/color"

// Models for the packed formats, so surfaces can take part in image/draw.
var (
	RGBA8888Model color.Model = color.ModelFunc(rgba8888Model)
	RGBA5551Model color.Model = color.ModelFunc(rgba5551Model)
)

func rgba8888Model(c color.Color) color.Color {
	return toRGBA8888(c)
}

func rgba5551Model(c color.Color) color.Color {
	if p, ok := c.(RGBA5551); ok {
		return p
	}
	return toRGBA8888(c).RGBA5551()
}

func toRGBA8888(c color.Color) RGBA8888 {
	switch p := c.(type) {
	case RGBA8888:
		return p
	case RGBA5551:
		return p.RGBA8888()
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewRGBA8888(n.R, n.G, n.B, n.A)
}

// Convert returns c in format P. Colors already in P are returned
// unchanged; everything else goes through RGBA8888.
func Convert[P Packed](c color.Color) P {
	if p, ok := c.(P); ok {
		return p
	}
	var p P
	switch any(p).(type) {
	case RGBA8888:
		return any(toRGBA8888(c)).(P)
	default:
		return any(toRGBA8888(c).RGBA5551()).(P)
	}
}

// ModelOf returns the color.Model of format P.
func ModelOf[P Packed]() color.Model {
	var p P
	if p.Format() == FormatRGBA8888 {
		return RGBA8888Model
	}
	return RGBA5551Model
}
