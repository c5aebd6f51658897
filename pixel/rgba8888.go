// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixel

import (
	"fmt"
	"image/color"
)

// RGBA8888 is a 32-bit pixel packed as R<<24 | G<<16 | B<<8 | A.
// Alpha is straight (not premultiplied) and full range.
//
// Any uint32 is a valid RGBA8888: RGBA8888(w) and uint32(c) reinterpret
// the word without validation.
type RGBA8888 uint32

// NewRGBA8888 packs four 8-bit channels.
func NewRGBA8888(r, g, b, a uint8) RGBA8888 {
	return RGBA8888(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// NewRGBA8888Linear squares each color channel, (v*v)>>8, before packing.
// Alpha is kept as is. The remap darkens mid tones the way a display gamma
// of 2 would; it has no inverse here.
func NewRGBA8888Linear(r, g, b, a uint8) RGBA8888 {
	return NewRGBA8888(square8LUT[r], square8LUT[g], square8LUT[b], a)
}

// Uint32 returns the packed word.
func (c RGBA8888) Uint32() uint32 { return uint32(c) }

// R returns the red channel.
func (c RGBA8888) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c RGBA8888) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c RGBA8888) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel.
func (c RGBA8888) A() uint8 { return uint8(c) }

// Channels returns all four channels.
func (c RGBA8888) Channels() (r, g, b, a uint8) {
	return c.R(), c.G(), c.B(), c.A()
}

// Format returns FormatRGBA8888.
func (RGBA8888) Format() Format { return FormatRGBA8888 }

// RGBA5551 converts to the 16-bit format. Each color channel keeps its top
// 5 bits; alpha becomes opaque when its top bit is set.
func (c RGBA8888) RGBA5551() RGBA5551 {
	return RGBA5551(truncate8(c.R())<<11 |
		truncate8(c.G())<<6 |
		truncate8(c.B())<<1 |
		uint16(c.A()>>7))
}

// RGBA implements color.Color.
func (c RGBA8888) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// String formats the color as RGBA8888(#rrggbbaa).
func (c RGBA8888) String() string {
	return fmt.Sprintf("RGBA8888(#%08x)", uint32(c))
}
