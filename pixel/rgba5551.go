// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixel

import (
	"fmt"
	"image/color"
)

// RGBA5551 is a 16-bit pixel packed as R<<11 | G<<6 | B<<1 | A, the
// native framebuffer format of the video interface in 16bpp mode.
//
// Any uint16 is a valid RGBA5551.
type RGBA5551 uint16

// NewRGBA5551 packs three 5-bit channels and an alpha bit. The channel
// types guarantee every field fits, so no masking happens here.
func NewRGBA5551(r, g, b U5, a U1) RGBA5551 {
	return RGBA5551(uint16(r.v)<<11 | uint16(g.v)<<6 | uint16(b.v)<<1 | uint16(a.v))
}

// NewRGBA5551Linear squares each color channel, (v*v)>>5, before packing.
// Alpha is kept as is.
func NewRGBA5551Linear(r, g, b U5, a U1) RGBA5551 {
	return NewRGBA5551(U5{square5LUT[r.v]}, U5{square5LUT[g.v]}, U5{square5LUT[b.v]}, a)
}

// Uint16 returns the packed word.
func (c RGBA5551) Uint16() uint16 { return uint16(c) }

// R returns the red channel.
func (c RGBA5551) R() U5 { return U5{uint8(c>>11) & 0x1F} }

// G returns the green channel.
func (c RGBA5551) G() U5 { return U5{uint8(c>>6) & 0x1F} }

// B returns the blue channel.
func (c RGBA5551) B() U5 { return U5{uint8(c>>1) & 0x1F} }

// A returns the alpha bit.
func (c RGBA5551) A() U1 { return U1{uint8(c) & 1} }

// Channels returns all four channels, right aligned: color channels in
// [0, 31] and alpha 0 or 1.
func (c RGBA5551) Channels() (r, g, b, a uint8) {
	return c.R().v, c.G().v, c.B().v, c.A().v
}

// Format returns FormatRGBA5551.
func (RGBA5551) Format() Format { return FormatRGBA5551 }

// RGBA8888 widens to the 32-bit format by bit replication. Alpha becomes
// 0x00 or 0xFF.
func (c RGBA5551) RGBA8888() RGBA8888 {
	var a uint8
	if c&1 != 0 {
		a = 0xFF
	}
	return NewRGBA8888(Expand5(c.R()), Expand5(c.G()), Expand5(c.B()), a)
}

// RGBA implements color.Color.
func (c RGBA5551) RGBA() (r, g, b, a uint32) {
	return c.RGBA8888().RGBA()
}

// String formats the color as RGBA5551(#xxxx).
func (c RGBA5551) String() string {
	return fmt.Sprintf("RGBA5551(#%04x)", uint16(c))
}

var _ color.Color = RGBA5551(0)
