// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixel

import "image/color"

// Packed is the set of pixel types a surface can store.
type Packed interface {
	RGBA8888 | RGBA5551
	color.Color
	Channels() (r, g, b, a uint8)
	Format() Format
}

// Basic names one of the eight full-intensity primary and secondary
// colors. Bit 0 is red, bit 1 green, bit 2 blue.
type Basic uint8

const (
	BasicBlack Basic = iota
	BasicRed
	BasicGreen
	BasicYellow
	BasicBlue
	BasicMagenta
	BasicCyan
	BasicWhite
)

// Opaque basic colors in both formats. Converting one format's constant
// yields the other format's constant of the same name.
const (
	Black8888   RGBA8888 = 0x000000FF
	Red8888     RGBA8888 = 0xFF0000FF
	Green8888   RGBA8888 = 0x00FF00FF
	Blue8888    RGBA8888 = 0x0000FFFF
	Yellow8888  RGBA8888 = 0xFFFF00FF
	Magenta8888 RGBA8888 = 0xFF00FFFF
	Cyan8888    RGBA8888 = 0x00FFFFFF
	White8888   RGBA8888 = 0xFFFFFFFF

	Black5551   RGBA5551 = 0x0001
	Red5551     RGBA5551 = 0x1F<<11 | 1
	Green5551   RGBA5551 = 0x1F<<6 | 1
	Blue5551    RGBA5551 = 0x1F<<1 | 1
	Yellow5551  RGBA5551 = Red5551 | Green5551
	Magenta5551 RGBA5551 = Red5551 | Blue5551
	Cyan5551    RGBA5551 = Green5551 | Blue5551
	White5551   RGBA5551 = Red5551 | Green5551 | Blue5551
)

var basic8888 = [...]RGBA8888{
	BasicBlack:   Black8888,
	BasicRed:     Red8888,
	BasicGreen:   Green8888,
	BasicYellow:  Yellow8888,
	BasicBlue:    Blue8888,
	BasicMagenta: Magenta8888,
	BasicCyan:    Cyan8888,
	BasicWhite:   White8888,
}

var basic5551 = [...]RGBA5551{
	BasicBlack:   Black5551,
	BasicRed:     Red5551,
	BasicGreen:   Green5551,
	BasicYellow:  Yellow5551,
	BasicBlue:    Blue5551,
	BasicMagenta: Magenta5551,
	BasicCyan:    Cyan5551,
	BasicWhite:   White5551,
}

// RGBA8888 returns the basic color in the 32-bit format.
// Only the low three bits of b are used.
func (b Basic) RGBA8888() RGBA8888 { return basic8888[b&7] }

// RGBA5551 returns the basic color in the 16-bit format.
func (b Basic) RGBA5551() RGBA5551 { return basic5551[b&7] }

// String returns the color name.
func (b Basic) String() string {
	switch b & 7 {
	case BasicBlack:
		return "black"
	case BasicRed:
		return "red"
	case BasicGreen:
		return "green"
	case BasicYellow:
		return "yellow"
	case BasicBlue:
		return "blue"
	case BasicMagenta:
		return "magenta"
	case BasicCyan:
		return "cyan"
	default:
		return "white"
	}
}

// BasicColor returns the basic color b in format P.
func BasicColor[P Packed](b Basic) P {
	var p P
	switch any(p).(type) {
	case RGBA8888:
		return any(b.RGBA8888()).(P)
	default:
		return any(b.RGBA5551()).(P)
	}
}

// Max returns the largest color channel value of format P:
// 0xFF for RGBA8888 and 0x1F for RGBA5551.
func Max[P Packed]() uint8 {
	var p P
	return p.Format().Info().MaxChannel
}
