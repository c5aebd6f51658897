// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pixel provides the packed color formats understood by the
// console's display hardware.
//
// Two formats exist and they are not interchangeable at the bit level:
//
//   - RGBA8888: four 8-bit channels packed big-end first into a uint32
//     as R<<24 | G<<16 | B<<8 | A.
//   - RGBA5551: three 5-bit channels and a 1-bit alpha packed into a
//     uint16 as R<<11 | G<<6 | B<<1 | A.
//
// Both are immutable value types whose only state is the packed word, so
// converting a word to a color and back is free and lossless. Converting
// between the formats is not: RGBA8888 to RGBA5551 truncates each channel
// to its top 5 bits and quantizes alpha, RGBA5551 to RGBA8888 widens by bit
// replication and cannot recover the lost precision.
package pixel

// Format identifies one of the packed pixel layouts.
type Format uint8

const (
	// FormatRGBA8888 is 32-bit RGBA, 8 bits per channel.
	FormatRGBA8888 Format = iota

	// FormatRGBA5551 is 16-bit RGBA, 5 bits per color channel and a
	// single alpha bit.
	FormatRGBA5551

	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the size of one packed value.
	BytesPerPixel int

	// BitsPerChannel is the width of each color channel.
	BitsPerChannel int

	// AlphaBits is the width of the alpha channel.
	AlphaBits int

	// MaxChannel is the largest value a color channel can hold.
	MaxChannel uint8
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatRGBA8888: {
		BytesPerPixel:  4,
		BitsPerChannel: 8,
		AlphaBits:      8,
		MaxChannel:     0xFF,
	},
	FormatRGBA5551: {
		BytesPerPixel:  2,
		BitsPerChannel: 5,
		AlphaBits:      1,
		MaxChannel:     0x1F,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// ImageBytes returns the size of a dense width x height buffer.
func (f Format) ImageBytes(width, height int) int {
	return width * height * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatRGBA8888:
		return "RGBA8888"
	case FormatRGBA5551:
		return "RGBA5551"
	default:
		return "Unknown"
	}
}
