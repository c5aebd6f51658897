// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixel

// expand5LUT widens a 5-bit channel to 8 bits by replicating its top bits
// into the low bits: (v<<3)|(v>>2). 0 maps to 0 and 31 to 255.
var expand5LUT [32]uint8

// square8LUT maps an 8-bit channel to (v*v)>>8.
var square8LUT [256]uint8

// square5LUT maps a 5-bit channel to (v*v)>>5.
var square5LUT [32]uint8

func init() {
	for i := 0; i < 32; i++ {
		v := uint8(i)
		expand5LUT[i] = v<<3 | v>>2
		square5LUT[i] = uint8((uint32(i) * uint32(i)) >> 5)
	}
	for i := 0; i < 256; i++ {
		square8LUT[i] = uint8((uint32(i) * uint32(i)) >> 8)
	}
}

// Expand5 widens a 5-bit channel value to 8 bits.
func Expand5(v U5) uint8 {
	return expand5LUT[v.v]
}

// truncate8 keeps the top 5 bits of an 8-bit channel.
func truncate8(v uint8) uint16 {
	return uint16(v >> 3)
}
