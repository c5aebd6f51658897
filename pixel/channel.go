// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixel

import (
	"errors"
	"fmt"
)

// ErrChannelRange is returned when a channel value does not fit its
// bit width.
var ErrChannelRange = errors.New("pixel: channel value out of range")

// U5 is a 5-bit unsigned channel value in [0, 31].
//
// The field is unexported so the only way to obtain a U5 is through a
// constructor that checks the range. RGBA5551 packing can then shift the
// value without masking, and an oversized input can never spill into the
// neighbouring field.
type U5 struct{ v uint8 }

// NewU5 returns v as a U5, or ErrChannelRange if v > 31.
func NewU5(v uint8) (U5, error) {
	if v > 0x1F {
		return U5{}, fmt.Errorf("%w: %d does not fit 5 bits", ErrChannelRange, v)
	}
	return U5{v}, nil
}

// MustU5 is like NewU5 but panics on out-of-range input.
// Intended for constants and tests.
func MustU5(v uint8) U5 {
	u, err := NewU5(v)
	if err != nil {
		panic(err)
	}
	return u
}

// Value returns the channel as a uint8 in [0, 31].
func (u U5) Value() uint8 { return u.v }

// U1 is a 1-bit alpha value: transparent or opaque.
type U1 struct{ v uint8 }

// The two U1 values.
var (
	Transparent = U1{0}
	Opaque      = U1{1}
)

// NewU1 returns v as a U1, or ErrChannelRange if v > 1.
func NewU1(v uint8) (U1, error) {
	if v > 1 {
		return U1{}, fmt.Errorf("%w: %d does not fit 1 bit", ErrChannelRange, v)
	}
	return U1{v}, nil
}

// MustU1 is like NewU1 but panics on out-of-range input.
func MustU1(v uint8) U1 {
	u, err := NewU1(v)
	if err != nil {
		panic(err)
	}
	return u
}

// Value returns the bit as 0 or 1.
func (u U1) Value() uint8 { return u.v }

// IsOpaque reports whether the bit is set.
func (u U1) IsOpaque() bool { return u.v != 0 }
