// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixel

import (
	"errors"
	"image/color"
	"testing"
	"testing/quick"
)

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// TestRoundTripQuantization checks that 8888 -> 5551 -> 8888 loses at most
// 7 per channel and collapses alpha to 0x00 or 0xFF.
func TestRoundTripQuantization(t *testing.T) {
	for v := 0; v < 256; v++ {
		for a := 0; a < 256; a++ {
			orig := NewRGBA8888(uint8(v), uint8(255-v), uint8(v^0x5A), uint8(a))
			got := orig.RGBA5551().RGBA8888()

			for i, pair := range [3][2]uint8{
				{orig.R(), got.R()},
				{orig.G(), got.G()},
				{orig.B(), got.B()},
			} {
				if d := absDiff(pair[0], pair[1]); d > 7 {
					t.Fatalf("%v round trip channel %d = %d, want within 7 of %d", orig, i, pair[1], pair[0])
				}
			}

			wantA := uint8(0)
			if a >= 0x80 {
				wantA = 0xFF
			}
			if got.A() != wantA {
				t.Fatalf("%v round trip alpha = %#x, want %#x", orig, got.A(), wantA)
			}
		}
	}
}

func TestPackedRoundTrip16(t *testing.T) {
	for w := 0; w <= 0xFFFF; w++ {
		if got := RGBA5551(uint16(w)).Uint16(); got != uint16(w) {
			t.Fatalf("RGBA5551(%#04x).Uint16() = %#04x", w, got)
		}
	}
}

func TestPackedRoundTrip32(t *testing.T) {
	f := func(w uint32) bool {
		return RGBA8888(w).Uint32() == w
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 10000}); err != nil {
		t.Error(err)
	}
}

func TestBasicColorsAgree(t *testing.T) {
	tests := []struct {
		name string
		a    RGBA8888
		b    RGBA5551
	}{
		{"black", Black8888, Black5551},
		{"red", Red8888, Red5551},
		{"green", Green8888, Green5551},
		{"blue", Blue8888, Blue5551},
		{"yellow", Yellow8888, Yellow5551},
		{"magenta", Magenta8888, Magenta5551},
		{"cyan", Cyan8888, Cyan5551},
		{"white", White8888, White5551},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.RGBA5551(); got != tt.b {
				t.Errorf("%v.RGBA5551() = %v, want %v", tt.a, got, tt.b)
			}
			if got := tt.b.RGBA8888(); got != tt.a {
				t.Errorf("%v.RGBA8888() = %v, want %v", tt.b, got, tt.a)
			}
		})
	}
}

func TestBasicEnum(t *testing.T) {
	for b := BasicBlack; b <= BasicWhite; b++ {
		r, g, bl, a := b.RGBA8888().Channels()
		want := func(bit Basic) uint8 {
			if b&bit != 0 {
				return 0xFF
			}
			return 0
		}
		if r != want(BasicRed) || g != want(BasicGreen) || bl != want(BasicBlue) || a != 0xFF {
			t.Errorf("%v.RGBA8888() = %v, channel bits do not match", b, b.RGBA8888())
		}
		if got := BasicColor[RGBA5551](b); got != b.RGBA5551() {
			t.Errorf("BasicColor[RGBA5551](%v) = %v, want %v", b, got, b.RGBA5551())
		}
		if got := BasicColor[RGBA8888](b); got != b.RGBA8888() {
			t.Errorf("BasicColor[RGBA8888](%v) = %v, want %v", b, got, b.RGBA8888())
		}
	}
}

func TestMax(t *testing.T) {
	if got := Max[RGBA8888](); got != 0xFF {
		t.Errorf("Max[RGBA8888]() = %#x, want 0xff", got)
	}
	if got := Max[RGBA5551](); got != 0x1F {
		t.Errorf("Max[RGBA5551]() = %#x, want 0x1f", got)
	}
}

func TestChannelExtraction5551(t *testing.T) {
	for r := uint8(0); r < 32; r++ {
		for g := uint8(0); g < 32; g++ {
			for b := uint8(0); b < 32; b++ {
				for a := uint8(0); a < 2; a++ {
					c := NewRGBA5551(MustU5(r), MustU5(g), MustU5(b), MustU1(a))
					gr, gg, gb, ga := c.Channels()
					if gr != r || gg != g || gb != b || ga != a {
						t.Fatalf("NewRGBA5551(%d, %d, %d, %d).Channels() = %d, %d, %d, %d",
							r, g, b, a, gr, gg, gb, ga)
					}
				}
			}
		}
	}
}

func TestChannelExtraction8888(t *testing.T) {
	for v := 0; v < 256; v++ {
		x := uint8(v)
		tests := []struct {
			c          RGBA8888
			r, g, b, a uint8
		}{
			{NewRGBA8888(x, 0, 0, 0), x, 0, 0, 0},
			{NewRGBA8888(0, x, 0, 0), 0, x, 0, 0},
			{NewRGBA8888(0, 0, x, 0), 0, 0, x, 0},
			{NewRGBA8888(0, 0, 0, x), 0, 0, 0, x},
			{NewRGBA8888(x, ^x, x>>1, x<<1), x, ^x, x >> 1, x << 1},
		}
		for _, tt := range tests {
			r, g, b, a := tt.c.Channels()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Fatalf("%v.Channels() = %d, %d, %d, %d, want %d, %d, %d, %d",
					tt.c, r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		}
	}
}

func TestPackedLayout(t *testing.T) {
	if got := NewRGBA8888(0x12, 0x34, 0x56, 0x78); got != 0x12345678 {
		t.Errorf("NewRGBA8888 = %#08x, want 0x12345678", uint32(got))
	}
	if got := NewRGBA5551(MustU5(1), MustU5(2), MustU5(3), Opaque); got != 1<<11|2<<6|3<<1|1 {
		t.Errorf("NewRGBA5551 = %#04x, want %#04x", uint16(got), 1<<11|2<<6|3<<1|1)
	}
}

func TestConvert8888To5551(t *testing.T) {
	tests := []struct {
		name string
		in   RGBA8888
		want RGBA5551
	}{
		{"truncate low bits", NewRGBA8888(0x07, 0x0F, 0xF8, 0xFF), 0<<11 | 1<<6 | 0x1F<<1 | 1},
		{"alpha below half", NewRGBA8888(0, 0, 0, 0x7F), 0},
		{"alpha at half", NewRGBA8888(0, 0, 0, 0x80), 1},
		{"transparent white", NewRGBA8888(0xFF, 0xFF, 0xFF, 0), 0xFFFE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.RGBA5551(); got != tt.want {
				t.Errorf("%v.RGBA5551() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpand5(t *testing.T) {
	tests := []struct {
		in   uint8
		want uint8
	}{
		{0, 0},
		{1, 0x08},
		{0x10, 0x84},
		{0x1F, 0xFF},
	}
	for _, tt := range tests {
		if got := Expand5(MustU5(tt.in)); got != tt.want {
			t.Errorf("Expand5(%d) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestLinear(t *testing.T) {
	if got := NewRGBA8888Linear(0xFF, 0x80, 0x10, 0x42); got != NewRGBA8888(0xFE, 0x40, 0x01, 0x42) {
		t.Errorf("NewRGBA8888Linear = %v, want %v", got, NewRGBA8888(0xFE, 0x40, 0x01, 0x42))
	}
	got := NewRGBA5551Linear(MustU5(31), MustU5(16), MustU5(4), Transparent)
	want := NewRGBA5551(MustU5(30), MustU5(8), MustU5(0), Transparent)
	if got != want {
		t.Errorf("NewRGBA5551Linear = %v, want %v", got, want)
	}
}

func TestU5Range(t *testing.T) {
	if _, err := NewU5(31); err != nil {
		t.Errorf("NewU5(31) error = %v", err)
	}
	if _, err := NewU5(32); !errors.Is(err, ErrChannelRange) {
		t.Errorf("NewU5(32) error = %v, want ErrChannelRange", err)
	}
	if _, err := NewU1(2); !errors.Is(err, ErrChannelRange) {
		t.Errorf("NewU1(2) error = %v, want ErrChannelRange", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("MustU5(40) did not panic")
		}
	}()
	MustU5(40)
}

func TestColorInterface(t *testing.T) {
	r, g, b, a := Red5551.RGBA()
	if r != 0xFFFF || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("Red5551.RGBA() = %#x, %#x, %#x, %#x", r, g, b, a)
	}

	// Transparent colors premultiply to zero.
	r, _, _, a = NewRGBA8888(0xFF, 0, 0, 0).RGBA()
	if r != 0 || a != 0 {
		t.Errorf("transparent red RGBA() = r %#x a %#x, want 0, 0", r, a)
	}
}

func TestModels(t *testing.T) {
	tests := []struct {
		name  string
		model color.Model
		in    color.Color
		want  color.Color
	}{
		{"rgba to 8888", RGBA8888Model, color.RGBA{R: 0xFF, G: 0x80, A: 0xFF}, NewRGBA8888(0xFF, 0x80, 0, 0xFF)},
		{"5551 to 8888", RGBA8888Model, Cyan5551, Cyan8888},
		{"8888 to 5551", RGBA5551Model, Magenta8888, Magenta5551},
		{"white to 5551", RGBA5551Model, color.White, White5551},
		{"5551 identity", RGBA5551Model, RGBA5551(0x1234), RGBA5551(0x1234)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.Convert(tt.in); got != tt.want {
				t.Errorf("Convert(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if got := Convert[RGBA5551](color.Black); got != Black5551 {
		t.Errorf("Convert[RGBA5551](color.Black) = %v, want %v", got, Black5551)
	}
	if ModelOf[RGBA5551]() != RGBA5551Model || ModelOf[RGBA8888]() != RGBA8888Model {
		t.Error("ModelOf returned the wrong model")
	}
}

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		f     Format
		bpp   int
		max   uint8
		name  string
		valid bool
	}{
		{FormatRGBA8888, 4, 0xFF, "RGBA8888", true},
		{FormatRGBA5551, 2, 0x1F, "RGBA5551", true},
		{formatCount, 0, 0, "Unknown", false},
	}
	for _, tt := range tests {
		if got := tt.f.BytesPerPixel(); got != tt.bpp {
			t.Errorf("%v.BytesPerPixel() = %d, want %d", tt.f, got, tt.bpp)
		}
		if got := tt.f.Info().MaxChannel; got != tt.max {
			t.Errorf("%v.Info().MaxChannel = %#x, want %#x", tt.f, got, tt.max)
		}
		if got := tt.f.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.f.IsValid(); got != tt.valid {
			t.Errorf("%v.IsValid() = %v, want %v", tt.f, got, tt.valid)
		}
	}
	if got := FormatRGBA5551.ImageBytes(320, 240); got != 153600 {
		t.Errorf("ImageBytes(320, 240) = %d, want 153600", got)
	}
}

func BenchmarkRGBA8888ToRGBA5551(b *testing.B) {
	c := NewRGBA8888(0x12, 0x34, 0x56, 0xFF)
	var sink RGBA5551
	for b.Loop() {
		sink = c.RGBA5551()
	}
	_ = sink
}

func BenchmarkRGBA5551ToRGBA8888(b *testing.B) {
	c := RGBA5551(0x1234)
	var sink RGBA8888
	for b.Loop() {
		sink = c.RGBA8888()
	}
	_ = sink
}
