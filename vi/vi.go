// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vi programs the video interface to scan out a framebuffer, and
// models the display side on the host.
package vi

import (
	stderrors "errors"
	"fmt"

	"github.com/go-errors/errors"

	"github.com/gogpu/n64gfx"
	"github.com/gogpu/n64gfx/arena"
	"github.com/gogpu/n64gfx/pixel"
)

// TVType is the video standard reported by the boot code.
type TVType uint32

// TV standards, in boot code order.
const (
	PAL TVType = iota
	NTSC
	MPAL
)

func (t TVType) String() string {
	switch t {
	case PAL:
		return "PAL"
	case NTSC:
		return "NTSC"
	case MPAL:
		return "MPAL"
	default:
		return fmt.Sprintf("TVType(%d)", uint32(t))
	}
}

// Console re-exports n64gfx.Console for callers of Setup.
type Console = n64gfx.Console

// Console variants.
const (
	N64  = n64gfx.N64
	IQue = n64gfx.IQue
)

// Control register fields.
const (
	DepthBlank = 0
	Depth16    = 2
	Depth32    = 3
	depthMask  = 3

	AAResampleOnly    = 2 << 8
	pixelAdvanceShift = 12
)

// timings holds burst, v_sync, h_sync, h_sync_leap, h_video, v_video and
// v_burst for each TVType.
var timings = [...][7]uint32{
	PAL:  {0x4233A, 0x271, 0x150C69, 0xC6F0C6E, 0x800300, 0x2D026D, 0x9026B},
	NTSC: {0x3E52239, 0x20D, 0xC15, 0xC150C15, 0x6C02EC, 0x230203, 0xE0204},
	MPAL: {0x651E39, 0x20D, 0x40C11, 0xC190C1A, 0x6C02EC, 0x2501FF, 0xE0204},
}

var timingRegs = [7]Reg{RegBurst, RegVSync, RegHSync, RegHSyncLeap, RegHVideo, RegVVideo, RegVBurst}

// Framebuffer is what the VI needs to know about a surface.
type Framebuffer interface {
	Addr() arena.Addr
	Width() uint16
	Height() uint16
	Format() pixel.Format
}

// ErrDepth reports a pixel format or control depth the VI cannot scan.
var ErrDepth = stderrors.New("vi: unsupported color depth")

// depthOf maps a pixel format to its control register depth.
func depthOf(f pixel.Format) (uint32, error) {
	switch f {
	case pixel.FormatRGBA5551:
		return Depth16, nil
	case pixel.FormatRGBA8888:
		return Depth32, nil
	default:
		return 0, errors.WrapPrefix(ErrDepth, f.String(), 0)
	}
}

// Setup programs regs to display fb. Unknown TV types use the PAL
// timings. The width register is written last, after a vertical blank,
// which starts scan-out.
func Setup(regs Registers, fb Framebuffer, tv TVType, console Console) error {
	depth, err := depthOf(fb.Format())
	if err != nil {
		return err
	}
	if int(tv) >= len(timings) {
		tv = PAL
	}
	w, h := uint32(fb.Width()), uint32(fb.Height())

	write(regs, RegVCurrent, 0)
	write(regs, RegCtrl, 0)
	write(regs, RegOrigin, uint32(fb.Addr()))
	write(regs, RegWidth, 0)
	write(regs, RegVIntr, 2)
	for i, r := range timingRegs {
		write(regs, r, timings[tv][i])
	}
	write(regs, RegXScale, 0x100*w/160)
	write(regs, RegYScale, 0x100*h/60)

	advance := uint32(3)
	if console != N64 {
		advance = 2
	}
	write(regs, RegCtrl, depth|AAResampleOnly|advance<<pixelAdvanceShift)

	WaitVBlank(regs)
	write(regs, RegWidth, w)

	n64gfx.Logger().Info("vi: mode set",
		"tv", tv, "width", w, "height", h, "format", fb.Format(), "origin", fb.Addr())
	return nil
}

// WaitVBlank spins until the beam reaches line 2 of either field, then
// acknowledges the interrupt.
func WaitVBlank(regs Registers) {
	for regs.Read(RegVCurrent)&^1 != 2 {
	}
	regs.Write(RegVCurrent, 0)
}

func write(regs Registers, r Reg, v uint32) {
	n64gfx.Logger().Debug("vi: write", "reg", r, "value", fmt.Sprintf("%#x", v))
	regs.Write(r, v)
}
