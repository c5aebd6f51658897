// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vi

import (
	"encoding/binary"
	stderrors "errors"
	"image"

	"github.com/go-errors/errors"

	"github.com/gogpu/n64gfx/arena"
	"github.com/gogpu/n64gfx/pixel"
)

// ErrBlank is returned by Scan while the display is off.
var ErrBlank = stderrors.New("vi: display blanked")

// Scan decodes the picture regs currently display from mem. The VI
// ignores alpha, so the result is opaque.
//
// The height is recovered from y_scale, rounding up so that heights set
// by Setup survive the round trip.
func Scan(regs Registers, mem arena.Memory) (*image.RGBA, error) {
	ctrl := regs.Read(RegCtrl)
	w := regs.Read(RegWidth)
	if ctrl&depthMask == DepthBlank || w == 0 {
		return nil, ErrBlank
	}

	var bpp uint32
	switch ctrl & depthMask {
	case Depth16:
		bpp = 2
	case Depth32:
		bpp = 4
	default:
		return nil, errors.WrapPrefix(ErrDepth, "ctrl depth 1", 0)
	}

	h := (regs.Read(RegYScale)*60 + 0xFF) / 0x100
	origin := arena.KSEG1 | arena.Addr(arena.Addr(regs.Read(RegOrigin)).Physical())
	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	if h == 0 {
		return img, nil
	}
	src := mem.Bytes(origin, w*h*bpp)

	for i, o := 0, 0; o < len(img.Pix); i, o = i+int(bpp), o+4 {
		var c pixel.RGBA8888
		if bpp == 2 {
			c = pixel.RGBA5551(binary.NativeEndian.Uint16(src[i:])).RGBA8888()
		} else {
			c = pixel.RGBA8888(binary.NativeEndian.Uint32(src[i:]))
		}
		img.Pix[o+0] = c.R()
		img.Pix[o+1] = c.G()
		img.Pix[o+2] = c.B()
		img.Pix[o+3] = 0xFF
	}
	return img, nil
}
