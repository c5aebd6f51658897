// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"math"
	"unsafe"

	"github.com/go-errors/errors"

	"github.com/gogpu/n64gfx"
	"github.com/gogpu/n64gfx/arena"
	"github.com/gogpu/n64gfx/pixel"
)

// Purpose selects the alignment class of a Surface.
type Purpose uint8

const (
	// General surfaces are aligned to 16 bytes.
	General Purpose = iota

	// Framebuffer surfaces are aligned to 1 MiB so the video interface
	// can scan them directly.
	Framebuffer
)

// Alignments of the two purposes.
const (
	GeneralAlign     = 16
	FramebufferAlign = 1 << 20
)

// Align returns the alignment requested for this purpose.
func (p Purpose) Align() uint32 {
	if p == Framebuffer {
		return FramebufferAlign
	}
	return GeneralAlign
}

func (p Purpose) String() string {
	if p == Framebuffer {
		return "framebuffer"
	}
	return "general"
}

// Layout returns the size and alignment of a width x height surface of
// pixel type P. Alignment is never below 16 bytes or the pixel size.
// Sizes beyond the 32-bit address space saturate, which no provider can
// satisfy.
func Layout[P pixel.Packed](width, height uint16, purpose Purpose) arena.Layout {
	var p P
	bpp := uint32(p.Format().BytesPerPixel())
	size := uint64(width) * uint64(height) * uint64(bpp)
	return arena.Layout{
		Size:  uint32(min(size, math.MaxUint32)),
		Align: max(purpose.Align(), GeneralAlign, bpp),
	}
}

// Surface is a width x height pixel buffer of type P in arena memory.
//
// A Surface exclusively owns its block from New until Close. Dimensions
// are fixed; resizing means creating a new Surface.
type Surface[P pixel.Packed] struct {
	provider arena.Provider
	addr     arena.Addr // uncached
	pix      []P
	width    uint16
	height   uint16
	purpose  Purpose
	closed   bool
}

// New allocates a surface from provider.
//
// Allocation failure is not recoverable on the console: New logs the
// failure and panics with a *errors.Error carrying the stack.
func New[P pixel.Packed](provider arena.Provider, width, height uint16, purpose Purpose) *Surface[P] {
	l := Layout[P](width, height, purpose)
	cached, err := provider.Allocate(l)
	if err != nil {
		n64gfx.Logger().Error("surface allocation failed",
			"width", width, "height", height, "size", l.Size, "align", l.Align, "err", err)
		panic(errors.WrapPrefix(err, fmt.Sprintf("memory allocation of %d bytes failed", l.Size), 0))
	}

	s := &Surface[P]{
		provider: provider,
		addr:     provider.Uncached(cached),
		width:    width,
		height:   height,
		purpose:  purpose,
	}
	if n := s.Len(); n > 0 {
		b := provider.Bytes(s.addr, l.Size)
		s.pix = unsafe.Slice((*P)(unsafe.Pointer(unsafe.SliceData(b))), n)
	}

	n64gfx.Logger().Debug("surface created",
		"format", s.Format(), "width", width, "height", height, "purpose", purpose, "addr", s.addr)
	return s
}

// Close returns the block to the provider, translating back to the
// cached address and recomputing the creation layout. Close is idempotent;
// the surface must not be used afterwards.
func (s *Surface[P]) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.pix = nil
	s.provider.Deallocate(s.provider.Cached(s.addr), Layout[P](s.width, s.height, s.purpose))
	n64gfx.Logger().Debug("surface closed", "addr", s.addr)
	return nil
}

// Addr returns the uncached base address, for handing the buffer to
// hardware. No bounds are enforced on accesses derived from it.
func (s *Surface[P]) Addr() arena.Addr { return s.addr }

// Pix returns the buffer as exactly Len pixels in row-major order.
// Writes through the slice go straight to memory.
func (s *Surface[P]) Pix() []P { return s.pix }

// Width returns the width in pixels.
func (s *Surface[P]) Width() uint16 { return s.width }

// Height returns the height in pixels.
func (s *Surface[P]) Height() uint16 { return s.height }

// Len returns the number of pixels.
func (s *Surface[P]) Len() int { return int(s.width) * int(s.height) }

// IsEmpty reports whether the surface has no pixels.
func (s *Surface[P]) IsEmpty() bool { return s.width == 0 || s.height == 0 }

// Size returns the dimensions as a point.
func (s *Surface[P]) Size() image.Point { return image.Pt(int(s.width), int(s.height)) }

// Format returns the pixel format of P.
func (s *Surface[P]) Format() pixel.Format {
	var p P
	return p.Format()
}

// Purpose returns the alignment class chosen at creation.
func (s *Surface[P]) Purpose() Purpose { return s.purpose }
