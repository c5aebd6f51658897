// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides pixel buffers over arena memory.
//
// A Surface owns a dense, row-major block of width*height packed pixels
// allocated from an arena.Provider. The block is accessed through its
// uncached mapping, so ordinary writes are visible to the display hardware
// without a cache flush. Pairing creation with Close returns the block to
// the provider with the exact layout it was allocated with.
//
// # Surface Kinds
//
//   - General: 16-byte alignment, for scratch buffers and textures
//   - Framebuffer: 1 MiB alignment, for buffers scanned by the video interface
//
// # Usage
//
//	heap := arena.NewHeap()
//	fb := surface.New[pixel.RGBA5551](heap, 320, 240, surface.Framebuffer)
//	defer fb.Close()
//
//	fb.Clear(pixel.Blue5551)
//	fb.DrawPoints(slices.Values([]surface.Point[pixel.RGBA5551]{
//	    {Pos: image.Pt(10, 10), Color: pixel.White5551},
//	}))
//
// Surfaces are NOT safe for concurrent use and must not be copied. Double
// buffering and tear avoidance are left to the caller.
package surface
