// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package arena

import (
	"fmt"
	"sort"
	"sync"
	"unsafe"

	"github.com/go-errors/errors"

	"github.com/gogpu/n64gfx"
)

// Heap geometry defaults.
const (
	// DefaultSize is the RDRAM size with the expansion pak installed.
	DefaultSize = 8 << 20

	// DefaultReserved is the low memory holding the boot image and bss.
	DefaultReserved = 0x80000

	// StackSize is kept free at the top of RDRAM for the boot stack.
	StackSize = 0x10000

	// MinAlign is the smallest alignment the heap hands out.
	MinAlign = 16
)

// HeapOption configures a Heap during creation.
type HeapOption func(*heapOptions)

type heapOptions struct {
	size     uint32
	reserved uint32
}

// WithSize sets the simulated RDRAM size in bytes. 4 MiB models a console
// without the expansion pak.
func WithSize(n uint32) HeapOption {
	return func(o *heapOptions) {
		o.size = n
	}
}

// WithReserved sets how much low memory precedes the heap.
func WithReserved(n uint32) HeapOption {
	return func(o *heapOptions) {
		o.reserved = n
	}
}

// segment is a contiguous span of the heap, either free or holding one
// allocation. Segments are kept sorted by offset and cover the heap exactly.
type segment struct {
	off    uint32
	size   uint32
	used   bool
	layout Layout
}

// Heap is a best-fit allocator over a simulated RDRAM, implementing
// Provider. It is safe for concurrent use.
type Heap struct {
	mu       sync.Mutex
	ram      []byte
	start    uint32
	end      uint32
	segments []segment
	live     int
}

// NewHeap creates a heap spanning RDRAM from the reserved area to the
// boot stack.
func NewHeap(opts ...HeapOption) *Heap {
	o := heapOptions{size: DefaultSize, reserved: DefaultReserved}
	for _, opt := range opts {
		opt(&o)
	}

	size := alignUp(o.size, 8)
	// uint64 backing keeps every MinAlign-aligned offset aligned on the
	// host as well, so surfaces can view it as []uint16 or []uint32.
	words := make([]uint64, size/8)
	ram := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), size)

	start := alignUp(o.reserved, MinAlign)
	var end uint32
	if size > StackSize {
		end = size - StackSize
	}
	if start > end {
		start = end
	}

	h := &Heap{
		ram:   ram,
		start: start,
		end:   end,
	}
	if end > start {
		h.segments = []segment{{off: start, size: end - start}}
	}
	return h
}

// Allocate finds the smallest free segment that fits l once aligned and
// returns its KSEG0 address. A zero-sized layout still receives a distinct
// address.
func (h *Heap) Allocate(l Layout) (Addr, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	align := max(l.Align, MinAlign)
	size := alignUp(max(l.Size, 1), MinAlign)
	if size < l.Size {
		return 0, fmt.Errorf("%w: %d bytes exceeds the address space", ErrOutOfMemory, l.Size)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	best := -1
	var bestStart, bestDiff uint32
	for i, s := range h.segments {
		if s.used {
			continue
		}
		p := alignUp(s.off, align)
		if p < s.off || p-s.off+size > s.size || p-s.off+size < size {
			continue
		}
		diff := s.size - (p - s.off + size)
		if best < 0 || diff < bestDiff {
			best, bestStart, bestDiff = i, p, diff
		}
	}
	if best < 0 {
		n64gfx.Logger().Debug("heap allocation failed",
			"size", l.Size, "align", l.Align, "free", h.free())
		return 0, fmt.Errorf("%w: %d bytes aligned to %d", ErrOutOfMemory, l.Size, l.Align)
	}

	s := h.segments[best]
	split := make([]segment, 0, 3)
	if pad := bestStart - s.off; pad > 0 {
		split = append(split, segment{off: s.off, size: pad})
	}
	split = append(split, segment{off: bestStart, size: size, used: true, layout: l})
	if tail := s.off + s.size - (bestStart + size); tail > 0 {
		split = append(split, segment{off: bestStart + size, size: tail})
	}
	h.segments = append(h.segments[:best], append(split, h.segments[best+1:]...)...)
	h.live++

	a := KSEG0 | Addr(bestStart)
	n64gfx.Logger().Debug("heap allocate", "addr", a, "size", l.Size, "align", l.Align)
	return a, nil
}

// Deallocate returns a block to the heap. a must be the KSEG0 address
// returned by Allocate and l the Layout it was allocated with; anything
// else corrupts allocator state on hardware and panics here.
func (h *Heap) Deallocate(a Addr, l Layout) {
	if !a.IsCached() {
		panic(errors.Errorf("%w: %v is not a cached address", ErrBadFree, a))
	}
	off := a.Physical()

	h.mu.Lock()
	defer h.mu.Unlock()

	i := sort.Search(len(h.segments), func(i int) bool { return h.segments[i].off >= off })
	if i == len(h.segments) || h.segments[i].off != off || !h.segments[i].used {
		panic(errors.Errorf("%w: no live block at %v", ErrBadFree, a))
	}
	if got := h.segments[i].layout; got != l {
		panic(errors.Errorf("%w: block at %v allocated as %+v, freed as %+v", ErrBadFree, a, got, l))
	}

	h.segments[i].used = false
	h.segments[i].layout = Layout{}
	h.live--

	// Coalesce with the following then the preceding free neighbour.
	if i+1 < len(h.segments) && !h.segments[i+1].used {
		h.segments[i].size += h.segments[i+1].size
		h.segments = append(h.segments[:i+1], h.segments[i+2:]...)
	}
	if i > 0 && !h.segments[i-1].used {
		h.segments[i-1].size += h.segments[i].size
		h.segments = append(h.segments[:i], h.segments[i+1:]...)
	}

	n64gfx.Logger().Debug("heap free", "addr", a, "size", l.Size, "align", l.Align)
}

// Uncached implements Provider.
func (h *Heap) Uncached(a Addr) Addr { return Uncached(a) }

// Cached implements Provider.
func (h *Heap) Cached(a Addr) Addr { return Cached(a) }

// Bytes implements Memory. Access outside KSEG0/KSEG1 or past the end of
// RDRAM panics, as a bus error would halt the console.
func (h *Heap) Bytes(a Addr, n uint32) []byte {
	if !a.IsCached() && !a.IsUncached() {
		panic(errors.Errorf("arena: %v is not a direct-mapped address", a))
	}
	p := a.Physical()
	if uint64(p)+uint64(n) > uint64(len(h.ram)) {
		panic(errors.Errorf("arena: access %v+%d beyond %d bytes of RDRAM", a, n, len(h.ram)))
	}
	return h.ram[p : p+n : p+n]
}

// Size returns the simulated RDRAM size.
func (h *Heap) Size() uint32 { return uint32(len(h.ram)) }

// Free returns the number of bytes not held by live allocations.
func (h *Heap) Free() uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.free()
}

func (h *Heap) free() uint32 {
	var n uint32
	for _, s := range h.segments {
		if !s.used {
			n += s.size
		}
	}
	return n
}

// Live returns the number of outstanding allocations.
func (h *Heap) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.live
}

// Fragments returns the number of free segments.
func (h *Heap) Fragments() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, s := range h.segments {
		if !s.used {
			n++
		}
	}
	return n
}

func alignUp(v, align uint32) uint32 {
	return (v + align - 1) &^ (align - 1)
}

var _ Provider = (*Heap)(nil)
