// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package arena defines the memory provider boundary used by surfaces and
// provides Heap, a host-side model of the console's RDRAM.
//
// The console CPU sees physical memory twice: through KSEG0, which goes
// through the data cache, and through KSEG1, which bypasses it. Hardware
// such as the video interface reads RDRAM directly, so buffers it scans are
// accessed through KSEG1 to make every store visible without a cache flush.
// The allocator only deals in KSEG0 addresses. Code outside this package
// never manipulates address bits; it asks a Provider for the mapping.
package arena

import (
	"errors"
	"fmt"
)

// Common errors for arena operations.
var (
	// ErrOutOfMemory is returned when no free block satisfies a layout.
	ErrOutOfMemory = errors.New("arena: out of memory")

	// ErrBadFree reports a deallocation that does not match a live block.
	ErrBadFree = errors.New("arena: bad free")

	// ErrBadLayout reports an alignment that is not a power of two.
	ErrBadLayout = errors.New("arena: invalid layout")
)

// Addr is a virtual address in the CPU's 32-bit address space.
type Addr uint32

// Segment bases and masks of the MIPS address space.
const (
	KSEG0 Addr = 0x80000000
	KSEG1 Addr = 0xA0000000

	segmentMask  Addr = 0xE0000000
	uncachedBit  Addr = 0x20000000
	physicalMask Addr = ^segmentMask
)

// Physical returns the physical address behind a.
func (a Addr) Physical() uint32 { return uint32(a & physicalMask) }

// IsCached reports whether a lies in KSEG0.
func (a Addr) IsCached() bool { return a&segmentMask == KSEG0 }

// IsUncached reports whether a lies in KSEG1.
func (a Addr) IsUncached() bool { return a&segmentMask == KSEG1 }

// IsAligned reports whether a is a multiple of align.
func (a Addr) IsAligned(align uint32) bool {
	return align != 0 && uint32(a)%align == 0
}

func (a Addr) String() string { return fmt.Sprintf("%#08x", uint32(a)) }

// Uncached maps a KSEG0 address to its KSEG1 alias.
func Uncached(a Addr) Addr { return a | uncachedBit }

// Cached maps a KSEG1 address back to its KSEG0 alias.
func Cached(a Addr) Addr { return a &^ uncachedBit }

// Layout is the size and alignment of a memory block. Deallocation must
// present the same Layout the block was allocated with.
type Layout struct {
	Size  uint32
	Align uint32
}

// Validate checks that the alignment is a non-zero power of two.
func (l Layout) Validate() error {
	if l.Align == 0 || l.Align&(l.Align-1) != 0 {
		return fmt.Errorf("%w: alignment %d is not a power of two", ErrBadLayout, l.Align)
	}
	return nil
}

// Memory resolves addresses to host-visible bytes.
type Memory interface {
	// Bytes returns the n bytes starting at a. Both KSEG0 and KSEG1
	// aliases of the same physical range return the same bytes.
	Bytes(a Addr, n uint32) []byte
}

// Provider supplies aligned, physically addressable memory.
//
// Allocate returns a cached (KSEG0) address. Deallocate must be given the
// cached address and the Layout used to allocate it.
type Provider interface {
	Memory

	Allocate(l Layout) (Addr, error)
	Deallocate(a Addr, l Layout)

	// Uncached and Cached translate between the two views of a block.
	Uncached(a Addr) Addr
	Cached(a Addr) Addr
}
