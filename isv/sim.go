// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package isv

import (
	"io"
	"sync"

	"github.com/go-errors/errors"
)

// SimBus emulates the cartridge side of the viewer on the host. Raising
// the token to Magic prints buffer[read:write] to Out and marks it
// consumed.
type SimBus struct {
	// Present false models a cartridge without a viewer: writes are not
	// latched and every register reads as zero.
	Present bool

	// Out receives the printed text. Nil discards it.
	Out io.Writer

	mu   sync.Mutex
	regs [8]uint32
	buf  [BufferLen]byte
	err  error
}

// NewSimBus returns a present viewer printing to out.
func NewSimBus(out io.Writer) *SimBus {
	return &SimBus{Present: true, Out: out}
}

// ReadReg implements Bus.
func (b *SimBus) ReadReg(i int) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.Present {
		return 0
	}
	return b.regs[i]
}

// WriteReg implements Bus.
func (b *SimBus) WriteReg(i int, v uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.Present {
		return
	}
	b.regs[i] = v
	if i == RegToken && v == Magic {
		b.drain()
	}
}

func (b *SimBus) drain() {
	r, w := b.regs[RegRead], b.regs[RegWrite]
	if w <= r || w > BufferLen {
		return
	}
	if b.Out != nil && b.err == nil {
		_, b.err = b.Out.Write(b.buf[r:w])
	}
	b.regs[RegRead] = w
}

// DMAWrite implements Bus. Transfers outside the buffer panic, as a
// stray DMA would corrupt cartridge space.
func (b *SimBus) DMAWrite(offset uint32, p []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if offset < BufferOffset || uint64(offset)+uint64(len(p)) > BufferOffset+BufferLen {
		panic(errors.Errorf("isv: DMA of %d bytes at %#x outside the buffer", len(p), offset))
	}
	if !b.Present {
		return
	}
	copy(b.buf[offset-BufferOffset:], p)
}

// Err returns the first error from Out.
func (b *SimBus) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}
