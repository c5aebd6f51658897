// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package isv writes debug text to the IS-Viewer 64 development cartridge.
//
// The viewer exposes a small register window and a ring buffer in
// cartridge space. The CPU copies text into the buffer with a PI DMA,
// publishes the read and write offsets and raises the magic token; the
// viewer prints the bytes and moves the read offset up to the write
// offset. A Channel implements io.Writer over that handshake, so it can
// back fmt, log or slog output.
package isv

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-errors/errors"

	"github.com/gogpu/n64gfx"
)

// Register indices, in 32-bit words from the start of the window.
const (
	RegToken = 0
	RegRead  = 1
	RegWrite = 5
)

// Buffer geometry, in bytes from the start of the window.
const (
	BufferOffset = 0x20
	BufferLen    = 0x10000 - BufferOffset
)

// Magic is the token value ("IS64") that marks the buffer as ready.
const Magic = 0x49533634

// maxChunk leaves room for the DMA alignment slack.
const maxChunk = BufferLen - 8

// Errors returned by Init.
var (
	// ErrUnsupported is returned on consoles without a cartridge port.
	ErrUnsupported = stderrors.New("isv: console has no cartridge port")

	// ErrNotFound is returned when no viewer answers the handshake.
	ErrNotFound = stderrors.New("isv: no IS-Viewer present")
)

// Bus is the CPU's view of the viewer's cartridge window. Register
// accesses and DMA transfers block until the peripheral interface is idle.
type Bus interface {
	ReadReg(i int) uint32
	WriteReg(i int, v uint32)

	// DMAWrite copies p to offset bytes into the window.
	DMAWrite(offset uint32, p []byte)
}

// Option configures a Channel.
type Option func(*Channel)

// WithConsole sets the console variant. The default is n64gfx.N64.
func WithConsole(c n64gfx.Console) Option {
	return func(ch *Channel) {
		ch.console = c
	}
}

// Channel is a debug text channel. It is disabled until Init detects a
// viewer; writes to a disabled channel are discarded.
//
// A Channel is safe for concurrent use.
type Channel struct {
	bus     Bus
	console n64gfx.Console
	enabled atomic.Bool
	mu      sync.Mutex
}

// NewChannel returns a disabled channel over bus.
func NewChannel(bus Bus, opts ...Option) *Channel {
	ch := &Channel{bus: bus}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}

// Init probes for a viewer and enables the channel if one answers. The
// probe clears the token, and only if it reads back clear resets both
// offsets and writes Magic; the viewer is present when Magic reads back.
func (c *Channel) Init() error {
	if c.console != n64gfx.N64 {
		n64gfx.Logger().Debug("isv: skipped", "console", c.console)
		return errors.WrapPrefix(ErrUnsupported, c.console.String(), 0)
	}
	if err := c.probe(); err != nil {
		return err
	}
	// The logger may write to this channel, so log outside the lock.
	n64gfx.Logger().Info("isv: viewer found")
	return nil
}

func (c *Channel) probe() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.bus.WriteReg(RegToken, 0)
	if c.bus.ReadReg(RegToken) != 0 {
		return errors.WrapPrefix(ErrNotFound, "token did not clear", 0)
	}
	c.bus.WriteReg(RegRead, 0)
	c.bus.WriteReg(RegWrite, 0)
	c.bus.WriteReg(RegToken, Magic)
	if c.bus.ReadReg(RegToken) != Magic {
		return errors.WrapPrefix(ErrNotFound, "magic did not latch", 0)
	}
	c.enabled.Store(true)
	return nil
}

// Enabled reports whether Init found a viewer.
func (c *Channel) Enabled() bool { return c.enabled.Load() }

// Write sends p to the viewer in buffer-sized chunks, waiting for the
// viewer to drain each one. It never fails; a disabled channel reports
// the whole of p as written.
func (c *Channel) Write(p []byte) (int, error) {
	if !c.Enabled() || len(p) == 0 {
		return len(p), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for off := 0; off < len(p); off += maxChunk {
		c.put(p[off:min(off+maxChunk, len(p))])
	}
	return len(p), nil
}

func (c *Channel) put(chunk []byte) {
	for w := c.bus.ReadReg(RegWrite); w != c.bus.ReadReg(RegRead); {
		runtime.Gosched()
	}
	c.bus.WriteReg(RegToken, 0)

	// PI transfers move an even number of bytes.
	if len(chunk)%2 != 0 {
		padded := make([]byte, len(chunk)+1)
		copy(padded, chunk)
		c.bus.DMAWrite(BufferOffset, padded)
	} else {
		c.bus.DMAWrite(BufferOffset, chunk)
	}

	c.bus.WriteReg(RegRead, 0)
	c.bus.WriteReg(RegWrite, uint32(len(chunk)))
	c.bus.WriteReg(RegToken, Magic)
}

// Printf formats according to format and writes the result.
func (c *Channel) Printf(format string, args ...any) {
	fmt.Fprintf(c, format, args...)
}

// Println writes its operands followed by a newline.
func (c *Channel) Println(args ...any) {
	fmt.Fprintln(c, args...)
}
