// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vi

import (
	"fmt"
	"sync"
)

// Reg indexes a video interface register.
type Reg int

// VI registers in address order.
const (
	RegCtrl Reg = iota
	RegOrigin
	RegWidth
	RegVIntr
	RegVCurrent
	RegBurst
	RegVSync
	RegHSync
	RegHSyncLeap
	RegHVideo
	RegVVideo
	RegVBurst
	RegXScale
	RegYScale

	regCount
)

var regNames = [regCount]string{
	"ctrl", "origin", "width", "v_intr", "v_current", "burst", "v_sync",
	"h_sync", "h_sync_leap", "h_video", "v_video", "v_burst", "x_scale", "y_scale",
}

func (r Reg) String() string {
	if r >= 0 && r < regCount {
		return regNames[r]
	}
	return fmt.Sprintf("Reg(%d)", int(r))
}

// Registers is the CPU's view of the video interface.
type Registers interface {
	Read(r Reg) uint32
	Write(r Reg, v uint32)
}

// defaultVSync is used by RegisterFile before v_sync is programmed.
const defaultVSync = 0x20D

// RegisterFile is a host model of the VI register bank.
//
// Each read of v_current moves the beam two half-lines, wrapping at
// v_sync, so code polling for a line terminates. Writing v_current
// acknowledges the line interrupt and leaves the beam where it is.
// A RegisterFile is safe for concurrent use.
type RegisterFile struct {
	mu   sync.Mutex
	regs [regCount]uint32
	line uint32
	acks int
}

// NewRegisterFile returns a register file in its power-on state.
func NewRegisterFile() *RegisterFile {
	return &RegisterFile{}
}

// Read implements Registers.
func (f *RegisterFile) Read(r Reg) uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r != RegVCurrent {
		return f.regs[r]
	}
	v := f.line
	vsync := f.regs[RegVSync]
	if vsync == 0 {
		vsync = defaultVSync
	}
	f.line = (f.line + 2) % vsync
	return v
}

// Write implements Registers.
func (f *RegisterFile) Write(r Reg, v uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r == RegVCurrent {
		f.acks++
		return
	}
	f.regs[r] = v
}

// Peek returns a register without side effects.
func (f *RegisterFile) Peek(r Reg) uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r == RegVCurrent {
		return f.line
	}
	return f.regs[r]
}

// Acks returns how many times the line interrupt was acknowledged.
func (f *RegisterFile) Acks() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.acks
}
