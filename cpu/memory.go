// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "errors"

// Errors
var (
	ErrMemoryOutOfBounds = errors.New("memory access out of bounds")
)

// Fixed locations in the 6502 address space.
const (
	ZeroPage           = 0x0000
	StackPage          = 0x0100
	VectorReset        = 0xfffc
	VectorBRK          = 0xfffe
	DefaultResetVector = 0x8000
	MemorySize         = 64 * 1024
)

// The Memory interface presents an interface to the CPU through which all
// memory accesses occur.
type Memory interface {
	// LoadByte loads a single byte from the address and returns it.
	LoadByte(addr uint16) byte

	// LoadAddress loads a little-endian 16-bit address value from the
	// requested address and returns it. The high byte is read from
	// addr+1, wrapping at the end of the address space.
	LoadAddress(addr uint16) uint16

	// StoreByte stores a byte to the requested address.
	StoreByte(addr uint16, v byte)
}

// FlatMemory represents an entire 16-bit address space as a singular
// 64K buffer.
type FlatMemory struct {
	b [MemorySize]byte
}

// NewFlatMemory creates a new 16-bit memory space with every byte cleared
// and the reset vector pointing at DefaultResetVector.
func NewFlatMemory() *FlatMemory {
	m := &FlatMemory{}
	m.Init()
	return m
}

// Init clears memory and stores the default reset vector.
func (m *FlatMemory) Init() {
	m.b = [MemorySize]byte{}
	m.SetResetVector(DefaultResetVector)
}

// LoadByte loads a single byte from the address and returns it.
func (m *FlatMemory) LoadByte(addr uint16) byte {
	return m.b[addr]
}

// LoadAddress loads a 16-bit address value from the requested address and
// returns it.
func (m *FlatMemory) LoadAddress(addr uint16) uint16 {
	return uint16(m.b[addr]) | uint16(m.b[addr+1])<<8
}

// StoreByte stores a byte at the requested address.
func (m *FlatMemory) StoreByte(addr uint16, v byte) {
	m.b[addr] = v
}

// Load copies the bytes in 'b' into memory starting at address 'base'. If
// the bytes would extend past the end of the address space, nothing is
// copied and ErrMemoryOutOfBounds is returned.
func (m *FlatMemory) Load(base uint16, b []byte) error {
	if int(base)+len(b) > len(m.b) {
		return ErrMemoryOutOfBounds
	}
	copy(m.b[base:], b)
	return nil
}

// Dump returns a copy of the entire 64K memory image.
func (m *FlatMemory) Dump() []byte {
	b := make([]byte, len(m.b))
	copy(b, m.b[:])
	return b
}

// ResetVector returns the address stored at the reset vector.
func (m *FlatMemory) ResetVector() uint16 {
	return m.LoadAddress(VectorReset)
}

// SetResetVector stores 'addr' at the reset vector.
func (m *FlatMemory) SetResetVector(addr uint16) {
	m.b[VectorReset] = byte(addr)
	m.b[VectorReset+1] = byte(addr >> 8)
}

// Return the offset address 'addr' + 'offset'. If the offset
// crossed a page boundary, return 'pageCrossed' as true.
func offsetAddress(addr uint16, offset byte) (newAddr uint16, pageCrossed bool) {
	newAddr = addr + uint16(offset)
	pageCrossed = (newAddr & 0xff00) != (addr & 0xff00)
	return newAddr, pageCrossed
}

// Offset a zero-page address 'addr' by 'offset', wrapping within the zero
// page.
func offsetZeroPage(addr byte, offset byte) uint16 {
	return ZeroPage + uint16(addr+offset)
}

// Given a 1-byte stack pointer register, return the stack
// corresponding memory address.
func stackAddress(offset byte) uint16 {
	return StackPage + uint16(offset)
}
