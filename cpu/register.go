// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// A Flag identifies one bit of the processor status register.
type Flag byte

// Bits assigned to the processor status byte
const (
	Carry            Flag = 1 << 0 // C
	Zero             Flag = 1 << 1 // Z
	InterruptDisable Flag = 1 << 2 // I
	Decimal          Flag = 1 << 3 // D
	Break            Flag = 1 << 4 // B
	Reserved         Flag = 1 << 5 // always reads as 1
	Overflow         Flag = 1 << 6 // V
	Negative         Flag = 1 << 7 // N
)

// Registers contains the state of all 6502 registers.
type Registers struct {
	A  byte   // accumulator
	X  byte   // X indexing register
	Y  byte   // Y indexing register
	SP byte   // stack pointer ($100 + SP = stack memory location)
	PC uint16 // program counter
	PS byte   // processor status
}

// GetFlag returns true if the status flag is set.
func (r *Registers) GetFlag(f Flag) bool {
	return r.PS&byte(f) != 0
}

// SetFlag sets or clears a status flag. The reserved bit cannot be
// cleared.
func (r *Registers) SetFlag(f Flag, v bool) {
	if v {
		r.PS |= byte(f)
	} else {
		r.PS &^= byte(f)
	}
	r.PS |= byte(Reserved)
}

// SavePS returns the processor status as it is pushed onto the stack. The
// break bit is set if requested.
func (r *Registers) SavePS(brk bool) byte {
	ps := r.PS | byte(Reserved)
	if brk {
		ps |= byte(Break)
	} else {
		ps &^= byte(Break)
	}
	return ps
}

// RestorePS restores the processor status from a byte pulled off the
// stack. The break bit does not exist in the register, so it is dropped.
func (r *Registers) RestorePS(ps byte) {
	r.PS = (ps &^ byte(Break)) | byte(Reserved)
}

// Init initializes all registers to their power-on state. A, X, Y = 0.
// SP = 0xff. PC = 0. Only the reserved status bit is set.
func (r *Registers) Init() {
	r.A = 0
	r.X = 0
	r.Y = 0
	r.SP = 0xff
	r.PC = 0
	r.PS = byte(Reserved)
}

// Update the Zero and Negative flags based on the value of 'v'.
func (r *Registers) updateNZ(v byte) {
	r.SetFlag(Zero, v == 0)
	r.SetFlag(Negative, v&0x80 != 0)
}

// String returns the single-letter name of the flag.
func (f Flag) String() string {
	const letters = "CZIDB-VN"
	for i := 0; i < 8; i++ {
		if f == 1<<i {
			return letters[i : i+1]
		}
	}
	return "?"
}

func boolToByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
