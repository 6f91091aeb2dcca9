// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Mode describes a memory addressing mode.
type Mode byte

// All possible memory addressing modes
const (
	IMP Mode = iota // Implied (no operand)
	ACC             // Accumulator (no operand)
	IMM             // Immediate
	ZPG             // Zero Page
	ZPX             // Zero Page,X
	ZPY             // Zero Page,Y
	ABS             // Absolute
	ABX             // Absolute,X
	ABY             // Absolute,Y
	IND             // (Indirect)
	IDX             // (Indirect,X)
	IDY             // (Indirect),Y
	REL             // Relative
)

var modeNames = [...]string{
	"IMP", "ACC", "IMM", "ZPG", "ZPX", "ZPY", "ABS",
	"ABX", "ABY", "IND", "IDX", "IDY", "REL",
}

// Number of operand bytes following the opcode, by mode.
var operandBytes = [...]byte{
	IMP: 0, ACC: 0, IMM: 1, ZPG: 1, ZPX: 1, ZPY: 1, ABS: 2,
	ABX: 2, ABY: 2, IND: 2, IDX: 1, IDY: 1, REL: 1,
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "???"
}

// Length returns the combined size of an opcode and its operand in bytes.
func (m Mode) Length() byte {
	return 1 + operandBytes[m]
}

// An Operand holds everything an addressing mode resolved for the
// instruction currently being executed. A fresh Operand is created for
// every instruction and handed from the mode function to the operation.
type Operand struct {
	Opcode      byte   // opcode being executed
	Mode        Mode   // addressing mode that produced the operand
	Addr        uint16 // effective address (branch target for REL)
	Value       byte   // ready operand for IMP, ACC and IMM
	Offset      int8   // signed branch displacement (REL)
	PageCrossed bool   // indexing or branching changed the address's page
	Penalty     byte   // cycles added by a taken branch
}

// A modeFunc resolves an operand, consuming operand bytes at the program
// counter. It returns 1 if the mode may cost an extra cycle.
type modeFunc func(c *CPU) (Operand, byte)

var modeFuncs = [...]modeFunc{
	IMP: (*CPU).imp,
	ACC: (*CPU).acc,
	IMM: (*CPU).imm,
	ZPG: (*CPU).zpg,
	ZPX: (*CPU).zpx,
	ZPY: (*CPU).zpy,
	ABS: (*CPU).abs,
	ABX: (*CPU).abx,
	ABY: (*CPU).aby,
	IND: (*CPU).ind,
	IDX: (*CPU).idx,
	IDY: (*CPU).idy,
	REL: (*CPU).rel,
}

// Implied
func (c *CPU) imp() (Operand, byte) {
	return Operand{Value: c.Reg.A}, 0
}

// Accumulator
func (c *CPU) acc() (Operand, byte) {
	return Operand{Value: c.Reg.A}, 0
}

// Immediate
func (c *CPU) imm() (Operand, byte) {
	addr := c.Reg.PC
	return Operand{Addr: addr, Value: c.fetch()}, 0
}

// Zero Page
func (c *CPU) zpg() (Operand, byte) {
	return Operand{Addr: uint16(c.fetch())}, 0
}

// Zero Page,X
func (c *CPU) zpx() (Operand, byte) {
	return Operand{Addr: offsetZeroPage(c.fetch(), c.Reg.X)}, 0
}

// Zero Page,Y
func (c *CPU) zpy() (Operand, byte) {
	return Operand{Addr: offsetZeroPage(c.fetch(), c.Reg.Y)}, 0
}

// Absolute
func (c *CPU) abs() (Operand, byte) {
	return Operand{Addr: c.fetchAddress()}, 0
}

// Absolute,X
func (c *CPU) abx() (Operand, byte) {
	return c.indexed(c.fetchAddress(), c.Reg.X)
}

// Absolute,Y
func (c *CPU) aby() (Operand, byte) {
	return c.indexed(c.fetchAddress(), c.Reg.Y)
}

// (Indirect)
//
// The NMOS 6502 never carries into the high byte of the pointer, so
// JMP ($12FF) reads the target's low byte from $12FF and its high byte
// from $1200.
func (c *CPU) ind() (Operand, byte) {
	ptr := c.fetchAddress()
	lo := c.Mem.LoadByte(ptr)
	hi := c.Mem.LoadByte((ptr & 0xff00) | uint16(byte(ptr)+1))
	return Operand{Addr: uint16(lo) | uint16(hi)<<8}, 0
}

// (Indirect,X)
func (c *CPU) idx() (Operand, byte) {
	zp := c.fetch() + c.Reg.X
	return Operand{Addr: c.loadZeroPageAddress(zp)}, 0
}

// (Indirect),Y
func (c *CPU) idy() (Operand, byte) {
	base := c.loadZeroPageAddress(c.fetch())
	return c.indexed(base, c.Reg.Y)
}

// Relative
//
// Whether the page crossing costs a cycle depends on the branch being
// taken, so the branch operation charges it instead of the mode.
func (c *CPU) rel() (Operand, byte) {
	offset := int8(c.fetch())
	target := c.Reg.PC + uint16(int16(offset))
	return Operand{
		Addr:        target,
		Offset:      offset,
		PageCrossed: (target & 0xff00) != (c.Reg.PC & 0xff00),
	}, 0
}

func (c *CPU) indexed(base uint16, index byte) (Operand, byte) {
	addr, crossed := offsetAddress(base, index)
	return Operand{Addr: addr, PageCrossed: crossed}, boolToByte(crossed)
}

// Load a 16-bit pointer from the zero page. The pointer's high byte wraps
// to $00 instead of leaving the zero page.
func (c *CPU) loadZeroPageAddress(zp byte) uint16 {
	lo := c.Mem.LoadByte(ZeroPage + uint16(zp))
	hi := c.Mem.LoadByte(ZeroPage + uint16(zp+1))
	return uint16(lo) | uint16(hi)<<8
}
