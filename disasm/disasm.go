// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a 6502 instruction set
// disassembler.
package disasm

import (
	"fmt"

	"github.com/beevik/sim6502/cpu"
)

// Disassembler formatting for addressing modes
var modeFormat = [...]string{
	cpu.IMP: "",
	cpu.ACC: "A",
	cpu.IMM: "#$%s",
	cpu.ZPG: "$%s",
	cpu.ZPX: "$%s,X",
	cpu.ZPY: "$%s,Y",
	cpu.ABS: "$%s",
	cpu.ABX: "$%s,X",
	cpu.ABY: "$%s,Y",
	cpu.IND: "($%s)",
	cpu.IDX: "($%s,X)",
	cpu.IDY: "($%s),Y",
	cpu.REL: "$%s",
}

const hex = "0123456789ABCDEF"

// Return a hexadecimal string representation of the little-endian byte
// slice.
func hexString(b []byte) string {
	hexlen := len(b) * 2
	hexbuf := make([]byte, hexlen)
	j := hexlen - 1
	for _, n := range b {
		hexbuf[j] = hex[n&0xf]
		hexbuf[j-1] = hex[n>>4]
		j -= 2
	}
	return string(hexbuf)
}

// Disassemble the machine code in memory 'm' at address 'addr'. Return a
// 'line' string representing the disassembled instruction and a 'next'
// address that starts the following line of machine code.
func Disassemble(m cpu.Memory, addr uint16) (line string, next uint16) {
	inst := cpu.Lookup(m.LoadByte(addr))

	var buf [2]byte
	operand := buf[:inst.Length-1]
	for i := range operand {
		operand[i] = m.LoadByte(addr + 1 + uint16(i))
	}

	if inst.Mode == cpu.REL {
		// Convert relative offset to absolute address.
		braddr := addr + uint16(inst.Length) + uint16(int8(operand[0]))
		operand = []byte{byte(braddr), byte(braddr >> 8)}
	}

	line = inst.Name
	if f := modeFormat[inst.Mode]; f != "" {
		if len(operand) > 0 {
			f = fmt.Sprintf(f, hexString(operand))
		}
		line += " " + f
	}
	next = addr + uint16(inst.Length)
	return line, next
}

// GetRegisterString returns a string describing the contents of the 6502
// registers.
func GetRegisterString(r *cpu.Registers) string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X PS=[%s] SP=%02X PC=%04X",
		r.A, r.X, r.Y, getStatusBits(r), r.SP, r.PC)
}

// GetCompactRegisterString returns a compact string describing the
// contents of the 6502 registers. It excludes the program counter and
// stack pointer.
func GetCompactRegisterString(r *cpu.Registers) string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X PS=[%s]", r.A, r.X, r.Y, getStatusBits(r))
}

// Return a string of status letters from N down to C, with a dash for
// each clear bit.
func getStatusBits(r *cpu.Registers) string {
	const letters = "NV-BDIZC"
	b := []byte(letters)
	for i := range b {
		if r.PS&(0x80>>i) == 0 {
			b[i] = '-'
		}
	}
	return string(b)
}
