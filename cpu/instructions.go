// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "strings"

// An Instruction describes a CPU instruction, including its name,
// its addressing mode, its opcode value, its operand size, and its CPU cycle
// cost.
type Instruction struct {
	Name   string   // all-caps name of the instruction, "???" if unused
	Mode   Mode     // addressing mode
	Opcode byte     // hexadecimal opcode value
	Length byte     // combined size of opcode and operand, in bytes
	Cycles byte     // base number of CPU cycles to execute the instruction
	fn     instfunc // emulator implementation of the instruction
}

// Unused reports whether the opcode has no documented instruction.
func (inst *Instruction) Unused() bool {
	return inst.Name == unusedName
}

const unusedName = "???"

// Table entry for a single opcode.
type opcodeData struct {
	name   string
	fn     instfunc
	mode   Mode
	cycles byte
}

// The NMOS 6502 opcode matrix, indexed by opcode. Unused opcodes are
// no-ops. The undocumented NOPs that take operands keep their real
// addressing mode so that their operand bytes are skipped.
var opcodes = [256]opcodeData{
	/* 0x00 */ {"BRK", (*CPU).brk, IMM, 7}, {"ORA", (*CPU).ora, IDX, 6}, {"???", (*CPU).xxx, IMP, 2}, {"???", (*CPU).xxx, IMP, 8},
	/* 0x04 */ {"???", (*CPU).nop, ZPG, 3}, {"ORA", (*CPU).ora, ZPG, 3}, {"ASL", (*CPU).asl, ZPG, 5}, {"???", (*CPU).xxx, IMP, 5},
	/* 0x08 */ {"PHP", (*CPU).php, IMP, 3}, {"ORA", (*CPU).ora, IMM, 2}, {"ASL", (*CPU).asl, ACC, 2}, {"???", (*CPU).xxx, IMP, 2},
	/* 0x0C */ {"???", (*CPU).nop, ABS, 4}, {"ORA", (*CPU).ora, ABS, 4}, {"ASL", (*CPU).asl, ABS, 6}, {"???", (*CPU).xxx, IMP, 6},

	/* 0x10 */ {"BPL", (*CPU).bpl, REL, 2}, {"ORA", (*CPU).ora, IDY, 5}, {"???", (*CPU).xxx, IMP, 2}, {"???", (*CPU).xxx, IMP, 8},
	/* 0x14 */ {"???", (*CPU).nop, ZPX, 4}, {"ORA", (*CPU).ora, ZPX, 4}, {"ASL", (*CPU).asl, ZPX, 6}, {"???", (*CPU).xxx, IMP, 6},
	/* 0x18 */ {"CLC", (*CPU).clc, IMP, 2}, {"ORA", (*CPU).ora, ABY, 4}, {"???", (*CPU).nop, IMP, 2}, {"???", (*CPU).xxx, IMP, 7},
	/* 0x1C */ {"???", (*CPU).nop, ABX, 4}, {"ORA", (*CPU).ora, ABX, 4}, {"ASL", (*CPU).asl, ABX, 7}, {"???", (*CPU).xxx, IMP, 7},

	/* 0x20 */ {"JSR", (*CPU).jsr, ABS, 6}, {"AND", (*CPU).and, IDX, 6}, {"???", (*CPU).xxx, IMP, 2}, {"???", (*CPU).xxx, IMP, 8},
	/* 0x24 */ {"BIT", (*CPU).bit, ZPG, 3}, {"AND", (*CPU).and, ZPG, 3}, {"ROL", (*CPU).rol, ZPG, 5}, {"???", (*CPU).xxx, IMP, 5},
	/* 0x28 */ {"PLP", (*CPU).plp, IMP, 4}, {"AND", (*CPU).and, IMM, 2}, {"ROL", (*CPU).rol, ACC, 2}, {"???", (*CPU).xxx, IMP, 2},
	/* 0x2C */ {"BIT", (*CPU).bit, ABS, 4}, {"AND", (*CPU).and, ABS, 4}, {"ROL", (*CPU).rol, ABS, 6}, {"???", (*CPU).xxx, IMP, 6},

	/* 0x30 */ {"BMI", (*CPU).bmi, REL, 2}, {"AND", (*CPU).and, IDY, 5}, {"???", (*CPU).xxx, IMP, 2}, {"???", (*CPU).xxx, IMP, 8},
	/* 0x34 */ {"???", (*CPU).nop, ZPX, 4}, {"AND", (*CPU).and, ZPX, 4}, {"ROL", (*CPU).rol, ZPX, 6}, {"???", (*CPU).xxx, IMP, 6},
	/* 0x38 */ {"SEC", (*CPU).sec, IMP, 2}, {"AND", (*CPU).and, ABY, 4}, {"???", (*CPU).nop, IMP, 2}, {"???", (*CPU).xxx, IMP, 7},
	/* 0x3C */ {"???", (*CPU).nop, ABX, 4}, {"AND", (*CPU).and, ABX, 4}, {"ROL", (*CPU).rol, ABX, 7}, {"???", (*CPU).xxx, IMP, 7},

	/* 0x40 */ {"RTI", (*CPU).rti, IMP, 6}, {"EOR", (*CPU).eor, IDX, 6}, {"???", (*CPU).xxx, IMP, 2}, {"???", (*CPU).xxx, IMP, 8},
	/* 0x44 */ {"???", (*CPU).nop, ZPG, 3}, {"EOR", (*CPU).eor, ZPG, 3}, {"LSR", (*CPU).lsr, ZPG, 5}, {"???", (*CPU).xxx, IMP, 5},
	/* 0x48 */ {"PHA", (*CPU).pha, IMP, 3}, {"EOR", (*CPU).eor, IMM, 2}, {"LSR", (*CPU).lsr, ACC, 2}, {"???", (*CPU).xxx, IMP, 2},
	/* 0x4C */ {"JMP", (*CPU).jmp, ABS, 3}, {"EOR", (*CPU).eor, ABS, 4}, {"LSR", (*CPU).lsr, ABS, 6}, {"???", (*CPU).xxx, IMP, 6},

	/* 0x50 */ {"BVC", (*CPU).bvc, REL, 2}, {"EOR", (*CPU).eor, IDY, 5}, {"???", (*CPU).xxx, IMP, 2}, {"???", (*CPU).xxx, IMP, 8},
	/* 0x54 */ {"???", (*CPU).nop, ZPX, 4}, {"EOR", (*CPU).eor, ZPX, 4}, {"LSR", (*CPU).lsr, ZPX, 6}, {"???", (*CPU).xxx, IMP, 6},
	/* 0x58 */ {"CLI", (*CPU).cli, IMP, 2}, {"EOR", (*CPU).eor, ABY, 4}, {"???", (*CPU).nop, IMP, 2}, {"???", (*CPU).xxx, IMP, 7},
	/* 0x5C */ {"???", (*CPU).nop, ABX, 4}, {"EOR", (*CPU).eor, ABX, 4}, {"LSR", (*CPU).lsr, ABX, 7}, {"???", (*CPU).xxx, IMP, 7},

	/* 0x60 */ {"RTS", (*CPU).rts, IMP, 6}, {"ADC", (*CPU).adc, IDX, 6}, {"???", (*CPU).xxx, IMP, 2}, {"???", (*CPU).xxx, IMP, 8},
	/* 0x64 */ {"???", (*CPU).nop, ZPG, 3}, {"ADC", (*CPU).adc, ZPG, 3}, {"ROR", (*CPU).ror, ZPG, 5}, {"???", (*CPU).xxx, IMP, 5},
	/* 0x68 */ {"PLA", (*CPU).pla, IMP, 4}, {"ADC", (*CPU).adc, IMM, 2}, {"ROR", (*CPU).ror, ACC, 2}, {"???", (*CPU).xxx, IMP, 2},
	/* 0x6C */ {"JMP", (*CPU).jmp, IND, 5}, {"ADC", (*CPU).adc, ABS, 4}, {"ROR", (*CPU).ror, ABS, 6}, {"???", (*CPU).xxx, IMP, 6},

	/* 0x70 */ {"BVS", (*CPU).bvs, REL, 2}, {"ADC", (*CPU).adc, IDY, 5}, {"???", (*CPU).xxx, IMP, 2}, {"???", (*CPU).xxx, IMP, 8},
	/* 0x74 */ {"???", (*CPU).nop, ZPX, 4}, {"ADC", (*CPU).adc, ZPX, 4}, {"ROR", (*CPU).ror, ZPX, 6}, {"???", (*CPU).xxx, IMP, 6},
	/* 0x78 */ {"SEI", (*CPU).sei, IMP, 2}, {"ADC", (*CPU).adc, ABY, 4}, {"???", (*CPU).nop, IMP, 2}, {"???", (*CPU).xxx, IMP, 7},
	/* 0x7C */ {"???", (*CPU).nop, ABX, 4}, {"ADC", (*CPU).adc, ABX, 4}, {"ROR", (*CPU).ror, ABX, 7}, {"???", (*CPU).xxx, IMP, 7},

	/* 0x80 */ {"???", (*CPU).nop, IMM, 2}, {"STA", (*CPU).sta, IDX, 6}, {"???", (*CPU).nop, IMM, 2}, {"???", (*CPU).xxx, IMP, 6},
	/* 0x84 */ {"STY", (*CPU).sty, ZPG, 3}, {"STA", (*CPU).sta, ZPG, 3}, {"STX", (*CPU).stx, ZPG, 3}, {"???", (*CPU).xxx, IMP, 3},
	/* 0x88 */ {"DEY", (*CPU).dey, IMP, 2}, {"???", (*CPU).nop, IMM, 2}, {"TXA", (*CPU).txa, IMP, 2}, {"???", (*CPU).xxx, IMP, 2},
	/* 0x8C */ {"STY", (*CPU).sty, ABS, 4}, {"STA", (*CPU).sta, ABS, 4}, {"STX", (*CPU).stx, ABS, 4}, {"???", (*CPU).xxx, IMP, 4},

	/* 0x90 */ {"BCC", (*CPU).bcc, REL, 2}, {"STA", (*CPU).sta, IDY, 6}, {"???", (*CPU).xxx, IMP, 2}, {"???", (*CPU).xxx, IMP, 6},
	/* 0x94 */ {"STY", (*CPU).sty, ZPX, 4}, {"STA", (*CPU).sta, ZPX, 4}, {"STX", (*CPU).stx, ZPY, 4}, {"???", (*CPU).xxx, IMP, 4},
	/* 0x98 */ {"TYA", (*CPU).tya, IMP, 2}, {"STA", (*CPU).sta, ABY, 5}, {"TXS", (*CPU).txs, IMP, 2}, {"???", (*CPU).xxx, IMP, 5},
	/* 0x9C */ {"???", (*CPU).xxx, IMP, 5}, {"STA", (*CPU).sta, ABX, 5}, {"???", (*CPU).xxx, IMP, 5}, {"???", (*CPU).xxx, IMP, 5},

	/* 0xA0 */ {"LDY", (*CPU).ldy, IMM, 2}, {"LDA", (*CPU).lda, IDX, 6}, {"LDX", (*CPU).ldx, IMM, 2}, {"???", (*CPU).xxx, IMP, 6},
	/* 0xA4 */ {"LDY", (*CPU).ldy, ZPG, 3}, {"LDA", (*CPU).lda, ZPG, 3}, {"LDX", (*CPU).ldx, ZPG, 3}, {"???", (*CPU).xxx, IMP, 3},
	/* 0xA8 */ {"TAY", (*CPU).tay, IMP, 2}, {"LDA", (*CPU).lda, IMM, 2}, {"TAX", (*CPU).tax, IMP, 2}, {"???", (*CPU).xxx, IMP, 2},
	/* 0xAC */ {"LDY", (*CPU).ldy, ABS, 4}, {"LDA", (*CPU).lda, ABS, 4}, {"LDX", (*CPU).ldx, ABS, 4}, {"???", (*CPU).xxx, IMP, 4},

	/* 0xB0 */ {"BCS", (*CPU).bcs, REL, 2}, {"LDA", (*CPU).lda, IDY, 5}, {"???", (*CPU).xxx, IMP, 2}, {"???", (*CPU).xxx, IMP, 5},
	/* 0xB4 */ {"LDY", (*CPU).ldy, ZPX, 4}, {"LDA", (*CPU).lda, ZPX, 4}, {"LDX", (*CPU).ldx, ZPY, 4}, {"???", (*CPU).xxx, IMP, 4},
	/* 0xB8 */ {"CLV", (*CPU).clv, IMP, 2}, {"LDA", (*CPU).lda, ABY, 4}, {"TSX", (*CPU).tsx, IMP, 2}, {"???", (*CPU).xxx, IMP, 4},
	/* 0xBC */ {"LDY", (*CPU).ldy, ABX, 4}, {"LDA", (*CPU).lda, ABX, 4}, {"LDX", (*CPU).ldx, ABY, 4}, {"???", (*CPU).xxx, IMP, 4},

	/* 0xC0 */ {"CPY", (*CPU).cpy, IMM, 2}, {"CMP", (*CPU).cmp, IDX, 6}, {"???", (*CPU).nop, IMM, 2}, {"???", (*CPU).xxx, IMP, 8},
	/* 0xC4 */ {"CPY", (*CPU).cpy, ZPG, 3}, {"CMP", (*CPU).cmp, ZPG, 3}, {"DEC", (*CPU).dec, ZPG, 5}, {"???", (*CPU).xxx, IMP, 5},
	/* 0xC8 */ {"INY", (*CPU).iny, IMP, 2}, {"CMP", (*CPU).cmp, IMM, 2}, {"DEX", (*CPU).dex, IMP, 2}, {"???", (*CPU).xxx, IMP, 2},
	/* 0xCC */ {"CPY", (*CPU).cpy, ABS, 4}, {"CMP", (*CPU).cmp, ABS, 4}, {"DEC", (*CPU).dec, ABS, 6}, {"???", (*CPU).xxx, IMP, 6},

	/* 0xD0 */ {"BNE", (*CPU).bne, REL, 2}, {"CMP", (*CPU).cmp, IDY, 5}, {"???", (*CPU).xxx, IMP, 2}, {"???", (*CPU).xxx, IMP, 8},
	/* 0xD4 */ {"???", (*CPU).nop, ZPX, 4}, {"CMP", (*CPU).cmp, ZPX, 4}, {"DEC", (*CPU).dec, ZPX, 6}, {"???", (*CPU).xxx, IMP, 6},
	/* 0xD8 */ {"CLD", (*CPU).cld, IMP, 2}, {"CMP", (*CPU).cmp, ABY, 4}, {"???", (*CPU).nop, IMP, 2}, {"???", (*CPU).xxx, IMP, 7},
	/* 0xDC */ {"???", (*CPU).nop, ABX, 4}, {"CMP", (*CPU).cmp, ABX, 4}, {"DEC", (*CPU).dec, ABX, 7}, {"???", (*CPU).xxx, IMP, 7},

	/* 0xE0 */ {"CPX", (*CPU).cpx, IMM, 2}, {"SBC", (*CPU).sbc, IDX, 6}, {"???", (*CPU).nop, IMM, 2}, {"???", (*CPU).xxx, IMP, 8},
	/* 0xE4 */ {"CPX", (*CPU).cpx, ZPG, 3}, {"SBC", (*CPU).sbc, ZPG, 3}, {"INC", (*CPU).inc, ZPG, 5}, {"???", (*CPU).xxx, IMP, 5},
	/* 0xE8 */ {"INX", (*CPU).inx, IMP, 2}, {"SBC", (*CPU).sbc, IMM, 2}, {"NOP", (*CPU).nop, IMP, 2}, {"???", (*CPU).nop, IMM, 2},
	/* 0xEC */ {"CPX", (*CPU).cpx, ABS, 4}, {"SBC", (*CPU).sbc, ABS, 4}, {"INC", (*CPU).inc, ABS, 6}, {"???", (*CPU).xxx, IMP, 6},

	/* 0xF0 */ {"BEQ", (*CPU).beq, REL, 2}, {"SBC", (*CPU).sbc, IDY, 5}, {"???", (*CPU).xxx, IMP, 2}, {"???", (*CPU).xxx, IMP, 8},
	/* 0xF4 */ {"???", (*CPU).nop, ZPX, 4}, {"SBC", (*CPU).sbc, ZPX, 4}, {"INC", (*CPU).inc, ZPX, 6}, {"???", (*CPU).xxx, IMP, 6},
	/* 0xF8 */ {"SED", (*CPU).sed, IMP, 2}, {"SBC", (*CPU).sbc, ABY, 4}, {"???", (*CPU).nop, IMP, 2}, {"???", (*CPU).xxx, IMP, 7},
	/* 0xFC */ {"???", (*CPU).nop, ABX, 4}, {"SBC", (*CPU).sbc, ABX, 4}, {"INC", (*CPU).inc, ABX, 7}, {"???", (*CPU).xxx, IMP, 7},
}

// All instructions by opcode.
var instructions [256]Instruction

// Instruction variants keyed by name, excluding unused opcodes.
var variants = make(map[string][]*Instruction)

func init() {
	for i, d := range opcodes {
		inst := &instructions[i]
		inst.Name = d.name
		inst.Mode = d.mode
		inst.Opcode = byte(i)
		inst.Length = d.mode.Length()
		inst.Cycles = d.cycles
		inst.fn = d.fn
		if !inst.Unused() {
			variants[inst.Name] = append(variants[inst.Name], inst)
		}
	}
}

// Lookup retrieves a CPU instruction corresponding to the requested opcode.
func Lookup(opcode byte) *Instruction {
	return &instructions[opcode]
}

// GetInstructions returns all CPU instructions whose name matches the
// provided string.
func GetInstructions(name string) []*Instruction {
	return variants[strings.ToUpper(name)]
}
