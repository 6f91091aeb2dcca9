// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// An instfunc executes an operation on an operand already resolved by the
// instruction's addressing mode. It returns 1 if the operation is charged
// the mode's extra cycle when a page boundary is crossed.
type instfunc func(c *CPU, o *Operand) byte

// Load the byte an operation works on.
func (c *CPU) load(o *Operand) byte {
	switch o.Mode {
	case IMP, ACC, IMM:
		return o.Value
	default:
		return c.Mem.LoadByte(o.Addr)
	}
}

// Store the result of a read-modify-write operation.
func (c *CPU) store(o *Operand, v byte) {
	if o.Mode == ACC {
		c.Reg.A = v
		return
	}
	c.storeByte(c, o.Addr, v)
}

// Execute a branch to the operand's target address.
func (c *CPU) branch(o *Operand, cond bool) byte {
	if cond {
		c.Reg.PC += uint16(int16(o.Offset))
		o.Penalty = 1
		if o.PageCrossed {
			o.Penalty++
		}
	}
	return 0
}

// Add 'v' and the carry bit to the accumulator.
func (c *CPU) addWithCarry(v byte) {
	acc := uint16(c.Reg.A)
	sum := acc + uint16(v) + uint16(boolToByte(c.Reg.GetFlag(Carry)))
	r := byte(sum)
	c.Reg.SetFlag(Carry, sum > 0xff)
	c.Reg.SetFlag(Overflow, (byte(acc)^r)&(v^r)&0x80 != 0)
	c.Reg.A = r
	c.Reg.updateNZ(r)
}

func (c *CPU) compare(reg, v byte) {
	c.Reg.SetFlag(Carry, reg >= v)
	c.Reg.updateNZ(reg - v)
}

// Add with carry
func (c *CPU) adc(o *Operand) byte {
	c.addWithCarry(c.load(o))
	return 1
}

// Boolean AND
func (c *CPU) and(o *Operand) byte {
	c.Reg.A &= c.load(o)
	c.Reg.updateNZ(c.Reg.A)
	return 1
}

// Arithmetic Shift Left
func (c *CPU) asl(o *Operand) byte {
	v := c.load(o)
	c.Reg.SetFlag(Carry, v&0x80 != 0)
	v <<= 1
	c.Reg.updateNZ(v)
	c.store(o, v)
	return 0
}

// Branch if Carry Clear
func (c *CPU) bcc(o *Operand) byte {
	return c.branch(o, !c.Reg.GetFlag(Carry))
}

// Branch if Carry Set
func (c *CPU) bcs(o *Operand) byte {
	return c.branch(o, c.Reg.GetFlag(Carry))
}

// Branch if EQual (to zero)
func (c *CPU) beq(o *Operand) byte {
	return c.branch(o, c.Reg.GetFlag(Zero))
}

// Bit Test
func (c *CPU) bit(o *Operand) byte {
	v := c.load(o)
	c.Reg.SetFlag(Zero, v&c.Reg.A == 0)
	c.Reg.SetFlag(Negative, v&0x80 != 0)
	c.Reg.SetFlag(Overflow, v&0x40 != 0)
	return 0
}

// Branch if MInus (negative)
func (c *CPU) bmi(o *Operand) byte {
	return c.branch(o, c.Reg.GetFlag(Negative))
}

// Branch if Not Equal (not zero)
func (c *CPU) bne(o *Operand) byte {
	return c.branch(o, !c.Reg.GetFlag(Zero))
}

// Branch if PLus (positive)
func (c *CPU) bpl(o *Operand) byte {
	return c.branch(o, !c.Reg.GetFlag(Negative))
}

// Break. The immediate mode has already skipped the padding byte, so the
// pushed return address is the opcode's address + 2.
func (c *CPU) brk(o *Operand) byte {
	c.pushAddress(c.Reg.PC)
	c.push(c.Reg.SavePS(true))
	c.Reg.SetFlag(InterruptDisable, true)
	c.Reg.PC = c.Mem.LoadAddress(VectorBRK)
	return 0
}

// Branch if oVerflow Clear
func (c *CPU) bvc(o *Operand) byte {
	return c.branch(o, !c.Reg.GetFlag(Overflow))
}

// Branch if oVerflow Set
func (c *CPU) bvs(o *Operand) byte {
	return c.branch(o, c.Reg.GetFlag(Overflow))
}

// Clear Carry flag
func (c *CPU) clc(o *Operand) byte {
	c.Reg.SetFlag(Carry, false)
	return 0
}

// Clear Decimal flag
func (c *CPU) cld(o *Operand) byte {
	c.Reg.SetFlag(Decimal, false)
	return 0
}

// Clear InterruptDisable flag
func (c *CPU) cli(o *Operand) byte {
	c.Reg.SetFlag(InterruptDisable, false)
	return 0
}

// Clear oVerflow flag
func (c *CPU) clv(o *Operand) byte {
	c.Reg.SetFlag(Overflow, false)
	return 0
}

// Compare to accumulator
func (c *CPU) cmp(o *Operand) byte {
	c.compare(c.Reg.A, c.load(o))
	return 1
}

// Compare to X register
func (c *CPU) cpx(o *Operand) byte {
	c.compare(c.Reg.X, c.load(o))
	return 0
}

// Compare to Y register
func (c *CPU) cpy(o *Operand) byte {
	c.compare(c.Reg.Y, c.load(o))
	return 0
}

// Decrement memory value
func (c *CPU) dec(o *Operand) byte {
	v := c.load(o) - 1
	c.Reg.updateNZ(v)
	c.store(o, v)
	return 0
}

// Decrement X register
func (c *CPU) dex(o *Operand) byte {
	c.Reg.X--
	c.Reg.updateNZ(c.Reg.X)
	return 0
}

// Decrement Y register
func (c *CPU) dey(o *Operand) byte {
	c.Reg.Y--
	c.Reg.updateNZ(c.Reg.Y)
	return 0
}

// Boolean XOR
func (c *CPU) eor(o *Operand) byte {
	c.Reg.A ^= c.load(o)
	c.Reg.updateNZ(c.Reg.A)
	return 1
}

// Increment memory value
func (c *CPU) inc(o *Operand) byte {
	v := c.load(o) + 1
	c.Reg.updateNZ(v)
	c.store(o, v)
	return 0
}

// Increment X register
func (c *CPU) inx(o *Operand) byte {
	c.Reg.X++
	c.Reg.updateNZ(c.Reg.X)
	return 0
}

// Increment Y register
func (c *CPU) iny(o *Operand) byte {
	c.Reg.Y++
	c.Reg.updateNZ(c.Reg.Y)
	return 0
}

// Jump to memory address
func (c *CPU) jmp(o *Operand) byte {
	c.Reg.PC = o.Addr
	return 0
}

// Jump to subroutine
func (c *CPU) jsr(o *Operand) byte {
	c.pushAddress(c.Reg.PC - 1)
	c.Reg.PC = o.Addr
	return 0
}

// load Accumulator
func (c *CPU) lda(o *Operand) byte {
	c.Reg.A = c.load(o)
	c.Reg.updateNZ(c.Reg.A)
	return 1
}

// load the X register
func (c *CPU) ldx(o *Operand) byte {
	c.Reg.X = c.load(o)
	c.Reg.updateNZ(c.Reg.X)
	return 1
}

// load the Y register
func (c *CPU) ldy(o *Operand) byte {
	c.Reg.Y = c.load(o)
	c.Reg.updateNZ(c.Reg.Y)
	return 1
}

// Logical Shift Right
func (c *CPU) lsr(o *Operand) byte {
	v := c.load(o)
	c.Reg.SetFlag(Carry, v&1 != 0)
	v >>= 1
	c.Reg.updateNZ(v)
	c.store(o, v)
	return 0
}

// No-operation. Indexed variants of the undocumented NOPs pay for page
// crossings like any other indexed read.
func (c *CPU) nop(o *Operand) byte {
	return 1
}

// Boolean OR
func (c *CPU) ora(o *Operand) byte {
	c.Reg.A |= c.load(o)
	c.Reg.updateNZ(c.Reg.A)
	return 1
}

// Push Accumulator
func (c *CPU) pha(o *Operand) byte {
	c.push(c.Reg.A)
	return 0
}

// Push Processor flags
func (c *CPU) php(o *Operand) byte {
	c.push(c.Reg.SavePS(true))
	return 0
}

// Pull (pop) Accumulator
func (c *CPU) pla(o *Operand) byte {
	c.Reg.A = c.pop()
	c.Reg.updateNZ(c.Reg.A)
	return 0
}

// Pull (pop) Processor flags
func (c *CPU) plp(o *Operand) byte {
	c.Reg.RestorePS(c.pop())
	return 0
}

// Rotate Left
func (c *CPU) rol(o *Operand) byte {
	tmp := c.load(o)
	v := (tmp << 1) | boolToByte(c.Reg.GetFlag(Carry))
	c.Reg.SetFlag(Carry, tmp&0x80 != 0)
	c.Reg.updateNZ(v)
	c.store(o, v)
	return 0
}

// Rotate Right
func (c *CPU) ror(o *Operand) byte {
	tmp := c.load(o)
	v := (tmp >> 1) | (boolToByte(c.Reg.GetFlag(Carry)) << 7)
	c.Reg.SetFlag(Carry, tmp&1 != 0)
	c.Reg.updateNZ(v)
	c.store(o, v)
	return 0
}

// Return from Interrupt
func (c *CPU) rti(o *Operand) byte {
	c.Reg.RestorePS(c.pop())
	c.Reg.PC = c.popAddress()
	return 0
}

// Return from Subroutine
func (c *CPU) rts(o *Operand) byte {
	c.Reg.PC = c.popAddress() + 1
	return 0
}

// Subtract with Carry. In binary mode A - M - !C is A + ^M + C.
func (c *CPU) sbc(o *Operand) byte {
	c.addWithCarry(^c.load(o))
	return 1
}

// Set Carry flag
func (c *CPU) sec(o *Operand) byte {
	c.Reg.SetFlag(Carry, true)
	return 0
}

// Set Decimal flag
func (c *CPU) sed(o *Operand) byte {
	c.Reg.SetFlag(Decimal, true)
	return 0
}

// Set InterruptDisable flag
func (c *CPU) sei(o *Operand) byte {
	c.Reg.SetFlag(InterruptDisable, true)
	return 0
}

// Store Accumulator
func (c *CPU) sta(o *Operand) byte {
	c.storeByte(c, o.Addr, c.Reg.A)
	return 0
}

// Store X register
func (c *CPU) stx(o *Operand) byte {
	c.storeByte(c, o.Addr, c.Reg.X)
	return 0
}

// Store Y register
func (c *CPU) sty(o *Operand) byte {
	c.storeByte(c, o.Addr, c.Reg.Y)
	return 0
}

// Transfer Accumulator to X register
func (c *CPU) tax(o *Operand) byte {
	c.Reg.X = c.Reg.A
	c.Reg.updateNZ(c.Reg.X)
	return 0
}

// Transfer Accumulator to Y register
func (c *CPU) tay(o *Operand) byte {
	c.Reg.Y = c.Reg.A
	c.Reg.updateNZ(c.Reg.Y)
	return 0
}

// Transfer stack pointer to X register
func (c *CPU) tsx(o *Operand) byte {
	c.Reg.X = c.Reg.SP
	c.Reg.updateNZ(c.Reg.X)
	return 0
}

// Transfer X register to Accumulator
func (c *CPU) txa(o *Operand) byte {
	c.Reg.A = c.Reg.X
	c.Reg.updateNZ(c.Reg.A)
	return 0
}

// Transfer X register to the stack pointer
func (c *CPU) txs(o *Operand) byte {
	c.Reg.SP = c.Reg.X
	return 0
}

// Transfer Y register to the Accumulator
func (c *CPU) tya(o *Operand) byte {
	c.Reg.A = c.Reg.Y
	c.Reg.updateNZ(c.Reg.A)
	return 0
}

// Unused opcode
func (c *CPU) xxx(o *Operand) byte {
	return 0
}
