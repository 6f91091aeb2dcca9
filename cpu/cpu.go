// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements a cycle-counting NMOS 6502 instruction set
// emulator.
package cpu

// Stack pointer value after a reset.
const resetSP = 0xfd

// CPU represents a single 6502 CPU. It contains a pointer to the
// memory associated with the CPU.
type CPU struct {
	Reg       Registers // CPU registers
	Mem       Memory    // assigned memory
	Cycles    uint64    // total executed CPU cycles
	LastPC    uint16    // address of the most recently executed instruction
	debugger  *Debugger
	storeByte func(cpu *CPU, addr uint16, v byte)
}

// NewCPU creates an emulated 6502 CPU bound to the specified memory.
func NewCPU(m Memory) *CPU {
	cpu := &CPU{
		Mem:       m,
		storeByte: (*CPU).storeByteNormal,
	}

	cpu.Init()
	return cpu
}

// Init puts the registers in their power-on state and clears the cycle
// counter.
func (cpu *CPU) Init() {
	cpu.Reg.Init()
	cpu.Cycles = 0
	cpu.LastPC = 0
}

// Reset clears A, X and Y, sets the stack pointer to $FD, disables
// interrupts and loads the program counter from the reset vector. The
// cycle counter is cleared.
func (cpu *CPU) Reset() {
	cpu.Reg.A = 0
	cpu.Reg.X = 0
	cpu.Reg.Y = 0
	cpu.Reg.SP = resetSP
	cpu.Reg.PS = byte(InterruptDisable | Reserved)
	cpu.Reg.PC = cpu.Mem.LoadAddress(VectorReset)
	cpu.Cycles = 0
	cpu.LastPC = cpu.Reg.PC
}

// SetPC updates the CPU program counter to 'addr'.
func (cpu *CPU) SetPC(addr uint16) {
	cpu.Reg.PC = addr
}

// GetInstruction returns the instruction whose opcode is stored at the
// requested address.
func (cpu *CPU) GetInstruction(addr uint16) *Instruction {
	return Lookup(cpu.Mem.LoadByte(addr))
}

// NextAddr returns the address of the next instruction following the
// instruction at addr.
func (cpu *CPU) NextAddr(addr uint16) uint16 {
	return addr + uint16(cpu.GetInstruction(addr).Length)
}

// Step executes the instruction at the program counter and returns the
// number of cycles it consumed.
func (cpu *CPU) Step() int {
	cpu.LastPC = cpu.Reg.PC

	// Fetch
	opcode := cpu.fetch()
	inst := Lookup(opcode)

	// Decode
	o, modeExtra := modeFuncs[inst.Mode](cpu)
	o.Opcode = opcode
	o.Mode = inst.Mode

	// Execute
	opExtra := inst.fn(cpu, &o)

	cycles := int(inst.Cycles) + int(modeExtra&opExtra) + int(o.Penalty)
	cpu.Cycles += uint64(cycles)

	// Update the debugger so it can handle breakpoints.
	if cpu.debugger != nil {
		cpu.debugger.onUpdatePC(cpu, cpu.Reg.PC)
	}
	return cycles
}

// AttachDebugger attaches a debugger to the CPU. The debugger receives
// notifications whenever the CPU executes an instruction or stores a byte
// to memory.
func (cpu *CPU) AttachDebugger(debugger *Debugger) {
	cpu.debugger = debugger
	cpu.storeByte = (*CPU).storeByteDebugger
}

// DetachDebugger detaches the currently attached debugger from the CPU.
func (cpu *CPU) DetachDebugger() {
	cpu.debugger = nil
	cpu.storeByte = (*CPU).storeByteNormal
}

// Read the byte at the program counter and advance past it.
func (cpu *CPU) fetch() byte {
	v := cpu.Mem.LoadByte(cpu.Reg.PC)
	cpu.Reg.PC++
	return v
}

// Read the little-endian address at the program counter and advance past
// it.
func (cpu *CPU) fetchAddress() uint16 {
	lo := cpu.fetch()
	hi := cpu.fetch()
	return uint16(lo) | uint16(hi)<<8
}

// Push a value 'v' onto the stack.
func (cpu *CPU) push(v byte) {
	cpu.storeByte(cpu, stackAddress(cpu.Reg.SP), v)
	cpu.Reg.SP--
}

// Push the address 'addr' onto the stack, high byte first.
func (cpu *CPU) pushAddress(addr uint16) {
	cpu.push(byte(addr >> 8))
	cpu.push(byte(addr))
}

// Pop a value from the stack and return it.
func (cpu *CPU) pop() byte {
	cpu.Reg.SP++
	return cpu.Mem.LoadByte(stackAddress(cpu.Reg.SP))
}

// Pop a 16-bit address off the stack.
func (cpu *CPU) popAddress() uint16 {
	lo := cpu.pop()
	hi := cpu.pop()
	return uint16(lo) | uint16(hi)<<8
}

func (cpu *CPU) storeByteNormal(addr uint16, v byte) {
	cpu.Mem.StoreByte(addr, v)
}

func (cpu *CPU) storeByteDebugger(addr uint16, v byte) {
	cpu.debugger.onDataStore(cpu, addr, v)
	cpu.Mem.StoreByte(addr, v)
}
