// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host allows you to create a "host" that emulates a computer system
// with a 6502 CPU, 64K of memory, a built-in debugger and a full-screen
// memory monitor.
//
// Within the host it is possible to load raw binary images into memory,
// debug and step through machine code, measure the number of CPU cycles
// elapsed, set address and data breakpoints, dump and disassemble the
// contents of memory, manipulate CPU registers and memory, and write the
// whole memory image back to disk.
package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/beevik/cmd"
	"github.com/beevik/sim6502/cpu"
	"github.com/beevik/sim6502/disasm"
)

var errQuit = errors.New("exiting program")

type displayFlags uint8

const (
	displayRegisters displayFlags = 1 << iota
	displayCycles

	displayAll = displayRegisters | displayCycles
)

type state byte

const (
	stateProcessingCommands state = iota
	stateRunning
	stateBreakpoint
	stateStepOverBreakpoint
)

// A selection is a command together with the arguments it was invoked
// with.
type selection struct {
	cmd  *command
	args []string
}

// A Host represents a fully emulated 6502 system, 64K of memory, a built-in
// debugger, and other useful tools.
type Host struct {
	input       *bufio.Scanner
	inputFile   *os.File
	output      *bufio.Writer
	interactive bool
	mem         *cpu.FlatMemory
	cpu         *cpu.CPU
	debugger    *cpu.Debugger
	lastCmd     *selection
	state       state
	interrupted atomic.Bool
	settings    *settings
}

// New creates a new 6502 host environment.
func New() *Host {
	h := &Host{
		output:   bufio.NewWriter(os.Stdout),
		state:    stateProcessingCommands,
		settings: newSettings(),
	}

	// Create the emulated CPU and memory.
	h.mem = cpu.NewFlatMemory()
	h.cpu = cpu.NewCPU(h.mem)

	// Create a CPU debugger and attach it to the CPU.
	h.debugger = cpu.NewDebugger(newDebugHandler(h))
	h.cpu.AttachDebugger(h.debugger)

	return h
}

// RunCommands accepts host commands from a reader and outputs the results
// to a writer. If the commands are interactive, a prompt is displayed while
// the host waits for the the next command to be entered.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.setIO(r, w)
	h.interactive = interactive

	if interactive {
		h.println()
	}

	h.displayPC()

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		s := h.lastCmd
		if strings.TrimSpace(line) != "" {
			s = h.selectCommand(line)
		}
		if s == nil {
			continue
		}

		h.lastCmd = s
		if err := s.cmd.handler(h, s.cmd, s.args); err != nil {
			break
		}
	}

	h.flush()
}

// Look up the command named by 'line'. A line naming a command group
// displays the group's commands and selects nothing.
func (h *Host) selectCommand(line string) *selection {
	n, args, err := lookup(line)
	switch {
	case errors.Is(err, cmd.ErrNotFound):
		h.println("Command not found.")
		return nil
	case errors.Is(err, cmd.ErrAmbiguous):
		h.println("Command is ambiguous.")
		return nil
	case err != nil:
		h.printf("ERROR: %v.\n", err)
		return nil
	}

	switch n := n.(type) {
	case *cmd.Command:
		if c, ok := n.Data.(*command); ok {
			return &selection{cmd: c, args: args}
		}
	case *cmd.Tree:
		if g, ok := n.Data.(*group); ok {
			h.displayGroup(g)
		}
	}
	return nil
}

// Break interrupts a running CPU. It may be called from another goroutine,
// such as a signal handler. The interrupt is handled before the next
// instruction executes.
func (h *Host) Break() {
	h.interrupted.Store(true)
}

// Handle a pending Break. Return true if the CPU was interrupted.
func (h *Host) checkBreak() bool {
	if !h.interrupted.Swap(false) {
		return false
	}
	h.state = stateProcessingCommands
	h.println()
	h.displayPC()
	return true
}

// LoadFile copies the raw contents of a binary file into memory starting at
// 'addr'. It fails if the file cannot be read or if its contents would run
// past the end of the address space.
func (h *Host) LoadFile(filename string, addr uint16) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	if err := h.mem.Load(addr, b); err != nil {
		return fmt.Errorf("load '%s' at $%04X: %w", filepath.Base(filename), addr, err)
	}

	h.printf("Loaded '%s' to $%04X..$%04X\n", filepath.Base(filename), addr, int(addr)+len(b)-1)
	return nil
}

// DumpFile writes the entire 64K memory image to a file.
func (h *Host) DumpFile(filename string) error {
	return os.WriteFile(filename, h.mem.Dump(), 0644)
}

// Reset resets the CPU, loading the program counter from the reset vector.
func (h *Host) Reset() {
	h.cpu.Reset()
	h.settings.NextDisasmAddr = h.cpu.Reg.PC
}

// SetFollowPC controls whether the monitor's third page tracks the
// program counter.
func (h *Host) SetFollowPC(follow bool) {
	h.settings.FollowPC = follow
}

func (h *Host) setIO(r io.Reader, w io.Writer) {
	h.input = bufio.NewScanner(r)
	h.inputFile, _ = r.(*os.File)
	h.output = bufio.NewWriter(w)
}

func (h *Host) print(args ...any) {
	fmt.Fprint(h.output, args...)
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("* ")
	}
}

func (h *Host) displayPC() {
	if h.interactive {
		d, _ := h.disassemble(h.cpu.Reg.PC, displayAll)
		h.println(d)
	}
}

// Parse an address argument. A '.' or "pc" stands for the program
// counter.
func (h *Host) parseAddr(s string) (uint16, error) {
	switch strings.ToLower(s) {
	case ".", "pc":
		return h.cpu.Reg.PC, nil
	}
	return parseAddr(s)
}

func (h *Host) cmdBreakpointList(c *command, args []string) error {
	h.println("Addr  Enabled")
	h.println("----- -------")
	for _, b := range h.debugger.GetBreakpoints() {
		h.printf("$%04X %v\n", b.Address, !b.Disabled)
	}
	return nil
}

func (h *Host) cmdBreakpointAdd(c *command, args []string) error {
	if len(args) < 1 {
		h.displayHelpText(c)
		return nil
	}

	addr, err := h.parseAddr(args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.debugger.AddBreakpoint(addr)
	h.printf("Breakpoint added at $%04X.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointRemove(c *command, args []string) error {
	if len(args) < 1 {
		h.displayHelpText(c)
		return nil
	}

	addr, err := h.parseAddr(args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if h.debugger.GetBreakpoint(addr) == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.debugger.RemoveBreakpoint(addr)
	h.printf("Breakpoint at $%04X removed.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointEnable(c *command, args []string) error {
	return h.enableBreakpoint(c, args, true)
}

func (h *Host) cmdBreakpointDisable(c *command, args []string) error {
	return h.enableBreakpoint(c, args, false)
}

func (h *Host) enableBreakpoint(c *command, args []string, enable bool) error {
	if len(args) < 1 {
		h.displayHelpText(c)
		return nil
	}

	addr, err := h.parseAddr(args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b := h.debugger.GetBreakpoint(addr)
	if b == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return nil
	}

	b.Disabled = !enable
	h.printf("Breakpoint at $%04X %s.\n", addr, enabledString(enable))
	return nil
}

func (h *Host) cmdDataBreakpointList(c *command, args []string) error {
	h.println("Addr  Enabled  Value")
	h.println("----- -------  -----")
	for _, b := range h.debugger.GetDataBreakpoints() {
		if b.Conditional {
			h.printf("$%04X %-5v    $%02X\n", b.Address, !b.Disabled, b.Value)
		} else {
			h.printf("$%04X %-5v    <none>\n", b.Address, !b.Disabled)
		}
	}
	return nil
}

func (h *Host) cmdDataBreakpointAdd(c *command, args []string) error {
	if len(args) < 1 {
		h.displayHelpText(c)
		return nil
	}

	addr, err := h.parseAddr(args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if len(args) > 1 {
		value, err := parseByte(args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.debugger.AddConditionalDataBreakpoint(addr, value)
		h.printf("Conditional data breakpoint added at $%04X for value $%02X.\n", addr, value)
	} else {
		h.debugger.AddDataBreakpoint(addr)
		h.printf("Data breakpoint added at $%04X.\n", addr)
	}

	return nil
}

func (h *Host) cmdDataBreakpointRemove(c *command, args []string) error {
	if len(args) < 1 {
		h.displayHelpText(c)
		return nil
	}

	addr, err := h.parseAddr(args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if h.debugger.GetDataBreakpoint(addr) == nil {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.debugger.RemoveDataBreakpoint(addr)
	h.printf("Data breakpoint at $%04X removed.\n", addr)
	return nil
}

func (h *Host) cmdDataBreakpointEnable(c *command, args []string) error {
	return h.enableDataBreakpoint(c, args, true)
}

func (h *Host) cmdDataBreakpointDisable(c *command, args []string) error {
	return h.enableDataBreakpoint(c, args, false)
}

func (h *Host) enableDataBreakpoint(c *command, args []string, enable bool) error {
	if len(args) < 1 {
		h.displayHelpText(c)
		return nil
	}

	addr, err := h.parseAddr(args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b := h.debugger.GetDataBreakpoint(addr)
	if b == nil {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
		return nil
	}

	b.Disabled = !enable
	h.printf("Data breakpoint at $%04X %s.\n", addr, enabledString(enable))
	return nil
}

func (h *Host) cmdDisassemble(c *command, args []string) error {
	addr := h.settings.NextDisasmAddr
	if addr == 0 {
		addr = h.cpu.Reg.PC
	}

	if len(args) > 0 && args[0] != "$" {
		a, err := h.parseAddr(args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}

	lines := h.settings.DisasmLines
	if len(args) > 1 {
		l, err := parseNumber(args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		lines = int(l)
	}

	for i := 0; i < lines; i++ {
		d, next := h.disassemble(addr, 0)
		h.println(d)
		addr = next
	}

	h.settings.NextDisasmAddr = addr
	h.lastCmd.args = []string{"$", strconv.Itoa(lines)}
	return nil
}

func (h *Host) cmdDump(c *command, args []string) error {
	filename := h.settings.DumpFile
	if len(args) > 0 {
		filename = args[0]
	}

	if err := h.DumpFile(filename); err != nil {
		h.printf("Failed to dump memory: %v\n", err)
		return nil
	}

	h.printf("Memory dumped to '%s'.\n", filepath.Base(filename))
	return nil
}

func (h *Host) cmdHelp(c *command, args []string) error {
	if len(args) == 0 {
		h.displayCommands()
		return nil
	}

	n, _, err := lookup(strings.Join(args, " "))
	if err != nil {
		h.println("Command not found.")
		return nil
	}

	switch n := n.(type) {
	case *cmd.Command:
		hc, ok := n.Data.(*command)
		if !ok {
			break
		}
		if hc.usage != "" {
			h.printf("Syntax: %s\n\n", hc.usage)
		}
		switch {
		case hc.description != "":
			h.printf("Description:\n%s\n\n", indentWrap(3, hc.description))
		case hc.brief != "":
			h.printf("Description:\n%s.\n\n", indentWrap(3, hc.brief))
		}
	case *cmd.Tree:
		if g, ok := n.Data.(*group); ok {
			h.displayGroup(g)
		}
	}
	return nil
}

func (h *Host) cmdLoad(c *command, args []string) error {
	if len(args) < 2 {
		h.displayHelpText(c)
		return nil
	}

	addr, err := h.parseAddr(args[1])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if err := h.LoadFile(args[0], addr); err != nil {
		h.printf("Failed to load: %v\n", err)
	}
	return nil
}

func (h *Host) cmdMemoryDump(c *command, args []string) error {
	addr := h.settings.NextMemDumpAddr
	if addr == 0 {
		addr = h.cpu.Reg.PC
	}

	if len(args) > 0 && args[0] != "$" {
		a, err := h.parseAddr(args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}

	bytes := uint16(h.settings.MemDumpBytes)
	if len(args) > 1 {
		var err error
		bytes, err = parseAddr(args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
	}

	h.dumpMemory(addr, bytes)

	h.settings.NextMemDumpAddr = addr + bytes
	h.lastCmd.args = []string{"$", strconv.Itoa(int(bytes))}
	return nil
}

func (h *Host) cmdMemorySet(c *command, args []string) error {
	if len(args) < 2 {
		h.displayHelpText(c)
		return nil
	}

	addr, err := h.parseAddr(args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b := make([]byte, 0, len(args)-1)
	for _, a := range args[1:] {
		v, err := parseByte(a)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		b = append(b, v)
	}

	for i, v := range b {
		h.mem.StoreByte(addr+uint16(i), v)
	}
	h.dumpMemory(addr, uint16(len(b)))
	return nil
}

func (h *Host) cmdMemoryPage(c *command, args []string) error {
	addr := h.cpu.Reg.PC
	if len(args) > 0 {
		a, err := h.parseAddr(args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}

	for _, l := range renderPage(h.mem, addr&0xff00) {
		h.println(l)
	}
	return nil
}

func (h *Host) cmdQuit(c *command, args []string) error {
	return errQuit
}

func (h *Host) cmdRegisters(c *command, args []string) error {
	d, _ := h.disassemble(h.cpu.Reg.PC, displayAll)
	h.println(d)
	return nil
}

func (h *Host) cmdReset(c *command, args []string) error {
	h.Reset()
	h.printf("CPU reset to $%04X.\n", h.cpu.Reg.PC)
	return nil
}

func (h *Host) cmdRun(c *command, args []string) error {
	if len(args) > 0 {
		pc, err := h.parseAddr(args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.cpu.SetPC(pc)
	}

	h.printf("Running from $%04X. Press ctrl-C to break.\n", h.cpu.Reg.PC)

	h.interrupted.Store(false)
	h.state = stateRunning
	h.runUntilBreak()
	h.state = stateProcessingCommands

	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	return nil
}

func (h *Host) cmdSet(c *command, args []string) error {
	switch len(args) {
	case 0:
		h.println("Variables:")
		h.settings.Display(h.output)
		h.flush()

	case 1:
		h.displayHelpText(c)

	default:
		key, value := strings.ToLower(args[0]), strings.Join(args[1:], " ")
		if h.setRegister(key, value) {
			return nil
		}

		// Setting a host setting?
		var err error
		switch h.settings.Kind(key) {
		case reflect.Invalid:
			err = fmt.Errorf("setting '%s' not found", key)
		case reflect.String:
			err = h.settings.Set(key, value)
		case reflect.Bool:
			var v bool
			v, err = stringToBool(value)
			if err == nil {
				err = h.settings.Set(key, v)
			}
		default:
			var v uint64
			v, err = parseNumber(value)
			if err == nil {
				err = h.settings.Set(key, v)
			}
		}

		if err == nil {
			h.println("Setting updated.")
		} else {
			h.printf("%v\n", err)
		}
	}

	return nil
}

// Set a register or status flag. Return false if 'key' names neither.
func (h *Host) setRegister(key, value string) bool {
	reg := &h.cpu.Reg

	var flag cpu.Flag
	switch key {
	case "a", "x", "y", "sp":
		v, err := parseByte(value)
		if err != nil {
			h.printf("%v\n", err)
			return true
		}
		switch key {
		case "a":
			reg.A = v
		case "x":
			reg.X = v
		case "y":
			reg.Y = v
		case "sp":
			reg.SP = v
		}
		h.printf("Register %s set to $%02X.\n", strings.ToUpper(key), v)
		return true

	case "pc", ".":
		v, err := parseAddr(value)
		if err != nil {
			h.printf("%v\n", err)
			return true
		}
		reg.PC = v
		h.settings.NextDisasmAddr = v
		h.printf("Register PC set to $%04X.\n", v)
		return true

	case "c", "carry":
		flag = cpu.Carry
	case "z", "zero":
		flag = cpu.Zero
	case "i", "interrupt":
		flag = cpu.InterruptDisable
	case "d", "decimal":
		flag = cpu.Decimal
	case "v", "overflow":
		flag = cpu.Overflow
	case "n", "negative":
		flag = cpu.Negative
	default:
		return false
	}

	v, err := stringToBool(value)
	if err != nil {
		h.printf("%v\n", err)
		return true
	}
	reg.SetFlag(flag, v)
	h.printf("Flag %v set to %v.\n", flag, v)
	return true
}

func (h *Host) cmdStepIn(c *command, args []string) error {
	return h.stepCount(args, h.step)
}

func (h *Host) cmdStepOver(c *command, args []string) error {
	return h.stepCount(args, h.stepOver)
}

func (h *Host) stepCount(args []string, step func()) error {
	// Parse the number of steps.
	count := 1
	if len(args) > 0 {
		n, err := parseNumber(args[0])
		if err == nil {
			count = int(n)
		}
	}

	// Step the CPU count times.
	h.interrupted.Store(false)
	h.state = stateRunning
	for i := count - 1; i >= 0 && h.state == stateRunning; i-- {
		if h.checkBreak() {
			break
		}
		step()
		switch {
		case i == h.settings.MaxStepLines:
			h.println("...")
		case i < h.settings.MaxStepLines:
			h.displayPC()
		}
	}
	h.state = stateProcessingCommands

	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	return nil
}

func (h *Host) step() {
	h.cpu.Step()
	if h.settings.Trace {
		d, _ := h.disassemble(h.cpu.LastPC, displayAll)
		h.println(d)
	}
}

// Step until a breakpoint is hit, the CPU is interrupted, or an
// instruction branches to itself.
func (h *Host) runUntilBreak() {
	for h.state == stateRunning {
		if h.checkBreak() {
			break
		}
		h.step()
		if h.cpu.Reg.PC == h.cpu.LastPC && h.state == stateRunning {
			h.printf("CPU trapped at $%04X.\n", h.cpu.Reg.PC)
			h.state = stateBreakpoint
		}
	}
}

func (h *Host) stepOver() {
	cpu := h.cpu

	// JSR instructions need to be handled specially.
	inst := cpu.GetInstruction(cpu.Reg.PC)
	if inst.Name != "JSR" {
		h.step()
		return
	}

	// Place a step-over breakpoint on the instruction following the JSR.
	// Either modify an already existing breakpoint on that instruction, or
	// create a temporary one.
	next := cpu.NextAddr(cpu.Reg.PC)
	tmpBreakpointCreated := false
	b := h.debugger.GetBreakpoint(next)
	if b == nil {
		b = h.debugger.AddBreakpoint(next)
		tmpBreakpointCreated = true
	}
	b.StepOver = true

	// Run until interrupted.
	h.runUntilBreak()
	b.StepOver = false

	// If we were interrupted by the temporary step-over breakpoint,
	// then continue as normal.
	if h.state == stateStepOverBreakpoint {
		h.state = stateRunning
	}

	// Remove the temporarily created breakpoint.
	if tmpBreakpointCreated {
		h.debugger.RemoveBreakpoint(next)
	}
}

func (h *Host) disassemble(addr uint16, flags displayFlags) (str string, next uint16) {
	var line string
	line, next = disasm.Disassemble(h.mem, addr)

	b := make([]byte, next-addr)
	for i := range b {
		b[i] = h.mem.LoadByte(addr + uint16(i))
	}

	str = fmt.Sprintf("%04X-   %-8s    %-15s", addr, codeString(b), line)

	if (flags & displayRegisters) != 0 {
		if h.settings.CompactMode {
			str += " " + disasm.GetCompactRegisterString(&h.cpu.Reg)
		} else {
			str += " " + disasm.GetRegisterString(&h.cpu.Reg)
		}
	}

	if (flags & displayCycles) != 0 {
		str += fmt.Sprintf(" C=%d", h.cpu.Cycles)
	}

	return str, next
}

func (h *Host) dumpMemory(addr0, bytes uint16) {
	if bytes == 0 {
		return
	}

	addr1 := addr0 + bytes - 1
	if addr1 < addr0 {
		addr1 = 0xffff
	}

	buf := []byte("    -" + strings.Repeat(" ", 35))

	// Don't align display for short dumps.
	if addr1-addr0 < 8 {
		addrToBuf(addr0, buf[0:4])
		for a, c1, c2 := uint32(addr0), 6, 32; a <= uint32(addr1); a, c1, c2 = a+1, c1+3, c2+1 {
			m := h.mem.LoadByte(uint16(a))
			byteToBuf(m, buf[c1:c1+2])
			buf[c2] = toPrintableChar(m)
		}
		h.println(string(buf))
		return
	}

	// Align addr0 and addr1 to 8-byte boundaries.
	start := uint32(addr0) & 0xfff8
	stop := (uint32(addr1) + 8) & 0xffff8
	if stop > 0x10000 {
		stop = 0x10000
	}

	a := uint16(start)
	for r := start; r < stop; r += 8 {
		addrToBuf(a, buf[0:4])
		for c1, c2 := 6, 32; c1 < 29; c1, c2, a = c1+3, c2+1, a+1 {
			if a >= addr0 && a <= addr1 {
				m := h.mem.LoadByte(a)
				byteToBuf(m, buf[c1:c1+2])
				buf[c2] = toPrintableChar(m)
			} else {
				buf[c1] = ' '
				buf[c1+1] = ' '
				buf[c2] = ' '
			}
		}
		h.println(string(buf))
	}
}

func (h *Host) displayHelpText(c *command) {
	if c.usage != "" {
		h.printf("Syntax: %s\n", c.usage)
	} else {
		h.println("<no help text>")
	}
}

func (h *Host) displayCommands() {
	type entry struct{ name, brief string }
	var entries []entry
	for _, c := range topLevel {
		entries = append(entries, entry{c.name, c.brief})
	}
	for _, g := range cmdGroups {
		entries = append(entries, entry{g.name, g.brief})
	}
	slices.SortFunc(entries, func(a, b entry) int { return strings.Compare(a.name, b.name) })

	h.println("sim6502 commands:")
	for _, e := range entries {
		if e.brief != "" {
			h.printf("    %-15s  %s\n", e.name, e.brief)
		}
	}
}

func (h *Host) displayGroup(g *group) {
	h.printf("%s commands:\n", g.name)
	for _, c := range g.commands {
		h.printf("    %-15s  %s\n", c.name, c.brief)
	}
}

func (h *Host) onBreakpoint(cpu *cpu.CPU, b *cpu.Breakpoint) {
	if b.StepOver {
		h.state = stateStepOverBreakpoint
	} else {
		h.state = stateBreakpoint
		h.printf("Breakpoint hit at $%04X.\n", b.Address)
		h.displayPC()
	}
}

func (h *Host) onDataBreakpoint(cpu *cpu.CPU, b *cpu.DataBreakpoint) {
	h.printf("Data breakpoint hit on address $%04X.\n", b.Address)

	h.state = stateBreakpoint

	if cpu.LastPC != cpu.Reg.PC {
		d, _ := h.disassemble(cpu.LastPC, displayAll)
		h.println(d)
	}

	h.displayPC()
}

func enabledString(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
