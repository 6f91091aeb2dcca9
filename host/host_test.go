package host

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/beevik/sim6502/cpu"
	"github.com/go-test/deep"
)

func newTestHost(t *testing.T) (*Host, *bytes.Buffer) {
	t.Helper()
	h := New()
	out := &bytes.Buffer{}
	h.setIO(strings.NewReader(""), out)
	return h, out
}

func runScript(h *Host, out *bytes.Buffer, lines ...string) string {
	out.Reset()
	h.RunCommands(strings.NewReader(strings.Join(lines, "\n")+"\n"), out, false)
	return out.String()
}

func expectOutput(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
}

func TestRunUntilTrap(t *testing.T) {
	h, out := newTestHost(t)
	s := runScript(h, out,
		"memory set $1000 $A9 $05 $85 $40 $4C $04 $10",
		"set pc $1000",
		"run",
	)

	expectOutput(t, s, "Running from $1000.")
	expectOutput(t, s, "CPU trapped at $1004.")
	if h.cpu.Reg.A != 0x05 || h.mem.LoadByte(0x40) != 0x05 {
		t.Errorf("program did not execute: A=%02X [$40]=%02X", h.cpu.Reg.A, h.mem.LoadByte(0x40))
	}
	if h.cpu.Cycles != 2+3+3 {
		t.Errorf("cycles incorrect. exp: %d, got: %d", 8, h.cpu.Cycles)
	}
}

func TestRunUntilBreakpoint(t *testing.T) {
	h, out := newTestHost(t)
	s := runScript(h, out,
		"ms $1000 $EA $EA $EA $4C $03 $10",
		"ba $1002",
		"run $1000",
		"bl",
	)

	expectOutput(t, s, "Breakpoint added at $1002.")
	expectOutput(t, s, "Breakpoint hit at $1002.")
	expectOutput(t, s, "$1002 true")
	if h.cpu.Reg.PC != 0x1002 {
		t.Errorf("PC incorrect. exp: $1002, got: $%04X", h.cpu.Reg.PC)
	}

	s = runScript(h, out, "bd $1002", "run", "br $1002", "br $1002")
	expectOutput(t, s, "Breakpoint at $1002 disabled.")
	expectOutput(t, s, "CPU trapped at $1003.")
	expectOutput(t, s, "Breakpoint at $1002 removed.")
	expectOutput(t, s, "No breakpoint was set on $1002.")
}

func TestDataBreakpointRun(t *testing.T) {
	h, out := newTestHost(t)
	s := runScript(h, out,
		"ms $1000 $A9 $07 $85 $40 $85 $41 $4C $06 $10",
		"dba $41",
		"dba $40 $08",
		"run $1000",
	)

	expectOutput(t, s, "Data breakpoint hit on address $0041.")
	if h.cpu.Reg.PC != 0x1006 {
		t.Errorf("PC incorrect. exp: $1006, got: $%04X", h.cpu.Reg.PC)
	}

	s = runScript(h, out, "dbl", "dbd $41", "dbr $40", "dbl")
	expectOutput(t, s, "$0040 true     $08")
	expectOutput(t, s, "$0041 true     <none>")
	expectOutput(t, s, "Data breakpoint at $0041 disabled.")
	expectOutput(t, s, "Data breakpoint at $0040 removed.")
	expectOutput(t, s, "$0041 false    <none>")
}

func TestStepOver(t *testing.T) {
	h, out := newTestHost(t)
	s := runScript(h, out,
		"ms $1000 $20 $10 $10 $EA",
		"ms $1010 $E8 $C8 $60",
		"set pc $1000",
		"step over",
	)

	expectOutput(t, s, "Register PC set to $1000.")
	if h.cpu.Reg.PC != 0x1003 {
		t.Errorf("PC incorrect. exp: $1003, got: $%04X", h.cpu.Reg.PC)
	}
	if h.cpu.Reg.X != 1 || h.cpu.Reg.Y != 1 {
		t.Errorf("subroutine not executed: X=%02X Y=%02X", h.cpu.Reg.X, h.cpu.Reg.Y)
	}
	if h.debugger.GetBreakpoint(0x1003) != nil {
		t.Error("temporary step-over breakpoint not removed")
	}
	if h.cpu.Cycles != 6+2+2+6 {
		t.Errorf("cycles incorrect. exp: %d, got: %d", 16, h.cpu.Cycles)
	}
}

func TestStepOverKeepsBreakpoint(t *testing.T) {
	h, out := newTestHost(t)
	runScript(h, out,
		"ms $1000 $20 $10 $10 $EA",
		"ms $1010 $60",
		"ba $1003",
		"set pc $1000",
		"s",
	)

	b := h.debugger.GetBreakpoint(0x1003)
	if b == nil {
		t.Fatal("user breakpoint removed by step over")
	}
	if b.StepOver {
		t.Error("step-over flag left on user breakpoint")
	}
	if h.cpu.Reg.PC != 0x1003 {
		t.Errorf("PC incorrect. exp: $1003, got: $%04X", h.cpu.Reg.PC)
	}
}

func TestStepIn(t *testing.T) {
	h, out := newTestHost(t)
	runScript(h, out,
		"ms $1000 $20 $10 $10 $EA",
		"ms $1010 $E8 $60",
		"set pc $1000",
		"si 2",
	)

	if h.cpu.Reg.PC != 0x1011 {
		t.Errorf("PC incorrect. exp: $1011, got: $%04X", h.cpu.Reg.PC)
	}
}

func TestRepeatLastCommand(t *testing.T) {
	h, out := newTestHost(t)
	s := runScript(h, out, "d $1000 2", "")

	for _, addr := range []string{"1000-", "1002-", "1004-", "1006-"} {
		expectOutput(t, s, addr)
	}
	if strings.Contains(s, "1008-") {
		t.Errorf("disassembled too far:\n%s", s)
	}
	if h.settings.NextDisasmAddr != 0x1008 {
		t.Errorf("next disassembly address incorrect: $%04X", h.settings.NextDisasmAddr)
	}
}

func TestDisassembleFormat(t *testing.T) {
	h, out := newTestHost(t)
	s := runScript(h, out, "ms $2000 $AD $34 $12", "d $2000 1")
	expectOutput(t, s, "2000-   AD 34 12    LDA $1234")
}

func TestMemoryDump(t *testing.T) {
	h, out := newTestHost(t)
	s := runScript(h, out, "ms $0300 $41 $42 $00", "m $0300 16")
	expectOutput(t, s, "0300- 41 42 00")
	expectOutput(t, s, "AB.")
	if h.settings.NextMemDumpAddr != 0x0310 {
		t.Errorf("next dump address incorrect: $%04X", h.settings.NextMemDumpAddr)
	}
}

func TestSetCommand(t *testing.T) {
	h, out := newTestHost(t)
	s := runScript(h, out,
		"set a $42",
		"set x 7",
		"set c 1",
		"set negative on",
		"set memdumpbytes 32",
		"set dumpfile image.bin",
		"set trace true",
		"set bogus 1",
		"set a $100",
	)

	exp := cpu.Registers{A: 0x42, X: 7, SP: 0xff, PS: 0xa1}
	if diff := deep.Equal(h.cpu.Reg, exp); diff != nil {
		t.Error(diff)
	}
	if h.settings.MemDumpBytes != 32 || h.settings.DumpFile != "image.bin" || !h.settings.Trace {
		t.Errorf("settings not updated: %+v", h.settings)
	}
	expectOutput(t, s, "setting 'bogus' not found")
	expectOutput(t, s, "value out of range")
}

func TestUnknownCommand(t *testing.T) {
	h, out := newTestHost(t)
	s := runScript(h, out, "frobnicate", "help reset")
	expectOutput(t, s, "Command not found.")
	expectOutput(t, s, "Syntax: reset")
}

func TestCommandGroups(t *testing.T) {
	tests := []struct {
		line  string
		group string
	}{
		{"help breakpoint", "breakpoint"},
		{"breakpoint", "breakpoint"},
		{"bre", "breakpoint"},
		{"b", "breakpoint"},
		{"bp", "breakpoint"},
		{"help b", "breakpoint"},
		{"databreakpoint", "databreakpoint"},
		{"db", "databreakpoint"},
		{"help dbp", "databreakpoint"},
		{"memory", "memory"},
		{"step", "step"},
	}

	for _, test := range tests {
		h, out := newTestHost(t)
		s := runScript(h, out, test.line)
		if !strings.HasPrefix(s, test.group+" commands:\n") {
			t.Errorf("%q: expected %s group listing, got:\n%s", test.line, test.group, s)
			continue
		}
		for _, c := range cmdGroups {
			if c.name != test.group {
				continue
			}
			for _, sub := range c.commands {
				expectOutput(t, s, "    "+sub.name+" ")
			}
		}
	}
}

func TestGroupShortcuts(t *testing.T) {
	h, out := newTestHost(t)
	s := runScript(h, out,
		"b add $1000",
		"bp add $2000",
		"db add $40 $01",
		"dbp add $41",
		"bl",
		"dbl",
	)

	expectOutput(t, s, "Breakpoint added at $1000.")
	expectOutput(t, s, "Breakpoint added at $2000.")
	expectOutput(t, s, "Conditional data breakpoint added at $0040 for value $01.")
	expectOutput(t, s, "Data breakpoint added at $0041.")
	if len(h.debugger.GetBreakpoints()) != 2 || len(h.debugger.GetDataBreakpoints()) != 2 {
		t.Errorf("breakpoints not added through group shortcuts:\n%s", s)
	}
}

func TestBreakInterruptsRun(t *testing.T) {
	h, out := newTestHost(t)
	runScript(h, out, "ms $1000 $E8 $4C $00 $10")

	done := make(chan struct{})
	go func() {
		h.RunCommands(strings.NewReader("run $1000\n"), out, false)
		close(done)
	}()

	timeout := time.After(5 * time.Second)
	for {
		h.Break()
		select {
		case <-done:
			if h.state != stateProcessingCommands {
				t.Errorf("host still running after break: state %d", h.state)
			}
			if pc := h.cpu.Reg.PC; pc != 0x1000 && pc != 0x1001 {
				t.Errorf("PC outside loop after break: $%04X", pc)
			}
			return
		case <-timeout:
			t.Fatal("run was not interrupted by Break")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestQuitStopsScript(t *testing.T) {
	h, out := newTestHost(t)
	runScript(h, out, "set a 1", "quit", "set a 2")
	if h.cpu.Reg.A != 1 {
		t.Errorf("commands ran after quit: A=%02X", h.cpu.Reg.A)
	}
}

func TestReset(t *testing.T) {
	h, out := newTestHost(t)
	h.mem.SetResetVector(0x4000)
	s := runScript(h, out, "reset")

	expectOutput(t, s, "CPU reset to $4000.")
	exp := cpu.Registers{SP: 0xfd, PC: 0x4000, PS: 0x24}
	if diff := deep.Equal(h.cpu.Reg, exp); diff != nil {
		t.Error(diff)
	}
}

func TestLoadAndDumpFile(t *testing.T) {
	h, out := newTestHost(t)
	dir := t.TempDir()

	prog := filepath.Join(dir, "prog.bin")
	if err := os.WriteFile(prog, []byte{0xa9, 0x01, 0x00}, 0644); err != nil {
		t.Fatal(err)
	}

	if err := h.LoadFile(prog, 0x8000); err != nil {
		t.Fatal(err)
	}
	expectOutput(t, out.String(), "Loaded 'prog.bin' to $8000..$8002")

	dump := filepath.Join(dir, "dump.bin")
	s := runScript(h, out, "dump "+dump)
	expectOutput(t, s, "Memory dumped to 'dump.bin'.")

	b, err := os.ReadFile(dump)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != cpu.MemorySize {
		t.Fatalf("dump size incorrect. exp: %d, got: %d", cpu.MemorySize, len(b))
	}
	if diff := deep.Equal(b[0x8000:0x8003], []byte{0xa9, 0x01, 0x00}); diff != nil {
		t.Error(diff)
	}
	if b[cpu.VectorReset] != 0x00 || b[cpu.VectorReset+1] != 0x80 {
		t.Errorf("reset vector missing from dump")
	}
}

func TestLoadFileErrors(t *testing.T) {
	h, _ := newTestHost(t)
	dir := t.TempDir()

	if err := h.LoadFile(filepath.Join(dir, "missing.bin"), 0); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected missing file error, got %v", err)
	}

	prog := filepath.Join(dir, "big.bin")
	if err := os.WriteFile(prog, []byte{1, 2, 3, 4}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := h.LoadFile(prog, 0xfffe); !errors.Is(err, cpu.ErrMemoryOutOfBounds) {
		t.Errorf("expected out of bounds error, got %v", err)
	}
	if h.mem.LoadByte(0xfffe) != 0x00 {
		t.Error("partial load written to memory")
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		s   string
		v   uint64
		err bool
	}{
		{"$ff", 0xff, false},
		{"$FFFF", 0xffff, false},
		{"0x1234", 0x1234, false},
		{"255", 255, false},
		{"0", 0, false},
		{"$", 0, true},
		{"12z", 0, true},
		{"-1", 0, true},
	}

	for _, test := range tests {
		v, err := parseNumber(test.s)
		if (err != nil) != test.err {
			t.Errorf("parseNumber(%q) error = %v", test.s, err)
			continue
		}
		if v != test.v {
			t.Errorf("parseNumber(%q) = %d, want %d", test.s, v, test.v)
		}
	}

	if _, err := parseAddr("$10000"); !errors.Is(err, errOutOfRange) {
		t.Errorf("expected out of range error, got %v", err)
	}
	if _, err := parseByte("256"); !errors.Is(err, errOutOfRange) {
		t.Errorf("expected out of range error, got %v", err)
	}
}

func TestRenderPage(t *testing.T) {
	m := cpu.NewFlatMemory()
	m.StoreByte(0x0200, 0x48)
	m.StoreByte(0x0201, 0x69)
	m.StoreByte(0x02ff, 0x7f)

	lines := renderPage(m, 0x02c4)
	if len(lines) != 17 {
		t.Fatalf("line count incorrect. exp: 17, got: %d", len(lines))
	}
	for i, l := range lines {
		if len(l) != 72 {
			t.Errorf("line %d length incorrect. exp: 72, got: %d", i, len(l))
		}
	}

	if !strings.HasPrefix(lines[0], "       00 01 02") || !strings.HasSuffix(lines[0], "0123456789ABCDEF") {
		t.Errorf("bad header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "$0200  48 69 00") || !strings.HasSuffix(lines[1], "Hi..............") {
		t.Errorf("bad first row: %q", lines[1])
	}
	if !strings.HasPrefix(lines[16], "$02F0  ") || !strings.HasSuffix(lines[16], "...............") {
		t.Errorf("bad last row: %q", lines[16])
	}
	if lines[16][7+15*3:7+15*3+2] != "7F" {
		t.Errorf("bad last byte: %q", lines[16])
	}
}

func TestMonitorPages(t *testing.T) {
	s := newSettings()
	if diff := deep.Equal(s.monitorPages(0x1234), [4]uint16{0x0000, 0x0100, 0x8000, 0xff00}); diff != nil {
		t.Error(diff)
	}

	s.FollowPC = true
	s.Page1 = 0x02ab
	if diff := deep.Equal(s.monitorPages(0x1234), [4]uint16{0x0200, 0x0100, 0x1200, 0xff00}); diff != nil {
		t.Error(diff)
	}
}

func TestMonitor(t *testing.T) {
	h, _ := newTestHost(t)
	h.mem.Load(0x8000, []byte{0xe8, 0xe8, 0xe8})
	h.Reset()

	out := &bytes.Buffer{}
	if err := h.RunMonitor(strings.NewReader("\n\nq\n"), out); err != nil {
		t.Fatal(err)
	}

	if h.cpu.Reg.PC != 0x8002 || h.cpu.Reg.X != 2 || h.cpu.Cycles != 4 {
		t.Errorf("monitor steps incorrect: PC=$%04X X=%02X C=%d", h.cpu.Reg.PC, h.cpu.Reg.X, h.cpu.Cycles)
	}

	s := out.String()
	if n := strings.Count(s, clearHome); n != 3 {
		t.Errorf("screen redraw count incorrect. exp: 3, got: %d", n)
	}
	expectOutput(t, s, "$8000  E8 E8 E8")
	expectOutput(t, s, "Enter=step  R=reset  Q=quit")
}

func TestMonitorReset(t *testing.T) {
	h, _ := newTestHost(t)
	h.mem.Load(0x8000, []byte{0xea, 0xea})
	h.Reset()

	out := &bytes.Buffer{}
	if err := h.RunMonitor(strings.NewReader("\nr\n"), out); err != nil {
		t.Fatal(err)
	}

	if h.cpu.Reg.PC != 0x8000 || h.cpu.Cycles != 0 {
		t.Errorf("monitor reset failed: PC=$%04X C=%d", h.cpu.Reg.PC, h.cpu.Cycles)
	}
}
