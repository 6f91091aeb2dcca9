// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/sim6502/cpu"
	"github.com/beevik/sim6502/disasm"
	"github.com/beevik/term"
)

// Minimum terminal dimensions required by the full-screen monitor.
const (
	monitorMinWidth  = 150
	monitorMinHeight = 50
)

// ErrTerminalTooSmall is returned when the terminal cannot hold the
// full-screen monitor.
var ErrTerminalTooSmall = errors.New("terminal too small for monitor")

const (
	keyEnter  = '\r'
	keyLF     = '\n'
	keyCtrlC  = 3
	clearHome = "\x1b[H\x1b[2J"
)

type keyReader interface {
	readKey() (byte, error)
}

// A rawKeyReader reads single keystrokes from a terminal in raw input
// mode.
type rawKeyReader struct {
	f *os.File
}

func (r *rawKeyReader) readKey() (byte, error) {
	var b [1]byte
	for {
		n, err := r.f.Read(b[:])
		if err != nil {
			return 0, err
		}
		if n == 1 {
			return b[0], nil
		}
	}
}

// A lineKeyReader treats each input line as one keystroke. An empty line
// is the Enter key.
type lineKeyReader struct {
	s *bufio.Scanner
}

func (r *lineKeyReader) readKey() (byte, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	line := strings.TrimSpace(r.s.Text())
	if line == "" {
		return keyEnter, nil
	}
	return line[0], nil
}

// RunMonitor runs the full-screen monitor, reading keys from 'r' and
// drawing to 'w'. When 'r' is a terminal it is switched to raw input mode
// for the duration of the monitor.
func (h *Host) RunMonitor(r io.Reader, w io.Writer) error {
	h.setIO(r, w)
	err := h.monitor()
	h.flush()
	return err
}

func (h *Host) cmdMonitor(c *command, args []string) error {
	if err := h.monitor(); err != nil {
		h.printf("%v\n", err)
	}
	return nil
}

func (h *Host) monitor() error {
	if h.inputFile == nil || !term.IsTerminal(int(h.inputFile.Fd())) {
		return h.monitorLoop(&lineKeyReader{s: h.input})
	}

	fd := int(h.inputFile.Fd())
	width, height, err := term.GetSize(fd)
	if err != nil {
		return err
	}
	if width < monitorMinWidth || height < monitorMinHeight {
		return fmt.Errorf("%w: need %dx%d, have %dx%d",
			ErrTerminalTooSmall, monitorMinWidth, monitorMinHeight, width, height)
	}

	state, err := term.MakeRawInput(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, state)

	return h.monitorLoop(&rawKeyReader{f: h.inputFile})
}

func (h *Host) monitorLoop(keys keyReader) error {
	for {
		h.drawMonitor()

		k, err := keys.readKey()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch k {
		case keyEnter, keyLF:
			h.cpu.Step()
		case 'r', 'R':
			h.Reset()
		case 'q', 'Q', keyCtrlC:
			h.settings.NextDisasmAddr = h.cpu.Reg.PC
			return nil
		}
	}
}

func (h *Host) drawMonitor() {
	h.print(clearHome)
	h.print(fmt.Sprintf("sim6502 monitor    cycles: %d\r\n", h.cpu.Cycles))
	h.print(disasm.GetRegisterString(&h.cpu.Reg) + "\r\n")

	d, _ := h.disassemble(h.cpu.Reg.PC, 0)
	h.print("Next: " + d + "\r\n\r\n")

	pages := h.settings.monitorPages(h.cpu.Reg.PC)
	for row := 0; row < 2; row++ {
		left := renderPage(h.mem, pages[row*2])
		right := renderPage(h.mem, pages[row*2+1])
		for i := range left {
			h.print(left[i] + "  " + right[i] + "\r\n")
		}
		h.print("\r\n")
	}

	h.print("Enter=step  R=reset  Q=quit\r\n")
	h.flush()
}

// Render the 256-byte page starting at 'page' as a header line followed
// by 16 rows, each holding an address, 16 hex bytes and their printable
// characters.
func renderPage(m cpu.Memory, page uint16) []string {
	const (
		hexCol   = 7
		asciiCol = hexCol + 16*3 + 1
		width    = asciiCol + 16
	)

	lines := make([]string, 0, 17)

	hdr := []byte(strings.Repeat(" ", width))
	for i := 0; i < 16; i++ {
		byteToBuf(byte(i), hdr[hexCol+3*i:])
		hdr[asciiCol+i] = hexString[i]
	}
	lines = append(lines, string(hdr))

	addr := page & 0xff00
	for r := 0; r < 16; r++ {
		buf := []byte(strings.Repeat(" ", width))
		buf[0] = '$'
		addrToBuf(addr, buf[1:5])
		for i := 0; i < 16; i, addr = i+1, addr+1 {
			v := m.LoadByte(addr)
			byteToBuf(v, buf[hexCol+3*i:])
			buf[asciiCol+i] = toPrintableChar(v)
		}
		lines = append(lines, string(buf))
	}

	return lines
}
