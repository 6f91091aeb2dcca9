// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/beevik/sim6502/host"
)

var errBadLoadSpec = errors.New("load spec must be <address>:<file>")

// A loadSpec names a binary file and the address it is loaded to.
type loadSpec struct {
	addr     uint16
	filename string
}

// A loadList collects repeated -L flags.
type loadList []loadSpec

func (l *loadList) String() string {
	var s []string
	for _, ls := range *l {
		s = append(s, fmt.Sprintf("$%04X:%s", ls.addr, ls.filename))
	}
	return strings.Join(s, ",")
}

func (l *loadList) Set(value string) error {
	ls, err := parseLoadSpec(value)
	if err != nil {
		return err
	}
	*l = append(*l, ls)
	return nil
}

func parseLoadSpec(value string) (loadSpec, error) {
	addr, filename, ok := strings.Cut(value, ":")
	if !ok || filename == "" {
		return loadSpec{}, errBadLoadSpec
	}

	base := 10
	switch {
	case strings.HasPrefix(addr, "$"):
		addr, base = addr[1:], 16
	case strings.HasPrefix(addr, "0x"), strings.HasPrefix(addr, "0X"):
		addr, base = addr[2:], 16
	}
	v, err := strconv.ParseUint(addr, base, 16)
	if err != nil {
		return loadSpec{}, fmt.Errorf("%w: %v", errBadLoadSpec, err)
	}
	return loadSpec{addr: uint16(v), filename: filename}, nil
}

var (
	loads   loadList
	dump    bool
	follow  bool
	monitor bool
)

func init() {
	flag.Var(&loads, "L", "load `addr:file` into memory (repeatable)")
	flag.BoolVar(&dump, "d", false, "dump memory to dump.bin on exit")
	flag.BoolVar(&dump, "dump", false, "same as -d")
	flag.BoolVar(&follow, "f", false, "monitor follows the program counter")
	flag.BoolVar(&follow, "follow", false, "same as -f")
	flag.BoolVar(&monitor, "m", false, "start in the full-screen monitor")
	flag.BoolVar(&monitor, "monitor", false, "same as -m")
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: sim6502 [options] [script] ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	h := host.New()
	h.SetFollowPC(follow)

	// Load binary images and reset the CPU through the reset vector.
	for _, ls := range loads {
		if err := h.LoadFile(ls.filename, ls.addr); err != nil {
			exitOnError(err)
		}
	}
	h.Reset()

	// Run commands contained in command-line files.
	for _, filename := range flag.Args() {
		file, err := os.Open(filename)
		if err != nil {
			exitOnError(err)
		}
		h.RunCommands(file, os.Stdout, false)
		file.Close()
	}

	// Break on Ctrl-C.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go handleInterrupt(h, c)

	if monitor {
		if err := h.RunMonitor(os.Stdin, os.Stdout); err != nil {
			exitOnError(err)
		}
	} else {
		// Run commands interactively.
		h.RunCommands(os.Stdin, os.Stdout, true)
	}

	if dump {
		if err := h.DumpFile("dump.bin"); err != nil {
			exitOnError(err)
		}
	}
}

func handleInterrupt(h *host.Host, c chan os.Signal) {
	for {
		<-c
		h.Break()
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
