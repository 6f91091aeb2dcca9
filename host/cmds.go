// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"strings"

	"github.com/beevik/cmd"
)

// A command describes one host command. It is stored as the data of its
// entry in the command tree.
type command struct {
	name        string
	brief       string
	description string
	usage       string
	group       string // set on group shortcuts
	handler     func(h *Host, c *command, args []string) error
}

// A group is a named subtree of commands.
type group struct {
	name     string
	brief    string
	commands []*command
}

var (
	cmds      *cmd.Tree
	topLevel  []*command
	cmdGroups []*group
)

func addCommand(t *cmd.Tree, c *command) *command {
	t.AddCommand(cmd.CommandDescriptor{
		Name:        c.name,
		Brief:       c.brief,
		Description: c.description,
		Usage:       c.usage,
		Data:        c,
	})
	return c
}

func addGroup(root *cmd.Tree, name, brief string, commands ...*command) {
	g := &group{name: name, brief: brief}
	t := root.AddSubtree(cmd.TreeDescriptor{Name: name, Brief: brief, Data: g})
	for _, c := range commands {
		g.commands = append(g.commands, addCommand(t, c))
	}
	cmdGroups = append(cmdGroups, g)
}

func addTopLevel(root *cmd.Tree, c *command) {
	topLevel = append(topLevel, addCommand(root, c))
}

// Tree shortcuts only resolve to commands, so a shortcut to a whole group
// is added as a command that names the group.
func addGroupShortcut(root *cmd.Tree, shortcut, name string) {
	addCommand(root, &command{name: shortcut, group: name})
}

// Look up a command line in the command tree. A group shortcut is
// replaced by its group before the rest of the line is matched.
func lookup(line string) (cmd.Node, []string, error) {
	n, args, err := cmds.Lookup(line)
	if err != nil {
		return nil, nil, err
	}
	if c, ok := n.(*cmd.Command); ok {
		if hc, ok := c.Data.(*command); ok && hc.group != "" {
			return cmds.Lookup(hc.group + " " + strings.Join(args, " "))
		}
	}
	return n, args, nil
}

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "sim6502"})

	addTopLevel(root, &command{
		name:        "help",
		description: "Display help for a command.",
		usage:       "help [<command>]",
		handler:     (*Host).cmdHelp,
	})

	// Breakpoint commands
	addGroup(root, "breakpoint", "Breakpoint commands",
		&command{
			name:        "list",
			brief:       "List breakpoints",
			description: "List all current breakpoints.",
			usage:       "breakpoint list",
			handler:     (*Host).cmdBreakpointList,
		},
		&command{
			name:  "add",
			brief: "Add a breakpoint",
			description: "Add a breakpoint at the specified address." +
				" The breakpoint starts enabled.",
			usage:   "breakpoint add <address>",
			handler: (*Host).cmdBreakpointAdd,
		},
		&command{
			name:        "remove",
			brief:       "Remove a breakpoint",
			description: "Remove a breakpoint at the specified address.",
			usage:       "breakpoint remove <address>",
			handler:     (*Host).cmdBreakpointRemove,
		},
		&command{
			name:        "enable",
			brief:       "Enable a breakpoint",
			description: "Enable a previously added breakpoint.",
			usage:       "breakpoint enable <address>",
			handler:     (*Host).cmdBreakpointEnable,
		},
		&command{
			name:  "disable",
			brief: "Disable a breakpoint",
			description: "Disable a previously added breakpoint. This" +
				" prevents the breakpoint from being hit when running the" +
				" CPU.",
			usage:   "breakpoint disable <address>",
			handler: (*Host).cmdBreakpointDisable,
		},
	)

	// Data breakpoint commands
	addGroup(root, "databreakpoint", "Data breakpoint commands",
		&command{
			name:        "list",
			brief:       "List data breakpoints",
			description: "List all current data breakpoints.",
			usage:       "databreakpoint list",
			handler:     (*Host).cmdDataBreakpointList,
		},
		&command{
			name:  "add",
			brief: "Add a data breakpoint",
			description: "Add a new data breakpoint at the specified" +
				" memory address. When the CPU stores data at this address," +
				" the breakpoint will stop the CPU. Optionally, a byte" +
				" value may be specified, and the CPU will stop only" +
				" when this value is stored.",
			usage:   "databreakpoint add <address> [<value>]",
			handler: (*Host).cmdDataBreakpointAdd,
		},
		&command{
			name:  "remove",
			brief: "Remove a data breakpoint",
			description: "Remove a previously added data breakpoint at" +
				" the specified memory address.",
			usage:   "databreakpoint remove <address>",
			handler: (*Host).cmdDataBreakpointRemove,
		},
		&command{
			name:        "enable",
			brief:       "Enable a data breakpoint",
			description: "Enable a previously added data breakpoint.",
			usage:       "databreakpoint enable <address>",
			handler:     (*Host).cmdDataBreakpointEnable,
		},
		&command{
			name:        "disable",
			brief:       "Disable a data breakpoint",
			description: "Disable a previously added data breakpoint.",
			usage:       "databreakpoint disable <address>",
			handler:     (*Host).cmdDataBreakpointDisable,
		},
	)

	addTopLevel(root, &command{
		name:  "disassemble",
		brief: "Disassemble code",
		description: "Disassemble machine code starting at the requested" +
			" address. The number of instruction lines to disassemble may be" +
			" specified as an option. If no address is specified, the" +
			" disassembly continues from where the last disassembly left off.",
		usage:   "disassemble [<address>] [<lines>]",
		handler: (*Host).cmdDisassemble,
	})
	addTopLevel(root, &command{
		name:  "dump",
		brief: "Dump memory to a file",
		description: "Write the entire 64K memory image to a file." +
			" If no filename is given, dump.bin is used.",
		usage:   "dump [<filename>]",
		handler: (*Host).cmdDump,
	})
	addTopLevel(root, &command{
		name:  "load",
		brief: "Load a binary file",
		description: "Load the raw contents of a binary file into the" +
			" emulated system's memory at the specified address.",
		usage:   "load <filename> <address>",
		handler: (*Host).cmdLoad,
	})

	// Memory commands
	addGroup(root, "memory", "Memory commands",
		&command{
			name:  "dump",
			brief: "Dump memory at address",
			description: "Dump the contents of memory starting from the" +
				" specified address. The number of bytes to dump may be" +
				" specified as an option. If no address is specified, the" +
				" memory dump continues from where the last dump left off.",
			usage:   "memory dump [<address>] [<bytes>]",
			handler: (*Host).cmdMemoryDump,
		},
		&command{
			name:  "set",
			brief: "Set memory at address",
			description: "Set the contents of memory starting from the specified" +
				" address. The values to assign should be a series of" +
				" space-separated byte values.",
			usage:   "memory set <address> <byte> [<byte> ...]",
			handler: (*Host).cmdMemorySet,
		},
		&command{
			name:  "page",
			brief: "Display a memory page",
			description: "Display the 256-byte page containing the specified" +
				" address as 16 rows of hexadecimal bytes with their ASCII" +
				" characters.",
			usage:   "memory page <address>",
			handler: (*Host).cmdMemoryPage,
		},
	)

	addTopLevel(root, &command{
		name:  "monitor",
		brief: "Start the full-screen monitor",
		description: "Display the registers and four memory pages on a" +
			" full screen. Press Enter to step the CPU, R to reset it and" +
			" Q to return to the command prompt.",
		usage:   "monitor",
		handler: (*Host).cmdMonitor,
	})
	addTopLevel(root, &command{
		name:        "quit",
		brief:       "Quit the program",
		description: "Quit the program.",
		usage:       "quit",
		handler:     (*Host).cmdQuit,
	})
	addTopLevel(root, &command{
		name:  "registers",
		brief: "Display register contents",
		description: "Display the current contents of all CPU registers, and" +
			" disassemble the instruction at the current program counter address.",
		usage:   "registers",
		handler: (*Host).cmdRegisters,
	})
	addTopLevel(root, &command{
		name:  "reset",
		brief: "Reset the CPU",
		description: "Reset the CPU. The program counter is loaded from the" +
			" reset vector at $FFFC and the cycle counter is cleared.",
		usage:   "reset",
		handler: (*Host).cmdReset,
	})
	addTopLevel(root, &command{
		name:  "run",
		brief: "Run the CPU",
		description: "Run the CPU until a breakpoint is hit, the CPU traps" +
			" in a jump to itself, or the user types Ctrl-C.",
		usage:   "run [<address>]",
		handler: (*Host).cmdRun,
	})
	addTopLevel(root, &command{
		name:  "set",
		brief: "Set a register or configuration variable",
		description: "Set the value of a register, a status flag or a" +
			" configuration variable. Registers are A, X, Y, SP and PC." +
			" Flags are C, Z, I, D, V and N. To see the current values of" +
			" all configuration variables, type set without any arguments.",
		usage:   "set [<var> <value>]",
		handler: (*Host).cmdSet,
	})

	// Step commands
	addGroup(root, "step", "Step the CPU",
		&command{
			name:  "in",
			brief: "Step into next instruction",
			description: "Step the CPU by a single instruction. If the" +
				" instruction is a subroutine call, step into the subroutine." +
				" The number of steps may be specified as an option.",
			usage:   "step in [<count>]",
			handler: (*Host).cmdStepIn,
		},
		&command{
			name:  "over",
			brief: "Step over next instruction",
			description: "Step the CPU by a single instruction. If the" +
				" instruction is a subroutine call, step over the subroutine." +
				" The number of steps may be specified as an option.",
			usage:   "step over [<count>]",
			handler: (*Host).cmdStepOver,
		},
	)

	// Add command shortcuts.
	addGroupShortcut(root, "b", "breakpoint")
	addGroupShortcut(root, "bp", "breakpoint")
	root.AddShortcut("ba", "breakpoint add")
	root.AddShortcut("br", "breakpoint remove")
	root.AddShortcut("bl", "breakpoint list")
	root.AddShortcut("be", "breakpoint enable")
	root.AddShortcut("bd", "breakpoint disable")
	root.AddShortcut("d", "disassemble")
	addGroupShortcut(root, "db", "databreakpoint")
	addGroupShortcut(root, "dbp", "databreakpoint")
	root.AddShortcut("dbl", "databreakpoint list")
	root.AddShortcut("dba", "databreakpoint add")
	root.AddShortcut("dbr", "databreakpoint remove")
	root.AddShortcut("dbe", "databreakpoint enable")
	root.AddShortcut("dbd", "databreakpoint disable")
	root.AddShortcut("m", "memory dump")
	root.AddShortcut("ms", "memory set")
	root.AddShortcut("mp", "memory page")
	root.AddShortcut("r", "registers")
	root.AddShortcut("s", "step over")
	root.AddShortcut("si", "step in")
	root.AddShortcut("?", "help")
	root.AddShortcut(".", "registers")

	cmds = root
}
