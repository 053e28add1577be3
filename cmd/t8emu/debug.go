// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/xnacly/tango8/pkg/debugger"
	"github.com/xnacly/tango8/pkg/encoding"
	"github.com/xnacly/tango8/pkg/machine"
)

var lastcmd []string
var scanner = bufio.NewScanner(os.Stdin)

// Accepts program counters as 0x-prefixed hex or decimal
func parseProgram(s string) (uint, error) {
	value, err := strconv.ParseUint(s, 0, 0)
	return uint(value), err
}

func parseCount(s string) (int, error) {
	value, err := strconv.ParseUint(s, 10, 16)
	return int(value), err
}

func indexFormat(count int) string {
	digits := math.Floor(math.Log10(float64(count + 1)))
	return fmt.Sprintf("#%%0%dd: ", int64(digits)+1)
}

func debugBreak(dbg *debugger.Debugger, args []string) {
	const usage = "break [add|list|remove|clear]"

	if len(args) == 0 {
		args = append(args, "l")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		const usage = "break add [0x####]"

		if len(args) != 1 {
			log.Println(usage)
			return
		}

		pc, err := parseProgram(args[0])

		if err != nil {
			log.Println(err)
			return
		}

		if dbg.AddBreakpoint(pc) {
			fmt.Printf("Breakpoint added [%#04x]\n", pc)
		}

	case "l", "ls", "list":
		format := indexFormat(len(dbg.Breakpoints)) + "%#04x\n"

		for i, breakpoint := range dbg.Breakpoints {
			fmt.Printf(format, i, breakpoint.Program)
		}

	case "r", "rm", "remove":
		const usage = "break remove [#]"

		if len(args) != 1 {
			log.Println(usage)
			return
		}

		i, err := strconv.Atoi(args[0])

		if err != nil {
			log.Println(err)
			return
		}

		if err := dbg.RemoveBreakpoint(i); err != nil {
			log.Println(err)
			return
		}

		fmt.Printf("Breakpoint removed [%d]\n", i)

	case "clear":
		dbg.Breakpoints = nil
		fmt.Println("Breakpoints reset")

	default:
		log.Printf("break: '%s' is not a valid command\n", cmd)
		log.Println(usage)
	}
}

func debugWatch(dbg *debugger.Debugger, args []string) {
	const usage = "watch [add|list|remove|clear]"

	if len(args) == 0 {
		args = append(args, "l")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		const usage = "watch add [0x#] [read|write|readwrite]"

		if len(args) != 2 {
			log.Println(usage)
			return
		}

		addr, err := encoding.DecodeLiteral(args[0])

		if err != nil {
			log.Println(err)
			return
		}

		if addr > machine.ADDR_MAX {
			log.Printf("Address %#x out of range", addr)
			return
		}

		var wtype debugger.WatchpointType

		switch args[1] {
		case "r", "read":
			wtype = debugger.ReadWatch
		case "w", "write":
			wtype = debugger.WriteWatch
		case "rw", "readwrite":
			wtype = debugger.ReadWriteWatch
		default:
			log.Println(usage)
			return
		}

		if dbg.AddWatchpoint(addr, wtype) {
			fmt.Printf("Watchpoint added [%#02x] (%s)\n", addr, wtype)
		}

	case "l", "ls", "list":
		format := indexFormat(len(dbg.Watchpoints)) + "%#02x %s\n"

		for i, watchpoint := range dbg.Watchpoints {
			fmt.Printf(format, i, watchpoint.Addr, watchpoint.Type)
		}

	case "r", "rm", "remove":
		const usage = "watch remove [#]"

		if len(args) != 1 {
			log.Println(usage)
			return
		}

		i, err := strconv.Atoi(args[0])

		if err != nil {
			log.Println(err)
			return
		}

		if err := dbg.RemoveWatchpoint(i); err != nil {
			log.Println(err)
			return
		}

		fmt.Printf("Watchpoint removed [%d]\n", i)

	case "clear":
		dbg.Watchpoints = nil
		fmt.Println("Watchpoints reset")

	default:
		log.Printf("watch: '%s' is not a valid command\n", cmd)
		log.Println(usage)
	}
}

func debugReg(dbg *debugger.Debugger, mc *machine.MachineState, args []string) {
	const usage = "register [AC|DEST|PC] [value]"

	if len(args) == 0 {
		dbg.PrintRegs(mc)
		return
	}

	if len(args) != 2 {
		log.Println(usage)
		return
	}

	name := strings.ToUpper(args[0])

	switch name {
	case "AC", "DEST":
		value, err := encoding.DecodeLiteral(args[1])

		if err != nil {
			log.Println(err)
			return
		}

		if name == "AC" {
			mc.Accumulator = value
		} else {
			mc.Destination = value
		}

	case "PC":
		value, err := parseProgram(args[1])

		if err != nil {
			log.Println(err)
			return
		}

		mc.Program = value

	default:
		log.Println("Invalid register")
		return
	}

	dbg.PrintRegs(mc)
}

func debugSource(dbg *debugger.Debugger, mc *machine.MachineState, args []string) {
	const usage = "source [0x####] [#]"

	if len(args) > 2 {
		log.Println(usage)
		return
	}

	pc := mc.Program
	count := 3

	if len(args) > 0 {
		value, err := parseProgram(args[0])

		if err != nil {
			log.Println(err)
			return
		}

		pc = value
	}

	if len(args) > 1 {
		value, err := parseCount(args[1])

		if err != nil {
			log.Println(err)
			return
		}

		count = value
	}

	dbg.PrintSource(pc, count)
}

func debugMemory(dbg *debugger.Debugger, mc *machine.MachineState, args []string) {
	const usage = "memory [0x#] [#]"

	if len(args) > 2 {
		log.Println(usage)
		return
	}

	addr := 0
	count := machine.MEMORY_SIZE

	if len(args) > 0 {
		value, err := encoding.DecodeLiteral(args[0])

		if err != nil {
			log.Println(err)
			return
		}

		addr = int(value)
		count = 1
	}

	if len(args) > 1 {
		value, err := parseCount(args[1])

		if err != nil {
			log.Println(err)
			return
		}

		count = value
	}

	dbg.PrintMem(mc, addr, count)
}

func debugSet(dbg *debugger.Debugger, mc *machine.MachineState, args []string) {
	const usage = "set [0x#] [value]"

	if len(args) != 2 {
		log.Println(usage)
		return
	}

	addr, err := encoding.DecodeLiteral(args[0])

	if err != nil {
		log.Println(err)
		return
	}

	if addr > machine.ADDR_MAX {
		log.Printf("Address %#x out of range", addr)
		return
	}

	value, err := encoding.DecodeLiteral(args[1])

	if err != nil {
		log.Println(err)
		return
	}

	mc.Memory[addr] = value
	dbg.PrintMem(mc, int(addr), 1)
}

type command struct {
	names []string
	usage string

	// Returns true when execution should resume
	run func(dbg *debugger.Debugger, mc *machine.Machine, args []string) bool
}

var commands []command

func init() {
	commands = []command{
		{[]string{"b", "bp", "break", "breakpoint"}, "break [add|list|remove|clear]",
			func(dbg *debugger.Debugger, mc *machine.Machine, args []string) bool {
				debugBreak(dbg, args)
				return false
			}},
		{[]string{"w", "wp", "watch", "watchpoint"}, "watch [add|list|remove|clear]",
			func(dbg *debugger.Debugger, mc *machine.Machine, args []string) bool {
				debugWatch(dbg, args)
				return false
			}},
		{[]string{"r", "reg", "register", "registers"}, "register [AC|DEST|PC] [value]",
			func(dbg *debugger.Debugger, mc *machine.Machine, args []string) bool {
				debugReg(dbg, &mc.State, args)
				return false
			}},
		{[]string{"s", "src", "source"}, "source [0x####] [#]",
			func(dbg *debugger.Debugger, mc *machine.Machine, args []string) bool {
				debugSource(dbg, &mc.State, args)
				return false
			}},
		{[]string{"k", "const", "constants"}, "constants",
			func(dbg *debugger.Debugger, mc *machine.Machine, args []string) bool {
				dbg.PrintConstants()
				return false
			}},
		{[]string{"m", "mem", "memory"}, "memory [0x#] [#]",
			func(dbg *debugger.Debugger, mc *machine.Machine, args []string) bool {
				debugMemory(dbg, &mc.State, args)
				return false
			}},
		{[]string{"set"}, "set [0x#] [value]",
			func(dbg *debugger.Debugger, mc *machine.Machine, args []string) bool {
				debugSet(dbg, &mc.State, args)
				return false
			}},
		{[]string{"c", "continue"}, "continue",
			func(dbg *debugger.Debugger, mc *machine.Machine, args []string) bool {
				dbg.Break.Store(false)
				return true
			}},
		{[]string{"n", "next"}, "next",
			func(dbg *debugger.Debugger, mc *machine.Machine, args []string) bool {
				dbg.Break.Store(true)
				return true
			}},
		{[]string{"q", "quit", "exit"}, "quit",
			func(dbg *debugger.Debugger, mc *machine.Machine, args []string) bool {
				mc.State.Halted = true
				return true
			}},
		{[]string{"reset"}, "reset",
			func(dbg *debugger.Debugger, mc *machine.Machine, args []string) bool {
				mc.Load(mc.Code)
				fmt.Println("Machine reset")
				return false
			}},
		{[]string{"clear"}, "clear",
			func(dbg *debugger.Debugger, mc *machine.Machine, args []string) bool {
				fmt.Print("\033[H\033[2J")
				return false
			}},
		{[]string{"h", "help"}, "help",
			func(dbg *debugger.Debugger, mc *machine.Machine, args []string) bool {
				for _, cmd := range commands {
					fmt.Printf("%-8s %s\n", cmd.names[len(cmd.names)-1], cmd.usage)
				}
				return false
			}},
	}
}

func findCommand(name string) *command {
	for i := range commands {
		for _, alias := range commands[i].names {
			if alias == name {
				return &commands[i]
			}
		}
	}

	return nil
}

// Reads commands until one resumes execution. End of input quits.
func debugREPL(dbg *debugger.Debugger, mc *machine.Machine) {
	for {
		fmt.Print("(dbg) ")

		if !scanner.Scan() {
			fmt.Println()
			mc.State.Halted = true
			return
		}

		args := strings.Fields(scanner.Text())

		// An empty line repeats the previous command
		if len(args) == 0 {
			args = lastcmd
		} else {
			lastcmd = args
		}

		if len(args) == 0 {
			continue
		}

		cmd := findCommand(args[0])

		if cmd == nil {
			fmt.Printf("error: '%s' is not a valid command, try 'help'\n", args[0])
			continue
		}

		if cmd.run(dbg, mc, args[1:]) {
			return
		}
	}
}

func handleBreak(dbg *debugger.Debugger, mc *machine.Machine) {
	if !dbg.Break.Load() {
		fmt.Println()
		fmt.Println("Program stopped")
	}

	dbg.PrintSource(mc.State.Program, 1)
	debugREPL(dbg, mc)
}

func handleRead(addr uint8, dbg *debugger.Debugger, mc *machine.Machine) {
	fmt.Println()
	fmt.Println("Program stopped on read")
	dbg.PrintMem(&mc.State, int(addr), 1)
	debugREPL(dbg, mc)
}

func handleWrite(addr uint8, dbg *debugger.Debugger, mc *machine.Machine) {
	fmt.Println()
	fmt.Println("Program stopped on write")
	dbg.PrintMem(&mc.State, int(addr), 1)
	debugREPL(dbg, mc)
}
