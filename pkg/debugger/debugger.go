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

// Package debugger implements machine.MachineDebugger with breakpoints on
// the program counter and watchpoints on memory addresses. Stops are
// reported through the Handle* callbacks, which usually enter a REPL.
package debugger

import (
	"fmt"
	"os"
	"sort"

	"github.com/xnacly/tango8/pkg/machine"
)

func New() *Debugger {
	return &Debugger{Output: os.Stdout}
}

func (dbg *Debugger) Step(mc *machine.Machine) {
	if dbg.HandleBreak == nil {
		return
	}

	if dbg.Break.Load() {
		dbg.HandleBreak(dbg, mc)
		return
	}

	for _, breakpoint := range dbg.Breakpoints {
		if mc.State.Program == breakpoint.Program {
			dbg.HandleBreak(dbg, mc)
			break
		}
	}
}

func (dbg *Debugger) Read(addr uint8, mc *machine.Machine) {
	if dbg.HandleRead == nil {
		return
	}

	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == WriteWatch {
			continue
		}

		if addr == watchpoint.Addr {
			dbg.HandleRead(addr, dbg, mc)
			break
		}
	}
}

func (dbg *Debugger) Write(addr uint8, mc *machine.Machine) {
	if dbg.HandleWrite == nil {
		return
	}

	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == ReadWatch {
			continue
		}

		if addr == watchpoint.Addr {
			dbg.HandleWrite(addr, dbg, mc)
			break
		}
	}
}

// AddBreakpoint reports false if a breakpoint already exists at pc.
func (dbg *Debugger) AddBreakpoint(pc uint) bool {
	for _, breakpoint := range dbg.Breakpoints {
		if breakpoint.Program == pc {
			return false
		}
	}

	dbg.Breakpoints = append(dbg.Breakpoints, Breakpoint{pc})

	return true
}

// RemoveBreakpoint removes by list index. The last breakpoint takes the
// removed one's place.
func (dbg *Debugger) RemoveBreakpoint(i int) error {
	if i < 0 || i >= len(dbg.Breakpoints) {
		return &IndexError{"breakpoint", len(dbg.Breakpoints), i}
	}

	dbg.Breakpoints[i] = dbg.Breakpoints[len(dbg.Breakpoints)-1]
	dbg.Breakpoints = dbg.Breakpoints[:len(dbg.Breakpoints)-1]

	return nil
}

func (dbg *Debugger) AddWatchpoint(addr uint8, wtype WatchpointType) bool {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Addr == addr && watchpoint.Type == wtype {
			return false
		}
	}

	dbg.Watchpoints = append(dbg.Watchpoints, Watchpoint{addr, wtype})

	return true
}

func (dbg *Debugger) RemoveWatchpoint(i int) error {
	if i < 0 || i >= len(dbg.Watchpoints) {
		return &IndexError{"watchpoint", len(dbg.Watchpoints), i}
	}

	dbg.Watchpoints[i] = dbg.Watchpoints[len(dbg.Watchpoints)-1]
	dbg.Watchpoints = dbg.Watchpoints[:len(dbg.Watchpoints)-1]

	return nil
}

func (dbg *Debugger) style(style, text string) string {
	if !dbg.Color {
		return text
	}

	return style + text + styleReset
}

// PrintSource prints count source lines starting at the line that produced
// the instruction at pc. Lines producing an instruction are prefixed with its
// index.
func (dbg *Debugger) PrintSource(pc uint, count int) {
	if dbg.SymTable == nil {
		fmt.Fprintln(dbg.Output, "No symbol table loaded")
		return
	}

	if dbg.Source == nil {
		fmt.Fprintln(dbg.Output, "No source file loaded")
		return
	}

	position, exists := dbg.SymTable.Lines[uint16(pc)]

	if !exists {
		fmt.Fprintf(dbg.Output, "No instruction found at %#04x\n", pc)
		return
	}

	instructions := make(map[int]uint16, len(dbg.SymTable.Lines))

	for index, cursor := range dbg.SymTable.Lines {
		instructions[cursor.Line] = index
	}

	for line := position.Line; line < position.Line+count; line++ {
		if line >= len(dbg.Source) {
			break
		}

		if index, exists := instructions[line]; exists {
			fmt.Fprintf(dbg.Output, "%s ", dbg.style(styleBold, fmt.Sprintf("[%#04x]", index)))
		} else {
			fmt.Fprintf(dbg.Output, "%s ", dbg.style(styleFaint, "~~~~~~"))
		}

		fmt.Fprintln(dbg.Output, dbg.Source[line])
	}
}

func (dbg *Debugger) PrintMem(mc *machine.MachineState, addr, count int) {
	end := addr + count

	if end > machine.MEMORY_SIZE {
		end = machine.MEMORY_SIZE
	}

	if addr < 0 || addr >= end {
		fmt.Fprintf(dbg.Output, "No memory at %#02x\n", addr)
		return
	}

	for i := addr; i < end; i++ {
		if i == addr {
			fmt.Fprintf(dbg.Output, "%s ", dbg.style(styleBold, fmt.Sprintf("[%#02x]", i)))
		} else if (i-addr)%MEM_ROW == 0 {
			fmt.Fprintln(dbg.Output)
			fmt.Fprintf(dbg.Output, "%s ", dbg.style(styleBold, fmt.Sprintf("[%#02x]", i)))
		}

		value := fmt.Sprintf("%#02x", mc.Memory[i])

		if mc.Memory[i] == 0 {
			value = dbg.style(styleFaint, value)
		}

		fmt.Fprintf(dbg.Output, "%s ", value)
	}

	fmt.Fprintln(dbg.Output)
}

func (dbg *Debugger) PrintRegs(mc *machine.MachineState) {
	fmt.Fprintf(
		dbg.Output,
		"%s %#02x\t%s %#02x\n%s %#04x\t%s %t\n",
		dbg.style(styleBold, "AC:"),
		mc.Accumulator,
		dbg.style(styleBold, "DEST:"),
		mc.Destination,
		dbg.style(styleBold, "PC:"),
		mc.Program,
		dbg.style(styleBold, "HALTED:"),
		mc.Halted,
	)
}

// PrintConstants lists the final value of every .const in name order.
func (dbg *Debugger) PrintConstants() {
	if dbg.SymTable == nil {
		fmt.Fprintln(dbg.Output, "No symbol table loaded")
		return
	}

	names := make([]string, 0, len(dbg.SymTable.Constants))

	for name := range dbg.SymTable.Constants {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(
			dbg.Output,
			"%s %#02x\n",
			dbg.style(styleBold, name),
			dbg.SymTable.Constants[name],
		)
	}
}
