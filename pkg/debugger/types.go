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

package debugger

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/xnacly/tango8/pkg/assembler"
	"github.com/xnacly/tango8/pkg/machine"
)

type WatchpointType uint

func (t WatchpointType) String() string {
	switch t {
	case ReadWatch:
		return "read"
	case WriteWatch:
		return "write"
	case ReadWriteWatch:
		return "readwrite"
	}

	return "<invalid>"
}

type Watchpoint struct {
	Addr uint8
	Type WatchpointType
}

type Breakpoint struct {
	Program uint
}

type Debugger struct {
	// Stop before the next instruction. Set from signal handlers while the
	// machine runs.
	Break atomic.Bool

	Breakpoints []Breakpoint
	Watchpoints []Watchpoint

	SymTable *assembler.SymTable
	Source   []string

	// Destination of the Print* methods
	Output io.Writer
	Color  bool

	HandleBreak func(*Debugger, *machine.Machine)
	HandleRead  func(uint8, *Debugger, *machine.Machine)
	HandleWrite func(uint8, *Debugger, *machine.Machine)
}

type IndexError struct {
	Kind     string
	Index    int
	Received int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf(
		"Invalid %s number\n\twant:<%d\n\thave:%d",
		err.Kind,
		err.Index,
		err.Received,
	)
}
