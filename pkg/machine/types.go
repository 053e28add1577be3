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

package machine

import (
	"fmt"
	"io"

	"github.com/xnacly/tango8/pkg/encoding"
)

type MachineState struct {
	Accumulator uint8
	Destination uint8
	Program     uint
	Memory      [MEMORY_SIZE]uint8
	Halted      bool
}

// MachineDebugger is notified before every instruction and after every
// memory access.
type MachineDebugger interface {
	Step(mc *Machine)
	Read(addr uint8, mc *Machine)
	Write(addr uint8, mc *Machine)
}

type Machine struct {
	State MachineState
	Code  []encoding.Instruction

	// Memory mapped output streams, keyed by address. A ST to a mapped
	// address appends the stored byte.
	Devices map[uint8]io.Writer

	// Receives a TRACE_FORMAT line before each instruction when set
	Trace io.Writer

	Debugger MachineDebugger
}

type AddressError struct {
	Program     uint
	Instruction encoding.Instruction
}

func (err *AddressError) Error() string {
	return fmt.Sprintf(
		"%04x: %s address out of range\n\twant:<=%#x\n\thave:%#x",
		err.Program,
		err.Instruction.Op,
		ADDR_MAX,
		err.Instruction.Operand,
	)
}

// OperandError reports an instruction that has no valid encoding, such as an
// immediate wider than the operand nibble.
type OperandError struct {
	Program     uint
	Instruction encoding.Instruction
	Err         error
}

func (err *OperandError) Error() string {
	return fmt.Sprintf("%04x: %s", err.Program, err.Err)
}

func (err *OperandError) Unwrap() error {
	return err.Err
}
