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

// Package machine executes decoded t8 programs.
//
// The machine has an 8-bit accumulator, an 8-bit destination register used
// by ADD and SUB, 16 bytes of memory and a program counter indexing the
// instruction stream. Running past the last instruction halts the machine
// the same way HALT does.
package machine

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/xnacly/tango8/pkg/encoding"
	"github.com/xnacly/tango8/pkg/program"
)

func (mc *MachineState) Reset() {
	*mc = MachineState{}
}

// Load resets the machine and installs code as its program.
func (mc *Machine) Load(code []encoding.Instruction) {
	mc.State.Reset()
	mc.Code = code
}

// LoadBin reads a t8cpu container and loads its instructions.
func (mc *Machine) LoadBin(reader io.Reader) error {
	code, err := program.Read(reader)

	if err != nil {
		return err
	}

	mc.Load(code)

	return nil
}

func (mc *Machine) read(addr uint8) uint8 {
	value := mc.State.Memory[addr]

	if mc.Debugger != nil {
		mc.Debugger.Read(addr, mc)
	}

	return value
}

func (mc *Machine) write(addr uint8, value uint8) error {
	mc.State.Memory[addr] = value

	if device, exists := mc.Devices[addr]; exists {
		if _, err := device.Write([]byte{value}); err != nil {
			return errors.Wrapf(err, "device %#x write failed", addr)
		}
	}

	if mc.Debugger != nil {
		mc.Debugger.Write(addr, mc)
	}

	return nil
}

func (mc *Machine) trace(instruction encoding.Instruction, encoded uint8) {
	fmt.Fprintf(
		mc.Trace,
		TRACE_FORMAT,
		mc.State.Program,
		encoded,
		instruction.Op,
		uint8(instruction.Op),
		instruction.Operand&encoding.NIBBLE_MAX,
		mc.State.Accumulator,
		mc.State.Destination,
	)
}

// Step executes a single instruction. Stepping a halted machine does
// nothing.
func (mc *Machine) Step() error {
	if mc.State.Halted {
		return nil
	}

	if mc.State.Program >= uint(len(mc.Code)) {
		mc.State.Halted = true
		return nil
	}

	if mc.Debugger != nil {
		mc.Debugger.Step(mc)

		// The debugger may stop the run
		if mc.State.Halted {
			return nil
		}

		// or move the program counter past the code
		if mc.State.Program >= uint(len(mc.Code)) {
			mc.State.Halted = true
			return nil
		}
	}

	instruction := mc.Code[mc.State.Program]

	if instruction.Op.OperandType() == encoding.OPERAND_ADDR &&
		instruction.Operand > ADDR_MAX {
		return &AddressError{mc.State.Program, instruction}
	}

	encoded, err := encoding.Encode(instruction)

	if err != nil {
		return &OperandError{mc.State.Program, instruction, err}
	}

	if mc.Trace != nil {
		mc.trace(instruction, encoded)
	}

	switch instruction.Op {
	case encoding.OP_NOP:

	case encoding.OP_LOADI:
		mc.State.Accumulator = instruction.Operand

	case encoding.OP_MOV:
		mc.State.Destination = mc.State.Accumulator

	// Arithmetic wraps at 8 bits
	case encoding.OP_ADD:
		mc.State.Accumulator = mc.State.Destination + mc.State.Accumulator

	case encoding.OP_SUB:
		mc.State.Accumulator = mc.State.Destination - mc.State.Accumulator

	case encoding.OP_ST:
		if err := mc.write(instruction.Operand, mc.State.Accumulator); err != nil {
			return err
		}

	case encoding.OP_LD:
		mc.State.Accumulator = mc.read(instruction.Operand)

	case encoding.OP_ROL:
		mc.State.Accumulator = bits.RotateLeft8(
			mc.State.Accumulator,
			int(instruction.Operand&encoding.NIBBLE_MAX),
		)

	case encoding.OP_HALT:
		mc.State.Halted = true
		return nil

	default:
		return &encoding.InvalidInstructionError{Op: instruction.Op}
	}

	mc.State.Program++

	return nil
}

// Run steps until the machine halts or an instruction fails.
func (mc *Machine) Run() error {
	for !mc.State.Halted {
		if err := mc.Step(); err != nil {
			return err
		}
	}

	return nil
}
