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

package encoding

import "fmt"

type Opcode uint8
type OperandType uint

// Instruction is the typed form of a single encoded byte. Operand holds the
// immediate for LOADI and ROL, the address for ST and LD, and is zero for
// every other opcode.
type Instruction struct {
	Op      Opcode
	Operand uint8
}

func (op Opcode) Valid() bool {
	return int(op) < len(mnemonics)
}

func (op Opcode) String() string {
	if !op.Valid() {
		return fmt.Sprintf("<invalid %#x>", uint8(op))
	}

	return mnemonics[op]
}

// OperandType reports which operand field, if any, the opcode carries.
func (op Opcode) OperandType() OperandType {
	switch op {
	case OP_LOADI, OP_ROL:
		return OPERAND_IMM
	case OP_ST, OP_LD:
		return OPERAND_ADDR
	}

	return OPERAND_NONE
}

func (op Opcode) HasOperand() bool {
	return op.OperandType() != OPERAND_NONE
}

// TakesOperand reports whether assembly source writes an operand after the
// mnemonic. LD keeps its address field in the encoding but is written bare
// and always assembles with address 0.
func (op Opcode) TakesOperand() bool {
	switch op {
	case OP_LOADI, OP_ST, OP_ROL:
		return true
	}

	return false
}

func (i Instruction) String() string {
	switch i.Op.OperandType() {
	case OPERAND_IMM:
		return fmt.Sprintf("%s{imm:%#x}", i.Op, i.Operand)
	case OPERAND_ADDR:
		return fmt.Sprintf("%s{addr:%#x}", i.Op, i.Operand)
	}

	return i.Op.String()
}

type UnknownOperatorError struct {
	Received uint8
}

func (err *UnknownOperatorError) Error() string {
	return fmt.Sprintf("Unknown operator %#x in byte %#02x", err.Received>>4, err.Received)
}

type OversizedOperandError struct {
	Instruction Instruction
}

func (err *OversizedOperandError) Error() string {
	if !err.Instruction.Op.HasOperand() {
		return fmt.Sprintf(
			"%s takes no operand\n\twant:0\n\thave:%d",
			err.Instruction.Op,
			err.Instruction.Operand,
		)
	}

	return fmt.Sprintf(
		"Operand of %s exceeds allowed size\n\twant:%d\n\thave:%d",
		err.Instruction.Op,
		NIBBLE_MAX,
		err.Instruction.Operand,
	)
}

type InvalidInstructionError struct {
	Op Opcode
}

func (err *InvalidInstructionError) Error() string {
	return fmt.Sprintf("Invalid instruction %s", err.Op)
}
