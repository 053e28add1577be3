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

const (
	OP_NOP   Opcode = 0x0
	OP_LOADI Opcode = 0x1
	OP_MOV   Opcode = 0x2
	OP_ADD   Opcode = 0x3
	OP_SUB   Opcode = 0x4
	OP_ST    Opcode = 0x5
	OP_LD    Opcode = 0x6
	OP_ROL   Opcode = 0x7
	OP_HALT  Opcode = 0x8
)

const (
	OPERAND_NONE OperandType = iota
	OPERAND_IMM
	OPERAND_ADDR
)

// Largest value either nibble of an encoded instruction can hold
const NIBBLE_MAX uint8 = 0xF

var mnemonics = [...]string{
	OP_NOP:   "NOP",
	OP_LOADI: "LOADI",
	OP_MOV:   "MOV",
	OP_ADD:   "ADD",
	OP_SUB:   "SUB",
	OP_ST:    "ST",
	OP_LD:    "LD",
	OP_ROL:   "ROL",
	OP_HALT:  "HALT",
}
