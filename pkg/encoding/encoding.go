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

// Package encoding defines the instruction set of the t8 machine and its
// one-byte-per-instruction encoding.
//
//	|7 6 5 4|3 2 1 0|
//	|opcode |operand|
//
// Numeric literal decoding shared by the assembler and the debugger lives
// here as well.
package encoding

import (
	"errors"
	"strconv"
	"strings"
)

// Encodes the instruction into a single byte. Operands are never truncated:
// an operand above 0xF, or any operand on an opcode that takes none, fails.
func Encode(i Instruction) (byte, error) {
	if !i.Op.Valid() {
		return 0, &InvalidInstructionError{i.Op}
	}

	if i.Op.HasOperand() {
		if i.Operand > NIBBLE_MAX {
			return 0, &OversizedOperandError{i}
		}
	} else if i.Operand != 0 {
		return 0, &OversizedOperandError{i}
	}

	return byte(i.Op)<<4 | (i.Operand & NIBBLE_MAX), nil
}

// Decodes a single byte. The low nibble is ignored for opcodes without an
// operand.
func Decode(b byte) (Instruction, error) {
	op := Opcode(b >> 4)
	operand := b & NIBBLE_MAX

	switch op {
	case OP_NOP, OP_MOV, OP_ADD, OP_SUB, OP_HALT:
		return Instruction{Op: op}, nil
	case OP_LOADI, OP_ST, OP_LD, OP_ROL:
		return Instruction{Op: op, Operand: operand}, nil
	}

	return Instruction{}, &UnknownOperatorError{b}
}

// Looks up an exact, case sensitive mnemonic.
func ParseMnemonic(name string) (Opcode, bool) {
	for op, mnemonic := range mnemonics {
		if mnemonic == name {
			return Opcode(op), true
		}
	}

	return 0, false
}

// Decodes a hexidecimal byte in the formats: 0xFF, xFF
func DecodeHex(s string) (uint8, error) {
	if strings.HasPrefix(s, "0x") {
		s = s[2:]
	} else if strings.HasPrefix(s, "x") {
		s = s[1:]
	} else {
		return 0, errors.New("Invalid hex string")
	}

	result, err := strconv.ParseUint(s, 16, 8)

	if err != nil {
		return 0, err
	}

	return uint8(result), nil
}

// Decodes a base-10 byte
func DecodeInt(s string) (uint8, error) {
	result, err := strconv.ParseUint(s, 10, 8)

	if err != nil {
		return 0, err
	}

	return uint8(result), nil
}

// Decodes either literal form, selecting base 16 on a leading 0x.
func DecodeLiteral(s string) (uint8, error) {
	if strings.HasPrefix(s, "0x") {
		return DecodeHex(s)
	}

	return DecodeInt(s)
}
