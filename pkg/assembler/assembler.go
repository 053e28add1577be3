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

// Package assembler translates t8 assembly into instructions.
//
// Source is processed in three passes, each stopping at its first error:
// Tokenize splits the input into positioned tokens, Parse builds a syntax
// tree and Generate resolves .const names and operands into fully populated
// instructions.
//
//	.const led 0xF	; define a constant
//	LOADI #led	; immediate operand
//	ST [led]	; address operand
//	HALT
//
// All errors implement TokenError.
package assembler

import (
	"github.com/xnacly/tango8/pkg/encoding"
)

// Assemble runs the whole pipeline over src. symtable may be nil.
func Assemble(src []byte, symtable *SymTable) ([]encoding.Instruction, error) {
	tokens, err := Tokenize(src)

	if err != nil {
		return nil, err
	}

	nodes, err := Parse(tokens)

	if err != nil {
		return nil, err
	}

	return Generate(nodes, symtable)
}
