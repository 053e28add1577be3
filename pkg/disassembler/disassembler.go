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

// Package disassembler prints decoded programs as t8 assembly. Listings
// assemble back into the same program, except for LD: it is written bare, so
// a nonzero LD address survives only in the comment above the line.
package disassembler

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/xnacly/tango8/pkg/encoding"
	"github.com/xnacly/tango8/pkg/program"
)

// Line returns the source text of a single instruction, without comment.
func Line(instruction encoding.Instruction) string {
	if instruction.Op.TakesOperand() {
		return fmt.Sprintf("%s %d", instruction.Op, instruction.Operand)
	}

	return instruction.Op.String()
}

// Disassemble writes a listing: a header with the container magic and
// instruction count, then every instruction preceded by a comment holding
// its index and encoding.
func Disassemble(w io.Writer, code []encoding.Instruction) error {
	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "; magic=%s\n", program.Magic)
	fmt.Fprintf(out, "; size=%d\n\n", len(code))

	for i, instruction := range code {
		encoded, err := encoding.Encode(instruction)

		if err != nil {
			return errors.Wrapf(err, "%04x", i)
		}

		fmt.Fprintf(
			out,
			"; %04x: 0x%X (op=0x%X, imm=0x%X)\n%s\n",
			i,
			encoded,
			encoded>>4,
			encoded&encoding.NIBBLE_MAX,
			Line(instruction),
		)
	}

	return errors.Wrap(out.Flush(), "write failed")
}
