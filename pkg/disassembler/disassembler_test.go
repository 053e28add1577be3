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

package disassembler_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xnacly/tango8/pkg/assembler"
	"github.com/xnacly/tango8/pkg/disassembler"
	"github.com/xnacly/tango8/pkg/encoding"
)

var led = []encoding.Instruction{
	{Op: encoding.OP_LOADI, Operand: 0xF},
	{Op: encoding.OP_ST, Operand: 0xF},
	{Op: encoding.OP_HALT},
}

func TestDisassemble(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, disassembler.Disassemble(&buf, led))

	want := "; magic=t8cpu\n" +
		"; size=3\n" +
		"\n" +
		"; 0000: 0x1F (op=0x1, imm=0xF)\n" +
		"LOADI 15\n" +
		"; 0001: 0x5F (op=0x5, imm=0xF)\n" +
		"ST 15\n" +
		"; 0002: 0x80 (op=0x8, imm=0x0)\n" +
		"HALT\n"

	assert.Equal(t, want, buf.String())
}

func TestDisassembleEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, disassembler.Disassemble(&buf, nil))
	assert.Equal(t, "; magic=t8cpu\n; size=0\n\n", buf.String())
}

func TestDisassembleInvalid(t *testing.T) {
	var buf bytes.Buffer

	err := disassembler.Disassemble(&buf, []encoding.Instruction{
		{Op: encoding.OP_LOADI, Operand: 0x1F},
	})

	assert.Error(t, err)
}

func TestReassemble(t *testing.T) {
	var code []encoding.Instruction

	for op := encoding.OP_NOP; op <= encoding.OP_HALT; op++ {
		instruction := encoding.Instruction{Op: op}

		if op.TakesOperand() {
			instruction.Operand = uint8(op) + 6
		}

		code = append(code, instruction)
	}

	var buf bytes.Buffer

	require.NoError(t, disassembler.Disassemble(&buf, code))

	result, err := assembler.Assemble(buf.Bytes(), nil)

	require.NoError(t, err)
	assert.Equal(t, code, result)
}

func TestLine(t *testing.T) {
	assert.Equal(t, "ROL 4", disassembler.Line(encoding.Instruction{Op: encoding.OP_ROL, Operand: 4}))
	assert.Equal(t, "LD", disassembler.Line(encoding.Instruction{Op: encoding.OP_LD}))
	assert.Equal(t, "LD", disassembler.Line(encoding.Instruction{Op: encoding.OP_LD, Operand: 5}))
	assert.Equal(t, "MOV", disassembler.Line(encoding.Instruction{Op: encoding.OP_MOV}))
}

func TestReassembleLoadAddress(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, disassembler.Disassemble(&buf, []encoding.Instruction{
		{Op: encoding.OP_LD, Operand: 5},
		{Op: encoding.OP_HALT},
	}))

	assert.Contains(t, buf.String(), "; 0000: 0x65 (op=0x6, imm=0x5)\nLD\n")

	result, err := assembler.Assemble(buf.Bytes(), nil)

	require.NoError(t, err)
	assert.Equal(t, []encoding.Instruction{
		{Op: encoding.OP_LD},
		{Op: encoding.OP_HALT},
	}, result)
}
