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

package encoding_test

import (
	"errors"
	"testing"

	"github.com/xnacly/tango8/pkg/encoding"
)

func constructible() []encoding.Instruction {
	var result []encoding.Instruction

	for op := encoding.OP_NOP; op <= encoding.OP_HALT; op++ {
		if !op.HasOperand() {
			result = append(result, encoding.Instruction{Op: op})
			continue
		}

		for operand := uint8(0); operand <= encoding.NIBBLE_MAX; operand++ {
			result = append(result, encoding.Instruction{Op: op, Operand: operand})
		}
	}

	return result
}

func TestRoundTrip(t *testing.T) {
	for _, want := range constructible() {
		b, err := encoding.Encode(want)

		if err != nil {
			t.Fatalf("Encode(%s) failed: %s", want, err)
		}

		have, err := encoding.Decode(b)

		if err != nil {
			t.Fatalf("Decode(%#02x) failed: %s", b, err)
		}

		if have != want {
			t.Fatalf(
				"Round trip mismatch\n\twant:%s\n\thave:%s (%#02x)",
				want, have, b,
			)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		Name  string
		Input encoding.Instruction
		Want  byte
	}{
		{"NOP", encoding.Instruction{Op: encoding.OP_NOP}, 0x00},
		{"LOADI", encoding.Instruction{Op: encoding.OP_LOADI, Operand: 0xF}, 0x1F},
		{"MOV", encoding.Instruction{Op: encoding.OP_MOV}, 0x20},
		{"ADD", encoding.Instruction{Op: encoding.OP_ADD}, 0x30},
		{"SUB", encoding.Instruction{Op: encoding.OP_SUB}, 0x40},
		{"ST", encoding.Instruction{Op: encoding.OP_ST, Operand: 0xF}, 0x5F},
		{"LD", encoding.Instruction{Op: encoding.OP_LD, Operand: 0x4}, 0x64},
		{"ROL", encoding.Instruction{Op: encoding.OP_ROL, Operand: 0x3}, 0x73},
		{"HALT", encoding.Instruction{Op: encoding.OP_HALT}, 0x80},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			have, err := encoding.Encode(test.Input)

			if err != nil {
				t.Fatal(err)
			}

			if have != test.Want {
				t.Fatalf("Encoding mismatch\n\twant:%#02x\n\thave:%#02x", test.Want, have)
			}
		})
	}
}

func TestEncodeFail(t *testing.T) {
	tests := []struct {
		Name  string
		Input encoding.Instruction
	}{
		{"OversizedImmediate", encoding.Instruction{Op: encoding.OP_LOADI, Operand: 0x10}},
		{"OversizedAddress", encoding.Instruction{Op: encoding.OP_ST, Operand: 0xFF}},
		{"UnexpectedOperand", encoding.Instruction{Op: encoding.OP_HALT, Operand: 0x1}},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := encoding.Encode(test.Input)

			var want *encoding.OversizedOperandError
			if !errors.As(err, &want) {
				t.Fatalf("want:%T\nhave:%T (%v)", want, err, err)
			}
		})
	}

	_, err := encoding.Encode(encoding.Instruction{Op: 0x9})

	var want *encoding.InvalidInstructionError
	if !errors.As(err, &want) {
		t.Fatalf("want:%T\nhave:%T (%v)", want, err, err)
	}
}

func TestDecodeUnknownOperator(t *testing.T) {
	for b := 0x90; b <= 0xFF; b++ {
		have, err := encoding.Decode(byte(b))

		var want *encoding.UnknownOperatorError
		if !errors.As(err, &want) {
			t.Fatalf(
				"Decode(%#02x) should fail\n\twant:%T\n\thave:%s, %v",
				b, want, have, err,
			)
		}

		if want.Received != byte(b) {
			t.Fatalf("want:%#02x\nhave:%#02x", b, want.Received)
		}
	}
}

func TestDecodeIgnoresUnusedNibble(t *testing.T) {
	have, err := encoding.Decode(0x2A)

	if err != nil {
		t.Fatal(err)
	}

	if want := (encoding.Instruction{Op: encoding.OP_MOV}); have != want {
		t.Fatalf("want:%s\nhave:%s", want, have)
	}
}

func TestParseMnemonic(t *testing.T) {
	for op := encoding.OP_NOP; op <= encoding.OP_HALT; op++ {
		have, ok := encoding.ParseMnemonic(op.String())

		if !ok || have != op {
			t.Fatalf("ParseMnemonic(%q)\n\twant:%s\n\thave:%s (%v)", op.String(), op, have, ok)
		}
	}

	for _, name := range []string{"loadi", "Halt", "JMP", ""} {
		if _, ok := encoding.ParseMnemonic(name); ok {
			t.Fatalf("ParseMnemonic(%q) should fail", name)
		}
	}
}

func TestDecodeLiteral(t *testing.T) {
	tests := []struct {
		Input string
		Want  uint8
		Fail  bool
	}{
		{"0", 0, false},
		{"255", 255, false},
		{"0xF", 0xF, false},
		{"0xFF", 0xFF, false},
		{"0x0", 0, false},
		{"256", 0, true},
		{"0x100", 0, true},
		{"0x", 0, true},
		{"1x5", 0, true},
		{"12A", 0, true},
	}

	for _, test := range tests {
		have, err := encoding.DecodeLiteral(test.Input)

		if test.Fail {
			if err == nil {
				t.Fatalf("DecodeLiteral(%q) should fail, have:%d", test.Input, have)
			}
			continue
		}

		if err != nil {
			t.Fatalf("DecodeLiteral(%q): %s", test.Input, err)
		}

		if have != test.Want {
			t.Fatalf("DecodeLiteral(%q)\n\twant:%d\n\thave:%d", test.Input, test.Want, have)
		}
	}
}

func TestString(t *testing.T) {
	tests := map[string]encoding.Instruction{
		"LOADI{imm:0xf}": {Op: encoding.OP_LOADI, Operand: 0xF},
		"ST{addr:0x2}":   {Op: encoding.OP_ST, Operand: 0x2},
		"HALT":           {Op: encoding.OP_HALT},
	}

	for want, input := range tests {
		if have := input.String(); have != want {
			t.Fatalf("want:%s\nhave:%s", want, have)
		}
	}
}
