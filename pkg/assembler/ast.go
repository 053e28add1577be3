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

package assembler

import "github.com/xnacly/tango8/pkg/encoding"

// Node is one of *Directive, *Operation, *Immediate, *MemoryRef, *Number or
// *Identifier.
type Node interface {
	node()
	GetPosition() Cursor
}

// .<kind> <name> <value>
type Directive struct {
	Position Cursor
	Kind     BuiltinType
	Name     string
	Value    *Number
}

// <mnemonic> <operand>
//
// Partial only has its opcode set, operands are filled in by the Generator.
// Operand is nil unless the opcode takes one.
type Operation struct {
	Position Cursor
	Partial  encoding.Instruction
	Operand  Node
}

// #<inner>
type Immediate struct {
	Position Cursor
	Inner    Node
}

// [<inner>]
type MemoryRef struct {
	Position Cursor
	Inner    Node
}

type Number struct {
	Position Cursor
	Value    uint8
}

type Identifier struct {
	Position Cursor
	Name     string
}

func (*Directive) node()  {}
func (*Operation) node()  {}
func (*Immediate) node()  {}
func (*MemoryRef) node()  {}
func (*Number) node()     {}
func (*Identifier) node() {}

func (n *Directive) GetPosition() Cursor  { return n.Position }
func (n *Operation) GetPosition() Cursor  { return n.Position }
func (n *Immediate) GetPosition() Cursor  { return n.Position }
func (n *MemoryRef) GetPosition() Cursor  { return n.Position }
func (n *Number) GetPosition() Cursor     { return n.Position }
func (n *Identifier) GetPosition() Cursor { return n.Position }
