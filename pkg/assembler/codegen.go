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

import (
	"github.com/xnacly/tango8/pkg/encoding"
)

// Generator lowers syntax tree nodes to instructions, tracking .const
// definitions in source order. A Generator serves a single program.
type Generator struct {
	constants map[string]uint8
	symtable  *SymTable
	program   uint16
}

// NewGenerator returns a Generator recording debugging information into
// symtable, which may be nil.
func NewGenerator(symtable *SymTable) *Generator {
	return &Generator{
		constants: make(map[string]uint8),
		symtable:  symtable,
	}
}

func (g *Generator) resolve(node Node) (uint8, error) {
	switch n := node.(type) {
	case *Number:
		return n.Value, nil
	case *Identifier:
		value, exists := g.constants[n.Name]

		if !exists {
			return 0, &UndefinedIdentifierError{n.Position, n.Name}
		}

		return value, nil
	case *Immediate:
		return g.resolve(n.Inner)
	case *MemoryRef:
		return g.resolve(n.Inner)
	}

	return 0, &StrayOperandError{node.GetPosition()}
}

// Lower consumes one top level node. ok is false for nodes that produce no
// instruction.
func (g *Generator) Lower(node Node) (instruction encoding.Instruction, ok bool, err error) {
	switch n := node.(type) {
	case *Directive:
		switch n.Kind {
		case BUILTIN_CONST:
			if n.Value == nil {
				return instruction, false, &InvalidConstError{n.Position, nil}
			}

			// Redefinitions replace the previous value
			g.constants[n.Name] = n.Value.Value

			if g.symtable != nil {
				g.symtable.Constants[n.Name] = n.Value.Value
			}
		default:
			return instruction, false, &UnknownBuiltinError{n.Position, n.Name}
		}

		return instruction, false, nil

	case *Operation:
		instruction = n.Partial

		if n.Partial.Op.TakesOperand() {
			if n.Operand == nil {
				return instruction, false, &UnexpectedEOFError{
					n.Position, operandTokens,
				}
			}

			value, err := g.resolve(n.Operand)

			if err != nil {
				return instruction, false, err
			}

			if value > encoding.NIBBLE_MAX {
				return instruction, false, &OversizedLiteralError{
					operandPosition(n.Operand),
					n.Partial.Op,
					encoding.NIBBLE_MAX,
					value,
				}
			}

			instruction.Operand = value
		}

		if g.symtable != nil {
			g.symtable.Lines[g.program] = n.Position
		}

		g.program++

		return instruction, true, nil
	}

	return instruction, false, &StrayOperandError{node.GetPosition()}
}

// Position of the token an operand value came from
func operandPosition(node Node) Cursor {
	switch n := node.(type) {
	case *Immediate:
		return n.Inner.GetPosition()
	case *MemoryRef:
		return n.Inner.GetPosition()
	}

	return node.GetPosition()
}

// Generate lowers a whole program, preserving source order.
func Generate(nodes []Node, symtable *SymTable) ([]encoding.Instruction, error) {
	g := NewGenerator(symtable)
	result := make([]encoding.Instruction, 0, len(nodes))

	for _, node := range nodes {
		instruction, ok, err := g.Lower(node)

		if err != nil {
			return nil, err
		}

		if ok {
			result = append(result, instruction)
		}
	}

	return result, nil
}
