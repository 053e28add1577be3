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

var operandTokens = []TokenType{TOKEN_HASH, TOKEN_LBRACKET, TOKEN_NUMBER}
var innerTokens = []TokenType{TOKEN_NUMBER, TOKEN_IDENT}

func parseBuiltin(name string) BuiltinType {
	if name == "const" {
		return BUILTIN_CONST
	}

	return BUILTIN_INVALID
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) end() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) cur() *Token {
	if p.end() {
		return nil
	}

	return &p.tokens[p.pos]
}

func (p *parser) advance() {
	p.pos++
}

// Position reported when input ends while more tokens are required
func (p *parser) last() Cursor {
	if len(p.tokens) == 0 {
		return Cursor{}
	}

	return p.tokens[len(p.tokens)-1].Position
}

// Parse builds the syntax tree for a token sequence. No partial tree is
// returned on error.
func Parse(tokens []Token) ([]Node, error) {
	p := parser{tokens: tokens}
	nodes := make([]Node, 0, len(tokens)/2)

	for !p.end() {
		node, err := p.parseOperation()

		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

func (p *parser) parseOperation() (Node, error) {
	token := p.cur()

	switch token.Type {
	case TOKEN_BUILTIN:
		return p.parseDirective()
	case TOKEN_IDENT:
		return p.parseInstruction()
	case TOKEN_HASH, TOKEN_LBRACKET, TOKEN_NUMBER:
		return p.parseOperand()
	}

	return nil, &UnexpectedTokenError{
		token.Position,
		append([]TokenType{TOKEN_BUILTIN, TOKEN_IDENT}, operandTokens...),
		*token,
	}
}

// .const <name> <number>
func (p *parser) parseDirective() (Node, error) {
	keyword := p.cur()
	kind := parseBuiltin(keyword.Value)

	if kind == BUILTIN_INVALID {
		return nil, &UnknownBuiltinError{keyword.Position, keyword.Value}
	}

	p.advance()

	name := p.cur()

	if name == nil {
		return nil, &UnexpectedEOFError{p.last(), []TokenType{TOKEN_IDENT}}
	} else if name.Type != TOKEN_IDENT {
		return nil, &UnexpectedTokenError{
			name.Position, []TokenType{TOKEN_IDENT}, *name,
		}
	}

	p.advance()

	value := p.cur()

	if value == nil {
		return nil, &InvalidConstError{p.last(), nil}
	} else if value.Type != TOKEN_NUMBER {
		return nil, &InvalidConstError{value.Position, value}
	}

	p.advance()

	return &Directive{
		Position: keyword.Position,
		Kind:     kind,
		Name:     name.Value,
		Value:    &Number{value.Position, value.Number},
	}, nil
}

// <mnemonic> [operand]
func (p *parser) parseInstruction() (Node, error) {
	keyword := p.cur()
	op, ok := encoding.ParseMnemonic(keyword.Value)

	if !ok {
		return nil, &InvalidInstructionError{keyword.Position, keyword.Value}
	}

	p.advance()

	operation := &Operation{
		Position: keyword.Position,
		Partial:  encoding.Instruction{Op: op},
	}

	if op.TakesOperand() {
		operand, err := p.parseOperand()

		if err != nil {
			return nil, err
		}

		operation.Operand = operand
	}

	return operation, nil
}

// #<inner> | [<inner>] | <number>
func (p *parser) parseOperand() (Node, error) {
	token := p.cur()

	if token == nil {
		return nil, &UnexpectedEOFError{p.last(), operandTokens}
	}

	switch token.Type {
	case TOKEN_HASH:
		p.advance()

		inner, err := p.parseInner()

		if err != nil {
			return nil, err
		}

		return &Immediate{token.Position, inner}, nil

	case TOKEN_LBRACKET:
		p.advance()

		inner, err := p.parseInner()

		if err != nil {
			return nil, err
		}

		closing := p.cur()

		if closing == nil {
			return nil, &UnterminatedAddressError{p.last()}
		} else if closing.Type != TOKEN_RBRACKET {
			return nil, &UnterminatedAddressError{closing.Position}
		}

		p.advance()

		return &MemoryRef{token.Position, inner}, nil

	case TOKEN_NUMBER:
		p.advance()

		return &Number{token.Position, token.Number}, nil
	}

	return nil, &UnexpectedTokenError{token.Position, operandTokens, *token}
}

// <number> | <identifier>
func (p *parser) parseInner() (Node, error) {
	token := p.cur()

	if token == nil {
		return nil, &UnexpectedEOFError{p.last(), innerTokens}
	}

	p.advance()

	switch token.Type {
	case TOKEN_NUMBER:
		return &Number{token.Position, token.Number}, nil
	case TOKEN_IDENT:
		return &Identifier{token.Position, token.Value}, nil
	}

	return nil, &UnexpectedTokenError{token.Position, innerTokens, *token}
}
