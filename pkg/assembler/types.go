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
	"fmt"
	"strings"

	"github.com/xnacly/tango8/pkg/encoding"
)

type TokenType uint
type BuiltinType uint

// Cursor is a 0-indexed source position.
type Cursor struct {
	Line   int
	Column int
}

type Token struct {
	Type     TokenType
	Position Cursor
	Value    string // Identifier and builtin names
	Number   uint8
}

func (t TokenType) String() string {
	switch t {
	case TOKEN_IDENT:
		return "Identifier"
	case TOKEN_BUILTIN:
		return "Builtin"
	case TOKEN_HASH:
		return "Hash"
	case TOKEN_LBRACKET:
		return "LeftBracket"
	case TOKEN_RBRACKET:
		return "RightBracket"
	case TOKEN_NUMBER:
		return "Number"
	}

	return "<invalid>"
}

func (t Token) String() string {
	switch t.Type {
	case TOKEN_IDENT, TOKEN_BUILTIN:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	case TOKEN_NUMBER:
		return fmt.Sprintf("%s(%d)", t.Type, t.Number)
	}

	return t.Type.String()
}

// SymTable carries debugging information out of a code generation pass.
type SymTable struct {
	Source    string
	Constants map[string]uint8
	Lines     map[uint16]Cursor
}

func NewSymTable(source string) *SymTable {
	return &SymTable{
		Source:    source,
		Constants: make(map[string]uint8),
		Lines:     make(map[uint16]Cursor),
	}
}

// TokenError is implemented by every error the assembler produces. Message
// returns the bare diagnostic without position.
type TokenError interface {
	error
	GetPosition() Cursor
	Message() string
}

func positioned(position Cursor, message string) string {
	return fmt.Sprintf(
		"%02d:%02d: %s", position.Line+1, position.Column+1, message,
	)
}

func joinTypes(types []TokenType) string {
	strs := make([]string, 0, len(types))

	for _, tokenType := range types {
		strs = append(strs, tokenType.String())
	}

	if count := len(strs); count == 1 {
		return strs[0]
	} else if count == 2 {
		return strs[0] + " or " + strs[1]
	} else if count > 2 {
		return strings.Join(strs[:count-1], ", ") + ", or " + strs[count-1]
	}

	return "<invalid>"
}

type UnexpectedCharacterError struct {
	Position Cursor
	Received byte
}

func (err *UnexpectedCharacterError) GetPosition() Cursor {
	return err.Position
}

func (err *UnexpectedCharacterError) Message() string {
	return fmt.Sprintf("Unknown character %q", err.Received)
}

func (err *UnexpectedCharacterError) Error() string {
	return positioned(err.Position, err.Message())
}

type MissingBuiltinNameError struct {
	Position Cursor
}

func (err *MissingBuiltinNameError) GetPosition() Cursor {
	return err.Position
}

func (err *MissingBuiltinNameError) Message() string {
	return "A '.' requires a following builtin name"
}

func (err *MissingBuiltinNameError) Error() string {
	return positioned(err.Position, err.Message())
}

type InvalidLiteralError struct {
	Position Cursor
	Received string
	Err      error
}

func (err *InvalidLiteralError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidLiteralError) Message() string {
	return fmt.Sprintf("Invalid numeric literal `%s`: %s", err.Received, err.Err)
}

func (err *InvalidLiteralError) Error() string {
	return positioned(err.Position, err.Message())
}

func (err *InvalidLiteralError) Unwrap() error {
	return err.Err
}

type UnexpectedTokenError struct {
	Position Cursor
	Required []TokenType
	Received Token
}

func (err *UnexpectedTokenError) GetPosition() Cursor {
	return err.Position
}

func (err *UnexpectedTokenError) Message() string {
	return fmt.Sprintf(
		"Unexpected token\n\twant:%s\n\thave:%s",
		joinTypes(err.Required),
		err.Received,
	)
}

func (err *UnexpectedTokenError) Error() string {
	return positioned(err.Position, err.Message())
}

type UnexpectedEOFError struct {
	Position Cursor
	Required []TokenType
}

func (err *UnexpectedEOFError) GetPosition() Cursor {
	return err.Position
}

func (err *UnexpectedEOFError) Message() string {
	return fmt.Sprintf(
		"Unexpected end of input\n\twant:%s", joinTypes(err.Required),
	)
}

func (err *UnexpectedEOFError) Error() string {
	return positioned(err.Position, err.Message())
}

type UnknownBuiltinError struct {
	Position Cursor
	Received string
}

func (err *UnknownBuiltinError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownBuiltinError) Message() string {
	return fmt.Sprintf("Unknown builtin '.%s'", err.Received)
}

func (err *UnknownBuiltinError) Error() string {
	return positioned(err.Position, err.Message())
}

type InvalidInstructionError struct {
	Position Cursor
	Received string
}

func (err *InvalidInstructionError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidInstructionError) Message() string {
	return fmt.Sprintf("Invalid instruction '%s'", err.Received)
}

func (err *InvalidInstructionError) Error() string {
	return positioned(err.Position, err.Message())
}

type InvalidConstError struct {
	Position Cursor
	Received *Token
}

func (err *InvalidConstError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidConstError) Message() string {
	if err.Received == nil {
		return "Invalid rhs for .const, wanted number\n\thave:<eof>"
	}

	return fmt.Sprintf(
		"Invalid rhs for .const, wanted number\n\thave:%s", err.Received,
	)
}

func (err *InvalidConstError) Error() string {
	return positioned(err.Position, err.Message())
}

type UnterminatedAddressError struct {
	Position Cursor
}

func (err *UnterminatedAddressError) GetPosition() Cursor {
	return err.Position
}

func (err *UnterminatedAddressError) Message() string {
	return "] needed for addr syntax"
}

func (err *UnterminatedAddressError) Error() string {
	return positioned(err.Position, err.Message())
}

type UndefinedIdentifierError struct {
	Position Cursor
	Received string
}

func (err *UndefinedIdentifierError) GetPosition() Cursor {
	return err.Position
}

func (err *UndefinedIdentifierError) Message() string {
	return fmt.Sprintf("Undefined identifier '%s'", err.Received)
}

func (err *UndefinedIdentifierError) Error() string {
	return positioned(err.Position, err.Message())
}

type OversizedLiteralError struct {
	Position Cursor
	Op       encoding.Opcode
	Required uint8
	Received uint8
}

func (err *OversizedLiteralError) GetPosition() Cursor {
	return err.Position
}

func (err *OversizedLiteralError) Message() string {
	return fmt.Sprintf(
		"Operand of %s exceeds allowed size\n\twant:%d\n\thave:%d",
		err.Op,
		err.Required,
		err.Received,
	)
}

func (err *OversizedLiteralError) Error() string {
	return positioned(err.Position, err.Message())
}

type StrayOperandError struct {
	Position Cursor
}

func (err *StrayOperandError) GetPosition() Cursor {
	return err.Position
}

func (err *StrayOperandError) Message() string {
	return "Operand without an instruction"
}

func (err *StrayOperandError) Error() string {
	return positioned(err.Position, err.Message())
}
