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

type lexer struct {
	src    []byte
	pos    int
	cursor Cursor
	tokens []Token
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Characters accepted inside a numeric literal run
func isLiteral(c byte) bool {
	return isDigit(c) || (c >= 'A' && c <= 'F') || c == 'x'
}

func (l *lexer) end() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) cur() byte {
	return l.src[l.pos]
}

func (l *lexer) advance() {
	l.pos++
	l.cursor.Column++
}

func (l *lexer) newline() {
	l.pos++
	l.cursor.Line++
	l.cursor.Column = 0
}

// Consumes characters while accept holds and returns them
func (l *lexer) run(accept func(byte) bool) string {
	start := l.pos

	for !l.end() && accept(l.cur()) {
		l.advance()
	}

	return string(l.src[start:l.pos])
}

func (l *lexer) push(token Token) {
	l.tokens = append(l.tokens, token)
}

// Tokenize splits src into positioned tokens. Tokenizing stops at the first
// illegal input.
func Tokenize(src []byte) ([]Token, error) {
	l := lexer{src: src, tokens: make([]Token, 0, len(src)/2)}

	for !l.end() {
		start := l.cursor
		c := l.cur()

		switch {
		// Comments
		case c == ';':
			for !l.end() && l.cur() != '\n' && l.cur() != '\r' {
				l.advance()
			}

		// Whitespace
		case c == '\n' || c == '\r':
			l.newline()

		case c == ' ' || c == '\t':
			l.advance()

		// Builtins (i.e. .const)
		case c == '.':
			l.advance()

			if l.end() || !isAlpha(l.cur()) {
				return nil, &MissingBuiltinNameError{l.cursor}
			}

			l.push(Token{
				Type:     TOKEN_BUILTIN,
				Position: start,
				Value:    l.run(isAlpha),
			})

		case c == '#':
			l.push(Token{Type: TOKEN_HASH, Position: start})
			l.advance()

		case c == '[':
			l.push(Token{Type: TOKEN_LBRACKET, Position: start})
			l.advance()

		case c == ']':
			l.push(Token{Type: TOKEN_RBRACKET, Position: start})
			l.advance()

		// Numeric literals (i.e. 15, 0xF)
		case isDigit(c):
			text := l.run(isLiteral)
			value, err := encoding.DecodeLiteral(text)

			if err != nil {
				return nil, &InvalidLiteralError{start, text, err}
			}

			l.push(Token{Type: TOKEN_NUMBER, Position: start, Number: value})

		// Mnemonics and constant names
		case isAlpha(c):
			l.push(Token{
				Type:     TOKEN_IDENT,
				Position: start,
				Value:    l.run(isAlpha),
			})

		default:
			return nil, &UnexpectedCharacterError{start, c}
		}
	}

	return l.tokens, nil
}

// SourceLines splits src the same way Tokenize counts lines, so that a
// Cursor.Line indexes the result directly.
func SourceLines(src []byte) []string {
	lines := make([]string, 0, 16)
	start := 0

	for i, c := range src {
		if c == '\n' || c == '\r' {
			lines = append(lines, string(src[start:i]))
			start = i + 1
		}
	}

	return append(lines, string(src[start:]))
}
