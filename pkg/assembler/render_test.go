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

package assembler_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xnacly/tango8/pkg/assembler"
)

func renderError(t *testing.T, src string, color bool) string {
	_, err := assembler.Assemble([]byte(src), nil)

	if err == nil {
		t.Fatalf("%q assembled without error", src)
	}

	tokenErr, ok := err.(assembler.TokenError)

	if !ok {
		t.Fatalf("%T does not implement TokenError", err)
	}

	var buf bytes.Buffer
	lines := assembler.SourceLines([]byte(src))

	if err := assembler.Render(&buf, lines, tokenErr, color); err != nil {
		t.Fatal(err)
	}

	return buf.String()
}

func TestRender(t *testing.T) {
	have := renderError(t, "LOADI #1\nST [2],\nHALT", false)
	want := "01 | LOADI #1\n" +
		"02 | ST [2],\n" +
		"   |       ^ Unknown character ','\n" +
		"03 | HALT\n"

	if have != want {
		t.Fatalf("Render mismatch\nwant:\n%s\nhave:\n%s", want, have)
	}
}

func TestRenderMultiline(t *testing.T) {
	have := renderError(t, "LOADI five", false)
	want := "01 | LOADI five\n" +
		"   |       ^ Unexpected token\n" +
		"\twant:Hash, LeftBracket, or Number\n" +
		"\thave:Identifier(five)\n"

	if have != want {
		t.Fatalf("Render mismatch\nwant:\n%s\nhave:\n%s", want, have)
	}
}

func TestRenderContext(t *testing.T) {
	src := "NOP\nNOP\nNOP\nNOP\nNOP\nJMP\nNOP\nNOP\nNOP\nNOP"
	have := renderError(t, src, false)
	lines := strings.Split(strings.TrimSuffix(have, "\n"), "\n")

	if len(lines) != 6 {
		t.Fatalf("Expected 5 source lines and a caret, have:\n%s", have)
	}

	if !strings.HasPrefix(lines[0], "04 | ") {
		t.Fatalf("Context starts at wrong line\nwant:04\nhave:%s", lines[0])
	}

	if !strings.HasPrefix(lines[5], "08 | ") {
		t.Fatalf("Context ends at wrong line\nwant:08\nhave:%s", lines[5])
	}
}

func TestRenderColor(t *testing.T) {
	have := renderError(t, "LOADI #nope", true)

	if !strings.Contains(have, "\033[31m^ Undefined identifier 'nope'\033[0m") {
		t.Fatalf("Missing colored caret:\n%q", have)
	}
}
