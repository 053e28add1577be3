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
	"io"
	"strings"
)

// Render writes err with up to RENDER_CONTEXT lines of source on either side
// of the offending line and a caret under its column. lines is usually the
// result of SourceLines.
func Render(w io.Writer, lines []string, err TokenError, color bool) error {
	position := err.GetPosition()

	start := position.Line - RENDER_CONTEXT
	if start < 0 {
		start = 0
	}

	end := position.Line + RENDER_CONTEXT + 1
	if end > len(lines) {
		end = len(lines)
	}

	// Only the first line of multi line messages goes next to the caret
	message := strings.SplitN(err.Message(), "\n", 2)

	for i := start; i < end; i++ {
		if _, err := fmt.Fprintf(w, "%02d | %s\n", i+1, lines[i]); err != nil {
			return err
		}

		if i != position.Line {
			continue
		}

		caret := "^ " + message[0]

		if color {
			caret = "\033[31m" + caret + "\033[0m"
		}

		pad := strings.Repeat(" ", position.Column)

		if _, err := fmt.Fprintf(w, "   | %s%s\n", pad, caret); err != nil {
			return err
		}

		if len(message) > 1 {
			if _, err := fmt.Fprintf(w, "%s\n", message[1]); err != nil {
				return err
			}
		}
	}

	return nil
}
