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

// Package term answers whether output goes to an interactive terminal, which
// decides if diagnostics are coloured.
package term

import "os"

// Color reports whether escape sequences should be written to file. Setting
// NO_COLOR disables them regardless of the terminal.
func Color(file *os.File) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}

	return IsTerminal(int(file.Fd()))
}
