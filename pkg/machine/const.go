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

package machine

const (
	MEMORY_SIZE = 16
	ADDR_MAX    = MEMORY_SIZE - 1
)

// Verbose trace line, one per executed instruction:
// pc, encoded byte, mnemonic, opcode and operand nibbles, ac and dest.
const TRACE_FORMAT = "%04x: 0x%X %8s (op=0x%X, imm=0x%X) [ac=0x%X,dest=0x%X]\n"
