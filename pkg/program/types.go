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

package program

import "fmt"

// Leading bytes of every container
const Magic = "t8cpu"

type ShortHeaderError struct {
	Received int
}

func (err *ShortHeaderError) Error() string {
	return fmt.Sprintf(
		"not enough bytes for header\n\twant:%d\n\thave:%d",
		len(Magic),
		err.Received,
	)
}

type InvalidHeaderError struct {
	Received []byte
}

func (err *InvalidHeaderError) Error() string {
	return fmt.Sprintf(
		"invalid header\n\twant:%q\n\thave:%q", Magic, err.Received,
	)
}

// DecodeError locates an undecodable byte in the container. Offset counts
// from the first instruction byte, not from the start of the file.
type DecodeError struct {
	Offset int
	Err    error
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("%04x: %s", err.Offset, err.Err)
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

type EncodeError struct {
	Index int
	Err   error
}

func (err *EncodeError) Error() string {
	return fmt.Sprintf("instruction %d: %s", err.Index, err.Err)
}

func (err *EncodeError) Unwrap() error {
	return err.Err
}
