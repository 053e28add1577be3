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

// Package program reads and writes the t8 binary container: the five byte
// magic "t8cpu" followed by one byte per instruction. There is no length
// field, the instruction count is the remaining byte count.
package program

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/xnacly/tango8/pkg/encoding"
)

// Encode serializes instructions into a complete container.
func Encode(instructions []encoding.Instruction) ([]byte, error) {
	result := make([]byte, 0, len(Magic)+len(instructions))
	result = append(result, Magic...)

	for i, instruction := range instructions {
		b, err := encoding.Encode(instruction)

		if err != nil {
			return nil, &EncodeError{i, err}
		}

		result = append(result, b)
	}

	return result, nil
}

// Decode parses a complete container. Nothing is returned unless every byte
// decodes.
func Decode(data []byte) ([]encoding.Instruction, error) {
	if len(data) < len(Magic) {
		return nil, &ShortHeaderError{len(data)}
	}

	if !bytes.Equal(data[:len(Magic)], []byte(Magic)) {
		header := make([]byte, len(Magic))
		copy(header, data)
		return nil, &InvalidHeaderError{header}
	}

	body := data[len(Magic):]
	result := make([]encoding.Instruction, len(body))

	for i, b := range body {
		instruction, err := encoding.Decode(b)

		if err != nil {
			return nil, &DecodeError{i, err}
		}

		result[i] = instruction
	}

	return result, nil
}

func Write(w io.Writer, instructions []encoding.Instruction) error {
	data, err := Encode(instructions)

	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "write failed")
	}

	return nil
}

func Read(r io.Reader) ([]encoding.Instruction, error) {
	data, err := io.ReadAll(r)

	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}

	return Decode(data)
}

// Load reads the container at path.
func Load(path string) ([]encoding.Instruction, error) {
	file, err := os.Open(path)

	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}

	defer file.Close()

	return Read(file)
}

// Save writes the container to path, replacing any existing file.
func Save(path string, instructions []encoding.Instruction) error {
	file, err := os.Create(path)

	if err != nil {
		return errors.Wrap(err, "create failed")
	}

	if err := Write(file, instructions); err != nil {
		file.Close()
		return err
	}

	return errors.Wrap(file.Close(), "close failed")
}
