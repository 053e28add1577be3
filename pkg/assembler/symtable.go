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
	"encoding/gob"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Save writes the table in the .t8db format read by ReadSymTable.
func (symtable *SymTable) Save(w io.Writer) error {
	return errors.Wrap(gob.NewEncoder(w).Encode(symtable), "symbol table")
}

// SaveFile creates path and writes the table to it.
func (symtable *SymTable) SaveFile(path string) error {
	file, err := os.Create(path)

	if err != nil {
		return errors.Wrap(err, "create failed")
	}

	if err := symtable.Save(file); err != nil {
		file.Close()
		return err
	}

	return errors.Wrap(file.Close(), "close failed")
}

func ReadSymTable(r io.Reader) (*SymTable, error) {
	var symtable SymTable

	if err := gob.NewDecoder(r).Decode(&symtable); err != nil {
		return nil, errors.Wrap(err, "symbol table")
	}

	// gob leaves empty maps nil
	if symtable.Constants == nil {
		symtable.Constants = make(map[string]uint8)
	}

	if symtable.Lines == nil {
		symtable.Lines = make(map[uint16]Cursor)
	}

	return &symtable, nil
}
