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
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xnacly/tango8/pkg/assembler"
)

func TestSymTableRoundTrip(t *testing.T) {
	symtable := assembler.NewSymTable("examples/led.t8")

	if _, err := assembler.Assemble([]byte(ledSource), symtable); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer

	if err := symtable.Save(&buf); err != nil {
		t.Fatal(err)
	}

	loaded, err := assembler.ReadSymTable(&buf)

	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(symtable, loaded) {
		t.Fatalf("Symbol table mismatch\nwant:%+v\nhave:%+v", symtable, loaded)
	}
}

func TestSymTableEmpty(t *testing.T) {
	var buf bytes.Buffer

	if err := assembler.NewSymTable("").Save(&buf); err != nil {
		t.Fatal(err)
	}

	loaded, err := assembler.ReadSymTable(&buf)

	if err != nil {
		t.Fatal(err)
	}

	if loaded.Constants == nil || loaded.Lines == nil {
		t.Fatalf("Loaded table has nil maps: %+v", loaded)
	}
}

func TestSymTableCorrupt(t *testing.T) {
	if _, err := assembler.ReadSymTable(bytes.NewReader([]byte("t8cpu"))); err == nil {
		t.Fatal("Corrupt symbol table loaded without error")
	}
}

func TestSymTableSaveFile(t *testing.T) {
	symtable := assembler.NewSymTable("examples/led.t8")

	if _, err := assembler.Assemble([]byte(ledSource), symtable); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "led.t8db")

	if err := symtable.SaveFile(path); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(path)

	if err != nil {
		t.Fatal(err)
	}

	defer file.Close()

	loaded, err := assembler.ReadSymTable(file)

	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(loaded, symtable) {
		t.Fatalf("Symbol table mismatch\nwant:%v\nhave:%v", symtable, loaded)
	}

	if err := symtable.SaveFile(filepath.Join(path, "nested.t8db")); err == nil {
		t.Fatal("Saving below a file produced no error")
	}
}
