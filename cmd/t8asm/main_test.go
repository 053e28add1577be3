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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPiped(t *testing.T) {
	r, w, err := os.Pipe()

	require.NoError(t, err)
	defer w.Close()

	piped, err := isPiped(r)

	require.NoError(t, err)
	assert.True(t, piped)

	file, err := os.Create(filepath.Join(t.TempDir(), "src.t8"))

	require.NoError(t, err)

	piped, err = isPiped(file)

	require.NoError(t, err)
	assert.True(t, piped)

	r.Close()

	_, err = isPiped(r)
	assert.Error(t, err)
}

func TestReplaceExt(t *testing.T) {
	assert.Equal(t, "examples/led.t8db", replaceExt("examples/led.t8b", ".t8db"))
	assert.Equal(t, "out.t8b", replaceExt("out", ".t8b"))
}
