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

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xnacly/tango8/pkg/config"
)

const sample = `
verbose = true

[io.led]
addr = 15
file = "led.out"

[io.uart]
addr = 0x3
file = "uart.out"
`

func TestDecode(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(sample))

	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, map[string]config.Device{
		"led":  {Addr: 15, File: "led.out"},
		"uart": {Addr: 3, File: "uart.out"},
	}, cfg.IO)
	assert.Equal(t, []string{"led", "uart"}, cfg.Names())
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))

	require.NoError(t, err)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.IO)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		Name  string
		Input string
		Error interface{}
	}{
		{"Address", "[io.led]\naddr = 16\nfile = \"x\"", &config.DeviceError{}},
		{"File", "[io.led]\naddr = 1", &config.DeviceError{}},
		{"Unknown key", "verbos = true", &config.UnknownKeyError{}},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			cfg, err := config.Decode(strings.NewReader(test.Input))

			assert.Nil(t, cfg)
			assert.IsType(t, test.Error, err)
		})
	}
}

func TestDecodeSyntax(t *testing.T) {
	_, err := config.Decode(strings.NewReader("verbose = "))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse failed")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DEFAULT_PATH)
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Len(t, cfg.IO, 2)
}

func TestLoadMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpenDevices(t *testing.T) {
	dir := t.TempDir()
	led := filepath.Join(dir, "led.out")

	require.NoError(t, os.WriteFile(led, []byte("x"), 0644))

	cfg := config.Config{IO: map[string]config.Device{
		"led":  {Addr: 15, File: led},
		"uart": {Addr: 3, File: filepath.Join(dir, "uart.out")},
	}}

	devices, closeAll, err := cfg.OpenDevices()

	require.NoError(t, err)
	assert.Len(t, devices, 2)

	_, err = devices[15].Write([]byte{'A'})
	require.NoError(t, err)
	require.NoError(t, closeAll())

	data, err := os.ReadFile(led)

	require.NoError(t, err)
	assert.Equal(t, "xA", string(data), "device files are appended to")
	assert.FileExists(t, filepath.Join(dir, "uart.out"))
}

func TestOpenDevicesCollision(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Config{IO: map[string]config.Device{
		"b": {Addr: 1, File: filepath.Join(dir, "b.out")},
		"a": {Addr: 1, File: filepath.Join(dir, "a.out")},
	}}

	devices, closeAll, err := cfg.OpenDevices()

	require.NoError(t, err)
	defer closeAll()

	require.Len(t, devices, 1)

	file, ok := devices[1].(*os.File)

	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "b.out"), file.Name())
}

func TestOpenDevicesFailure(t *testing.T) {
	cfg := config.Config{IO: map[string]config.Device{
		"led": {Addr: 1, File: filepath.Join(t.TempDir(), "missing", "led.out")},
	}}

	devices, closeAll, err := cfg.OpenDevices()

	assert.Nil(t, devices)
	assert.Nil(t, closeAll)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "device 'led'")
}
