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

// Package config loads emulator settings from t8.toml.
//
//	verbose = true
//
//	[io.led]
//	addr = 15
//	file = "led.out"
package config

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/xnacly/tango8/pkg/machine"
)

const DEFAULT_PATH = "t8.toml"

type Device struct {
	Addr uint8  `toml:"addr"`
	File string `toml:"file"`
}

type Config struct {
	Verbose bool              `toml:"verbose"`
	IO      map[string]Device `toml:"io"`
}

type DeviceError struct {
	Name    string
	Device  Device
	Problem string
}

func (err *DeviceError) Error() string {
	return fmt.Sprintf("device '%s': %s", err.Name, err.Problem)
}

type UnknownKeyError struct {
	Keys []string
}

func (err *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown configuration keys %v", err.Keys)
}

func Decode(r io.Reader) (*Config, error) {
	var cfg Config

	meta, err := toml.NewDecoder(r).Decode(&cfg)

	if err != nil {
		return nil, errors.Wrap(err, "parse failed")
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))

		for i, key := range undecoded {
			keys[i] = key.String()
		}

		return nil, &UnknownKeyError{keys}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)

	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}

	defer file.Close()

	cfg, err := Decode(file)

	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return cfg, nil
}

// Names returns device names in the order devices are opened.
func (cfg *Config) Names() []string {
	names := make([]string, 0, len(cfg.IO))

	for name := range cfg.IO {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (cfg *Config) Validate() error {
	for _, name := range cfg.Names() {
		device := cfg.IO[name]

		if device.Addr > machine.ADDR_MAX {
			return &DeviceError{
				name,
				device,
				fmt.Sprintf("address %#x out of range", device.Addr),
			}
		}

		if device.File == "" {
			return &DeviceError{name, device, "missing file"}
		}
	}

	return nil
}

// OpenDevices opens every device file for appending, creating missing
// files. When two devices share an address the later name wins. The
// returned function closes every opened file.
func (cfg *Config) OpenDevices() (map[uint8]io.Writer, func() error, error) {
	devices := make(map[uint8]io.Writer, len(cfg.IO))
	files := make([]*os.File, 0, len(cfg.IO))

	closeAll := func() error {
		var result error

		for _, file := range files {
			if err := file.Close(); err != nil && result == nil {
				result = errors.Wrap(err, "close failed")
			}
		}

		return result
	}

	for _, name := range cfg.Names() {
		device := cfg.IO[name]

		file, err := os.OpenFile(
			device.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644,
		)

		if err != nil {
			closeAll()
			return nil, nil, errors.Wrapf(err, "device '%s'", name)
		}

		files = append(files, file)
		devices[device.Addr] = file
	}

	return devices, closeAll, nil
}
