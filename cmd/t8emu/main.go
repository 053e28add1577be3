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
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xnacly/tango8/internal/term"
	"github.com/xnacly/tango8/pkg/assembler"
	"github.com/xnacly/tango8/pkg/config"
	"github.com/xnacly/tango8/pkg/debugger"
	"github.com/xnacly/tango8/pkg/machine"
)

var configvar string
var verbosevar bool
var debugvar bool
var exitcode int

var rootCmd = &cobra.Command{
	Use:   "t8emu [--config t8.toml] [--verbose] [--debug] filename",
	Short: "Runs a t8cpu binary",
	Long: `t8emu executes a .t8b binary until it halts. Devices listed in the
configuration file are mapped into memory: every store to a device address
appends the stored byte to the device file.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		exitcode = t8emu(cmd, args)
	},
}

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	rootCmd.Flags().StringVar(
		&configvar, "config", config.DEFAULT_PATH,
		"Specifies the device configuration file",
	)
	rootCmd.Flags().BoolVar(
		&verbosevar, "verbose", false,
		"Prints every instruction before it executes",
	)
	rootCmd.Flags().BoolVar(
		&debugvar, "debug", false, "Runs the machine in a debug CLI",
	)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configvar)

	// Only an explicitly requested file has to exist
	if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
		return &config.Config{}, nil
	}

	return cfg, err
}

func loadSymTable(path string) (*assembler.SymTable, error) {
	filename := strings.TrimSuffix(path, filepath.Ext(path)) + ".t8db"
	file, err := os.Open(filename)

	if err != nil {
		return nil, err
	}

	defer file.Close()

	return assembler.ReadSymTable(file)
}

func setupDebugger(mc *machine.Machine, path string) *debugger.Debugger {
	dbg := debugger.New()
	dbg.Color = term.Color(os.Stdout)
	dbg.HandleBreak = handleBreak
	dbg.HandleRead = handleRead
	dbg.HandleWrite = handleWrite
	mc.Debugger = dbg

	if symtable, err := loadSymTable(path); err == nil {
		dbg.SymTable = symtable
	} else {
		log.Println("Error loading symbol file")
		log.Println(err)
	}

	if dbg.SymTable != nil && dbg.SymTable.Source != "" {
		if src, err := os.ReadFile(dbg.SymTable.Source); err == nil {
			dbg.Source = assembler.SourceLines(src)
		} else {
			log.Println("Error loading source file")
			log.Println(err)
		}
	}

	return dbg
}

func t8emu(cmd *cobra.Command, args []string) int {
	cfg, err := loadConfig(cmd)

	if err != nil {
		log.Println(err)
		return 1
	}

	file, err := os.Open(args[0])

	if err != nil {
		log.Println(err)
		return 1
	}

	defer file.Close()

	var mc machine.Machine

	if err := mc.LoadBin(file); err != nil {
		log.Printf("%s: %s", args[0], err)
		return 1
	}

	devices, closeDevices, err := cfg.OpenDevices()

	if err != nil {
		log.Println(err)
		return 1
	}

	defer func() {
		if err := closeDevices(); err != nil {
			log.Println(err)
		}
	}()

	mc.Devices = devices

	if verbosevar || cfg.Verbose {
		mc.Trace = os.Stdout
	}

	if debugvar {
		dbg := setupDebugger(&mc, args[0])

		c := make(chan os.Signal, 1)
		defer close(c)

		signal.Notify(c, os.Interrupt)
		defer signal.Stop(c)

		go func() {
			for range c {
				fmt.Println()
				dbg.Break.Store(true)
			}
		}()

		debugREPL(dbg, &mc)
	}

	if err := mc.Run(); err != nil {
		switch err.(type) {
		case *machine.AddressError, *machine.OperandError:
			log.Println(err)
		default:
			log.Printf("%04x: %s", mc.State.Program, err)
		}

		return 1
	}

	return 0
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}

	os.Exit(exitcode)
}
