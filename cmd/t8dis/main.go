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
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xnacly/tango8/pkg/disassembler"
	"github.com/xnacly/tango8/pkg/program"
)

var outvar string
var exitcode int

var rootCmd = &cobra.Command{
	Use:   "t8dis [-o outfile] filename",
	Short: "Prints a t8cpu binary as t8 assembly",
	Long: `t8dis decodes a .t8b binary and prints one instruction per line, each
preceded by a comment with its index and encoding. The listing assembles back
into the same binary with t8asm.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		exitcode = t8dis(args[0])
	},
}

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	rootCmd.Flags().StringVarP(
		&outvar, "out", "o", "",
		"Writes the listing to a file instead of stdout",
	)
}

func t8dis(path string) int {
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(path)))

	code, err := program.Load(path)

	if err != nil {
		log.Println(err)
		return 1
	}

	var out io.Writer = os.Stdout

	if outvar != "" {
		file, err := os.Create(outvar)

		if err != nil {
			log.Println(err)
			return 1
		}

		defer file.Close()
		out = file
	}

	if err := disassembler.Disassemble(out, code); err != nil {
		log.Println(err)
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
