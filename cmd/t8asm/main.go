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
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xnacly/tango8/internal/term"
	"github.com/xnacly/tango8/pkg/assembler"
	"github.com/xnacly/tango8/pkg/program"
)

var debugvar bool
var outvar string
var exitcode int

var rootCmd = &cobra.Command{
	Use:   "t8asm [--debug] [-o outfile] [filename]",
	Short: "Assembles t8 source into a t8cpu binary",
	Long: `t8asm translates a .t8 assembly file into the t8cpu container format
run by t8emu. Without a filename the source is read from stdin.

The output file defaults to the input name with the extension '.t8b'.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		exitcode = t8asm(cmd, args)
	},
}

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	rootCmd.Flags().BoolVar(
		&debugvar, "debug", false,
		"Specifies whether to generate debugging information as a symbol "+
			"table. The table will use the output filename with extension "+
			"'.t8db'",
	)
	rootCmd.Flags().StringVarP(
		&outvar, "out", "o", "",
		"Specifies a precise name for the output file, "+
			"overriding the default means of determining it",
	)
}

// A terminal on stdin means no source was piped in
func isPiped(file *os.File) (bool, error) {
	stat, err := file.Stat()

	if err != nil {
		return false, errors.Wrap(err, "stdin")
	}

	return stat.Mode()&os.ModeCharDevice == 0, nil
}

func replaceExt(path string, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func t8asm(cmd *cobra.Command, args []string) int {
	var src []byte
	var infile string
	var err error

	color := term.Color(os.Stderr)

	if len(args) == 0 {
		piped, err := isPiped(os.Stdin)

		if err != nil {
			log.Println(err)
			return 1
		}

		if !piped {
			cmd.Usage()
			return 1
		}

		infile = "<stdin>"

		if src, err = io.ReadAll(os.Stdin); err != nil {
			log.Println(err)
			return 1
		}

		if outvar == "" {
			outvar = "out.t8b"
		}
	} else {
		infile = args[0]

		if stat, err := os.Stat(infile); err != nil {
			log.Println(err)
			return 1
		} else if stat.IsDir() {
			log.Printf("%s is not a valid t8 assembly file", infile)
			return 1
		}

		if src, err = os.ReadFile(infile); err != nil {
			log.Println(err)
			return 1
		}

		if outvar == "" {
			outvar = replaceExt(infile, ".t8b")
		}
	}

	if color {
		log.SetPrefix(fmt.Sprintf("\033[1m%s:\033[0m ", filepath.Base(infile)))
	} else {
		log.SetPrefix(filepath.Base(infile) + ": ")
	}

	var symtable *assembler.SymTable

	if debugvar {
		symtable = assembler.NewSymTable("")

		if len(args) > 0 {
			if symtable.Source, err = filepath.Abs(infile); err != nil {
				log.Println(err)
				symtable.Source = ""
			}
		}
	}

	result, err := assembler.Assemble(src, symtable)

	if err != nil {
		tokenErr, ok := err.(assembler.TokenError)

		if !ok {
			log.Println(err)
			return 1
		}

		position := tokenErr.GetPosition()
		log.Printf("%02d:%02d: error", position.Line+1, position.Column+1)

		lines := assembler.SourceLines(src)

		if err := assembler.Render(os.Stderr, lines, tokenErr, color); err != nil {
			log.Println(err)
		}

		return 1
	}

	if err := program.Save(outvar, result); err != nil {
		log.Println("Error writing output file")
		log.Println(err)
		return 1
	}

	if debugvar {
		if err := symtable.SaveFile(replaceExt(outvar, ".t8db")); err != nil {
			log.Println("Error writing symbol table")
			log.Println(err)
			return 1
		}
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
