package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MacroPower/tablegen/internal/cli"
)

const (
	cmdName = "tablegen"

	shortDesc = "Generate C++ lookup tables from color, keymap and enum definitions."
	longDesc  = `tablegen turns human-maintained definition files into C++ sources.

It extracts named colors from CSS rule files into palette structs, builds
256-slot key symbol tables and a shared symbol enumeration from keymap
files, and renders enumeration headers from definition files. All outputs
are produced from text templates with {token} placeholders.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
