// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/kovidgoyal/lsicons/tools/cli"
	"github.com/kovidgoyal/lsicons/tools/cmd/glyphs"
	"github.com/kovidgoyal/lsicons/tools/cmd/icon"
	"github.com/kovidgoyal/lsicons/tools/cmd/ls"
)

func main() {
	root := ls.NewCommand()
	cli.Init(root)
	glyphs.EntryPoint(root)
	icon.EntryPoint(root)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error")+":", err)
		os.Exit(1)
	}
}
