// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package glyphs

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/kovidgoyal/lsicons/tools/cli"
	"github.com/kovidgoyal/lsicons/tools/icons"
	"github.com/kovidgoyal/lsicons/tools/utils/style"
)

var _ = fmt.Print

func print_table(w io.Writer, title, key_prefix string, table map[string]icons.Glyph) {
	fmt.Fprintln(w, title+":")
	for _, k := range slices.Sorted(maps.Keys(table)) {
		fmt.Fprintf(w, "  %s  U+%04X  %s\n", table[k], rune(table[k]), key_prefix+k)
	}
}

// List writes every glyph the resolver can produce, so that the terminal
// font can be checked for missing icons.
func List(w io.Writer, categories bool, ctx *style.Context) {
	title_fmt := ctx.SprintFunc("fg=blue bold")
	fmt.Fprintf(w, "  %s  U+%04X  %s\n", icons.DIRECTORY, rune(icons.DIRECTORY), "directory")
	fmt.Fprintf(w, "  %s  U+%04X  %s\n\n", icons.FILE, rune(icons.FILE), "file")
	print_table(w, title_fmt("Extensions"), ".", icons.ExtensionMap())
	fmt.Fprintln(w)
	print_table(w, title_fmt("File names"), "", icons.FileNameMap())
	if categories {
		fmt.Fprintln(w)
		fmt.Fprintln(w, title_fmt("Categories")+":")
		for _, c := range icons.AllCategories() {
			fmt.Fprintf(w, "  %s  U+%04X  %s\n", c.Glyph(), rune(c.Glyph()), c)
		}
	}
}

func EntryPoint(root *cobra.Command) {
	cmd := cli.CreateCommand(&cobra.Command{
		Use:   "glyphs [flags]",
		Short: "Show every icon along with the extensions and file names it is used for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, _ := cmd.Flags().GetBool("categories")
			w := bufio.NewWriter(os.Stdout)
			List(w, categories, &style.Context{AllowEscapeCodes: cli.StdoutIsTerminal()})
			return w.Flush()
		},
	})
	cmd.Flags().Bool("categories", false, "Also show the icons used for broad file categories such as images and archives")
	root.AddCommand(cmd)
}
