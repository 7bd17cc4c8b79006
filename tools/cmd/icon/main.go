// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package icon

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kovidgoyal/lsicons/tools/cli"
	"github.com/kovidgoyal/lsicons/tools/cmd/ls"
	"github.com/kovidgoyal/lsicons/tools/listing"
)

var _ = fmt.Print

// EntryFor turns a name into an entry without touching the filesystem, a
// trailing slash marks a directory.
func EntryFor(name string) listing.Entry {
	var mode fs.FileMode
	if trimmed := strings.TrimRight(name, "/"); trimmed != name && trimmed != "" {
		name, mode = trimmed, fs.ModeDir
	}
	return listing.NewEntry(name, mode)
}

func Print(w io.Writer, r *listing.Renderer, names []string) error {
	entries := make([]listing.Entry, len(names))
	for i, name := range names {
		entries[i] = EntryFor(name)
	}
	return r.Render(w, entries)
}

func EntryPoint(root *cobra.Command) {
	root.AddCommand(cli.CreateCommand(&cobra.Command{
		Use:   "icon NAME ...",
		Short: "Show the icon for the specified file names, end a name with / for a directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := ls.Logger(cmd)
			opts, err := ls.LoadOptions(cmd, log)
			if err != nil {
				return err
			}
			resolver, policy, err := ls.Setup(opts, cli.StdoutIsTerminal(), log)
			if err != nil {
				return err
			}
			r := listing.Renderer{Icons: true, Resolver: resolver}
			if policy != nil {
				r.Policy = policy
			}
			w := bufio.NewWriter(os.Stdout)
			if err = Print(w, &r, args); err != nil {
				return err
			}
			return w.Flush()
		},
	}))
}
