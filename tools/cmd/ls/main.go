// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package ls

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kovidgoyal/lsicons/tools/cli"
	"github.com/kovidgoyal/lsicons/tools/colors"
	"github.com/kovidgoyal/lsicons/tools/config"
	"github.com/kovidgoyal/lsicons/tools/icons"
	"github.com/kovidgoyal/lsicons/tools/listing"
)

var _ = fmt.Print

func Logger(cmd *cobra.Command) zerolog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.NewLogger(os.Stderr, debug)
}

// flag_overrides turns flags given on the command line into config overrides
// so that they are validated and applied exactly like config file lines.
func flag_overrides(cmd *cobra.Command) (ans []string) {
	flags := cmd.Flags()
	for _, name := range []string{"icons", "color", "classifier"} {
		if flags.Changed(name) {
			val, _ := flags.GetString(name)
			ans = append(ans, name+"="+val)
		}
	}
	if flags.Changed("all") {
		all, _ := flags.GetBool("all")
		ans = append(ans, fmt.Sprintf("show_hidden=%v", all))
	}
	return
}

// LoadOptions reads the config files named by --config, or the default ones,
// then applies any flags given on the command line on top. Invalid flag values
// are errors, invalid config lines are only logged.
func LoadOptions(cmd *cobra.Command, log zerolog.Logger) (*config.Options, error) {
	paths, _ := cmd.Flags().GetStringArray("config")
	opts, bad_lines, err := config.LoadOptions(paths, flag_overrides(cmd)...)
	if err != nil {
		return nil, err
	}
	for _, bl := range bad_lines {
		if bl.Src_file == config.OverridesSource {
			name, _, _ := strings.Cut(bl.Line, " ")
			return nil, fmt.Errorf("--%s: %w", name, bl.Err)
		}
		log.Warn().Str("file", bl.Src_file).Int("line", bl.Line_number).Err(bl.Err).Msg("Ignoring invalid config line")
	}
	log.Debug().Str("icons", opts.Icons.String()).Str("color", opts.Color.String()).Str("classifier", opts.Classifier).Msg("Options loaded")
	return opts, nil
}

// Setup builds the resolver and, when color is enabled, the policy. Colors
// from the environment that cannot be parsed are logged and left out.
func Setup(opts *config.Options, is_tty bool, log zerolog.Logger) (*icons.Resolver, *colors.Policy, error) {
	resolver, err := opts.Resolver()
	if err != nil {
		return nil, nil, err
	}
	if !opts.Color.Enabled(is_tty) {
		return resolver, nil, nil
	}
	policy, err := opts.Policy(false)
	if err != nil {
		return nil, nil, err
	}
	if err = policy.FromEnvironment(); err != nil {
		log.Warn().Err(err).Msg("Ignoring colors from the environment")
	}
	return resolver, policy, nil
}

type lister struct {
	renderer     listing.Renderer
	show_hidden  bool
	grid         bool
	screen_width int
	log          zerolog.Logger
}

func (self *lister) render(w io.Writer, entries []listing.Entry) error {
	if self.grid {
		return self.renderer.RenderGrid(w, entries, self.screen_width)
	}
	return self.renderer.Render(w, entries)
}

// list writes the listing of every path, files first then directories, as
// ls does. It returns the number of paths that could not be listed.
func (self *lister) list(w io.Writer, paths []string) (failed int, err error) {
	var files []listing.Entry
	var dirs []string
	for _, path := range paths {
		e, serr := listing.Stat(path)
		if serr != nil {
			self.log.Error().Err(serr).Msg("Cannot access")
			failed++
			continue
		}
		if e.IsDirectory() {
			dirs = append(dirs, path)
		} else {
			files = append(files, e)
		}
	}
	if len(files) > 0 {
		if err = self.render(w, files); err != nil {
			return
		}
	}
	show_headers := len(paths) > 1
	for i, dir := range dirs {
		entries, rerr := listing.ReadDir(dir, self.show_hidden)
		if rerr != nil {
			self.log.Error().Err(rerr).Msg("Cannot list")
			failed++
			continue
		}
		self.log.Debug().Str("dir", dir).Int("entries", len(entries)).Msg("Listing")
		if show_headers {
			if i > 0 || len(files) > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s:\n", dir)
		}
		if err = self.render(w, entries); err != nil {
			return
		}
	}
	return
}

func run(cmd *cobra.Command, args []string) error {
	log := Logger(cmd)
	opts, err := LoadOptions(cmd, log)
	if err != nil {
		return err
	}
	is_tty := cli.StdoutIsTerminal()
	resolver, policy, err := Setup(opts, is_tty, log)
	if err != nil {
		return err
	}
	l := lister{
		renderer:    listing.Renderer{Icons: opts.Icons.Enabled(is_tty), Resolver: resolver},
		show_hidden: opts.ShowHidden,
		grid:        is_tty,
		log:         log,
	}
	if policy != nil {
		l.renderer.Policy = policy
	}
	if l.grid {
		l.screen_width = cli.ScreenWidth()
	}
	if len(args) == 0 {
		args = []string{"."}
	}
	w := bufio.NewWriter(os.Stdout)
	failed, err := l.list(w, args)
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of the specified paths could not be listed", failed)
	}
	return nil
}

func NewCommand() *cobra.Command {
	root := cli.CreateCommand(&cobra.Command{
		Use:   "lsicons [flags] [directory ...]",
		Short: "List directories with a file type icon in front of every name",
		Long: "List directories with a file type icon in front of every name. The icons come from a Nerd Font, " +
			"so the terminal must use one. Settings are read from :file:`lsicons.conf` in the config directory " +
			"and names are colored using :envvar:`LSICONS_COLORS` or :envvar:`LS_COLORS`.",
		RunE: run,
	})
	cli.PersistentChoices(root, "icons", "When to show icons, auto means when STDOUT is a terminal", "auto", "always", "never")
	cli.PersistentChoices(root, "color", "When to color names and icons, auto means when STDOUT is a terminal", "auto", "always", "never")
	cli.PersistentChoices(root, "classifier", "How broad file categories such as images or archives are recognized", config.ClassifierNames...)
	root.PersistentFlags().StringArray("config", nil, "Path to a config file to use instead of the default one, can be specified multiple times")
	root.PersistentFlags().Bool("debug", false, "Log debug information to STDERR")
	root.Flags().BoolP("all", "a", false, "Show files whose names start with a dot")
	return root
}
