package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"github.com/kovidgoyal/lsicons"
	"github.com/kovidgoyal/lsicons/tools/utils"
)

var RootCmd *cobra.Command

var stdout_is_terminal = false
var default_pager = []string{"less", "-isRXF"}

var title_fmt = color.New(color.FgBlue, color.Bold).SprintFunc()
var exe_fmt = color.New(color.FgYellow, color.Bold).SprintFunc()
var opt_fmt = color.New(color.FgGreen).SprintFunc()
var italic_fmt = color.New(color.Italic).SprintFunc()
var err_fmt = color.New(color.FgHiRed).SprintFunc()

func GetTTYSize() (*unix.Winsize, error) {
	if stdout_is_terminal {
		return unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	}
	return nil, fmt.Errorf("STDOUT is not a TTY")
}

func StdoutIsTerminal() bool { return stdout_is_terminal }

// ScreenWidth is the width of the terminal on STDOUT, falling back to the
// COLUMNS environment variable and then to 80.
func ScreenWidth() int {
	if ws, err := GetTTYSize(); err == nil && ws.Col > 0 {
		return int(ws.Col)
	}
	if c, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && c > 0 {
		return c
	}
	return 80
}

// choices {{{
const choices_prefix = "choices-"

func add_choices(cmd *cobra.Command, flags *pflag.FlagSet, choices []string, name string, usage string) *string {
	cmd.Annotations[choices_prefix+name] = strings.Join(choices, "\000")
	return flags.String(name, choices[0], usage)
}

func Choices(cmd *cobra.Command, name string, usage string, choices ...string) *string {
	return add_choices(cmd, cmd.Flags(), choices, name, usage)
}

// PersistentChoices is like Choices but the flag is inherited by sub-commands,
// which validate it too.
func PersistentChoices(cmd *cobra.Command, name string, usage string, choices ...string) *string {
	return add_choices(cmd, cmd.PersistentFlags(), choices, name, usage)
}

func choices_for(cmd *cobra.Command, name string) []string {
	for c := cmd; c != nil; c = c.Parent() {
		if val, found := c.Annotations[choices_prefix+name]; found {
			return strings.Split(val, "\000")
		}
	}
	return nil
}

// ValidateChoices checks every flag that was created with Choices or
// PersistentChoices, on cmd or any of its parents.
func ValidateChoices(cmd *cobra.Command, args []string) (err error) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		if allowed := choices_for(cmd, f.Name); allowed != nil && !slices.Contains(allowed, f.Value.String()) {
			err = fmt.Errorf("%s: Invalid value: %s. Allowed values are: %s", color.YellowString("--"+f.Name), color.RedString(f.Value.String()), strings.Join(allowed, ", "))
		}
	})
	return
}

// }}}

// help output {{{
func format_line_with_indent(output io.Writer, text string, indent string, screen_width int) {
	x := len(indent)
	fmt.Fprint(output, indent)
	in_escape := 0
	var current_word strings.Builder
	var escapes strings.Builder

	print_word := func(r rune) {
		w := runewidth.StringWidth(current_word.String())
		if x+w > screen_width {
			fmt.Fprintln(output)
			fmt.Fprint(output, indent)
			x = len(indent)
			s := strings.TrimSpace(current_word.String())
			current_word.Reset()
			current_word.WriteString(s)
		}
		if escapes.Len() > 0 {
			io.WriteString(output, escapes.String())
			escapes.Reset()
		}
		if current_word.Len() > 0 {
			io.WriteString(output, current_word.String())
			current_word.Reset()
		}
		if r > 0 {
			current_word.WriteRune(r)
		}
		x += w
	}

	for i, r := range text {
		if in_escape > 0 {
			if in_escape == 1 && (r == ']' || r == '[') {
				in_escape = 2
				if r == ']' {
					in_escape = 3
				}
			}
			if (in_escape == 2 && r == 'm') || (in_escape == 3 && r == '\\' && text[i-1] == 0x1b) {
				in_escape = 0
			}
			escapes.WriteRune(r)
			continue
		}
		if r == 0x1b {
			in_escape = 1
			if current_word.Len() != 0 {
				print_word(0)
			}
			escapes.WriteRune(r)
			continue
		}
		if current_word.Len() != 0 && r != 0xa0 && unicode.IsSpace(r) {
			print_word(r)
		} else {
			current_word.WriteRune(r)
		}
	}
	if current_word.Len() != 0 || escapes.Len() != 0 {
		print_word(0)
	}
	if len(text) > 0 {
		fmt.Fprintln(output)
	}
}

func hyperlink_for_path(path string, text string) string {
	if !stdout_is_terminal {
		return text
	}
	path = strings.ReplaceAll(utils.Abspath(path), string(os.PathSeparator), "/")
	host, err := os.Hostname()
	if err != nil {
		host = ""
	}
	return "\x1b]8;;file://" + host + path + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

var role_pat = regexp.MustCompile(":(file|envvar):`([^`]+)`")

// prettify renders the :file:`name` and :envvar:`NAME` roles used in help
// text. Files in the config directory are hyperlinked.
func prettify(text string) string {
	return role_pat.ReplaceAllStringFunc(text, func(m string) string {
		groups := role_pat.FindStringSubmatch(m)
		val := groups[2]
		if groups[1] == "file" && val == utils.ConfigFileName {
			val = hyperlink_for_path(filepath.Join(utils.ConfigDir(), val), val)
		}
		return italic_fmt(val)
	})
}

func format_with_indent(output io.Writer, text string, indent string, screen_width int) {
	for _, line := range strings.Split(prettify(text), "\n") {
		format_line_with_indent(output, line, indent, screen_width)
	}
}

func full_command_name(cmd *cobra.Command) string {
	return cmd.CommandPath()
}

func write_flags(output io.Writer, cmd *cobra.Command, title string, flag_set *pflag.FlagSet, screen_width int) {
	if !flag_set.HasAvailableFlags() {
		return
	}
	fmt.Fprintln(output)
	fmt.Fprintln(output, title_fmt(title)+":")
	flag_set.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}
		fmt.Fprint(output, opt_fmt("  --"+flag.Name))
		if flag.Shorthand != "" {
			fmt.Fprint(output, ", ", opt_fmt("-"+flag.Shorthand))
		}
		if t := flag.Value.Type(); t != "bool" && flag.DefValue != "" && flag.DefValue != "[]" {
			fmt.Fprintf(output, " [=%s]", italic_fmt(flag.DefValue))
		}
		fmt.Fprintln(output)
		msg := flag.Usage
		switch flag.Name {
		case "help":
			msg = "Print this help message"
		case "version":
			msg = "Print the version of " + RootCmd.Name() + ": " + italic_fmt(RootCmd.Version)
		}
		format_with_indent(output, msg, "    ", screen_width)
		if allowed := choices_for(cmd, flag.Name); allowed != nil {
			fmt.Fprintln(output, "    Choices:", strings.Join(allowed, ", "))
		}
		fmt.Fprintln(output)
	})
}

func render_usage(cmd *cobra.Command, screen_width int) string {
	var output strings.Builder
	_, use, _ := strings.Cut(cmd.Use, " ")
	fmt.Fprintln(&output, title_fmt("Usage")+":", exe_fmt(full_command_name(cmd)), use)
	fmt.Fprintln(&output)
	if len(cmd.Long) > 0 {
		format_with_indent(&output, cmd.Long, "", screen_width)
	} else if len(cmd.Short) > 0 {
		format_with_indent(&output, cmd.Short, "", screen_width)
	}
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintln(&output)
		fmt.Fprintln(&output, title_fmt("Commands")+":")
		for _, child := range cmd.Commands() {
			if child.Hidden {
				continue
			}
			fmt.Fprintln(&output, " ", opt_fmt(child.Name()))
			format_with_indent(&output, child.Short, "    ", screen_width)
		}
		fmt.Fprintln(&output)
		format_with_indent(&output, "Get help for an individual command by running:", "", screen_width)
		fmt.Fprintln(&output, "   ", full_command_name(cmd), italic_fmt("command"), "-h")
	}
	write_flags(&output, cmd, "Options", cmd.LocalFlags(), screen_width)
	write_flags(&output, cmd, "Global options", cmd.InheritedFlags(), screen_width)
	fmt.Fprintln(&output, italic_fmt(RootCmd.Name()), opt_fmt(lsicons.VersionString), "created by", title_fmt("Kovid Goyal"))
	return output.String()
}

func show_usage(cmd *cobra.Command) error {
	screen_width := 80
	if ws, err := GetTTYSize(); err == nil && ws.Col < 80 {
		screen_width = int(ws.Col)
	}
	output_text := render_usage(cmd, screen_width)
	if cmd.Annotations["use-pager-for-usage"] == "true" && stdout_is_terminal {
		pager := exec.Command(default_pager[0], default_pager[1:]...)
		if p := os.Getenv("PAGER"); p != "" {
			pager = exec.Command("/bin/sh", "-c", p)
		}
		pager.Stdin = strings.NewReader(output_text)
		pager.Stdout = os.Stdout
		pager.Stderr = os.Stderr
		if pager.Run() == nil {
			return nil
		}
	}
	_, err := io.WriteString(cmd.OutOrStdout(), output_text)
	return err
}

func show_help(cmd *cobra.Command, args []string) {
	if cmd.Annotations != nil {
		cmd.Annotations["use-pager-for-usage"] = "true"
	}
	show_usage(cmd)
}

// }}}

func CreateCommand(cmd *cobra.Command) *cobra.Command {
	cmd.Annotations = make(map[string]string)
	if cmd.Run == nil && cmd.RunE == nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			if len(cmd.Commands()) > 0 {
				if len(args) == 0 {
					return fmt.Errorf("%s. Use %s -h to get a list of available sub-commands", err_fmt("No sub-command specified"), full_command_name(cmd))
				}
				return fmt.Errorf("Not a valid subcommand: %s. Use %s -h to get a list of available sub-commands", err_fmt(args[0]), full_command_name(cmd))
			}
			return nil
		}
	}
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	orig_pre_run := cmd.PersistentPreRunE
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		err := ValidateChoices(cmd, args)
		if err != nil || orig_pre_run == nil {
			return err
		}
		return orig_pre_run(cmd, args)
	}

	cmd.PersistentFlags().SortFlags = false
	cmd.Flags().SortFlags = false
	return cmd
}

func Init(root *cobra.Command) {
	vs := lsicons.VersionString
	if lsicons.VCSRevision != "" {
		vs = vs + " (" + lsicons.VCSRevision + ")"
	}
	stdout_is_terminal = isatty.IsTerminal(os.Stdout.Fd())
	RootCmd = root
	root.Version = vs
	root.SetUsageFunc(show_usage)
	root.SetHelpFunc(show_help)
	root.SetHelpCommand(&cobra.Command{Hidden: true})
	root.CompletionOptions.DisableDefaultCmd = true
}
