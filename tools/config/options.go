// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/kovidgoyal/lsicons/tools/colors"
	"github.com/kovidgoyal/lsicons/tools/icons"
	"github.com/kovidgoyal/lsicons/tools/utils"
	"github.com/kovidgoyal/lsicons/tools/utils/style"
)

var _ = fmt.Print

type Mode uint8

const (
	Auto Mode = iota
	Always
	Never
)

var mode_names = map[string]Mode{"auto": Auto, "always": Always, "never": Never}

func ParseMode(x string) (Mode, error) {
	if ans, found := mode_names[strings.ToLower(x)]; found {
		return ans, nil
	}
	return Auto, fmt.Errorf("%#v is not one of: auto, always, never", x)
}

func (self Mode) String() string {
	switch self {
	case Always:
		return "always"
	case Never:
		return "never"
	}
	return "auto"
}

// Enabled resolves auto to whether output goes to a terminal.
func (self Mode) Enabled(is_tty bool) bool {
	switch self {
	case Always:
		return true
	case Never:
		return false
	}
	return is_tty
}

var ClassifierNames = []string{"extension", "mime", "both"}

func ClassifierFor(name string) (icons.Classifier, error) {
	switch name {
	case "extension":
		return icons.ExtensionClassifier{}, nil
	case "mime":
		return icons.MimeClassifier{}, nil
	case "both":
		return icons.ClassifierChain{icons.ExtensionClassifier{}, icons.MimeClassifier{}}, nil
	}
	return nil, fmt.Errorf("%#v is not one of: %s", name, strings.Join(ClassifierNames, ", "))
}

type Options struct {
	Icons          Mode
	Color          Mode
	Classifier     string
	ShowHidden     bool
	DirectoryStyle string
	Styles         []colors.Rule
	Theme          string
}

func NewOptions() *Options {
	return &Options{Classifier: "extension"}
}

func (self *Options) set(key, val, base_dir string) error {
	var err error
	switch key {
	case "icons":
		self.Icons, err = ParseMode(val)
	case "color":
		self.Color, err = ParseMode(val)
	case "classifier":
		if _, err = ClassifierFor(val); err == nil {
			self.Classifier = val
		}
	case "show_hidden":
		self.ShowHidden = StringToBool(val)
	case "directory_style":
		self.DirectoryStyle = val
	case "style":
		glob, spec, found := strings.Cut(val, " ")
		spec = strings.TrimSpace(spec)
		if !found || spec == "" {
			return fmt.Errorf("style needs a glob and a style, got: %#v", val)
		}
		if !doublestar.ValidatePattern(glob) {
			return fmt.Errorf("invalid glob: %#v", glob)
		}
		self.Styles = append(self.Styles, colors.Rule{Glob: glob, Style: style.ParseStyle(spec)})
	case "theme":
		self.Theme = utils.Expanduser(val)
		if !filepath.IsAbs(self.Theme) {
			self.Theme = filepath.Join(base_dir, self.Theme)
		}
	default:
		return fmt.Errorf("unknown option: %s", key)
	}
	return err
}

// LoadOptions reads the system and user config files, or paths when given,
// then applies overrides of the form key=value. Lines that cannot be applied
// are returned rather than failing the load, those from overrides have
// OverridesSource as their file. A relative theme path is resolved against
// the directory of the file it appears in.
func LoadOptions(paths []string, overrides ...string) (*Options, []ConfigLine, error) {
	ans := NewOptions()
	p := ConfigParser{}
	p.LineHandler = func(key, val string) error { return ans.set(key, val, p.CurrentDir()) }
	if err := p.LoadConfig(utils.ConfigFileName, paths, overrides); err != nil {
		return nil, nil, err
	}
	return ans, p.BadLines(), nil
}

// Policy builds the color policy. Precedence from lowest: built-in file
// kinds, theme rules, style lines, then LSICONS_COLORS or LS_COLORS.
func (self *Options) Policy(use_environment bool) (*colors.Policy, error) {
	ans := colors.NewPolicy()
	c, err := ClassifierFor(self.Classifier)
	if err != nil {
		return nil, err
	}
	ans.Classifier = c
	if self.Theme != "" {
		t, err := colors.LoadTheme(self.Theme)
		if err != nil {
			return nil, err
		}
		t.Apply(ans)
	}
	if self.DirectoryStyle != "" {
		ans.Directory = style.ParseStyle(self.DirectoryStyle)
	}
	ans.Prepend(self.Styles...)
	if use_environment {
		if err = ans.FromEnvironment(); err != nil {
			return nil, err
		}
	}
	return ans, nil
}

func (self *Options) Resolver() (*icons.Resolver, error) {
	c, err := ClassifierFor(self.Classifier)
	if err != nil {
		return nil, err
	}
	return &icons.Resolver{Classifier: c}, nil
}
