// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package colors

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v2"

	"github.com/kovidgoyal/lsicons/tools/utils/style"
)

var _ = fmt.Print

type ThemeRule struct {
	Glob  string `yaml:"glob"`
	Style string `yaml:"style"`
}

// Theme is the YAML form of a Policy, styles use the "fg=red bold" syntax.
type Theme struct {
	Directory   string      `yaml:"directory"`
	NoFileKinds bool        `yaml:"no_file_kinds"`
	Rules       []ThemeRule `yaml:"rules"`
}

func ParseTheme(data []byte) (*Theme, error) {
	ans := &Theme{}
	if err := yaml.UnmarshalStrict(data, ans); err != nil {
		return nil, err
	}
	for i, r := range ans.Rules {
		if r.Glob == "" {
			return nil, fmt.Errorf("rule %d has no glob", i+1)
		}
		if !doublestar.ValidatePattern(r.Glob) {
			return nil, fmt.Errorf("rule %d has an invalid glob: %#v", i+1, r.Glob)
		}
	}
	return ans, nil
}

func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ans, err := ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse the theme file %s: %w", path, err)
	}
	return ans, nil
}

// Apply merges the theme into the policy, theme rules go after existing ones.
func (self *Theme) Apply(p *Policy) {
	if self.Directory != "" {
		p.Directory = style.ParseStyle(self.Directory)
	}
	if self.NoFileKinds {
		p.NoFileKinds = true
	}
	for _, r := range self.Rules {
		p.AddRules(Rule{Glob: r.Glob, Style: style.ParseStyle(r.Style)})
	}
}
