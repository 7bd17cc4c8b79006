// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package colors

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/kovidgoyal/lsicons/tools/utils/style"
)

var _ = fmt.Print

// ParseLSColors parses the colon separated key=SGR list used by LS_COLORS.
// The di key sets the directory style, keys starting with * are globs on the
// base name. Other dircolors keys (ln, ex, ...) are skipped without looking
// at their values.
func ParseLSColors(value string) (rules []Rule, directory style.Style, err error) {
	for _, item := range strings.Split(value, ":") {
		if item == "" {
			continue
		}
		key, codes, found := strings.Cut(item, "=")
		if key != "di" && !strings.HasPrefix(key, "*") {
			continue
		}
		if !found {
			return nil, directory, fmt.Errorf("invalid LS_COLORS entry, no = in: %#v", item)
		}
		s, perr := style.ParseSGR(codes)
		if perr != nil {
			return nil, directory, fmt.Errorf("invalid LS_COLORS entry %#v: %w", item, perr)
		}
		if key == "di" {
			directory = s
			continue
		}
		if !doublestar.ValidatePattern(key) {
			return nil, directory, fmt.Errorf("invalid glob in LS_COLORS entry: %#v", key)
		}
		rules = append(rules, Rule{Glob: key, Style: s})
	}
	return
}

// FromEnvironment applies LSICONS_COLORS, falling back to LS_COLORS. Entries
// from the environment take precedence over existing rules.
func (self *Policy) FromEnvironment() error {
	for _, name := range []string{"LSICONS_COLORS", "LS_COLORS"} {
		val := os.Getenv(name)
		if val == "" {
			continue
		}
		rules, dir, err := ParseLSColors(val)
		if err != nil {
			return fmt.Errorf("failed to parse the %s environment variable: %w", name, err)
		}
		if !dir.IsPlain() {
			self.Directory = dir
		}
		self.Prepend(rules...)
		return nil
	}
	return nil
}
