// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/kovidgoyal/lsicons/tools/utils"
)

var _ = fmt.Print

const (
	// OverridesSource is the Src_file of lines that came from ParseOverrides.
	OverridesSource   = "<overrides>"
	max_include_depth = 32
	system_config_dir = "/etc/xdg/lsicons"
)

func StringToBool(x string) bool {
	switch strings.ToLower(x) {
	case "y", "yes", "true", "on", "1":
		return true
	}
	return false
}

type ConfigLine struct {
	Src_file, Line string
	Line_number    int
	Err            error
}

func (self ConfigLine) String() string {
	return fmt.Sprintf("%s:%d: %s", self.Src_file, self.Line_number, self.Err)
}

type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

// continued_lines yields logical lines, joining lines that start with a
// backslash onto the previous one and skipping blank lines.
type continued_lines struct {
	scanner     Scanner
	num         int
	pending     string
	pending_num int
	has_pending bool
}

func (self *continued_lines) read() (string, bool) {
	if !self.scanner.Scan() {
		return "", false
	}
	self.num++
	return strings.TrimLeft(self.scanner.Text(), " \t"), true
}

func (self *continued_lines) next() (line string, lnum int, ok bool) {
	if self.has_pending {
		line, lnum, self.has_pending = self.pending, self.pending_num, false
	} else {
		for line == "" {
			if line, ok = self.read(); !ok {
				return
			}
		}
		lnum = self.num
	}
	for {
		nl, more := self.read()
		if !more {
			break
		}
		if strings.HasPrefix(nl, `\`) {
			line += nl[1:]
			continue
		}
		if nl != "" {
			self.pending, self.pending_num, self.has_pending = nl, self.num, true
		}
		break
	}
	return line, lnum, true
}

var key_pat = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
})

func split_line(line string) (key, val string, err error) {
	idx := strings.IndexAny(line, " \t")
	if idx > 0 {
		key, val = line[:idx], strings.TrimSpace(line[idx+1:])
	}
	if val == "" || !key_pat().MatchString(key) {
		return "", "", fmt.Errorf("Invalid config line: %#v", line)
	}
	return
}

type ConfigParser struct {
	LineHandler   func(key, val string) error
	SourceHandler func(text, path string)

	bad_lines     []ConfigLine
	seen_includes map[string]bool
	current_dir   string
}

func (self *ConfigParser) BadLines() []ConfigLine {
	return self.bad_lines
}

// CurrentDir is the directory of the file whose lines are being handled.
// Relative paths in values are resolved against it.
func (self *ConfigParser) CurrentDir() string {
	return self.current_dir
}

func (self *ConfigParser) include(directive, val, dir string, depth int) (err error, fatal bool) {
	if depth >= max_include_depth {
		return fmt.Errorf("Too many nested include directives, the limit is %d", max_include_depth), true
	}
	path := utils.Expanduser(val)
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	paths := []string{path}
	if directive == "globinclude" {
		if paths, err = doublestar.FilepathGlob(path); err != nil {
			return fmt.Errorf("Invalid glob pattern: %#v", val), false
		}
	}
	for _, path := range paths {
		raw, rerr := os.ReadFile(path)
		if rerr != nil {
			if errors.Is(rerr, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("Failed to read the included file %s: %w", path, rerr), true
		}
		if err = self.parse(bufio.NewScanner(bytes.NewReader(raw)), path, filepath.Dir(path), depth+1); err != nil {
			return err, true
		}
	}
	return nil, false
}

func (self *ConfigParser) parse(scanner Scanner, name, dir string, depth int) error {
	if self.seen_includes[name] {
		return nil
	}
	self.seen_includes[name] = true
	lines := continued_lines{scanner: scanner}
	for {
		line, lnum, ok := lines.next()
		if !ok {
			break
		}
		if line[0] == '#' {
			continue
		}
		key, val, err := split_line(line)
		if err == nil {
			switch key {
			case "include", "globinclude":
				var fatal bool
				if err, fatal = self.include(key, val, dir, depth); fatal {
					return err
				}
			default:
				self.current_dir = dir
				err = self.LineHandler(key, val)
			}
		}
		if err != nil {
			self.bad_lines = append(self.bad_lines, ConfigLine{Src_file: name, Line: line, Line_number: lnum, Err: err})
		}
	}
	return scanner.Err()
}

func (self *ConfigParser) ParseFiles(paths ...string) error {
	for _, path := range paths {
		path = utils.Abspath(path)
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		self.seen_includes = make(map[string]bool)
		if err = self.parse(bufio.NewScanner(bytes.NewReader(raw)), path, filepath.Dir(path), 0); err != nil {
			return err
		}
		if self.SourceHandler != nil {
			self.SourceHandler(string(raw), path)
		}
	}
	return nil
}

type lines_scanner struct {
	lines []string
	text  string
}

func (self *lines_scanner) Scan() bool {
	if len(self.lines) == 0 {
		return false
	}
	self.text, self.lines = self.lines[0], self.lines[1:]
	return true
}

func (self *lines_scanner) Text() string { return self.text }
func (self *lines_scanner) Err() error   { return nil }

// ParseOverrides parses key=value settings, typically from the command line.
// Bad lines are reported with OverridesSource as their file.
func (self *ConfigParser) ParseOverrides(overrides ...string) error {
	lines := make([]string, len(overrides))
	for i, x := range overrides {
		lines[i] = strings.Replace(x, "=", " ", 1)
	}
	self.seen_includes = make(map[string]bool)
	return self.parse(&lines_scanner{lines: lines}, OverridesSource, utils.ConfigDir(), 0)
}

// LoadConfig parses the system wide config, then either paths or, when paths
// is empty, name in the user config directory, then overrides. Missing files
// are skipped.
func (self *ConfigParser) LoadConfig(name string, paths []string, overrides []string) error {
	if len(paths) == 0 {
		paths = []string{filepath.Join(utils.ConfigDir(), name)}
	}
	for _, path := range append([]string{filepath.Join(system_config_dir, name)}, paths...) {
		if err := self.ParseFiles(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if len(overrides) > 0 {
		return self.ParseOverrides(overrides...)
	}
	return nil
}
