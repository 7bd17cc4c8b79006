// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package listing

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var _ = fmt.Print

// Entry is a single directory entry, it implements icons.File.
type Entry struct {
	Name string
	Mode fs.FileMode

	ext     string
	has_ext bool
}

// NewEntry computes the extension as the lower-cased text after the last dot
// in name. A leading dot counts, so .bashrc has the extension bashrc.
func NewEntry(name string, mode fs.FileMode) Entry {
	ans := Entry{Name: name, Mode: mode}
	if idx := strings.LastIndexByte(name, '.'); idx > -1 {
		ans.ext, ans.has_ext = strings.ToLower(name[idx+1:]), true
	}
	return ans
}

func (self Entry) IsDirectory() bool         { return self.Mode.IsDir() }
func (self Entry) Extension() (string, bool) { return self.ext, self.has_ext }
func (self Entry) BaseName() string          { return self.Name }

// ReadDir lists dir sorted by name. Symlinks to directories count as
// directories, broken symlinks as files.
func ReadDir(dir string, show_hidden bool) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list the directory %s: %w", dir, err)
	}
	ans := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		name := d.Name()
		if !show_hidden && strings.HasPrefix(name, ".") {
			continue
		}
		mode := d.Type()
		if mode&fs.ModeSymlink != 0 {
			if st, serr := os.Stat(filepath.Join(dir, name)); serr == nil && st.IsDir() {
				mode = fs.ModeDir
			}
		}
		ans = append(ans, NewEntry(name, mode))
	}
	slices.SortFunc(ans, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	return ans, nil
}

// Stat makes an entry for a single path, following symlinks.
func Stat(path string) (Entry, error) {
	st, err := os.Stat(path)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return NewEntry(filepath.Base(path), st.Mode().Type()), nil
}
