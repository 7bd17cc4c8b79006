// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package listing

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kovidgoyal/lsicons/tools/colors"
	"github.com/kovidgoyal/lsicons/tools/icons"
)

var _ = fmt.Print

func TestEntryExtension(t *testing.T) {
	type ext struct {
		Ext   string
		Found bool
	}
	actual := map[string]ext{}
	for _, name := range []string{"main.RS", "archive.tar.gz", ".bashrc", "Makefile", "trailing.", "..."} {
		e, found := NewEntry(name, 0).Extension()
		actual[name] = ext{e, found}
	}
	expected := map[string]ext{
		"main.RS":        {"rs", true},
		"archive.tar.gz": {"gz", true},
		".bashrc":        {"bashrc", true},
		"Makefile":       {"", false},
		"trailing.":      {"", true},
		"...":            {"", true},
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("Unexpected extensions:\n%s", diff)
	}
	if !NewEntry("x.rs", fs.ModeDir).IsDirectory() || NewEntry("x", 0).IsDirectory() {
		t.Fatal("IsDirectory does not follow the mode")
	}
}

func TestReadDirAndRender(t *testing.T) {
	tdir := t.TempDir()
	os.Mkdir(filepath.Join(tdir, "src"), 0o700)
	os.Mkdir(filepath.Join(tdir, ".git"), 0o700)
	for _, name := range []string{"main.rs", "Makefile", ".hidden"} {
		os.WriteFile(filepath.Join(tdir, name), nil, 0o600)
	}
	os.Symlink("src", filepath.Join(tdir, "link"))

	entries, err := ReadDir(tdir, false)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, fmt.Sprintf("%s:%v", e.Name, e.IsDirectory()))
	}
	if diff := cmp.Diff([]string{"Makefile:false", "link:true", "main.rs:false", "src:true"}, names); diff != "" {
		t.Fatalf("Unexpected entries:\n%s", diff)
	}
	all, err := ReadDir(tdir, true)
	if err != nil || len(all) != 6 {
		t.Fatalf("hidden entries not listed: %d %v", len(all), err)
	}

	r := Renderer{Icons: true}
	var out strings.Builder
	if err := r.Render(&out, entries); err != nil {
		t.Fatal(err)
	}
	expected := strings.Join([]string{
		icons.CMAKE.String() + " Makefile",
		icons.DIRECTORY.String() + " link",
		icons.LANG_RUST.String() + " main.rs",
		icons.DIRECTORY.String() + " src",
	}, "\n") + "\n"
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Fatalf("Unexpected listing:\n%s", diff)
	}

	r.Policy = colors.NewPolicy()
	line := r.Line(NewEntry("Makefile", 0))
	if line != "\x1b[33m"+icons.CMAKE.String()+"\x1b[39m \x1b[1;4;33mMakefile\x1b[22;24;39m" {
		t.Fatalf("name should keep its underline, icon should not: %#v", line)
	}
	r.Icons = false
	if line = r.Line(NewEntry("main.rs", 0)); line != "main.rs" {
		t.Fatalf("unexpected line without icons: %#v", line)
	}

	if _, err := ReadDir(filepath.Join(tdir, "missing"), false); err == nil {
		t.Fatal("no error for a missing directory")
	}
	if e, err := Stat(filepath.Join(tdir, "link")); err != nil || e.Name != "link" || !e.IsDirectory() {
		t.Fatalf("Stat did not follow the symlink: %#v %v", e, err)
	}
	if e, err := Stat(filepath.Join(tdir, "main.rs")); err != nil || e.IsDirectory() {
		t.Fatalf("Stat of a file failed: %#v %v", e, err)
	}
}

func TestRenderGrid(t *testing.T) {
	entries := []Entry{NewEntry("a", 0), NewEntry("bb", 0), NewEntry("ccc", 0), NewEntry("d", 0), NewEntry("e", 0)}
	r := Renderer{}
	var out strings.Builder
	if err := r.RenderGrid(&out, entries, 12); err != nil {
		t.Fatal(err)
	}
	// columns of width 3 with a gap of 2, two fit in 12 cells
	expected := "a    d\nbb   e\nccc\n"
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Fatalf("Unexpected grid:\n%s", diff)
	}
	out.Reset()
	r.RenderGrid(&out, entries, 1)
	if out.String() != "a\nbb\nccc\nd\ne\n" {
		t.Fatalf("narrow screens should give one column: %#v", out.String())
	}
	if r.Width(NewEntry("日本", 0)) != 4 {
		t.Fatal("wide characters not measured")
	}
}
