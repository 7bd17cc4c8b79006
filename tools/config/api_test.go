// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ = fmt.Print

func TestConfigParsing(t *testing.T) {
	tdir := t.TempDir()
	conf_file := filepath.Join(tdir, "a.conf")
	os.Mkdir(filepath.Join(tdir, "sub"), 0o700)
	os.WriteFile(conf_file, []byte(`
# ignore me
a one
#: other
include sub/b.conf
b two
\ three
include non-existent
globinclude sub/c?.conf
error bad value
`), 0o600)
	os.WriteFile(filepath.Join(tdir, "sub/b.conf"), []byte("incb cool\ninclude a.conf"), 0o600)
	os.WriteFile(filepath.Join(tdir, "sub/c1.conf"), []byte("inc1 cool"), 0o600)
	os.WriteFile(filepath.Join(tdir, "sub/c2.conf"), []byte("inc2 cool\nglobinclude [bad"), 0o600)
	os.WriteFile(filepath.Join(tdir, "sub/c.conf"), []byte("inc notcool"), 0o600)

	var parsed_lines []string
	pl := func(key, val string) error {
		if key == "error" {
			return fmt.Errorf("%s", val)
		}
		parsed_lines = append(parsed_lines, key+" "+val)
		return nil
	}

	var dirs []string
	p := ConfigParser{}
	p.LineHandler = func(key, val string) error {
		dirs = append(dirs, p.CurrentDir())
		return pl(key, val)
	}
	err := p.ParseFiles(conf_file)
	if err != nil {
		t.Fatal(err)
	}
	diff := cmp.Diff([]string{"a one", "incb cool", "b two three", "inc1 cool", "inc2 cool"}, parsed_lines)
	if diff != "" {
		t.Fatalf("Unexpected parsed config values:\n%s", diff)
	}
	sub := filepath.Join(tdir, "sub")
	if diff := cmp.Diff([]string{tdir, sub, tdir, sub, sub, tdir}, dirs); diff != "" {
		t.Fatalf("Unexpected current directories:\n%s", diff)
	}
	bad := make([]string, 0, 2)
	for _, bl := range p.BadLines() {
		bad = append(bad, fmt.Sprintf("%s:%d", filepath.Base(bl.Src_file), bl.Line_number))
	}
	if diff := cmp.Diff([]string{"c2.conf:2", "a.conf:10"}, bad); diff != "" {
		t.Fatalf("Unexpected bad lines:\n%s", diff)
	}

	parsed_lines = nil
	if err = p.ParseOverrides("x=1", "y=2 3"); err != nil {
		t.Fatal(err)
	}
	if err = p.ParseOverrides("noval", "z=4"); err != nil {
		t.Fatal(err)
	}
	if bl := p.BadLines()[len(p.BadLines())-1]; bl.Src_file != OverridesSource || bl.Line != "noval" {
		t.Fatalf("Unexpected bad override: %v", bl)
	}
	if diff := cmp.Diff([]string{"x 1", "y 2 3", "z 4"}, parsed_lines); diff != "" {
		t.Fatalf("Unexpected overrides:\n%s", diff)
	}
}

func TestIncludeDepth(t *testing.T) {
	tdir := t.TempDir()
	for i := range 40 {
		os.WriteFile(filepath.Join(tdir, fmt.Sprintf("%d.conf", i)), []byte(fmt.Sprintf("include %d.conf", i+1)), 0o600)
	}
	p := ConfigParser{LineHandler: func(key, val string) error { return nil }}
	if err := p.ParseFiles(filepath.Join(tdir, "0.conf")); err == nil {
		t.Fatalf("Deeply nested includes did not fail")
	}
}

func TestContinuedLines(t *testing.T) {
	type line struct {
		Text string
		Num  int
	}
	var actual []line
	cl := continued_lines{scanner: &lines_scanner{lines: []string{"", "  a 1", "\\2", "", "b", " \\ 3", "\\4", "c"}}}
	for {
		text, num, ok := cl.next()
		if !ok {
			break
		}
		actual = append(actual, line{text, num})
	}
	if diff := cmp.Diff([]line{{"a 12", 2}, {"b 34", 5}, {"c", 8}}, actual); diff != "" {
		t.Fatalf("Unexpected lines:\n%s", diff)
	}
}
