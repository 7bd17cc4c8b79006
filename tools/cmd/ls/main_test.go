// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package ls

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/kovidgoyal/lsicons/tools/config"
	"github.com/kovidgoyal/lsicons/tools/icons"
	"github.com/kovidgoyal/lsicons/tools/listing"
	"github.com/kovidgoyal/lsicons/tools/utils"
)

var _ = fmt.Print

func TestList(t *testing.T) {
	tdir := t.TempDir()
	os.Mkdir(filepath.Join(tdir, "d"), 0o700)
	os.WriteFile(filepath.Join(tdir, "d", "x.go"), nil, 0o600)
	os.WriteFile(filepath.Join(tdir, "d", ".hidden"), nil, 0o600)
	os.WriteFile(filepath.Join(tdir, "f.md"), nil, 0o600)

	l := lister{renderer: listing.Renderer{Icons: true}, log: zerolog.Nop()}
	var out strings.Builder
	failed, err := l.list(&out, []string{filepath.Join(tdir, "d"), filepath.Join(tdir, "f.md"), filepath.Join(tdir, "missing")})
	if err != nil {
		t.Fatal(err)
	}
	if failed != 1 {
		t.Fatalf("Expected one failure, got: %d", failed)
	}
	expected := icons.MARKDOWN.String() + " f.md\n\n" + filepath.Join(tdir, "d") + ":\n" + icons.LANG_GO.String() + " x.go\n"
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Fatalf("Unexpected listing:\n%s", diff)
	}

	out.Reset()
	l.show_hidden = true
	l.renderer.Icons = false
	if _, err = l.list(&out, []string{filepath.Join(tdir, "d")}); err != nil {
		t.Fatal(err)
	}
	if out.String() != ".hidden\nx.go\n" {
		t.Fatalf("Unexpected listing of a single directory: %#v", out.String())
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	tdir := t.TempDir()
	utils.SetConfigDir(tdir)
	t.Setenv("LSICONS_COLORS", "")
	t.Setenv("LS_COLORS", "")
	defer utils.SetConfigDir("")
	conf := filepath.Join(tdir, utils.ConfigFileName)
	os.WriteFile(conf, []byte("icons never\ncolor always\nclassifier mime\n"), 0o600)

	cmd := NewCommand()
	if err := cmd.ParseFlags([]string{"--config", conf, "--icons=always", "-a"}); err != nil {
		t.Fatal(err)
	}
	opts, err := LoadOptions(cmd, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if opts.Icons != config.Always || opts.Color != config.Always || opts.Classifier != "mime" || !opts.ShowHidden {
		t.Fatalf("Unexpected options: %#v", opts)
	}
	if err = cmd.ParseFlags([]string{"--classifier=magic"}); err != nil {
		t.Fatal(err)
	}
	if _, err = LoadOptions(cmd, zerolog.Nop()); err == nil || !strings.HasPrefix(err.Error(), "--classifier: ") {
		t.Fatalf("Invalid classifier accepted: %v", err)
	}

	_, policy, err := Setup(opts, false, zerolog.Nop())
	if err != nil || policy == nil {
		t.Fatalf("color always did not create a policy: %v", err)
	}
	opts.Color = config.Auto
	if _, policy, _ = Setup(opts, false, zerolog.Nop()); policy != nil {
		t.Fatalf("color auto created a policy when not on a terminal")
	}
}

func TestEnvironmentColors(t *testing.T) {
	t.Setenv("LSICONS_COLORS", "")
	t.Setenv("LS_COLORS", "rs=0:di=01;34:ln=target:*.tar=01;31")
	opts := config.NewOptions()
	opts.Color = config.Always
	var logged strings.Builder
	log := zerolog.New(&logged)
	_, policy, err := Setup(opts, false, log)
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := policy.ColorFor(listing.NewEntry("a.tar", 0)); s.Prefix() != "\x1b[1;31m" {
		t.Fatalf("LS_COLORS not applied: %#v", s.Prefix())
	}
	if logged.Len() != 0 {
		t.Fatalf("Unexpected warning: %s", logged.String())
	}

	t.Setenv("LS_COLORS", "*.tar=nope")
	if _, policy, err = Setup(opts, false, log); err != nil || policy == nil {
		t.Fatalf("Bad LS_COLORS must not prevent listing: %v", err)
	}
	if !strings.Contains(logged.String(), "LS_COLORS") {
		t.Fatalf("Bad LS_COLORS not logged: %#v", logged.String())
	}
}
