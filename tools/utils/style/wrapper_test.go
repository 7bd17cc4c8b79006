// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package style

import (
	"fmt"
	"testing"
)

var _ = fmt.Print

func TestANSIStyleContext(t *testing.T) {
	var ctx = Context{AllowEscapeCodes: false}
	sprint := ctx.SprintFunc("bold")
	if sprint("test") != "test" {
		t.Fatal("AllowEscapeCodes=false not respected")
	}
	ctx.AllowEscapeCodes = true
	if sprint("test") == "test" {
		t.Fatal("AllowEscapeCodes=true not respected")
	}
}

func TestANSIStyleSprint(t *testing.T) {
	var ctx = Context{AllowEscapeCodes: true}

	test := func(spec string, prefix string, suffix string) {
		actual := ctx.SprintFunc(spec)("  ")
		expected := prefix + "  " + suffix
		if actual != expected {
			t.Fatalf("Formatting with spec: %s failed expected != actual: %#v != %#v", spec, expected, actual)
		}
	}

	test("bold", "\x1b[1m", "\x1b[22m")
	test("bold fg=red u=curly", "\x1b[1;4:3;31m", "\x1b[22;24;39m")
	test("fg=hi-red", "\x1b[91m", "\x1b[39m")
	test("fg=244 u", "\x1b[4;38;5;244m", "\x1b[24;39m")
	test("fg=#ff0000", "\x1b[38;2;255;0;0m", "\x1b[39m")
	test("nonsense=1", "", "")
}

func TestStyleAccessors(t *testing.T) {
	s := ParseStyle("fg=yellow bold u")
	if !s.IsUnderline() || !s.IsBold() {
		t.Fatalf("attributes not parsed from spec: %#v", s.Prefix())
	}
	fg, ok := s.Foreground()
	if !ok || !fg.Is_numbered || fg.Index() != 3 {
		t.Fatalf("unexpected foreground: %v %v", fg, ok)
	}
	only := s.ForegroundOnly()
	if only.IsUnderline() || only.IsBold() {
		t.Fatal("ForegroundOnly kept extra attributes")
	}
	if only.Paint("x") != "\x1b[33mx\x1b[39m" {
		t.Fatalf("unexpected paint: %#v", only.Paint("x"))
	}
	if ParseStyle("u=none").IsUnderline() {
		t.Fatal("u=none must not count as underline")
	}
	if (Style{}).ForegroundOnly().Paint("x") != "x" {
		t.Fatal("zero style must paint nothing")
	}
	built := Foreground(FixedColor(1)).Bold().Underline()
	if built.Prefix() != ParseStyle("bold u fg=red").Prefix() {
		t.Fatalf("builder mismatch: %#v != %#v", built.Prefix(), ParseStyle("bold u fg=red").Prefix())
	}
}

func TestParseColor(t *testing.T) {
	for spec, expected := range map[string]RGBA{
		"#f00":         {Red: 255},
		"#00ff80":      {Green: 255, Blue: 128},
		"rgb:ff/00/ff": {Red: 255, Blue: 255},
	} {
		actual, err := ParseColor(spec)
		if err != nil {
			t.Fatalf("failed to parse %s: %s", spec, err)
		}
		if actual != expected {
			t.Fatalf("%s: %#v != %#v", spec, expected, actual)
		}
	}
	for _, bad := range []string{"", "red", "#ff00", "rgb:1/2"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("no error for invalid color: %#v", bad)
		}
	}
	if c, ok := NamedColor("Bright-Blue"); !ok || c.Index() != 12 {
		t.Fatalf("named color lookup failed: %v %v", c, ok)
	}
}

func TestContextPaint(t *testing.T) {
	s := ParseStyle("fg=green")
	ctx := Context{}
	if q := ctx.Paint(s, "x"); q != "x" {
		t.Fatalf("styled without escape codes allowed: %#v", q)
	}
	ctx.AllowEscapeCodes = true
	if q := ctx.Paint(s, "x"); q != "\x1b[32mx\x1b[39m" {
		t.Fatalf("unexpected paint: %#v", q)
	}
	if q := ctx.Paint(Style{}, "x"); q != "x" {
		t.Fatalf("plain style added escape codes: %#v", q)
	}
}
