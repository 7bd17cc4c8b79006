package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestFormatLineWithIndent(t *testing.T) {
	var output strings.Builder

	output.Reset()
	indent := "  "
	format_line_with_indent(&output, "testing \x1b[31mstyled\x1b[m", indent, 11)
	expected := indent + "testing \n" + indent + "\x1b[31mstyled\x1b[m\n"
	if output.String() != expected {
		t.Fatalf("%#v != %#v", expected, output.String())
	}
}

func TestValidateChoices(t *testing.T) {
	root := CreateCommand(&cobra.Command{Use: "lsicons [dir...]", RunE: func(cmd *cobra.Command, args []string) error { return nil }})
	Choices(root, "color", "When to color", "auto", "always", "never")
	Init(root)
	root.SetArgs([]string{"--color=sometimes"})
	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "sometimes") {
		t.Fatalf("Invalid choice not rejected: %v", err)
	}
	root.SetArgs([]string{"--color=never"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
}

func TestLogger(t *testing.T) {
	RootCmd = &cobra.Command{Use: "lsicons"}
	var buf bytes.Buffer
	log := NewLogger(&buf, false)
	log.Debug().Msg("hidden")
	log.Warn().Str("path", "x.conf").Msg("bad line")
	if q := buf.String(); strings.Contains(q, "hidden") || !strings.Contains(q, "bad line") || !strings.Contains(q, "x.conf") {
		t.Fatalf("Unexpected log output: %#v", q)
	}
	buf.Reset()
	log = NewLogger(&buf, true)
	log.Debug().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("Debug logging not enabled: %#v", buf.String())
	}
}

func TestPersistentChoicesOnSubcommand(t *testing.T) {
	root := CreateCommand(&cobra.Command{Use: "lsicons"})
	PersistentChoices(root, "icons", "When to show icons", "auto", "always", "never")
	ran := false
	sub := CreateCommand(&cobra.Command{Use: "icon names...", RunE: func(cmd *cobra.Command, args []string) error { ran = true; return nil }})
	root.AddCommand(sub)
	Init(root)
	root.SetArgs([]string{"icon", "--icons=sometimes", "a.go"})
	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "sometimes") || ran {
		t.Fatalf("Invalid inherited choice not rejected: %v", err)
	}
	root.SetArgs([]string{"icon", "--icons=always", "a.go"})
	if err := root.Execute(); err != nil || !ran {
		t.Fatalf("Valid inherited choice rejected: %v", err)
	}
	text := render_usage(sub, 80)
	for _, q := range []string{"Global options", "--icons", "Choices: auto, always, never"} {
		if !strings.Contains(text, q) {
			t.Fatalf("%#v missing from usage:\n%s", q, text)
		}
	}
}

func TestPrettify(t *testing.T) {
	stdout_is_terminal = false
	actual := prettify("Read :file:`lsicons.conf` and :envvar:`LS_COLORS`, keep :other:`x`")
	expected := italic_fmt("lsicons.conf") + " and " + italic_fmt("LS_COLORS") + ", keep :other:`x`"
	expected = "Read " + expected
	if actual != expected {
		t.Fatalf("%#v != %#v", expected, actual)
	}
}
