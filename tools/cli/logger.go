// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// NewLogger writes human readable log lines to w. Only warnings and errors
// are shown unless debug is set.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	no_color := true
	if f, ok := w.(*os.File); ok {
		no_color = !isatty.IsTerminal(f.Fd())
	}
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	name := "lsicons"
	if RootCmd != nil {
		name = RootCmd.Name()
	}
	cw := zerolog.ConsoleWriter{Out: w, NoColor: no_color, PartsExclude: []string{zerolog.TimestampFieldName}}
	return zerolog.New(cw).Level(level).With().Str("app", name).Logger()
}
