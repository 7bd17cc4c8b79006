// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package style

import (
	"fmt"
)

// Context decides whether styles are emitted at all, usually from whether
// output goes to a terminal.
type Context struct {
	AllowEscapeCodes bool
}

func (self *Context) Paint(s Style, text string) string {
	if !self.AllowEscapeCodes {
		return text
	}
	return s.Paint(text)
}

func (self *Context) SprintFunc(spec string) func(args ...any) string {
	s := ParseStyle(spec)
	return func(args ...any) string {
		return self.Paint(s, fmt.Sprint(args...))
	}
}
