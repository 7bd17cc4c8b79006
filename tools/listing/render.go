// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package listing

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/kovidgoyal/lsicons/tools/icons"
)

var _ = fmt.Print

type Renderer struct {
	Icons bool
	// Policy styles names and icons, nil means no color.
	Policy icons.StylePolicy
	// Resolver defaults to icons.DefaultResolver.
	Resolver *icons.Resolver
}

func (self *Renderer) resolver() *icons.Resolver {
	if self.Resolver != nil {
		return self.Resolver
	}
	return icons.DefaultResolver
}

func (self *Renderer) name(e Entry) string {
	if self.Policy != nil {
		if s, found := self.Policy.ColorFor(e); found {
			return s.Paint(e.Name)
		}
	}
	return e.Name
}

// Line renders a single entry, without a trailing newline.
func (self *Renderer) Line(e Entry) string {
	if self.Icons {
		return self.resolver().PaintedIcon(e, self.Policy) + self.name(e)
	}
	return self.name(e)
}

// Width is the number of terminal cells Line(e) occupies.
func (self *Renderer) Width(e Entry) int {
	w := runewidth.StringWidth(e.Name)
	if self.Icons {
		w += 2
	}
	return w
}

func (self *Renderer) Render(w io.Writer, entries []Entry) error {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(self.Line(e))
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write listing: %w", err)
	}
	return nil
}

// RenderGrid lays entries out in columns that fit in screen_width cells,
// filling columns top to bottom like ls does.
func (self *Renderer) RenderGrid(w io.Writer, entries []Entry, screen_width int) error {
	if len(entries) == 0 {
		return nil
	}
	const gap = 2
	widths := make([]int, len(entries))
	max_width := 0
	for i, e := range entries {
		widths[i] = self.Width(e)
		max_width = max(max_width, widths[i])
	}
	cols := max(1, (screen_width+gap)/(max_width+gap))
	rows := (len(entries) + cols - 1) / cols
	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(entries) {
				break
			}
			b.WriteString(self.Line(entries[i]))
			if next := (c+1)*rows + r; next < len(entries) {
				b.WriteString(strings.Repeat(" ", max_width-widths[i]+gap))
			}
		}
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write listing: %w", err)
	}
	return nil
}
