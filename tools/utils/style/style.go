// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package style

import (
	"strings"
)

// Style is an immutable set of SGR attributes. The zero value is plain text.
type Style struct {
	code sgr_code
}

// ParseStyle parses a style spec of the form "fg=red bold u=curly". Unknown
// keys and bad values are ignored.
func ParseStyle(spec string) Style {
	return cached_parse_spec(spec)
}

func (self Style) Prefix() string { return self.code._prefix }
func (self Style) Suffix() string { return self.code._suffix }
func (self Style) IsPlain() bool  { return self.code.is_empty() }

func (self Style) Paint(text string) string {
	if self.code.is_empty() {
		return text
	}
	b := strings.Builder{}
	b.Grow(len(self.code._prefix) + len(text) + len(self.code._suffix))
	b.WriteString(self.code._prefix)
	b.WriteString(text)
	b.WriteString(self.code._suffix)
	return b.String()
}

func (self Style) Foreground() (Color, bool) {
	return self.code.fg.val, self.code.fg.is_set
}

func (self Style) IsUnderline() bool {
	return self.code.underline.is_set && self.code.underline.style != no_underline
}

func (self Style) IsBold() bool {
	return self.code.attr_on(bold_attr)
}

// ForegroundOnly drops every attribute except the foreground color.
func (self Style) ForegroundOnly() Style {
	ans := Style{}
	ans.code.fg = self.code.fg
	ans.code.update()
	return ans
}

func (self Style) WithForeground(c Color) Style {
	self.code.fg = color_value{is_set: true, val: c}
	self.code.update()
	return self
}

func (self Style) Bold() Style {
	self.code.set_attr(bold_attr, true)
	self.code.update()
	return self
}

func (self Style) Underline() Style {
	self.code.underline = underline_value{is_set: true, style: straight_underline}
	self.code.update()
	return self
}

func Foreground(c Color) Style {
	return Style{}.WithForeground(c)
}
