// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package style

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/shlex"
)

var _ = fmt.Print

// colors {{{
type RGBA struct {
	Red, Green, Blue uint8
}

// Color is either an indexed terminal color (0-255) or a true color.
type Color struct {
	Is_numbered bool
	Val         RGBA
}

func FixedColor(n uint8) Color {
	return Color{Is_numbered: true, Val: RGBA{Red: n}}
}

func TrueColor(c RGBA) Color {
	return Color{Val: c}
}

// Index is the palette index of a numbered color.
func (self Color) Index() uint8 {
	return self.Val.Red
}

func (self Color) String() string {
	if self.Is_numbered {
		return strconv.Itoa(int(self.Val.Red))
	}
	return fmt.Sprintf("#%02x%02x%02x", self.Val.Red, self.Val.Green, self.Val.Blue)
}

// sgr is the parameter selecting this color. base is 30 for the
// foreground, 40 for the background and 50 for the underline.
func (self Color) sgr(base int) string {
	if !self.Is_numbered {
		return fmt.Sprintf("%d;2;%d;%d;%d", base+8, self.Val.Red, self.Val.Green, self.Val.Blue)
	}
	n := int(self.Val.Red)
	switch {
	case n < 8 && base < 50:
		return strconv.Itoa(base + n)
	case n < 16 && base < 50:
		return strconv.Itoa(base + 60 + n - 8)
	}
	return fmt.Sprintf("%d;5;%d", base+8, n)
}

func hex_component(x string) (uint8, bool) {
	switch len(x) {
	case 0:
		return 0, false
	case 1:
		x += x
	default:
		x = x[:2]
	}
	v, err := strconv.ParseUint(x, 16, 8)
	return uint8(v), err == nil
}

// ParseColor parses #rgb, #rrggbb and rgb:r/g/b color specifications.
func ParseColor(color string) (ans RGBA, err error) {
	raw := strings.ToLower(strings.TrimSpace(color))
	var parts []string
	switch {
	case len(raw) > 3 && raw[0] == '#' && (len(raw)-1)%3 == 0:
		n := (len(raw) - 1) / 3
		parts = []string{raw[1 : 1+n], raw[1+n : 1+2*n], raw[1+2*n:]}
	case strings.HasPrefix(raw, "rgb:"):
		parts = strings.Split(raw[4:], "/")
	}
	if len(parts) != 3 {
		return RGBA{}, fmt.Errorf("not a valid color: %#v", color)
	}
	var vals [3]uint8
	for i, p := range parts {
		v, ok := hex_component(p)
		if !ok {
			return RGBA{}, fmt.Errorf("not a valid color: %#v, bad component: %#v", color, p)
		}
		vals[i] = v
	}
	return RGBA{Red: vals[0], Green: vals[1], Blue: vals[2]}, nil
}

var named_colors = sync.OnceValue(func() map[string]uint8 {
	ans := make(map[string]uint8, 48)
	for i, name := range []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "gray"} {
		ans[name] = uint8(i)
		for _, prefix := range []string{"hi-", "bright-", "intense-"} {
			ans[prefix+name] = uint8(i + 8)
			if name == "gray" {
				ans[prefix+"white"] = 15
			}
		}
	}
	ans["white"] = 7
	return ans
})

func NamedColor(name string) (Color, bool) {
	n, ok := named_colors()[strings.ToLower(name)]
	return FixedColor(n), ok
}

type color_value struct {
	is_set bool
	val    Color
}

// from_string accepts a color name, a palette index or anything ParseColor
// understands.
func (self *color_value) from_string(raw string) bool {
	if c, ok := NamedColor(raw); ok {
		*self = color_value{true, c}
		return true
	}
	if a, err := strconv.Atoi(raw); err == nil {
		if a < 0 || a > 255 {
			return false
		}
		*self = color_value{true, FixedColor(uint8(a))}
		return true
	}
	c, err := ParseColor(raw)
	if err == nil {
		*self = color_value{true, TrueColor(c)}
	}
	return err == nil
}

// }}}

// underline {{{
type underline_style uint8

const (
	no_underline underline_style = iota
	straight_underline
	double_underline
	curly_underline
	dotted_underline
	dashed_underline
)

var underline_names = map[string]underline_style{
	"true": straight_underline, "yes": straight_underline, "y": straight_underline, "straight": straight_underline, "single": straight_underline,
	"false": no_underline, "no": no_underline, "n": no_underline, "none": no_underline,
	"double": double_underline, "curly": curly_underline, "dotted": dotted_underline, "dashed": dashed_underline,
}

type underline_value struct {
	is_set bool
	style  underline_style
}

func (self underline_value) sgr() string {
	switch self.style {
	case no_underline:
		return "24"
	case straight_underline:
		return "4"
	}
	return "4:" + strconv.Itoa(int(self.style))
}

// }}}

// on/off attributes {{{
type attr uint8

const (
	bold_attr attr = iota
	dim_attr
	italic_attr
	reverse_attr
	strikethrough_attr
	num_attrs
)

// attr_codes are the SGR parameters that turn each attribute on and off.
var attr_codes = [num_attrs][2]string{{"1", "22"}, {"2", "22"}, {"3", "23"}, {"7", "27"}, {"9", "29"}}

var attr_names = map[string]attr{
	"bold": bold_attr, "b": bold_attr, "dim": dim_attr, "faint": dim_attr, "italic": italic_attr, "i": italic_attr,
	"reverse": reverse_attr, "strikethrough": strikethrough_attr, "s": strikethrough_attr,
}

func parse_bool(raw string) (val, ok bool) {
	switch strings.ToLower(raw) {
	case "y", "yes", "true", "1":
		return true, true
	case "n", "no", "false", "0":
		return false, true
	}
	return false, false
}

// }}}

type sgr_code struct {
	attrs_set, attrs_on uint8
	fg, bg, uc          color_value
	underline           underline_value

	_prefix, _suffix string
}

func (self *sgr_code) set_attr(a attr, on bool) {
	bit := uint8(1) << a
	self.attrs_set |= bit
	if on {
		self.attrs_on |= bit
	} else {
		self.attrs_on &^= bit
	}
}

func (self sgr_code) attr_on(a attr) bool {
	return self.attrs_on&(uint8(1)<<a) != 0
}

func (self sgr_code) is_empty() bool {
	return self._prefix == ""
}

// update renders the escape codes that start and end this style. The suffix
// resets exactly what the prefix sets.
func (self *sgr_code) update() {
	var p, s []string
	for a := range num_attrs {
		if self.attrs_set&(uint8(1)<<a) == 0 {
			continue
		}
		on, off := attr_codes[a][0], attr_codes[a][1]
		if !self.attr_on(a) {
			on, off = off, on
		}
		p, s = append(p, on), append(s, off)
	}
	if self.underline.is_set {
		p, s = append(p, self.underline.sgr()), append(s, "24")
	}
	for _, x := range []struct {
		c    color_value
		base int
	}{{self.fg, 30}, {self.bg, 40}, {self.uc, 50}} {
		if x.c.is_set {
			p, s = append(p, x.c.val.sgr(x.base)), append(s, strconv.Itoa(x.base+9))
		}
	}
	self._prefix, self._suffix = "", ""
	if len(p) > 0 {
		self._prefix = "\x1b[" + strings.Join(p, ";") + "m"
		self._suffix = "\x1b[" + strings.Join(s, ";") + "m"
	}
}

func parse_spec(spec string) Style {
	sgr := sgr_code{}
	words, _ := shlex.Split(spec)
	for _, word := range words {
		key, val, found := strings.Cut(word, "=")
		if !found {
			val = "true"
		}
		if a, is_attr := attr_names[key]; is_attr {
			if on, ok := parse_bool(val); ok {
				sgr.set_attr(a, on)
			}
			continue
		}
		switch key {
		case "fg":
			sgr.fg.from_string(val)
		case "bg":
			sgr.bg.from_string(val)
		case "ucol", "underline_color", "uc":
			sgr.uc.from_string(val)
		case "underline", "u":
			if us, ok := underline_names[val]; ok {
				sgr.underline = underline_value{is_set: true, style: us}
			}
		}
	}
	sgr.update()
	return Style{code: sgr}
}

var parsed_spec_cache = make(map[string]Style)
var parsed_spec_cache_mutex = sync.Mutex{}

func cached_parse_spec(spec string) Style {
	parsed_spec_cache_mutex.Lock()
	defer parsed_spec_cache_mutex.Unlock()
	if val, ok := parsed_spec_cache[spec]; ok {
		return val
	}
	ans := parse_spec(spec)
	parsed_spec_cache[spec] = ans
	return ans
}
