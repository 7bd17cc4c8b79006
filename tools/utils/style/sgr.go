// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package style

import (
	"fmt"
	"strconv"
	"strings"
)

var _ = fmt.Print

func as_uint8(x int) uint8 {
	return uint8(uint(x) & 0xff)
}

// extended_color consumes the parameters following 38/48/58, either in the
// semicolon form used by dircolors (38;5;n) or the colon form (38:5:n).
func extended_color(nums []int) (c Color, consumed int, ok bool) {
	if len(nums) == 0 {
		return
	}
	switch nums[0] {
	case 5:
		if len(nums) > 1 {
			return FixedColor(as_uint8(nums[1])), 2, true
		}
	case 2:
		if len(nums) > 3 {
			return TrueColor(RGBA{Red: as_uint8(nums[1]), Green: as_uint8(nums[2]), Blue: as_uint8(nums[3])}), 4, true
		}
	}
	return
}

// ParseSGR parses a list of SGR parameters such as "01;38;5;244" as found in
// LS_COLORS. Parameters that have no meaning for a style (blink, conceal) are
// skipped, malformed numbers are an error.
func ParseSGR(codes string) (ans Style, err error) {
	codes = strings.TrimSpace(codes)
	if codes == "" {
		return
	}
	parts := strings.Split(codes, ";")
	nums := make([]int, 0, len(parts))
	var sub [][]int
	for _, part := range parts {
		subparts := strings.Split(part, ":")
		q, cerr := strconv.Atoi(subparts[0])
		if cerr != nil {
			return Style{}, fmt.Errorf("invalid SGR parameter %#v in: %s", part, codes)
		}
		nums = append(nums, q)
		var extra []int
		for _, s := range subparts[1:] {
			if v, cerr := strconv.Atoi(s); cerr == nil {
				extra = append(extra, v)
			}
		}
		sub = append(sub, extra)
	}
	sgr := &ans.code
	for i := 0; i < len(nums); i++ {
		switch n := nums[i]; n {
		case 0:
			*sgr = sgr_code{}
		case 1:
			sgr.set_attr(bold_attr, true)
		case 2:
			sgr.set_attr(dim_attr, true)
		case 22:
			sgr.set_attr(bold_attr, false)
			sgr.set_attr(dim_attr, false)
		case 3:
			sgr.set_attr(italic_attr, true)
		case 23:
			sgr.set_attr(italic_attr, false)
		case 4:
			us := straight_underline
			if len(sub[i]) > 0 {
				us = underline_style(as_uint8(sub[i][0]))
				if us > dashed_underline {
					us = straight_underline
				}
			}
			sgr.underline = underline_value{is_set: true, style: us}
		case 24:
			sgr.underline = underline_value{is_set: true, style: no_underline}
		case 7:
			sgr.set_attr(reverse_attr, true)
		case 27:
			sgr.set_attr(reverse_attr, false)
		case 9:
			sgr.set_attr(strikethrough_attr, true)
		case 29:
			sgr.set_attr(strikethrough_attr, false)
		case 30, 31, 32, 33, 34, 35, 36, 37:
			sgr.fg = color_value{is_set: true, val: FixedColor(uint8(n - 30))}
		case 90, 91, 92, 93, 94, 95, 96, 97:
			sgr.fg = color_value{is_set: true, val: FixedColor(uint8(n - 82))}
		case 39:
			sgr.fg = color_value{}
		case 40, 41, 42, 43, 44, 45, 46, 47:
			sgr.bg = color_value{is_set: true, val: FixedColor(uint8(n - 40))}
		case 100, 101, 102, 103, 104, 105, 106, 107:
			sgr.bg = color_value{is_set: true, val: FixedColor(uint8(n - 92))}
		case 49:
			sgr.bg = color_value{}
		case 38, 48, 58:
			var c Color
			var ok bool
			if len(sub[i]) > 0 {
				c, _, ok = extended_color(sub[i])
			} else {
				var consumed int
				c, consumed, ok = extended_color(nums[i+1:])
				i += consumed
			}
			if !ok {
				return Style{}, fmt.Errorf("truncated extended color in: %s", codes)
			}
			cv := color_value{is_set: true, val: c}
			switch n {
			case 38:
				sgr.fg = cv
			case 48:
				sgr.bg = cv
			default:
				sgr.uc = cv
			}
		case 59:
			sgr.uc = color_value{}
		}
	}
	sgr.update()
	return
}
