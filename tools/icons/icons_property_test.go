// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package icons

import (
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/kovidgoyal/lsicons/tools/utils/style"
)

func known_glyphs() map[Glyph]bool {
	ans := map[Glyph]bool{DIRECTORY: true, FILE: true}
	for _, g := range ExtensionMap() {
		ans[g] = true
	}
	for _, g := range FileNameMap() {
		ans[g] = true
	}
	for _, c := range AllCategories() {
		ans[c.Glyph()] = true
	}
	return ans
}

func name_gen() gopter.Gen {
	exts := make([]string, 0, len(ExtensionMap())+len(CategoryExtensions()))
	for e := range ExtensionMap() {
		exts = append(exts, e)
	}
	for e := range CategoryExtensions() {
		exts = append(exts, e)
	}
	names := make([]string, 0, len(FileNameMap()))
	for n := range FileNameMap() {
		names = append(names, n)
	}
	return gen.OneGenOf(
		gen.AnyString(),
		gen.AlphaString(),
		gen.OneConstOf(toInterfaces(names)...),
		gopter.CombineGens(gen.AlphaString(), gen.OneConstOf(toInterfaces(exts)...)).Map(func(v []interface{}) string {
			return v[0].(string) + "." + v[1].(string)
		}),
	)
}

func toInterfaces(x []string) []interface{} {
	ans := make([]interface{}, len(x))
	for i, s := range x {
		ans[i] = s
	}
	return ans
}

func TestResolution_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)
	glyphs := known_glyphs()

	properties.Property("resolution always yields a known glyph", prop.ForAll(
		func(name string) bool {
			return glyphs[Resolve(file(name))]
		},
		name_gen(),
	))

	properties.Property("directories always get the directory glyph", prop.ForAll(
		func(name string) bool {
			return Resolve(dir(name)) == DIRECTORY
		},
		name_gen(),
	))

	properties.Property("unstyled icons are one glyph and a space", prop.ForAll(
		func(name string) bool {
			ans := PaintedIcon(file(name), nil)
			return utf8.RuneCountInString(ans) == 2 && ans[len(ans)-1] == ' '
		},
		name_gen(),
	))

	properties.Property("painted icons never carry an underline", prop.ForAll(
		func(name string, spec string) bool {
			p := policy{s: style.ParseStyle(spec), found: true}
			first := PaintedIcon(file(name), p)
			if first != PaintedIcon(file(name), p) {
				return false
			}
			return !style.ParseStyle(spec).IsUnderline() || first == style.ParseStyle(spec).ForegroundOnly().Paint(Resolve(file(name)).String())+" "
		},
		name_gen(),
		gen.OneConstOf("fg=red u", "u=curly", "bold fg=blue", "fg=244 u=double bold", "", "italic"),
	))

	properties.TestingRun(t)
}
