// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package colors

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/kovidgoyal/lsicons/tools/icons"
	"github.com/kovidgoyal/lsicons/tools/utils/style"
)

var _ = fmt.Print

// Rule styles every file whose base name matches Glob.
type Rule struct {
	Glob  string
	Style style.Style
}

func (self Rule) Matches(name string) bool {
	matched, err := doublestar.Match(self.Glob, name)
	return err == nil && matched
}

// Policy decides the style of file names and, through icons.PaintedIcon,
// of their icons. Rules are tried in order, then the built-in file kinds.
type Policy struct {
	Directory   style.Style
	Rules       []Rule
	Classifier  icons.Classifier
	NoFileKinds bool
}

func NewPolicy() *Policy {
	return &Policy{Directory: style.ParseStyle("fg=blue bold"), Classifier: icons.ExtensionClassifier{}}
}

// AddRules appends rules, rules added later are tried after existing ones.
func (self *Policy) AddRules(rules ...Rule) {
	self.Rules = append(self.Rules, rules...)
}

// Prepend puts rules in front of the existing ones so they take precedence.
func (self *Policy) Prepend(rules ...Rule) {
	self.Rules = append(append(make([]Rule, 0, len(rules)+len(self.Rules)), rules...), self.Rules...)
}

func (self *Policy) ColorFor(f icons.File) (style.Style, bool) {
	if f.IsDirectory() {
		return self.Directory, !self.Directory.IsPlain()
	}
	name := f.BaseName()
	for _, r := range self.Rules {
		if r.Matches(name) {
			return r.Style, true
		}
	}
	if self.NoFileKinds {
		return style.Style{}, false
	}
	return self.file_kind_style(f)
}

var immediate_names = map[string]bool{
	"Makefile": true, "Cargo.toml": true, "SConstruct": true, "CMakeLists.txt": true,
	"build.gradle": true, "Rakefile": true, "Gruntfile.js": true,
	"Gruntfile.coffee": true, "BUILD": true, "WORKSPACE": true, "build.xml": true,
}

// IsImmediate reports files that are usually the first thing to look at in
// a directory, such as build files and READMEs.
func IsImmediate(name string) bool {
	return strings.HasPrefix(name, "README") || immediate_names[name]
}

var document_extensions = map[string]bool{
	"djvu": true, "doc": true, "docx": true, "dvi": true, "eml": true, "eps": true, "fotd": true,
	"odp": true, "odt": true, "pdf": true, "ppt": true, "pptx": true, "rtf": true, "xls": true, "xlsx": true,
}

var lossless_extensions = map[string]bool{"alac": true, "ape": true, "flac": true, "wav": true}

var compiled_extensions = map[string]bool{"pyc": true}

var (
	temp_style       = style.Foreground(style.FixedColor(244))
	immediate_style  = style.ParseStyle("fg=yellow bold u")
	image_style      = style.Foreground(style.FixedColor(133))
	video_style      = style.Foreground(style.FixedColor(135))
	music_style      = style.Foreground(style.FixedColor(92))
	lossless_style   = style.Foreground(style.FixedColor(93))
	crypto_style     = style.Foreground(style.FixedColor(109))
	document_style   = style.Foreground(style.FixedColor(105))
	compressed_style = style.ParseStyle("fg=red")
	compiled_style   = style.Foreground(style.FixedColor(137))
)

func (self *Policy) file_kind_style(f icons.File) (style.Style, bool) {
	var category icons.Category
	classified := false
	if self.Classifier != nil {
		category, classified = self.Classifier.Classify(f)
	}
	ext, _ := f.Extension()
	switch {
	case classified && category == icons.Temp:
		return temp_style, true
	case IsImmediate(f.BaseName()):
		return immediate_style, true
	case classified && category == icons.Image:
		return image_style, true
	case classified && category == icons.Video:
		return video_style, true
	case classified && category == icons.Audio:
		if lossless_extensions[ext] {
			return lossless_style, true
		}
		return music_style, true
	case classified && category == icons.Crypto:
		return crypto_style, true
	case document_extensions[ext]:
		return document_style, true
	case classified && category == icons.Archive:
		return compressed_style, true
	case (classified && category == icons.Binary) || compiled_extensions[ext]:
		return compiled_style, true
	}
	return style.Style{}, false
}
