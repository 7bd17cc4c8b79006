// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package icons

import (
	"fmt"

	"github.com/kovidgoyal/lsicons/tools/utils/style"
)

var _ = fmt.Print

// File is the read-only view of a directory entry needed to pick an icon.
// Extension is lower-cased and has no leading dot.
type File interface {
	IsDirectory() bool
	Extension() (string, bool)
	BaseName() string
}

// StylePolicy decides the style of a file name. A false second return means
// the name is left unstyled.
type StylePolicy interface {
	ColorFor(f File) (style.Style, bool)
}

type Resolver struct {
	// Classifier is consulted before the extension table, nil disables it.
	Classifier Classifier
}

var DefaultResolver = &Resolver{Classifier: ExtensionClassifier{}}

// Resolve always returns a glyph, FILE when no rule matches.
func (self *Resolver) Resolve(f File) Glyph {
	if f.IsDirectory() {
		return DIRECTORY
	}
	if self.Classifier != nil {
		if c, found := self.Classifier.Classify(f); found {
			return c.Glyph()
		}
	}
	if ext, found := f.Extension(); found {
		if ans, found := ExtensionMap()[ext]; found {
			return ans
		}
		return FILE
	}
	if ans, found := FileNameMap()[f.BaseName()]; found {
		return ans
	}
	return FILE
}

// PaintedIcon returns the styled glyph followed by a single space. Underline
// is never applied to the glyph, only the foreground color survives.
func (self *Resolver) PaintedIcon(f File, policy StylePolicy) string {
	icon := self.Resolve(f).String()
	if policy != nil {
		if s, found := policy.ColorFor(f); found {
			if s.IsUnderline() {
				s = s.ForegroundOnly()
			}
			icon = s.Paint(icon)
		}
	}
	return icon + " "
}

func Resolve(f File) Glyph {
	return DefaultResolver.Resolve(f)
}

func PaintedIcon(f File, policy StylePolicy) string {
	return DefaultResolver.PaintedIcon(f, policy)
}
