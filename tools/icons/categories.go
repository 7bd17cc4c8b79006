// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package icons

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kovidgoyal/lsicons/tools/utils"
)

var _ = fmt.Print

// Category is a broad kind of file that shares a single glyph.
type Category uint8

const (
	Archive Category = iota
	Audio
	Binary
	Crypto
	Image
	Temp
	Video

	num_categories
)

var category_glyphs = [num_categories]Glyph{
	Archive: 0xf1c6,
	Audio:   0xf001,
	Binary:  0xf471,
	Crypto:  0xe60a,
	Image:   0xf1c5,
	Temp:    0xf56a,
	Video:   0xf03d,
}

var category_names = [num_categories]string{
	Archive: "archive", Audio: "audio", Binary: "binary", Crypto: "crypto", Image: "image", Temp: "temp", Video: "video",
}

func (c Category) Glyph() Glyph {
	if c < num_categories {
		return category_glyphs[c]
	}
	return FILE
}

func (c Category) String() string {
	if c < num_categories {
		return category_names[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// AllCategories lists every category in declaration order.
func AllCategories() []Category {
	ans := make([]Category, 0, num_categories)
	for c := Category(0); c < num_categories; c++ {
		ans = append(ans, c)
	}
	return ans
}

// Classifier recognizes broad file categories. A false second return means
// the file is not in any category and resolution continues with the tables.
type Classifier interface {
	Classify(f File) (Category, bool)
}

type ClassifierFunc func(f File) (Category, bool)

func (self ClassifierFunc) Classify(f File) (Category, bool) { return self(f) }

// ClassifierChain asks each classifier in turn, the first answer wins.
type ClassifierChain []Classifier

func (self ClassifierChain) Classify(f File) (Category, bool) {
	for _, c := range self {
		if c == nil {
			continue
		}
		if ans, found := c.Classify(f); found {
			return ans, true
		}
	}
	return 0, false
}

// Extensions that also appear in ExtensionMap are deliberately absent here so
// that their table glyph stays reachable.
var CategoryExtensions = sync.OnceValue(func() map[string]Category { // {{{
	ans := make(map[string]Category, 96)
	add := func(c Category, exts ...string) {
		for _, e := range exts {
			ans[e] = c
		}
	}
	add(Archive, "zip", "tar", "z", "gz", "bz2", "a", "ar", "7z", "iso", "dmg", "tc", "rar", "par", "tgz", "xz", "txz", "lz", "tlz", "lzma", "deb", "rpm", "zst")
	add(Audio, "aac", "m4a", "mp3", "ogg", "wma", "mka", "opus", "alac", "ape", "flac", "wav")
	add(Binary, "class", "elc", "hi", "o", "zwc", "ko")
	add(Crypto, "asc", "enc", "gpg", "pgp", "sig", "signature", "pfx", "p12")
	add(Image, "png", "jpeg", "jpg", "gif", "bmp", "tiff", "tif", "ppm", "pgm", "pbm", "pnm", "webp", "raw", "arw", "stl", "eps", "dvi", "ps", "cbr", "jpf", "cbz", "xpm", "ico", "cr2", "orf", "nef", "heif")
	add(Temp, "tmp", "swp", "swo", "swn", "bak", "bk")
	add(Video, "avi", "flv", "m2v", "m4v", "mkv", "mov", "mp4", "mpeg", "mpg", "ogm", "ogv", "vob", "wmv", "webm", "m2ts")
	return ans
}) // }}}

// ExtensionClassifier classifies by extension, and treats editor backup names
// (foo~ and #foo#) as temporary files.
type ExtensionClassifier struct{}

func (ExtensionClassifier) Classify(f File) (Category, bool) {
	if ext, found := f.Extension(); found {
		if c, found := CategoryExtensions()[ext]; found {
			return c, true
		}
	}
	name := f.BaseName()
	if strings.HasSuffix(name, "~") || (len(name) > 1 && strings.HasPrefix(name, "#") && strings.HasSuffix(name, "#")) {
		return Temp, true
	}
	return 0, false
}

var mime_categories = map[string]Category{
	"application/gzip":              Archive,
	"application/vnd.rar":           Archive,
	"application/x-7z-compressed":   Archive,
	"application/x-bzip2":           Archive,
	"application/x-iso9660-image":   Archive,
	"application/x-rar-compressed":  Archive,
	"application/x-tar":             Archive,
	"application/x-xz":              Archive,
	"application/zip":               Archive,
	"application/zstd":              Archive,
	"application/java-vm":           Binary,
	"application/x-executable":      Binary,
	"application/x-object":          Binary,
	"application/x-sharedlib":       Binary,
	"application/pgp-encrypted":     Crypto,
	"application/pgp-keys":          Crypto,
	"application/pgp-signature":     Crypto,
	"application/x-pkcs12":          Crypto,
	"application/x-x509-ca-cert":    Crypto,
	"application/x-pem-file":        Crypto,
	"application/x-trash":           Temp,
	"application/vnd.apple.mpegurl": Video,
	"application/x-matroska":        Video,
	"application/vnd.ms-asf":        Video,
	"application/x-shockwave-flash": Video,
	"application/vnd.rn-realmedia":  Video,
	"application/x-mpegurl":         Audio,
}

// MimeClassifier classifies by the MIME type guessed from the file name,
// which includes any user supplied mime.types in the config directory.
type MimeClassifier struct{}

func (MimeClassifier) Classify(f File) (Category, bool) {
	ext, found := f.Extension()
	if !found {
		return 0, false
	}
	// an entry in the extension table is more specific than a MIME family
	if _, found = ExtensionMap()[ext]; found {
		return 0, false
	}
	mt := utils.GuessMimeType(f.BaseName())
	if mt == "" {
		return 0, false
	}
	if c, found := mime_categories[mt]; found {
		return c, true
	}
	major, _, _ := strings.Cut(mt, "/")
	switch major {
	case "image":
		return Image, true
	case "audio":
		return Audio, true
	case "video":
		return Video, true
	}
	return 0, false
}
