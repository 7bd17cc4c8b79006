// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package icons

import (
	"fmt"
	"sync"
)

var _ = fmt.Print

// Glyph is a single code point from a Nerd Font patched icon font.
type Glyph rune

func (g Glyph) String() string { return string(rune(g)) }

// file types {{{
const (
	DIRECTORY Glyph = 0xf07c // folder open
	FILE      Glyph = 0xf15b // generic file, used when nothing else matches

	ANDROID      Glyph = 0xe70e
	APPLE        Glyph = 0xf179
	BOOK         Glyph = 0xe28b
	CLOJURE      Glyph = 0xe768
	CMAKE        Glyph = 0xe20f
	COFFEE       Glyph = 0xf0f4
	CONFIG       Glyph = 0xe615
	CSS3         Glyph = 0xe749
	DATABASE     Glyph = 0xf1c0
	DESKTOP      Glyph = 0xf108
	DIFF         Glyph = 0xf440
	DOCKER       Glyph = 0xf308
	DOCUMENT     Glyph = 0xf1c2
	DOTENV       Glyph = 0xf462
	EPUB         Glyph = 0xe28a
	FONT         Glyph = 0xf031
	FONT_TTF     Glyph = 0xfbd4
	GFORM        Glyph = 0xf298
	GIT          Glyph = 0xf1d3
	GIT_CONFIG   Glyph = 0xe702
	HTML5        Glyph = 0xf13b
	ILLUSTRATOR  Glyph = 0xe7b4
	INTELLIJ     Glyph = 0xe7b5
	JSON         Glyph = 0xe60b
	LANG_C       Glyph = 0xe61e
	LANG_CPP     Glyph = 0xe61d
	LANG_CSHARP  Glyph = 0xf81a
	LANG_D       Glyph = 0xe7af
	LANG_DART    Glyph = 0xe798
	LANG_ELIXIR  Glyph = 0xe62d
	LANG_ERLANG  Glyph = 0xe7b1
	LANG_FSHARP  Glyph = 0xe7a7
	LANG_GO      Glyph = 0xe626
	LANG_HASKELL Glyph = 0xe777
	LANG_HEADER  Glyph = 0xf0fd
	LANG_JAVA    Glyph = 0xe204
	LANG_JS      Glyph = 0xe74e
	LANG_LESS    Glyph = 0xe758
	LANG_LUA     Glyph = 0xe620
	LANG_PERL    Glyph = 0xe769
	LANG_PHP     Glyph = 0xe73d
	LANG_PYTHON  Glyph = 0xe606
	LANG_R       Glyph = 0xf25d
	LANG_RUBY    Glyph = 0xe21e
	LANG_RUST    Glyph = 0xe7a8
	LANG_SASS    Glyph = 0xe603
	LANG_SCALA   Glyph = 0xe737
	LANG_STYLUS  Glyph = 0xe600
	LANG_SWIFT   Glyph = 0xfbe3
	LANG_TS      Glyph = 0xe628
	LIBRARY      Glyph = 0xf02d
	LICENSE      Glyph = 0xf1f9
	LOCK         Glyph = 0xf456
	LOG          Glyph = 0xf18d
	MARKDOWN     Glyph = 0xe609
	MUSTACHE     Glyph = 0xe60f
	NPM          Glyph = 0xe71e
	PDF          Glyph = 0xf1c1
	PHOTOSHOP    Glyph = 0xe7b8
	REACT        Glyph = 0xe7ba
	REDIS        Glyph = 0xe76d
	RSS          Glyph = 0xf09e
	RUBYRAILS    Glyph = 0xe73b
	SHEET        Glyph = 0xf1c3
	SHELL        Glyph = 0xe795
	SHELL_CMD    Glyph = 0xf489
	SLIDE        Glyph = 0xf1c4
	SQLITE       Glyph = 0xe7c4
	SVG          Glyph = 0xfc1f
	TEXT         Glyph = 0xf15c
	TWIG         Glyph = 0xe61c
	VAGRANT      Glyph = 0xf2b8
	VIDEO_FILE   Glyph = 0xf03d
	VIM          Glyph = 0xe62b
	VIMRC        Glyph = 0xe7c5
	VISUALSTUDIO Glyph = 0xfb0f
	XML          Glyph = 0xfabf
	YAML         Glyph = 0xf481
) // }}}

// ExtensionMap is keyed by lower-cased extensions without the leading dot.
var ExtensionMap = sync.OnceValue(func() map[string]Glyph { // {{{
	return map[string]Glyph{
		"ai":        ILLUSTRATOR,
		"android":   ANDROID,
		"apple":     APPLE,
		"avro":      JSON,
		"bash":      SHELL_CMD,
		"bashrc":    SHELL_CMD,
		"bat":       SHELL_CMD,
		"c":         LANG_C,
		"cabal":     LANG_HASKELL,
		"cc":        LANG_CPP,
		"clj":       CLOJURE,
		"cmake":     CMAKE,
		"coffee":    COFFEE,
		"conf":      CONFIG,
		"cpp":       LANG_CPP,
		"cs":        LANG_CSHARP,
		"css":       CSS3,
		"csx":       LANG_CSHARP,
		"cxx":       LANG_CPP,
		"d":         LANG_D,
		"dart":      LANG_DART,
		"db":        DATABASE,
		"desktop":   DESKTOP,
		"diff":      DIFF,
		"doc":       DOCUMENT,
		"dump":      DATABASE,
		"ebook":     BOOK,
		"env":       DOTENV,
		"epub":      EPUB,
		"erl":       LANG_ERLANG,
		"ex":        LANG_ELIXIR,
		"exs":       LANG_ELIXIR,
		"font":      FONT,
		"fs":        LANG_FSHARP,
		"fsx":       LANG_FSHARP,
		"gform":     GFORM,
		"git":       GIT,
		"go":        LANG_GO,
		"h":         LANG_HEADER,
		"hbs":       MUSTACHE,
		"hh":        LANG_HEADER,
		"hpp":       LANG_HEADER,
		"hs":        LANG_HASKELL,
		"htm":       HTML5,
		"html":      HTML5,
		"hxx":       LANG_HEADER,
		"iml":       INTELLIJ,
		"ini":       CONFIG,
		"java":      LANG_JAVA,
		"js":        LANG_JS,
		"json":      JSON,
		"jsx":       REACT,
		"less":      LANG_LESS,
		"lib":       LIBRARY,
		"lock":      LOCK,
		"log":       LOG,
		"lua":       LANG_LUA,
		"markdown":  MARKDOWN,
		"md":        MARKDOWN,
		"mdx":       MARKDOWN,
		"mustache":  MUSTACHE,
		"npmignore": NPM,
		"nvim":      VIM,
		"otf":       FONT_TTF,
		"pdf":       PDF,
		"php":       LANG_PHP,
		"pl":        LANG_PERL,
		"ppt":       SLIDE,
		"psd":       PHOTOSHOP,
		"py":        LANG_PYTHON,
		"pyc":       LANG_PYTHON,
		"pyd":       LANG_PYTHON,
		"pyo":       LANG_PYTHON,
		"r":         LANG_R,
		"rb":        LANG_RUBY,
		"rdb":       REDIS,
		"rlib":      LIBRARY,
		"rmd":       MARKDOWN,
		"rs":        LANG_RUST,
		"rss":       RSS,
		"rubydoc":   RUBYRAILS,
		"sass":      LANG_SASS,
		"scala":     LANG_SCALA,
		"scss":      LANG_SASS,
		"sh":        SHELL_CMD,
		"shell":     SHELL_CMD,
		"sln":       VISUALSTUDIO,
		"so":        LIBRARY,
		"sql":       DATABASE,
		"sqlite3":   SQLITE,
		"styl":      LANG_STYLUS,
		"suo":       VISUALSTUDIO,
		"svg":       SVG,
		"swift":     LANG_SWIFT,
		"tex":       LANG_STYLUS,
		"toml":      CONFIG,
		"ts":        LANG_TS,
		"tsx":       LANG_TS,
		"ttf":       FONT_TTF,
		"twig":      TWIG,
		"txt":       TEXT,
		"video":     VIDEO_FILE,
		"vim":       VIM,
		"vimrc":     VIM,
		"xls":       SHEET,
		"xml":       XML,
		"yaml":      YAML,
		"yml":       YAML,
		"zsh":       SHELL_CMD,
	}
}) // }}}

// FileNameMap is consulted only for files without an extension. Keys are
// matched literally, including case and any leading dot.
var FileNameMap = sync.OnceValue(func() map[string]Glyph { // {{{
	return map[string]Glyph{
		".bashrc":     SHELL,
		".gitconfig":  GIT_CONFIG,
		".gitignore":  GIT_CONFIG,
		".gitmodules": GIT_CONFIG,
		".vimrc":      VIMRC,
		".zshrc":      SHELL,
		"Dockerfile":  DOCKER,
		"dockerfile":  DOCKER,
		"Godeps":      LANG_GO,
		"LICENCE":     LICENSE,
		"LICENSE":     LICENSE,
		"license":     LICENSE,
		"Makefile":    CMAKE,
		"terminalrc":  SHELL,
		"Vagrantfile": VAGRANT,
		"vimrc":       VIMRC,
	}
}) // }}}
