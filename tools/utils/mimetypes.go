// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"bufio"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var _ = fmt.Print
var user_mime_only_once sync.Once
var user_defined_mime_map = make(map[string]string)

// Used when the system has no mime.types entry, which is common in containers.
var builtin_types_map = map[string]string{
	".7z":    "application/x-7z-compressed",
	".aac":   "audio/aac",
	".asc":   "application/pgp-signature",
	".avi":   "video/x-msvideo",
	".bmp":   "image/bmp",
	".bz2":   "application/x-bzip2",
	".class": "application/java-vm",
	".deb":   "application/vnd.debian.binary-package",
	".flac":  "audio/flac",
	".gpg":   "application/pgp-encrypted",
	".gz":    "application/gzip",
	".heic":  "image/heic",
	".ico":   "image/vnd.microsoft.icon",
	".iso":   "application/x-iso9660-image",
	".m4a":   "audio/mp4",
	".mkv":   "video/x-matroska",
	".mov":   "video/quicktime",
	".mp3":   "audio/mpeg",
	".mp4":   "video/mp4",
	".o":     "application/x-object",
	".oga":   "audio/ogg",
	".ogg":   "audio/ogg",
	".ogv":   "video/ogg",
	".opus":  "audio/opus",
	".p12":   "application/x-pkcs12",
	".pem":   "application/x-pem-file",
	".rar":   "application/vnd.rar",
	".tar":   "application/x-tar",
	".tif":   "image/tiff",
	".tiff":  "image/tiff",
	".wav":   "audio/wav",
	".webm":  "video/webm",
	".xz":    "application/x-xz",
	".zip":   "application/zip",
	".zst":   "application/zstd",
}

func load_mime_file(filename string, mime_map map[string]string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) <= 1 || fields[0][0] == '#' {
			continue
		}
		mime_type := fields[0]
		for _, ext := range fields[1:] {
			if ext[0] == '#' {
				break
			}
			mime_map["."+ext] = mime_type
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return nil
}

func load_user_mime_maps() {
	conf_path := filepath.Join(ConfigDir(), "mime.types")
	err := load_mime_file(conf_path, user_defined_mime_map)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Failed to parse", conf_path, "for MIME types with error:", err)
	}
}

func GuessMimeType(filename string) string {
	user_mime_only_once.Do(load_user_mime_maps)
	ext := filepath.Ext(filename)
	mime_with_parameters := user_defined_mime_map[ext]
	if mime_with_parameters == "" {
		mime_with_parameters = mime.TypeByExtension(ext)
	}
	if mime_with_parameters == "" {
		mime_with_parameters = builtin_types_map[ext]
		if mime_with_parameters == "" {
			mime_with_parameters = builtin_types_map[strings.ToLower(ext)]
			if mime_with_parameters == "" {
				return ""
			}
		}
	}
	ans, _, err := mime.ParseMediaType(mime_with_parameters)
	if err != nil {
		return ""
	}
	return ans
}
