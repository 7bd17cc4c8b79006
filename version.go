// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package lsicons

import (
	_ "embed"
	"fmt"
	"regexp"
	"runtime/debug"
	"strconv"
)

//go:embed VERSION
var raw string

type VersionType struct {
	major, minor, patch int
}

func (self VersionType) String() string {
	return fmt.Sprint(self.major, ".", self.minor, ".", self.patch)
}

var VersionString string
var Version VersionType
var VCSRevision string

func init() {
	verpat := regexp.MustCompile(`^\s*(\d+)\.(\d+)\.(\d+)`)
	matches := verpat.FindStringSubmatch(raw)
	if matches == nil {
		panic(fmt.Errorf("Failed to find the version in: %#v", raw))
	}
	Version.major, _ = strconv.Atoi(matches[1])
	Version.minor, _ = strconv.Atoi(matches[2])
	Version.patch, _ = strconv.Atoi(matches[3])
	VersionString = Version.String()
	bi, ok := debug.ReadBuildInfo()
	if ok {
		for _, bs := range bi.Settings {
			if bs.Key == "vcs.revision" {
				VCSRevision = bs.Value
			}
		}
	}
}
