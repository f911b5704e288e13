// Package compileinfo reports the build provenance that the Go toolchain
// embeds in a binary, so pipeline output can be traced back to a commit.
package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

type BuildInfo struct {
	MainPackage string
	GoVersion   string
	Revision    string
	CommitTime  string
	Dirty       bool
}

func (b BuildInfo) String() string {
	suffix := ""
	if b.Dirty {
		suffix = " The working tree contained uncommitted changes."
	}

	return fmt.Sprintf("This %s binary was built with %s from commit %v committed at %v.%s", b.MainPackage, b.GoVersion, b.Revision, b.CommitTime, suffix)
}

func Get() BuildInfo {
	out := BuildInfo{}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.MainPackage = bi.Path
	out.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Revision = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Dirty = s.Value == "true"
		}
	}

	return out
}

func PrintToStdErr() {
	fmt.Fprintf(os.Stderr, "%s\n", Get())
}
