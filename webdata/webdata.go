// Package webdata reads and writes the JSON documents in the web_data
// directory shared with the Correlate front end.
package webdata

import (
	"os"
	"path/filepath"

	"github.com/kardianos/osext"

	correlate "github.com/fredrikwermeling/correlate-v2"
)

const (
	// DirName is the directory holding the front end's JSON documents.
	DirName = "web_data"

	// MetadataFile enumerates the usable cell lines.
	MetadataFile = "metadata.json"

	// TranslocationsFile holds the per-gene fusion summaries.
	TranslocationsFile = "translocations.json"
)

// Locate picks the web_data directory to operate on. An explicit override
// wins. Otherwise web_data under the current directory is preferred, then
// web_data in the executable's parent directory, so the tool works both
// from the project root and installed into a subdirectory of it.
func Locate(override string) string {
	if override != "" {
		return correlate.ExpandHome(override)
	}

	if isDir(DirName) {
		return DirName
	}

	if exeDir, err := osext.ExecutableFolder(); err == nil {
		if candidate := filepath.Join(exeDir, "..", DirName); isDir(candidate) {
			return candidate
		}
	}

	return DirName
}

func isDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}
