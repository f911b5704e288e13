package correlate

import (
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandHome resolves a leading ~ in user-supplied paths. If the
// current user cannot be looked up, the path is returned untouched.
func ExpandHome(path string) string {
	usr, err := user.Current()
	if err != nil {
		return path
	}

	if path == "~" {
		return usr.HomeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(usr.HomeDir, path[2:])
	}

	return path
}
