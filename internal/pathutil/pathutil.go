// Package pathutil provides small path helpers shared across commands.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Display renders an absolute path relative to the user's home directory
// for human-readable output, e.g. /home/u/.zshrc -> ~/.zshrc. Paths outside
// the home directory are returned unchanged.
func Display(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return DisplayRel(path, home)
}

// DisplayRel is Display with an explicit home directory, for testing.
func DisplayRel(path, home string) string {
	home = filepath.Clean(home)
	path = filepath.Clean(path)
	if path == home {
		return "~"
	}
	prefix := home + string(os.PathSeparator)
	if strings.HasPrefix(path, prefix) {
		return "~/" + filepath.ToSlash(strings.TrimPrefix(path, prefix))
	}
	return path
}

// ExpandHome substitutes a leading ~ or a $HOME placeholder with the given
// home directory. Dependency check targets use $HOME; manifest roots may
// use either form.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
