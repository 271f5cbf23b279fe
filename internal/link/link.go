// Package link implements the symlink reconciliation engine. It classifies
// the live filesystem relationship between each managed entry's source and
// target, and applies link/replace/backup operations under an explicit
// replace policy.
package link

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dotstrap/dotstrap/internal/pathutil"
	"github.com/dotstrap/dotstrap/internal/types"
)

// Entry is one managed file mapping. Source is absolute under the dotfiles
// repository root; Target is absolute under the user's home directory.
// Entries are immutable once loaded.
type Entry struct {
	Key         string `json:"key" yaml:"key"`
	Description string `json:"description" yaml:"description"`
	Source      string `json:"source" yaml:"source"`
	Target      string `json:"target" yaml:"target"`
}

// Summary renders the entry's source -> target mapping with home-relative
// paths for human output.
func (e Entry) Summary() string {
	return fmt.Sprintf("%s -> %s", pathutil.Display(e.Source), pathutil.Display(e.Target))
}

// Classify inspects the live filesystem and returns the entry's status with
// a short human detail. It is a pure query with no side effects: callers
// must re-invoke it after any mutation rather than caching the result.
func Classify(e Entry) (types.LinkStatus, string) {
	if !sourcePresent(e.Source) {
		return types.StatusMissingSource, "source missing"
	}

	if isSymlink(e.Target) {
		targetResolved := resolveLink(e.Target)
		sourceResolved := canonical(e.Source)
		detail := fmt.Sprintf("points to %s", pathutil.Display(targetResolved))

		if targetResolved == sourceResolved {
			return types.StatusLinked, detail
		}
		// Stat follows the link; failure means the destination is gone.
		if _, err := os.Stat(e.Target); err != nil {
			return types.StatusBrokenLink, detail
		}
		return types.StatusLinkedElsewhere, detail
	}

	if info, err := os.Stat(e.Target); err == nil {
		if info.IsDir() {
			return types.StatusTargetDir, "target is a directory"
		}
		return types.StatusExists, "target exists"
	}

	return types.StatusAbsent, "target missing"
}

// sourcePresent reports whether the source exists, counting a dangling
// symlink as present.
func sourcePresent(source string) bool {
	_, err := os.Lstat(source)
	return err == nil
}

// isSymlink reports whether the path itself is a symlink, regardless of
// whether its destination exists.
func isSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// canonical resolves a path to its canonical form, tolerating paths and
// link destinations that do not exist. When the full path cannot be
// resolved, the parent directory is resolved and the leaf kept as-is.
func canonical(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		return filepath.Join(resolved, base)
	}
	return filepath.Clean(path)
}

// resolveLink canonicalizes the destination a symlink points at. Relative
// destinations are interpreted against the symlink's directory.
func resolveLink(path string) string {
	dest, err := os.Readlink(path)
	if err != nil {
		return canonical(path)
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(path), dest)
	}
	return canonical(dest)
}

// Info combines an entry with its current status for structured output.
type Info struct {
	Entry  Entry            `json:"entry" yaml:"entry,inline"`
	Status types.LinkStatus `json:"status" yaml:"status"`
	Detail string           `json:"detail" yaml:"detail"`
}

// Inspect classifies every entry in registry order.
func Inspect(entries []Entry) []Info {
	infos := make([]Info, 0, len(entries))
	for _, e := range entries {
		status, detail := Classify(e)
		infos = append(infos, Info{Entry: e, Status: status, Detail: detail})
	}
	return infos
}
