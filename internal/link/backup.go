package link

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dotstrap/dotstrap/internal/logging"
)

// BackupFile is a timestamped sibling produced by the backup policy.
type BackupFile struct {
	Key     string `json:"key" yaml:"key"`
	Path    string `json:"path" yaml:"path"`
	Size    int64  `json:"size" yaml:"size"`
	ModTime int64  `json:"mod_time" yaml:"mod_time"` // unix seconds
}

// FindBackups discovers <target>.bak.* siblings for the given entries, in
// registry order, newest first within each entry.
func FindBackups(entries []Entry) ([]BackupFile, error) {
	var backups []BackupFile

	for _, entry := range entries {
		matches, err := filepath.Glob(entry.Target + ".bak.*")
		if err != nil {
			return nil, fmt.Errorf("failed to scan backups for %s: %w", entry.Key, err)
		}

		var found []BackupFile
		for _, path := range matches {
			info, err := os.Lstat(path)
			if err != nil {
				continue
			}
			found = append(found, BackupFile{
				Key:     entry.Key,
				Path:    path,
				Size:    info.Size(),
				ModTime: info.ModTime().Unix(),
			})
		}

		// Backup names sort chronologically; newest first.
		sort.Slice(found, func(i, j int) bool { return found[i].Path > found[j].Path })
		backups = append(backups, found...)
	}

	return backups, nil
}

// PruneResult reports what a prune pass removed and retained.
type PruneResult struct {
	Deleted []BackupFile `json:"deleted" yaml:"deleted"`
	Kept    int          `json:"kept" yaml:"kept"`
}

// PruneBackups removes stray backups, keeping the newest keep per entry.
func PruneBackups(entries []Entry, keep int, dryRun bool) (*PruneResult, error) {
	if keep < 0 {
		return nil, fmt.Errorf("keep count must be non-negative, got %d", keep)
	}

	logger := logging.GetLogger("backup")
	result := &PruneResult{}

	for _, entry := range entries {
		found, err := FindBackups([]Entry{entry})
		if err != nil {
			return nil, err
		}

		for i, b := range found {
			if i < keep {
				result.Kept++
				continue
			}
			if !dryRun {
				if err := os.Remove(b.Path); err != nil {
					return nil, fmt.Errorf("failed to delete backup %s: %w", b.Path, err)
				}
			}
			logger.Debug().Str("path", b.Path).Bool("dry_run", dryRun).Msg("pruned backup")
			result.Deleted = append(result.Deleted, b)
		}
	}

	return result, nil
}
