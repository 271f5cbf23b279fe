package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dotstrap/dotstrap/internal/config"
	"github.com/dotstrap/dotstrap/internal/link"
)

// loadManifest locates and loads the manifest using the global --config flag.
func loadManifest() (*config.Manifest, error) {
	path, err := config.Find(manifestPath)
	if err != nil {
		return nil, err
	}
	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, "Using manifest: %s\n", path)
	}
	return config.Load(path)
}

// loadEntries loads the manifest and resolves its managed entries.
func loadEntries() ([]link.Entry, *config.Manifest, error) {
	manifest, err := loadManifest()
	if err != nil {
		return nil, nil, err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to determine home directory: %w", err)
	}
	return manifest.Entries(home), manifest, nil
}

// resolveKeys selects entries by key in the order given, de-duplicating
// repeats. Unknown keys are a usage error.
func resolveKeys(entries []link.Entry, keys []string, useAll bool) ([]link.Entry, error) {
	if useAll {
		return entries, nil
	}

	lookup := make(map[string]link.Entry, len(entries))
	for _, e := range entries {
		lookup[e.Key] = e
	}

	var chosen []link.Entry
	seen := make(map[string]bool)
	var unknown []string

	for _, key := range keys {
		entry, ok := lookup[strings.TrimSpace(key)]
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		if seen[entry.Key] {
			continue
		}
		seen[entry.Key] = true
		chosen = append(chosen, entry)
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown target(s): %s (use 'list' to see options)", strings.Join(unknown, ", "))
	}

	return chosen, nil
}
