// Package config handles manifest parsing, location resolution, and
// structural validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/dotstrap/dotstrap/internal/deps"
	"github.com/dotstrap/dotstrap/internal/link"
	"github.com/dotstrap/dotstrap/internal/pathutil"
	"github.com/dotstrap/dotstrap/internal/types"
)

// Link declares one managed file: a repository-relative path that should be
// symlinked into the home directory under the same name.
type Link struct {
	Key         string `yaml:"key" toml:"key" json:"key"`
	Path        string `yaml:"path,omitempty" toml:"path,omitempty" json:"path,omitempty"` // source-relative path; defaults to key
	Description string `yaml:"description" toml:"description" json:"description"`
}

// SourcePath returns the repository-relative source path for the link.
func (l Link) SourcePath() string {
	if l.Path != "" {
		return l.Path
	}
	return l.Key
}

// Check declares one environment dependency to verify.
type Check struct {
	Label   string          `yaml:"label" toml:"label" json:"label"`
	Kind    types.CheckKind `yaml:"kind" toml:"kind" json:"kind"`
	Target  string          `yaml:"target" toml:"target" json:"target"` // may contain $HOME, expanded at load
	Pattern string          `yaml:"pattern,omitempty" toml:"pattern,omitempty" json:"pattern,omitempty"`
	Depends []string        `yaml:"depends,omitempty" toml:"depends,omitempty" json:"depends,omitempty"`
	Install string          `yaml:"install,omitempty" toml:"install,omitempty" json:"install,omitempty"`
}

// Manifest represents the parsed dotstrap manifest.
type Manifest struct {
	Version int     `yaml:"version" toml:"version" json:"version"`
	Root    string  `yaml:"root,omitempty" toml:"root,omitempty" json:"root,omitempty"`
	Links   []Link  `yaml:"links" toml:"links" json:"links"`
	Checks  []Check `yaml:"checks,omitempty" toml:"checks,omitempty" json:"checks,omitempty"`

	// Path is the file the manifest was loaded from. It anchors the
	// default dotfiles root.
	Path string `yaml:"-" toml:"-" json:"-"`
}

// fileNames are the manifest name variants searched in each location.
var fileNames = []string{
	"dotstrap.yaml",
	"dotstrap.yml",
	"dotstrap.toml",
	"dotstrap.json",
	".dotstrap.yaml",
	".dotstrap.yml",
	".dotstrap.toml",
	".dotstrap.json",
}

// Find searches for a manifest in the standard locations.
// Returns the path to the first manifest found, or an error if none exists.
func Find(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("specified manifest not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	if envPath := os.Getenv("DOTSTRAP_MANIFEST"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}

	searchPaths := []string{
		filepath.Join(xdg.ConfigHome, "dotstrap"),
		filepath.Join(home, ".dotstrap"),
		home,
	}

	for _, dir := range searchPaths {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("no manifest found in standard locations")
}

// Load reads, parses, and validates a manifest from the given path.
func Load(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	format := detectFormat(path, content)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unable to detect file format for %s", path)
	}

	manifest, err := parse(content, format)
	if err != nil {
		return nil, err
	}
	manifest.Path = path

	if err := Validate(manifest); err != nil {
		return nil, err
	}

	return manifest, nil
}

// LoadRaw reads and parses a manifest into its generic document form,
// preserving unknown keys so the schema validator can report them.
func LoadRaw(path string) (map[string]interface{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	format := detectFormat(path, content)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unable to detect file format for %s", path)
	}

	return parseRaw(content, format)
}

// ResolveRoot returns the dotfiles repository root: the manifest's root
// field (home-expanded) when set, otherwise the manifest's directory.
func (m *Manifest) ResolveRoot(home string) string {
	if m.Root != "" {
		return pathutil.ExpandHome(m.Root, home)
	}
	return filepath.Dir(m.Path)
}

// Entries resolves the declared links into managed entries: source joined
// against the repository root, target joined against the home directory.
func (m *Manifest) Entries(home string) []link.Entry {
	root := m.ResolveRoot(home)
	entries := make([]link.Entry, 0, len(m.Links))
	for _, l := range m.Links {
		entries = append(entries, link.Entry{
			Key:         l.Key,
			Description: l.Description,
			Source:      filepath.Join(root, l.SourcePath()),
			Target:      filepath.Join(home, l.Key),
		})
	}
	return entries
}

// DepChecks resolves the declared checks into dependency checks with the
// $HOME placeholder expanded.
func (m *Manifest) DepChecks(home string) []deps.Check {
	checks := make([]deps.Check, 0, len(m.Checks))
	for _, c := range m.Checks {
		checks = append(checks, deps.Check{
			Label:   c.Label,
			Kind:    c.Kind,
			Target:  pathutil.ExpandHome(c.Target, home),
			Pattern: c.Pattern,
			Depends: c.Depends,
			Install: c.Install,
		})
	}
	return checks
}
