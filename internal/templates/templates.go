// Package templates provides embedded starter manifests for dotstrap init.
package templates

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.yaml
var templatesFS embed.FS

// Template represents a starter manifest with metadata.
type Template struct {
	Name        string
	Description string
	Content     []byte
}

var descriptions = map[string]string{
	"minimal": "A couple of links, no dependency checks",
	"full":    "Links plus dependency checks with ordering",
}

// List returns all available template names sorted alphabetically.
func List() []string {
	entries, err := templatesFS.ReadDir(".")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}

	sort.Strings(names)
	return names
}

// GetDescription returns a template's one-line description.
func GetDescription(name string) string {
	return descriptions[name]
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	content, err := templatesFS.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("template '%s' not found (available: %s)", name, strings.Join(List(), ", "))
	}
	return &Template{
		Name:        name,
		Description: descriptions[name],
		Content:     content,
	}, nil
}
