package config

import (
	"fmt"
	"sort"
	"strings"
)

// FieldSpec describes one field of an array element.
type FieldSpec struct {
	Name     string
	Type     string // "string", "int", "list"; "" skips type checking
	Required bool
	Enum     []string // allowed values; empty means unconstrained
	ListOf   string   // element type for "list" fields
}

// ArraySection describes one top-level array of objects.
type ArraySection struct {
	Key              string
	Fields           []FieldSpec
	AdditionalFields bool // false rejects undeclared element fields
}

// Schema describes the structural expectations for a declared document.
// Validation accumulates every violation rather than stopping at the first,
// and reports them in declared-field order so output is stable.
type Schema struct {
	RequiredKeys   []string
	AllowedKeys    []string
	AdditionalKeys bool // false rejects undeclared top-level keys
	Arrays         []ArraySection
}

// Validate checks the raw document against the schema and returns all
// structural error strings. An empty slice means the document conforms.
func (s *Schema) Validate(data map[string]interface{}) []string {
	var errors []string

	for _, key := range s.RequiredKeys {
		if _, ok := data[key]; !ok {
			errors = append(errors, fmt.Sprintf("missing required key: %s", key))
		}
	}

	if !s.AdditionalKeys {
		allowed := make(map[string]bool, len(s.AllowedKeys))
		for _, key := range s.AllowedKeys {
			allowed[key] = true
		}
		var unexpected []string
		for key := range data {
			if !allowed[key] {
				unexpected = append(unexpected, key)
			}
		}
		sort.Strings(unexpected)
		for _, key := range unexpected {
			errors = append(errors, fmt.Sprintf("unexpected key: %s", key))
		}
	}

	for _, section := range s.Arrays {
		errors = append(errors, section.validate(data)...)
	}

	return errors
}

func (a *ArraySection) validate(data map[string]interface{}) []string {
	var errors []string

	raw, ok := data[a.Key]
	if !ok || raw == nil {
		return nil
	}

	items, ok := raw.([]interface{})
	if !ok {
		return []string{fmt.Sprintf("'%s' must be an array", a.Key)}
	}

	declared := make(map[string]bool, len(a.Fields))
	for _, f := range a.Fields {
		declared[f.Name] = true
	}

	for i, rawItem := range items {
		item, ok := rawItem.(map[string]interface{})
		if !ok {
			errors = append(errors, fmt.Sprintf("%s[%d]: must be an object", a.Key, i))
			continue
		}

		for _, f := range a.Fields {
			if !f.Required {
				continue
			}
			if _, ok := item[f.Name]; !ok {
				errors = append(errors, fmt.Sprintf("%s[%d]: missing required field: %s", a.Key, i, f.Name))
			}
		}

		if !a.AdditionalFields {
			var unexpected []string
			for key := range item {
				if !declared[key] {
					unexpected = append(unexpected, key)
				}
			}
			sort.Strings(unexpected)
			for _, key := range unexpected {
				errors = append(errors, fmt.Sprintf("%s[%d]: unexpected field: %s", a.Key, i, key))
			}
		}

		for _, f := range a.Fields {
			val, ok := item[f.Name]
			if !ok {
				continue
			}
			errors = append(errors, a.checkField(i, f, val)...)
		}
	}

	return errors
}

func (a *ArraySection) checkField(index int, f FieldSpec, val interface{}) []string {
	var errors []string
	where := fmt.Sprintf("%s[%d].%s", a.Key, index, f.Name)

	switch f.Type {
	case "string":
		if _, ok := val.(string); !ok {
			errors = append(errors, fmt.Sprintf("%s: must be a string", where))
		}
	case "int":
		if !isInteger(val) {
			errors = append(errors, fmt.Sprintf("%s: must be an integer", where))
		}
	case "list":
		list, ok := val.([]interface{})
		if !ok {
			errors = append(errors, fmt.Sprintf("%s: must be a list", where))
			break
		}
		if f.ListOf == "string" {
			for _, elem := range list {
				if _, ok := elem.(string); !ok {
					errors = append(errors, fmt.Sprintf("%s: items must be strings", where))
					break
				}
			}
		}
	}

	if len(f.Enum) > 0 {
		str, ok := val.(string)
		if !ok || !contains(f.Enum, str) {
			errors = append(errors, fmt.Sprintf("%s: must be one of [%s], got '%v'",
				where, strings.Join(f.Enum, ", "), val))
		}
	}

	return errors
}

// isInteger accepts the integer representations the three decoders produce:
// yaml and toml yield int/int64, json yields float64.
func isInteger(val interface{}) bool {
	switch v := val.(type) {
	case int, int64, uint64:
		return true
	case float64:
		return v == float64(int64(v))
	default:
		return false
	}
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// ManifestSchema returns the schema descriptor for the dotstrap manifest.
// It must stay in sync with the typed structs in config.go.
func ManifestSchema() *Schema {
	return &Schema{
		RequiredKeys:   []string{"version", "links"},
		AllowedKeys:    []string{"version", "root", "links", "checks"},
		AdditionalKeys: false,
		Arrays: []ArraySection{
			{
				Key: "links",
				Fields: []FieldSpec{
					{Name: "key", Type: "string", Required: true},
					{Name: "path", Type: "string"},
					{Name: "description", Type: "string", Required: true},
				},
			},
			{
				Key: "checks",
				Fields: []FieldSpec{
					{Name: "label", Type: "string", Required: true},
					{Name: "kind", Type: "string", Required: true, Enum: []string{"command", "dir", "file"}},
					{Name: "target", Type: "string", Required: true},
					{Name: "pattern", Type: "string"},
					{Name: "depends", Type: "list", ListOf: "string"},
					{Name: "install", Type: "string"},
				},
			},
		},
	}
}
