package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a manifest validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the manifest for required fields and valid values.
// All violations are accumulated into a single error. The schema validator
// in schema.go covers the raw document form used by verify and must stay
// in sync when fields are added.
func Validate(m *Manifest) error {
	var errors []string

	if m.Version != 1 {
		errors = append(errors, ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported manifest version %d (expected 1)", m.Version),
		}.Error())
	}

	seenKeys := make(map[string]bool)
	for i, l := range m.Links {
		if l.Key == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("links[%d].key", i),
				Message: "key is required",
			}.Error())
			continue
		}
		if seenKeys[l.Key] {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("links[%d].key", i),
				Message: fmt.Sprintf("duplicate key '%s'", l.Key),
			}.Error())
		}
		seenKeys[l.Key] = true
	}

	seenLabels := make(map[string]bool)
	for i, c := range m.Checks {
		if c.Label == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("checks[%d].label", i),
				Message: "label is required",
			}.Error())
		} else if seenLabels[c.Label] {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("checks[%d].label", i),
				Message: fmt.Sprintf("duplicate label '%s'", c.Label),
			}.Error())
		}
		seenLabels[c.Label] = true

		if err := c.Kind.Validate(); err != nil {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("checks[%d].kind", i),
				Message: err.Error(),
			}.Error())
		}

		if c.Target == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("checks[%d].target", i),
				Message: "target is required",
			}.Error())
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
