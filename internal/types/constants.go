// Package types provides type-safe constants for the dotstrap configuration
// system.
//
// This package centralizes all enumerated types used throughout the codebase,
// replacing magic strings with typed constants that provide compile-time
// safety and validation methods.
package types

import (
	"fmt"
	"strings"
)

// ReplacePolicy governs how an existing link target is handled during apply.
type ReplacePolicy string

const (
	// PolicySafe never touches an existing target; only absent targets are linked.
	PolicySafe ReplacePolicy = "safe"
	// PolicyBackup renames an existing target to a timestamped sibling before linking.
	PolicyBackup ReplacePolicy = "backup"
	// PolicyForce deletes an existing target before linking.
	PolicyForce ReplacePolicy = "force"
)

// AllReplacePolicies returns all valid replace policies.
func AllReplacePolicies() []ReplacePolicy {
	return []ReplacePolicy{PolicySafe, PolicyBackup, PolicyForce}
}

// Validate checks if the ReplacePolicy is a valid value.
func (p ReplacePolicy) Validate() error {
	switch p {
	case PolicySafe, PolicyBackup, PolicyForce:
		return nil
	case "":
		return fmt.Errorf("replace policy is required")
	default:
		return fmt.Errorf("invalid replace policy '%s' (must be safe, backup, or force)", p)
	}
}

// String returns the string representation of the ReplacePolicy.
func (p ReplacePolicy) String() string {
	return string(p)
}

// IsSafe returns true if the policy never modifies existing targets.
func (p ReplacePolicy) IsSafe() bool {
	return p == PolicySafe
}

// Mutates returns true if the policy may modify an existing target.
func (p ReplacePolicy) Mutates() bool {
	return p == PolicyBackup || p == PolicyForce
}

// ParseReplacePolicy parses a string into a ReplacePolicy.
// Returns an error if the string is not a valid policy.
func ParseReplacePolicy(s string) (ReplacePolicy, error) {
	p := ReplacePolicy(strings.ToLower(s))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// CheckKind represents the kind of environment dependency being probed.
type CheckKind string

const (
	// KindCommand probes for an executable on PATH.
	KindCommand CheckKind = "command"
	// KindDir probes for an existing directory.
	KindDir CheckKind = "dir"
	// KindFile probes for an existing regular file.
	KindFile CheckKind = "file"
)

// AllCheckKinds returns all valid check kinds.
func AllCheckKinds() []CheckKind {
	return []CheckKind{KindCommand, KindDir, KindFile}
}

// Validate checks if the CheckKind is a valid value.
func (k CheckKind) Validate() error {
	switch k {
	case KindCommand, KindDir, KindFile:
		return nil
	case "":
		return fmt.Errorf("check kind is required")
	default:
		return fmt.Errorf("invalid check kind '%s' (must be command, dir, or file)", k)
	}
}

// String returns the string representation of the CheckKind.
func (k CheckKind) String() string {
	return string(k)
}

// ParseCheckKind parses a string into a CheckKind.
// Returns an error if the string is not a valid kind.
func ParseCheckKind(s string) (CheckKind, error) {
	k := CheckKind(strings.ToLower(s))
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

// LinkStatus is the derived relationship between a managed entry's source
// and its home-directory target. It is recomputed from live filesystem
// state on every query and never cached.
type LinkStatus string

const (
	// StatusMissingSource means the source file does not exist in the repository.
	StatusMissingSource LinkStatus = "missing-source"
	// StatusLinked means the target is a symlink resolving to the source.
	StatusLinked LinkStatus = "linked"
	// StatusBrokenLink means the target is a symlink whose destination is gone.
	StatusBrokenLink LinkStatus = "broken-link"
	// StatusLinkedElsewhere means the target is a symlink to some other path.
	StatusLinkedElsewhere LinkStatus = "linked-elsewhere"
	// StatusExists means the target is a regular file that is not a symlink.
	StatusExists LinkStatus = "exists"
	// StatusTargetDir means the target is a real directory.
	StatusTargetDir LinkStatus = "target-dir"
	// StatusAbsent means nothing occupies the target path.
	StatusAbsent LinkStatus = "absent"
)

// AllLinkStatuses returns all link statuses.
func AllLinkStatuses() []LinkStatus {
	return []LinkStatus{
		StatusMissingSource,
		StatusLinked,
		StatusBrokenLink,
		StatusLinkedElsewhere,
		StatusExists,
		StatusTargetDir,
		StatusAbsent,
	}
}

// String returns the string representation of the LinkStatus.
func (s LinkStatus) String() string {
	return string(s)
}

// Label returns the short column token used by list/status output.
func (s LinkStatus) Label() string {
	switch s {
	case StatusLinked:
		return "LINKED"
	case StatusAbsent:
		return "ABSENT"
	case StatusExists:
		return "EXISTS"
	case StatusMissingSource:
		return "MISSING"
	case StatusLinkedElsewhere:
		return "OTHER"
	case StatusBrokenLink:
		return "BROKEN"
	case StatusTargetDir:
		return "DIR"
	default:
		return strings.ToUpper(string(s))
	}
}

// IsLinked returns true if the target already points at the source.
func (s LinkStatus) IsLinked() bool {
	return s == StatusLinked
}

// Occupied returns true if something occupies the target path (a file,
// a directory, or a symlink of any health).
func (s LinkStatus) Occupied() bool {
	switch s {
	case StatusExists, StatusTargetDir, StatusLinked, StatusLinkedElsewhere, StatusBrokenLink:
		return true
	default:
		return false
	}
}
