// Package deps implements the dependency-graph validator and the
// environment probes for declared checks.
//
// Declared labels form the nodes of a directed graph; an edge from a
// dependency to its dependent means the dependent's check logically follows.
// The graph is kept as explicit label-keyed maps rather than linked node
// objects so it stays trivially inspectable in tests.
package deps

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dotstrap/dotstrap/internal/types"
)

// Check is one declared environment dependency.
type Check struct {
	Label   string          `json:"label" yaml:"label"`
	Kind    types.CheckKind `json:"kind" yaml:"kind"`
	Target  string          `json:"target" yaml:"target"` // $HOME already expanded
	Pattern string          `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Depends []string        `json:"depends,omitempty" yaml:"depends,omitempty"`
	Install string          `json:"install,omitempty" yaml:"install,omitempty"`
}

// ValidateGraph checks label-reference integrity and detects ordering
// cycles. All errors are accumulated; output ordering is stable given
// identical input.
func ValidateGraph(checks []Check) []string {
	var errors []string

	labels := make(map[string]bool, len(checks))
	for _, c := range checks {
		labels[c.Label] = true
	}

	for i, c := range checks {
		for _, dep := range c.Depends {
			if !labels[dep] {
				errors = append(errors, fmt.Sprintf("checks[%d].depends: unknown label '%s'", i, dep))
			}
		}
	}

	if cycle := findCycle(checks, labels); len(cycle) > 0 {
		errors = append(errors, fmt.Sprintf("dependency cycle detected among: %s", strings.Join(cycle, ", ")))
	}

	return errors
}

// findCycle runs Kahn's algorithm over the known-label edges. If any node
// is never visited, the sorted unvisited remainder is returned. This may
// include nodes merely downstream of a cycle; that over-approximation is
// the documented behavior.
func findCycle(checks []Check, labels map[string]bool) []string {
	inDegree := make(map[string]int, len(checks))
	dependents := make(map[string][]string)

	for _, c := range checks {
		if _, ok := inDegree[c.Label]; !ok {
			inDegree[c.Label] = 0
		}
		for _, dep := range c.Depends {
			if !labels[dep] {
				continue
			}
			dependents[dep] = append(dependents[dep], c.Label)
			inDegree[c.Label]++
		}
	}

	var queue []string
	for label, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, label)
		}
	}

	visited := 0
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		visited++
		for _, child := range dependents[node] {
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if visited == len(inDegree) {
		return nil
	}

	var cycle []string
	for label, degree := range inDegree {
		if degree > 0 {
			cycle = append(cycle, label)
		}
	}
	sort.Strings(cycle)
	return cycle
}

// RequiredBy builds the reverse dependency index: label -> sorted labels
// that declare it as a dependency. It only annotates failure output and
// never affects pass/fail outcomes.
func RequiredBy(checks []Check) map[string][]string {
	index := make(map[string][]string)
	for _, c := range checks {
		for _, dep := range c.Depends {
			index[dep] = append(index[dep], c.Label)
		}
	}
	for label := range index {
		sort.Strings(index[label])
	}
	return index
}

// SortByLabel returns the checks in case-insensitive label order, the
// deterministic order used by verification output.
func SortByLabel(checks []Check) []Check {
	sorted := make([]Check, len(checks))
	copy(sorted, checks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Label) < strings.ToLower(sorted[j].Label)
	})
	return sorted
}
