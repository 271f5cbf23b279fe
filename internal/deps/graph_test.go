package deps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotstrap/dotstrap/internal/types"
)

func check(label string, depends ...string) Check {
	return Check{Label: label, Kind: types.KindCommand, Target: label, Depends: depends}
}

func TestValidateGraph(t *testing.T) {
	tests := []struct {
		name   string
		checks []Check
		want   []string
	}{
		{
			name:   "empty graph",
			checks: nil,
			want:   nil,
		},
		{
			name:   "acyclic chain",
			checks: []Check{check("a", "b"), check("b", "c"), check("c")},
			want:   nil,
		},
		{
			name:   "diamond",
			checks: []Check{check("a", "b", "c"), check("b", "d"), check("c", "d"), check("d")},
			want:   nil,
		},
		{
			name:   "unknown label",
			checks: []Check{check("a", "missing")},
			want:   []string{"checks[0].depends: unknown label 'missing'"},
		},
		{
			name:   "two-node cycle",
			checks: []Check{check("a", "b"), check("b", "a")},
			want:   []string{"dependency cycle detected among: a, b"},
		},
		{
			name:   "self cycle",
			checks: []Check{check("a", "a")},
			want:   []string{"dependency cycle detected among: a"},
		},
		{
			name:   "unknown label and cycle both reported",
			checks: []Check{check("a", "b", "ghost"), check("b", "a")},
			want: []string{
				"checks[0].depends: unknown label 'ghost'",
				"dependency cycle detected among: a, b",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateGraph(tt.checks)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateGraphReportsDownstreamOfCycle(t *testing.T) {
	// c only depends on the cycle but is reported with it: the unvisited
	// remainder is an over-approximation of the cycle itself.
	checks := []Check{check("a", "b"), check("b", "a"), check("c", "a")}

	errors := ValidateGraph(checks)
	require.Len(t, errors, 1)
	assert.Equal(t, "dependency cycle detected among: a, b, c", errors[0])
}

func TestValidateGraphIgnoresUnknownEdgesForCycles(t *testing.T) {
	// The unknown label is reported but contributes no edge, so no
	// phantom cycle appears.
	checks := []Check{check("a", "ghost"), check("b", "a")}

	errors := ValidateGraph(checks)
	require.Len(t, errors, 1)
	assert.Contains(t, errors[0], "unknown label 'ghost'")
}

func TestRequiredBy(t *testing.T) {
	checks := []Check{
		check("zsh"),
		check("starship", "zsh"),
		check("fzf", "zsh"),
		check("atuin", "zsh", "fzf"),
	}

	index := RequiredBy(checks)

	assert.Equal(t, []string{"atuin", "fzf", "starship"}, index["zsh"])
	assert.Equal(t, []string{"atuin"}, index["fzf"])
	assert.Nil(t, index["starship"])
}

func TestSortByLabel(t *testing.T) {
	checks := []Check{check("Zsh"), check("atuin"), check("Fzf"), check("brew")}

	sorted := SortByLabel(checks)

	var labels []string
	for _, c := range sorted {
		labels = append(labels, c.Label)
	}
	assert.Equal(t, []string{"atuin", "brew", "Fzf", "Zsh"}, labels)

	// Input order is untouched.
	assert.Equal(t, "Zsh", checks[0].Label)
}
