package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplacePolicyValidate(t *testing.T) {
	for _, p := range AllReplacePolicies() {
		assert.NoError(t, p.Validate())
	}
	assert.Error(t, ReplacePolicy("").Validate())
	assert.Error(t, ReplacePolicy("overwrite").Validate())
}

func TestParseReplacePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    ReplacePolicy
		wantErr bool
	}{
		{"safe", PolicySafe, false},
		{"BACKUP", PolicyBackup, false},
		{"Force", PolicyForce, false},
		{"", "", true},
		{"overwrite", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseReplacePolicy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplacePolicyPredicates(t *testing.T) {
	assert.True(t, PolicySafe.IsSafe())
	assert.False(t, PolicySafe.Mutates())
	assert.True(t, PolicyBackup.Mutates())
	assert.True(t, PolicyForce.Mutates())
}

func TestParseCheckKind(t *testing.T) {
	for _, k := range AllCheckKinds() {
		got, err := ParseCheckKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseCheckKind("binary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid check kind 'binary'")
}

func TestLinkStatusLabel(t *testing.T) {
	tests := []struct {
		status LinkStatus
		want   string
	}{
		{StatusLinked, "LINKED"},
		{StatusAbsent, "ABSENT"},
		{StatusExists, "EXISTS"},
		{StatusMissingSource, "MISSING"},
		{StatusLinkedElsewhere, "OTHER"},
		{StatusBrokenLink, "BROKEN"},
		{StatusTargetDir, "DIR"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.Label())
	}
}

func TestLinkStatusOccupied(t *testing.T) {
	occupied := map[LinkStatus]bool{
		StatusExists:          true,
		StatusTargetDir:       true,
		StatusLinked:          true,
		StatusLinkedElsewhere: true,
		StatusBrokenLink:      true,
		StatusAbsent:          false,
		StatusMissingSource:   false,
	}

	for _, s := range AllLinkStatuses() {
		assert.Equal(t, occupied[s], s.Occupied(), s.String())
	}
}
