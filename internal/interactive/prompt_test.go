package interactive

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotstrap/dotstrap/internal/types"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes word", "yes\n", true},
		{"uppercase", "Y\n", true},
		{"no", "n\n", false},
		{"empty defaults to no", "\n", false},
		{"eof defaults to no", "", false},
		{"garbage", "sure\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompterWithIO(strings.NewReader(tt.input), &out)

			got := p.Confirm("Continue?")
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Continue? [y/N]")
		})
	}
}

func TestConfirmPolicyPassthrough(t *testing.T) {
	// These paths never read from the prompter.
	p := NewPrompterWithIO(strings.NewReader(""), &bytes.Buffer{})

	assert.True(t, p.ConfirmPolicy(types.PolicyForce, true, false), "dry run")
	assert.True(t, p.ConfirmPolicy(types.PolicyForce, false, true), "explicit yes")
	assert.True(t, p.ConfirmPolicy(types.PolicySafe, false, false), "safe policy")
}

func TestConfirmPolicyFailsClosedWithoutTTY(t *testing.T) {
	// Test stdin is not a terminal, so backup/force must refuse.
	var out bytes.Buffer
	p := NewPrompterWithIO(strings.NewReader("y\n"), &out)

	assert.False(t, p.ConfirmPolicy(types.PolicyBackup, false, false))
	assert.Contains(t, out.String(), "Refusing to run mode 'backup' non-interactively")
}
