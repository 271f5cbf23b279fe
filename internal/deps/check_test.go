package deps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotstrap/dotstrap/internal/types"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestProbe(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	writeFile(t, file, "x")

	tests := []struct {
		name  string
		check Check
		want  bool
	}{
		{
			name:  "command present",
			check: Check{Label: "sh", Kind: types.KindCommand, Target: "sh"},
			want:  true,
		},
		{
			name:  "command missing",
			check: Check{Label: "nope", Kind: types.KindCommand, Target: "definitely-not-a-command-xyz"},
			want:  false,
		},
		{
			name:  "dir present",
			check: Check{Label: "d", Kind: types.KindDir, Target: dir},
			want:  true,
		},
		{
			name:  "dir is actually a file",
			check: Check{Label: "d", Kind: types.KindDir, Target: file},
			want:  false,
		},
		{
			name:  "file present",
			check: Check{Label: "f", Kind: types.KindFile, Target: file},
			want:  true,
		},
		{
			name:  "file is actually a dir",
			check: Check{Label: "f", Kind: types.KindFile, Target: dir},
			want:  false,
		},
		{
			name:  "file missing",
			check: Check{Label: "f", Kind: types.KindFile, Target: filepath.Join(dir, "gone")},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Probe(tt.check))
		})
	}
}

func TestReferenced(t *testing.T) {
	rc := filepath.Join(t.TempDir(), ".zshrc")
	writeFile(t, rc, `# starship is configured below, but this line is a comment
eval "$(starship init zsh)"
alias ll='ls -la'
`)

	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"no pattern is always referenced", "", true},
		{"pattern matches", `starship init`, true},
		{"pattern only in comment", `configured below`, false},
		{"pattern absent", `atuin`, false},
		{"invalid pattern never matches", `[unclosed`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Referenced(Check{Label: "x", Pattern: tt.pattern}, rc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReferencedMissingRCFile(t *testing.T) {
	_, err := Referenced(Check{Label: "x", Pattern: "y"}, filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open rc file")
}

func TestFindRCFileExplicit(t *testing.T) {
	rc := filepath.Join(t.TempDir(), "rc")
	writeFile(t, rc, "x")

	got, err := FindRCFile(rc)
	require.NoError(t, err)
	assert.Equal(t, rc, got)

	_, err = FindRCFile(filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rc file not found at:")
}

func TestScanHardcodedPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".zshrc")
	writeFile(t, path, `export PATH="$HOME/bin:$PATH"
source /Users/alice/dotfiles/extra.zsh
alias proj='cd /home/alice/projects'
echo /var/home/ok
`)

	violations, err := ScanHardcodedPaths(path)
	require.NoError(t, err)
	require.Len(t, violations, 3)

	assert.Equal(t, 2, violations[0].Line)
	assert.Contains(t, violations[0].Text, "/Users/alice")
	assert.Equal(t, 3, violations[1].Line)
	assert.Equal(t, 4, violations[2].Line)
}

func TestScanHardcodedPathsClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".zshrc")
	writeFile(t, path, "export PATH=\"$HOME/bin:$PATH\"\n")

	violations, err := ScanHardcodedPaths(path)
	require.NoError(t, err)
	assert.Empty(t, violations)
}
