package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotstrap/dotstrap/internal/link"
	"github.com/dotstrap/dotstrap/internal/style"
)

func init() {
	style.SetEnabled(false)
}

func TestLine(t *testing.T) {
	tests := []struct {
		name  string
		token string
		key   string
		rest  string
		want  string
	}{
		{
			name:  "token key rest",
			token: TokenLinked,
			key:   ".zshrc",
			rest:  "~/dots/.zshrc -> ~/.zshrc",
			want:  "LINKED  .zshrc                 ~/dots/.zshrc -> ~/.zshrc",
		},
		{
			name:  "long token still separated",
			token: TokenMissing,
			key:   ".vimrc",
			rest:  "zsh",
			want:  "MISSING .vimrc                 zsh",
		},
		{
			name:  "keyless line",
			token: TokenDryRun,
			key:   "",
			rest:  "mkdir -p ~/.config",
			want:  "DRYRUN  mkdir -p ~/.config",
		},
		{
			name:  "long key pushes rest right",
			token: TokenOK,
			key:   ".config/very/long/path/name.toml",
			rest:  "ok",
			want:  "OK      .config/very/long/path/name.toml ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Line(tt.token, tt.key, tt.rest))
		})
	}
}

func TestWriteOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome link.Outcome
		dryRun  bool
		want    []string
	}{
		{
			name:    "linked",
			outcome: link.Outcome{Key: ".zshrc", Action: link.ActionLinked, Summary: "a -> b"},
			want:    []string{"LINKED  .zshrc                 a -> b"},
		},
		{
			name:    "skipped",
			outcome: link.Outcome{Key: ".zshrc", Action: link.ActionSkipped, Detail: "already linked"},
			want:    []string{"SKIP    .zshrc                 already linked"},
		},
		{
			name:    "error",
			outcome: link.Outcome{Key: ".zshrc", Action: link.ActionError, Detail: "source missing: ~/dots/.zshrc"},
			want:    []string{"ERROR   .zshrc                 source missing: ~/dots/.zshrc"},
		},
		{
			name: "backup then link",
			outcome: link.Outcome{
				Key: ".zshrc", Action: link.ActionLinked,
				Summary: "a -> b", BackupPath: "/home/u/.zshrc.bak.20260825120000",
			},
			want: []string{
				"BACKUP  .zshrc                 /home/u/.zshrc.bak.20260825120000",
				"LINKED  .zshrc                 a -> b",
			},
		},
		{
			name: "dry run notes precede the action",
			outcome: link.Outcome{
				Key: ".zshrc", Action: link.ActionDryRun,
				Summary: "a -> b", Notes: []string{"mv b b.bak.20260825120000", "ln -s a b"},
			},
			dryRun: true,
			want: []string{
				"DRYRUN  mv b b.bak.20260825120000",
				"DRYRUN  ln -s a b",
				"DRYRUN  .zshrc                 a -> b",
			},
		},
		{
			name: "dry run suppresses the backup line",
			outcome: link.Outcome{
				Key: ".zshrc", Action: link.ActionDryRun,
				Summary: "a -> b", BackupPath: "/home/u/.zshrc.bak.20260825120000",
			},
			dryRun: true,
			want:   []string{"DRYRUN  .zshrc                 a -> b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			WriteOutcome(&buf, tt.outcome, tt.dryRun)

			got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReporterTally(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Section("Links")
	r.Pass(".zshrc", "ok")
	r.Failure(TokenDrift, ".vimrc", "points to /tmp/other")
	r.Failure(TokenMissing, "zsh", "command not found")
	r.Summary()

	assert.Equal(t, 1, r.OK)
	assert.Equal(t, 2, r.Fail)
	assert.Equal(t, ExitVerify, r.ExitCode())

	out := buf.String()
	assert.Contains(t, out, "== Links ==")
	assert.Contains(t, out, "OK      .zshrc                 ok")
	assert.Contains(t, out, "DRIFT   .vimrc                 points to /tmp/other")
	assert.Contains(t, out, "== Summary: 1 ok, 2 fail ==")
}

func TestReporterExitCodeClean(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)
	r.Pass(".zshrc", "ok")

	require.Equal(t, ExitOK, r.ExitCode())
}
