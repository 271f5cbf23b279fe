package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotstrap/dotstrap/internal/config"
	"github.com/dotstrap/dotstrap/internal/deps"
	"github.com/dotstrap/dotstrap/internal/link"
	"github.com/dotstrap/dotstrap/internal/pathutil"
	"github.com/dotstrap/dotstrap/internal/report"
	"github.com/dotstrap/dotstrap/internal/types"
)

func newVerifyCmd() *cobra.Command {
	var rcFile string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run all verification checks on your environment",
		Long: `Verify audits the environment against the manifest: symlink health,
declared dependencies, manifest structure, and hardcoded home paths.

Every problem is reported; the command exits non-zero if any check fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(rcFile)
		},
	}

	cmd.Flags().StringVar(&rcFile, "rc-file", "", "Shell rc file to scan for hardcoded paths (default: repo .zshrc)")

	return cmd
}

func runVerify(rcFile string) error {
	manifest, err := loadManifest()
	if err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to determine home directory: %w", err)
	}

	r := report.NewReporter(os.Stdout)

	verifyLinks(r, manifest.Entries(home))
	verifyDeps(r, manifest.DepChecks(home))
	verifyManifest(r, manifest.Path)
	verifyHardcodedPaths(r, manifest, rcFile, home)

	r.Summary()
	if code := r.ExitCode(); code != 0 {
		os.Exit(code)
	}
	return nil
}

// verifyLinks reports one line per managed entry: OK when linked, FAIL when
// the repository side is missing, DRIFT when the home side is wrong.
func verifyLinks(r *report.Reporter, entries []link.Entry) {
	r.Section("Symlink health")
	for _, entry := range entries {
		status, detail := link.Classify(entry)
		switch status {
		case types.StatusLinked:
			r.Pass(entry.Key, detail)
		case types.StatusMissingSource:
			r.Failure(report.TokenFail, entry.Key, fmt.Sprintf("%s: %s", status.Label(), detail))
		default:
			r.Failure(report.TokenDrift, entry.Key, fmt.Sprintf("%s: %s", status.Label(), detail))
		}
	}
	r.Blank()
}

// verifyDeps probes each declared dependency in case-insensitive label
// order, annotating failures with who requires it and where to install it.
func verifyDeps(r *report.Reporter, checks []deps.Check) {
	r.Section("Dependencies")

	requiredBy := deps.RequiredBy(checks)

	for _, check := range deps.SortByLabel(checks) {
		summary := fmt.Sprintf("%s: %s", check.Kind, check.Target)
		if deps.Probe(check) {
			r.Pass(check.Label, summary)
			continue
		}

		var hints []string
		if dependents, ok := requiredBy[check.Label]; ok {
			hints = append(hints, "required by: "+strings.Join(dependents, ", "))
		}
		if check.Install != "" {
			hints = append(hints, "install: "+check.Install)
		}
		if len(hints) > 0 {
			summary += fmt.Sprintf(" (%s)", strings.Join(hints, ", "))
		}
		r.Failure(report.TokenMissing, check.Label, summary)
	}
	r.Blank()
}

// verifyManifest re-reads the manifest in raw form and runs the schema
// validator plus graph validation, accumulating every violation.
func verifyManifest(r *report.Reporter, path string) {
	r.Section("Manifest validation")

	var errors []string

	raw, err := config.LoadRaw(path)
	if err != nil {
		errors = append(errors, fmt.Sprintf("cannot load %s: %v", pathutil.Display(path), err))
	} else {
		errors = config.ManifestSchema().Validate(raw)

		// Graph validation only makes sense on a structurally sound document.
		if len(errors) == 0 {
			if manifest, err := config.Load(path); err == nil {
				home, _ := os.UserHomeDir()
				errors = append(errors, deps.ValidateGraph(manifest.DepChecks(home))...)
			}
		}
	}

	if len(errors) == 0 {
		r.Pass("", pathutil.Display(path))
	} else {
		for _, e := range errors {
			r.Failure(report.TokenFail, "", e)
		}
	}
	r.Blank()
}

// verifyHardcodedPaths scans the rc file for literal /Users/... or
// /home/... paths. The section is skipped when no rc file exists.
func verifyHardcodedPaths(r *report.Reporter, manifest *config.Manifest, rcFile, home string) {
	path := rcFile
	if path == "" {
		candidate := manifest.ResolveRoot(home) + string(os.PathSeparator) + ".zshrc"
		if _, err := os.Stat(candidate); err != nil {
			return
		}
		path = candidate
	}

	r.Section("Hardcoded home paths")

	violations, err := deps.ScanHardcodedPaths(path)
	if err != nil {
		r.Failure(report.TokenFail, "", err.Error())
		r.Blank()
		return
	}

	if len(violations) == 0 {
		r.Pass("", "no hardcoded paths found")
	} else {
		for _, v := range violations {
			r.Failure(report.TokenFail, "", fmt.Sprintf("%s:%d: %s", pathutil.Display(path), v.Line, v.Text))
		}
	}
	r.Blank()
}
