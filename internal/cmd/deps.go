package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotstrap/dotstrap/internal/deps"
	"github.com/dotstrap/dotstrap/internal/report"
)

func newDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps [rc-file]",
		Short: "Check declared dependencies referenced by your shell rc file",
		Long: `Deps probes every declared dependency check, skipping checks whose
pattern is not referenced by the rc file (./.zshrc or ~/.zshrc by default).

Exits 1 when any referenced dependency is missing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit := ""
			if len(args) == 1 {
				explicit = args[0]
			}
			return runDeps(explicit)
		},
	}

	return cmd
}

func runDeps(explicit string) error {
	rcPath, err := deps.FindRCFile(explicit)
	if err != nil {
		return err
	}

	manifest, err := loadManifest()
	if err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to determine home directory: %w", err)
	}
	checks := manifest.DepChecks(home)

	fmt.Printf("Checking dependencies from: %s\n", rcPath)

	ok, missing, skipped := 0, 0, 0
	for _, check := range deps.SortByLabel(checks) {
		referenced, err := deps.Referenced(check, rcPath)
		if err != nil {
			return err
		}
		if !referenced {
			skipped++
			fmt.Println(report.Line(report.TokenSkip, check.Label, "not referenced in rc file"))
			continue
		}

		summary := fmt.Sprintf("%s: %s", check.Kind, check.Target)
		if deps.Probe(check) {
			ok++
			fmt.Println(report.Line(report.TokenOK, check.Label, summary))
		} else {
			missing++
			fmt.Println(report.Line(report.TokenMissing, check.Label, summary))
		}
	}

	fmt.Println()
	fmt.Printf("Summary: ok=%d missing=%d skipped=%d\n", ok, missing, skipped)

	if missing > 0 {
		os.Exit(report.ExitVerify)
	}
	return nil
}
