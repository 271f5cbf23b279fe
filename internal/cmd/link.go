package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotstrap/dotstrap/internal/interactive"
	"github.com/dotstrap/dotstrap/internal/link"
	"github.com/dotstrap/dotstrap/internal/output"
	"github.com/dotstrap/dotstrap/internal/report"
	"github.com/dotstrap/dotstrap/internal/types"
)

func newLinkCmd() *cobra.Command {
	var (
		allTargets bool
		mode       string
		dryRun     bool
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "link [keys...]",
		Short: "Link selected targets into the home directory",
		Long: `Link creates symlinks from your home directory into the dotfiles
repository for the selected keys.

Existing targets are handled per --mode:
  safe    never touch an existing target (default)
  backup  rename the existing target to a timestamped sibling first
  force   delete the existing target first

Modes other than safe prompt for confirmation unless --yes or --dry-run
is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLink(args, allTargets, mode, dryRun, yes)
		},
	}

	cmd.Flags().BoolVar(&allTargets, "all", false, "Link all declared targets")
	cmd.Flags().StringVar(&mode, "mode", "safe", "How to handle existing targets: safe, backup, force")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview actions without touching the filesystem")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmations")

	_ = cmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"safe", "backup", "force"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runLink(keys []string, allTargets bool, mode string, dryRun, yes bool) error {
	if len(keys) == 0 && !allTargets {
		return fmt.Errorf("no targets specified (use --all or name keys; see 'list')")
	}

	policy, err := types.ParseReplacePolicy(mode)
	if err != nil {
		return err
	}

	entries, _, err := loadEntries()
	if err != nil {
		return err
	}

	selected, err := resolveKeys(entries, keys, allTargets)
	if err != nil {
		return err
	}

	prompter := interactive.NewPrompter()
	if !prompter.ConfirmPolicy(policy, dryRun, yes) {
		fmt.Println("Aborted.")
		os.Exit(1)
	}

	result := link.Apply(selected, link.Options{Policy: policy, DryRun: dryRun})

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	if format != output.FormatText {
		writer := output.NewWriter(os.Stdout, format)
		if err := writer.Write(result); err != nil {
			return err
		}
	} else {
		for _, outcome := range result.Outcomes {
			report.WriteOutcome(os.Stdout, outcome, dryRun)
		}
	}

	if result.Failed() {
		os.Exit(report.ExitUsage)
	}

	return nil
}
