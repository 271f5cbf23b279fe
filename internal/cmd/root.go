// Package cmd wires the dotstrap command tree.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dotstrap/dotstrap/internal/logging"
)

var (
	// Global flags
	outputFormat string
	manifestPath string
	verbosity    int
	quiet        bool
)

// dotstrapVersion is set from main at startup.
var dotstrapVersion = "dev"

// SetVersion sets the version reported by the version command.
func SetVersion(version string) {
	dotstrapVersion = version
}

func Execute(version, commit, date string) error {
	SetVersion(version)

	rootCmd := &cobra.Command{
		Use:   "dotstrap",
		Short: "Declarative dotfile linking and environment verification",
		Long: `dotstrap reconciles a declared set of dotfiles against your home directory
via symlinks, and verifies declared environment dependencies.

Declare links and checks in a manifest, then run 'dotstrap link' to apply
and 'dotstrap verify' to audit the result.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity, quiet)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, yaml")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "config", "", "Path to manifest")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newLinkCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newDepsCmd())
	rootCmd.AddCommand(newBackupsCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Register completion function for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return rootCmd.Execute()
}
