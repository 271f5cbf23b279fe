package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotstrap/dotstrap/internal/link"
	"github.com/dotstrap/dotstrap/internal/output"
	"github.com/dotstrap/dotstrap/internal/pathutil"
)

// DefaultKeepCount is how many backups per target prune retains.
const DefaultKeepCount = 3

func newBackupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backups",
		Short: "Manage timestamped backups created by backup mode",
		Long: `Backups lists and prunes the <target>.bak.<timestamp> siblings that
'link --mode backup' leaves next to replaced targets.`,
	}

	cmd.AddCommand(newBackupsListCmd())
	cmd.AddCommand(newBackupsPruneCmd())

	return cmd
}

func newBackupsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List backups of managed targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackupsList()
		},
	}
}

func newBackupsPruneCmd() *cobra.Command {
	var keep int
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove old backups, keeping the newest per target",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackupsPrune(keep, dryRun)
		},
	}

	cmd.Flags().IntVar(&keep, "keep", DefaultKeepCount, "Number of backups to keep per target")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be deleted without deleting")

	return cmd
}

func runBackupsList() error {
	entries, _, err := loadEntries()
	if err != nil {
		return err
	}

	backups, err := link.FindBackups(entries)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	if format != output.FormatText {
		writer := output.NewWriter(os.Stdout, format)
		return writer.Write(backups)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KEY\tBACKUP\tMODIFIED\tSIZE")
	for _, b := range backups {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			b.Key,
			pathutil.Display(b.Path),
			time.Unix(b.ModTime, 0).Format("2006-01-02 15:04:05"),
			formatSize(b.Size),
		)
	}
	return w.Flush()
}

func runBackupsPrune(keep int, dryRun bool) error {
	entries, _, err := loadEntries()
	if err != nil {
		return err
	}

	result, err := link.PruneBackups(entries, keep, dryRun)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	if format != output.FormatText {
		writer := output.NewWriter(os.Stdout, format)
		return writer.Write(result)
	}

	if len(result.Deleted) == 0 {
		fmt.Printf("No backups to prune. Keeping %d.\n", result.Kept)
		return nil
	}

	verb := "Pruned"
	if dryRun {
		verb = "Would prune"
	}
	fmt.Printf("%s %d backup(s), keeping %d:\n", verb, len(result.Deleted), result.Kept)
	for _, b := range result.Deleted {
		fmt.Printf("  - %s\n", pathutil.Display(b.Path))
	}
	return nil
}

// formatSize formats a byte size as a human-readable string.
func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
