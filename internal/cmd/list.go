package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotstrap/dotstrap/internal/link"
	"github.com/dotstrap/dotstrap/internal/output"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"status"},
		Short:   "List managed links and their current status",
		Long: `List shows every declared link with its live filesystem status:
whether the target is linked, absent, occupied, broken, or pointing elsewhere.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}

	return cmd
}

func runList() error {
	entries, _, err := loadEntries()
	if err != nil {
		return err
	}

	infos := link.Inspect(entries)

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	if format != output.FormatText {
		writer := output.NewWriter(os.Stdout, format)
		return writer.Write(infos)
	}

	for _, info := range infos {
		detail := ""
		if info.Detail != "" {
			detail = fmt.Sprintf(" (%s)", info.Detail)
		}
		fmt.Printf("%-7s %-22s %s%s\n", info.Status.Label(), info.Entry.Key, info.Entry.Summary(), detail)
	}

	return nil
}
