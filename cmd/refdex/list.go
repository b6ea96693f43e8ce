package main

import (
	"github.com/spf13/cobra"

	"refdex/internal/config"
	"refdex/internal/storage"
)

var listLimit int

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", DefaultListLimit, "Maximum number of entries to show")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored entries",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()

	entries, err := storage.ReadAll(config.EntriesPath(root))
	if err != nil {
		exitWithError(ExitDataError, "reading entries: %v", err)
	}

	if listLimit > 0 && len(entries) > listLimit {
		entries = entries[:listLimit]
	}

	summaries := make([]EntrySummary, len(entries))
	for i, entry := range entries {
		summaries[i] = entrySummary(i+1, entry)
	}

	if humanOutput {
		for _, s := range summaries {
			printEntryHuman(s)
		}
	} else {
		outputJSON(summaries)
	}
	return nil
}
