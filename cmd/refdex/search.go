package main

import (
	"github.com/spf13/cobra"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultListLimit, "Maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over the entry cache",
	Long: `Full-text search over the SQLite entry cache (title, author,
abstract, keywords, year). Run 'refdex rebuild' after importing to
refresh the cache.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()

	db := mustOpenDatabase(root)
	defer db.Close()

	hits, err := db.Search(args[0], searchLimit)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	summaries := make([]EntrySummary, len(hits))
	for i, hit := range hits {
		summaries[i] = entrySummary(hit.ID, hit.Entry)
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
