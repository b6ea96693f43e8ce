package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"refdex/internal/config"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the SQLite cache from the JSONL entries file",
	Args:  cobra.NoArgs,
	RunE:  runRebuild,
}

// RebuildResult reports the outcome of a cache rebuild.
type RebuildResult struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()

	db := mustOpenDatabase(root)
	defer db.Close()

	n, err := db.RebuildFromJSONL(config.EntriesPath(root))
	if err != nil {
		exitWithError(ExitError, "rebuilding cache: %v", err)
	}

	if humanOutput {
		fmt.Printf("Rebuilt cache with %d entries\n", n)
	} else {
		outputJSON(RebuildResult{Status: "rebuilt", Entries: n})
	}
	return nil
}
