// Package main provides the refdex CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"refdex/internal/config"
	"refdex/internal/storage"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "refdex",
	Short: "Import RIS bibliographic exports into a local reference library",
	Long: `refdex imports RIS-formatted bibliographic data into a local,
git-versionable reference library.

Core features:
  - Tolerant RIS decoding (wrapped lines, duplicate tags, sloppy dates)
  - DOI-based deduplication against the stored library
  - DOI backfill from a local PDF
  - Full-text search over an ephemeral SQLite cache

Data is stored in JSONL with SQLite used only as a rebuildable query
cache. All commands output JSON by default for scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Best-effort .env load so XDG_CONFIG_HOME etc. can be pinned
	// per-project.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// getStartingDirectory returns the directory to start searching for a
// library. Checks global config library_path first, then the current
// working directory.
func getStartingDirectory() (string, int) {
	if root := config.GetLibraryPath(); root != "" {
		return root, 0
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}
	return cwd, 0
}

// mustFindLibrary finds and validates the library, exits on error.
// Returns the library root path.
func mustFindLibrary() string {
	start, exitCode := getStartingDirectory()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	root, err := config.FindLibrary(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, config.HelpfulConfigMessage())
		os.Exit(ExitConfigError)
	}
	return root
}

// mustOpenDatabase opens the SQLite cache, exits on error.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenDatabase(root string) *storage.DB {
	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}
