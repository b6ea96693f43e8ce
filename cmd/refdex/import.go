package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"refdex/internal/bib"
	"refdex/internal/config"
	"refdex/internal/pdf"
	"refdex/internal/ris"
	"refdex/internal/storage"
)

var (
	importDryRun  bool
	importPDFPath string
)

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Show what would be imported without writing")
	importCmd.Flags().StringVar(&importPDFPath, "pdf", "", "Backfill a missing DOI from this PDF (single-record imports only)")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.ris>",
	Short: "Import references from an RIS export",
	Long: `Import references from an RIS export.

Usage:
  refdex import export.ris
  refdex import export.ris --dry-run
  refdex import paper.ris --pdf paper.pdf

Decoding never fails on malformed content: unknown tags, bad dates and
garbage lines degrade to best-effort entries. Entries carrying a DOI
already present in the library are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// ImportResult represents the result of an import operation.
type ImportResult struct {
	Added   int            `json:"added"`
	Skipped int            `json:"skipped"`
	Details []ImportDetail `json:"details,omitempty"`
}

// DryRunResult represents the result of a dry-run import.
type DryRunResult struct {
	WouldAdd  int            `json:"would_add"`
	WouldSkip int            `json:"would_skip"`
	Details   []ImportDetail `json:"details,omitempty"`
}

// ImportDetail describes a single import action.
type ImportDetail struct {
	Action string `json:"action"` // add, skip
	Title  string `json:"title"`
	Reason string `json:"reason,omitempty"`
}

// importStats tracks import operation counts.
type importStats struct {
	added   int
	skipped int
}

func runImport(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()

	newEntries := parseImportFile(args[0])

	if importPDFPath != "" {
		backfillDOI(newEntries, importPDFPath)
	}

	entriesPath := config.EntriesPath(root)
	existing, err := storage.ReadAll(entriesPath)
	if err != nil {
		exitWithError(ExitDataError, "reading existing entries: %v", err)
	}

	stats, details, toAdd := processImports(newEntries, existing)

	if importDryRun {
		reportDryRun(stats, details)
		return nil
	}

	if err := storage.Append(entriesPath, toAdd); err != nil {
		exitWithError(ExitError, "writing entries: %v", err)
	}

	reportImportResults(stats, details)
	return nil
}

// parseImportFile reads and decodes the RIS file.
func parseImportFile(path string) []*bib.Entry {
	f, err := os.Open(path)
	if err != nil {
		exitWithError(ExitError, "opening file: %v", err)
	}
	defer f.Close()

	entries, err := ris.Parse(f)
	if err != nil {
		exitWithError(ExitError, "reading file: %v", err)
	}
	return entries
}

// backfillDOI fills a missing DOI from a local PDF. Only meaningful for
// single-record imports; anything else is rejected rather than guessing
// which record the PDF belongs to.
func backfillDOI(entries []*bib.Entry, pdfPath string) {
	if len(entries) != 1 {
		exitWithError(ExitError, "--pdf requires a single-record import, got %d records", len(entries))
	}
	entry := entries[0]
	if entry.Field(bib.FieldDOI) != "" {
		return
	}

	d, err := pdf.ExtractDOI(pdfPath)
	if err != nil {
		exitWithError(ExitError, "reading PDF: %v", err)
	}
	if d != "" {
		entry.SetField(bib.FieldDOI, d)
	}
}

// processImports classifies each decoded entry against the library.
// The working set grows as entries are accepted, so a DOI duplicated
// within one import batch is only added once.
func processImports(newEntries, existing []*bib.Entry) (importStats, []ImportDetail, []*bib.Entry) {
	working := make([]*bib.Entry, len(existing))
	copy(working, existing)

	var stats importStats
	var details []ImportDetail
	var toAdd []*bib.Entry

	for _, entry := range newEntries {
		action, reason := classifyImport(working, entry)

		if action == "add" {
			toAdd = append(toAdd, entry)
			working = append(working, entry)
			stats.added++
		} else {
			stats.skipped++
		}

		details = append(details, ImportDetail{
			Action: action,
			Title:  truncateString(entry.Field(bib.FieldTitle), ImportTitleMaxLen),
			Reason: reason,
		})
	}

	return stats, details, toAdd
}

// classifyImport determines what to do with a decoded entry. Entries
// whose DOI already exists in the working set are skipped; entries
// without a DOI are always added (content-based deduplication is out of
// scope for the decoder).
func classifyImport(existing []*bib.Entry, entry *bib.Entry) (action, reason string) {
	d := entry.Field(bib.FieldDOI)
	if d == "" {
		return "add", "no_doi"
	}
	if _, found := storage.FindByDOI(existing, d); found {
		return "skip", "doi_match"
	}
	return "add", ""
}

// reportDryRun outputs the dry-run results.
func reportDryRun(stats importStats, details []ImportDetail) {
	if humanOutput {
		fmt.Println("Dry run - would import from RIS export...")
		fmt.Printf("  Would add:  %d new entries\n", stats.added)
		fmt.Printf("  Would skip: %d duplicates (matched by DOI)\n", stats.skipped)
	} else {
		outputJSON(DryRunResult{
			WouldAdd:  stats.added,
			WouldSkip: stats.skipped,
			Details:   details,
		})
	}
}

// reportImportResults outputs the actual import results.
func reportImportResults(stats importStats, details []ImportDetail) {
	if humanOutput {
		fmt.Println("Imported from RIS export:")
		fmt.Printf("  Added:   %d new entries\n", stats.added)
		fmt.Printf("  Skipped: %d duplicates (matched by DOI)\n", stats.skipped)
	} else {
		outputJSON(ImportResult{
			Added:   stats.added,
			Skipped: stats.skipped,
			Details: details,
		})
	}
}
