package main

import (
	"encoding/json"
	"fmt"
	"os"

	"refdex/internal/bib"
)

// Constants for output formatting.
const (
	DefaultListLimit = 50 // Default limit for list/search commands

	ImportTitleMaxLen = 60 // Used in import command output
	ListTitleMaxLen   = 70 // Used in list/search command output
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError outputs an error in the appropriate format (human or
// JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// EntrySummary is the JSON shape of one entry in list/search output.
type EntrySummary struct {
	ID     int    `json:"id,omitempty"`
	Type   string `json:"type"`
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
	Year   string `json:"year,omitempty"`
	DOI    string `json:"doi,omitempty"`
}

// entrySummary builds the list/search view of an entry. id is 1-based;
// pass 0 to omit it.
func entrySummary(id int, e *bib.Entry) EntrySummary {
	return EntrySummary{
		ID:     id,
		Type:   string(e.Type),
		Title:  e.Field(bib.FieldTitle),
		Author: e.Field(bib.FieldAuthor),
		Year:   e.Field(bib.FieldYear),
		DOI:    e.Field(bib.FieldDOI),
	}
}

// printEntryHuman prints one entry in human-readable list format.
func printEntryHuman(s EntrySummary) {
	title := s.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Printf("%d. [%s] %s\n", s.ID, s.Type, truncateString(title, ListTitleMaxLen))
	if s.Author != "" || s.Year != "" {
		fmt.Printf("   %s (%s)\n", s.Author, s.Year)
	}
	if s.DOI != "" {
		fmt.Printf("   doi: %s\n", s.DOI)
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
