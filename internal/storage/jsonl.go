// Package storage handles entry persistence in JSONL and SQLite formats.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"refdex/internal/bib"
	"refdex/internal/doi"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL
// lines (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// ReadAll reads all entries from a JSONL file.
func ReadAll(path string) ([]*bib.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Missing file reads as an empty library
		}
		return nil, fmt.Errorf("opening entries file: %w", err)
	}
	defer f.Close()

	var entries []*bib.Entry
	scanner := bufio.NewScanner(f)

	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry bib.Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		entries = append(entries, &entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading entries file: %w", err)
	}

	return entries, nil
}

// WriteAll writes all entries to a JSONL file, replacing existing content.
func WriteAll(path string, entries []*bib.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating entries file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("encoding entry %d: %w", i, err)
		}

		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}

	return w.Flush()
}

// Append adds entries to the end of a JSONL file.
func Append(path string, entries []*bib.Entry) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening entries file for append: %w", err)
	}
	defer f.Close()

	for i, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("encoding entry %d: %w", i, err)
		}

		if _, err := f.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return nil
}

// FindByDOI searches for an entry by DOI. Comparison is on normalized
// DOI form, so resolver prefixes and case differences do not matter.
func FindByDOI(entries []*bib.Entry, rawDOI string) (int, bool) {
	want := doi.Normalize(rawDOI)
	if want == "" {
		return -1, false
	}
	for i, entry := range entries {
		if doi.Normalize(entry.Field(bib.FieldDOI)) == want {
			return i, true
		}
	}
	return -1, false
}
