package storage

import (
	"os"
	"path/filepath"
	"testing"

	"refdex/internal/bib"
)

func testEntry(t bib.EntryType, title, doiStr string) *bib.Entry {
	e := bib.New(t)
	e.SetField(bib.FieldTitle, title)
	e.SetField(bib.FieldDOI, doiStr)
	return e
}

func TestReadAll_NonExistentFile(t *testing.T) {
	entries, err := ReadAll(filepath.Join(t.TempDir(), "entries.jsonl"))
	if err != nil {
		t.Fatalf("ReadAll() error = %v (missing file should read as empty)", err)
	}
	if len(entries) != 0 {
		t.Errorf("ReadAll() returned %d entries, want 0", len(entries))
	}
}

func TestReadAll_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.jsonl")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	entries, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("ReadAll() returned %d entries, want 0", len(entries))
	}
}

func TestWriteAllAndReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.jsonl")

	in := []*bib.Entry{
		testEntry(bib.Article, "First Paper", "10.1234/one"),
		testEntry(bib.Book, "Second Book", ""),
	}
	in[0].SetMonth(bib.May)

	if err := WriteAll(path, in); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	out, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("ReadAll() returned %d entries, want 2", len(out))
	}

	if out[0].Type != bib.Article || out[0].Field(bib.FieldTitle) != "First Paper" {
		t.Errorf("entry 0 = %q %q", out[0].Type, out[0].Field(bib.FieldTitle))
	}
	if out[0].Month != bib.May {
		t.Errorf("entry 0 month = %v, want %v", out[0].Month, bib.May)
	}
	if out[1].Type != bib.Book || out[1].Field(bib.FieldTitle) != "Second Book" {
		t.Errorf("entry 1 = %q %q", out[1].Type, out[1].Field(bib.FieldTitle))
	}
}

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.jsonl")

	if err := Append(path, []*bib.Entry{testEntry(bib.Article, "One", "")}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := Append(path, []*bib.Entry{testEntry(bib.Misc, "Two", "")}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	entries, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadAll() returned %d entries, want 2", len(entries))
	}
	if entries[1].Field(bib.FieldTitle) != "Two" {
		t.Errorf("entry 1 title = %q, want Two", entries[1].Field(bib.FieldTitle))
	}
}

func TestFindByDOI(t *testing.T) {
	entries := []*bib.Entry{
		testEntry(bib.Article, "One", "10.1234/one"),
		testEntry(bib.Article, "Two", ""),
		testEntry(bib.Article, "Three", "10.1234/THREE"),
	}

	tests := []struct {
		name    string
		doi     string
		wantIdx int
		found   bool
	}{
		{"exact match", "10.1234/one", 0, true},
		{"case-insensitive match", "10.1234/three", 2, true},
		{"resolver prefix stripped", "https://doi.org/10.1234/one", 0, true},
		{"no match", "10.9999/nope", -1, false},
		{"empty DOI never matches", "", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, found := FindByDOI(entries, tt.doi)
			if idx != tt.wantIdx || found != tt.found {
				t.Errorf("FindByDOI(%q) = (%d, %v), want (%d, %v)", tt.doi, idx, found, tt.wantIdx, tt.found)
			}
		})
	}
}
