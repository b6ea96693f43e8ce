// Package bib defines the bibliographic entry model produced by importers.
package bib

import "strings"

// EntryType identifies the kind of bibliographic entry.
type EntryType string

// Entry types understood by the library. Misc is the fallback for
// anything an importer cannot classify.
const (
	Misc          EntryType = "misc"
	Article       EntryType = "article"
	Book          EntryType = "book"
	PhdThesis     EntryType = "phdthesis"
	Unpublished   EntryType = "unpublished"
	TechReport    EntryType = "techreport"
	InProceedings EntryType = "inproceedings"
	InCollection  EntryType = "incollection"
	Patent        EntryType = "patent"
)

// Entry represents a single bibliographic record: an entry type plus a
// map of non-empty field values. The month is kept separately from the
// field map because it is a structured value, not free text.
type Entry struct {
	Type   EntryType        `json:"type"`
	Fields map[Field]string `json:"fields"`
	Month  Month            `json:"month,omitempty"` // 0 if unknown
}

// New creates an empty entry of the given type.
func New(t EntryType) *Entry {
	return &Entry{Type: t, Fields: make(map[Field]string)}
}

// SetField stores a field value. Blank values are dropped, so the field
// map only ever holds meaningful content.
func (e *Entry) SetField(f Field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if e.Fields == nil {
		e.Fields = make(map[Field]string)
	}
	e.Fields[f] = value
}

// Field returns the value stored under f, or "" if unset.
func (e *Entry) Field(f Field) string {
	return e.Fields[f]
}

// SetMonth attaches a resolved publication month to the entry.
func (e *Entry) SetMonth(m Month) {
	e.Month = m
}
