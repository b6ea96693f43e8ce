package ris

import (
	"testing"

	"refdex/internal/bib"
)

func TestParse_DateYearAndMonth(t *testing.T) {
	entry := parseOne(t, "TY  - JOUR\nPY  - 1999/05\nER  - \n")
	if got := entry.Field(bib.FieldYear); got != "1999" {
		t.Errorf("year = %q, want %q", got, "1999")
	}
	if entry.Month != bib.May {
		t.Errorf("month = %v, want %v", entry.Month, bib.May)
	}
}

func TestParse_DatePriority(t *testing.T) {
	tests := []struct {
		name  string
		lines string
		want  string
	}{
		{
			"Y1 overrides PY regardless of order",
			"PY  - 1999\nY1  - 2001\n",
			"2001",
		},
		{
			"Y2 never overrides PY",
			"PY  - 1999\nY2  - 2003\n",
			"1999",
		},
		{
			"equal priority keeps first",
			"PY  - 1999\nPY  - 2005\n",
			"1999",
		},
		{
			"DA used when nothing better",
			"Y2  - 2003\nDA  - 1987/11/23\n",
			"1987",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := parseOne(t, "TY  - JOUR\n"+tt.lines+"ER  - \n")
			if got := entry.Field(bib.FieldYear); got != tt.want {
				t.Errorf("year = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_DateUnparsableYearFallback(t *testing.T) {
	entry := parseOne(t, "TY  - JOUR\nDA  - abcd/05\nER  - \n")
	if got := entry.Field(bib.FieldYear); got != "abcd" {
		t.Errorf("year = %q, want bare fallback %q", got, "abcd")
	}
	if entry.Month != 0 {
		t.Errorf("month = %v, want unset (fallback carries no month)", entry.Month)
	}
}

func TestParse_DateParsableBeatsFallback(t *testing.T) {
	// An unparsable higher-priority candidate leaves only a fallback,
	// which a parsable lower-priority candidate then displaces.
	entry := parseOne(t, "TY  - JOUR\nY1  - abcd\nPY  - 1999/05\nER  - \n")
	if got := entry.Field(bib.FieldYear); got != "1999" {
		t.Errorf("year = %q, want %q", got, "1999")
	}
	if entry.Month != bib.May {
		t.Errorf("month = %v, want %v", entry.Month, bib.May)
	}
}

func TestParse_DateShortValueIgnored(t *testing.T) {
	entry := parseOne(t, "TY  - JOUR\nPY  - 99\nER  - \n")
	if got := entry.Field(bib.FieldYear); got != "" {
		t.Errorf("year = %q, want empty (value shorter than 4 chars)", got)
	}
}

func TestParse_DateMonthEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		year  string
		month bib.Month
	}{
		{"year only", "PY  - 1999\n", "1999", 0},
		{"trailing slash, empty month", "PY  - 1999//\n", "1999", 0},
		{"unparsable month ignored", "PY  - 1999/May\n", "1999", 0},
		{"out-of-range month ignored", "PY  - 1999/13\n", "1999", 0},
		{"day segment ignored", "DA  - 2010/07/15\n", "2010", bib.July},
		{"zero-padded month", "Y1  - 2010/07\n", "2010", bib.July},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := parseOne(t, "TY  - JOUR\n"+tt.line+"ER  - \n")
			if got := entry.Field(bib.FieldYear); got != tt.year {
				t.Errorf("year = %q, want %q", got, tt.year)
			}
			if entry.Month != tt.month {
				t.Errorf("month = %v, want %v", entry.Month, tt.month)
			}
		})
	}
}

func TestDateTagPriority(t *testing.T) {
	for i, tag := range []string{"Y1", "PY", "DA", "Y2"} {
		if got := dateTagPriority(tag); got != i {
			t.Errorf("dateTagPriority(%q) = %d, want %d", tag, got, i)
		}
	}
	if got := dateTagPriority("KW"); got != -1 {
		t.Errorf("dateTagPriority(KW) = %d, want -1", got)
	}
}

func TestIsYear(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1999", true},
		{"0000", true},
		{"abcd", false},
		{"19a9", false},
		{"-123", false},
		{" 199", false},
	}
	for _, tt := range tests {
		if got := isYear(tt.in); got != tt.want {
			t.Errorf("isYear(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
