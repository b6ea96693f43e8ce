// Package doi parses and normalizes Digital Object Identifiers.
package doi

import (
	"regexp"
	"strings"
)

// DOI pattern: 10.XXXX/... where XXXX is 4+ digits
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// Parse extracts a DOI from a raw string. The string may be a bare DOI,
// a doi.org URL, a "doi:"-prefixed value, or arbitrary text containing a
// DOI. Malformed input returns ("", false), never an error.
func Parse(s string) (string, bool) {
	match := doiPattern.FindString(stripPrefixes(s))
	if match == "" {
		return "", false
	}

	// Remove trailing punctuation picked up by the pattern
	match = strings.TrimRight(match, ".,;:)")
	if !valid(match) {
		return "", false
	}
	return match, true
}

// Normalize returns a canonical lowercase form for comparing DOIs.
// Returns "" for input that does not contain a DOI.
func Normalize(s string) string {
	d, ok := Parse(s)
	if !ok {
		return ""
	}
	return strings.ToLower(d)
}

// stripPrefixes removes common resolver prefixes like "https://doi.org/".
func stripPrefixes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "https://doi.org/")
	s = strings.TrimPrefix(s, "http://doi.org/")
	s = strings.TrimPrefix(s, "doi.org/")
	s = strings.TrimPrefix(s, "DOI:")
	s = strings.TrimPrefix(s, "doi:")
	return strings.TrimSpace(s)
}

// valid performs basic shape validation on a DOI candidate.
func valid(d string) bool {
	if len(d) < 10 {
		return false
	}
	if !strings.HasPrefix(d, "10.") {
		return false
	}
	slash := strings.Index(d, "/")
	return slash != -1 && slash < len(d)-1
}
