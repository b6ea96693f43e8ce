package bib

import "strings"

// nameSeparator joins individual names in author and editor lists.
const nameSeparator = " and "

// NormalizeAuthorsLastFirst rewrites an " and "-joined name list so that
// every name is in "Last, First" order.
//
// Names that already contain a comma are assumed to be in that order and
// pass through unchanged. Otherwise the final whitespace-separated token
// is taken as the family name and everything before it as the given
// name(s), so "Timothy C Yu" becomes "Yu, Timothy C". Single-token names
// are left as-is.
func NormalizeAuthorsLastFirst(list string) string {
	names := strings.Split(list, nameSeparator)
	for i, name := range names {
		names[i] = normalizeNameLastFirst(name)
	}
	return strings.Join(names, nameSeparator)
}

func normalizeNameLastFirst(name string) string {
	name = strings.TrimSpace(name)
	if strings.Contains(name, ",") {
		return name
	}

	parts := strings.Fields(name)
	if len(parts) <= 1 {
		return name
	}

	last := parts[len(parts)-1]
	first := strings.Join(parts[:len(parts)-1], " ")
	return last + ", " + first
}
