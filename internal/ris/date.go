package ris

import (
	"strconv"
	"strings"

	"refdex/internal/bib"
)

// dateTags lists the date-bearing tags from highest to lowest priority.
var dateTags = []string{"Y1", "PY", "DA", "Y2"}

func isDateTag(tag string) bool {
	return dateTagPriority(tag) != -1
}

func dateTagPriority(tag string) int {
	for i, t := range dateTags {
		if t == tag {
			return i
		}
	}
	return -1
}

// dateResolver selects the single most authoritative date found in a
// record. A candidate from a higher-priority tag whose leading four
// characters parse as a year replaces the current best; one whose year
// does not parse is kept only as a bare-year fallback, used when no
// candidate ever parses.
type dateResolver struct {
	tag      string
	value    string
	priority int
	fallback string
}

func newDateResolver() dateResolver {
	return dateResolver{priority: len(dateTags)}
}

// consider feeds one date-tag line into the resolver. The caller
// guarantees len(value) >= 4.
func (d *dateResolver) consider(tag, value string) {
	p := dateTagPriority(tag)
	if p >= d.priority {
		// Lower-or-equal priority never overrides an existing best.
		return
	}

	year := value[:4]
	if isYear(year) {
		d.tag = tag
		d.value = value
		d.priority = p
	} else {
		d.fallback = year
	}
}

// resolve returns the final year string and month. The best date's value
// splits on "/": the first segment supplies the year, the second (when
// present) a numeric month. Unparsable or out-of-range months are
// ignored. With no best date, the bare-year fallback applies and no
// month is set.
func (d *dateResolver) resolve() (string, bib.Month) {
	if d.tag == "" {
		return d.fallback, 0
	}

	year := d.value[:4]

	parts := strings.Split(d.value, "/")
	if len(parts) > 1 && parts[1] != "" {
		if n, err := strconv.Atoi(parts[1]); err == nil {
			if m, ok := bib.MonthByNumber(n); ok {
				return year, m
			}
		}
	}
	return year, 0
}

// isYear reports whether s is exactly four decimal digits.
func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
