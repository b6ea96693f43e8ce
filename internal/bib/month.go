package bib

// Month is a publication month, 1 (January) through 12 (December).
// The zero value means the month is unknown.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthByNumber returns the month for a 1-12 number. Out-of-range
// numbers return false, never an error.
func MonthByNumber(n int) (Month, bool) {
	if n < 1 || n > 12 {
		return 0, false
	}
	return Month(n), true
}

// Valid reports whether m is a real month.
func (m Month) Valid() bool {
	return m >= January && m <= December
}

// String returns the full English month name, or "" for the zero value.
func (m Month) String() string {
	if !m.Valid() {
		return ""
	}
	return monthNames[m-1]
}

// Abbrev returns the three-letter lowercase token used by BibTeX
// (jan, feb, ...), or "" for the zero value.
func (m Month) Abbrev() string {
	if !m.Valid() {
		return ""
	}
	name := monthNames[m-1]
	return string(name[0]|0x20) + name[1:3]
}
