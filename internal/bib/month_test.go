package bib

import "testing"

func TestMonthByNumber(t *testing.T) {
	tests := []struct {
		n    int
		want Month
		ok   bool
	}{
		{1, January, true},
		{5, May, true},
		{12, December, true},
		{0, 0, false},
		{13, 0, false},
		{-1, 0, false},
	}

	for _, tt := range tests {
		got, ok := MonthByNumber(tt.n)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MonthByNumber(%d) = (%v, %v), want (%v, %v)", tt.n, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMonthString(t *testing.T) {
	if got := May.String(); got != "May" {
		t.Errorf("May.String() = %q, want May", got)
	}
	if got := Month(0).String(); got != "" {
		t.Errorf("Month(0).String() = %q, want empty", got)
	}
}

func TestMonthAbbrev(t *testing.T) {
	tests := []struct {
		m    Month
		want string
	}{
		{January, "jan"},
		{May, "may"},
		{September, "sep"},
		{December, "dec"},
		{Month(0), ""},
	}

	for _, tt := range tests {
		if got := tt.m.Abbrev(); got != tt.want {
			t.Errorf("%v.Abbrev() = %q, want %q", tt.m, got, tt.want)
		}
	}
}
