package bib

import "testing"

func TestNormalizeAuthorsLastFirst(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"already last-first passes through",
			"Smith, J and Doe, A",
			"Smith, J and Doe, A",
		},
		{
			"first-last reordered",
			"John Smith",
			"Smith, John",
		},
		{
			"middle names stay with given name",
			"Timothy C Yu",
			"Yu, Timothy C",
		},
		{
			"mixed list",
			"John Smith and Doe, A and Ada Lovelace",
			"Smith, John and Doe, A and Lovelace, Ada",
		},
		{
			"single token unchanged",
			"Aristotle",
			"Aristotle",
		},
		{
			"surrounding whitespace trimmed",
			"  John Smith  ",
			"Smith, John",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAuthorsLastFirst(tt.in); got != tt.want {
				t.Errorf("NormalizeAuthorsLastFirst(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
