package bib

import (
	"encoding/json"
	"testing"
)

func TestSetField_DropsBlankValues(t *testing.T) {
	e := New(Article)
	e.SetField(FieldTitle, "A Title")
	e.SetField(FieldJournal, "")
	e.SetField(FieldVolume, "   ")

	if len(e.Fields) != 1 {
		t.Errorf("Fields = %v, want only title", e.Fields)
	}
	if got := e.Field(FieldTitle); got != "A Title" {
		t.Errorf("title = %q, want %q", got, "A Title")
	}
}

func TestEntry_JSONRoundTrip(t *testing.T) {
	e := New(InProceedings)
	e.SetField(FieldTitle, "Paper")
	e.SetField(FieldYear, "1999")
	e.SetMonth(May)

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got Entry
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.Type != InProceedings {
		t.Errorf("Type = %q, want %q", got.Type, InProceedings)
	}
	if got.Month != May {
		t.Errorf("Month = %v, want %v", got.Month, May)
	}
	if got.Field(FieldTitle) != "Paper" || got.Field(FieldYear) != "1999" {
		t.Errorf("Fields = %v", got.Fields)
	}
}

func TestEntry_MonthOmittedWhenUnset(t *testing.T) {
	e := New(Misc)
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, ok := raw["month"]; ok {
		t.Errorf("month present in JSON for unset month: %s", data)
	}
}
