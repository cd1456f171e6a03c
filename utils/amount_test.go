package utils

import (
	"encoding/json"
	"testing"
)

func TestParseAmount_AcceptsFormattedStrings(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"1200", "1200"},
		{"1,200", "1200"},
		{"INR 1,200", "1200"},
		{"Rs -1,200.50", "-1200.5"},
		{"  rs 1,234.50  ", "1234.5"},
	}
	for _, tc := range cases {
		d, err := ParseAmount(tc.in)
		if err != nil {
			t.Fatalf("ParseAmount(%q) error: %v", tc.in, err)
		}
		if d.String() != tc.expected {
			t.Fatalf("ParseAmount(%q) expected %s, got %s", tc.in, tc.expected, d.String())
		}
	}
}

func TestParseAmount_NumericInputs(t *testing.T) {
	d, err := ParseAmount(json.Number("99.75"))
	if err != nil || d.String() != "99.75" {
		t.Fatalf("json.Number: got %s, err %v", d, err)
	}
	d, err = ParseAmount(float64(42))
	if err != nil || d.String() != "42" {
		t.Fatalf("float64: got %s, err %v", d, err)
	}
}

func TestParseAmount_RejectsGarbage(t *testing.T) {
	for _, in := range []any{"", "INR", true, nil} {
		if _, err := ParseAmount(in); err == nil {
			t.Fatalf("ParseAmount(%v) expected an error", in)
		}
	}
}
