package aggregates

import (
	"testing"
	"time"
)

func TestDeriveMaritimeOperationCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"OP-2024-0001", "OM-OP-2024-0001"},
		{"  OP-2024-0002  ", "OM-OP-2024-0002"},
		{"X", "OM-X"},
	}
	for _, tc := range cases {
		if got := DeriveMaritimeOperationCode(tc.in); got != tc.want {
			t.Fatalf("DeriveMaritimeOperationCode(%q): want=%q got=%q", tc.in, tc.want, got)
		}
	}
}

func TestSequencePeriod(t *testing.T) {
	at := time.Date(2024, time.May, 17, 10, 30, 0, 0, time.UTC)
	if got := SequencePeriod(at); got != "2405" {
		t.Fatalf("SequencePeriod: want=%q got=%q", "2405", got)
	}

	// Period is derived from the UTC instant, not the local rendering.
	loc := time.FixedZone("UTC+14", 14*60*60)
	boundary := time.Date(2024, time.June, 1, 8, 0, 0, 0, loc)
	if got := SequencePeriod(boundary); got != "2405" {
		t.Fatalf("SequencePeriod at tz boundary: want=%q got=%q", "2405", got)
	}
}

func TestFormatSequenceCode(t *testing.T) {
	if got := FormatSequenceCode("inc", "2405", 7); got != "INC-2405-0007" {
		t.Fatalf("FormatSequenceCode: want=%q got=%q", "INC-2405-0007", got)
	}
	if got := FormatSequenceCode("INC", "2412", 12345); got != "INC-2412-12345" {
		t.Fatalf("FormatSequenceCode wide ordinal: want=%q got=%q", "INC-2412-12345", got)
	}
}
