package utils

import "testing"

func TestDayCount(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-12-15", "2024-12-17", 2},
		{"2024-12-15", "2024-12-15", 1},
		{"2024-12-15", "2024-12-16", 1},
		{"2024-12-31", "2025-01-02", 2},
	}
	for _, tc := range cases {
		start, err := ParseDate(tc.start)
		if err != nil {
			t.Fatalf("parse start %q: %v", tc.start, err)
		}
		end, err := ParseDate(tc.end)
		if err != nil {
			t.Fatalf("parse end %q: %v", tc.end, err)
		}
		if got := DayCount(start, end); got != tc.want {
			t.Fatalf("DayCount(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestDayCountFloorsAtOne(t *testing.T) {
	start, _ := ParseDate("2024-12-17")
	end, _ := ParseDate("2024-12-15")
	if got := DayCount(start, end); got != 1 {
		t.Fatalf("reversed range should floor at 1, got %d", got)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("15/12/2024"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(150000, "RWF"); got != "RWF 150,000" {
		t.Fatalf("FormatAmount = %q", got)
	}
	if got := FormatAmount(1234.5, ""); got != "1,234.50" {
		t.Fatalf("FormatAmount without currency = %q", got)
	}
}

func TestFormatAmountCarriesRoundedCents(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{1234.999, "RWF 1,235"},
		{999.999, "RWF 1,000"},
		{0.999, "RWF 1"},
		{1234.994, "RWF 1,234.99"},
		{-1234.999, "RWF -1,235"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.amount, "RWF"); got != tc.want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
