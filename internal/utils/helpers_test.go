package utils

import (
	"testing"
	"time"
)

func TestMonthKeyUsesUTC(t *testing.T) {
	// 2026-01-31 23:30 in UTC+2 is already February in local time, but the
	// usage month is keyed on UTC
	loc := time.FixedZone("CEST", 2*60*60)
	local := time.Date(2026, time.February, 1, 1, 30, 0, 0, loc)
	if got := MonthKey(local); got != "2026-01" {
		t.Fatalf("MonthKey = %s, want 2026-01", got)
	}
	if got := MonthKey(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)); got != "2026-03" {
		t.Fatalf("MonthKey = %s, want 2026-03", got)
	}
}

func TestParseYMD(t *testing.T) {
	got, err := ParseYMD("2026-01-15")
	if err != nil {
		t.Fatalf("ParseYMD: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.January || got.Day() != 15 {
		t.Fatalf("ParseYMD = %v", got)
	}
	if got.Location() != time.UTC {
		t.Fatalf("location = %v, want UTC", got.Location())
	}
	if _, err := ParseYMD("15-01-2026"); err == nil {
		t.Fatal("expected error for non-canonical date")
	}
}
