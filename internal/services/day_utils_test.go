package services

import (
	"testing"
	"time"
)

func TestDayRangeNormalizesToLocationMidnight(t *testing.T) {
	location, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	raw := time.Date(2026, 2, 1, 22, 35, 10, 0, time.UTC)
	start, end := DayRange(raw, location)

	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Fatalf("expected midnight start, got %s", start.Format(time.RFC3339))
	}
	if start.Format(dayLayout) != "2026-02-02" {
		t.Fatalf("expected moscow calendar day 2026-02-02, got %s", start.Format(dayLayout))
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("expected next day end, got %s", end.Format(time.RFC3339))
	}
}

func TestRecordDayKeyKeepsStoredCalendarDate(t *testing.T) {
	stored := time.Date(2026, 3, 1, 0, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60))
	if got := RecordDayKey(stored); got != "2026-03-01" {
		t.Fatalf("expected 2026-03-01, got %s", got)
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay(" 2024-02-29 ", time.UTC)
	if err != nil {
		t.Fatalf("expected leap day to parse, got %v", err)
	}
	if day.Format(dayLayout) != "2024-02-29" {
		t.Fatalf("unexpected parsed day %s", day.Format(dayLayout))
	}

	if _, err := ParseDay("2023-02-29", time.UTC); err == nil {
		t.Fatal("expected non-leap feb 29 to fail")
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{raw: "00:00", want: 0, ok: true},
		{raw: "07:30", want: 450, ok: true},
		{raw: "23:59", want: 1439, ok: true},
		{raw: "24:00", ok: false},
		{raw: "7:5", ok: false},
		{raw: "", ok: false},
		{raw: "ab:cd", ok: false},
		{raw: "7:30", ok: false},
		{raw: "+7:30", ok: false},
		{raw: "-0:30", ok: false},
		{raw: "007:30", ok: false},
		{raw: "07:+5", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseTimeOfDay(tt.raw)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Fatalf("ParseTimeOfDay(%q) = %d, %v; want %d, %v", tt.raw, got, ok, tt.want, tt.ok)
			}
		})
	}
}
