package services

import (
	"errors"
	"testing"
	"time"
)

func TestParseHistoryRange(t *testing.T) {
	location := time.UTC

	t.Run("empty range", func(t *testing.T) {
		from, to, err := ParseHistoryRange("", "", location)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if from != nil || to != nil {
			t.Fatalf("expected nil from/to, got from=%v to=%v", from, to)
		}
	})

	t.Run("valid from and to", func(t *testing.T) {
		from, to, err := ParseHistoryRange("2026-02-10", " 2026-02-20 ", location)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if from == nil || to == nil {
			t.Fatalf("expected non-nil range bounds")
		}
		if from.Format("2006-01-02") != "2026-02-10" || to.Format("2006-01-02") != "2026-02-20" {
			t.Fatalf("unexpected range: from=%s to=%s", from.Format("2006-01-02"), to.Format("2006-01-02"))
		}
	})

	t.Run("same day range", func(t *testing.T) {
		if _, _, err := ParseHistoryRange("2026-02-10", "2026-02-10", location); err != nil {
			t.Fatalf("expected single day range to be valid, got %v", err)
		}
	})

	t.Run("invalid from", func(t *testing.T) {
		_, _, err := ParseHistoryRange("not-a-date", "2026-02-20", location)
		if !errors.Is(err, ErrHistoryFromDateInvalid) {
			t.Fatalf("expected ErrHistoryFromDateInvalid, got %v", err)
		}
	})

	t.Run("invalid to", func(t *testing.T) {
		_, _, err := ParseHistoryRange("2026-02-10", "2026-13-01", location)
		if !errors.Is(err, ErrHistoryToDateInvalid) {
			t.Fatalf("expected ErrHistoryToDateInvalid, got %v", err)
		}
	})

	t.Run("invalid range order", func(t *testing.T) {
		_, _, err := ParseHistoryRange("2026-02-20", "2026-02-10", location)
		if !errors.Is(err, ErrHistoryRangeInvalid) {
			t.Fatalf("expected ErrHistoryRangeInvalid, got %v", err)
		}
	})
}
