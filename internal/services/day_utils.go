package services

import (
	"strconv"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// DayKey is the ISO calendar date of value in location.
func DayKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(dayLayout)
}

// RecordDayKey keys a stored calendar date. Stored dates carry no meaningful
// zone, so the wall-clock date is used as-is instead of shifting it.
func RecordDayKey(value time.Time) string {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(dayLayout)
}

func ParseDay(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(dayLayout, strings.TrimSpace(raw), location)
	if err != nil {
		return time.Time{}, err
	}
	return DateAtLocation(parsed, location), nil
}

// ParseTimeOfDay parses HH:MM into minutes after midnight.
func ParseTimeOfDay(raw string) (int, bool) {
	hoursRaw, minutesRaw, found := strings.Cut(strings.TrimSpace(raw), ":")
	if !found || !isTwoDigits(hoursRaw) || !isTwoDigits(minutesRaw) {
		return 0, false
	}
	hours, _ := strconv.Atoi(hoursRaw)
	minutes, _ := strconv.Atoi(minutesRaw)
	if hours > 23 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

func isTwoDigits(raw string) bool {
	return len(raw) == 2 && raw[0] >= '0' && raw[0] <= '9' && raw[1] >= '0' && raw[1] <= '9'
}
