package utils

import (
	"healthlinker-service/internal/pkg/constvars"
	"strings"
	"time"
)

// ParseDate accepts YYYY-MM-DD or RFC3339 and returns the start of that day in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.ParseInLocation(constvars.DateLayoutYMD, value, loc); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(t.In(loc)), nil
}

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// NextDay returns the start of the calendar day after t, DST safe.
func NextDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, t.Location())
}

// DaysInclusive counts calendar days in [start, end].
func DaysInclusive(start, end time.Time) int {
	start, end = StartOfDay(start), StartOfDay(end)
	if end.Before(start) {
		return 0
	}
	days := 0
	for day := start; !day.After(end); day = NextDay(day) {
		days++
	}
	return days
}

func ParseClock(value string) (hour, minute int, err error) {
	t, err := time.Parse(constvars.ClockLayoutHHMM, value)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}
