package services

import (
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date used by HTML5 date inputs and the search store
const DateLayout = "2006-01-02"

// ParseDate parses a date string in typical formats (YYYY-MM-DD)
// It enforces strict checks but centralizes the logic for future format additions
func ParseDate(dateStr string) (time.Time, error) {
	parsedTime, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}

	return parsedTime, nil
}

// FormatDate renders t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

const secondsPerDay = 24 * 60 * 60

// RentalDays returns ceil((to - from) / 24h). Negative ranges yield negative counts.
// Works on Unix seconds since time.Duration overflows past ~292 years.
func RentalDays(from, to time.Time) int {
	secs := to.Unix() - from.Unix()
	days := secs / secondsPerDay
	if secs > 0 && secs%secondsPerDay != 0 {
		days++
	}
	return int(days)
}

// Today returns the calendar date of now in its own location
func Today(now time.Time) string {
	return FormatDate(now)
}

// MinToDate is the earliest selectable return date: the pick-up date, or today when unset
func MinToDate(fromDate string, now time.Time) string {
	if fromDate != "" {
		return fromDate
	}
	return Today(now)
}
