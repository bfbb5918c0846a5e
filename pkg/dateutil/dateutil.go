// Package dateutil provides month-key helpers for budget data.
//
// Months are identified by a "YYYY-MM" key throughout the module.
package dateutil

import (
	"fmt"
	"time"
)

const monthKeyLayout = "2006-01"

// ParseMonthKey parses a "YYYY-MM" key into the first day of that month (UTC).
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}

// MonthKey returns the "YYYY-MM" key for the month containing t.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// MonthLabel returns a human-readable label, e.g. "January 2026".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// NextMonth returns the first day of the month after t's month.
func NextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
}

// PrevMonth returns the first day of the month before t's month.
func PrevMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, -1, 0)
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// InMonth reports whether day falls inside the month identified by key.
func InMonth(day time.Time, key string) bool {
	m, err := ParseMonthKey(key)
	if err != nil {
		return false
	}
	return SameMonth(day, m)
}
