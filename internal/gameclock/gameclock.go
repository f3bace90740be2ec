// Package gameclock turns wall-clock time into "game days" and period
// identifiers. A game day can start at a configurable hour (e.g. 4am) so
// late-night activity still counts toward the previous day.
package gameclock

import (
	"fmt"
	"math"
	"time"
)

// GameDay returns the calendar date of now after shifting it back by
// dayStartHour hours, truncated to midnight in now's location.
func GameDay(now time.Time, dayStartHour int) time.Time {
	shifted := now.Add(-time.Duration(dayStartHour) * time.Hour)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, shifted.Location())
}

// ISODate formats t as YYYY-MM-DD using local calendar fields.
func ISODate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseISODate parses a YYYY-MM-DD string into a local midnight time.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// WeekIdentifier returns "<year>-W<nn>" for the week containing t.
//
// The numbering is deliberately not ISO-8601: weeks are fixed 7-day blocks
// counted from January 1st, with a one-day offset when the week starts on
// Sunday. Periodic habit bucketing depends on this exact formula staying
// stable across week boundaries.
func WeekIdentifier(t time.Time, weekStartsMonday bool) string {
	dayOfYear := t.YearDay()
	offset := 1
	if weekStartsMonday {
		offset = 0
	}
	week := int(math.Ceil(float64(dayOfYear+offset) / 7.0))
	return fmt.Sprintf("%d-W%02d", t.Year(), week)
}

// MonthIdentifier returns "YYYY-MM" for t using local calendar fields.
func MonthIdentifier(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// YearIdentifier returns "YYYY" for t.
func YearIdentifier(t time.Time) string {
	return fmt.Sprintf("%04d", t.Year())
}
