package utils

import (
	"time"

	"github.com/julianstephens/commutewell/internal/constants"
)

// Today returns the current date key (YYYY-MM-DD) in local time.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// DateKey formats a time as the standard date key.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a standard date key at local midnight.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// ValidDateKey reports whether the string is a well-formed date key.
func ValidDateKey(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// ValidTimeOfDay reports whether the string is a well-formed HH:MM time.
func ValidTimeOfDay(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}

// DayOfYear returns the 1-based ordinal day for a time, used to pick
// the rotating focus tip deterministically per calendar day.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// Truncate clips a string to at most max runes. Notes are capped rather
// than rejected so a long paste never fails the write.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
