package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/flowmind/internal/constants"
)

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CalendarDaysBetween counts calendar days from from's date to to's date,
// each read in its own location. It is negative when to is earlier and
// ignores DST shifts.
func CalendarDaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) as midnight in loc.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(constants.DateFormat, dateStr, loc)
}

// ResolveDate accepts "today", "tomorrow" or YYYY-MM-DD relative to now and
// returns the normalized date string. Empty input stays empty.
func ResolveDate(input string, now time.Time) (string, error) {
	switch s := strings.ToLower(strings.TrimSpace(input)); s {
	case "":
		return "", nil
	case "today":
		return FormatDate(now), nil
	case "tomorrow":
		return FormatDate(now.AddDate(0, 0, 1)), nil
	default:
		d, err := ParseDateInLocation(s, now.Location())
		if err != nil {
			return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD, today or tomorrow)", input)
		}
		return FormatDate(d), nil
	}
}
