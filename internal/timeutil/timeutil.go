// Package timeutil provides calendar helpers shared by the focus engine:
// date-key generation and day/week boundary checks, all in local time.
package timeutil

import "time"

// DateKeyLayout is the layout used for date-key strings.
const DateKeyLayout = "2006-01-02"

// DateKey renders t as a local-timezone YYYY-MM-DD grouping key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key back into a local midnight time.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, key, time.Local)
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns local midnight of the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return StartOfDay(t.AddDate(0, 0, -(weekday - 1)))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// SameWeek reports whether a and b fall in the same Monday-start week.
func SameWeek(a, b time.Time) bool {
	return StartOfWeek(a).Equal(StartOfWeek(b))
}

// DaysBetween returns the number of calendar days from the earlier key to
// the later one. Returns 0 when either key is malformed.
func DaysBetween(fromKey, toKey string) int {
	from, err := ParseDateKey(fromKey)
	if err != nil {
		return 0
	}
	to, err := ParseDateKey(toKey)
	if err != nil {
		return 0
	}
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

// IsYesterday reports whether prevKey names the calendar day immediately
// before the day named by todayKey.
func IsYesterday(prevKey, todayKey string) bool {
	prev, err := ParseDateKey(prevKey)
	if err != nil {
		return false
	}
	today, err := ParseDateKey(todayKey)
	if err != nil {
		return false
	}
	return DateKey(prev.AddDate(0, 0, 1)) == DateKey(today)
}
