// Package calendar holds the date arithmetic behind the month views.
package calendar

import "time"

// DaysInMonth returns the number of days in a month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday the month starts on.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday()
}

// ShortMonthName returns the three-letter month name.
func ShortMonthName(month time.Month) string {
	return month.String()[:3]
}

// SameDay reports whether two timestamps fall on the same local
// calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsToday reports whether the timestamp falls on the current day.
func IsToday(t time.Time) bool {
	return SameDay(t, time.Now())
}

// Greeting returns a time-of-day greeting for the given hour.
func Greeting(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Good Morning"
	case hour >= 12 && hour < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// PreviousMonth shifts the selector back one month, rolling January over
// to December of the prior year.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}
