package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, time.January))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February), "leap year")
	assert.Equal(t, 30, DaysInMonth(2025, time.April))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}

func TestFirstWeekday(t *testing.T) {
	// 1 April 2025 was a Tuesday.
	assert.Equal(t, time.Tuesday, FirstWeekday(2025, time.April))
	// 1 June 2025 was a Sunday.
	assert.Equal(t, time.Sunday, FirstWeekday(2025, time.June))
}

func TestShortMonthName(t *testing.T) {
	assert.Equal(t, "Jan", ShortMonthName(time.January))
	assert.Equal(t, "Sep", ShortMonthName(time.September))
	assert.Equal(t, "Dec", ShortMonthName(time.December))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.April, 3, 8, 0, 0, 0, time.Local)
	b := time.Date(2025, time.April, 3, 23, 59, 0, 0, time.Local)
	c := time.Date(2025, time.April, 4, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}

func TestIsToday(t *testing.T) {
	assert.True(t, IsToday(time.Now()))
	assert.False(t, IsToday(time.Now().AddDate(0, 0, -1)))
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Good Morning", Greeting(5))
	assert.Equal(t, "Good Morning", Greeting(11))
	assert.Equal(t, "Good Afternoon", Greeting(12))
	assert.Equal(t, "Good Afternoon", Greeting(17))
	assert.Equal(t, "Good Evening", Greeting(18))
	assert.Equal(t, "Good Evening", Greeting(3))
}

func TestPreviousMonth(t *testing.T) {
	y, m := PreviousMonth(2025, time.January)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.December, m)

	y, m = PreviousMonth(2025, time.July)
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.June, m)
}
