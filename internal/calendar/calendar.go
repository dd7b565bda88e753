// Package calendar holds the day-level date utilities the timeline engine is
// built on: weekend detection, ISO-8601 week numbering and inclusive day
// sequences. All functions treat dates as UTC calendar days.
package calendar

import (
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// isoWeekdayIndex returns the ISO weekday index: Monday 0 .. Sunday 6.
func isoWeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ISOWeekNumber computes the ISO-8601 week number of the date using the
// Thursday anchor: the week belongs to the year containing its Thursday.
// Handles week 52/53 carry at year boundaries.
func ISOWeekNumber(t time.Time) int {
	day := Truncate(t)
	thursday := day.AddDate(0, 0, 3-isoWeekdayIndex(day))
	return (thursday.YearDay() + 6) / 7
}

// Truncate drops the time-of-day component, keeping the UTC calendar day.
func Truncate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaySequence returns every calendar day from start to end inclusive.
// Fails with domain.ErrInvalidRange when end precedes start.
func DaySequence(start, end time.Time) ([]time.Time, error) {
	s, e := Truncate(start), Truncate(end)
	if e.Before(s) {
		return nil, domain.ErrInvalidRange
	}
	n := int(e.Sub(s).Hours()/24) + 1
	days := make([]time.Time, 0, n)
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days, nil
}

// DaysBetween returns the signed day offset from a to b, with half-day
// resolution when either bound carries a 12:00 component.
func DaysBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / 24
}
