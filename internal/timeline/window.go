// Package timeline computes the visible date window for each zoom level and
// maps calendar dates onto horizontal positions within it.
package timeline

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/calendar"
	"github.com/alexanderramin/chronos/internal/domain"
)

// Window is the visible date range for one zoom level and navigation offset.
// Recomputed on every zoom or offset change, never mutated in place.
type Window struct {
	Level domain.ZoomLevel
	Start time.Time
	End   time.Time
	Days  []time.Time
}

// ComputeWindow derives the window for the given zoom level, shifted from the
// reference date by offset units of that level.
func ComputeWindow(level domain.ZoomLevel, offset int, referenceDate time.Time) (Window, error) {
	ref := calendar.Truncate(referenceDate)

	var start, end time.Time
	switch level {
	case domain.ZoomWeek:
		start, end = weekBounds(ref, offset)
	case domain.ZoomMonth:
		start, end = monthBounds(ref, offset)
	case domain.ZoomQuarter:
		start, end = quarterBounds(ref, offset)
	case domain.ZoomYear:
		start = time.Date(ref.Year()+offset, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(ref.Year()+offset, time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		return Window{}, fmt.Errorf("computing window for %q: %w", level, domain.ErrInvalidZoomLevel)
	}

	days, err := calendar.DaySequence(start, end)
	if err != nil {
		return Window{}, fmt.Errorf("building day sequence: %w", err)
	}

	return Window{Level: level, Start: start, End: end, Days: days}, nil
}

// weekBounds returns the ISO week (Monday through Sunday) containing ref,
// shifted by offset weeks.
func weekBounds(ref time.Time, offset int) (time.Time, time.Time) {
	isoIdx := (int(ref.Weekday()) + 6) % 7
	monday := ref.AddDate(0, 0, -isoIdx+offset*7)
	return monday, monday.AddDate(0, 0, 6)
}

// monthBounds uses calendar-month arithmetic, rolling year boundaries and
// month lengths via time.Date normalization.
func monthBounds(ref time.Time, offset int) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// quarterBounds carries or borrows the year via floor division of the shifted
// quarter index, so offset -1 from Q1 lands in Q4 of the previous year.
func quarterBounds(ref time.Time, offset int) (time.Time, time.Time) {
	total := int(ref.Month()-1)/3 + offset
	year := ref.Year() + floorDiv(total, 4)
	q := total - floorDiv(total, 4)*4

	start := time.Date(year, time.Month(q*3+1), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(q*3+4), 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
