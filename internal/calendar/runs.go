package calendar

import (
	"fmt"
	"time"
)

// Run is a stretch of consecutive days sharing one grouping key. Renderers
// draw the anchor day once and span it across the run.
type Run struct {
	AnchorDate time.Time
	SpanDays   int
	Key        string
}

// GroupRuns splits an ordered day sequence into runs of days that share the
// key produced by keyFn. Purely a rendering aid; the scheduling core never
// consumes runs.
func GroupRuns(days []time.Time, keyFn func(time.Time) string) []Run {
	var runs []Run
	for _, d := range days {
		k := keyFn(d)
		if n := len(runs); n > 0 && runs[n-1].Key == k {
			runs[n-1].SpanDays++
			continue
		}
		runs = append(runs, Run{AnchorDate: d, SpanDays: 1, Key: k})
	}
	return runs
}

// WeekKey groups days by ISO week.
func WeekKey(t time.Time) string {
	thursday := Truncate(t).AddDate(0, 0, 3-isoWeekdayIndex(t))
	return fmt.Sprintf("%d-W%02d", thursday.Year(), ISOWeekNumber(t))
}

// MonthKey groups days by calendar month.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
