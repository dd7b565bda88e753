package timeline

import (
	"math"
	"time"

	"github.com/alexanderramin/chronos/internal/calendar"
	"github.com/alexanderramin/chronos/internal/contract"
)

// DayWidthPct is the width of one day column as a percentage of the window.
func (w Window) DayWidthPct() float64 {
	return 100.0 / float64(len(w.Days))
}

// dayOffset is the fractional day index of t relative to the window start.
// Computed with raw day arithmetic, not by searching Days, so dates outside
// the window extrapolate to negative or past-the-end indices.
func (w Window) dayOffset(t time.Time) float64 {
	return calendar.DaysBetween(w.Start, t)
}

// MapRange places an inclusive start/end date range as a bar. The bar starts
// at the left edge of the start day's column and ends at the midpoint of the
// end day's column (half-day convention). A floor of half a day column keeps
// degenerate ranges visible.
func (w Window) MapRange(start, end time.Time) contract.BarGeometry {
	dw := w.DayWidthPct()
	startOffset := w.dayOffset(start) * dw
	endOffset := w.dayOffset(end)*dw + dw/2
	return contract.BarGeometry{
		OffsetPct: startOffset,
		WidthPct:  math.Max(dw*0.5, endOffset-startOffset),
	}
}

// MapPoint places a single date at its column midpoint. Unlike bars, point
// markers never extrapolate: a date outside the window is not visible.
func (w Window) MapPoint(t time.Time) contract.PointMarker {
	day := calendar.Truncate(t)
	if day.Before(w.Start) || day.After(w.End) {
		return contract.PointMarker{}
	}
	dw := w.DayWidthPct()
	return contract.PointMarker{
		OffsetPct: w.dayOffset(day)*dw + dw/2,
		Visible:   true,
	}
}
