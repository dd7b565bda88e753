// Package svgexport renders the engine's pure geometry as a static SVG
// Gantt chart. It is one consumer of the rendering contract; the interactive
// TUI is the other.
package svgexport

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/chronos/internal/calendar"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/routing"
	"github.com/alexanderramin/chronos/internal/timeline"
)

// Options controls the fixed geometry of the chart.
type Options struct {
	Width        int
	RowHeight    int
	HeaderHeight int
	LabelWidth   int
}

// DefaultOptions renders a 1200px chart with 28px rows.
func DefaultOptions() Options {
	return Options{Width: 1200, RowHeight: 28, HeaderHeight: 48, LabelWidth: 180}
}

const (
	colorWeekend   = "#f3f4f6"
	colorGrid      = "#e5e7eb"
	colorBar       = "#60a5fa"
	colorProgress  = "#1d4ed8"
	colorConnector = "#9ca3af"
	colorToday     = "#ef4444"
	colorText      = "#111827"
)

// Render writes the chart for one window of items. Connector paths come from
// the dependency router with the same row layout this renderer draws.
func Render(w io.Writer, title string, items []domain.ScheduleItem, win timeline.Window, opts Options, today time.Time) error {
	chartW := float64(opts.Width - opts.LabelWidth)
	height := opts.HeaderHeight + len(items)*opts.RowHeight + 8

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" font-family="sans-serif">`+"\n", opts.Width, height)
	fmt.Fprintf(&b, `<text x="8" y="18" font-size="14" fill="%s">%s</text>`+"\n", colorText, escape(title))

	xOf := func(pct float64) float64 {
		return float64(opts.LabelWidth) + pct/100*chartW
	}
	dw := win.DayWidthPct() / 100 * chartW

	// Weekend shading behind everything else.
	for i, day := range win.Days {
		if !calendar.IsWeekend(day) {
			continue
		}
		x := float64(opts.LabelWidth) + float64(i)*dw
		fmt.Fprintf(&b, `<rect x="%.1f" y="%d" width="%.1f" height="%d" fill="%s"/>`+"\n",
			x, opts.HeaderHeight, dw, len(items)*opts.RowHeight, colorWeekend)
	}

	renderHeader(&b, win, opts, dw)

	// Row separators.
	for i := 0; i <= len(items); i++ {
		y := opts.HeaderHeight + i*opts.RowHeight
		fmt.Fprintf(&b, `<line x1="0" y1="%d" x2="%d" y2="%d" stroke="%s"/>`+"\n", y, opts.Width, y, colorGrid)
	}

	// Bars with progress fill.
	barInset := float64(opts.RowHeight) * 0.2
	barH := float64(opts.RowHeight) - 2*barInset
	for i, it := range items {
		geo := win.MapRange(it.StartDate, it.EndDate)
		x := xOf(geo.OffsetPct)
		bw := geo.WidthPct / 100 * chartW
		y := float64(opts.HeaderHeight+i*opts.RowHeight) + barInset

		fmt.Fprintf(&b, `<text x="8" y="%.1f" font-size="11" fill="%s">%s</text>`+"\n",
			y+barH-2, colorText, escape(it.Title))
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="3" fill="%s"/>`+"\n",
			x, y, bw, barH, colorBar)
		if it.ProgressPercent > 0 {
			fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="3" fill="%s"/>`+"\n",
				x, y, bw*float64(it.ProgressPercent)/100, barH, colorProgress)
		}
	}

	// Dependency connectors, routed against this renderer's row layout.
	rows := make(map[string]int, len(items))
	for i := range items {
		rows[items[i].ID] = i
	}
	layout := routing.RowLayout{
		RowHeight:    float64(opts.RowHeight),
		HeaderHeight: float64(opts.HeaderHeight) + float64(opts.RowHeight)/2,
	}
	for _, path := range routing.Route(items, rows, win, layout) {
		b.WriteString(`<polyline fill="none" stroke="` + colorConnector + `" points="`)
		for j, p := range path.Points {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%.1f,%.1f", xOf(p.X), p.Y)
		}
		b.WriteString(`"/>` + "\n")
	}

	// Today marker, suppressed when outside the window.
	if m := win.MapPoint(today); m.Visible {
		x := xOf(m.OffsetPct)
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="%s" stroke-dasharray="4 2"/>`+"\n",
			x, opts.HeaderHeight, x, height-8, colorToday)
	}

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// renderHeader draws a month band and, for week-scale windows, day numbers;
// wider windows get ISO week labels instead.
func renderHeader(b *strings.Builder, win timeline.Window, opts Options, dw float64) {
	monthY := opts.HeaderHeight - 26
	labelY := opts.HeaderHeight - 8

	for _, run := range calendar.GroupRuns(win.Days, calendar.MonthKey) {
		x := float64(opts.LabelWidth) + offsetDays(win, run.AnchorDate)*dw
		fmt.Fprintf(b, `<text x="%.1f" y="%d" font-size="11" fill="%s">%s</text>`+"\n",
			x+2, monthY, colorText, run.AnchorDate.Format("Jan 2006"))
	}

	if win.Level == domain.ZoomWeek || win.Level == domain.ZoomMonth {
		for i, day := range win.Days {
			x := float64(opts.LabelWidth) + (float64(i)+0.5)*dw
			fmt.Fprintf(b, `<text x="%.1f" y="%d" font-size="9" text-anchor="middle" fill="%s">%d</text>`+"\n",
				x, labelY, colorText, day.Day())
		}
		return
	}

	for _, run := range calendar.GroupRuns(win.Days, calendar.WeekKey) {
		x := float64(opts.LabelWidth) + offsetDays(win, run.AnchorDate)*dw
		fmt.Fprintf(b, `<text x="%.1f" y="%d" font-size="9" fill="%s">W%d</text>`+"\n",
			x+2, labelY, colorText, calendar.ISOWeekNumber(run.AnchorDate))
	}
}

func offsetDays(win timeline.Window, t time.Time) float64 {
	return calendar.DaysBetween(win.Start, t)
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
