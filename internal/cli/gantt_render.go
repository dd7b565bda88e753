package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chronos/internal/calendar"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/timeline"
)

func (m *ganttModel) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return m.form.View()
	}

	win, err := m.eng.Window()
	if err != nil {
		return styleError.Render("Error: " + err.Error())
	}

	var b strings.Builder
	b.WriteString(m.renderStatusLine(win))
	b.WriteByte('\n')
	b.WriteString(m.renderMonthBand(win))
	b.WriteByte('\n')
	b.WriteString(m.renderDayBand(win))
	b.WriteByte('\n')

	items := m.eng.Items()
	if len(items) == 0 {
		b.WriteString(styleDim.Render("  No items. Press a to add one, or use chronos import."))
	}
	for i := range items {
		b.WriteString(m.renderRow(win, &items[i], i))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *ganttModel) renderStatusLine(win timeline.Window) string {
	title := fmt.Sprintf("%s  %s – %s",
		win.Level,
		win.Start.Format("Jan 2 2006"),
		win.End.Format("Jan 2 2006"),
	)
	line := styleTitle.Render(title)
	if m.err != nil {
		return line + "  " + styleError.Render(m.err.Error())
	}
	if m.status != "" {
		return line + "  " + styleDim.Render(m.status)
	}
	return line
}

// renderMonthBand writes one label per month run, spanning the run width.
func (m *ganttModel) renderMonthBand(win timeline.Window) string {
	cells := m.chartWidth()
	perDay := float64(cells) / float64(len(win.Days))

	band := make([]rune, cells)
	for i := range band {
		band[i] = ' '
	}
	dayIdx := 0
	for _, run := range calendar.GroupRuns(win.Days, calendar.MonthKey) {
		at := int(float64(dayIdx) * perDay)
		span := int(float64(run.SpanDays) * perDay)
		label := run.AnchorDate.Format("Jan 2006")
		if span < len(label) {
			label = run.AnchorDate.Format("Jan")
		}
		placeLabel(band, at, span, label)
		dayIdx += run.SpanDays
	}
	return strings.Repeat(" ", labelWidth) + styleHeader.Render(string(band))
}

// renderDayBand writes day numbers at week/month zoom and ISO week numbers
// at the wider levels, plus the today marker column.
func (m *ganttModel) renderDayBand(win timeline.Window) string {
	cells := m.chartWidth()
	perDay := float64(cells) / float64(len(win.Days))

	band := make([]rune, cells)
	for i := range band {
		band[i] = ' '
	}

	if win.Level == domain.ZoomWeek || win.Level == domain.ZoomMonth {
		for i, day := range win.Days {
			at := int((float64(i) + 0.5) * perDay)
			placeLabel(band, at, int(perDay), fmt.Sprintf("%d", day.Day()))
		}
	} else {
		dayIdx := 0
		for _, run := range calendar.GroupRuns(win.Days, calendar.WeekKey) {
			at := int(float64(dayIdx) * perDay)
			span := int(float64(run.SpanDays) * perDay)
			placeLabel(band, at, span, fmt.Sprintf("W%d", calendar.ISOWeekNumber(run.AnchorDate)))
			dayIdx += run.SpanDays
		}
	}

	line := styleHeader.Render(string(band))
	if today := win.MapPoint(m.eng.Nav.Now()); today.Visible {
		col := int(today.OffsetPct / 100 * float64(cells))
		if col >= 0 && col < cells {
			line = styleHeader.Render(string(band[:col])) +
				styleToday.Render("▼") +
				styleHeader.Render(string(band[col+1:]))
		}
	}
	return strings.Repeat(" ", labelWidth) + line
}

func (m *ganttModel) renderRow(win timeline.Window, item *domain.ScheduleItem, row int) string {
	cells := m.chartWidth()

	label := fmt.Sprintf("%-*s", labelWidth, " "+truncateTitle(item.Title, labelWidth-2))

	switch {
	case m.grab != nil && row == m.cursor:
		label = styleGrabbed.Render(label)
	case row == m.cursor:
		label = styleCursor.Render(label)
	}

	geo := win.MapRange(item.StartDate, item.EndDate)
	scale := float64(cells) / 100
	start := int(geo.OffsetPct * scale)
	width := int(geo.WidthPct * scale)
	if width < 1 {
		width = 1
	}
	progress := int(float64(width) * float64(item.ProgressPercent) / 100)

	var chart strings.Builder
	for c := 0; c < cells; c++ {
		switch {
		case c >= start && c < start+progress:
			chart.WriteString(styleProgress.Render("█"))
		case c >= start && c < start+width:
			chart.WriteString(styleBar.Render("▓"))
		case m.isWeekendCol(win, c):
			chart.WriteString(styleWeekend.Render(" "))
		default:
			chart.WriteByte(' ')
		}
	}
	return label + chart.String()
}

func (m *ganttModel) isWeekendCol(win timeline.Window, col int) bool {
	idx := int(float64(col) / float64(m.chartWidth()) * float64(len(win.Days)))
	if idx < 0 || idx >= len(win.Days) {
		return false
	}
	return calendar.IsWeekend(win.Days[idx])
}

func (m *ganttModel) renderHelp() string {
	bindings := []string{
		m.keys.Prev.Help().Key + "/" + m.keys.Next.Help().Key + " " + m.keys.Next.Help().Desc,
		m.keys.Today.Help().Key + " " + m.keys.Today.Help().Desc,
		m.keys.Zoom.Help().Key + " " + m.keys.Zoom.Help().Desc,
		m.keys.Grab.Help().Key + " " + m.keys.Grab.Help().Desc,
		m.keys.Add.Help().Key + " " + m.keys.Add.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	return styleDim.Render("  " + strings.Join(bindings, "  ·  "))
}

// truncateTitle shortens a title to max visible characters, cutting on rune
// boundaries so multi-byte titles never split mid-character.
func truncateTitle(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// placeLabel writes label into band at offset, clipped to span and the band.
func placeLabel(band []rune, at, span int, label string) {
	for i, r := range label {
		pos := at + i
		if pos >= len(band) || (span > 0 && i >= span) {
			return
		}
		if pos < 0 {
			continue
		}
		band[pos] = r
	}
}
