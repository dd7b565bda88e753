package svgexport

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func renderTest(t *testing.T, items []domain.ScheduleItem, today time.Time) string {
	t.Helper()
	win, err := timeline.ComputeWindow(domain.ZoomWeek, 0, date(2024, time.June, 5))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, Render(&b, "Test chart", items, win, DefaultOptions(), today))
	return b.String()
}

func testItems() []domain.ScheduleItem {
	return []domain.ScheduleItem{
		{ID: "a", Title: "Spec & review", StartDate: date(2024, time.June, 3), EndDate: date(2024, time.June, 4), ProgressPercent: 50},
		{ID: "b", Title: "Build", StartDate: date(2024, time.June, 5), EndDate: date(2024, time.June, 7), Dependencies: []string{"a"}},
	}
}

func TestRender_Structure(t *testing.T) {
	out := renderTest(t, testItems(), date(2024, time.June, 5))

	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Contains(t, out, "Test chart")
	assert.Contains(t, out, "Spec &amp; review", "titles are escaped")
	assert.Contains(t, out, colorBar)
	assert.Contains(t, out, colorProgress, "progress overlay present")
}

func TestRender_ConnectorAndToday(t *testing.T) {
	out := renderTest(t, testItems(), date(2024, time.June, 5))
	assert.Contains(t, out, "<polyline", "dependency edge drawn")
	assert.Contains(t, out, colorToday, "today falls inside the window")
}

func TestRender_TodayOutsideWindowSuppressed(t *testing.T) {
	out := renderTest(t, testItems(), date(2024, time.July, 5))
	assert.NotContains(t, out, colorToday)
}

func TestRender_WeekendShading(t *testing.T) {
	out := renderTest(t, testItems(), date(2024, time.June, 5))
	// Mon-Sun window: exactly two weekend columns.
	assert.Equal(t, 2, strings.Count(out, colorWeekend))
}

func TestRender_DanglingDependencySkipped(t *testing.T) {
	items := testItems()
	items[1].Dependencies = []string{"removed"}
	out := renderTest(t, items, date(2024, time.June, 5))
	assert.NotContains(t, out, "<polyline")
}
