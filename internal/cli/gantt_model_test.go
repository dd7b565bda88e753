package cli

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/chronos/internal/contract"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items       []domain.ScheduleItem
	dateChanges []contract.DateChange
	reorders    [][]contract.OrderChange
}

func (s *memStore) ListItems(ctx context.Context) ([]domain.ScheduleItem, error) {
	out := make([]domain.ScheduleItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *memStore) ApplyDateChange(ctx context.Context, ch contract.DateChange) error {
	s.dateChanges = append(s.dateChanges, ch)
	for i := range s.items {
		if s.items[i].ID == ch.ItemID {
			if ch.StartDate != nil {
				s.items[i].StartDate = *ch.StartDate
			}
			if ch.EndDate != nil {
				s.items[i].EndDate = *ch.EndDate
			}
		}
	}
	return nil
}

func (s *memStore) ApplyReorder(ctx context.Context, changes []contract.OrderChange) error {
	s.reorders = append(s.reorders, changes)
	for _, ch := range changes {
		for i := range s.items {
			if s.items[i].ID == ch.ItemID {
				s.items[i].OrderIndex = ch.OrderIndex
			}
		}
	}
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].OrderIndex < s.items[j].OrderIndex
	})
	return nil
}

func (s *memStore) Create(ctx context.Context, item *domain.ScheduleItem) error {
	s.items = append(s.items, *item)
	return nil
}

func (s *memStore) Delete(ctx context.Context, id string) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedStore() *memStore {
	return &memStore{items: []domain.ScheduleItem{
		{ID: "a", Title: "Design", Kind: domain.KindTask, StartDate: day(2024, time.June, 3), EndDate: day(2024, time.June, 7), OrderIndex: 0, ProgressPercent: 50},
		{ID: "b", Title: "Build", Kind: domain.KindTask, StartDate: day(2024, time.June, 10), EndDate: day(2024, time.June, 14), OrderIndex: 1, Dependencies: []string{"a"}},
		{ID: "c", Title: "Ship", Kind: domain.KindTask, StartDate: day(2024, time.June, 17), EndDate: day(2024, time.June, 18), OrderIndex: 2, Dependencies: []string{"b"}},
	}}
}

func testModel(t *testing.T) (*ganttModel, *memStore) {
	t.Helper()
	store := seedStore()
	eng := engine.New(store)
	eng.Nav.Now = func() time.Time { return day(2024, time.June, 5) }
	eng.Nav.ReferenceDate = day(2024, time.June, 5)
	require.NoError(t, eng.Nav.SetZoomLevel(domain.ZoomMonth))
	require.NoError(t, eng.Refresh(context.Background()))

	m := newGanttModel(&App{Store: store}, eng)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model.(*ganttModel), store
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGanttModel_ViewRendersRows(t *testing.T) {
	m, _ := testModel(t)

	out := m.View()
	assert.Contains(t, out, "Design")
	assert.Contains(t, out, "Build")
	assert.Contains(t, out, "Ship")
	assert.Contains(t, out, "Jun")
}

func TestGanttModel_ZoomKeysSwitchLevels(t *testing.T) {
	m, _ := testModel(t)

	for key, want := range map[string]domain.ZoomLevel{
		"w": domain.ZoomWeek,
		"q": domain.ZoomQuarter,
		"y": domain.ZoomYear,
		"m": domain.ZoomMonth,
	} {
		model, _ := m.Update(keyMsg(key))
		m = model.(*ganttModel)
		win, err := m.eng.Window()
		require.NoError(t, err)
		assert.Equal(t, want, win.Level, "key %q", key)
	}
}

func TestGanttModel_NavigationKeys(t *testing.T) {
	m, _ := testModel(t)

	model, _ := m.Update(keyMsg("l"))
	m = model.(*ganttModel)
	win, err := m.eng.Window()
	require.NoError(t, err)
	assert.Equal(t, time.July, win.Start.Month())

	model, _ = m.Update(keyMsg("t"))
	m = model.(*ganttModel)
	win, err = m.eng.Window()
	require.NoError(t, err)
	assert.Equal(t, time.June, win.Start.Month())
}

func TestGanttModel_GrabReorderCommitsEachCrossing(t *testing.T) {
	m, store := testModel(t)

	model, _ := m.Update(keyMsg("g"))
	m = model.(*ganttModel)
	require.NotNil(t, m.grab)

	model, _ = m.Update(keyMsg("down"))
	m = model.(*ganttModel)
	require.Len(t, store.reorders, 1, "crossing a row dispatches immediately")

	model, _ = m.Update(keyMsg("down"))
	m = model.(*ganttModel)
	require.Len(t, store.reorders, 2)

	model, _ = m.Update(keyMsg("g"))
	m = model.(*ganttModel)
	assert.Nil(t, m.grab)

	ids := make([]string, len(store.items))
	for i, it := range store.items {
		ids[i] = it.ID
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids)
	for i, it := range store.items {
		assert.Equal(t, i, it.OrderIndex)
	}
}

func TestGanttModel_MouseDragMovesBar(t *testing.T) {
	m, store := testModel(t)

	win, err := m.eng.Window()
	require.NoError(t, err)
	item := m.eng.Items()[0]
	geo := win.MapRange(item.StartDate, item.EndDate)
	scale := float64(m.chartWidth()) / 100
	midCell := int((geo.OffsetPct+geo.WidthPct/2)*scale + 0.5)

	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: labelWidth + midCell, Y: headerRows}
	model, _ := m.Update(press)
	m = model.(*ganttModel)
	require.NotNil(t, m.drag)
	assert.True(t, m.eng.DragActive())

	perDay := m.cellsPerDay()
	motion := tea.MouseMsg{Action: tea.MouseActionMotion, X: labelWidth + midCell + int(perDay+0.5), Y: headerRows}
	model, _ = m.Update(motion)
	m = model.(*ganttModel)
	require.NotEmpty(t, store.dateChanges, "a one-day pointer move emits an intent")

	release := tea.MouseMsg{Action: tea.MouseActionRelease, X: labelWidth, Y: headerRows}
	model, _ = m.Update(release)
	m = model.(*ganttModel)
	assert.Nil(t, m.drag)
	assert.False(t, m.eng.DragActive())
}

func TestGanttModel_AddFormOpensAndCancels(t *testing.T) {
	m, _ := testModel(t)

	model, _ := m.Update(keyMsg("a"))
	m = model.(*ganttModel)
	require.NotNil(t, m.form)
	assert.NotEmpty(t, m.View())

	model, _ = m.Update(keyMsg("esc"))
	m = model.(*ganttModel)
	assert.Nil(t, m.form)
}

func TestGanttModel_DeleteAtCursor(t *testing.T) {
	m, store := testModel(t)

	model, _ := m.Update(keyMsg("x"))
	m = model.(*ganttModel)
	require.Len(t, store.items, 2)
	assert.NotContains(t, m.View(), "Design")
}

func TestGanttModel_QuitClosesSessions(t *testing.T) {
	m, _ := testModel(t)

	model, _ := m.Update(keyMsg("g"))
	m = model.(*ganttModel)
	require.NotNil(t, m.grab)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = model.(*ganttModel)
	require.NotNil(t, cmd)
	assert.Nil(t, m.grab)
	assert.False(t, m.eng.ReorderActive())
}

func TestFormatHalfDay(t *testing.T) {
	assert.Equal(t, "2024-06-03", formatHalfDay(day(2024, time.June, 3)))
	assert.Equal(t, "2024-06-03+½", formatHalfDay(day(2024, time.June, 3).Add(12*time.Hour)))
}

func TestTruncateTitle_RuneBoundaries(t *testing.T) {
	long := "Überprüfung der Zeitplanänderungen für Q3"
	got := truncateTitle(long, 20)
	assert.True(t, utf8.ValidString(got), "no split mid-rune")
	assert.Equal(t, 20, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "…"))

	short := "Plan"
	assert.Equal(t, short, truncateTitle(short, 20))
}

func TestRenderRow_MultibyteTitleStaysValid(t *testing.T) {
	m, store := testModel(t)
	store.items[0].Title = "Überarbeitung des Entwurfs für die nächste Phase"
	require.NoError(t, m.eng.Refresh(context.Background()))

	out := m.View()
	assert.True(t, utf8.ValidString(out))
	assert.NotContains(t, out, string(utf8.RuneError))
}

func TestRenderRow_WidthFloor(t *testing.T) {
	m, _ := testModel(t)
	win, err := m.eng.Window()
	require.NoError(t, err)

	item := m.eng.Items()[2]
	row := m.renderRow(win, &item, 2)
	assert.True(t, strings.Contains(row, "▓") || strings.Contains(row, "█"),
		"even a short bar paints at least one cell")
}
