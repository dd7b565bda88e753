package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/engine"
	"github.com/alexanderramin/chronos/internal/gesture"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const (
	// labelWidth is the fixed title column; the chart occupies the rest.
	labelWidth = 22
	// headerRows: title/status line, month band, day band.
	headerRows = 3
)

type ganttKeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Today   key.Binding
	Zoom    key.Binding
	Up      key.Binding
	Down    key.Binding
	Grab    key.Binding
	Add     key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultGanttKeys() ganttKeyMap {
	return ganttKeyMap{
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Zoom:    key.NewBinding(key.WithKeys("w", "m", "q", "y"), key.WithHelp("w/m/q/y", "zoom")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "row up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "row down")),
		Grab:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grab/drop row")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		Delete:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// zoomForKey maps the zoom shortcut keys onto levels.
var zoomForKey = map[string]domain.ZoomLevel{
	"w": domain.ZoomWeek,
	"m": domain.ZoomMonth,
	"q": domain.ZoomQuarter,
	"y": domain.ZoomYear,
}

// ganttModel is the root bubbletea model: the timeline grid plus an
// optional add-item form overlay.
type ganttModel struct {
	app *App
	eng *engine.Engine

	width  int
	height int
	cursor int
	status string
	err    error

	// Open gesture sessions; nil when idle.
	drag *gesture.DragSession
	grab *gesture.ReorderSession

	form      *huh.Form
	formTitle string
	formStart string
	formEnd   string

	keys     ganttKeyMap
	quitting bool
}

func newGanttModel(app *App, eng *engine.Engine) *ganttModel {
	return &ganttModel{app: app, eng: eng, keys: defaultGanttKeys()}
}

func runGantt(app *App) error {
	eng := engine.New(app.Store)
	if err := eng.Refresh(context.Background()); err != nil {
		return fmt.Errorf("loading schedule items: %w", err)
	}

	p := tea.NewProgram(newGanttModel(app, eng), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func (m *ganttModel) Init() tea.Cmd { return nil }

// chartWidth is the cell width of the drawable timeline area.
func (m *ganttModel) chartWidth() int {
	w := m.width - labelWidth
	if w < 1 {
		return 1
	}
	return w
}

// cellsPerDay converts the current window to screen scale and keeps the
// drag controller's day width in sync with it.
func (m *ganttModel) cellsPerDay() float64 {
	win, err := m.eng.Window()
	if err != nil || len(win.Days) == 0 {
		return 1
	}
	return float64(m.chartWidth()) / float64(len(win.Days))
}

func (m *ganttModel) syncDayWidth() {
	m.eng.SetDayPixelWidth(m.cellsPerDay())
}

func (m *ganttModel) clampCursor() {
	if n := len(m.eng.Items()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *ganttModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncDayWidth()
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.form == nil {
			return m.handleMouse(msg)
		}
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m *ganttModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.closeSessions()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Prev):
		m.eng.Nav.Previous()
		m.syncDayWidth()

	case key.Matches(msg, m.keys.Next):
		m.eng.Nav.Next()
		m.syncDayWidth()

	case key.Matches(msg, m.keys.Today):
		m.eng.Nav.Today()
		m.syncDayWidth()
		m.status = "jumped to today"

	case key.Matches(msg, m.keys.Zoom):
		if level, ok := zoomForKey[msg.String()]; ok {
			if err := m.eng.Nav.SetZoomLevel(level); err == nil {
				m.syncDayWidth()
				m.status = string(level) + " view"
			}
		}

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(ctx, -1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(ctx, 1)

	case key.Matches(msg, m.keys.Grab):
		m.toggleGrab()

	case key.Matches(msg, m.keys.Add):
		m.openForm()

	case key.Matches(msg, m.keys.Delete):
		m.deleteAtCursor(ctx)

	case key.Matches(msg, m.keys.Refresh):
		m.closeSessions()
		m.err = m.eng.Refresh(ctx)
		m.clampCursor()
	}
	return m, nil
}

// moveCursor moves the row cursor; with a grabbed row it drags the row
// across its neighbor instead, emitting the live renumbering.
func (m *ganttModel) moveCursor(ctx context.Context, delta int) {
	target := m.cursor + delta
	if target < 0 || target >= len(m.eng.Items()) {
		return
	}
	if m.grab != nil {
		if m.eng.UpdateReorderOver(ctx, m.grab, target) != nil {
			m.cursor = target
		}
		return
	}
	m.cursor = target
}

func (m *ganttModel) toggleGrab() {
	if m.grab != nil {
		m.eng.EndReorder(m.grab)
		m.grab = nil
		m.status = "row dropped"
		return
	}
	if len(m.eng.Items()) == 0 {
		return
	}
	if m.grab = m.eng.BeginReorder(m.cursor); m.grab != nil {
		m.status = "row grabbed; move with ↑/↓, drop with g"
	}
}

func (m *ganttModel) deleteAtCursor(ctx context.Context) {
	items := m.eng.Items()
	if m.cursor >= len(items) {
		return
	}
	m.closeSessions()
	id := items[m.cursor].ID
	if err := m.app.Store.Delete(ctx, id); err != nil {
		m.err = err
		return
	}
	m.err = m.eng.Refresh(ctx)
	m.clampCursor()
	m.status = "deleted " + id
}

// closeSessions tears down any open gesture session. Called on every exit
// path so a session never outlives its surface; partial progress stays
// committed.
func (m *ganttModel) closeSessions() {
	if m.drag != nil {
		m.eng.EndDrag(m.drag)
		m.drag = nil
	}
	if m.grab != nil {
		m.eng.EndReorder(m.grab)
		m.grab = nil
	}
}
