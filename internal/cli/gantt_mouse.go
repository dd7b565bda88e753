package cli

import (
	"context"
	"math"

	"github.com/alexanderramin/chronos/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse translates pointer events on the chart into drag gestures:
// press on a bar edge starts a resize, press on the body starts a move,
// motion feeds the open session, release closes it.
func (m *ganttModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.beginPointerDrag(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if m.drag != nil {
			m.eng.UpdateDrag(ctx, m.drag, m.pointerX(msg.X))
		}

	case tea.MouseActionRelease:
		if m.drag != nil {
			m.eng.EndDrag(m.drag)
			m.drag = nil
		}
	}
	return m, nil
}

// pointerX maps a terminal column to chart-local pointer coordinates.
func (m *ganttModel) pointerX(x int) float64 {
	return float64(x - labelWidth)
}

func (m *ganttModel) beginPointerDrag(x, y int) {
	row := y - headerRows
	items := m.eng.Items()
	if row < 0 || row >= len(items) {
		return
	}
	m.cursor = row

	win, err := m.eng.Window()
	if err != nil {
		return
	}
	item := items[row]
	geo := win.MapRange(item.StartDate, item.EndDate)

	scale := float64(m.chartWidth()) / 100
	startCell := geo.OffsetPct * scale
	endCell := (geo.OffsetPct + geo.WidthPct) * scale
	px := m.pointerX(x)

	if px < startCell-1 || px > endCell+1 {
		return
	}

	// Terminal cells are coarse; a one-cell hit zone stands in for the
	// few-pixel edge zones of a pointer UI.
	mode := domain.DragMove
	switch {
	case math.Abs(px-startCell) <= 1:
		mode = domain.DragResizeStart
	case math.Abs(px-endCell) <= 1:
		mode = domain.DragResizeEnd
	}

	m.drag = m.eng.BeginDrag(item.ID, mode, px)
}
