// Package engine is the facade over the timeline computation and gesture
// packages: it owns the navigation state, an item snapshot, and the open
// gesture sessions, and forwards accepted mutation intents to the store.
//
// All methods run on the caller's single event-handling path; the engine
// provides no internal locking.
package engine

import (
	"context"
	"sort"

	"github.com/alexanderramin/chronos/internal/contract"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/gesture"
	"github.com/alexanderramin/chronos/internal/routing"
	"github.com/alexanderramin/chronos/internal/timeline"
)

type Engine struct {
	Nav *timeline.NavigationState

	store   Store
	drag    gesture.DragController
	reorder gesture.ReorderController

	items []domain.ScheduleItem
}

func New(store Store) *Engine {
	return &Engine{
		Nav:   timeline.NewNavigationState(),
		store: store,
	}
}

// Refresh snapshots the item collection, ordered by row.
func (e *Engine) Refresh(ctx context.Context) error {
	items, err := e.store.ListItems(ctx)
	if err != nil {
		return err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].OrderIndex < items[j].OrderIndex
	})
	e.items = items
	return nil
}

// Items returns the current snapshot in row order.
func (e *Engine) Items() []domain.ScheduleItem { return e.items }

// Item looks up a snapshot item by id.
func (e *Engine) Item(id string) *domain.ScheduleItem {
	for i := range e.items {
		if e.items[i].ID == id {
			return &e.items[i]
		}
	}
	return nil
}

// Window computes the visible window for the current navigation state.
func (e *Engine) Window() (timeline.Window, error) {
	return e.Nav.Window()
}

// SetDayPixelWidth tells the drag controller how wide one day column is on
// screen. Must be called whenever the rendering surface resizes.
func (e *Engine) SetDayPixelWidth(px float64) {
	e.drag.DayPixelWidth = px
}

// BeginDrag opens a drag session on the item, or returns nil when the item
// is unknown or another session is open.
func (e *Engine) BeginDrag(itemID string, mode domain.DragMode, pointerX float64) *gesture.DragSession {
	item := e.Item(itemID)
	if item == nil {
		return nil
	}
	return e.drag.Begin(item, mode, pointerX)
}

// UpdateDrag feeds a pointer-move into the open session. An accepted delta
// is applied to the snapshot for live feedback and dispatched to the store
// immediately; the intent is also returned so renderers can react.
func (e *Engine) UpdateDrag(ctx context.Context, s *gesture.DragSession, pointerX float64) *contract.DateChange {
	change := e.drag.Update(s, pointerX)
	if change == nil {
		return nil
	}
	if item := e.Item(change.ItemID); item != nil {
		if change.StartDate != nil {
			item.StartDate = *change.StartDate
		}
		if change.EndDate != nil {
			item.EndDate = *change.EndDate
		}
	}
	// Persistence failures are the collaborator's concern; each accepted
	// delta was already committed as an intent.
	_ = e.store.ApplyDateChange(ctx, *change)
	return change
}

// EndDrag closes the session, retaining the last accepted delta.
func (e *Engine) EndDrag(s *gesture.DragSession) {
	e.drag.Finish(s)
}

// DragActive reports whether a drag session is open.
func (e *Engine) DragActive() bool { return e.drag.Active() != nil }

// BeginReorder opens a row reorder session on the row at index.
func (e *Engine) BeginReorder(index int) *gesture.ReorderSession {
	if index < 0 || index >= len(e.items) {
		return nil
	}
	return e.reorder.Begin(index)
}

// UpdateReorderOver handles the dragged row crossing another row. The full
// renumbering is applied to the snapshot and dispatched in one intent.
func (e *Engine) UpdateReorderOver(ctx context.Context, s *gesture.ReorderSession, overIndex int) []contract.OrderChange {
	order := make([]string, len(e.items))
	for i := range e.items {
		order[i] = e.items[i].ID
	}

	changes := e.reorder.UpdateOver(s, overIndex, order)
	if changes == nil {
		return nil
	}

	for _, ch := range changes {
		if item := e.Item(ch.ItemID); item != nil {
			item.OrderIndex = ch.OrderIndex
		}
	}
	sort.SliceStable(e.items, func(i, j int) bool {
		return e.items[i].OrderIndex < e.items[j].OrderIndex
	})

	_ = e.store.ApplyReorder(ctx, changes)
	return changes
}

// EndReorder closes the session; each crossing already committed its order.
func (e *Engine) EndReorder(s *gesture.ReorderSession) {
	e.reorder.Finish(s)
}

// ReorderActive reports whether a reorder session is open.
func (e *Engine) ReorderActive() bool { return e.reorder.Active() != nil }

// RouteDependencies computes connector paths for the current snapshot and
// window, with rows at their snapshot positions.
func (e *Engine) RouteDependencies(layout routing.RowLayout) ([]contract.ConnectorPath, error) {
	win, err := e.Window()
	if err != nil {
		return nil, err
	}
	rows := make(map[string]int, len(e.items))
	for i := range e.items {
		rows[e.items[i].ID] = i
	}
	return routing.Route(e.items, rows, win, layout), nil
}
