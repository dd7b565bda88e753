package engine

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/chronos/internal/contract"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fakeStore records dispatched intents in memory.
type fakeStore struct {
	items       []domain.ScheduleItem
	dateChanges []contract.DateChange
	reorders    [][]contract.OrderChange
}

func (f *fakeStore) ListItems(ctx context.Context) ([]domain.ScheduleItem, error) {
	out := make([]domain.ScheduleItem, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeStore) ApplyDateChange(ctx context.Context, change contract.DateChange) error {
	f.dateChanges = append(f.dateChanges, change)
	return nil
}

func (f *fakeStore) ApplyReorder(ctx context.Context, changes []contract.OrderChange) error {
	f.reorders = append(f.reorders, changes)
	return nil
}

func newTestEngine(t *testing.T) (*Engine, *fakeStore) {
	t.Helper()
	store := &fakeStore{
		items: []domain.ScheduleItem{
			{ID: "a", Title: "Spec", OrderIndex: 0, StartDate: date(2024, time.June, 3), EndDate: date(2024, time.June, 4)},
			{ID: "b", Title: "Build", OrderIndex: 1, StartDate: date(2024, time.June, 5), EndDate: date(2024, time.June, 7), Dependencies: []string{"a"}},
			{ID: "c", Title: "Ship", OrderIndex: 2, StartDate: date(2024, time.June, 8), EndDate: date(2024, time.June, 8), Dependencies: []string{"b"}},
		},
	}

	e := New(store)
	e.Nav.Now = func() time.Time { return date(2024, time.June, 5) }
	e.Nav.ReferenceDate = date(2024, time.June, 5)
	e.SetDayPixelWidth(40)
	require.NoError(t, e.Refresh(context.Background()))
	return e, store
}

func TestEngine_RefreshOrdersByRow(t *testing.T) {
	e, store := newTestEngine(t)

	// Shuffle persisted order indices; the snapshot must follow them.
	store.items[0].OrderIndex = 2
	store.items[2].OrderIndex = 0
	require.NoError(t, e.Refresh(context.Background()))

	items := e.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, "a", items[2].ID)
}

func TestEngine_DragDispatchesLiveIntents(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()

	s := e.BeginDrag("a", domain.DragMove, 0)
	require.NotNil(t, s)

	require.NotNil(t, e.UpdateDrag(ctx, s, 40))  // +1 day
	require.Nil(t, e.UpdateDrag(ctx, s, 44))     // same snapped delta
	require.NotNil(t, e.UpdateDrag(ctx, s, 100)) // +2.5 days
	e.EndDrag(s)

	require.Len(t, store.dateChanges, 2, "each accepted delta dispatched immediately, nothing on close")
	assert.Equal(t, "a", store.dateChanges[0].ItemID)

	// Snapshot reflects the last accepted delta for live rendering.
	assert.Equal(t, date(2024, time.June, 3).Add(60*time.Hour), e.Item("a").StartDate)
}

func TestEngine_DragUnknownItem(t *testing.T) {
	e, _ := newTestEngine(t)
	assert.Nil(t, e.BeginDrag("ghost", domain.DragMove, 0))
}

func TestEngine_SingleDragSession(t *testing.T) {
	e, _ := newTestEngine(t)

	s := e.BeginDrag("a", domain.DragMove, 0)
	require.NotNil(t, s)
	assert.True(t, e.DragActive())
	assert.Nil(t, e.BeginDrag("b", domain.DragMove, 0))

	e.EndDrag(s)
	assert.False(t, e.DragActive())
}

func TestEngine_ReorderAppliesAndDispatches(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()

	s := e.BeginReorder(0)
	require.NotNil(t, s)

	changes := e.UpdateReorderOver(ctx, s, 2)
	require.Len(t, changes, 3)
	e.EndReorder(s)

	require.Len(t, store.reorders, 1)
	items := e.Items()
	assert.Equal(t, []string{"b", "c", "a"}, []string{items[0].ID, items[1].ID, items[2].ID})
	for i, it := range items {
		assert.Equal(t, i, it.OrderIndex, "contiguous renumbering")
	}
}

func TestEngine_ReorderOutOfBounds(t *testing.T) {
	e, _ := newTestEngine(t)
	assert.Nil(t, e.BeginReorder(-1))
	assert.Nil(t, e.BeginReorder(3))
}

func TestEngine_RouteDependencies(t *testing.T) {
	e, _ := newTestEngine(t)

	paths, err := e.RouteDependencies(routing.RowLayout{RowHeight: 32, HeaderHeight: 64})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "a", paths[0].FromID)
	assert.Equal(t, "b", paths[0].ToID)
}

func TestEngine_RouteSkipsRemovedDependency(t *testing.T) {
	e, store := newTestEngine(t)

	// Remove the predecessor entirely; b's edge vanishes, c's edge stays.
	store.items = store.items[1:]
	require.NoError(t, e.Refresh(context.Background()))

	paths, err := e.RouteDependencies(routing.RowLayout{RowHeight: 32, HeaderHeight: 64})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, "b", paths[0].FromID)
	assert.Equal(t, "c", paths[0].ToID)
}

func TestEngine_WindowFollowsNavigation(t *testing.T) {
	e, _ := newTestEngine(t)

	w, err := e.Window()
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.June, 3), w.Start)

	e.Nav.Next()
	w, err = e.Window()
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.June, 10), w.Start)
}
