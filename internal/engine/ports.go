package engine

import (
	"context"

	"github.com/alexanderramin/chronos/internal/contract"
	"github.com/alexanderramin/chronos/internal/domain"
)

// ItemSource supplies the schedule items the engine lays out. The engine
// treats each listing as a read-only snapshot for one render cycle.
type ItemSource interface {
	ListItems(ctx context.Context) ([]domain.ScheduleItem, error)
}

// MutationSink receives the engine's mutation intents. Calls are
// fire-and-forget: the engine never inspects the outcome, and a failing sink
// must not stall gesture processing.
type MutationSink interface {
	ApplyDateChange(ctx context.Context, change contract.DateChange) error
	ApplyReorder(ctx context.Context, changes []contract.OrderChange) error
}

// Store is the persistence collaborator the engine is wired against.
type Store interface {
	ItemSource
	MutationSink
}
