package routing

import (
	"fmt"

	"github.com/alexanderramin/chronos/internal/domain"
)

// DetectCycle walks the dependency graph and reports the first cycle found.
// Run at data-entry time (import, item edit) so the router can assume an
// acyclic graph. Edges pointing at unknown ids are skipped, consistent with
// how Route treats them.
func DetectCycle(items []domain.ScheduleItem) error {
	deps := make(map[string][]string, len(items))
	for _, it := range items {
		deps[it.ID] = it.Dependencies
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(items))

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("item %q: %w", id, domain.ErrDependencyCycle)
		case done:
			return nil
		}
		state[id] = visiting
		for _, dep := range deps[id] {
			if _, ok := deps[dep]; !ok {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	for _, it := range items {
		if err := visit(it.ID); err != nil {
			return err
		}
	}
	return nil
}
