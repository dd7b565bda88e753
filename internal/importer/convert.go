package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/routing"
	"github.com/google/uuid"
)

// Convert transforms a validated Schema into domain items ready for
// persistence: refs become generated ids, file order becomes row order, and
// the dependency graph is checked for cycles.
// Call Schema.Validate first; Convert assumes field-level validity.
func Convert(s *Schema) ([]domain.ScheduleItem, error) {
	now := time.Now().UTC()

	idByRef := make(map[string]string, len(s.Items))
	for _, it := range s.Items {
		idByRef[it.Ref] = uuid.New().String()
	}

	items := make([]domain.ScheduleItem, 0, len(s.Items))
	for i, it := range s.Items {
		start, err := time.Parse(dateLayout, it.Start)
		if err != nil {
			return nil, fmt.Errorf("parsing start of %s: %w", it.Ref, err)
		}
		end, err := time.Parse(dateLayout, it.End)
		if err != nil {
			return nil, fmt.Errorf("parsing end of %s: %w", it.Ref, err)
		}

		kind := domain.ItemKind(it.Kind)
		if kind == "" {
			kind = domain.KindTask
		}

		deps := make([]string, 0, len(it.DependsOn))
		for _, ref := range it.DependsOn {
			deps = append(deps, idByRef[ref])
		}

		items = append(items, domain.ScheduleItem{
			ID:              idByRef[it.Ref],
			Title:           it.Title,
			Kind:            kind,
			StartDate:       start,
			EndDate:         end,
			Dependencies:    deps,
			OrderIndex:      i,
			ProgressPercent: it.Progress,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}

	if err := routing.DetectCycle(items); err != nil {
		return nil, fmt.Errorf("rejecting import: %w", err)
	}
	return items, nil
}

// BuildSchema is the inverse of Convert: it renders persisted items back
// into a file schema, using ids as refs.
func BuildSchema(projectName string, items []domain.ScheduleItem) *Schema {
	s := &Schema{Project: ProjectSchema{Name: projectName}}
	for _, it := range items {
		s.Items = append(s.Items, ItemSchema{
			Ref:       it.ID,
			Title:     it.Title,
			Kind:      string(it.Kind),
			Start:     it.StartDate.Format(dateLayout),
			End:       it.EndDate.Format(dateLayout),
			Progress:  it.ProgressPercent,
			DependsOn: it.Dependencies,
		})
	}
	return s
}
