// Package routing computes orthogonal dependency connectors between task
// bars, and guards the dependency graph against cycles at data-entry time.
package routing

import (
	"github.com/alexanderramin/chronos/internal/contract"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/timeline"
)

// RowLayout fixes the vertical geometry of the row grid.
type RowLayout struct {
	RowHeight    float64
	HeaderHeight float64
}

// rowY is the vertical anchor of the row at index.
func (l RowLayout) rowY(index int) float64 {
	return float64(index)*l.RowHeight + l.HeaderHeight
}

// Route builds one connector per (dependency, dependent) pair: horizontal
// from the predecessor's end to the midpoint, vertical to the dependent's
// row, horizontal to the dependent's start. Dependencies that reference ids
// absent from items are silently omitted; the edge may point at a removed or
// disabled task.
func Route(items []domain.ScheduleItem, rows map[string]int, win timeline.Window, layout RowLayout) []contract.ConnectorPath {
	byID := make(map[string]*domain.ScheduleItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	var paths []contract.ConnectorPath
	for i := range items {
		to := &items[i]
		toRow, ok := rows[to.ID]
		if !ok {
			continue
		}
		for _, depID := range to.Dependencies {
			from, ok := byID[depID]
			if !ok {
				continue
			}
			fromRow, ok := rows[from.ID]
			if !ok {
				continue
			}

			fromGeo := win.MapRange(from.StartDate, from.EndDate)
			toGeo := win.MapRange(to.StartDate, to.EndDate)

			fromX := fromGeo.OffsetPct + fromGeo.WidthPct
			fromY := layout.rowY(fromRow)
			toX := toGeo.OffsetPct
			toY := layout.rowY(toRow)
			midX := (fromX + toX) / 2

			paths = append(paths, contract.ConnectorPath{
				FromID: from.ID,
				ToID:   to.ID,
				Points: []contract.Point{
					{X: fromX, Y: fromY},
					{X: midX, Y: fromY},
					{X: midX, Y: toY},
					{X: toX, Y: toY},
				},
			})
		}
	}
	return paths
}
