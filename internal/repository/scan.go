package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

func scanItem(row *sql.Row) (*domain.ScheduleItem, error) {
	var it domain.ScheduleItem
	var kindStr, startStr, endStr, createdStr, updatedStr string

	err := row.Scan(
		&it.ID, &it.Title, &kindStr, &startStr, &endStr,
		&it.OrderIndex, &it.ProgressPercent, &createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule item: %w", err)
	}
	return populateItem(&it, kindStr, startStr, endStr, createdStr, updatedStr)
}

func scanItemRows(rows *sql.Rows) (*domain.ScheduleItem, error) {
	var it domain.ScheduleItem
	var kindStr, startStr, endStr, createdStr, updatedStr string

	err := rows.Scan(
		&it.ID, &it.Title, &kindStr, &startStr, &endStr,
		&it.OrderIndex, &it.ProgressPercent, &createdStr, &updatedStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning schedule item: %w", err)
	}
	return populateItem(&it, kindStr, startStr, endStr, createdStr, updatedStr)
}

func populateItem(it *domain.ScheduleItem, kindStr, startStr, endStr, createdStr, updatedStr string) (*domain.ScheduleItem, error) {
	it.Kind = domain.ItemKind(kindStr)

	var err error
	if it.StartDate, err = parseStoredTime(startStr); err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	if it.EndDate, err = parseStoredTime(endStr); err != nil {
		return nil, fmt.Errorf("parsing end_date: %w", err)
	}
	if it.CreatedAt, err = parseStoredTime(createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if it.UpdatedAt, err = parseStoredTime(updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return it, nil
}

// parseStoredTime accepts RFC3339 timestamps and bare dates; half-day drag
// deltas leave a 12:00 component that RFC3339 preserves.
func parseStoredTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02", s)
}
