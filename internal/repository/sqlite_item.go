// Package repository persists schedule items in SQLite and implements the
// engine's store ports.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/contract"
	"github.com/alexanderramin/chronos/internal/db"
	"github.com/alexanderramin/chronos/internal/domain"
)

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = errors.New("not found")

// itemColumns is the canonical SELECT column list for schedule_items.
const itemColumns = `id, title, kind, start_date, end_date, order_index,
		progress_percent, created_at, updated_at`

// SQLiteItemRepo implements item persistence and the engine store ports
// using a SQLite database.
type SQLiteItemRepo struct {
	db  *sql.DB
	uow db.UnitOfWork
}

// NewSQLiteItemRepo creates a new SQLiteItemRepo. The unit of work is used
// for multi-row writes (reorder renumbering, dependency replacement).
func NewSQLiteItemRepo(database *sql.DB, uow db.UnitOfWork) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: database, uow: uow}
}

func (r *SQLiteItemRepo) Create(ctx context.Context, item *domain.ScheduleItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validating item: %w", err)
	}
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		query := `INSERT INTO schedule_items (id, title, kind, start_date, end_date,
			order_index, progress_percent, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
		_, err := tx.ExecContext(ctx, query,
			item.ID,
			item.Title,
			string(item.Kind),
			item.StartDate.UTC().Format(time.RFC3339),
			item.EndDate.UTC().Format(time.RFC3339),
			item.OrderIndex,
			item.ProgressPercent,
			item.CreatedAt.UTC().Format(time.RFC3339),
			item.UpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting schedule item: %w", err)
		}
		return replaceDependencies(ctx, tx, item.ID, item.Dependencies)
	})
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error) {
	query := `SELECT ` + itemColumns + ` FROM schedule_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	item, err := scanItem(row)
	if err != nil {
		return nil, err
	}
	deps, err := r.listDependencies(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Dependencies = deps[id]
	return item, nil
}

func (r *SQLiteItemRepo) Update(ctx context.Context, item *domain.ScheduleItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validating item: %w", err)
	}
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		query := `UPDATE schedule_items SET title = ?, kind = ?, start_date = ?,
			end_date = ?, order_index = ?, progress_percent = ?, updated_at = ?
			WHERE id = ?`
		res, err := tx.ExecContext(ctx, query,
			item.Title,
			string(item.Kind),
			item.StartDate.UTC().Format(time.RFC3339),
			item.EndDate.UTC().Format(time.RFC3339),
			item.OrderIndex,
			item.ProgressPercent,
			time.Now().UTC().Format(time.RFC3339),
			item.ID,
		)
		if err != nil {
			return fmt.Errorf("updating schedule item: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("schedule item %s: %w", item.ID, ErrNotFound)
		}
		return replaceDependencies(ctx, tx, item.ID, item.Dependencies)
	})
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedule_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("schedule item %s: %w", id, ErrNotFound)
	}
	return nil
}

// ListItems returns every item in row order, dependencies attached.
// Implements the engine's ItemSource port.
func (r *SQLiteItemRepo) ListItems(ctx context.Context) ([]domain.ScheduleItem, error) {
	query := `SELECT ` + itemColumns + ` FROM schedule_items ORDER BY order_index, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing schedule items: %w", err)
	}
	defer rows.Close()

	var items []domain.ScheduleItem
	for rows.Next() {
		item, err := scanItemRows(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule items: %w", err)
	}

	deps, err := r.listDependencies(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Dependencies = deps[items[i].ID]
	}
	return items, nil
}

// ApplyDateChange moves an item's date bounds. Nil fields are untouched.
// Implements the engine's MutationSink port.
func (r *SQLiteItemRepo) ApplyDateChange(ctx context.Context, change contract.DateChange) error {
	set := "updated_at = ?"
	args := []any{time.Now().UTC().Format(time.RFC3339)}
	if change.StartDate != nil {
		set += ", start_date = ?"
		args = append(args, change.StartDate.UTC().Format(time.RFC3339))
	}
	if change.EndDate != nil {
		set += ", end_date = ?"
		args = append(args, change.EndDate.UTC().Format(time.RFC3339))
	}
	args = append(args, change.ItemID)

	_, err := r.db.ExecContext(ctx, `UPDATE schedule_items SET `+set+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("applying date change: %w", err)
	}
	return nil
}

// ApplyReorder renumbers every item in one transaction so a crash never
// leaves a partially renumbered order.
func (r *SQLiteItemRepo) ApplyReorder(ctx context.Context, changes []contract.OrderChange) error {
	now := time.Now().UTC().Format(time.RFC3339)
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, ch := range changes {
			if _, err := tx.ExecContext(ctx,
				`UPDATE schedule_items SET order_index = ?, updated_at = ? WHERE id = ?`,
				ch.OrderIndex, now, ch.ItemID,
			); err != nil {
				return fmt.Errorf("renumbering item %s: %w", ch.ItemID, err)
			}
		}
		return nil
	})
}

// listDependencies loads dependency ids grouped by item, in declared order.
// With itemID == "" it loads the whole table.
func (r *SQLiteItemRepo) listDependencies(ctx context.Context, itemID string) (map[string][]string, error) {
	query := `SELECT item_id, depends_on_id FROM item_dependencies`
	args := []any{}
	if itemID != "" {
		query += ` WHERE item_id = ?`
		args = append(args, itemID)
	}
	query += ` ORDER BY item_id, position`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}
	defer rows.Close()

	deps := make(map[string][]string)
	for rows.Next() {
		var item, dependsOn string
		if err := rows.Scan(&item, &dependsOn); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		deps[item] = append(deps[item], dependsOn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return deps, nil
}

func replaceDependencies(ctx context.Context, tx db.DBTX, itemID string, deps []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM item_dependencies WHERE item_id = ?`, itemID); err != nil {
		return fmt.Errorf("clearing dependencies: %w", err)
	}
	for i, dep := range deps {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO item_dependencies (item_id, depends_on_id, position) VALUES (?, ?, ?)`,
			itemID, dep, i,
		); err != nil {
			return fmt.Errorf("inserting dependency %s -> %s: %w", itemID, dep, err)
		}
	}
	return nil
}
