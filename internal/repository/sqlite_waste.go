package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/freshtrackhq/freshtrack/internal/db"
	"github.com/freshtrackhq/freshtrack/internal/domain"
)

// SQLiteWasteRepo implements WasteRepo using a SQLite database.
type SQLiteWasteRepo struct {
	db db.DBTX
}

// NewSQLiteWasteRepo creates a new SQLiteWasteRepo.
func NewSQLiteWasteRepo(conn db.DBTX) *SQLiteWasteRepo {
	return &SQLiteWasteRepo{db: conn}
}

func (r *SQLiteWasteRepo) Record(ctx context.Context, ev *domain.WasteEvent) error {
	query := `INSERT INTO waste_events (id, item_name, outcome, deleted_at, value, category)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		ev.ID,
		ev.ItemName,
		string(ev.Outcome),
		ev.DeletedAt.UTC().Format(time.RFC3339),
		nullableFloat(ev.Value),
		ev.Category,
	)
	if err != nil {
		return fmt.Errorf("recording waste event: %w", err)
	}
	return nil
}

// CountsByDay returns event counts keyed by "2006-01-02" date string for
// events on or after since.
func (r *SQLiteWasteRepo) CountsByDay(ctx context.Context, since time.Time) (map[string]int, error) {
	query := `SELECT DATE(deleted_at) AS d, COUNT(*) AS c
		FROM waste_events
		WHERE DATE(deleted_at) >= ?
		GROUP BY DATE(deleted_at)`
	rows, err := r.db.QueryContext(ctx, query, since.UTC().Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("counting waste events by day: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("scanning daily count: %w", err)
		}
		counts[day] = count
	}
	return counts, rows.Err()
}

func (r *SQLiteWasteRepo) TotalEvents(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM waste_events`).Scan(&total); err != nil {
		return 0, fmt.Errorf("counting waste events: %w", err)
	}
	return total, nil
}

func (r *SQLiteWasteRepo) ValueTotals(ctx context.Context) (saved, wasted float64, err error) {
	query := `SELECT
		COALESCE(SUM(CASE WHEN outcome = 'eaten' THEN value END), 0.0),
		COALESCE(SUM(CASE WHEN outcome != 'eaten' THEN value END), 0.0)
		FROM waste_events`
	if err := r.db.QueryRowContext(ctx, query).Scan(&saved, &wasted); err != nil {
		return 0, 0, fmt.Errorf("summing waste values: %w", err)
	}
	return saved, wasted, nil
}

func (r *SQLiteWasteRepo) CategoryBreakdown(ctx context.Context) ([]CategoryWasteRow, error) {
	query := `SELECT
		CASE WHEN category = '' THEN 'Uncategorized' ELSE category END AS cat,
		SUM(CASE WHEN outcome = 'eaten' THEN 1 ELSE 0 END) AS saved_count,
		SUM(CASE WHEN outcome != 'eaten' THEN 1 ELSE 0 END) AS wasted_count,
		SUM(CASE WHEN outcome = 'eaten' THEN COALESCE(value, 0) ELSE 0 END) AS saved_val,
		SUM(CASE WHEN outcome != 'eaten' THEN COALESCE(value, 0) ELSE 0 END) AS wasted_val
		FROM waste_events
		GROUP BY cat
		ORDER BY wasted_count DESC, cat ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("aggregating waste by category: %w", err)
	}
	defer rows.Close()

	var out []CategoryWasteRow
	for rows.Next() {
		var row CategoryWasteRow
		if err := rows.Scan(&row.Category, &row.SavedCount, &row.WastedCount,
			&row.SavedValue, &row.WastedValue); err != nil {
			return nil, fmt.Errorf("scanning category aggregate: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
