package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/freshtrackhq/freshtrack/internal/db"
	"github.com/freshtrackhq/freshtrack/internal/domain"
)

// itemColumns is the canonical SELECT column list for pantry_items.
const itemColumns = `id, name, quantity, expiry_date, emoji, status, value, category, created_at, updated_at`

// SQLiteItemRepo implements ItemRepo using a SQLite database.
type SQLiteItemRepo struct {
	db db.DBTX
}

// NewSQLiteItemRepo creates a new SQLiteItemRepo.
func NewSQLiteItemRepo(conn db.DBTX) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: conn}
}

func (r *SQLiteItemRepo) Create(ctx context.Context, item *domain.PantryItem) error {
	query := `INSERT INTO pantry_items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Name,
		item.Quantity,
		item.ExpiryDate,
		item.Emoji,
		string(item.Status),
		nullableFloat(item.Value),
		item.Category,
		item.CreatedAt.Format(time.RFC3339),
		item.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting pantry item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (*domain.PantryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM pantry_items WHERE id = ?`
	return r.scanItem(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteItemRepo) List(ctx context.Context) ([]domain.PantryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM pantry_items ORDER BY expiry_date ASC, name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing pantry items: %w", err)
	}
	defer rows.Close()

	var items []domain.PantryItem
	for rows.Next() {
		item, err := r.scanItemRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *SQLiteItemRepo) Update(ctx context.Context, item *domain.PantryItem) error {
	query := `UPDATE pantry_items
		SET name = ?, quantity = ?, expiry_date = ?, emoji = ?, status = ?,
		    value = ?, category = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		item.Name,
		item.Quantity,
		item.ExpiryDate,
		item.Emoji,
		string(item.Status),
		nullableFloat(item.Value),
		item.Category,
		item.UpdatedAt.Format(time.RFC3339),
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating pantry item: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteItemRepo) UpdateStatus(ctx context.Context, id string, status domain.FreshnessStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pantry_items SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("updating item status: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pantry_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting pantry item: %w", err)
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteItemRepo) scanItem(row *sql.Row) (*domain.PantryItem, error) {
	item, err := r.scanItemRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return item, err
}

func (r *SQLiteItemRepo) scanItemRow(s rowScanner) (*domain.PantryItem, error) {
	var (
		item                 domain.PantryItem
		status               string
		value                sql.NullFloat64
		createdAt, updatedAt string
	)
	if err := s.Scan(
		&item.ID, &item.Name, &item.Quantity, &item.ExpiryDate, &item.Emoji,
		&status, &value, &item.Category, &createdAt, &updatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning pantry item: %w", err)
	}
	item.Status = domain.FreshnessStatus(status)
	item.Value = parseNullableFloat(value)
	item.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	item.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &item, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
