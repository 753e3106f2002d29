package repository

import (
	"context"
	"errors"
	"time"

	"github.com/freshtrackhq/freshtrack/internal/domain"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// CategoryWasteRow is the per-category aggregate of waste events, ordered by
// wasted count when listed.
type CategoryWasteRow struct {
	Category    string
	SavedCount  int
	WastedCount int
	SavedValue  float64
	WastedValue float64
}

type ItemRepo interface {
	Create(ctx context.Context, item *domain.PantryItem) error
	GetByID(ctx context.Context, id string) (*domain.PantryItem, error)
	List(ctx context.Context) ([]domain.PantryItem, error)
	Update(ctx context.Context, item *domain.PantryItem) error
	UpdateStatus(ctx context.Context, id string, status domain.FreshnessStatus) error
	Delete(ctx context.Context, id string) error
}

type WasteRepo interface {
	Record(ctx context.Context, ev *domain.WasteEvent) error
	CountsByDay(ctx context.Context, since time.Time) (map[string]int, error)
	TotalEvents(ctx context.Context) (int, error)
	ValueTotals(ctx context.Context) (saved, wasted float64, err error)
	CategoryBreakdown(ctx context.Context) ([]CategoryWasteRow, error)
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
