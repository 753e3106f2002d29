package service

import (
	"context"
	"errors"

	"github.com/freshtrackhq/freshtrack/internal/domain"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type ItemService interface {
	List(ctx context.Context) ([]domain.PantryItem, error)
	Create(ctx context.Context, item domain.PantryItem) (domain.PantryItem, error)
	Update(ctx context.Context, id string, item domain.PantryItem) (domain.PantryItem, error)
	Delete(ctx context.Context, id string) error
}

type StatsService interface {
	WasteStats(ctx context.Context) (*WasteStats, error)
}

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

type RecipeService interface {
	Suggest(ctx context.Context, items []domain.PantryItem) ([]domain.Recipe, error)
}

// WastePoint is one day of the waste trend.
type WastePoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type WasteSummary struct {
	Total                string  `json:"total"`
	Delta                string  `json:"delta"`
	SavedValue           float64 `json:"saved_value"`
	WastedValue          float64 `json:"wasted_value"`
	SavedValueFormatted  string  `json:"saved_value_formatted"`
	WastedValueFormatted string  `json:"wasted_value_formatted"`
}

type CategoryWaste struct {
	Category    string  `json:"category"`
	WastedCount int     `json:"wasted_count"`
	SavedCount  int     `json:"saved_count"`
	WastedValue float64 `json:"wasted_value"`
	SavedValue  float64 `json:"saved_value"`
}

// WasteStats is the full statistics payload: a 7-day trend, headline
// summary and per-category breakdown.
type WasteStats struct {
	Trend             []WastePoint    `json:"trend"`
	Summary           WasteSummary    `json:"summary"`
	CategoryBreakdown []CategoryWaste `json:"category_breakdown"`
}
