package testutil

import (
	"time"

	"github.com/freshtrackhq/freshtrack/internal/domain"
	"github.com/google/uuid"
)

// PantryItem options
type ItemOption func(*domain.PantryItem)

func WithExpiry(raw string) ItemOption {
	return func(it *domain.PantryItem) {
		it.ExpiryDate = raw
	}
}

func WithStatus(s domain.FreshnessStatus) ItemOption {
	return func(it *domain.PantryItem) {
		it.Status = s
	}
}

func WithCategory(c string) ItemOption {
	return func(it *domain.PantryItem) {
		it.Category = c
	}
}

func WithValue(v float64) ItemOption {
	return func(it *domain.PantryItem) {
		it.Value = &v
	}
}

func WithQuantity(q string) ItemOption {
	return func(it *domain.PantryItem) {
		it.Quantity = q
	}
}

func NewTestItem(name string, opts ...ItemOption) *domain.PantryItem {
	now := time.Now().UTC()
	it := &domain.PantryItem{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.StatusFresh,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// WasteEvent options
type WasteOption func(*domain.WasteEvent)

func WithDeletedAt(t time.Time) WasteOption {
	return func(ev *domain.WasteEvent) {
		ev.DeletedAt = t
	}
}

func WithWasteValue(v float64) WasteOption {
	return func(ev *domain.WasteEvent) {
		ev.Value = &v
	}
}

func WithWasteCategory(c string) WasteOption {
	return func(ev *domain.WasteEvent) {
		ev.Category = c
	}
}

func NewTestWasteEvent(itemName string, outcome domain.WasteOutcome, opts ...WasteOption) *domain.WasteEvent {
	ev := &domain.WasteEvent{
		ID:        uuid.New().String(),
		ItemName:  itemName,
		Outcome:   outcome,
		DeletedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}
