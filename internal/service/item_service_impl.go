package service

import (
	"context"
	"fmt"

	"github.com/freshtrackhq/freshtrack/internal/clock"
	"github.com/freshtrackhq/freshtrack/internal/db"
	"github.com/freshtrackhq/freshtrack/internal/domain"
	"github.com/freshtrackhq/freshtrack/internal/expiry"
	"github.com/freshtrackhq/freshtrack/internal/repository"
	"github.com/google/uuid"
)

type itemService struct {
	items repository.ItemRepo
	uow   db.UnitOfWork
	clock clock.Clock
}

func NewItemService(items repository.ItemRepo, uow db.UnitOfWork, clk clock.Clock) ItemService {
	return &itemService{items: items, uow: uow, clock: clk}
}

// List returns all items with status recomputed against the current time.
// Stored statuses that drifted across a day boundary are corrected in place.
func (s *itemService) List(ctx context.Context) ([]domain.PantryItem, error) {
	stored, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	today := s.clock.Now()
	items := expiry.ClassifyAll(stored, today)
	for i, it := range items {
		if it.Status != stored[i].Status {
			if err := s.items.UpdateStatus(ctx, it.ID, it.Status); err != nil {
				return nil, fmt.Errorf("persisting corrected status for %s: %w", it.ID, err)
			}
		}
	}
	return items, nil
}

// Create stores a new item. The status is always derived from the expiry
// date; any client-sent status is ignored.
func (s *itemService) Create(ctx context.Context, item domain.PantryItem) (domain.PantryItem, error) {
	now := s.clock.Now()
	item.ID = uuid.New().String()
	item.Status = expiry.Classify(item.ExpiryDate, now)
	item.CreatedAt = now.UTC()
	item.UpdatedAt = now.UTC()
	if err := s.items.Create(ctx, &item); err != nil {
		return domain.PantryItem{}, err
	}
	return item, nil
}

func (s *itemService) Update(ctx context.Context, id string, item domain.PantryItem) (domain.PantryItem, error) {
	existing, err := s.items.GetByID(ctx, id)
	if err != nil {
		return domain.PantryItem{}, err
	}
	now := s.clock.Now()
	item.ID = id
	item.Status = expiry.Classify(item.ExpiryDate, now)
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = now.UTC()
	if err := s.items.Update(ctx, &item); err != nil {
		return domain.PantryItem{}, err
	}
	return item, nil
}

// Delete removes the item and records the waste outcome in one transaction.
// An item still fresh or expiring counts as eaten; an expired one as spoiled.
func (s *itemService) Delete(ctx context.Context, id string) error {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}

	outcome := domain.OutcomeSpoiled
	status := expiry.Classify(item.ExpiryDate, s.clock.Now())
	if status == domain.StatusFresh || status == domain.StatusExpiring {
		outcome = domain.OutcomeEaten
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteItemRepo(tx).Delete(ctx, id); err != nil {
			return err
		}
		ev := &domain.WasteEvent{
			ID:        uuid.New().String(),
			ItemName:  item.Name,
			Outcome:   outcome,
			DeletedAt: s.clock.Now().UTC(),
			Value:     item.Value,
			Category:  item.Category,
		}
		return repository.NewSQLiteWasteRepo(tx).Record(ctx, ev)
	})
}
