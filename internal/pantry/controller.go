// Package pantry owns the in-memory item collection and keeps it consistent
// with the remote store, the expiry classifier and the reminder schedule.
package pantry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/freshtrackhq/freshtrack/internal/clock"
	"github.com/freshtrackhq/freshtrack/internal/domain"
	"github.com/freshtrackhq/freshtrack/internal/expiry"
	"github.com/freshtrackhq/freshtrack/internal/reminder"
)

var ErrItemNotFound = errors.New("pantry item not found")

// Controller applies mutations against the remote store, reclassifies the
// collection after every change and replans reminders. Creates and updates
// wait for the store (the server assigns ids and canonical fields); deletes
// are optimistic with rollback. A version counter guards reminder passes:
// a pass whose snapshot was superseded by a newer mutation skips its
// reconcile instead of committing a stale plan.
type Controller struct {
	store      Store
	reconciler *reminder.Reconciler
	clock      clock.Clock
	log        *slog.Logger

	mu      sync.Mutex
	items   []domain.PantryItem
	version uint64
}

func NewController(store Store, rec *reminder.Reconciler, clk clock.Clock, log *slog.Logger) *Controller {
	return &Controller{store: store, reconciler: rec, clock: clk, log: log}
}

// Items returns a snapshot of the current collection.
func (c *Controller) Items() []domain.PantryItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Refresh replaces the collection with the store's view, reclassifies it and
// replans reminders.
func (c *Controller) Refresh(ctx context.Context) error {
	items, err := c.store.List(ctx)
	if err != nil {
		return fmt.Errorf("listing pantry items: %w", err)
	}
	today := c.clock.Now()

	c.mu.Lock()
	c.items = expiry.ClassifyAll(items, today)
	snap, version := c.snapshotLocked()
	c.mu.Unlock()

	return c.reconcile(ctx, snap, today, version)
}

// Create stores a new item remotely, then merges the server-confirmed item
// (with its assigned id) into the collection. Nothing is inserted locally
// before the store confirms, so a failure needs no rollback.
func (c *Controller) Create(ctx context.Context, item domain.PantryItem) (domain.PantryItem, error) {
	created, err := c.store.Create(ctx, item)
	if err != nil {
		return domain.PantryItem{}, fmt.Errorf("creating %q: %w", item.Name, err)
	}
	today := c.clock.Now()

	c.mu.Lock()
	c.items = expiry.ClassifyAll(append(c.items, created), today)
	snap, version := c.snapshotLocked()
	c.mu.Unlock()

	c.reconcileLogged(ctx, snap, today, version)
	created.Status = expiry.Classify(created.ExpiryDate, today)
	return created, nil
}

// Update stores the item remotely, then replaces it by id. The whole
// collection is reclassified and reminders replanned globally, since the
// reminder total must reflect the full set.
func (c *Controller) Update(ctx context.Context, id string, item domain.PantryItem) (domain.PantryItem, error) {
	updated, err := c.store.Update(ctx, id, item)
	if err != nil {
		return domain.PantryItem{}, fmt.Errorf("updating %q: %w", id, err)
	}
	today := c.clock.Now()

	c.mu.Lock()
	replaced := false
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i] = updated
			replaced = true
			break
		}
	}
	if !replaced {
		c.items = append(c.items, updated)
	}
	c.items = expiry.ClassifyAll(c.items, today)
	snap, version := c.snapshotLocked()
	c.mu.Unlock()

	c.reconcileLogged(ctx, snap, today, version)
	updated.Status = expiry.Classify(updated.ExpiryDate, today)
	return updated, nil
}

// Delete removes the item locally first for responsiveness, then confirms
// with the store. On remote failure the item is reinserted and the error
// surfaced. Reminders are only replanned once the remote outcome is known,
// so a reverted delete causes no scheduling churn.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	idx := slices.IndexFunc(c.items, func(it domain.PantryItem) bool { return it.ID == id })
	if idx < 0 {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	removed := c.items[idx]
	c.items = slices.Delete(c.items, idx, idx+1)
	c.version++
	c.mu.Unlock()

	if err := c.store.Delete(ctx, id); err != nil {
		c.mu.Lock()
		at := min(idx, len(c.items))
		c.items = slices.Insert(c.items, at, removed)
		c.version++
		c.mu.Unlock()
		return fmt.Errorf("deleting %q: %w", removed.Name, err)
	}

	today := c.clock.Now()
	c.mu.Lock()
	c.items = expiry.ClassifyAll(c.items, today)
	snap, version := c.snapshotLocked()
	c.mu.Unlock()

	c.reconcileLogged(ctx, snap, today, version)
	return nil
}

// Tick reclassifies the collection against the current time and replans
// reminders. This is the only path that changes status without a user edit,
// modeling the passage of a day boundary.
func (c *Controller) Tick(ctx context.Context) error {
	today := c.clock.Now()

	c.mu.Lock()
	c.items = expiry.ClassifyAll(c.items, today)
	snap, version := c.snapshotLocked()
	c.mu.Unlock()

	return c.reconcile(ctx, snap, today, version)
}

// Run refreshes once, then ticks at the given interval until ctx is done.
// Overlapping passes are safe: reconciliation is idempotent and stale passes
// skip their commit.
func (c *Controller) Run(ctx context.Context, interval time.Duration) error {
	if err := c.Refresh(ctx); err != nil {
		c.log.Error("initial refresh failed", "err", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := c.Tick(ctx); err != nil {
				c.log.Error("reclassification pass failed", "err", err)
			}
		}
	}
}

// snapshotLocked bumps the collection version and returns a copy of the
// items together with the new version. Callers must hold c.mu.
func (c *Controller) snapshotLocked() ([]domain.PantryItem, uint64) {
	c.version++
	return slices.Clone(c.items), c.version
}

// reconcile plans reminders from the snapshot and commits them unless the
// collection moved on while planning.
func (c *Controller) reconcile(ctx context.Context, snap []domain.PantryItem, today time.Time, version uint64) error {
	events := reminder.Plan(snap, today)

	c.mu.Lock()
	stale := c.version != version
	c.mu.Unlock()
	if stale {
		c.log.Debug("skipping superseded reminder pass", "version", version)
		return nil
	}
	return c.reconciler.Reconcile(ctx, events)
}

// reconcileLogged is reconcile for mutation paths, where a reminder failure
// must not mask a successful store operation.
func (c *Controller) reconcileLogged(ctx context.Context, snap []domain.PantryItem, today time.Time, version uint64) {
	if err := c.reconcile(ctx, snap, today, version); err != nil {
		c.log.Warn("reminder reconciliation failed", "err", err)
	}
}
