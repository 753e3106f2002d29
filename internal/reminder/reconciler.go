package reminder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/freshtrackhq/freshtrack/internal/domain"
	"github.com/freshtrackhq/freshtrack/internal/notify"
)

// Reconciler commits a planned reminder set to the notification backend.
// Every pass cancels everything previously scheduled and schedules the new
// set from scratch. Diffing would save redundant work, but with at most a
// handful of reminders per item the wholesale replace is simpler and cannot
// leave duplicates or orphans behind.
type Reconciler struct {
	notifier notify.Notifier
	log      *slog.Logger
}

func NewReconciler(notifier notify.Notifier, log *slog.Logger) *Reconciler {
	return &Reconciler{notifier: notifier, log: log}
}

// Reconcile replaces the scheduled reminder set with events. When permission
// is denied the cancellation still stands, so revoked permission never
// leaves stale reminders behind. A failure to schedule one event is logged
// and does not stop the rest of the batch.
func (r *Reconciler) Reconcile(ctx context.Context, events []domain.ReminderEvent) error {
	if err := r.notifier.CancelAll(ctx); err != nil {
		return fmt.Errorf("cancelling scheduled reminders: %w", err)
	}

	granted, err := r.notifier.RequestPermission(ctx)
	if err != nil {
		return fmt.Errorf("requesting notification permission: %w", err)
	}
	if !granted {
		r.log.Debug("notifications not permitted, nothing scheduled", "planned", len(events))
		return nil
	}

	for _, ev := range events {
		if err := r.notifier.Schedule(ctx, ev); err != nil {
			r.log.Warn("scheduling reminder failed",
				"item_id", ev.ItemID, "kind", ev.Kind, "err", err)
		}
	}
	return nil
}
