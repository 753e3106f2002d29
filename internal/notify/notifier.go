// Package notify abstracts the notification subsystem that reminder
// reconciliation schedules against.
package notify

import (
	"context"

	"github.com/freshtrackhq/freshtrack/internal/domain"
)

// Notifier is the port to a notification backend. CancelAll followed by a
// series of Schedule calls replaces the scheduled set wholesale; backends
// must not merge with previously scheduled reminders.
type Notifier interface {
	// RequestPermission reports whether the backend may deliver
	// notifications. Denial is a normal outcome, not an error.
	RequestPermission(ctx context.Context) (bool, error)

	// CancelAll drops every reminder currently scheduled with the backend.
	CancelAll(ctx context.Context) error

	// Schedule registers a single reminder for delivery at ev.FireAt, or
	// immediately when ev.Immediate is set.
	Schedule(ctx context.Context, ev domain.ReminderEvent) error
}

// Noop is the Notifier for platforms without notification support. Every
// operation succeeds and does nothing, so reconciliation degrades cleanly.
type Noop struct{}

func (Noop) RequestPermission(ctx context.Context) (bool, error) { return false, nil }

func (Noop) CancelAll(ctx context.Context) error { return nil }

func (Noop) Schedule(ctx context.Context, ev domain.ReminderEvent) error { return nil }
