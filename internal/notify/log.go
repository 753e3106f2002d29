package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/freshtrackhq/freshtrack/internal/domain"
)

// LogNotifier delivers reminders to the structured log. Scheduled reminders
// are armed with in-process timers; CancelAll disarms whatever is pending.
// Permission is always granted. Mostly useful for the console agent and for
// local development.
type LogNotifier struct {
	log *slog.Logger

	mu     sync.Mutex
	timers []*time.Timer
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) RequestPermission(ctx context.Context) (bool, error) {
	return true, nil
}

func (n *LogNotifier) CancelAll(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, t := range n.timers {
		t.Stop()
	}
	n.timers = nil
	return nil
}

func (n *LogNotifier) Schedule(ctx context.Context, ev domain.ReminderEvent) error {
	delay := time.Until(ev.FireAt)
	if ev.Immediate || delay <= 0 {
		n.deliver(ev)
		return nil
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.timers = append(n.timers, time.AfterFunc(delay, func() { n.deliver(ev) }))
	return nil
}

func (n *LogNotifier) deliver(ev domain.ReminderEvent) {
	n.log.Info("reminder",
		"title", ev.Title,
		"body", ev.Body,
		"item_id", ev.ItemID,
		"kind", ev.Kind,
	)
}
