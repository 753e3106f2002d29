// Package reminder plans reminder events for pantry items and reconciles
// them against a notification backend.
package reminder

import (
	"fmt"
	"time"

	"github.com/freshtrackhq/freshtrack/internal/domain"
	"github.com/freshtrackhq/freshtrack/internal/expiry"
)

// fireHour is the local hour of day at which scheduled reminders fire.
const fireHour = 9

// Plan derives the full reminder set for items relative to today. It is a
// pure function of its inputs: every call replans from scratch, which keeps
// repeated passes idempotent.
//
// Per item with a resolvable expiry date:
//   - expiring in 3+ days: T-3, T-1 and T-0 reminders at 09:00 local;
//   - expiring tomorrow: T-1 and T-0;
//   - expiring today: T-0 only;
//   - expired within the last day: a single immediate overdue notice;
//   - expired earlier, or unresolvable date: nothing.
func Plan(items []domain.PantryItem, today time.Time) []domain.ReminderEvent {
	var events []domain.ReminderEvent
	for _, it := range items {
		d, ok := expiry.Resolve(it.ExpiryDate)
		if !ok {
			continue
		}
		days := expiry.DaysUntil(d, today)
		switch {
		case days >= 0:
			if days >= 3 {
				events = append(events, domain.ReminderEvent{
					ItemID: it.ID,
					Kind:   domain.KindT3,
					FireAt: fireAt(d, -3),
					Title:  fmt.Sprintf("%s expires in 3 days", it.Name),
					Body:   "Plan a meal around it before it goes to waste.",
				})
			}
			if days >= 1 {
				events = append(events, domain.ReminderEvent{
					ItemID: it.ID,
					Kind:   domain.KindT1,
					FireAt: fireAt(d, -1),
					Title:  fmt.Sprintf("%s expires tomorrow", it.Name),
					Body:   "Use it soon or move it to the freezer.",
				})
			}
			events = append(events, domain.ReminderEvent{
				ItemID: it.ID,
				Kind:   domain.KindT0,
				FireAt: fireAt(d, 0),
				Title:  fmt.Sprintf("%s expires today", it.Name),
				Body:   "Last day to use it.",
			})
		case days >= -1:
			events = append(events, domain.ReminderEvent{
				ItemID:    it.ID,
				Kind:      domain.KindOverdue,
				Immediate: true,
				Title:     fmt.Sprintf("%s has expired", it.Name),
				Body:      "It expired yesterday, check before use.",
			})
		}
	}
	return events
}

// fireAt places a reminder at 09:00 local on the day offsetDays relative to
// the expiry date.
func fireAt(expiryDate time.Time, offsetDays int) time.Time {
	d := expiryDate.AddDate(0, 0, offsetDays)
	return time.Date(d.Year(), d.Month(), d.Day(), fireHour, 0, 0, 0, d.Location())
}
