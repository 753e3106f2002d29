package domain

import "time"

// ReminderEvent is a planned notification about an item's impending or past
// expiry. Events are derived fresh on every planning pass and never persisted;
// each reconciliation replaces the previously scheduled set wholesale.
type ReminderEvent struct {
	ItemID string
	Kind   ReminderKind

	// FireAt is when the notification should be delivered. Ignored when
	// Immediate is set (overdue reminders fire right away).
	FireAt    time.Time
	Immediate bool

	Title string
	Body  string
}
