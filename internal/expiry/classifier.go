package expiry

import (
	"time"

	"github.com/freshtrackhq/freshtrack/internal/domain"
)

// expiringWindowDays is the number of days before expiry at which an item
// counts as "expiring".
const expiringWindowDays = 3

// DaysUntil returns the number of whole calendar days from today until
// expiry. Both operands are reduced to their date components, so time of
// day and DST transitions never skew the count.
func DaysUntil(expiry, today time.Time) int {
	e := utcDate(expiry)
	t := utcDate(today)
	return int(e.Sub(t).Hours() / 24)
}

func utcDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Classify maps a raw expiry string to a freshness state relative to today.
// An unresolvable date classifies as fresh: a typo must never silently mark
// food as expired.
func Classify(raw string, today time.Time) domain.FreshnessStatus {
	d, ok := Resolve(raw)
	if !ok {
		return domain.StatusFresh
	}
	days := DaysUntil(d, today)
	switch {
	case days < 0:
		return domain.StatusExpired
	case days <= expiringWindowDays:
		return domain.StatusExpiring
	default:
		return domain.StatusFresh
	}
}

// ClassifyAll returns a copy of items with each Status recomputed against
// today. The input slice is never mutated, and items are classified
// independently of one another.
func ClassifyAll(items []domain.PantryItem, today time.Time) []domain.PantryItem {
	out := make([]domain.PantryItem, len(items))
	for i, it := range items {
		it.Status = Classify(it.ExpiryDate, today)
		out[i] = it
	}
	return out
}
