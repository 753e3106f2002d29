// Package expiry resolves free-form expiry date strings and classifies
// pantry items into freshness states.
package expiry

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// textLayouts are the free-text forms tried before falling back to numeric
// token decomposition. Most specific first.
var textLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

var tokenSep = regexp.MustCompile(`[/-]`)

// Resolve parses a free-form expiry string into a date at local midnight.
// It first tries the known textual and ISO layouts, then falls back to
// splitting on "/" or "-" into exactly three integer tokens read as
// day, month, year. Day-first is intentional and must not be changed to
// month-first: "30/11/2025" and "Nov 30, 2025" resolve to the same date.
// The second return value is false when the string cannot be resolved;
// callers decide the fallback policy.
func Resolve(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range textLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return midnight(y, m, d), true
		}
	}
	return resolveTokens(s)
}

func resolveTokens(s string) (time.Time, bool) {
	parts := tokenSep.Split(s, -1)
	if len(parts) != 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := midnight(year, time.Month(month), day)
	// time.Date normalizes overflow (Feb 30 becomes Mar 2); a round-trip
	// mismatch means the tokens did not name a real calendar day.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func midnight(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
