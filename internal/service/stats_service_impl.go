package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/freshtrackhq/freshtrack/internal/clock"
	"github.com/freshtrackhq/freshtrack/internal/repository"
)

type statsService struct {
	waste repository.WasteRepo
	clock clock.Clock
}

func NewStatsService(waste repository.WasteRepo, clk clock.Clock) StatsService {
	return &statsService{waste: waste, clock: clk}
}

// WasteStats aggregates waste events into a 7-day trend, a headline summary
// and a per-category breakdown. The trend window is the last 7 days
// including today; the delta compares it with the 7 days before that.
func (s *statsService) WasteStats(ctx context.Context) (*WasteStats, error) {
	today := s.clock.Now().UTC().Truncate(24 * time.Hour)
	windowStart := today.AddDate(0, 0, -13)

	counts, err := s.waste.CountsByDay(ctx, windowStart)
	if err != nil {
		return nil, fmt.Errorf("loading daily counts: %w", err)
	}
	total, err := s.waste.TotalEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting events: %w", err)
	}
	saved, wasted, err := s.waste.ValueTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("summing values: %w", err)
	}
	categories, err := s.waste.CategoryBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregating categories: %w", err)
	}

	var trend []WastePoint
	lastWeek, prevWeek := 0, 0
	for i := 13; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		count := counts[day.Format("2006-01-02")]
		if i <= 6 {
			lastWeek += count
			trend = append(trend, WastePoint{Label: day.Format("Mon"), Value: count})
		} else {
			prevWeek += count
		}
	}

	breakdown := make([]CategoryWaste, len(categories))
	for i, row := range categories {
		breakdown[i] = CategoryWaste{
			Category:    row.Category,
			WastedCount: row.WastedCount,
			SavedCount:  row.SavedCount,
			WastedValue: row.WastedValue,
			SavedValue:  row.SavedValue,
		}
	}

	plural := "s"
	if total == 1 {
		plural = ""
	}
	return &WasteStats{
		Trend: trend,
		Summary: WasteSummary{
			Total:                fmt.Sprintf("%d item%s", total, plural),
			Delta:                deltaPercent(lastWeek, prevWeek),
			SavedValue:           saved,
			WastedValue:          wasted,
			SavedValueFormatted:  formatCurrency(saved),
			WastedValueFormatted: formatCurrency(wasted),
		},
		CategoryBreakdown: breakdown,
	}, nil
}

// deltaPercent compares the last 7 days with the previous 7. With no prior
// activity the delta is 0% when this week is also empty, 100% otherwise.
func deltaPercent(lastWeek, prevWeek int) string {
	if prevWeek == 0 {
		if lastWeek == 0 {
			return "0%"
		}
		return "100%"
	}
	change := float64(lastWeek-prevWeek) / float64(prevWeek) * 100
	return fmt.Sprintf("%+.0f%%", change)
}

// formatCurrency renders an amount with two decimals and thousands
// separators, no currency symbol.
func formatCurrency(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + b.String() + "." + fracPart
}
