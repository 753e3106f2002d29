package service_test

import (
	"context"
	"testing"

	"github.com/freshtrackhq/freshtrack/internal/clock"
	"github.com/freshtrackhq/freshtrack/internal/domain"
	"github.com/freshtrackhq/freshtrack/internal/repository"
	"github.com/freshtrackhq/freshtrack/internal/service"
	"github.com/freshtrackhq/freshtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsService(t *testing.T) (service.StatsService, *repository.SQLiteWasteRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	waste := repository.NewSQLiteWasteRepo(database)
	return service.NewStatsService(waste, clock.Fixed{T: now}), waste
}

func TestWasteStats_Empty(t *testing.T) {
	svc, _ := newStatsService(t)

	stats, err := svc.WasteStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0 items", stats.Summary.Total)
	assert.Equal(t, "0%", stats.Summary.Delta)
	assert.Len(t, stats.Trend, 7)
	for _, p := range stats.Trend {
		assert.Zero(t, p.Value)
	}
}

func TestWasteStats_TrendAndTotals(t *testing.T) {
	svc, waste := newStatsService(t)
	ctx := context.Background()

	require.NoError(t, waste.Record(ctx, testutil.NewTestWasteEvent("Milk", domain.OutcomeSpoiled,
		testutil.WithDeletedAt(now), testutil.WithWasteValue(1234.5))))
	require.NoError(t, waste.Record(ctx, testutil.NewTestWasteEvent("Apple", domain.OutcomeEaten,
		testutil.WithDeletedAt(now.AddDate(0, 0, -1)), testutil.WithWasteValue(1.5))))

	stats, err := svc.WasteStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2 items", stats.Summary.Total)
	assert.Equal(t, "100%", stats.Summary.Delta, "no prior-week activity and some this week")
	assert.InDelta(t, 1.5, stats.Summary.SavedValue, 0.001)
	assert.InDelta(t, 1234.5, stats.Summary.WastedValue, 0.001)
	assert.Equal(t, "1,234.50", stats.Summary.WastedValueFormatted)
	assert.Equal(t, "1.50", stats.Summary.SavedValueFormatted)

	require.Len(t, stats.Trend, 7)
	assert.Equal(t, now.Format("Mon"), stats.Trend[6].Label, "trend ends today")
	assert.Equal(t, 1, stats.Trend[6].Value)
	assert.Equal(t, 1, stats.Trend[5].Value)
}

func TestWasteStats_SingularTotal(t *testing.T) {
	svc, waste := newStatsService(t)
	ctx := context.Background()

	require.NoError(t, waste.Record(ctx, testutil.NewTestWasteEvent("Milk", domain.OutcomeEaten,
		testutil.WithDeletedAt(now))))

	stats, err := svc.WasteStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1 item", stats.Summary.Total)
}

func TestWasteStats_DeltaAgainstPreviousWeek(t *testing.T) {
	svc, waste := newStatsService(t)
	ctx := context.Background()

	// Two events last week, three this week: +50%.
	for i := 0; i < 2; i++ {
		require.NoError(t, waste.Record(ctx, testutil.NewTestWasteEvent("old", domain.OutcomeSpoiled,
			testutil.WithDeletedAt(now.AddDate(0, 0, -8)))))
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, waste.Record(ctx, testutil.NewTestWasteEvent("new", domain.OutcomeSpoiled,
			testutil.WithDeletedAt(now.AddDate(0, 0, -1)))))
	}

	stats, err := svc.WasteStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+50%", stats.Summary.Delta)
}

func TestWasteStats_DeltaNegative(t *testing.T) {
	svc, waste := newStatsService(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, waste.Record(ctx, testutil.NewTestWasteEvent("old", domain.OutcomeSpoiled,
			testutil.WithDeletedAt(now.AddDate(0, 0, -8)))))
	}
	require.NoError(t, waste.Record(ctx, testutil.NewTestWasteEvent("new", domain.OutcomeSpoiled,
		testutil.WithDeletedAt(now))))

	stats, err := svc.WasteStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "-75%", stats.Summary.Delta)
}

func TestWasteStats_CategoryBreakdown(t *testing.T) {
	svc, waste := newStatsService(t)
	ctx := context.Background()

	require.NoError(t, waste.Record(ctx, testutil.NewTestWasteEvent("Milk", domain.OutcomeSpoiled,
		testutil.WithDeletedAt(now), testutil.WithWasteCategory("Dairy"))))
	require.NoError(t, waste.Record(ctx, testutil.NewTestWasteEvent("Apple", domain.OutcomeEaten,
		testutil.WithDeletedAt(now), testutil.WithWasteCategory("Fruits"))))

	stats, err := svc.WasteStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.CategoryBreakdown, 2)
	assert.Equal(t, "Dairy", stats.CategoryBreakdown[0].Category, "highest waste first")
}
