package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/freshtrackhq/freshtrack/internal/clock"
	"github.com/freshtrackhq/freshtrack/internal/domain"
	"github.com/freshtrackhq/freshtrack/internal/repository"
	"github.com/freshtrackhq/freshtrack/internal/service"
	"github.com/freshtrackhq/freshtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)

func expiryOffset(days int) string {
	return now.AddDate(0, 0, days).Format("2006-01-02")
}

func newItemService(t *testing.T) (service.ItemService, *repository.SQLiteWasteRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	items := repository.NewSQLiteItemRepo(database)
	waste := repository.NewSQLiteWasteRepo(database)
	svc := service.NewItemService(items, testutil.NewTestUoW(database), clock.Fixed{T: now})
	return svc, waste
}

func TestItemService_CreateStampsStatus(t *testing.T) {
	svc, _ := newItemService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.PantryItem{
		Name:       "Milk",
		ExpiryDate: expiryOffset(2),
		Status:     domain.StatusFresh, // client-sent status is ignored
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusExpiring, created.Status)
}

func TestItemService_CreateUnparsableDateFailsOpen(t *testing.T) {
	svc, _ := newItemService(t)

	created, err := svc.Create(context.Background(), domain.PantryItem{
		Name:       "Mystery jar",
		ExpiryDate: "sometime next year",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFresh, created.Status)
}

func TestItemService_ListCorrectsDriftedStatus(t *testing.T) {
	database := testutil.NewTestDB(t)
	items := repository.NewSQLiteItemRepo(database)
	ctx := context.Background()

	// Stored as fresh, but the date is already past.
	stale := testutil.NewTestItem("Old milk",
		testutil.WithExpiry(expiryOffset(-2)),
		testutil.WithStatus(domain.StatusFresh))
	require.NoError(t, items.Create(ctx, stale))

	svc := service.NewItemService(items, testutil.NewTestUoW(database), clock.Fixed{T: now})
	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.StatusExpired, listed[0].Status)

	// Correction is persisted, not just reported.
	stored, err := items.GetByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, stored.Status)
}

func TestItemService_UpdateReclassifies(t *testing.T) {
	svc, _ := newItemService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.PantryItem{Name: "Milk", ExpiryDate: expiryOffset(10)})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFresh, created.Status)

	updated, err := svc.Update(ctx, created.ID, domain.PantryItem{Name: "Milk", ExpiryDate: expiryOffset(-1)})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, updated.Status)
}

func TestItemService_UpdateMissing(t *testing.T) {
	svc, _ := newItemService(t)
	_, err := svc.Update(context.Background(), "ghost", domain.PantryItem{Name: "Ghost"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestItemService_DeleteRecordsEaten(t *testing.T) {
	svc, waste := newItemService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.PantryItem{
		Name:       "Apples",
		ExpiryDate: expiryOffset(5),
		Category:   "Fruits",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))

	rows, err := waste.CategoryBreakdown(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].SavedCount, "fresh item removed counts as eaten")
	assert.Equal(t, 0, rows[0].WastedCount)
}

func TestItemService_DeleteRecordsSpoiled(t *testing.T) {
	svc, waste := newItemService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.PantryItem{
		Name:       "Forgotten cheese",
		ExpiryDate: expiryOffset(-10),
		Category:   "Dairy",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))

	rows, err := waste.CategoryBreakdown(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].WastedCount, "expired item removed counts as spoiled")
}

func TestItemService_DeleteMissing(t *testing.T) {
	svc, _ := newItemService(t)
	assert.ErrorIs(t, svc.Delete(context.Background(), "ghost"), repository.ErrNotFound)
}
