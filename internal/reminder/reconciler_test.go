package reminder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/freshtrackhq/freshtrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNotifier records the scheduled set the way a real backend would hold it.
type fakeNotifier struct {
	granted   bool
	scheduled []domain.ReminderEvent
	cancels   int
	failKinds map[domain.ReminderKind]bool
	permErr   error
	cancelErr error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{granted: true}
}

func (f *fakeNotifier) RequestPermission(ctx context.Context) (bool, error) {
	return f.granted, f.permErr
}

func (f *fakeNotifier) CancelAll(ctx context.Context) error {
	f.cancels++
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.scheduled = nil
	return nil
}

func (f *fakeNotifier) Schedule(ctx context.Context, ev domain.ReminderEvent) error {
	if f.failKinds[ev.Kind] {
		return errors.New("backend rejected event")
	}
	f.scheduled = append(f.scheduled, ev)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvents() []domain.ReminderEvent {
	fire := time.Date(2025, 11, 20, 9, 0, 0, 0, time.Local)
	return []domain.ReminderEvent{
		{ItemID: "a", Kind: domain.KindT1, FireAt: fire, Title: "Milk expires tomorrow"},
		{ItemID: "a", Kind: domain.KindT0, FireAt: fire.AddDate(0, 0, 1), Title: "Milk expires today"},
		{ItemID: "b", Kind: domain.KindOverdue, Immediate: true, Title: "Eggs have expired"},
	}
}

func TestReconcile_ReplacesScheduledSet(t *testing.T) {
	n := newFakeNotifier()
	r := NewReconciler(n, discardLogger())

	require.NoError(t, r.Reconcile(context.Background(), testEvents()))
	assert.Equal(t, 1, n.cancels)
	assert.Len(t, n.scheduled, 3)
}

func TestReconcile_Idempotent(t *testing.T) {
	n := newFakeNotifier()
	r := NewReconciler(n, discardLogger())
	events := testEvents()

	require.NoError(t, r.Reconcile(context.Background(), events))
	once := append([]domain.ReminderEvent(nil), n.scheduled...)

	require.NoError(t, r.Reconcile(context.Background(), events))
	assert.Equal(t, once, n.scheduled, "second pass must leave the same scheduled set")
	assert.Equal(t, 2, n.cancels)
}

func TestReconcile_PermissionDeniedStillCancels(t *testing.T) {
	n := newFakeNotifier()
	n.granted = false
	r := NewReconciler(n, discardLogger())

	// Seed a stale reminder from an earlier run.
	n.scheduled = []domain.ReminderEvent{{ItemID: "stale", Kind: domain.KindT0}}

	require.NoError(t, r.Reconcile(context.Background(), testEvents()))
	assert.Empty(t, n.scheduled, "stale reminders must not survive a denied permission")
}

func TestReconcile_SingleFailureDoesNotAbortBatch(t *testing.T) {
	n := newFakeNotifier()
	n.failKinds = map[domain.ReminderKind]bool{domain.KindT1: true}
	r := NewReconciler(n, discardLogger())

	require.NoError(t, r.Reconcile(context.Background(), testEvents()))
	assert.Len(t, n.scheduled, 2, "remaining events are still attempted")
}

func TestReconcile_CancelFailurePropagates(t *testing.T) {
	n := newFakeNotifier()
	n.cancelErr = errors.New("backend down")
	r := NewReconciler(n, discardLogger())

	err := r.Reconcile(context.Background(), testEvents())
	require.Error(t, err)
	assert.Empty(t, n.scheduled)
}

func TestReconcile_EmptyPlanClearsEverything(t *testing.T) {
	n := newFakeNotifier()
	r := NewReconciler(n, discardLogger())

	require.NoError(t, r.Reconcile(context.Background(), testEvents()))
	require.Len(t, n.scheduled, 3)

	require.NoError(t, r.Reconcile(context.Background(), nil))
	assert.Empty(t, n.scheduled)
}
