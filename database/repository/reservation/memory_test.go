package reservation

import (
	"context"
	"testing"
	"time"

	"fitbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draft(userID, locationID, date string, start models.MinuteOfDay) models.ReservationDraft {
	return models.ReservationDraft{
		UserID:        userID,
		LocationID:    locationID,
		ServiceTypeID: "svc_group",
		Provider:      models.AnyProvider(),
		Date:          date,
		Start:         start,
		End:           start + 60,
	}
}

func TestMemoryStoreCreateAndList(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	res, err := store.Create(ctx, draft("user1", "loc_a", "2026-09-07", 1080))
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, models.ReservationConfirmed, res.Status)
	assert.False(t, res.CreatedAt.IsZero())

	_, err = store.Create(ctx, draft("user2", "loc_b", "2026-09-07", 1080))
	require.NoError(t, err)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	day, err := store.ListForDay(ctx, "loc_a", "2026-09-07")
	require.NoError(t, err)
	assert.Len(t, day, 1)

	mine, err := store.ListByUser(ctx, "user2")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, "loc_b", mine[0].LocationID)
}

func TestMemoryStoreCancel(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	res, err := store.Create(ctx, draft("user1", "loc_a", "2026-09-07", 1080))
	require.NoError(t, err)

	require.NoError(t, store.Cancel(ctx, res.ID))
	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCancelled, all[0].Status)

	// Cancelling again or cancelling an unknown id is a no-op.
	require.NoError(t, store.Cancel(ctx, res.ID))
	require.NoError(t, store.Cancel(ctx, "missing"))
}

func TestMemoryStoreCompleteBefore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

	_, err := store.Create(ctx, draft("user1", "loc_a", "2026-09-06", 600)) // past day
	require.NoError(t, err)
	_, err = store.Create(ctx, draft("user1", "loc_a", "2026-09-07", 600)) // ended 11:00
	require.NoError(t, err)
	_, err = store.Create(ctx, draft("user1", "loc_a", "2026-09-07", 1080)) // later today
	require.NoError(t, err)

	n, err := store.CompleteBefore(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err := store.List(ctx)
	require.NoError(t, err)
	completed := 0
	for _, r := range all {
		if r.Status == models.ReservationCompleted {
			completed++
		}
	}
	assert.Equal(t, 2, completed)

	// Idempotent on a second sweep.
	n, err = store.CompleteBefore(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, n)
}
