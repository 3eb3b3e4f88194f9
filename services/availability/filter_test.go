package availability

import (
	"testing"

	"fitbook/models"

	"github.com/stretchr/testify/assert"
)

func confirmedRes(t *testing.T, serviceTypeID string, provider models.ProviderRef, start string) models.Reservation {
	t.Helper()
	s := minute(t, start)
	return models.Reservation{
		ID: "res", UserID: "user", LocationID: "loc_a", ServiceTypeID: serviceTypeID,
		Provider: provider, Date: "2026-09-07", Start: s, End: s + 60,
		Status: models.ReservationConfirmed,
	}
}

func selection(serviceTypeID string, provider models.ProviderRef) Selection {
	return Selection{LocationID: "loc_a", ServiceTypeID: serviceTypeID, Provider: provider, Date: "2026-09-07"}
}

func TestFilterConflictsCapacity(t *testing.T) {
	candidates := minutes(t, "18:00", "19:00")
	reservations := []models.Reservation{
		confirmedRes(t, "svc_x", models.AnyProvider(), "18:00"),
		confirmedRes(t, "svc_x", models.AnyProvider(), "18:00"),
	}

	got := FilterConflicts(candidates, reservations, selection("svc_x", models.AnyProvider()), 2)
	assert.Equal(t, minutes(t, "19:00"), got)

	got = FilterConflicts(candidates, reservations, selection("svc_x", models.AnyProvider()), 3)
	assert.Equal(t, minutes(t, "18:00", "19:00"), got)
}

func TestFilterConflictsIgnoresNonConfirmed(t *testing.T) {
	cancelled := confirmedRes(t, "svc_x", models.AnyProvider(), "18:00")
	cancelled.Status = models.ReservationCancelled
	completed := confirmedRes(t, "svc_x", models.AnyProvider(), "18:00")
	completed.Status = models.ReservationCompleted

	got := FilterConflicts(minutes(t, "18:00"), []models.Reservation{cancelled, completed},
		selection("svc_x", models.AnyProvider()), 1)
	assert.Equal(t, minutes(t, "18:00"), got)
}

func TestFilterConflictsProviderDoubleBooking(t *testing.T) {
	// The provider is busy with a different service at that time.
	reservations := []models.Reservation{
		confirmedRes(t, "svc_other", models.SpecificProvider("pro_1"), "10:00"),
	}

	got := FilterConflicts(minutes(t, "10:00", "11:00"), reservations,
		selection("svc_x", models.SpecificProvider("pro_1")), 5)
	assert.Equal(t, minutes(t, "11:00"), got)

	// A different provider is not blocked.
	got = FilterConflicts(minutes(t, "10:00", "11:00"), reservations,
		selection("svc_x", models.SpecificProvider("pro_2")), 5)
	assert.Equal(t, minutes(t, "10:00", "11:00"), got)
}

func TestFilterConflictsCapacityCountsSameServiceOnly(t *testing.T) {
	reservations := []models.Reservation{
		confirmedRes(t, "svc_other", models.AnyProvider(), "18:00"),
	}
	got := FilterConflicts(minutes(t, "18:00"), reservations, selection("svc_x", models.AnyProvider()), 1)
	assert.Equal(t, minutes(t, "18:00"), got)
}

func TestSlotFreeOtherDateDoesNotCount(t *testing.T) {
	res := confirmedRes(t, "svc_x", models.AnyProvider(), "18:00")
	res.Date = "2026-09-08"
	assert.True(t, SlotFree(minute(t, "18:00"), []models.Reservation{res},
		selection("svc_x", models.AnyProvider()), 1))
}
