package booking

import (
	"context"
	"sync"
	"testing"

	"fitbook/catalog"
	"fitbook/database/repository/reservation"
	"fitbook/models"
	"fitbook/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-09-07 is a Monday.
const monday = "2026-09-07"

func newTestFlow(t *testing.T) (*DefaultFlowService, *reservation.MemoryStore) {
	t.Helper()
	cat := catalog.Seed()
	store := reservation.NewMemoryStore()
	flow := NewFlowService(cat, availability.NewEngine(cat), store, NewMemorySessionStore())
	return flow, store
}

func apply(t *testing.T, flow *DefaultFlowService, sessionID, name, value string) *StepView {
	t.Helper()
	view, err := flow.Apply(context.Background(), sessionID, Action{Name: name, Value: value})
	require.NoError(t, err, "%s %s", name, value)
	return view
}

// Drives a session to the schedule step for the generic group class.
func toGroupSchedule(t *testing.T, flow *DefaultFlowService) string {
	t.Helper()
	view, err := flow.StartSession(context.Background(), "user1")
	require.NoError(t, err)
	id := view.Session.SessionID

	apply(t, flow, id, ActionSelectLocation, "loc_matula")
	apply(t, flow, id, ActionNext, "")
	apply(t, flow, id, ActionSelectService, "svc_group")
	view = apply(t, flow, id, ActionNext, "")

	require.Equal(t, models.StepSchedule, view.Session.Step)
	return id
}

func TestStartSessionOpensAtLocationStep(t *testing.T) {
	flow, _ := newTestFlow(t)
	view, err := flow.StartSession(context.Background(), "user1")
	require.NoError(t, err)

	assert.Equal(t, models.StepLocation, view.Session.Step)
	assert.Equal(t, "user1", view.Session.UserID)
	assert.NotEmpty(t, view.Session.Date)
	assert.Len(t, view.Locations, 5)
}

func TestProviderStepSkippedForGenericService(t *testing.T) {
	flow, _ := newTestFlow(t)
	id := toGroupSchedule(t, flow)

	view, err := flow.View(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, view.Session.ProviderSkip)
	assert.Equal(t, models.AnyProvider(), view.Session.Provider)
}

func TestProviderStepShownWhenChoiceExists(t *testing.T) {
	flow, _ := newTestFlow(t)
	view, err := flow.StartSession(context.Background(), "user1")
	require.NoError(t, err)
	id := view.Session.SessionID

	apply(t, flow, id, ActionSelectLocation, "loc_cowork")
	apply(t, flow, id, ActionNext, "")
	apply(t, flow, id, ActionSelectService, "svc_ems")
	view = apply(t, flow, id, ActionNext, "")

	assert.Equal(t, models.StepProvider, view.Session.Step)
	assert.Len(t, view.Providers, 3)
	assert.False(t, view.Session.ProviderSkip)
}

func TestScheduleResolvesSlots(t *testing.T) {
	flow, _ := newTestFlow(t)
	id := toGroupSchedule(t, flow)

	view := apply(t, flow, id, ActionSelectDate, monday)
	assert.Equal(t, 3, len(view.Slots))
	assert.Equal(t, "18:00", view.Slots[0].String())
}

func TestFullFlowConfirm(t *testing.T) {
	flow, _ := newTestFlow(t)
	id := toGroupSchedule(t, flow)

	apply(t, flow, id, ActionSelectDate, monday)
	apply(t, flow, id, ActionSelectTime, "18:00")
	view := apply(t, flow, id, ActionNext, "")
	require.Equal(t, models.StepConfirm, view.Session.Step)
	require.NotNil(t, view.Summary)
	assert.Equal(t, "Centro La Matula", view.Summary.Location.Name)
	assert.Nil(t, view.Summary.Provider)

	res, err := flow.Confirm(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "user1", res.UserID)
	assert.Equal(t, models.ReservationConfirmed, res.Status)
	assert.Equal(t, "18:00", res.Start.String())
	assert.Equal(t, "19:00", res.End.String())

	// Session is gone after confirmation.
	_, err = flow.View(context.Background(), id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSelectionGatedToCurrentStep(t *testing.T) {
	flow, _ := newTestFlow(t)
	view, err := flow.StartSession(context.Background(), "user1")
	require.NoError(t, err)
	id := view.Session.SessionID

	_, err = flow.Apply(context.Background(), id, Action{Name: ActionSelectService, Value: "svc_group"})
	var invalid *InvalidSelectionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "service", invalid.Field)
}

func TestNextRequiresSelection(t *testing.T) {
	flow, _ := newTestFlow(t)
	view, err := flow.StartSession(context.Background(), "user1")
	require.NoError(t, err)

	_, err = flow.Apply(context.Background(), view.Session.SessionID, Action{Name: ActionNext})
	var invalid *InvalidSelectionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "location", invalid.Field)
}

func TestLocationChangeResetsDownstream(t *testing.T) {
	flow, _ := newTestFlow(t)
	view, err := flow.StartSession(context.Background(), "user1")
	require.NoError(t, err)
	id := view.Session.SessionID

	apply(t, flow, id, ActionSelectLocation, "loc_matula")
	apply(t, flow, id, ActionNext, "")
	apply(t, flow, id, ActionSelectService, "svc_group")
	apply(t, flow, id, ActionBack, "")
	view = apply(t, flow, id, ActionSelectLocation, "loc_cowork")

	assert.Empty(t, view.Session.ServiceTypeID)
	assert.False(t, view.Session.Provider.Chosen())
	assert.Nil(t, view.Session.Time)
	assert.Empty(t, view.Session.Slots)
}

func TestBackSkipsProviderStepWhenSkipped(t *testing.T) {
	flow, _ := newTestFlow(t)
	id := toGroupSchedule(t, flow)

	view := apply(t, flow, id, ActionBack, "")
	assert.Equal(t, models.StepService, view.Session.Step)
}

func TestBackFromFirstStepFails(t *testing.T) {
	flow, _ := newTestFlow(t)
	view, err := flow.StartSession(context.Background(), "user1")
	require.NoError(t, err)

	_, err = flow.Apply(context.Background(), view.Session.SessionID, Action{Name: ActionBack})
	assert.ErrorIs(t, err, ErrCannotGoBack)
}

func TestSelectTimeRejectsUnlistedSlot(t *testing.T) {
	flow, _ := newTestFlow(t)
	id := toGroupSchedule(t, flow)
	apply(t, flow, id, ActionSelectDate, monday)

	_, err := flow.Apply(context.Background(), id, Action{Name: ActionSelectTime, Value: "03:00"})
	var invalid *InvalidSelectionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "time", invalid.Field)
}

func TestServiceNotOfferedAtLocation(t *testing.T) {
	flow, _ := newTestFlow(t)
	view, err := flow.StartSession(context.Background(), "user1")
	require.NoError(t, err)
	id := view.Session.SessionID

	// Nucleo only has EMS rules.
	apply(t, flow, id, ActionSelectLocation, "loc_nucleo")
	apply(t, flow, id, ActionNext, "")
	_, err = flow.Apply(context.Background(), id, Action{Name: ActionSelectService, Value: "svc_group"})
	var invalid *InvalidSelectionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "service", invalid.Field)
}

func toPersonalConfirm(t *testing.T, flow *DefaultFlowService, userID string) string {
	t.Helper()
	view, err := flow.StartSession(context.Background(), userID)
	require.NoError(t, err)
	id := view.Session.SessionID

	apply(t, flow, id, ActionSelectLocation, "loc_matula")
	apply(t, flow, id, ActionNext, "")
	apply(t, flow, id, ActionSelectService, "svc_personal")
	apply(t, flow, id, ActionNext, "")
	apply(t, flow, id, ActionSelectProvider, "pro_ruben")
	apply(t, flow, id, ActionNext, "")
	apply(t, flow, id, ActionSelectDate, monday)
	apply(t, flow, id, ActionSelectTime, "10:00")
	view = apply(t, flow, id, ActionNext, "")
	require.Equal(t, models.StepConfirm, view.Session.Step)
	return id
}

func TestConfirmStaleSlot(t *testing.T) {
	flow, store := newTestFlow(t)
	id := toPersonalConfirm(t, flow, "user1")

	// The slot is taken behind the session's back.
	start, err := models.ParseMinuteOfDay("10:00")
	require.NoError(t, err)
	_, err = store.Create(context.Background(), models.ReservationDraft{
		UserID: "user2", LocationID: "loc_matula", ServiceTypeID: "svc_personal",
		Provider: models.SpecificProvider("pro_ruben"), Date: monday,
		Start: start, End: start + 60,
	})
	require.NoError(t, err)

	_, err = flow.Confirm(context.Background(), id)
	assert.ErrorIs(t, err, ErrStaleSlot)

	// The session survives so the user can pick another time.
	view, err := flow.View(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirm, view.Session.Step)
}

func TestConcurrentConfirmSingleWinner(t *testing.T) {
	flow, store := newTestFlow(t)
	first := toPersonalConfirm(t, flow, "user1")
	second := toPersonalConfirm(t, flow, "user2")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{first, second} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = flow.Confirm(context.Background(), id)
		}(i, id)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, ErrStaleSlot)
			failures++
		}
	}
	assert.Equal(t, 1, failures)

	all, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestConfirmRequiresConfirmStep(t *testing.T) {
	flow, _ := newTestFlow(t)
	id := toGroupSchedule(t, flow)

	_, err := flow.Confirm(context.Background(), id)
	var invalid *InvalidSelectionError
	assert.ErrorAs(t, err, &invalid)
}

func TestAbandonDeletesSession(t *testing.T) {
	flow, _ := newTestFlow(t)
	view, err := flow.StartSession(context.Background(), "user1")
	require.NoError(t, err)

	require.NoError(t, flow.Abandon(context.Background(), view.Session.SessionID))
	_, err = flow.View(context.Background(), view.Session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
