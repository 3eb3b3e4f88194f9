package booking

import (
	"context"
	"time"

	"fitbook/models"
	"fitbook/services/availability"

	"github.com/google/uuid"
)

// StartSession opens a fresh wizard at the location step with the date
// defaulted to today.
func (s *DefaultFlowService) StartSession(ctx context.Context, userID string) (*StepView, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Step:      models.StepLocation,
		Date:      time.Now().Format("2006-01-02"),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return s.view(session), nil
}

func (s *DefaultFlowService) View(ctx context.Context, sessionID string) (*StepView, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// Apply runs one wizard action against the session and persists the
// result. A refused transition leaves the session untouched.
func (s *DefaultFlowService) Apply(ctx context.Context, sessionID string, action Action) (*StepView, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch action.Name {
	case ActionSelectLocation:
		err = s.selectLocation(session, action.Value)
	case ActionSelectService:
		err = s.selectService(session, action.Value)
	case ActionSelectProvider:
		err = s.selectProvider(session, action.Value)
	case ActionSelectDate:
		err = s.selectDate(ctx, session, action.Value)
	case ActionSelectTime:
		err = s.selectTime(session, action.Value)
	case ActionNext:
		err = s.next(ctx, session)
	case ActionBack:
		err = s.back(session)
	default:
		err = invalidSelection("action", "unknown action "+action.Name)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return s.view(session), nil
}

func (s *DefaultFlowService) Abandon(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

func (s *DefaultFlowService) selectLocation(session *models.BookingSession, id string) error {
	if session.Step != models.StepLocation {
		return invalidSelection("location", "not at the location step")
	}
	loc, ok := s.Catalog.LocationByID(id)
	if !ok || !loc.Active {
		return invalidSelection("location", "unknown or inactive location")
	}
	if session.LocationID != id {
		// Downstream context is invalidated by a location change.
		session.ServiceTypeID = ""
		session.Provider = models.ProviderRef{}
		session.Time = nil
		session.Slots = nil
		session.ProviderSkip = false
	}
	session.LocationID = id
	return nil
}

func (s *DefaultFlowService) selectService(session *models.BookingSession, id string) error {
	if session.Step != models.StepService {
		return invalidSelection("service", "not at the service step")
	}
	if _, ok := s.Catalog.ServiceTypeByID(id); !ok || !s.Catalog.HasRule(session.LocationID, id) {
		return invalidSelection("service", "service not offered at this location")
	}
	if session.ServiceTypeID != id {
		session.Provider = models.ProviderRef{}
		session.Time = nil
		session.Slots = nil
		session.ProviderSkip = false
	}
	session.ServiceTypeID = id
	return nil
}

func (s *DefaultFlowService) selectProvider(session *models.BookingSession, id string) error {
	if session.Step != models.StepProvider {
		return invalidSelection("provider", "not at the provider step")
	}
	for _, p := range s.Catalog.EligibleProviders(session.LocationID, session.ServiceTypeID) {
		if p.ID == id {
			if ref, bound := session.Provider.Specific(); !bound || ref != id {
				session.Time = nil
				session.Slots = nil
			}
			session.Provider = models.SpecificProvider(id)
			return nil
		}
	}
	return invalidSelection("provider", "provider not available for this service here")
}

func (s *DefaultFlowService) selectDate(ctx context.Context, session *models.BookingSession, date string) error {
	if session.Step != models.StepSchedule {
		return invalidSelection("date", "not at the schedule step")
	}
	if _, err := availability.Weekday(date); err != nil {
		return invalidSelection("date", "expected YYYY-MM-DD")
	}
	// A date change never touches the other selections.
	session.Date = date
	session.Time = nil
	return s.recomputeSlots(ctx, session)
}

func (s *DefaultFlowService) selectTime(session *models.BookingSession, value string) error {
	if session.Step != models.StepSchedule {
		return invalidSelection("time", "not at the schedule step")
	}
	t, err := models.ParseMinuteOfDay(value)
	if err != nil {
		return invalidSelection("time", "expected HH:MM")
	}
	for _, slot := range session.Slots {
		if slot == t {
			session.Time = &t
			return nil
		}
	}
	return invalidSelection("time", "not an available slot")
}

func (s *DefaultFlowService) next(ctx context.Context, session *models.BookingSession) error {
	switch session.Step {
	case models.StepLocation:
		if session.LocationID == "" {
			return invalidSelection("location", "required")
		}
		session.Step = models.StepService

	case models.StepService:
		if session.ServiceTypeID == "" {
			return invalidSelection("service", "required")
		}
		svc, _ := s.Catalog.ServiceTypeByID(session.ServiceTypeID)
		generic, specific := s.Catalog.RuleShape(session.LocationID, session.ServiceTypeID)
		if !svc.RequiresProvider || (generic && !specific) {
			// No meaningful provider choice: jump straight to scheduling
			// against the generic rules.
			session.Provider = models.AnyProvider()
			session.ProviderSkip = true
			session.Step = models.StepSchedule
			return s.recomputeSlots(ctx, session)
		}
		session.ProviderSkip = false
		session.Step = models.StepProvider

	case models.StepProvider:
		if _, ok := session.Provider.Specific(); !ok {
			return invalidSelection("provider", "required")
		}
		session.Step = models.StepSchedule
		return s.recomputeSlots(ctx, session)

	case models.StepSchedule:
		if session.Time == nil {
			return invalidSelection("time", "required")
		}
		session.Step = models.StepConfirm

	case models.StepConfirm:
		return invalidSelection("confirmation", "confirm the reservation to finish")

	default:
		return invalidSelection("step", "flow already finished")
	}
	return nil
}

func (s *DefaultFlowService) back(session *models.BookingSession) error {
	switch session.Step {
	case models.StepLocation:
		return ErrCannotGoBack
	case models.StepSchedule:
		if session.ProviderSkip {
			session.Step = models.StepService
			return nil
		}
		session.Step = models.StepProvider
	default:
		session.Step--
	}
	return nil
}

// recomputeSlots re-runs the resolution pipeline for the session's
// current selection context.
func (s *DefaultFlowService) recomputeSlots(ctx context.Context, session *models.BookingSession) error {
	reservations, err := s.Reservations.ListForDay(ctx, session.LocationID, session.Date)
	if err != nil {
		return err
	}
	slots, err := s.Engine.Resolve(availability.Selection{
		LocationID:    session.LocationID,
		ServiceTypeID: session.ServiceTypeID,
		Provider:      session.Provider,
		Date:          session.Date,
	}, reservations)
	if err != nil {
		return err
	}
	session.Slots = slots
	return nil
}

func (s *DefaultFlowService) view(session *models.BookingSession) *StepView {
	v := &StepView{Session: session}
	switch session.Step {
	case models.StepLocation:
		v.Locations = s.Catalog.ActiveLocations()
	case models.StepService:
		v.Services = s.Catalog.OfferedServices(session.LocationID)
	case models.StepProvider:
		v.Providers = s.Catalog.EligibleProviders(session.LocationID, session.ServiceTypeID)
	case models.StepSchedule:
		v.Slots = session.Slots
	case models.StepConfirm:
		v.Summary = s.summary(session)
	}
	return v
}

func (s *DefaultFlowService) summary(session *models.BookingSession) *Summary {
	loc, _ := s.Catalog.LocationByID(session.LocationID)
	svc, _ := s.Catalog.ServiceTypeByID(session.ServiceTypeID)
	sum := &Summary{
		Location:    loc,
		ServiceType: svc,
		Date:        session.Date,
		Time:        session.Time,
	}
	if id, ok := session.Provider.Specific(); ok {
		if p, found := s.Catalog.ProviderByID(id); found {
			sum.Provider = &p
		}
	}
	return sum
}
