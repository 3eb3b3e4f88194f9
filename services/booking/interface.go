// Package booking drives the multi-step reservation wizard: it
// sequences the user's selections, skips the provider step when the
// choice is meaningless, runs the availability pipeline on every
// schedule change, and commits the final reservation through a
// serialized path.
package booking

import (
	"context"

	"fitbook/catalog"
	"fitbook/database/repository/reservation"
	"fitbook/models"
	"fitbook/services/availability"
)

// Action is one wizard input: a selection or a navigation request.
type Action struct {
	Name  string `json:"action" binding:"required"`
	Value string `json:"value"`
}

// Wizard action names.
const (
	ActionSelectLocation = "select_location"
	ActionSelectService  = "select_service"
	ActionSelectProvider = "select_provider"
	ActionSelectDate     = "select_date"
	ActionSelectTime     = "select_time"
	ActionNext           = "next"
	ActionBack           = "back"
)

// Summary is the confirm-step recap of the accumulated selection.
type Summary struct {
	Location    models.Location     `json:"location"`
	ServiceType models.ServiceType  `json:"service_type"`
	Provider    *models.Provider    `json:"provider,omitempty"`
	Date        string              `json:"date"`
	Time        *models.MinuteOfDay `json:"time,omitempty"`
}

// StepView is the session state plus whatever the current step offers
// for display: selectable options or resolved slots.
type StepView struct {
	Session   *models.BookingSession `json:"session"`
	Locations []models.Location      `json:"locations,omitempty"`
	Services  []models.ServiceType   `json:"services,omitempty"`
	Providers []models.Provider      `json:"providers,omitempty"`
	Slots     []models.MinuteOfDay   `json:"slots,omitempty"`
	Summary   *Summary               `json:"summary,omitempty"`
}

// FlowService is the booking wizard boundary consumed by the HTTP layer.
type FlowService interface {
	StartSession(ctx context.Context, userID string) (*StepView, error)
	View(ctx context.Context, sessionID string) (*StepView, error)
	Apply(ctx context.Context, sessionID string, action Action) (*StepView, error)
	Confirm(ctx context.Context, sessionID string) (*models.Reservation, error)
	Abandon(ctx context.Context, sessionID string) error
}

// DefaultFlowService implements FlowService.
type DefaultFlowService struct {
	Catalog      *catalog.Catalog
	Engine       availability.Engine
	Reservations reservation.Store
	Sessions     SessionStore

	commitLocks slotLocks
}

func NewFlowService(cat *catalog.Catalog, engine availability.Engine, store reservation.Store, sessions SessionStore) *DefaultFlowService {
	return &DefaultFlowService{
		Catalog:      cat,
		Engine:       engine,
		Reservations: store,
		Sessions:     sessions,
	}
}
