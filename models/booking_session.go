package models

// WizardStep identifies a step of the booking flow.
type WizardStep int

const (
	StepLocation WizardStep = iota + 1
	StepService
	StepProvider
	StepSchedule
	StepConfirm
	StepDone
)

func (s WizardStep) String() string {
	switch s {
	case StepLocation:
		return "location"
	case StepService:
		return "service"
	case StepProvider:
		return "provider"
	case StepSchedule:
		return "schedule"
	case StepConfirm:
		return "confirm"
	case StepDone:
		return "done"
	}
	return "unknown"
}

// BookingSession holds the working state of one booking attempt. It
// lives in the session store for the duration of the attempt and is
// discarded on confirmation or abandonment.
type BookingSession struct {
	SessionID     string        `json:"session_id"`
	UserID        string        `json:"user_id"`
	Step          WizardStep    `json:"step"`
	LocationID    string        `json:"location_id,omitempty"`
	ServiceTypeID string        `json:"service_type_id,omitempty"`
	Provider      ProviderRef   `json:"provider,omitempty"`
	Date          string        `json:"date"` // "YYYY-MM-DD"
	Time          *MinuteOfDay  `json:"time,omitempty"`
	Slots         []MinuteOfDay `json:"slots,omitempty"`
	ProviderSkip  bool          `json:"provider_skip,omitempty"`
}
