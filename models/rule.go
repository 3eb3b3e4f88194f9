package models

import "time"

// ProviderKind discriminates the provider dimension of a rule or
// reservation: bound to one provider, or generic.
type ProviderKind string

const (
	// ProviderAny marks a generic rule: it applies to the service
	// regardless of who ultimately delivers it.
	ProviderAny ProviderKind = "any"
	// ProviderSpecific binds a rule or reservation to one provider.
	ProviderSpecific ProviderKind = "specific"
)

// ProviderRef is a tagged variant over the provider dimension. The zero
// value means "not chosen yet" and is only meaningful inside a booking
// session; rules and reservations always carry Any or Specific.
type ProviderRef struct {
	Kind ProviderKind `bson:"kind" json:"kind"`
	ID   string       `bson:"id,omitempty" json:"id,omitempty"`
}

func AnyProvider() ProviderRef {
	return ProviderRef{Kind: ProviderAny}
}

func SpecificProvider(id string) ProviderRef {
	return ProviderRef{Kind: ProviderSpecific, ID: id}
}

// Chosen reports whether the ref has been set at all.
func (r ProviderRef) Chosen() bool { return r.Kind != "" }

// Specific returns the bound provider id when Kind is ProviderSpecific.
func (r ProviderRef) Specific() (string, bool) {
	return r.ID, r.Kind == ProviderSpecific
}

// TimeRange is a half-open daily window: a start time t fits a service
// of duration d only if t+d <= End.
type TimeRange struct {
	Start MinuteOfDay `bson:"start" json:"start"`
	End   MinuteOfDay `bson:"end" json:"end"`
}

// AvailabilityRule is a recurring weekly availability window for a
// (location, service, provider) combination. Rules are static
// configuration, loaded once and never mutated at runtime.
type AvailabilityRule struct {
	LocationID    string         `bson:"location_id" json:"location_id"`
	ServiceTypeID string         `bson:"service_type_id" json:"service_type_id"`
	Provider      ProviderRef    `bson:"provider" json:"provider"`
	Days          []time.Weekday `bson:"days" json:"days"`
	Ranges        []TimeRange    `bson:"ranges" json:"ranges"`
}

// AppliesOn reports whether the rule covers the given weekday.
func (r AvailabilityRule) AppliesOn(day time.Weekday) bool {
	for _, d := range r.Days {
		if d == day {
			return true
		}
	}
	return false
}
