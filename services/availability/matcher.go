package availability

import (
	"time"

	"fitbook/models"
)

// MatchRules selects the rules applicable to a location, service,
// provider dimension and weekday. Location, service and weekday must
// match exactly; the provider dimension matches generic rules against a
// generic selection and provider-bound rules against the same provider.
// An explicitly selected provider never falls back to generic rules.
// An empty result is the normal "no availability" condition, not an
// error.
func MatchRules(rules []models.AvailabilityRule, locationID, serviceTypeID string, provider models.ProviderRef, day time.Weekday) []models.AvailabilityRule {
	matched := make([]models.AvailabilityRule, 0)
	for _, rule := range rules {
		if rule.LocationID != locationID || rule.ServiceTypeID != serviceTypeID {
			continue
		}
		if !rule.AppliesOn(day) {
			continue
		}
		if !providerMatches(rule.Provider, provider) {
			continue
		}
		matched = append(matched, rule)
	}
	return matched
}

func providerMatches(rule, selected models.ProviderRef) bool {
	switch selected.Kind {
	case models.ProviderSpecific:
		id, ok := rule.Specific()
		return ok && id == selected.ID
	case models.ProviderAny:
		_, ok := rule.Specific()
		return !ok
	}
	return false
}
