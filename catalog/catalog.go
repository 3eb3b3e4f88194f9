// Package catalog holds the static booking configuration: locations,
// service types, providers and availability rules. The catalogue is
// loaded once at process start and is read-only afterwards.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"fitbook/models"
)

type Catalog struct {
	Locations    []models.Location         `json:"locations"`
	ServiceTypes []models.ServiceType      `json:"service_types"`
	Providers    []models.Provider         `json:"providers"`
	Rules        []models.AvailabilityRule `json:"rules"`
}

// Load reads a catalogue from a JSON file and validates it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return &c, nil
}

// Validate checks referential integrity of the catalogue.
func (c *Catalog) Validate() error {
	for _, s := range c.ServiceTypes {
		if s.DurationMinutes <= 0 {
			return fmt.Errorf("service %s: non-positive duration", s.ID)
		}
		if s.Capacity < 1 {
			return fmt.Errorf("service %s: capacity must be >= 1", s.ID)
		}
	}
	for i, r := range c.Rules {
		if _, ok := c.LocationByID(r.LocationID); !ok {
			return fmt.Errorf("rule %d: unknown location %s", i, r.LocationID)
		}
		if _, ok := c.ServiceTypeByID(r.ServiceTypeID); !ok {
			return fmt.Errorf("rule %d: unknown service type %s", i, r.ServiceTypeID)
		}
		if id, ok := r.Provider.Specific(); ok {
			if _, found := c.ProviderByID(id); !found {
				return fmt.Errorf("rule %d: unknown provider %s", i, id)
			}
		} else if !r.Provider.Chosen() {
			return fmt.Errorf("rule %d: provider dimension unset", i)
		}
		for _, tr := range r.Ranges {
			if tr.End <= tr.Start {
				return fmt.Errorf("rule %d: empty range %s-%s", i, tr.Start, tr.End)
			}
		}
	}
	return nil
}

func (c *Catalog) LocationByID(id string) (models.Location, bool) {
	for _, l := range c.Locations {
		if l.ID == id {
			return l, true
		}
	}
	return models.Location{}, false
}

func (c *Catalog) ServiceTypeByID(id string) (models.ServiceType, bool) {
	for _, s := range c.ServiceTypes {
		if s.ID == id {
			return s, true
		}
	}
	return models.ServiceType{}, false
}

func (c *Catalog) ProviderByID(id string) (models.Provider, bool) {
	for _, p := range c.Providers {
		if p.ID == id {
			return p, true
		}
	}
	return models.Provider{}, false
}

// ActiveLocations returns the locations open for selection.
func (c *Catalog) ActiveLocations() []models.Location {
	out := make([]models.Location, 0, len(c.Locations))
	for _, l := range c.Locations {
		if l.Active {
			out = append(out, l)
		}
	}
	return out
}

// OfferedServices returns the service types that have at least one
// availability rule at the given location.
func (c *Catalog) OfferedServices(locationID string) []models.ServiceType {
	out := make([]models.ServiceType, 0)
	for _, s := range c.ServiceTypes {
		if c.HasRule(locationID, s.ID) {
			out = append(out, s)
		}
	}
	return out
}

// HasRule reports whether any rule exists for the location+service pair.
func (c *Catalog) HasRule(locationID, serviceTypeID string) bool {
	for _, r := range c.Rules {
		if r.LocationID == locationID && r.ServiceTypeID == serviceTypeID {
			return true
		}
	}
	return false
}

// RuleShape reports which rule flavours exist for a location+service
// pair: generic (no bound provider) and provider-specific.
func (c *Catalog) RuleShape(locationID, serviceTypeID string) (generic, specific bool) {
	for _, r := range c.Rules {
		if r.LocationID != locationID || r.ServiceTypeID != serviceTypeID {
			continue
		}
		if _, ok := r.Provider.Specific(); ok {
			specific = true
		} else {
			generic = true
		}
	}
	return generic, specific
}

// EligibleProviders returns providers selectable for a location+service
// pair: active, working at the location, listing the service among
// specialties, and backed by at least one rule bound to them there.
func (c *Catalog) EligibleProviders(locationID, serviceTypeID string) []models.Provider {
	out := make([]models.Provider, 0)
	for _, p := range c.Providers {
		if !p.Active || !p.WorksAt(locationID) || !p.Offers(serviceTypeID) {
			continue
		}
		for _, r := range c.Rules {
			if r.LocationID != locationID || r.ServiceTypeID != serviceTypeID {
				continue
			}
			if id, ok := r.Provider.Specific(); ok && id == p.ID {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
