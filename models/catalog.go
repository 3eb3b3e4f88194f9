package models

// Location is a physical site where services are delivered.
type Location struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address" json:"address"`
	Active  bool   `bson:"active" json:"active"`
	Image   string `bson:"image,omitempty" json:"image,omitempty"`
}

// ServiceType describes a bookable service. Capacity is the maximum
// number of simultaneous CONFIRMED reservations for one
// (location, service, date, start-time) group.
type ServiceType struct {
	ID               string  `bson:"id" json:"id"`
	Name             string  `bson:"name" json:"name"`
	Description      string  `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes  int     `bson:"duration_minutes" json:"duration_minutes"`
	Capacity         int     `bson:"capacity" json:"capacity"`
	RequiresProvider bool    `bson:"requires_provider" json:"requires_provider"`
	Price            float64 `bson:"price" json:"price"`
}

// Provider is a person who delivers services at one or more locations.
type Provider struct {
	ID             string   `bson:"id" json:"id"`
	Name           string   `bson:"name" json:"name"`
	LocationIDs    []string `bson:"location_ids" json:"location_ids"`
	ServiceTypeIDs []string `bson:"service_type_ids" json:"service_type_ids"`
	Active         bool     `bson:"active" json:"active"`
	Avatar         string   `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// WorksAt reports whether the provider works at the given location.
func (p Provider) WorksAt(locationID string) bool {
	for _, id := range p.LocationIDs {
		if id == locationID {
			return true
		}
	}
	return false
}

// Offers reports whether the provider lists the service among specialties.
func (p Provider) Offers(serviceTypeID string) bool {
	for _, id := range p.ServiceTypeIDs {
		if id == serviceTypeID {
			return true
		}
	}
	return false
}
