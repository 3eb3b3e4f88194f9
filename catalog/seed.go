package catalog

import (
	"time"

	"fitbook/models"
)

func r(start, end string) models.TimeRange {
	s, err := models.ParseMinuteOfDay(start)
	if err != nil {
		panic(err)
	}
	e, err := models.ParseMinuteOfDay(end)
	if err != nil {
		panic(err)
	}
	return models.TimeRange{Start: s, End: e}
}

// Seed returns the built-in catalogue, used when no catalog file is
// configured.
func Seed() *Catalog {
	return &Catalog{
		Locations: []models.Location{
			{ID: "loc_cowork", Name: "Coworkgym", Address: "Calle Luis Doreste Silva, 107", Active: true},
			{ID: "loc_bodyplay", Name: "Bodyplay", Address: "Arucas", Active: true},
			{ID: "loc_cda", Name: "CDA", Address: "Arucas", Active: true},
			{ID: "loc_nucleo", Name: "Nucleo", Address: "Av. Alcalde Jose Ramirez Bethencourt, 13", Active: true},
			{ID: "loc_matula", Name: "Centro La Matula", Address: "La Matula 3B", Active: true},
		},
		ServiceTypes: []models.ServiceType{
			{ID: "svc_group", Name: "Group training", Description: "Dynamic group sessions.", DurationMinutes: 60, Capacity: 10, RequiresProvider: false, Price: 15},
			{ID: "svc_personal", Name: "Personal training", Description: "One-to-one coaching.", DurationMinutes: 60, Capacity: 1, RequiresProvider: true, Price: 40},
			{ID: "svc_ems", Name: "Electrostimulation", Description: "EMS technology, 30-minute sessions.", DurationMinutes: 30, Capacity: 1, RequiresProvider: true, Price: 35},
		},
		Providers: []models.Provider{
			{ID: "pro_misael", Name: "Misael", LocationIDs: []string{"loc_cowork", "loc_nucleo"}, ServiceTypeIDs: []string{"svc_ems"}, Active: true},
			{ID: "pro_ruben", Name: "Ruben", LocationIDs: []string{"loc_cowork", "loc_matula"}, ServiceTypeIDs: []string{"svc_ems", "svc_personal", "svc_group"}, Active: true},
			{ID: "pro_hugo", Name: "Hugo", LocationIDs: []string{"loc_cowork", "loc_bodyplay", "loc_cda", "loc_matula"}, ServiceTypeIDs: []string{"svc_ems", "svc_personal", "svc_group"}, Active: true},
		},
		Rules: []models.AvailabilityRule{
			// La Matula: group classes are generic (no provider choice).
			{LocationID: "loc_matula", ServiceTypeID: "svc_group", Provider: models.AnyProvider(),
				Days: []time.Weekday{time.Monday, time.Wednesday}, Ranges: []models.TimeRange{r("18:00", "21:00")}},
			{LocationID: "loc_matula", ServiceTypeID: "svc_group", Provider: models.AnyProvider(),
				Days: []time.Weekday{time.Tuesday, time.Thursday}, Ranges: []models.TimeRange{r("09:00", "10:00"), r("18:00", "21:00")}},
			{LocationID: "loc_matula", ServiceTypeID: "svc_group", Provider: models.AnyProvider(),
				Days: []time.Weekday{time.Friday}, Ranges: []models.TimeRange{r("19:00", "20:00")}},
			{LocationID: "loc_matula", ServiceTypeID: "svc_personal", Provider: models.SpecificProvider("pro_ruben"),
				Days: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, Ranges: []models.TimeRange{r("10:00", "18:00")}},
			{LocationID: "loc_matula", ServiceTypeID: "svc_personal", Provider: models.SpecificProvider("pro_hugo"),
				Days: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, Ranges: []models.TimeRange{r("10:00", "18:00")}},

			// Coworkgym.
			{LocationID: "loc_cowork", ServiceTypeID: "svc_ems", Provider: models.SpecificProvider("pro_misael"),
				Days: []time.Weekday{time.Monday, time.Wednesday}, Ranges: []models.TimeRange{r("08:00", "12:00")}},
			{LocationID: "loc_cowork", ServiceTypeID: "svc_ems", Provider: models.SpecificProvider("pro_misael"),
				Days: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday}, Ranges: []models.TimeRange{r("17:00", "20:00")}},
			{LocationID: "loc_cowork", ServiceTypeID: "svc_ems", Provider: models.SpecificProvider("pro_ruben"),
				Days: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, Ranges: []models.TimeRange{r("09:00", "14:00")}},
			{LocationID: "loc_cowork", ServiceTypeID: "svc_ems", Provider: models.SpecificProvider("pro_hugo"),
				Days: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, Ranges: []models.TimeRange{r("08:00", "12:00")}},
			{LocationID: "loc_cowork", ServiceTypeID: "svc_personal", Provider: models.SpecificProvider("pro_ruben"),
				Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday}, Ranges: []models.TimeRange{r("09:00", "13:00")}},
			{LocationID: "loc_cowork", ServiceTypeID: "svc_personal", Provider: models.SpecificProvider("pro_hugo"),
				Days: []time.Weekday{time.Tuesday, time.Thursday}, Ranges: []models.TimeRange{r("09:00", "13:00")}},

			// Bodyplay.
			{LocationID: "loc_bodyplay", ServiceTypeID: "svc_ems", Provider: models.SpecificProvider("pro_hugo"),
				Days: []time.Weekday{time.Tuesday}, Ranges: []models.TimeRange{r("08:00", "12:00"), r("16:30", "19:30")}},

			// CDA.
			{LocationID: "loc_cda", ServiceTypeID: "svc_ems", Provider: models.SpecificProvider("pro_hugo"),
				Days: []time.Weekday{time.Wednesday}, Ranges: []models.TimeRange{r("08:00", "12:00"), r("16:30", "19:30")}},

			// Nucleo.
			{LocationID: "loc_nucleo", ServiceTypeID: "svc_ems", Provider: models.SpecificProvider("pro_misael"),
				Days: []time.Weekday{time.Tuesday, time.Thursday}, Ranges: []models.TimeRange{r("09:00", "13:00")}},
		},
	}
}
