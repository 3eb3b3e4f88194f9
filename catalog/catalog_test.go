package catalog

import (
	"testing"
	"time"

	"fitbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsValid(t *testing.T) {
	require.NoError(t, Seed().Validate())
}

func TestOfferedServices(t *testing.T) {
	cat := Seed()

	ids := func(services []models.ServiceType) []string {
		out := make([]string, 0, len(services))
		for _, s := range services {
			out = append(out, s.ID)
		}
		return out
	}

	assert.ElementsMatch(t, []string{"svc_group", "svc_personal"}, ids(cat.OfferedServices("loc_matula")))
	assert.ElementsMatch(t, []string{"svc_ems", "svc_personal"}, ids(cat.OfferedServices("loc_cowork")))
	assert.ElementsMatch(t, []string{"svc_ems"}, ids(cat.OfferedServices("loc_nucleo")))
}

func TestRuleShape(t *testing.T) {
	cat := Seed()

	generic, specific := cat.RuleShape("loc_matula", "svc_group")
	assert.True(t, generic)
	assert.False(t, specific)

	generic, specific = cat.RuleShape("loc_matula", "svc_personal")
	assert.False(t, generic)
	assert.True(t, specific)

	generic, specific = cat.RuleShape("loc_matula", "svc_ems")
	assert.False(t, generic)
	assert.False(t, specific)
}

func TestEligibleProviders(t *testing.T) {
	cat := Seed()

	providers := cat.EligibleProviders("loc_cowork", "svc_ems")
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.ID)
	}
	assert.ElementsMatch(t, []string{"pro_misael", "pro_ruben", "pro_hugo"}, names)

	// Misael does not offer personal training.
	providers = cat.EligibleProviders("loc_cowork", "svc_personal")
	for _, p := range providers {
		assert.NotEqual(t, "pro_misael", p.ID)
	}

	assert.Empty(t, cat.EligibleProviders("loc_matula", "svc_group"))
}

func TestValidateRejectsBrokenCatalog(t *testing.T) {
	base := func() *Catalog { return Seed() }

	c := base()
	c.ServiceTypes[0].DurationMinutes = 0
	assert.Error(t, c.Validate())

	c = base()
	c.ServiceTypes[0].Capacity = 0
	assert.Error(t, c.Validate())

	c = base()
	c.Rules[0].LocationID = "loc_ghost"
	assert.Error(t, c.Validate())

	c = base()
	c.Rules[0].Provider = models.ProviderRef{}
	assert.Error(t, c.Validate())

	c = base()
	c.Rules[0].Ranges = []models.TimeRange{{Start: 600, End: 600}}
	assert.Error(t, c.Validate())

	c = base()
	c.Rules = append(c.Rules, models.AvailabilityRule{
		LocationID: "loc_matula", ServiceTypeID: "svc_group",
		Provider: models.SpecificProvider("pro_ghost"),
		Days:     []time.Weekday{time.Monday},
		Ranges:   []models.TimeRange{{Start: 600, End: 660}},
	})
	assert.Error(t, c.Validate())
}
