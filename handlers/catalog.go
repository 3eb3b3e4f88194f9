package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitbook/models"
	"fitbook/utils"
)

// ListLocations returns the active locations.
func (hb *HandlerBundle) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": hb.Catalog.ActiveLocations()})
}

// ListServices returns the service types offered at a location, or the
// whole catalogue when no location is given.
func (hb *HandlerBundle) ListServices(c *gin.Context) {
	if locationID := c.Query("locationID"); locationID != "" {
		if _, ok := hb.Catalog.LocationByID(locationID); !ok {
			utils.JSONError(c, http.StatusNotFound, "location not found", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"services": hb.Catalog.OfferedServices(locationID)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": hb.Catalog.ServiceTypes})
}

// ListProviders returns the providers eligible for a location/service
// pair, or every active provider when no pair is given.
func (hb *HandlerBundle) ListProviders(c *gin.Context) {
	locationID := c.Query("locationID")
	serviceTypeID := c.Query("serviceTypeID")
	if locationID == "" && serviceTypeID == "" {
		active := make([]models.Provider, 0, len(hb.Catalog.Providers))
		for _, p := range hb.Catalog.Providers {
			if p.Active {
				active = append(active, p)
			}
		}
		c.JSON(http.StatusOK, gin.H{"providers": active})
		return
	}
	if locationID == "" || serviceTypeID == "" {
		utils.JSONError(c, http.StatusBadRequest, "locationID and serviceTypeID go together", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": hb.Catalog.EligibleProviders(locationID, serviceTypeID)})
}
