package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitbook/utils"
)

// ListMyReservations returns the caller's reservations.
func (hb *HandlerBundle) ListMyReservations(c *gin.Context) {
	reservations, err := hb.Reservations.ListByUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// CancelReservation cancels one of the caller's confirmed reservations.
func (hb *HandlerBundle) CancelReservation(c *gin.Context) {
	id := c.Param("id")
	userID := c.GetString("userID")

	mine, err := hb.Reservations.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load reservations", err.Error())
		return
	}
	owned := false
	for _, r := range mine {
		if r.ID == id {
			owned = true
			break
		}
	}
	if !owned {
		utils.JSONError(c, http.StatusNotFound, "reservation not found", "")
		return
	}

	if err := hb.Reservations.Cancel(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel reservation", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
