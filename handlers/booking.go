package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitbook/catalog"
	"fitbook/database/repository/reservation"
	"fitbook/services/booking"
	"fitbook/services/intelligence"
	"fitbook/utils"
)

// HandlerBundle carries the wired services into the HTTP layer.
type HandlerBundle struct {
	Flow         booking.FlowService
	Catalog      *catalog.Catalog
	Reservations reservation.Store
	Tips         intelligence.TipService
}

// StartBookingSession opens a new wizard session for the caller.
func (hb *HandlerBundle) StartBookingSession(c *gin.Context) {
	view, err := hb.Flow.StartSession(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetBookingSession returns the current step view for an open session.
func (hb *HandlerBundle) GetBookingSession(c *gin.Context) {
	view, err := hb.Flow.View(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateBookingSession applies one wizard action to a session.
func (hb *HandlerBundle) UpdateBookingSession(c *gin.Context) {
	var action booking.Action
	if err := c.ShouldBindJSON(&action); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := hb.Flow.Apply(c.Request.Context(), c.Param("sessionID"), action)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ConfirmBooking finalizes the session into a reservation.
func (hb *HandlerBundle) ConfirmBooking(c *gin.Context) {
	res, err := hb.Flow.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondFlowError(c, err)
		return
	}

	svc, _ := hb.Catalog.ServiceTypeByID(res.ServiceTypeID)
	c.JSON(http.StatusOK, gin.H{
		"reservation": res,
		"tip":         hb.Tips.AdviceFor(c.Request.Context(), svc.Name),
	})
}

// CancelSession abandons an in-flight wizard session.
func (hb *HandlerBundle) CancelSession(c *gin.Context) {
	if err := hb.Flow.Abandon(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondFlowError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SessionTip returns a preparation tip for the session's chosen service.
func (hb *HandlerBundle) SessionTip(c *gin.Context) {
	view, err := hb.Flow.View(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	svc, ok := hb.Catalog.ServiceTypeByID(view.Session.ServiceTypeID)
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "no service selected yet", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc.Name, "tip": hb.Tips.AdviceFor(c.Request.Context(), svc.Name)})
}

func respondFlowError(c *gin.Context, err error) {
	var invalid *booking.InvalidSelectionError
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.Is(err, booking.ErrStaleSlot):
		utils.JSONError(c, http.StatusConflict, "slot no longer available", "pick another time")
	case errors.Is(err, booking.ErrCannotGoBack):
		utils.JSONError(c, http.StatusConflict, "already at the first step", "")
	case errors.As(err, &invalid):
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid selection: "+invalid.Field, invalid.Reason)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking flow error", err.Error())
	}
}
