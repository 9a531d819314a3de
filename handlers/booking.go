package handlers

import (
	"errors"
	"net/http"

	"lumea/models"
	"lumea/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler drives the selection/quote/confirm flow.
type BookingHandler struct {
	Sessions booking.BookingSessionService
	Logger   *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(sessions booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Sessions: sessions, Logger: logger}
}

// StartSessionHandler opens a configuration session for one service. Any
// earlier session the client held is simply abandoned; selections never
// survive a service switch.
func (h *BookingHandler) StartSessionHandler(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.Sessions.StartSession(input.ServiceID, c.GetString("userID"))
	if err != nil {
		h.Logger.Warn("failed to start booking session", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectHandler applies one selection mutation and returns the recomputed
// price and validation state.
func (h *BookingHandler) SelectHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input models.SelectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.Sessions.ApplySelection(sessionID, c.GetString("userID"), input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// QuotePackageHandler computes and holds a package price. Nothing is booked
// until the client confirms explicitly.
func (h *BookingHandler) QuotePackageHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		PackageID string `json:"packageId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.Sessions.QuotePackage(sessionID, c.GetString("userID"), input.PackageID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// DismissPackageHandler discards a held package quote (the confirmation
// sheet was closed).
func (h *BookingHandler) DismissPackageHandler(c *gin.Context) {
	view, err := h.Sessions.ClearPendingPackage(c.Param("sessionID"), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// ConfirmHandler finalizes the booking. Validation failures report every
// unmet required group.
func (h *BookingHandler) ConfirmHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input models.ConfirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Sessions.ConfirmBooking(sessionID, c.GetString("userID"), input)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":         "required selections missing",
				"missingGroups": vErr.MissingGroups,
			})
			return
		}
		h.Logger.Error("failed to confirm booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// CancelSessionHandler drops the session and any pending package state.
func (h *BookingHandler) CancelSessionHandler(c *gin.Context) {
	if err := h.Sessions.CancelSession(c.Param("sessionID"), c.GetString("userID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
